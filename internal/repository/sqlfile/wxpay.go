package sqlfile

import (
	"fmt"

	"github.com/nkiryanov/pointseed/internal/models"
)

const wxpaySummary = `SELECT
    'data generation complete' AS message,
    (SELECT COUNT(*) FROM users) AS total_users,
    (SELECT COUNT(*) FROM merchants) AS total_merchants,
    (SELECT COUNT(*) FROM payment_orders) AS total_orders,
    (SELECT COUNT(*) FROM point_records) AS total_point_records,
    (SELECT COUNT(*) FROM user_points) AS total_user_points,
    (SELECT SUM(amount)/100 FROM payment_orders WHERE status='completed') AS total_revenue_yuan,
    (SELECT SUM(points_earned) FROM payment_orders WHERE status='completed') AS total_points_issued`

func renderWxpay(l Layout, ds models.Dataset) *Script {
	s := &Script{}
	header(s, "Merchants, orders and points for the WeChat Pay points backend", l, ds)

	users := Table{Name: "users", Columns: []string{"id", "wechat_id", "nickname", "avatar", "phone", "created_at"}}
	for _, u := range ds.Users {
		users.Add(u.ID, u.WechatID, u.Nickname, u.Avatar, u.Phone, u.CreatedAt)
	}

	merchants := Table{Name: "merchants", Columns: []string{
		"id", "merchant_name", "mch_id", "category", "store_name", "city",
		"province", "country", "points_ratio", "status", "created_at", "updated_at",
	}}
	for _, m := range ds.Merchants {
		merchants.Add(m.ID, m.Name, m.MerchantNo, m.Category, m.StoreName, m.City,
			m.Province, m.Country, m.PointsRatio, m.Status, m.CreatedAt, m.UpdatedAt)
	}

	orders := Table{Name: "payment_orders", Columns: []string{
		"id", "user_id", "merchant_id", "amount", "points_earned", "status",
		"payment_method", "transaction_id", "created_at", "updated_at",
	}}
	for _, o := range ds.Orders {
		orders.Add(o.ID, o.UserID, o.MerchantID, o.Amount, o.PointsAwarded, o.Status,
			o.PaymentMethod, o.TransactionID, o.CreatedAt, o.UpdatedAt)
	}

	records := Table{Name: "point_records", Columns: []string{"id", "user_id", "type", "points", "order_id", "description", "created_at"}}
	for _, r := range ds.PointsRecords {
		records.Add(r.ID, r.UserID, r.RecordType, r.PointsChange, r.RelatedOrderID, r.Description, r.CreatedAt)
	}

	balances := Table{Name: "user_points", Columns: []string{
		"user_id", "available_points", "total_earned", "total_spent", "monthly_earned", "updated_at",
	}}
	for _, b := range ds.Balances {
		balances.Add(b.UserID, b.Available, b.TotalEarned, b.TotalSpent, b.MonthlyEarned, b.UpdatedAt)
	}

	for i, t := range []struct {
		what  string
		table Table
	}{
		{"users", users},
		{"merchants", merchants},
		{"payment orders", orders},
		{"points records", records},
		{"user point balances", balances},
	} {
		s.Banner(fmt.Sprintf("%d. Insert %d %s", i+1, len(t.table.Rows), t.what)).Blank()
		s.Insert(t.table).Blank()
		s.Statement(fmt.Sprintf("SELECT %s AS status", Quote(fmt.Sprintf("inserted %d %s", len(t.table.Rows), t.what)))).Blank()
	}

	s.Banner("6. Summary").Blank()
	s.Statement(wxpaySummary)

	return s
}
