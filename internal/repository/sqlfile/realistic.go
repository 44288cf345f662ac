package sqlfile

import (
	"fmt"

	"github.com/nkiryanov/pointseed/internal/models"
)

// Children first, so TRUNCATE order is safe even with checks on
var realisticTables = []string{"points_records", "user_points", "payment_orders", "merchants", "users"}

func renderRealistic(l Layout, ds models.Dataset) *Script {
	s := &Script{}
	header(s, "Realistic seed data for the points backend", l, ds)

	s.Comment("Clear existing test data")
	s.Statement("SET FOREIGN_KEY_CHECKS = 0")
	for _, table := range realisticTables {
		s.Statement("TRUNCATE TABLE " + table)
	}
	s.Statement("SET FOREIGN_KEY_CHECKS = 1").Blank()

	users := Table{Name: "users", Columns: []string{"id", "wechat_id", "nickname", "avatar", "phone", "created_at"}}
	for _, u := range ds.Users {
		users.Add(u.ID, u.WechatID, u.Nickname, u.Avatar, u.Phone, u.CreatedAt)
	}

	merchants := Table{Name: "merchants", Columns: []string{
		"id", "merchant_name", "merchant_no", "contact_person", "contact_phone",
		"business_license", "status", "business_category", "created_at",
	}}
	for _, m := range ds.Merchants {
		merchants.Add(m.ID, m.Name, m.MerchantNo, m.ContactPerson, m.ContactPhone, m.BusinessLicense, m.Status, m.Category, m.CreatedAt)
	}

	orders := Table{Name: "payment_orders", Columns: []string{
		"id", "user_id", "merchant_id", "merchant_name", "merchant_category", "amount",
		"points_awarded", "payment_method", "status", "wechat_order_id", "paid_at", "created_at",
	}}
	for _, o := range ds.Orders {
		orders.Add(o.ID, o.UserID, o.MerchantID, o.MerchantName, o.MerchantCategory, o.Amount,
			o.PointsAwarded, o.PaymentMethod, o.Status, o.TransactionID, o.PaidAt, o.CreatedAt)
	}

	records := Table{Name: "points_records", Columns: []string{
		"id", "user_id", "points_change", "record_type", "related_order_id",
		"merchant_id", "merchant_name", "description", "created_at",
	}}
	for _, r := range ds.PointsRecords {
		records.Add(r.ID, r.UserID, r.PointsChange, r.RecordType, r.RelatedOrderID, r.MerchantID, r.MerchantName, r.Description, r.CreatedAt)
	}

	balances := Table{Name: "user_points", Columns: []string{"user_id", "available_points", "total_earned", "total_spent"}}
	for _, b := range ds.Balances {
		balances.Add(b.UserID, b.Available, b.TotalEarned, b.TotalSpent)
	}

	for _, t := range []struct {
		what  string
		table Table
	}{
		{"users", users},
		{"merchants", merchants},
		{"orders", orders},
		{"points records", records},
		{"user balances", balances},
	} {
		s.Comment(fmt.Sprintf("Insert %d %s", len(t.table.Rows), t.what))
		s.Insert(t.table).Blank()
	}

	s.Blank().Banner("Import complete")

	return s
}
