package seed

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nkiryanov/pointseed/internal/idgen"
	"github.com/nkiryanov/pointseed/internal/models"
	"github.com/nkiryanov/pointseed/internal/points"
	"github.com/nkiryanov/pointseed/internal/sample"
)

const earnDescription = "支付订单获得积分"

// Share of total_earned counted as earned this month, drawn per user
var (
	monthlyShareMin = decimal.New(2, -1)
	monthlyShareMax = decimal.New(5, -1)
)

// GenerateOrders derives orders from the given users and merchants. Every paid order
// gets exactly one points record and credits its user. Every user gets a balance,
// including users without orders.
func (s *Service) GenerateOrders(users []models.User, merchants []models.Merchant) ([]models.Order, []models.PointsRecord, []models.UserPointsBalance) {
	ledger := points.NewLedger()
	for _, u := range users {
		ledger.Open(u.ID)
	}

	eligible := EligibleMerchants(merchants, s.profile.FallbackMerchants)
	if len(eligible) < len(merchants) {
		s.logger.Debug("Some merchants are not eligible for orders", "eligible", len(eligible), "total", len(merchants))
	}

	var orders []models.Order
	var records []models.PointsRecord

	emit := func(user *models.User) {
		merchant := sample.From(s.sampler, eligible)

		o := s.newOrder(len(orders)+1, user, &merchant)
		orders = append(orders, o)

		if !o.Paid() {
			return
		}
		records = append(records, s.newPointsRecord(len(orders), &o))
		ledger.Credit(o.UserID, o.PointsAwarded)
	}

	if len(users) > 0 && len(eligible) > 0 {
		plan := s.profile.Orders
		switch {
		case plan.Total > 0:
			for range plan.Total {
				user := sample.From(s.sampler, users)
				emit(&user)
			}
		default:
			for i := range users {
				for range s.sampler.IntRange(plan.PerUserMin, plan.PerUserMax) {
					emit(&users[i])
				}
			}
		}
	}

	balances := ledger.Balances()
	if s.profile.MonthlyEarned {
		for i := range balances {
			s.addMonthly(&balances[i])
		}
	}

	return orders, records, balances
}

func (s *Service) newOrder(n int, user *models.User, merchant *models.Merchant) models.Order {
	amount := s.sampler.Amount()
	paid := s.sampler.Bool(s.profile.PaidProbability)
	createdAt := s.orderTime()

	o := models.Order{
		ID:               s.recordID("ord_", "order_", n),
		UserID:           user.ID,
		MerchantID:       merchant.ID,
		MerchantName:     merchant.Name,
		MerchantCategory: merchant.Category,
		Amount:           amount,
		PaymentMethod:    s.profile.PaymentMethod,
		Status:           s.profile.UnpaidStatus,
		CreatedAt:        createdAt,
		UpdatedAt:        createdAt,
	}

	if paid {
		txID := s.ids.WechatOrderID()
		paidAt := createdAt

		o.Status = s.profile.PaidStatus
		o.PointsAwarded = points.Compute(amount)
		o.TransactionID = &txID
		o.PaidAt = &paidAt
	}

	return o
}

func (s *Service) newPointsRecord(n int, o *models.Order) models.PointsRecord {
	r := models.PointsRecord{
		ID:             s.recordID("pts_", "point_", n),
		UserID:         o.UserID,
		PointsChange:   o.PointsAwarded,
		RecordType:     s.profile.RecordType,
		RelatedOrderID: o.ID,
		MerchantID:     o.MerchantID,
		MerchantName:   o.MerchantName,
		Description:    earnDescription,
		CreatedAt:      *o.PaidAt,
	}

	if s.profile.RecordType == models.RecordTypePaymentReward {
		r.Description = fmt.Sprintf("支付¥%s获得%d积分", models.Yuan(o.Amount).StringFixed(2), o.PointsAwarded)
	}

	return r
}

// recordID shares the sequence number between an order and its points record in sequential mode
func (s *Service) recordID(prefix, sequentialPrefix string, n int) string {
	if s.profile.SequentialIDs {
		return idgen.Sequential(sequentialPrefix, 6, n)
	}
	return s.ids.Next(prefix)
}

func (s *Service) orderTime() time.Time {
	if c := s.profile.Calendar; c != nil {
		return s.sampler.InMonth(c.Month, 1, 30, 8, 22)
	}
	return s.sampler.Within(s.clock(), s.profile.OrderWindowDays)
}

// addMonthly fills the monthly subtotal as a random 20-50% share of total_earned, truncated
func (s *Service) addMonthly(b *models.UserPointsBalance) {
	share := monthlyShareMin.Add(monthlyShareMax.Sub(monthlyShareMin).Mul(decimal.NewFromFloat(s.sampler.Rand().Float64())))
	monthly := decimal.New(b.TotalEarned, 0).Mul(share).Floor().IntPart()
	b.MonthlyEarned = &monthly

	if c := s.profile.Calendar; c != nil {
		updatedAt := s.sampler.InMonth(c.Month, 20, 30, 8, 22)
		b.UpdatedAt = &updatedAt
	}
}
