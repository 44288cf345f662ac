package seed

import (
	"fmt"
	"time"

	"github.com/nkiryanov/pointseed/internal/apperrors"
	"github.com/nkiryanov/pointseed/internal/models"
)

// OrderPlan picks between the two order modes.
// Total > 0: fixed number of orders, user and merchant drawn per order.
// Otherwise every user gets PerUserMin..PerUserMax orders.
type OrderPlan struct {
	PerUserMin int
	PerUserMax int
	Total      int
}

// Calendar pins timestamps into one calendar month instead of look-back windows
type Calendar struct {
	Month    time.Time // any instant inside the month
	ClosedAt time.Time // merchants' updated_at
}

// Profile is a fixed fixture recipe. The two profiles use different schemas
// and points bookkeeping and are never reconciled.
type Profile struct {
	Name string

	Users            int
	UserIDWidth      int
	PhoneProbability float64

	Merchants         int
	MerchantIDWidth   int
	SampleTaxonomy    bool // random shops without replacement instead of taxonomy order
	ActiveProbability float64
	FallbackMerchants int // used for orders when no merchant is active

	Orders          OrderPlan
	PaidProbability float64
	PaidStatus      string
	UnpaidStatus    string
	PaymentMethod   string
	RecordType      string
	SequentialIDs   bool // order_000001 / point_000001 instead of timestamped ids
	MonthlyEarned   bool

	// Look-back windows in days, used when Calendar is nil
	UserWindowDays     int
	MerchantWindowDays int
	OrderWindowDays    int

	Calendar *Calendar
}

var Realistic = Profile{
	Name: models.ProfileRealistic,

	Users:            100,
	UserIDWidth:      5,
	PhoneProbability: 0.7,

	Merchants:         20,
	MerchantIDWidth:   5,
	SampleTaxonomy:    true,
	ActiveProbability: 0.75,
	FallbackMerchants: 10,

	Orders:          OrderPlan{PerUserMin: 1, PerUserMax: 4},
	PaidProbability: 0.75,
	PaidStatus:      models.OrderStatusPaid,
	UnpaidStatus:    models.OrderStatusCancelled,
	PaymentMethod:   "wechat_pay",
	RecordType:      models.RecordTypePaymentReward,

	UserWindowDays:     180,
	MerchantWindowDays: 365,
	OrderWindowDays:    60,
}

var Wxpay = Profile{
	Name: models.ProfileWxpay,

	Users:            100,
	UserIDWidth:      3,
	PhoneProbability: 0.7,

	Merchants:         20,
	MerchantIDWidth:   3,
	ActiveProbability: 1,
	FallbackMerchants: 10,

	Orders:          OrderPlan{Total: 200},
	PaidProbability: 0.95,
	PaidStatus:      models.OrderStatusCompleted,
	UnpaidStatus:    models.OrderStatusPending,
	PaymentMethod:   "wxpay",
	RecordType:      models.RecordTypeEarn,
	SequentialIDs:   true,
	MonthlyEarned:   true,

	Calendar: &Calendar{
		Month:    time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC),
		ClosedAt: time.Date(2025, time.September, 30, 12, 0, 0, 0, time.UTC),
	},
}

func ProfileByName(name string) (Profile, error) {
	switch name {
	case models.ProfileRealistic:
		return Realistic, nil
	case models.ProfileWxpay:
		return Wxpay, nil
	default:
		return Profile{}, fmt.Errorf("%w: %q", apperrors.ErrUnknownProfile, name)
	}
}
