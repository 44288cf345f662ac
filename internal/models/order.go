package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Both profiles name the success and failure outcome differently
const (
	OrderStatusPaid      = "paid"
	OrderStatusCancelled = "cancelled"
	OrderStatusCompleted = "completed"
	OrderStatusPending   = "pending"
)

type Order struct {
	ID               string `validate:"required"`
	UserID           string `validate:"required"`
	MerchantID       string `validate:"required"`
	MerchantName     string
	MerchantCategory string

	Amount        int64  `validate:"gt=0"` // minor currency units
	PointsAwarded int64  `validate:"gte=0"`
	PaymentMethod string `validate:"required"`
	Status        string `validate:"oneof=paid cancelled completed pending"`

	TransactionID *string    // set iff the order is paid
	PaidAt        *time.Time // set iff the order is paid
	CreatedAt     time.Time  `validate:"required"`
	UpdatedAt     time.Time
}

// Paid reports whether the order reached the success status of its profile
func (o *Order) Paid() bool {
	return o.Status == OrderStatusPaid || o.Status == OrderStatusCompleted
}

// Yuan converts minor currency units to major units without losing precision
func Yuan(minor int64) decimal.Decimal {
	return decimal.New(minor, -2)
}
