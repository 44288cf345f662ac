package models

import (
	"time"
)

const (
	RecordTypePaymentReward = "payment_reward"
	RecordTypeEarn          = "earn"
)

// PointsRecord is one append-only entry of the points ledger
type PointsRecord struct {
	ID             string `validate:"required"`
	UserID         string `validate:"required"`
	PointsChange   int64
	RecordType     string `validate:"oneof=payment_reward earn"`
	RelatedOrderID string `validate:"required"`
	MerchantID     string
	MerchantName   string
	Description    string    `validate:"required"`
	CreatedAt      time.Time `validate:"required"`
}

// UserPointsBalance is the cached aggregate of a user's ledger entries
type UserPointsBalance struct {
	UserID        string `validate:"required"`
	Available     int64  `validate:"gte=0"`
	TotalEarned   int64  `validate:"gte=0"`
	TotalSpent    int64  `validate:"gte=0"`
	MonthlyEarned *int64
	UpdatedAt     *time.Time
}
