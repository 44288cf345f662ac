package models

import (
	"time"

	"github.com/google/uuid"
)

// Fixture profiles. They use different schemas and are never mixed in one dataset.
const (
	ProfileRealistic = "realistic"
	ProfileWxpay     = "wxpay"
)

// Dataset is everything one generation run produced, in emit order
type Dataset struct {
	Profile     string
	RunID       uuid.UUID
	Seed        int64
	GeneratedAt time.Time

	Users         []User
	Merchants     []Merchant
	Orders        []Order
	PointsRecords []PointsRecord
	Balances      []UserPointsBalance
}
