package models

import (
	"time"
)

const (
	MerchantStatusActive   = "active"
	MerchantStatusInactive = "inactive"
)

// Merchant carries the union of both fixture schemas.
// Fields a profile does not emit stay empty.
type Merchant struct {
	ID              string `validate:"required"`
	Name            string `validate:"required"`
	MerchantNo      string `validate:"required,numeric|startswith=MCH"`
	ContactPerson   string
	ContactPhone    string `validate:"omitempty,cnmobile"`
	BusinessLicense string `validate:"omitempty,len=18,alphanum,uppercase"`
	Status          string `validate:"oneof=active inactive"`
	Category        string `validate:"required"`

	StoreName   string
	City        string
	Province    string
	Country     string
	PointsRatio string `validate:"omitempty,endswith=%"`

	CreatedAt time.Time `validate:"required"`
	UpdatedAt time.Time
}

func (m *Merchant) Active() bool {
	return m.Status == MerchantStatusActive
}
