package models

import (
	"time"
)

type User struct {
	ID        string    `validate:"required"`
	WechatID  string    `validate:"required,len=28,startswith=o,alphanum"`
	Nickname  string    `validate:"required"`
	Avatar    string    `validate:"omitempty,url"`
	Phone     *string   `validate:"omitempty,cnmobile"` // nil if the user never bound a phone
	CreatedAt time.Time `validate:"required"`
}
