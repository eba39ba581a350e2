package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	OrderStatusPending = "pending"
	OrderStatusPaid    = "paid"
	OrderStatusExpired = "expired"
	OrderStatusFailed  = "failed"
)

type TokenOrder struct {
	gorm.Model

	UserID        uint   `gorm:"index;not null" json:"user_id"`
	ExternalID    string `gorm:"uniqueIndex;size:32;not null" json:"external_id"`
	Amount        int64  `gorm:"not null" json:"amount"`
	TokenQuantity int64  `gorm:"not null" json:"token_quantity"`
	Status        string `gorm:"size:16;index;not null;default:pending" json:"status"`

	PaymentNumber    string    `gorm:"size:512" json:"payment_number"`
	PaymentMethod    string    `gorm:"size:32" json:"payment_method"`
	TotalPayment     int64     `json:"total_payment"`
	PaymentFee       int64     `json:"payment_fee"`
	PaymentExpiredAt time.Time `json:"payment_expired_at"`
}
