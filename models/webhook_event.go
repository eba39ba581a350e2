package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// WebhookEvent menyimpan setiap notifikasi gateway apa adanya, untuk audit.
type WebhookEvent struct {
	gorm.Model

	Provider   string          `gorm:"size:32;index" json:"provider"`
	ExternalID string          `gorm:"size:32;index" json:"external_id"`
	Status     string          `gorm:"size:32" json:"status"`
	Amount     decimal.Decimal `gorm:"type:decimal(18,2)" json:"amount"`
	Payload    datatypes.JSON  `json:"payload"`
	Outcome    string          `gorm:"size:32" json:"outcome"`
}
