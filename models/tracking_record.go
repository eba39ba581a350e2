package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TrackingTypeIP    = "ip"
	TrackingTypePhone = "phone"
	TrackingTypeIMEI  = "imei"
)

type TrackingRecord struct {
	gorm.Model

	UserID     uint           `gorm:"index;not null" json:"user_id"`
	Query      string         `gorm:"size:64;not null" json:"query"`
	Type       string         `gorm:"size:8;not null" json:"type"`
	ResultData datatypes.JSON `json:"result_data"`
	Lat        float64        `json:"lat"`
	Lng        float64        `json:"lng"`
}
