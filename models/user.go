package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model

	Name         string `gorm:"size:128" json:"name"`
	Email        string `gorm:"uniqueIndex;size:255" json:"email"`
	PasswordHash string `gorm:"size:72" json:"-"`
	Tokens       int64  `gorm:"not null;default:0" json:"tokens"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`

	Orders          []TokenOrder     `gorm:"foreignKey:UserID"`
	TrackingRecords []TrackingRecord `gorm:"foreignKey:UserID"`
}
