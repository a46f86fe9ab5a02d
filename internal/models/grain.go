package models

import (
	"time"

	"gorm.io/gorm"
)

type Grain struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name string `gorm:"size:100;not null" json:"name"`

	// Price per ton, in cents.
	PriceCents int64 `gorm:"not null" json:"price_cents"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
