package models

import (
	"time"

	"gorm.io/gorm"
)

type Delivery struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint        `gorm:"index" json:"appointment_id"`
	Appointment   Appointment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"appointment"`

	ReceiptCode string `gorm:"size:36;index;not null" json:"receipt_code"`

	TotalPriceCents int64 `gorm:"not null" json:"total_price_cents"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
