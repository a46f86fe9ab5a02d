package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	WarehouseActive    = "active"
	WarehouseNotActive = "not_active"
)

type Warehouse struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ManagerID uint `gorm:"index" json:"manager_id"`
	Manager   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"manager"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Location string `gorm:"size:255;not null" json:"location"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	Status string `gorm:"size:20;default:'active';index" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
