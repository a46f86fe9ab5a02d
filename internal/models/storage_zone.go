package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ZoneActive    = "active"
	ZoneNotActive = "not_active"
)

type StorageZone struct {
	ID uint `gorm:"primaryKey" json:"id"`

	WarehouseID uint      `gorm:"index" json:"warehouse_id"`
	Warehouse   Warehouse `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"warehouse"`

	GrainTypeID uint  `gorm:"index" json:"grain_type_id"`
	GrainType   Grain `gorm:"foreignKey:GrainTypeID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"grain_type"`

	Name string `gorm:"size:100;not null" json:"name"`

	// AvailableCapacity never exceeds TotalCapacity.
	TotalCapacity     int64 `gorm:"not null" json:"total_capacity"`
	AvailableCapacity int64 `gorm:"not null" json:"available_capacity"`

	Status string `gorm:"size:20;default:'active';index" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
