package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	TimeSlotActive    = "active"
	TimeSlotNotActive = "not_active"
)

// TimeSlot is a concrete dated slot materialized from a template.
// (zone_id, start_at) is unique among non-deleted rows; the materializer
// relies on it as its dedup key.
type TimeSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ZoneID uint        `gorm:"index:idx_timeslot_zone_start" json:"zone_id"`
	Zone   StorageZone `gorm:"foreignKey:ZoneID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	StartAt time.Time `gorm:"index:idx_timeslot_zone_start;index" json:"start_at"`
	EndAt   time.Time `json:"end_at"`

	Status string `gorm:"size:20;default:'active';index" json:"status"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
