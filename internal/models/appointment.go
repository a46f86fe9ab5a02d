package models

import (
	"time"

	"gorm.io/gorm"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	FarmerID uint `gorm:"index" json:"farmer_id"`
	Farmer   User `gorm:"foreignKey:FarmerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"farmer"`

	ZoneID uint        `gorm:"index" json:"zone_id"`
	Zone   StorageZone `gorm:"foreignKey:ZoneID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"zone"`

	GrainTypeID uint  `gorm:"index" json:"grain_type_id"`
	GrainType   Grain `gorm:"foreignKey:GrainTypeID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"grain_type"`

	TimeSlotID uint     `gorm:"index" json:"timeslot_id"`
	TimeSlot   TimeSlot `gorm:"foreignKey:TimeSlotID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"time_slot"`

	RequestedQuantity int64 `gorm:"not null" json:"requested_quantity"`

	Status string `gorm:"size:20;default:'pending';index" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
