package models

import "time"

// TimeSlotTemplate is a recurring weekly availability definition for a
// storage zone. Weekday follows the warehouse convention 0=Monday .. 6=Sunday.
// Templates are configuration, not bookable state: they are hard-deleted.
type TimeSlotTemplate struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ZoneID uint        `gorm:"index" json:"zone_id"`
	Zone   StorageZone `gorm:"foreignKey:ZoneID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	DayOfWeek int `gorm:"index" json:"day_of_week"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	MaxAppointments int `gorm:"default:1" json:"max_appointments"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
