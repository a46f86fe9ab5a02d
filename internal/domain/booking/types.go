package booking

import "time"

type BookSlotInput struct {
	FarmerID          uint
	ZoneID            uint
	GrainTypeID       uint
	TimeSlotID        uint
	RequestedQuantity int64
}

// SlotView is what a farmer sees when asking for bookable slots.
type SlotView struct {
	ID        uint      `json:"id"`
	ZoneID    uint      `json:"zone_id"`
	StartAt   time.Time `json:"start_at"`
	EndAt     time.Time `json:"end_at"`
	Date      string    `json:"date"`
	StartTime string    `json:"start_time"`
	EndTime   string    `json:"end_time"`
}

type AppointmentFilter struct {
	ZoneIDs  []uint
	FarmerID uint
	Status   Status
}
