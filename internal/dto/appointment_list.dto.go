package dto

import (
	"time"

	"github.com/graindock/grain-scheduler/internal/models"
)

type TimeSlotDTO struct {
	ID      uint      `json:"id"`
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
}

type WarehouseZoneDTO struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	WarehouseName string `json:"warehouse_name"`
	Location      string `json:"location"`
}

type AppointmentListDTO struct {
	ID                uint             `json:"id"`
	FarmerID          uint             `json:"farmer_id"`
	GrainType         string           `json:"grain_type"`
	RequestedQuantity int64            `json:"requested_quantity"`
	Status            string           `json:"status"`
	TimeSlot          TimeSlotDTO      `json:"time_slot"`
	Zone              WarehouseZoneDTO `json:"zone"`
	CreatedAt         time.Time        `json:"created_at"`
}

func FromAppointment(ap models.Appointment) AppointmentListDTO {
	return AppointmentListDTO{
		ID:                ap.ID,
		FarmerID:          ap.FarmerID,
		GrainType:         ap.GrainType.Name,
		RequestedQuantity: ap.RequestedQuantity,
		Status:            ap.Status,
		TimeSlot: TimeSlotDTO{
			ID:      ap.TimeSlot.ID,
			StartAt: ap.TimeSlot.StartAt,
			EndAt:   ap.TimeSlot.EndAt,
		},
		Zone: WarehouseZoneDTO{
			ID:            ap.Zone.ID,
			Name:          ap.Zone.Name,
			WarehouseName: ap.Zone.Warehouse.Name,
			Location:      ap.Zone.Warehouse.Location,
		},
		CreatedAt: ap.CreatedAt,
	}
}
