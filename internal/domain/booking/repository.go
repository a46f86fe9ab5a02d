package booking

import (
	"context"
	"time"

	"github.com/graindock/grain-scheduler/internal/models"
)

type Repository interface {
	// -------- Entities --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	GetWarehouseByID(
		ctx context.Context,
		id uint,
	) (*models.Warehouse, error)

	GetZoneByID(
		ctx context.Context,
		id uint,
	) (*models.StorageZone, error)

	GetGrainByID(
		ctx context.Context,
		id uint,
	) (*models.Grain, error)

	GetTimeSlotByID(
		ctx context.Context,
		id uint,
	) (*models.TimeSlot, error)

	// -------- Templates / materialization --------
	ListTemplatesByWeekday(
		ctx context.Context,
		weekday int,
	) ([]models.TimeSlotTemplate, error)

	GetSlotByZoneAndStart(
		ctx context.Context,
		zoneID uint,
		startAt time.Time,
	) (*models.TimeSlot, error)

	CreateTimeSlot(
		ctx context.Context,
		slot *models.TimeSlot,
	) error

	// -------- Availability --------
	ListActiveSlots(
		ctx context.Context,
		zoneID uint,
	) ([]models.TimeSlot, error)

	HasActiveHold(
		ctx context.Context,
		timeslotID uint,
	) (bool, error)

	// -------- Booking (reserve / release) --------

	// ReserveSlot re-validates slot status, holds and zone capacity under a
	// row lock, flips the slot to not_active, decrements the zone capacity
	// and inserts the appointment, all in one transaction.
	ReserveSlot(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// ReleaseSlot persists a refused/cancelled appointment and, in the same
	// transaction, reactivates its slot (unless it already started) and
	// restores the reserved zone capacity.
	ReleaseSlot(
		ctx context.Context,
		ap *models.Appointment,
		now time.Time,
	) error

	// -------- Appointment (state change / queries) --------
	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	ListAppointments(
		ctx context.Context,
		f AppointmentFilter,
	) ([]models.Appointment, error)

	// ListZoneIDsByManager returns the IDs of zones belonging to
	// warehouses managed by the given user.
	ListZoneIDsByManager(
		ctx context.Context,
		managerID uint,
	) ([]uint, error)
}
