package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/graindock/grain-scheduler/internal/domain/booking"
	"github.com/graindock/grain-scheduler/internal/httperr"
	"github.com/graindock/grain-scheduler/internal/models"
)

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Entities
// --------------------------------------------------

func (r *BookingGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *BookingGormRepository) GetWarehouseByID(
	ctx context.Context,
	id uint,
) (*models.Warehouse, error) {

	var warehouse models.Warehouse
	if err := r.db.WithContext(ctx).First(&warehouse, id).Error; err != nil {
		return nil, err
	}
	return &warehouse, nil
}

func (r *BookingGormRepository) GetZoneByID(
	ctx context.Context,
	id uint,
) (*models.StorageZone, error) {

	var zone models.StorageZone
	if err := r.db.WithContext(ctx).First(&zone, id).Error; err != nil {
		return nil, err
	}
	return &zone, nil
}

func (r *BookingGormRepository) GetGrainByID(
	ctx context.Context,
	id uint,
) (*models.Grain, error) {

	var grain models.Grain
	if err := r.db.WithContext(ctx).First(&grain, id).Error; err != nil {
		return nil, err
	}
	return &grain, nil
}

func (r *BookingGormRepository) GetTimeSlotByID(
	ctx context.Context,
	id uint,
) (*models.TimeSlot, error) {

	var slot models.TimeSlot
	if err := r.db.WithContext(ctx).First(&slot, id).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

// --------------------------------------------------
// Templates / materialization
// --------------------------------------------------

func (r *BookingGormRepository) ListTemplatesByWeekday(
	ctx context.Context,
	weekday int,
) ([]models.TimeSlotTemplate, error) {

	var templates []models.TimeSlotTemplate
	if err := r.db.WithContext(ctx).
		Where("day_of_week = ?", weekday).
		Order("zone_id ASC, start_time ASC").
		Find(&templates).Error; err != nil {
		return nil, err
	}
	return templates, nil
}

// GetSlotByZoneAndStart returns (nil, nil) when no slot exists for the
// exact (zone, start) pair; this is the materializer's dedup probe.
func (r *BookingGormRepository) GetSlotByZoneAndStart(
	ctx context.Context,
	zoneID uint,
	startAt time.Time,
) (*models.TimeSlot, error) {

	var slot models.TimeSlot
	err := r.db.WithContext(ctx).
		Where("zone_id = ? AND start_at = ?", zoneID, startAt).
		First(&slot).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *BookingGormRepository) CreateTimeSlot(
	ctx context.Context,
	slot *models.TimeSlot,
) error {
	return r.db.WithContext(ctx).Create(slot).Error
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *BookingGormRepository) ListActiveSlots(
	ctx context.Context,
	zoneID uint,
) ([]models.TimeSlot, error) {

	var slots []models.TimeSlot
	if err := r.db.WithContext(ctx).
		Where("zone_id = ? AND status = ?", zoneID, models.TimeSlotActive).
		Order("start_at ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *BookingGormRepository) HasActiveHold(
	ctx context.Context,
	timeslotID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"time_slot_id = ? AND status IN ?",
			timeslotID,
			[]string{string(domain.StatusPending), string(domain.StatusAccepted)},
		).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Booking (reserve / release)
// --------------------------------------------------

func (r *BookingGormRepository) ReserveSlot(
	ctx context.Context,
	ap *models.Appointment,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var slot models.TimeSlot
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&slot, ap.TimeSlotID).Error; err != nil {
			return err
		}

		if slot.Status != models.TimeSlotActive {
			return httperr.ErrForbidden("slot_not_usable")
		}

		var holds int64
		if err := tx.
			Model(&models.Appointment{}).
			Where(
				"time_slot_id = ? AND status IN ?",
				slot.ID,
				[]string{string(domain.StatusPending), string(domain.StatusAccepted)},
			).
			Count(&holds).Error; err != nil {
			return err
		}
		if holds > 0 {
			return httperr.ErrConflict("slot_already_booked")
		}

		var zone models.StorageZone
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&zone, ap.ZoneID).Error; err != nil {
			return err
		}
		if zone.AvailableCapacity < ap.RequestedQuantity {
			return httperr.ErrForbidden("capacity_insufficient")
		}

		slot.Status = models.TimeSlotNotActive
		if err := tx.Save(&slot).Error; err != nil {
			return err
		}

		zone.AvailableCapacity -= ap.RequestedQuantity
		if err := tx.Save(&zone).Error; err != nil {
			return err
		}

		return tx.Create(ap).Error
	})
}

func (r *BookingGormRepository) ReleaseSlot(
	ctx context.Context,
	ap *models.Appointment,
	now time.Time,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := tx.Save(ap).Error; err != nil {
			return err
		}

		var slot models.TimeSlot
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&slot, ap.TimeSlotID).Error; err != nil {
			return err
		}

		// A slot that already started stays unusable.
		if slot.StartAt.After(now) && slot.Status == models.TimeSlotNotActive {
			slot.Status = models.TimeSlotActive
			if err := tx.Save(&slot).Error; err != nil {
				return err
			}
		}

		return tx.
			Model(&models.StorageZone{}).
			Where("id = ?", ap.ZoneID).
			UpdateColumn(
				"available_capacity",
				gorm.Expr("available_capacity + ?", ap.RequestedQuantity),
			).Error
	})
}

// --------------------------------------------------
// Appointment (state change / queries)
// --------------------------------------------------

func (r *BookingGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *BookingGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *BookingGormRepository) ListAppointments(
	ctx context.Context,
	f domain.AppointmentFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("GrainType").
		Preload("TimeSlot").
		Preload("Zone").
		Preload("Zone.Warehouse")

	if f.FarmerID != 0 {
		q = q.Where("farmer_id = ?", f.FarmerID)
	}
	if len(f.ZoneIDs) > 0 {
		q = q.Where("zone_id IN ?", f.ZoneIDs)
	}
	if f.Status != "" {
		q = q.Where("status = ?", string(f.Status))
	}

	var aps []models.Appointment
	if err := q.Order("created_at DESC").Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *BookingGormRepository) ListZoneIDsByManager(
	ctx context.Context,
	managerID uint,
) ([]uint, error) {

	var zoneIDs []uint
	if err := r.db.WithContext(ctx).
		Model(&models.StorageZone{}).
		Joins("JOIN warehouses ON warehouses.id = storage_zones.warehouse_id").
		Where("warehouses.manager_id = ? AND warehouses.deleted_at IS NULL", managerID).
		Pluck("storage_zones.id", &zoneIDs).Error; err != nil {
		return nil, err
	}
	return zoneIDs, nil
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
