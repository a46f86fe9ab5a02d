package booking

import (
	"context"
	"time"

	"gorm.io/gorm"

	domain "github.com/graindock/grain-scheduler/internal/domain/booking"
	"github.com/graindock/grain-scheduler/internal/httperr"
	"github.com/graindock/grain-scheduler/internal/models"
)

// fakeRepo is an in-memory domain.Repository for usecase tests. It
// mirrors the transactional semantics of the gorm implementation
// (re-checks inside ReserveSlot, release on refuse/cancel) without a
// database.
type fakeRepo struct {
	users        map[uint]*models.User
	warehouses   map[uint]*models.Warehouse
	zones        map[uint]*models.StorageZone
	grains       map[uint]*models.Grain
	slots        map[uint]*models.TimeSlot
	templates    []models.TimeSlotTemplate
	appointments map[uint]*models.Appointment
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		users:        map[uint]*models.User{},
		warehouses:   map[uint]*models.Warehouse{},
		zones:        map[uint]*models.StorageZone{},
		grains:       map[uint]*models.Grain{},
		slots:        map[uint]*models.TimeSlot{},
		appointments: map[uint]*models.Appointment{},
		nextID:       1,
	}
}

func (r *fakeRepo) id() uint {
	id := r.nextID
	r.nextID++
	return id
}

// -------- Entities --------

func (r *fakeRepo) GetUserByID(_ context.Context, id uint) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetWarehouseByID(_ context.Context, id uint) (*models.Warehouse, error) {
	if w, ok := r.warehouses[id]; ok {
		return w, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetZoneByID(_ context.Context, id uint) (*models.StorageZone, error) {
	if z, ok := r.zones[id]; ok {
		return z, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetGrainByID(_ context.Context, id uint) (*models.Grain, error) {
	if g, ok := r.grains[id]; ok {
		return g, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) GetTimeSlotByID(_ context.Context, id uint) (*models.TimeSlot, error) {
	if s, ok := r.slots[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

// -------- Templates / materialization --------

func (r *fakeRepo) ListTemplatesByWeekday(_ context.Context, weekday int) ([]models.TimeSlotTemplate, error) {
	var out []models.TimeSlotTemplate
	for _, tpl := range r.templates {
		if tpl.DayOfWeek == weekday {
			out = append(out, tpl)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetSlotByZoneAndStart(_ context.Context, zoneID uint, startAt time.Time) (*models.TimeSlot, error) {
	for _, s := range r.slots {
		if s.ZoneID == zoneID && s.StartAt.Equal(startAt) {
			return s, nil
		}
	}
	return nil, nil
}

func (r *fakeRepo) CreateTimeSlot(_ context.Context, slot *models.TimeSlot) error {
	slot.ID = r.id()
	cp := *slot
	r.slots[slot.ID] = &cp
	return nil
}

// -------- Availability --------

func (r *fakeRepo) ListActiveSlots(_ context.Context, zoneID uint) ([]models.TimeSlot, error) {
	var out []models.TimeSlot
	for _, s := range r.slots {
		if s.ZoneID == zoneID && s.Status == models.TimeSlotActive {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *fakeRepo) HasActiveHold(_ context.Context, timeslotID uint) (bool, error) {
	for _, ap := range r.appointments {
		if ap.TimeSlotID != timeslotID {
			continue
		}
		s := domain.Status(ap.Status)
		if s == domain.StatusPending || s == domain.StatusAccepted {
			return true, nil
		}
	}
	return false, nil
}

// -------- Booking (reserve / release) --------

func (r *fakeRepo) ReserveSlot(ctx context.Context, ap *models.Appointment) error {
	slot, ok := r.slots[ap.TimeSlotID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if slot.Status != models.TimeSlotActive {
		return httperr.ErrForbidden("slot_not_usable")
	}

	held, _ := r.HasActiveHold(ctx, slot.ID)
	if held {
		return httperr.ErrConflict("slot_already_booked")
	}

	zone, ok := r.zones[ap.ZoneID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	if zone.AvailableCapacity < ap.RequestedQuantity {
		return httperr.ErrForbidden("capacity_insufficient")
	}

	slot.Status = models.TimeSlotNotActive
	zone.AvailableCapacity -= ap.RequestedQuantity

	ap.ID = r.id()
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) ReleaseSlot(_ context.Context, ap *models.Appointment, now time.Time) error {
	cp := *ap
	r.appointments[ap.ID] = &cp

	if slot, ok := r.slots[ap.TimeSlotID]; ok {
		if slot.StartAt.After(now) && slot.Status == models.TimeSlotNotActive {
			slot.Status = models.TimeSlotActive
		}
	}

	if zone, ok := r.zones[ap.ZoneID]; ok {
		zone.AvailableCapacity += ap.RequestedQuantity
	}
	return nil
}

// -------- Appointment (state change / queries) --------

func (r *fakeRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	if ap, ok := r.appointments[id]; ok {
		cp := *ap
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	cp := *ap
	r.appointments[ap.ID] = &cp
	return nil
}

func (r *fakeRepo) ListAppointments(_ context.Context, f domain.AppointmentFilter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if f.FarmerID != 0 && ap.FarmerID != f.FarmerID {
			continue
		}
		if f.Status != "" && ap.Status != string(f.Status) {
			continue
		}
		if len(f.ZoneIDs) > 0 {
			found := false
			for _, id := range f.ZoneIDs {
				if ap.ZoneID == id {
					found = true
					break
				}
			}
			if !found {
				continue
			}
		}
		out = append(out, *ap)
	}
	return out, nil
}

func (r *fakeRepo) ListZoneIDsByManager(_ context.Context, managerID uint) ([]uint, error) {
	var out []uint
	for _, z := range r.zones {
		if w, ok := r.warehouses[z.WarehouseID]; ok && w.ManagerID == managerID {
			out = append(out, z.ID)
		}
	}
	return out, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
