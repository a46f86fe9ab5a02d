package booking

import (
	"context"
	"time"

	"github.com/graindock/grain-scheduler/internal/audit"
	domain "github.com/graindock/grain-scheduler/internal/domain/booking"
	"github.com/graindock/grain-scheduler/internal/httperr"
	"github.com/graindock/grain-scheduler/internal/models"
	"github.com/graindock/grain-scheduler/internal/timeutil"
)

type RefuseAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewRefuseAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *RefuseAppointment {
	return &RefuseAppointment{
		repo:  repo,
		audit: audit,
		now:   timeutil.Now,
	}
}

// Execute refuses a pending booking. Refusal frees the reservation:
// the slot becomes bookable again and the zone capacity is restored.
func (uc *RefuseAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}

	zone, err := uc.repo.GetZoneByID(ctx, ap.ZoneID)
	if err != nil {
		return nil, httperr.ErrNotFound("zone_not_found")
	}

	warehouse, err := uc.repo.GetWarehouseByID(ctx, zone.WarehouseID)
	if err != nil {
		return nil, httperr.ErrNotFound("warehouse_not_found")
	}

	if err := domain.CanManageZone(actor, warehouse); err != nil {
		return nil, err
	}

	if err := domain.Refuse(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.ReleaseSlot(ctx, ap, uc.now()); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		WarehouseID: warehouse.ID,
		UserID:      &actor.UserID,
		Action:      "appointment_refused",
		Entity:      "appointment",
		EntityID:    &ap.ID,
	})

	return ap, nil
}
