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

type ConfirmAttendance struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewConfirmAttendance(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ConfirmAttendance {
	return &ConfirmAttendance{
		repo:  repo,
		audit: audit,
		now:   timeutil.Now,
	}
}

// Execute marks an accepted booking as completed after the farmer showed
// up. Capacity stays reserved: the grain is now in the zone.
func (uc *ConfirmAttendance) Execute(
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

	if err := domain.ConfirmAttendance(ap, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		WarehouseID: warehouse.ID,
		UserID:      &actor.UserID,
		Action:      "appointment_completed",
		Entity:      "appointment",
		EntityID:    &ap.ID,
	})

	return ap, nil
}
