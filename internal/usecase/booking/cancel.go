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

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		now:   timeutil.Now,
	}
}

// Execute cancels the farmer's own booking from any pre-completion state
// and releases the slot and capacity it held.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}

	if err := domain.CanCancelAppointment(actor, ap); err != nil {
		return nil, err
	}

	now := uc.now()
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.ReleaseSlot(ctx, ap, now); err != nil {
		return nil, err
	}

	zone, err := uc.repo.GetZoneByID(ctx, ap.ZoneID)
	if err == nil {
		uc.audit.Dispatch(audit.Event{
			WarehouseID: zone.WarehouseID,
			UserID:      &actor.UserID,
			Action:      "appointment_cancelled",
			Entity:      "appointment",
			EntityID:    &ap.ID,
		})
	}

	return ap, nil
}
