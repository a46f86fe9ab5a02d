package booking

import (
	"context"

	"github.com/graindock/grain-scheduler/internal/audit"
	domain "github.com/graindock/grain-scheduler/internal/domain/booking"
	"github.com/graindock/grain-scheduler/internal/httperr"
	"github.com/graindock/grain-scheduler/internal/models"
)

type AcceptAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAcceptAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AcceptAppointment {
	return &AcceptAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AcceptAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrNotFound("appointment_not_found")
	}

	warehouse, err := uc.warehouseOf(ctx, ap)
	if err != nil {
		return nil, err
	}

	if err := domain.CanManageZone(actor, warehouse); err != nil {
		return nil, err
	}

	if err := domain.Accept(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		WarehouseID: warehouse.ID,
		UserID:      &actor.UserID,
		Action:      "appointment_accepted",
		Entity:      "appointment",
		EntityID:    &ap.ID,
	})

	return ap, nil
}

func (uc *AcceptAppointment) warehouseOf(
	ctx context.Context,
	ap *models.Appointment,
) (*models.Warehouse, error) {

	zone, err := uc.repo.GetZoneByID(ctx, ap.ZoneID)
	if err != nil {
		return nil, httperr.ErrNotFound("zone_not_found")
	}

	warehouse, err := uc.repo.GetWarehouseByID(ctx, zone.WarehouseID)
	if err != nil {
		return nil, httperr.ErrNotFound("warehouse_not_found")
	}

	return warehouse, nil
}
