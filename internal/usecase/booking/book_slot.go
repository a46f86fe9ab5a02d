package booking

import (
	"context"

	"github.com/graindock/grain-scheduler/internal/audit"
	domain "github.com/graindock/grain-scheduler/internal/domain/booking"
	"github.com/graindock/grain-scheduler/internal/httperr"
	"github.com/graindock/grain-scheduler/internal/models"
)

// ======================================================
// BOOK SLOT
// ======================================================

type BookSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewBookSlot(repo domain.Repository, audit *audit.Dispatcher) *BookSlot {
	return &BookSlot{
		repo:  repo,
		audit: audit,
	}
}

// Execute reserves a time slot for a farmer. The slot is held eagerly:
// a pending appointment already blocks it from being offered again.
// Preconditions are checked in a fixed order so every failure mode is a
// distinct response; the decisive re-check happens inside ReserveSlot
// under a row lock, so two concurrent bookings of one slot cannot both
// succeed.
func (uc *BookSlot) Execute(
	ctx context.Context,
	in domain.BookSlotInput,
) (*models.Appointment, error) {

	if _, err := uc.repo.GetUserByID(ctx, in.FarmerID); err != nil {
		return nil, httperr.ErrNotFound("farmer_not_found")
	}

	zone, err := uc.repo.GetZoneByID(ctx, in.ZoneID)
	if err != nil {
		return nil, httperr.ErrNotFound("zone_not_found")
	}

	slot, err := uc.repo.GetTimeSlotByID(ctx, in.TimeSlotID)
	if err != nil {
		return nil, httperr.ErrNotFound("timeslot_not_found")
	}

	if _, err := uc.repo.GetGrainByID(ctx, in.GrainTypeID); err != nil {
		return nil, httperr.ErrNotFound("grain_not_found")
	}

	if slot.Status != models.TimeSlotActive {
		return nil, httperr.ErrForbidden("slot_not_usable")
	}

	if zone.AvailableCapacity < in.RequestedQuantity {
		return nil, httperr.ErrForbidden("capacity_insufficient")
	}

	held, err := uc.repo.HasActiveHold(ctx, slot.ID)
	if err != nil {
		return nil, err
	}
	if held {
		return nil, httperr.ErrConflict("slot_already_booked")
	}

	ap := &models.Appointment{
		FarmerID:          in.FarmerID,
		ZoneID:            in.ZoneID,
		GrainTypeID:       in.GrainTypeID,
		TimeSlotID:        in.TimeSlotID,
		RequestedQuantity: in.RequestedQuantity,
		Status:            string(domain.InitialStatus()),
	}

	if err := uc.repo.ReserveSlot(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		WarehouseID: zone.WarehouseID,
		UserID:      &in.FarmerID,
		Action:      "appointment_created",
		Entity:      "appointment",
		EntityID:    &ap.ID,
	})

	return ap, nil
}
