package booking

import (
	"context"

	domain "github.com/graindock/grain-scheduler/internal/domain/booking"
	"github.com/graindock/grain-scheduler/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute scopes the listing by role: farmers see their own bookings,
// warehouse admins the bookings of zones in warehouses they manage,
// platform admins everything.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	actor domain.Actor,
	status domain.Status,
) ([]models.Appointment, error) {

	f := domain.AppointmentFilter{Status: status}

	switch actor.Role {
	case models.RoleFarmer:
		f.FarmerID = actor.UserID

	case models.RoleWarehouseAdmin:
		zoneIDs, err := uc.managedZoneIDs(ctx, actor.UserID)
		if err != nil {
			return nil, err
		}
		if len(zoneIDs) == 0 {
			return []models.Appointment{}, nil
		}
		f.ZoneIDs = zoneIDs
	}

	return uc.repo.ListAppointments(ctx, f)
}

func (uc *ListAppointments) managedZoneIDs(
	ctx context.Context,
	managerID uint,
) ([]uint, error) {
	return uc.repo.ListZoneIDsByManager(ctx, managerID)
}
