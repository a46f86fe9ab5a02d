package booking

import (
	"github.com/graindock/grain-scheduler/internal/httperr"
	"github.com/graindock/grain-scheduler/internal/models"
)

// Actor is the authenticated caller of a booking operation.
type Actor struct {
	UserID uint
	Role   string
}

// CanManageZone decides whether the actor may accept, refuse or confirm
// appointments for a zone. Platform admins may manage any zone; warehouse
// admins only the zones of warehouses they manage.
func CanManageZone(actor Actor, warehouse *models.Warehouse) error {
	if actor.Role == models.RoleAdmin {
		return nil
	}
	if actor.Role == models.RoleWarehouseAdmin && warehouse.ManagerID == actor.UserID {
		return nil
	}
	return httperr.ErrForbidden("not_zone_admin")
}

// CanCancelAppointment: only the owning farmer cancels a booking.
func CanCancelAppointment(actor Actor, ap *models.Appointment) error {
	if ap.FarmerID != actor.UserID {
		return httperr.ErrForbidden("not_owner")
	}
	return nil
}
