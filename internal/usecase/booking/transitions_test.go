package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/graindock/grain-scheduler/internal/domain/booking"
	"github.com/graindock/grain-scheduler/internal/httperr"
	"github.com/graindock/grain-scheduler/internal/models"
)

// transitionFixture extends the booking fixture with a manager, their
// warehouse and one pending appointment already on the slot.
type transitionFixture struct {
	*bookingFixture
	manager     *models.User
	warehouse   *models.Warehouse
	appointment *models.Appointment
}

func newTransitionFixture(t *testing.T) *transitionFixture {
	t.Helper()

	f := newBookingFixture(t)

	manager := seedUser(f.repo, models.RoleWarehouseAdmin)
	warehouse := &models.Warehouse{
		ID:        f.zone.WarehouseID,
		ManagerID: manager.ID,
		Name:      "north terminal",
		Status:    models.WarehouseActive,
	}
	f.repo.warehouses[warehouse.ID] = warehouse

	ap, err := NewBookSlot(f.repo, nil).Execute(context.Background(), f.input())
	require.NoError(t, err)

	return &transitionFixture{
		bookingFixture: f,
		manager:        manager,
		warehouse:      warehouse,
		appointment:    ap,
	}
}

func (f *transitionFixture) managerActor() domain.Actor {
	return domain.Actor{UserID: f.manager.ID, Role: models.RoleWarehouseAdmin}
}

func (f *transitionFixture) farmerActor() domain.Actor {
	return domain.Actor{UserID: f.farmer.ID, Role: models.RoleFarmer}
}

func TestAcceptAppointment_ByManagingAdmin(t *testing.T) {
	f := newTransitionFixture(t)
	uc := NewAcceptAppointment(f.repo, nil)

	ap, err := uc.Execute(context.Background(), f.managerActor(), f.appointment.ID)
	require.NoError(t, err)
	require.Equal(t, string(domain.StatusAccepted), ap.Status)

	// Second accept hits the state machine.
	_, err = uc.Execute(context.Background(), f.managerActor(), f.appointment.ID)
	require.True(t, httperr.IsBusiness(err, "invalid_state"))
}

func TestAcceptAppointment_ForeignManagerDenied(t *testing.T) {
	f := newTransitionFixture(t)
	other := seedUser(f.repo, models.RoleWarehouseAdmin)

	uc := NewAcceptAppointment(f.repo, nil)
	_, err := uc.Execute(
		context.Background(),
		domain.Actor{UserID: other.ID, Role: models.RoleWarehouseAdmin},
		f.appointment.ID,
	)
	require.True(t, httperr.IsBusiness(err, "not_zone_admin"))

	stored, getErr := f.repo.GetAppointmentByID(context.Background(), f.appointment.ID)
	require.NoError(t, getErr)
	require.Equal(t, string(domain.StatusPending), stored.Status)
}

func TestAcceptAppointment_NotFound(t *testing.T) {
	f := newTransitionFixture(t)
	uc := NewAcceptAppointment(f.repo, nil)

	_, err := uc.Execute(context.Background(), f.managerActor(), 999)
	require.True(t, httperr.IsBusiness(err, "appointment_not_found"))
}

func TestRefuseAppointment_ReleasesSlotAndCapacity(t *testing.T) {
	f := newTransitionFixture(t)

	require.Equal(t, models.TimeSlotNotActive, f.slot.Status)
	require.EqualValues(t, 9500, f.zone.AvailableCapacity)

	uc := NewRefuseAppointment(f.repo, nil)
	uc.now = fixedNow(sundayMorning)

	ap, err := uc.Execute(context.Background(), f.managerActor(), f.appointment.ID)
	require.NoError(t, err)
	require.Equal(t, string(domain.StatusRefused), ap.Status)

	require.Equal(t, models.TimeSlotActive, f.slot.Status)
	require.EqualValues(t, 10000, f.zone.AvailableCapacity)
}

func TestCancelAppointment_OwnerOnly(t *testing.T) {
	f := newTransitionFixture(t)
	stranger := seedUser(f.repo, models.RoleFarmer)

	uc := NewCancelAppointment(f.repo, nil)
	uc.now = fixedNow(sundayMorning)

	_, err := uc.Execute(
		context.Background(),
		domain.Actor{UserID: stranger.ID, Role: models.RoleFarmer},
		f.appointment.ID,
	)
	require.True(t, httperr.IsBusiness(err, "not_owner"))

	ap, err := uc.Execute(context.Background(), f.farmerActor(), f.appointment.ID)
	require.NoError(t, err)
	require.Equal(t, string(domain.StatusCancelled), ap.Status)
	require.NotNil(t, ap.CancelledAt)

	require.Equal(t, models.TimeSlotActive, f.slot.Status)
	require.EqualValues(t, 10000, f.zone.AvailableCapacity)
}

func TestCancelAppointment_AfterAccept(t *testing.T) {
	f := newTransitionFixture(t)

	_, err := NewAcceptAppointment(f.repo, nil).
		Execute(context.Background(), f.managerActor(), f.appointment.ID)
	require.NoError(t, err)

	uc := NewCancelAppointment(f.repo, nil)
	uc.now = fixedNow(sundayMorning)

	ap, err := uc.Execute(context.Background(), f.farmerActor(), f.appointment.ID)
	require.NoError(t, err)
	require.Equal(t, string(domain.StatusCancelled), ap.Status)
	require.Equal(t, models.TimeSlotActive, f.slot.Status)
}

func TestConfirmAttendance_OnlyFromAccepted(t *testing.T) {
	f := newTransitionFixture(t)

	uc := NewConfirmAttendance(f.repo, nil)
	uc.now = fixedNow(sundayMorning)

	_, err := uc.Execute(context.Background(), f.managerActor(), f.appointment.ID)
	require.True(t, httperr.IsBusiness(err, "invalid_state"))

	_, err = NewAcceptAppointment(f.repo, nil).
		Execute(context.Background(), f.managerActor(), f.appointment.ID)
	require.NoError(t, err)

	ap, err := uc.Execute(context.Background(), f.managerActor(), f.appointment.ID)
	require.NoError(t, err)
	require.Equal(t, string(domain.StatusCompleted), ap.Status)
	require.NotNil(t, ap.CompletedAt)

	// The grain is in the zone now: capacity stays debited and the slot
	// stays consumed.
	require.Equal(t, models.TimeSlotNotActive, f.slot.Status)
	require.EqualValues(t, 9500, f.zone.AvailableCapacity)
}

func TestListAppointments_ScopedByRole(t *testing.T) {
	f := newTransitionFixture(t)
	ctx := context.Background()

	// Second booking by another farmer in the same zone.
	other := seedUser(f.repo, models.RoleFarmer)
	slot2 := seedSlot(f.repo, f.zone.ID, f.slot.StartAt.Add(3*time.Hour), models.TimeSlotActive)
	in := f.input()
	in.FarmerID = other.ID
	in.TimeSlotID = slot2.ID
	_, err := NewBookSlot(f.repo, nil).Execute(ctx, in)
	require.NoError(t, err)

	uc := NewListAppointments(f.repo)

	mine, err := uc.Execute(ctx, f.farmerActor(), "")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, f.farmer.ID, mine[0].FarmerID)

	managed, err := uc.Execute(ctx, f.managerActor(), "")
	require.NoError(t, err)
	require.Len(t, managed, 2)

	idle := seedUser(f.repo, models.RoleWarehouseAdmin)
	none, err := uc.Execute(ctx, domain.Actor{UserID: idle.ID, Role: models.RoleWarehouseAdmin}, "")
	require.NoError(t, err)
	require.Empty(t, none)

	all, err := uc.Execute(ctx, domain.Actor{UserID: 1, Role: models.RoleAdmin}, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	pending, err := uc.Execute(ctx, domain.Actor{UserID: 1, Role: models.RoleAdmin}, domain.StatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 2)
}
