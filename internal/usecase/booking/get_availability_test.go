package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/graindock/grain-scheduler/internal/httperr"
	"github.com/graindock/grain-scheduler/internal/models"
)

func seedSlot(repo *fakeRepo, zoneID uint, startAt time.Time, status string) *models.TimeSlot {
	slot := &models.TimeSlot{
		ID:      repo.id(),
		ZoneID:  zoneID,
		StartAt: startAt,
		EndAt:   startAt.Add(3 * time.Hour),
		Status:  status,
	}
	repo.slots[slot.ID] = slot
	return slot
}

func TestGetAvailability_ZoneNotFound(t *testing.T) {
	uc := NewGetAvailability(newFakeRepo())

	_, err := uc.Execute(context.Background(), 42, 0)
	require.True(t, httperr.IsBusiness(err, "zone_not_found"))
}

func TestGetAvailability_GrainMismatchYieldsEmptyList(t *testing.T) {
	repo := newFakeRepo()
	zone := seedZone(repo, models.ZoneActive) // stores grain type 1
	seedSlot(repo, zone.ID, sundayMorning.AddDate(0, 0, 1), models.TimeSlotActive)

	uc := NewGetAvailability(repo)
	uc.now = fixedNow(sundayMorning)

	views, err := uc.Execute(context.Background(), zone.ID, 99)
	require.NoError(t, err)
	require.Empty(t, views)
}

func TestGetAvailability_ExcludesPastAndBookedSlots(t *testing.T) {
	repo := newFakeRepo()
	zone := seedZone(repo, models.ZoneActive)

	past := seedSlot(repo, zone.ID, sundayMorning.Add(-2*time.Hour), models.TimeSlotActive)
	booked := seedSlot(repo, zone.ID, sundayMorning.Add(24*time.Hour), models.TimeSlotNotActive)
	open := seedSlot(repo, zone.ID, sundayMorning.Add(48*time.Hour), models.TimeSlotActive)

	uc := NewGetAvailability(repo)
	uc.now = fixedNow(sundayMorning)

	views, err := uc.Execute(context.Background(), zone.ID, zone.GrainTypeID)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, open.ID, views[0].ID)
	require.NotEqual(t, past.ID, views[0].ID)
	require.NotEqual(t, booked.ID, views[0].ID)
}

func TestGetAvailability_ReleasedSlotIsOfferedAgain(t *testing.T) {
	repo := newFakeRepo()
	zone := seedZone(repo, models.ZoneActive)
	slot := seedSlot(repo, zone.ID, sundayMorning.Add(24*time.Hour), models.TimeSlotNotActive)

	uc := NewGetAvailability(repo)
	uc.now = fixedNow(sundayMorning)

	views, err := uc.Execute(context.Background(), zone.ID, 0)
	require.NoError(t, err)
	require.Empty(t, views)

	// A refused or cancelled booking flips the slot back to active.
	slot.Status = models.TimeSlotActive

	views, err = uc.Execute(context.Background(), zone.ID, 0)
	require.NoError(t, err)
	require.Len(t, views, 1)
	require.Equal(t, slot.ID, views[0].ID)
}

func TestGetAvailability_SortedAscendingWithFormattedTimes(t *testing.T) {
	repo := newFakeRepo()
	zone := seedZone(repo, models.ZoneActive)

	later := seedSlot(repo, zone.ID, time.Date(2026, 3, 4, 14, 0, 0, 0, time.UTC), models.TimeSlotActive)
	earlier := seedSlot(repo, zone.ID, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), models.TimeSlotActive)

	uc := NewGetAvailability(repo)
	uc.now = fixedNow(sundayMorning)

	views, err := uc.Execute(context.Background(), zone.ID, 0)
	require.NoError(t, err)
	require.Len(t, views, 2)

	require.Equal(t, earlier.ID, views[0].ID)
	require.Equal(t, later.ID, views[1].ID)

	require.Equal(t, "2026-03-02", views[0].Date)
	require.Equal(t, "09:00", views[0].StartTime)
	require.Equal(t, "12:00", views[0].EndTime)
}
