package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/graindock/grain-scheduler/internal/models"
)

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// 2026-03-01 is a Sunday.
var sundayMorning = time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

func seedZone(repo *fakeRepo, status string) *models.StorageZone {
	zone := &models.StorageZone{
		ID:                repo.id(),
		WarehouseID:       1,
		GrainTypeID:       1,
		Name:              "silo A",
		TotalCapacity:     10000,
		AvailableCapacity: 10000,
		Status:            status,
	}
	repo.zones[zone.ID] = zone
	return zone
}

func TestGenerateSlots_MaterializesWeeklyTemplate(t *testing.T) {
	repo := newFakeRepo()
	zone := seedZone(repo, models.ZoneActive)

	repo.templates = append(repo.templates, models.TimeSlotTemplate{
		ID:        1,
		ZoneID:    zone.ID,
		DayOfWeek: 0, // Monday
		StartTime: "09:00",
		EndTime:   "12:00",
	})

	uc := NewGenerateSlots(repo, zap.NewNop())
	uc.now = fixedNow(sundayMorning)

	created, err := uc.Execute(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, created, 1)

	slot := created[0]
	require.Equal(t, zone.ID, slot.ZoneID)
	require.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), slot.StartAt)
	require.Equal(t, time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC), slot.EndAt)
	require.Equal(t, models.TimeSlotActive, slot.Status)
}

func TestGenerateSlots_Idempotent(t *testing.T) {
	repo := newFakeRepo()
	zone := seedZone(repo, models.ZoneActive)

	repo.templates = append(repo.templates, models.TimeSlotTemplate{
		ID:        1,
		ZoneID:    zone.ID,
		DayOfWeek: 0,
		StartTime: "09:00",
		EndTime:   "12:00",
	})

	uc := NewGenerateSlots(repo, zap.NewNop())
	uc.now = fixedNow(sundayMorning)

	first, err := uc.Execute(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := uc.Execute(context.Background(), 7)
	require.NoError(t, err)
	require.Empty(t, second)
	require.Len(t, repo.slots, 1)
}

func TestGenerateSlots_SkipsInactiveZone(t *testing.T) {
	repo := newFakeRepo()
	zone := seedZone(repo, models.ZoneNotActive)

	repo.templates = append(repo.templates, models.TimeSlotTemplate{
		ID:        1,
		ZoneID:    zone.ID,
		DayOfWeek: 0,
		StartTime: "09:00",
		EndTime:   "12:00",
	})

	uc := NewGenerateSlots(repo, zap.NewNop())
	uc.now = fixedNow(sundayMorning)

	created, err := uc.Execute(context.Background(), 7)
	require.NoError(t, err)
	require.Empty(t, created)
}

func TestGenerateSlots_BrokenTemplateDoesNotAbortBatch(t *testing.T) {
	repo := newFakeRepo()
	zone := seedZone(repo, models.ZoneActive)

	repo.templates = append(repo.templates,
		models.TimeSlotTemplate{
			ID:        1,
			ZoneID:    zone.ID,
			DayOfWeek: 0,
			StartTime: "9am", // unparseable
			EndTime:   "12:00",
		},
		models.TimeSlotTemplate{
			ID:        2,
			ZoneID:    zone.ID,
			DayOfWeek: 0,
			StartTime: "14:00",
			EndTime:   "17:00",
		},
	)

	uc := NewGenerateSlots(repo, zap.NewNop())
	uc.now = fixedNow(sundayMorning)

	created, err := uc.Execute(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, created, 1)
	require.Equal(t, time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC), created[0].StartAt)
}

func TestGenerateSlots_HorizonExcludesToday(t *testing.T) {
	repo := newFakeRepo()
	zone := seedZone(repo, models.ZoneActive)

	// Template on Sunday, the day Execute runs. Only next week's Sunday
	// falls inside a 7 day horizon that starts tomorrow.
	repo.templates = append(repo.templates, models.TimeSlotTemplate{
		ID:        1,
		ZoneID:    zone.ID,
		DayOfWeek: 6,
		StartTime: "10:00",
		EndTime:   "11:00",
	})

	uc := NewGenerateSlots(repo, zap.NewNop())
	uc.now = fixedNow(sundayMorning)

	created, err := uc.Execute(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, created, 1)
	require.Equal(t, time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC), created[0].StartAt)
}
