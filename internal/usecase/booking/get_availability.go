package booking

import (
	"context"
	"sort"
	"time"

	domain "github.com/graindock/grain-scheduler/internal/domain/booking"
	"github.com/graindock/grain-scheduler/internal/httperr"
	"github.com/graindock/grain-scheduler/internal/timeutil"
)

type GetAvailability struct {
	repo domain.Repository
	now  func() time.Time
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{
		repo: repo,
		now:  timeutil.Now,
	}
}

// Execute lists bookable slots for a zone, ascending by start.
// A grain type that the zone does not store yields an empty list, not an
// error. Slot status is the single booking signal here: reserving a slot
// flips it to not_active and releasing it flips it back, so no extra
// appointment lookup is needed per slot.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	zoneID uint,
	grainTypeID uint,
) ([]domain.SlotView, error) {

	zone, err := uc.repo.GetZoneByID(ctx, zoneID)
	if err != nil {
		return nil, httperr.ErrNotFound("zone_not_found")
	}

	if grainTypeID != 0 && zone.GrainTypeID != grainTypeID {
		return []domain.SlotView{}, nil
	}

	slots, err := uc.repo.ListActiveSlots(ctx, zoneID)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	views := []domain.SlotView{}

	for _, s := range slots {
		if s.StartAt.Before(now) {
			continue
		}
		views = append(views, domain.SlotView{
			ID:        s.ID,
			ZoneID:    s.ZoneID,
			StartAt:   s.StartAt,
			EndAt:     s.EndAt,
			Date:      s.StartAt.Format("2006-01-02"),
			StartTime: s.StartAt.Format("15:04"),
			EndTime:   s.EndAt.Format("15:04"),
		})
	}

	sort.Slice(views, func(i, j int) bool {
		return views[i].StartAt.Before(views[j].StartAt)
	})

	return views, nil
}
