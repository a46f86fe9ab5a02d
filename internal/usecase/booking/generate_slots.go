package booking

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/graindock/grain-scheduler/internal/domain/booking"
	"github.com/graindock/grain-scheduler/internal/models"
	"github.com/graindock/grain-scheduler/internal/timeutil"
)

// ======================================================
// GENERATE SLOTS (materializer)
// ======================================================

type GenerateSlots struct {
	repo domain.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewGenerateSlots(repo domain.Repository, log *zap.Logger) *GenerateSlots {
	return &GenerateSlots{
		repo: repo,
		log:  log,
		now:  timeutil.Now,
	}
}

// Execute expands every weekly template into concrete dated slots for the
// next horizonDays days (tomorrow first, today excluded). Existing
// (zone, start_at) pairs and inactive zones are skipped, so repeated runs
// are idempotent. A failure on one template never aborts the batch.
func (uc *GenerateSlots) Execute(
	ctx context.Context,
	horizonDays int,
) ([]models.TimeSlot, error) {

	today := uc.now().Truncate(24 * time.Hour)
	created := []models.TimeSlot{}

	for offset := 1; offset <= horizonDays; offset++ {
		date := today.AddDate(0, 0, offset)
		weekday := timeutil.Weekday(date)

		templates, err := uc.repo.ListTemplatesByWeekday(ctx, weekday)
		if err != nil {
			return nil, err
		}

		for _, tpl := range templates {
			slot, err := uc.materialize(ctx, tpl, date)
			if err != nil {
				uc.log.Error("slot generation failed for template",
					zap.Uint("template_id", tpl.ID),
					zap.Uint("zone_id", tpl.ZoneID),
					zap.Time("date", date),
					zap.Error(err))
				continue
			}
			if slot != nil {
				created = append(created, *slot)
			}
		}
	}

	uc.log.Info("slot generation finished",
		zap.Int("horizon_days", horizonDays),
		zap.Int("created", len(created)))

	return created, nil
}

// materialize creates the slot for one template on one date. Returns
// (nil, nil) when the slot is skipped: inactive or missing zone, or a slot
// already exists for the same zone and start instant.
func (uc *GenerateSlots) materialize(
	ctx context.Context,
	tpl models.TimeSlotTemplate,
	date time.Time,
) (*models.TimeSlot, error) {

	zone, err := uc.repo.GetZoneByID(ctx, tpl.ZoneID)
	if err != nil {
		uc.log.Warn("zone not found, skipping template",
			zap.Uint("template_id", tpl.ID),
			zap.Uint("zone_id", tpl.ZoneID))
		return nil, nil
	}
	if zone.Status != models.ZoneActive {
		uc.log.Debug("skipping inactive zone",
			zap.Uint("zone_id", zone.ID),
			zap.Time("date", date))
		return nil, nil
	}

	startAt, err := timeutil.CombineDate(date, tpl.StartTime)
	if err != nil {
		return nil, err
	}
	endAt, err := timeutil.CombineDate(date, tpl.EndTime)
	if err != nil {
		return nil, err
	}

	existing, err := uc.repo.GetSlotByZoneAndStart(ctx, tpl.ZoneID, startAt)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, nil
	}

	slot := &models.TimeSlot{
		ZoneID:  tpl.ZoneID,
		StartAt: startAt,
		EndAt:   endAt,
		Status:  models.TimeSlotActive,
	}

	if err := uc.repo.CreateTimeSlot(ctx, slot); err != nil {
		return nil, err
	}

	return slot, nil
}
