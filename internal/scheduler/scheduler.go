package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/graindock/grain-scheduler/internal/models"
)

// Generator is the slot materializer operation the scheduler drives.
type Generator interface {
	Execute(ctx context.Context, horizonDays int) ([]models.TimeSlot, error)
}

// Start runs one generation immediately and then one per interval until
// the context is cancelled. Generation errors are logged, never fatal:
// the next tick retries and the run is idempotent anyway.
func Start(
	ctx context.Context,
	gen Generator,
	interval time.Duration,
	horizonDays int,
	log *zap.Logger,
) {
	go func() {
		run(ctx, gen, horizonDays, log)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				log.Info("slot generation scheduler stopped")
				return
			case <-ticker.C:
				run(ctx, gen, horizonDays, log)
			}
		}
	}()
}

func run(ctx context.Context, gen Generator, horizonDays int, log *zap.Logger) {
	created, err := gen.Execute(ctx, horizonDays)
	if err != nil {
		log.Error("scheduled slot generation failed", zap.Error(err))
		return
	}
	log.Info("scheduled slot generation done", zap.Int("created", len(created)))
}
