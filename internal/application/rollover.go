package application

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"eventdesk/internal/ports/output"
)

// RolloverService periodically marks events whose end time has passed as
// completed, so the capacity guard stops accepting registrations for them.
type RolloverService struct {
	eventRepo output.EventRepository
	interval  time.Duration
	logger    zerolog.Logger
}

func NewRolloverService(eventRepo output.EventRepository, interval time.Duration, logger zerolog.Logger) *RolloverService {
	return &RolloverService{
		eventRepo: eventRepo,
		interval:  interval,
		logger:    logger,
	}
}

// Run ticks until ctx is canceled. Each tick is an independent transactional
// update; a failed tick is logged and retried on the next interval.
func (s *RolloverService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx, time.Now())
		}
	}
}

func (s *RolloverService) tick(ctx context.Context, now time.Time) {
	updated, err := s.eventRepo.MarkEndedCompleted(ctx, now)
	if err != nil {
		s.logger.Error().Err(err).Msg("status rollover failed")
		return
	}
	if updated > 0 {
		s.logger.Info().Int64("events", updated).Msg("marked ended events as completed")
	}
}
