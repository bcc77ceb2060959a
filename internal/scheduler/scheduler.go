package scheduler

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
	"github.com/youngicthub/CelebBooker/internal/domain"
)

type bookingCompleter interface {
	CompleteElapsed(ctx context.Context) ([]*domain.Booking, error)
}

type Scheduler struct {
	adminService bookingCompleter
	interval     time.Duration
	logger       logger.Logger
}

func New(
	adminService bookingCompleter,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		adminService: adminService,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	completed, err := s.adminService.CompleteElapsed(ctx)
	if err != nil {
		s.logger.Error("failed to complete elapsed bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range completed {
		s.logger.Info("booking completed",
			logger.String("booking_id", b.ID),
			logger.String("user_id", b.UserID),
			logger.String("celebrity_id", b.CelebrityID),
		)
	}
}
