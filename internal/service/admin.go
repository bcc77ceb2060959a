package service

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/logger"
	"github.com/youngicthub/CelebBooker/internal/domain"
	"github.com/youngicthub/CelebBooker/internal/service/ports"
)

type AdminService struct {
	bookings ports.BookingRepo
	notifier ports.Notifier
	logger   logger.Logger
}

func NewAdminService(bookings ports.BookingRepo, notifier ports.Notifier, logger logger.Logger) *AdminService {
	return &AdminService{
		bookings: bookings,
		notifier: notifier,
		logger:   logger,
	}
}

// ListBookings returns every record regardless of owner, newest first.
func (s *AdminService) ListBookings(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookings.ListAll(ctx)
}

// Stats aggregates the dashboard figures over all records.
func (s *AdminService) Stats(ctx context.Context) (domain.BookingStats, error) {
	records, err := s.bookings.ListAll(ctx)
	if err != nil {
		return domain.BookingStats{}, fmt.Errorf("list bookings: %w", err)
	}

	return ComputeStats(records), nil
}

// ComputeStats counts records per status and sums revenue over ALL
// records regardless of status, matching the observed dashboard.
func ComputeStats(records []*domain.Booking) domain.BookingStats {
	var stats domain.BookingStats
	stats.Total = len(records)
	for _, b := range records {
		switch b.Status {
		case domain.BookingStatusPending:
			stats.Pending++
		case domain.BookingStatusApproved:
			stats.Approved++
		}
		stats.Revenue += b.Amount
	}
	return stats
}

// Review transitions a pending record to approved or rejected with the
// operator's notes. A record that is no longer pending cannot be
// re-reviewed.
func (s *AdminService) Review(ctx context.Context, id string, decision domain.ReviewDecision, notes string) (*domain.Booking, error) {
	var status domain.BookingStatus
	switch decision {
	case domain.DecisionApproved:
		status = domain.BookingStatusApproved
	case domain.DecisionRejected:
		status = domain.BookingStatusRejected
	default:
		return nil, fmt.Errorf("%w: decision must be approved or rejected", domain.ErrValidation)
	}

	if err := s.bookings.Review(ctx, id, status, notes); err != nil {
		return nil, fmt.Errorf("review booking: %w", err)
	}

	booking, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("reload booking: %w", err)
	}

	s.logger.Info("booking reviewed",
		logger.String("booking_id", id),
		logger.String("decision", string(decision)),
	)

	go s.notifier.NotifyBookingReviewed(context.WithoutCancel(ctx), booking)

	return booking, nil
}

// CompleteElapsed is driven by the scheduler: approved bookings whose
// event date has passed become completed.
func (s *AdminService) CompleteElapsed(ctx context.Context) ([]*domain.Booking, error) {
	completed, err := s.bookings.CompleteElapsed(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("complete elapsed: %w", err)
	}

	if len(completed) > 0 {
		s.logger.Info("bookings completed",
			logger.Int("count", len(completed)),
		)
	}

	return completed, nil
}
