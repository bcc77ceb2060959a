package ports

import (
	"context"
	"time"

	"github.com/youngicthub/CelebBooker/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListAll(ctx context.Context) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	Review(ctx context.Context, id string, status domain.BookingStatus, notes string) error
	CompleteElapsed(ctx context.Context, cutoff time.Time) ([]*domain.Booking, error)
}
