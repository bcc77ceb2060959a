package ports

import (
	"context"

	"github.com/youngicthub/CelebBooker/internal/domain"
)

// Notifier delivers transactional email. All sends are fire-and-forget:
// failures are logged by the implementation, never surfaced to the caller.
type Notifier interface {
	NotifyActivation(ctx context.Context, to, activationURL, userName string)
	NotifyBookingSubmitted(ctx context.Context, user *domain.User, booking *domain.Booking)
	NotifyBookingReviewed(ctx context.Context, booking *domain.Booking)
}
