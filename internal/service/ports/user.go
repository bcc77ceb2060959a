package ports

import (
	"context"

	"github.com/youngicthub/CelebBooker/internal/domain"
)

type UserRepo interface {
	// Create inserts the user and its profile row in one transaction.
	Create(ctx context.Context, user *domain.User, role domain.Role) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetRole(ctx context.Context, userID string) (domain.Role, error)
}
