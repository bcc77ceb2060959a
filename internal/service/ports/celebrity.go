package ports

import (
	"context"

	"github.com/youngicthub/CelebBooker/internal/domain"
)

type CelebrityRepo interface {
	Create(ctx context.Context, c *domain.Celebrity) error
	GetByID(ctx context.Context, id string) (*domain.Celebrity, error)
	List(ctx context.Context) ([]*domain.Celebrity, error)
	Update(ctx context.Context, c *domain.Celebrity) error
	Delete(ctx context.Context, id string) error
}
