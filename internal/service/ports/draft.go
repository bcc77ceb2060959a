package ports

import (
	"context"

	"github.com/youngicthub/CelebBooker/internal/wizard"
)

type DraftStore interface {
	// Save stores the draft, replacing any other draft the same user holds
	// for the same celebrity and package.
	Save(ctx context.Context, d *wizard.Draft) error
	GetByID(ctx context.Context, id string) (*wizard.Draft, error)
	Delete(ctx context.Context, id string) error
}
