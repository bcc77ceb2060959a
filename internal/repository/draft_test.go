package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/youngicthub/CelebBooker/internal/domain"
	"github.com/youngicthub/CelebBooker/internal/pricing"
	"github.com/youngicthub/CelebBooker/internal/wizard"
)

func newDraft(t *testing.T, id string) *wizard.Draft {
	t.Helper()

	c := &domain.Celebrity{ID: "c1", Name: "Sarah Johnson", HourlyRate: 500000}
	pkg, err := pricing.PackageFor(c, pricing.PackageStandard)
	require.NoError(t, err)

	return wizard.New(id, "u1", c, pkg, "alice@example.com", time.Now())
}

func TestDraftStore_SaveAndGet(t *testing.T) {
	store := NewDraftStore()
	ctx := context.Background()

	d := newDraft(t, "d1")
	require.NoError(t, store.Save(ctx, d))

	got, err := store.GetByID(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, d, got)
}

func TestDraftStore_GetByID_NotFound(t *testing.T) {
	store := NewDraftStore()

	_, err := store.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestDraftStore_SaveReplacesDraftForSameOwner(t *testing.T) {
	store := NewDraftStore()
	ctx := context.Background()

	first := newDraft(t, "d1")
	second := newDraft(t, "d2")
	require.NoError(t, store.Save(ctx, first))
	require.NoError(t, store.Save(ctx, second))

	_, err := store.GetByID(ctx, "d1")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)

	got, err := store.GetByID(ctx, "d2")
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestDraftStore_Delete(t *testing.T) {
	store := NewDraftStore()
	ctx := context.Background()

	d := newDraft(t, "d1")
	require.NoError(t, store.Save(ctx, d))
	require.NoError(t, store.Delete(ctx, "d1"))

	_, err := store.GetByID(ctx, "d1")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)

	// Owner slot is free again after delete.
	require.NoError(t, store.Save(ctx, newDraft(t, "d3")))
	got, err := store.GetByID(ctx, "d3")
	require.NoError(t, err)
	assert.Equal(t, "d3", got.ID)
}

func TestDraftStore_Delete_NotFound(t *testing.T) {
	store := NewDraftStore()

	err := store.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}
