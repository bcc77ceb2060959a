package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/youngicthub/CelebBooker/internal/catalog"
	"github.com/youngicthub/CelebBooker/internal/domain"
	"github.com/youngicthub/CelebBooker/internal/pricing"
	"github.com/youngicthub/CelebBooker/internal/service/ports/mocks"
)

func TestCatalogService_List_AppliesQuery(t *testing.T) {
	repo := mocks.NewMockCelebrityRepo(t)
	svc := NewCatalogService(repo)

	all := []*domain.Celebrity{
		{ID: "c1", Name: "Sarah Johnson", Category: "Musicians", Availability: domain.AvailabilityAvailable},
		{ID: "c2", Name: "Marcus Thompson", Category: "Athletes", Availability: domain.AvailabilityAvailable},
	}
	repo.EXPECT().List(mock.Anything).Return(all, nil)

	got, err := svc.List(context.Background(), catalog.Query{Category: "Athletes"})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Marcus Thompson", got[0].Name)
}

func TestCatalogService_Packages(t *testing.T) {
	repo := mocks.NewMockCelebrityRepo(t)
	svc := NewCatalogService(repo)

	celebrity := &domain.Celebrity{ID: "c1", Name: "Sarah Johnson", HourlyRate: 500000}
	repo.EXPECT().GetByID(mock.Anything, "c1").Return(celebrity, nil)

	packages, err := svc.Packages(context.Background(), "c1")

	require.NoError(t, err)
	require.Len(t, packages, 3)
	assert.Equal(t, pricing.PackageBasic, packages[0].ID)
	assert.Equal(t, domain.Money(250000), packages[0].Price)
	assert.Equal(t, domain.Money(500000), packages[1].Price)
	assert.Equal(t, domain.Money(900000), packages[2].Price)
}

func TestCatalogService_CreateCelebrity_Defaults(t *testing.T) {
	repo := mocks.NewMockCelebrityRepo(t)
	svc := NewCatalogService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	c, err := svc.CreateCelebrity(context.Background(), domain.CelebrityInput{
		Name:        "DJ Phoenix",
		Category:    "Musicians",
		Description: "Touring DJ",
		HourlyRate:  280000,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, domain.AvailabilityAvailable, c.Availability)
	assert.Equal(t, 5.0, c.Rating)
}

func TestCatalogService_CreateCelebrity_Invalid(t *testing.T) {
	repo := mocks.NewMockCelebrityRepo(t)
	svc := NewCatalogService(repo)

	cases := []struct {
		name  string
		input domain.CelebrityInput
	}{
		{"missing name", domain.CelebrityInput{Category: "Musicians", Description: "x", HourlyRate: 100}},
		{"missing category", domain.CelebrityInput{Name: "X", Description: "x", HourlyRate: 100}},
		{"zero rate", domain.CelebrityInput{Name: "X", Category: "Musicians", Description: "x"}},
		{"rating out of range", domain.CelebrityInput{Name: "X", Category: "Musicians", Description: "x", HourlyRate: 100, Rating: 5.5}},
		{"unknown availability", domain.CelebrityInput{Name: "X", Category: "Musicians", Description: "x", HourlyRate: 100, Availability: "away"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateCelebrity(context.Background(), tc.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCatalogService_UpdateCelebrity(t *testing.T) {
	repo := mocks.NewMockCelebrityRepo(t)
	svc := NewCatalogService(repo)

	existing := &domain.Celebrity{
		ID:           "c1",
		Name:         "Sarah Johnson",
		Category:     "Musicians",
		Description:  "old",
		HourlyRate:   500000,
		Availability: domain.AvailabilityAvailable,
		Rating:       4.9,
	}
	repo.EXPECT().GetByID(mock.Anything, "c1").Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	updated, err := svc.UpdateCelebrity(context.Background(), "c1", domain.CelebrityInput{
		Name:        "Sarah Johnson",
		Category:    "Musicians",
		Description: "new bio",
		HourlyRate:  550000,
	})

	require.NoError(t, err)
	assert.Equal(t, "new bio", updated.Description)
	assert.Equal(t, domain.Money(550000), updated.HourlyRate)
	// omitted availability and rating keep their stored values
	assert.Equal(t, domain.AvailabilityAvailable, updated.Availability)
	assert.Equal(t, 4.9, updated.Rating)
}

func TestCatalogService_UpdateCelebrity_NotFound(t *testing.T) {
	repo := mocks.NewMockCelebrityRepo(t)
	svc := NewCatalogService(repo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrCelebrityNotFound)

	_, err := svc.UpdateCelebrity(context.Background(), "missing", domain.CelebrityInput{
		Name:        "X",
		Category:    "Musicians",
		Description: "x",
		HourlyRate:  100,
	})

	assert.ErrorIs(t, err, domain.ErrCelebrityNotFound)
}

func TestCatalogService_DeleteCelebrity(t *testing.T) {
	repo := mocks.NewMockCelebrityRepo(t)
	svc := NewCatalogService(repo)

	repo.EXPECT().Delete(mock.Anything, "c1").Return(nil)

	require.NoError(t, svc.DeleteCelebrity(context.Background(), "c1"))
}
