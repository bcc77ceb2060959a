package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/youngicthub/CelebBooker/internal/catalog"
	"github.com/youngicthub/CelebBooker/internal/domain"
	"github.com/youngicthub/CelebBooker/internal/pricing"
	"github.com/youngicthub/CelebBooker/internal/service/ports"
)

type CatalogService struct {
	repo ports.CelebrityRepo
}

func NewCatalogService(repo ports.CelebrityRepo) *CatalogService {
	return &CatalogService{repo: repo}
}

// List loads the catalog and applies the filter/sort query.
func (s *CatalogService) List(ctx context.Context, q catalog.Query) ([]*domain.Celebrity, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list celebrities: %w", err)
	}

	return catalog.Visible(all, q), nil
}

func (s *CatalogService) GetByID(ctx context.Context, id string) (*domain.Celebrity, error) {
	return s.repo.GetByID(ctx, id)
}

// Packages prices the three tiers for one celebrity.
func (s *CatalogService) Packages(ctx context.Context, celebrityID string) ([]pricing.Package, error) {
	c, err := s.repo.GetByID(ctx, celebrityID)
	if err != nil {
		return nil, err
	}

	return pricing.Packages(c), nil
}

// Admin catalog editor.

func (s *CatalogService) CreateCelebrity(ctx context.Context, input domain.CelebrityInput) (*domain.Celebrity, error) {
	if err := validateCelebrityInput(input); err != nil {
		return nil, err
	}

	c := &domain.Celebrity{
		ID:            uuid.New().String(),
		Name:          input.Name,
		Category:      input.Category,
		Description:   input.Description,
		ImageURL:      input.ImageURL,
		HourlyRate:    input.HourlyRate,
		Availability:  input.Availability,
		Rating:        input.Rating,
		TotalBookings: input.TotalBookings,
		Specialties:   input.Specialties,
		SocialMedia:   input.SocialMedia,
	}
	if c.Availability == "" {
		c.Availability = domain.AvailabilityAvailable
	}
	if c.Rating == 0 {
		c.Rating = 5.0
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create celebrity: %w", err)
	}

	return c, nil
}

// UpdateCelebrity edits the catalog entry. Booking records keep their
// snapshots; an edit never rewrites history.
func (s *CatalogService) UpdateCelebrity(ctx context.Context, id string, input domain.CelebrityInput) (*domain.Celebrity, error) {
	if err := validateCelebrityInput(input); err != nil {
		return nil, err
	}

	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Name = input.Name
	c.Category = input.Category
	c.Description = input.Description
	c.ImageURL = input.ImageURL
	c.HourlyRate = input.HourlyRate
	if input.Availability != "" {
		c.Availability = input.Availability
	}
	if input.Rating != 0 {
		c.Rating = input.Rating
	}
	c.TotalBookings = input.TotalBookings
	c.Specialties = input.Specialties
	c.SocialMedia = input.SocialMedia

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update celebrity: %w", err)
	}

	return c, nil
}

func (s *CatalogService) DeleteCelebrity(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func validateCelebrityInput(input domain.CelebrityInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Category == "" {
		return fmt.Errorf("%w: category is required", domain.ErrValidation)
	}
	if input.Description == "" {
		return fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	if input.HourlyRate <= 0 {
		return fmt.Errorf("%w: hourly_rate must be positive", domain.ErrValidation)
	}
	if input.Rating != 0 && (input.Rating < 1.0 || input.Rating > 5.0) {
		return fmt.Errorf("%w: rating must be between 1.0 and 5.0", domain.ErrValidation)
	}
	switch input.Availability {
	case "", domain.AvailabilityAvailable, domain.AvailabilityBusy, domain.AvailabilityBooked:
	default:
		return fmt.Errorf("%w: unknown availability %q", domain.ErrValidation, input.Availability)
	}
	return nil
}
