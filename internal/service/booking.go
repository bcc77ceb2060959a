package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"github.com/youngicthub/CelebBooker/internal/domain"
	"github.com/youngicthub/CelebBooker/internal/pricing"
	"github.com/youngicthub/CelebBooker/internal/service/ports"
	"github.com/youngicthub/CelebBooker/internal/wizard"
)

type BookingService struct {
	drafts      ports.DraftStore
	celebrities ports.CelebrityRepo
	bookings    ports.BookingRepo
	users       ports.UserRepo
	notifier    ports.Notifier
	logger      logger.Logger
}

func NewBookingService(
	drafts ports.DraftStore,
	celebrities ports.CelebrityRepo,
	bookings ports.BookingRepo,
	users ports.UserRepo,
	notifier ports.Notifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		drafts:      drafts,
		celebrities: celebrities,
		bookings:    bookings,
		users:       users,
		notifier:    notifier,
		logger:      logger,
	}
}

// StartDraft opens the wizard for a celebrity and package. The celebrity
// name and package price are snapshotted into the draft here, so a later
// catalog edit cannot change a booking in flight.
func (s *BookingService) StartDraft(ctx context.Context, identity domain.Identity, celebrityID string, packageID pricing.PackageID) (*wizard.Draft, error) {
	if !pricing.Valid(packageID) {
		return nil, fmt.Errorf("%w: unknown package %q", domain.ErrValidation, packageID)
	}

	celebrity, err := s.celebrities.GetByID(ctx, celebrityID)
	if err != nil {
		return nil, fmt.Errorf("check celebrity: %w", err)
	}

	pkg, err := pricing.PackageFor(celebrity, packageID)
	if err != nil {
		return nil, err
	}

	draft := wizard.New(uuid.New().String(), identity.UserID, celebrity, pkg, identity.Email, time.Now().UTC())
	if err = s.drafts.Save(ctx, draft); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}

	s.logger.Info("booking draft started",
		logger.String("draft_id", draft.ID),
		logger.String("celebrity_id", celebrityID),
		logger.String("user_id", identity.UserID),
	)

	return draft, nil
}

func (s *BookingService) GetDraft(ctx context.Context, identity domain.Identity, draftID string) (*wizard.Draft, error) {
	return s.ownedDraft(ctx, identity, draftID)
}

func (s *BookingService) SetEventDetails(ctx context.Context, identity domain.Identity, draftID string, e domain.EventDetails) (*wizard.Draft, error) {
	return s.mutateDraft(ctx, identity, draftID, func(d *wizard.Draft) error {
		return d.SetEventDetails(e, time.Now().UTC())
	})
}

func (s *BookingService) SetContactInfo(ctx context.Context, identity domain.Identity, draftID string, c domain.ContactInfo) (*wizard.Draft, error) {
	return s.mutateDraft(ctx, identity, draftID, func(d *wizard.Draft) error {
		return d.SetContactInfo(c, time.Now().UTC())
	})
}

func (s *BookingService) SetPayment(ctx context.Context, identity domain.Identity, draftID string, method domain.PaymentMethod, details domain.PaymentDetails) (*wizard.Draft, error) {
	return s.mutateDraft(ctx, identity, draftID, func(d *wizard.Draft) error {
		return d.SetPayment(method, details, time.Now().UTC())
	})
}

func (s *BookingService) Next(ctx context.Context, identity domain.Identity, draftID string) (*wizard.Draft, error) {
	return s.mutateDraft(ctx, identity, draftID, func(d *wizard.Draft) error {
		return d.Next(time.Now().UTC())
	})
}

func (s *BookingService) Previous(ctx context.Context, identity domain.Identity, draftID string) (*wizard.Draft, error) {
	return s.mutateDraft(ctx, identity, draftID, func(d *wizard.Draft) error {
		return d.Previous(time.Now().UTC())
	})
}

// Submit validates the payment step and creates the pending booking
// record. On a store failure the draft stays on the payment step with its
// data intact, so the user can retry the same action.
func (s *BookingService) Submit(ctx context.Context, identity domain.Identity, draftID string) (*domain.Booking, error) {
	draft, err := s.ownedDraft(ctx, identity, draftID)
	if err != nil {
		return nil, err
	}

	if err = draft.ValidatePayment(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:             uuid.New().String(),
		UserID:         identity.UserID,
		CelebrityID:    draft.CelebrityID,
		CelebrityName:  draft.CelebrityName,
		PackageName:    draft.PackageName,
		Event:          draft.Event,
		Contact:        draft.Contact,
		Amount:         draft.Total(),
		PaymentMethod:  draft.Payment.Method,
		PaymentDetails: draft.Payment.Details,
		Status:         domain.BookingStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err = s.bookings.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	draft.Complete(reference(now), now)
	if err = s.drafts.Save(ctx, draft); err != nil {
		s.logger.Error("failed to persist confirmed draft",
			logger.String("draft_id", draft.ID),
			logger.String("error", err.Error()),
		)
	}

	s.logger.Info("booking submitted",
		logger.String("booking_id", booking.ID),
		logger.String("celebrity_id", booking.CelebrityID),
		logger.String("user_id", identity.UserID),
		logger.Int64("amount_cents", int64(booking.Amount)),
	)

	user, err := s.users.GetByID(ctx, identity.UserID)
	if err != nil {
		s.logger.Error("failed to get user for submission notification",
			logger.String("user_id", identity.UserID),
		)
		return booking, nil
	}
	go s.notifier.NotifyBookingSubmitted(context.WithoutCancel(ctx), user, booking)

	return booking, nil
}

func (s *BookingService) ListByUser(ctx context.Context, identity domain.Identity) ([]*domain.Booking, error) {
	return s.bookings.ListByUser(ctx, identity.UserID)
}

func (s *BookingService) ownedDraft(ctx context.Context, identity domain.Identity, draftID string) (*wizard.Draft, error) {
	draft, err := s.drafts.GetByID(ctx, draftID)
	if err != nil {
		return nil, err
	}
	// a foreign draft is indistinguishable from a missing one
	if draft.UserID != identity.UserID {
		return nil, domain.ErrDraftNotFound
	}
	return draft, nil
}

func (s *BookingService) mutateDraft(ctx context.Context, identity domain.Identity, draftID string, fn func(*wizard.Draft) error) (*wizard.Draft, error) {
	draft, err := s.ownedDraft(ctx, identity, draftID)
	if err != nil {
		return nil, err
	}
	if err = fn(draft); err != nil {
		return nil, err
	}
	if err = s.drafts.Save(ctx, draft); err != nil {
		return nil, fmt.Errorf("save draft: %w", err)
	}
	return draft, nil
}

// reference builds the human-facing booking reference shown on the
// confirmation step.
func reference(now time.Time) string {
	return fmt.Sprintf("CB-%06d", now.UnixMilli()%1_000_000)
}
