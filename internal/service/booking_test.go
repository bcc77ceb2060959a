package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"github.com/youngicthub/CelebBooker/internal/domain"
	"github.com/youngicthub/CelebBooker/internal/pricing"
	"github.com/youngicthub/CelebBooker/internal/service/ports/mocks"
	"github.com/youngicthub/CelebBooker/internal/wizard"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type bookingMocks struct {
	drafts      *mocks.MockDraftStore
	celebrities *mocks.MockCelebrityRepo
	bookings    *mocks.MockBookingRepo
	users       *mocks.MockUserRepo
	notifier    *mocks.MockNotifier
}

func newBookingService(t *testing.T) (*BookingService, bookingMocks) {
	t.Helper()
	m := bookingMocks{
		drafts:      mocks.NewMockDraftStore(t),
		celebrities: mocks.NewMockCelebrityRepo(t),
		bookings:    mocks.NewMockBookingRepo(t),
		users:       mocks.NewMockUserRepo(t),
		notifier:    mocks.NewMockNotifier(t),
	}
	svc := NewBookingService(m.drafts, m.celebrities, m.bookings, m.users, m.notifier, newTestLogger(t))
	return svc, m
}

func testIdentity() domain.Identity {
	return domain.Identity{UserID: "u1", Email: "alice@example.com", Role: domain.RoleUser}
}

func testCelebrity() *domain.Celebrity {
	return &domain.Celebrity{
		ID:         "c1",
		Name:       "Sarah Johnson",
		Category:   "Musicians",
		HourlyRate: 500000,
	}
}

// paymentReadyDraft builds a draft advanced to the payment step with a
// valid bank transfer filled in.
func paymentReadyDraft(t *testing.T) *wizard.Draft {
	t.Helper()
	celebrity := testCelebrity()
	pkg, err := pricing.PackageFor(celebrity, pricing.PackageStandard)
	require.NoError(t, err)

	now := time.Now().UTC()
	d := wizard.New("d1", "u1", celebrity, pkg, "alice@example.com", now)
	require.NoError(t, d.Next(now))
	require.NoError(t, d.SetContactInfo(domain.ContactInfo{Name: "Alice", Email: "alice@example.com"}, now))
	require.NoError(t, d.Next(now))
	require.NoError(t, d.SetPayment(domain.PaymentBankTransfer, domain.PaymentDetails{
		BankName:      "First National",
		AccountNumber: "12345678",
	}, now))
	return d
}

func TestBookingService_StartDraft(t *testing.T) {
	svc, m := newBookingService(t)

	celebrity := testCelebrity()
	m.celebrities.EXPECT().GetByID(mock.Anything, "c1").Return(celebrity, nil)
	m.drafts.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)

	draft, err := svc.StartDraft(context.Background(), testIdentity(), "c1", pricing.PackagePremium)

	require.NoError(t, err)
	assert.Equal(t, wizard.StepEventDetails, draft.Step)
	assert.Equal(t, "Sarah Johnson", draft.CelebrityName)
	assert.Equal(t, domain.Money(900000), draft.PackagePrice)
	assert.Equal(t, "alice@example.com", draft.Contact.Email)
}

func TestBookingService_StartDraft_UnknownPackage(t *testing.T) {
	svc, _ := newBookingService(t)

	_, err := svc.StartDraft(context.Background(), testIdentity(), "c1", "vip")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_StartDraft_CelebrityNotFound(t *testing.T) {
	svc, m := newBookingService(t)

	m.celebrities.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrCelebrityNotFound)

	_, err := svc.StartDraft(context.Background(), testIdentity(), "missing", pricing.PackageBasic)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCelebrityNotFound)
}

func TestBookingService_GetDraft_ForeignDraftHidden(t *testing.T) {
	svc, m := newBookingService(t)

	foreign := paymentReadyDraft(t)
	foreign.UserID = "someone-else"
	m.drafts.EXPECT().GetByID(mock.Anything, "d1").Return(foreign, nil)

	_, err := svc.GetDraft(context.Background(), testIdentity(), "d1")

	assert.ErrorIs(t, err, domain.ErrDraftNotFound)
}

func TestBookingService_Submit(t *testing.T) {
	svc, m := newBookingService(t)

	draft := paymentReadyDraft(t)
	user := &domain.User{ID: "u1", Email: "alice@example.com"}

	m.drafts.EXPECT().GetByID(mock.Anything, "d1").Return(draft, nil)
	m.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	m.drafts.EXPECT().Save(mock.Anything, draft).Return(nil)
	m.users.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	m.notifier.EXPECT().NotifyBookingSubmitted(mock.Anything, user, mock.Anything).Return()

	booking, err := svc.Submit(context.Background(), testIdentity(), "d1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusPending, booking.Status)
	assert.Equal(t, "Sarah Johnson", booking.CelebrityName)
	assert.Equal(t, "Standard Appearance", booking.PackageName)
	// 500000 standard price plus the 5% platform fee
	assert.Equal(t, domain.Money(525000), booking.Amount)
	assert.Equal(t, wizard.StepConfirmation, draft.Step)
	assert.NotEmpty(t, draft.Reference)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Submit_StoreFailureKeepsDraft(t *testing.T) {
	svc, m := newBookingService(t)

	draft := paymentReadyDraft(t)

	m.drafts.EXPECT().GetByID(mock.Anything, "d1").Return(draft, nil)
	m.bookings.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down"))

	_, err := svc.Submit(context.Background(), testIdentity(), "d1")

	require.Error(t, err)
	// the draft stays on the payment step so the user can retry
	assert.Equal(t, wizard.StepPayment, draft.Step)
	assert.Empty(t, draft.Reference)
}

func TestBookingService_Submit_BankTransferMissingAccount(t *testing.T) {
	svc, m := newBookingService(t)

	celebrity := testCelebrity()
	pkg, err := pricing.PackageFor(celebrity, pricing.PackageBasic)
	require.NoError(t, err)

	now := time.Now().UTC()
	draft := wizard.New("d1", "u1", celebrity, pkg, "alice@example.com", now)
	require.NoError(t, draft.Next(now))
	require.NoError(t, draft.Next(now))
	require.NoError(t, draft.SetPayment(domain.PaymentBankTransfer, domain.PaymentDetails{
		BankName: "First National", // account number missing
	}, now))

	m.drafts.EXPECT().GetByID(mock.Anything, "d1").Return(draft, nil)

	_, err = svc.Submit(context.Background(), testIdentity(), "d1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, wizard.StepPayment, draft.Step)
}

func TestBookingService_Submit_BeforePaymentStep(t *testing.T) {
	svc, m := newBookingService(t)

	celebrity := testCelebrity()
	pkg, err := pricing.PackageFor(celebrity, pricing.PackageBasic)
	require.NoError(t, err)

	draft := wizard.New("d1", "u1", celebrity, pkg, "alice@example.com", time.Now().UTC())

	m.drafts.EXPECT().GetByID(mock.Anything, "d1").Return(draft, nil)

	_, err = svc.Submit(context.Background(), testIdentity(), "d1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWizardTransition)
}

func TestBookingService_Next_Persists(t *testing.T) {
	svc, m := newBookingService(t)

	celebrity := testCelebrity()
	pkg, err := pricing.PackageFor(celebrity, pricing.PackageStandard)
	require.NoError(t, err)
	draft := wizard.New("d1", "u1", celebrity, pkg, "alice@example.com", time.Now().UTC())

	m.drafts.EXPECT().GetByID(mock.Anything, "d1").Return(draft, nil)
	m.drafts.EXPECT().Save(mock.Anything, draft).Return(nil)

	updated, err := svc.Next(context.Background(), testIdentity(), "d1")

	require.NoError(t, err)
	assert.Equal(t, wizard.StepContactInfo, updated.Step)
}

func TestBookingService_SetEventDetails_WrongStep(t *testing.T) {
	svc, m := newBookingService(t)

	draft := paymentReadyDraft(t) // already on the payment step

	m.drafts.EXPECT().GetByID(mock.Anything, "d1").Return(draft, nil)

	_, err := svc.SetEventDetails(context.Background(), testIdentity(), "d1", domain.EventDetails{Location: "NYC"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWizardTransition)
}

func TestBookingService_ListByUser(t *testing.T) {
	svc, m := newBookingService(t)

	records := []*domain.Booking{
		{ID: "b1", UserID: "u1"},
		{ID: "b2", UserID: "u1"},
	}
	m.bookings.EXPECT().ListByUser(mock.Anything, "u1").Return(records, nil)

	got, err := svc.ListByUser(context.Background(), testIdentity())

	require.NoError(t, err)
	assert.Len(t, got, 2)
}
