package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/youngicthub/CelebBooker/internal/domain"
	"github.com/youngicthub/CelebBooker/internal/service/ports/mocks"
)

func newAdminService(t *testing.T) (*AdminService, *mocks.MockBookingRepo, *mocks.MockNotifier) {
	t.Helper()
	bookings := mocks.NewMockBookingRepo(t)
	notifier := mocks.NewMockNotifier(t)
	return NewAdminService(bookings, notifier, newTestLogger(t)), bookings, notifier
}

func TestComputeStats(t *testing.T) {
	records := []*domain.Booking{
		{ID: "b1", Status: domain.BookingStatusPending, Amount: 100},
		{ID: "b2", Status: domain.BookingStatusApproved, Amount: 200},
	}

	stats := ComputeStats(records)

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Approved)
	// revenue counts every record, not only approved ones
	assert.Equal(t, domain.Money(300), stats.Revenue)
}

func TestComputeStats_RejectedCountsTowardRevenue(t *testing.T) {
	records := []*domain.Booking{
		{ID: "b1", Status: domain.BookingStatusRejected, Amount: 500},
		{ID: "b2", Status: domain.BookingStatusCompleted, Amount: 250},
	}

	stats := ComputeStats(records)

	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 0, stats.Pending)
	assert.Equal(t, 0, stats.Approved)
	assert.Equal(t, domain.Money(750), stats.Revenue)
}

func TestComputeStats_Empty(t *testing.T) {
	stats := ComputeStats(nil)

	assert.Equal(t, domain.BookingStats{}, stats)
}

func TestAdminService_Review_Approve(t *testing.T) {
	svc, bookings, notifier := newAdminService(t)

	reviewed := &domain.Booking{
		ID:     "b1",
		Status: domain.BookingStatusApproved,
		Contact: domain.ContactInfo{
			Email: "alice@example.com",
		},
	}

	bookings.EXPECT().Review(mock.Anything, "b1", domain.BookingStatusApproved, "looks good").Return(nil)
	bookings.EXPECT().GetByID(mock.Anything, "b1").Return(reviewed, nil)
	notifier.EXPECT().NotifyBookingReviewed(mock.Anything, reviewed).Return()

	booking, err := svc.Review(context.Background(), "b1", domain.DecisionApproved, "looks good")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusApproved, booking.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestAdminService_Review_Reject(t *testing.T) {
	svc, bookings, notifier := newAdminService(t)

	reviewed := &domain.Booking{ID: "b1", Status: domain.BookingStatusRejected}

	bookings.EXPECT().Review(mock.Anything, "b1", domain.BookingStatusRejected, "double booked").Return(nil)
	bookings.EXPECT().GetByID(mock.Anything, "b1").Return(reviewed, nil)
	notifier.EXPECT().NotifyBookingReviewed(mock.Anything, reviewed).Return()

	booking, err := svc.Review(context.Background(), "b1", domain.DecisionRejected, "double booked")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusRejected, booking.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestAdminService_Review_InvalidDecision(t *testing.T) {
	svc, _, _ := newAdminService(t)

	_, err := svc.Review(context.Background(), "b1", "maybe", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAdminService_Review_AlreadyReviewed(t *testing.T) {
	svc, bookings, _ := newAdminService(t)

	bookings.EXPECT().Review(mock.Anything, "b1", domain.BookingStatusApproved, "").Return(domain.ErrBookingReviewed)

	_, err := svc.Review(context.Background(), "b1", domain.DecisionApproved, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingReviewed)
}

func TestAdminService_Review_NotFound(t *testing.T) {
	svc, bookings, _ := newAdminService(t)

	bookings.EXPECT().Review(mock.Anything, "missing", domain.BookingStatusRejected, "").Return(domain.ErrBookingNotFound)

	_, err := svc.Review(context.Background(), "missing", domain.DecisionRejected, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestAdminService_Stats(t *testing.T) {
	svc, bookings, _ := newAdminService(t)

	bookings.EXPECT().ListAll(mock.Anything).Return([]*domain.Booking{
		{ID: "b1", Status: domain.BookingStatusPending, Amount: 525000},
	}, nil)

	stats, err := svc.Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, domain.Money(525000), stats.Revenue)
}

func TestAdminService_Stats_RepoError(t *testing.T) {
	svc, bookings, _ := newAdminService(t)

	bookings.EXPECT().ListAll(mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.Stats(context.Background())

	require.Error(t, err)
}

func TestAdminService_CompleteElapsed(t *testing.T) {
	svc, bookings, _ := newAdminService(t)

	completed := []*domain.Booking{{ID: "b1", Status: domain.BookingStatusCompleted}}
	bookings.EXPECT().CompleteElapsed(mock.Anything, mock.Anything).Return(completed, nil)

	got, err := svc.CompleteElapsed(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)
}
