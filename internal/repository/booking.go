package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
	"github.com/youngicthub/CelebBooker/internal/domain"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const bookingColumns = `id, user_id, celebrity_id, celebrity_name, package_name,
	event_date, event_time, event_location, event_type, guest_count, special_requests,
	contact_name, contact_email, contact_phone, amount_cents, payment_method,
	payment_details, status, admin_notes, created_at, updated_at`

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	details, err := json.Marshal(b.PaymentDetails)
	if err != nil {
		return fmt.Errorf("marshal payment details: %w", err)
	}

	query := `INSERT INTO bookings (id, user_id, celebrity_id, celebrity_name, package_name,
			  		event_date, event_time, event_location, event_type, guest_count, special_requests,
			  		contact_name, contact_email, contact_phone, amount_cents, payment_method,
			  		payment_details, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.UserID, b.CelebrityID, b.CelebrityName, b.PackageName,
		nullTime(b.Event.Date), b.Event.Time, b.Event.Location, b.Event.Type,
		b.Event.GuestCount, b.Event.SpecialRequests,
		b.Contact.Name, b.Contact.Email, b.Contact.Phone,
		int64(b.Amount), b.PaymentMethod, details, b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  ORDER BY created_at DESC`

	return r.queryBookings(ctx, query)
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + `
			  FROM bookings
			  WHERE user_id = $1
			  ORDER BY created_at DESC`

	return r.queryBookings(ctx, query, userID)
}

// Review transitions a pending record to approved or rejected. The status
// guard lives in the UPDATE itself so two concurrent reviewers cannot both
// win; the loser gets ErrBookingReviewed.
func (r *BookingRepository) Review(ctx context.Context, id string, status domain.BookingStatus, notes string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET status = $2, admin_notes = $3, updated_at = now()
			  WHERE id = $1
			    AND status = $4`
	res, err := tx.ExecContext(ctx, query, id, status, notes, domain.BookingStatusPending)
	if err != nil {
		return fmt.Errorf("review booking: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("booking rows affected: %w", err)
	}
	if affected == 0 {
		var current string
		checkQuery := `SELECT status FROM bookings WHERE id = $1`
		if scanErr := tx.QueryRowContext(ctx, checkQuery, id).Scan(&current); scanErr != nil {
			return domain.ErrBookingNotFound
		}
		return domain.ErrBookingReviewed
	}

	return tx.Commit()
}

// CompleteElapsed marks approved bookings whose event date has passed as
// completed and returns them.
func (r *BookingRepository) CompleteElapsed(ctx context.Context, cutoff time.Time) ([]*domain.Booking, error) {
	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE status = $1
			    AND event_date IS NOT NULL
			    AND event_date < $3
			  RETURNING ` + bookingColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusApproved, domain.BookingStatusCompleted, cutoff,
	)
	if err != nil {
		return nil, fmt.Errorf("complete elapsed: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) queryBookings(ctx context.Context, query string, args ...any) ([]*domain.Booking, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}

	return res, rows.Err()
}

func scanBooking(scan func(...any) error) (*domain.Booking, error) {
	var b domain.Booking
	var eventDate sql.NullTime
	var amount int64
	var details []byte
	var notes sql.NullString
	if err := scan(
		&b.ID, &b.UserID, &b.CelebrityID, &b.CelebrityName, &b.PackageName,
		&eventDate, &b.Event.Time, &b.Event.Location, &b.Event.Type,
		&b.Event.GuestCount, &b.Event.SpecialRequests,
		&b.Contact.Name, &b.Contact.Email, &b.Contact.Phone,
		&amount, &b.PaymentMethod, &details, &b.Status, &notes,
		&b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		return nil, err
	}
	if eventDate.Valid {
		b.Event.Date = eventDate.Time
	}
	b.Amount = domain.Money(amount)
	if notes.Valid {
		b.AdminNotes = &notes.String
	}
	if len(details) > 0 {
		if err := json.Unmarshal(details, &b.PaymentDetails); err != nil {
			return nil, fmt.Errorf("unmarshal payment details: %w", err)
		}
	}
	return &b, nil
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
