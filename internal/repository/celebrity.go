package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
	"github.com/youngicthub/CelebBooker/internal/domain"
)

type CelebrityRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewCelebrityRepo(db *dbpg.DB) *CelebrityRepository {
	return &CelebrityRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const celebrityColumns = `id, name, category, description, image_url, hourly_rate_cents,
	availability, rating, total_bookings, specialties, social_media, created_at, updated_at`

func (r *CelebrityRepository) Create(ctx context.Context, c *domain.Celebrity) error {
	social, err := json.Marshal(c.SocialMedia)
	if err != nil {
		return fmt.Errorf("marshal social media: %w", err)
	}

	query := `INSERT INTO celebrities (id, name, category, description, image_url, hourly_rate_cents,
			  		availability, rating, total_bookings, specialties, social_media, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	now := time.Now().UTC()
	_, err = r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.Name, c.Category, c.Description, c.ImageURL, int64(c.HourlyRate),
		c.Availability, c.Rating, c.TotalBookings, pq.Array(c.Specialties), social, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert celebrity: %w", err)
	}

	return nil
}

func (r *CelebrityRepository) GetByID(ctx context.Context, id string) (*domain.Celebrity, error) {
	query := `SELECT ` + celebrityColumns + `
			  FROM celebrities
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get celebrity: %w", err)
	}

	c, err := scanCelebrity(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCelebrityNotFound
		}
		return nil, fmt.Errorf("scan celebrity: %w", err)
	}

	return c, nil
}

func (r *CelebrityRepository) List(ctx context.Context) ([]*domain.Celebrity, error) {
	query := `SELECT ` + celebrityColumns + `
			  FROM celebrities
			  ORDER BY created_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list celebrities: %w", err)
	}
	defer rows.Close()

	var res []*domain.Celebrity
	for rows.Next() {
		c, err := scanCelebrity(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan celebrity: %w", err)
		}
		res = append(res, c)
	}

	return res, rows.Err()
}

func (r *CelebrityRepository) Update(ctx context.Context, c *domain.Celebrity) error {
	social, err := json.Marshal(c.SocialMedia)
	if err != nil {
		return fmt.Errorf("marshal social media: %w", err)
	}

	query := `UPDATE celebrities
			  SET name = $2, category = $3, description = $4, image_url = $5,
			      hourly_rate_cents = $6, availability = $7, rating = $8,
			      total_bookings = $9, specialties = $10, social_media = $11,
			      updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		c.ID, c.Name, c.Category, c.Description, c.ImageURL, int64(c.HourlyRate),
		c.Availability, c.Rating, c.TotalBookings, pq.Array(c.Specialties), social,
	)
	if err != nil {
		return fmt.Errorf("update celebrity: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("celebrity rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrCelebrityNotFound
	}

	return nil
}

func (r *CelebrityRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM celebrities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete celebrity: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("celebrity rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrCelebrityNotFound
	}

	return nil
}

func scanCelebrity(scan func(...any) error) (*domain.Celebrity, error) {
	var c domain.Celebrity
	var rate int64
	var social []byte
	if err := scan(
		&c.ID, &c.Name, &c.Category, &c.Description, &c.ImageURL, &rate,
		&c.Availability, &c.Rating, &c.TotalBookings, pq.Array(&c.Specialties),
		&social, &c.CreatedAt, &c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	c.HourlyRate = domain.Money(rate)
	if len(social) > 0 {
		if err := json.Unmarshal(social, &c.SocialMedia); err != nil {
			return nil, fmt.Errorf("unmarshal social media: %w", err)
		}
	}
	return &c, nil
}
