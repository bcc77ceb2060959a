package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
	"github.com/youngicthub/CelebBooker/internal/domain"
)

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the user and its profile row in one transaction so a
// user can never exist without a role.
func (r *UserRepository) Create(ctx context.Context, user *domain.User, role domain.Role) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	userQuery := `INSERT INTO users (id, email, password_hash, created_at)
				  VALUES ($1, $2, $3, $4)`
	if _, err = tx.ExecContext(ctx, userQuery, user.ID, user.Email, user.PasswordHash, user.CreatedAt); err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	profileQuery := `INSERT INTO profiles (user_id, role)
					 VALUES ($1, $2)`
	if _, err = tx.ExecContext(ctx, profileQuery, user.ID, role); err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}

	return tx.Commit()
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, email, password_hash, created_at
			  FROM users
			  WHERE id = $1`

	return r.getUser(ctx, query, id)
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT id, email, password_hash, created_at
			  FROM users
			  WHERE email = $1`

	return r.getUser(ctx, query, email)
}

func (r *UserRepository) GetRole(ctx context.Context, userID string) (domain.Role, error) {
	query := `SELECT role
			  FROM profiles
			  WHERE user_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return "", fmt.Errorf("get role: %w", err)
	}

	var role domain.Role
	if err = row.Scan(&role); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// missing profile defaults to the customer role
			return domain.RoleUser, nil
		}
		return "", fmt.Errorf("scan role: %w", err)
	}

	return role, nil
}

func (r *UserRepository) getUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	if err = row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}
