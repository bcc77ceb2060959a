package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"github.com/youngicthub/CelebBooker/internal/domain"
	"github.com/youngicthub/CelebBooker/internal/service/ports"
	"golang.org/x/crypto/bcrypt"
)

type AuthConfig struct {
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
	BaseURL    string
}

type AuthService struct {
	users    ports.UserRepo
	notifier ports.Notifier
	cfg      AuthConfig
	logger   logger.Logger
}

func NewAuthService(users ports.UserRepo, notifier ports.Notifier, cfg AuthConfig, logger logger.Logger) *AuthService {
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.TokenTTL == 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	return &AuthService{
		users:    users,
		notifier: notifier,
		cfg:      cfg,
		logger:   logger,
	}
}

// SignUp registers a customer account and fires the activation email.
// Email delivery is fire-and-forget: a failed send is logged inside the
// notifier and never blocks the signup.
func (s *AuthService) SignUp(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", domain.ErrValidation)
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err = s.users.Create(ctx, user, domain.RoleUser); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user signed up",
		logger.String("user_id", user.ID),
	)

	userName, _, _ := strings.Cut(email, "@")
	go s.notifier.NotifyActivation(context.WithoutCancel(ctx), email, s.cfg.BaseURL+"/", userName)

	return user, nil
}

// SignIn verifies credentials, resolves the role once from the profile
// and issues a session token carrying the full identity.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, domain.Identity, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.Identity{}, domain.ErrInvalidCredentials
		}
		return "", domain.Identity{}, fmt.Errorf("get user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", domain.Identity{}, domain.ErrInvalidCredentials
	}

	role, err := s.users.GetRole(ctx, user.ID)
	if err != nil {
		return "", domain.Identity{}, fmt.Errorf("get role: %w", err)
	}

	now := time.Now().UTC()
	claims := &domain.Claims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", domain.Identity{}, fmt.Errorf("sign token: %w", err)
	}

	s.logger.Info("user signed in",
		logger.String("user_id", user.ID),
		logger.String("role", string(role)),
	)

	return token, claims.Identity(), nil
}
