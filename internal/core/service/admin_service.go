package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/Fardankhan12/FurniroXFardan/internal/core/domain"
	"github.com/Fardankhan12/FurniroXFardan/internal/core/ports"
)

const (
	defaultAttemptLimit = 20
	maxAttemptLimit     = 100
)

// AdminService implements operator login and the reconciliation listing.
// There is no user store: a single operator key is configured as a bcrypt
// hash and exchanged for a short-lived JWT.
type AdminService struct {
	attempts  ports.AttemptRepository
	keyHash   string
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAdminService(attempts ports.AttemptRepository, keyHash, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AdminService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AdminService{
		attempts:  attempts,
		keyHash:   keyHash,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Login verifies the operator key against the configured hash and mints a
// JWT carrying the admin role.
func (s *AdminService) Login(_ context.Context, apiKey string) (string, error) {
	if apiKey == "" || s.keyHash == "" {
		return "", domain.ErrInvalidOperatorKey
	}
	if bcrypt.CompareHashAndPassword([]byte(s.keyHash), []byte(apiKey)) != nil {
		return "", domain.ErrInvalidOperatorKey
	}

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(s.tokenTTL).Unix(),
	})
	return token.SignedString([]byte(s.jwtSecret))
}

// ListAttempts returns a page of the checkout attempt journal.
func (s *AdminService) ListAttempts(ctx context.Context, input ports.ListAttemptsInput) (*ports.ListAttemptsResult, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultAttemptLimit
	}
	if limit > maxAttemptLimit {
		limit = maxAttemptLimit
	}
	page := input.Page
	if page < 1 {
		page = 1
	}

	items, total, err := s.attempts.List(ctx, ports.ListAttemptsFilter{
		State: input.State,
		Email: input.Email,
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list checkout attempts")
		return nil, err
	}

	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}

	return &ports.ListAttemptsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}
