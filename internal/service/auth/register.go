package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/recipebox-backend/internal/auth"
	"github.com/heartmarshall/recipebox-backend/internal/domain"
)

// Register creates an active user account and signs it in.
// Returns ErrAlreadyExists if the email is already registered.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	ctx, span := tracer.Start(ctx, "auth.Register")
	defer span.End()

	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	// Email uniqueness is enforced by the database constraint.
	now := time.Now()
	user, err := s.users.Create(ctx, &domain.User{
		ID:                 uuid.New(),
		FirstName:          input.FirstName,
		LastName:           input.LastName,
		Email:              input.Email,
		PasswordHash:       hash,
		Role:               domain.UserRoleUser,
		Active:             true,
		EmailNotifications: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	result, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Register: %w", err)
	}

	s.log.InfoContext(ctx, "user registered", slog.String("user_id", user.ID.String()))
	return result, nil
}
