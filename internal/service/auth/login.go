package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/recipebox-backend/internal/auth"
	"github.com/heartmarshall/recipebox-backend/internal/domain"
)

// Login authenticates a user with email + password.
// Unknown emails, wrong passwords and deleted accounts all yield
// ErrUnauthorized; a deactivated account yields ErrForbidden.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	ctx, span := tracer.Start(ctx, "auth.Login")
	defer span.End()

	input.Email = domain.NormalizeText(input.Email)
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login get user: %w", err)
	}

	if err := auth.ComparePassword(user.PasswordHash, input.Password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	if user.IsDeleted() {
		return nil, domain.ErrUnauthorized
	}
	if !user.Active {
		return nil, fmt.Errorf("auth.Login: account deactivated: %w", domain.ErrForbidden)
	}

	result, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID.String()))
	return result, nil
}
