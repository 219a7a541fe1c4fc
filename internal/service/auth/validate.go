package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
)

// ValidateToken validates an access token and returns the user ID and the
// user's current role. The account is reloaded so that tokens of deleted or
// deactivated users stop working immediately. Returns ErrUnauthorized for
// any rejected token.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error) {
	userID, _, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, "", domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, "", domain.ErrUnauthorized
		}
		return uuid.Nil, "", fmt.Errorf("auth.ValidateToken: %w", err)
	}
	if user.IsDeleted() || !user.Active {
		return uuid.Nil, "", domain.ErrUnauthorized
	}

	return user.ID, user.Role.String(), nil
}
