package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/recipebox-backend/internal/auth"
	"github.com/heartmarshall/recipebox-backend/internal/domain"
	"github.com/heartmarshall/recipebox-backend/internal/service/access"
)

// PublicProfile is what anyone may see about a user.
type PublicProfile struct {
	ID   uuid.UUID
	Name string
	Role domain.UserRole
}

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return user, nil
}

// UpdateProfile changes the caller's names and email. The email must not
// belong to another account.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	taken, err := s.users.EmailTaken(ctx, input.Email, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}
	if taken {
		return nil, fmt.Errorf("email %q: %w", input.Email, domain.ErrAlreadyExists)
	}

	user, err := s.users.UpdateProfile(ctx, actor.ID, input.FirstName, input.LastName, input.Email)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", actor.ID.String()))

	return user, nil
}

// ChangePassword replaces the caller's password after checking the current
// one. A wrong current password is a validation error on current_password.
func (s *Service) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, actor.ID)
	if err != nil {
		return fmt.Errorf("user.ChangePassword: %w", err)
	}

	if err := auth.ComparePassword(user.PasswordHash, input.CurrentPassword); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return domain.NewValidationError("current_password", "incorrect")
		}
		return fmt.Errorf("user.ChangePassword: %w", err)
	}

	hash, err := auth.HashPassword(input.NewPassword, s.hashCost)
	if err != nil {
		return fmt.Errorf("user.ChangePassword: %w", err)
	}

	if err := s.users.UpdatePassword(ctx, actor.ID, hash); err != nil {
		return fmt.Errorf("user.ChangePassword: %w", err)
	}

	s.log.InfoContext(ctx, "password changed",
		slog.String("user_id", actor.ID.String()))

	return nil
}

// UpdatePreferences applies a partial preferences update.
func (s *Service) UpdatePreferences(ctx context.Context, input PreferencesInput) (*domain.User, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	current, err := s.users.GetByID(ctx, actor.ID)
	if err != nil {
		return nil, fmt.Errorf("user.UpdatePreferences: %w", err)
	}

	prefs := input.apply(domain.UserPreferences{
		DarkMode:           current.DarkMode,
		EmailNotifications: current.EmailNotifications,
	})

	user, err := s.users.UpdatePreferences(ctx, actor.ID, prefs)
	if err != nil {
		return nil, fmt.Errorf("user.UpdatePreferences: %w", err)
	}

	return user, nil
}

// PublicInfo returns the public profile of a non-deleted user.
func (s *Service) PublicInfo(ctx context.Context, id uuid.UUID) (*PublicProfile, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("user.PublicInfo: %w", err)
	}
	if user.IsDeleted() {
		return nil, fmt.Errorf("user.PublicInfo: %w", domain.ErrNotFound)
	}

	return &PublicProfile{ID: user.ID, Name: user.FullName(), Role: user.Role}, nil
}
