package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
	"github.com/heartmarshall/recipebox-backend/internal/service/access"
	"github.com/heartmarshall/recipebox-backend/internal/service/audit"
)

// Page is one page of the admin user listing.
type Page struct {
	Users []domain.User
	Total int
	Page  int
	Limit int
}

// List returns users matching the filter (admin only).
func (s *Service) List(ctx context.Context, input ListInput) (*Page, error) {
	if _, err := access.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	filter, err := input.filter()
	if err != nil {
		return nil, err
	}

	users, total, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("user.List: %w", err)
	}

	page := input.Page
	if page < 1 {
		page = 1
	}
	return &Page{Users: users, Total: total, Page: page, Limit: filter.Limit}, nil
}

// SetStatus activates or deactivates an account.
func (s *Service) SetStatus(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "user.SetStatus")
	defer span.End()

	op, action := domain.OpDeactivate, domain.AuditUserDeactivated
	if active {
		op, action = domain.OpActivate, domain.AuditUserActivated
	}

	actor, target, err := s.authorize(ctx, id, op)
	if err != nil {
		return nil, err
	}

	user, err := s.users.SetActive(ctx, id, active)
	if err != nil {
		return nil, fmt.Errorf("user.SetStatus: %w", err)
	}

	s.log.InfoContext(ctx, "user status changed",
		slog.String("target_user_id", id.String()),
		slog.Bool("active", active),
	)
	s.record(ctx, actor, action, target, map[string]any{"active": active})

	return user, nil
}

// SoftDelete marks an account deleted and deactivates it.
func (s *Service) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "user.SoftDelete")
	defer span.End()

	actor, target, err := s.authorize(ctx, id, domain.OpSoftDelete)
	if err != nil {
		return nil, err
	}

	user, err := s.users.SoftDelete(ctx, id, actor.ID)
	if err != nil {
		if domain.ReasonOf(err) == domain.ReasonNotFound {
			return nil, domain.ErrAlreadyDeleted
		}
		return nil, fmt.Errorf("user.SoftDelete: %w", err)
	}

	s.log.InfoContext(ctx, "user soft-deleted", slog.String("target_user_id", id.String()))
	s.record(ctx, actor, domain.AuditUserSoftDeleted, target, nil)

	return user, nil
}

// Restore brings a soft-deleted account back and reactivates it.
func (s *Service) Restore(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "user.Restore")
	defer span.End()

	actor, target, err := s.authorize(ctx, id, domain.OpRestore)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Restore(ctx, id)
	if err != nil {
		if domain.ReasonOf(err) == domain.ReasonNotFound {
			return nil, domain.ErrNotInTrash
		}
		return nil, fmt.Errorf("user.Restore: %w", err)
	}

	s.log.InfoContext(ctx, "user restored", slog.String("target_user_id", id.String()))
	s.record(ctx, actor, domain.AuditUserRestored, target, nil)

	return user, nil
}

// HardDelete removes an account permanently. It fails with ErrHasData while
// the user still owns visible recipes or activity entries; the account is
// left untouched in that case.
func (s *Service) HardDelete(ctx context.Context, id uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "user.HardDelete")
	defer span.End()

	actor, target, err := s.authorize(ctx, id, domain.OpHardDelete)
	if err != nil {
		return err
	}

	if err := s.users.HardDelete(ctx, id); err != nil {
		return fmt.Errorf("user.HardDelete: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted permanently", slog.String("target_user_id", id.String()))
	s.record(ctx, actor, domain.AuditUserHardDeleted, target, nil)

	return nil
}

// SetRole changes the role of another non-admin account.
func (s *Service) SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	ctx, span := tracer.Start(ctx, "user.SetRole")
	defer span.End()

	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "must be user or admin")
	}

	actor, target, err := s.authorize(ctx, id, domain.OpSetRole)
	if err != nil {
		return nil, err
	}

	user, err := s.users.UpdateRole(ctx, id, role)
	if err != nil {
		return nil, fmt.Errorf("user.SetRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("target_user_id", id.String()),
		slog.String("new_role", role.String()),
	)
	s.record(ctx, actor, domain.AuditUserRoleChanged, target, map[string]any{
		"old_role": target.Role.String(),
		"new_role": role.String(),
	})

	return user, nil
}

// authorize loads the target account and asks the gate. Dependents are only
// counted for hard deletes.
func (s *Service) authorize(ctx context.Context, id uuid.UUID, op domain.Operation) (domain.Actor, *domain.User, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return domain.Actor{}, nil, err
	}

	target, err := s.users.GetByID(ctx, id)
	if err != nil {
		return domain.Actor{}, nil, fmt.Errorf("user.%s: %w", op, err)
	}

	deps := 0
	if op == domain.OpHardDelete {
		d, err := s.users.Dependents(ctx, id)
		if err != nil {
			return domain.Actor{}, nil, fmt.Errorf("user.%s: %w", op, err)
		}
		deps = d.Total()
	}

	if err := access.CanModify(actor, access.UserTarget(target, deps), op).Err(); err != nil {
		return domain.Actor{}, nil, err
	}
	return actor, target, nil
}

func (s *Service) record(ctx context.Context, actor domain.Actor, action domain.AuditAction, target *domain.User, extra map[string]any) {
	details := map[string]any{"email": target.Email}
	for k, v := range extra {
		details[k] = v
	}
	s.audit.Record(ctx, audit.Event{
		ActorID:    actor.ID,
		Action:     action,
		TargetType: domain.TargetUser,
		TargetID:   target.ID,
		Details:    details,
	})
}
