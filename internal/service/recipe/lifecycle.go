package recipe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
	"github.com/heartmarshall/recipebox-backend/internal/service/access"
	"github.com/heartmarshall/recipebox-backend/internal/service/activity"
	"github.com/heartmarshall/recipebox-backend/internal/service/audit"
)

// Create stores a new recipe owned by the caller.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Recipe, error) {
	ctx, span := tracer.Start(ctx, "recipe.Create")
	defer span.End()

	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	rec := in.recipe()
	normalize(&rec)
	if err := validate(&rec); err != nil {
		return nil, err
	}

	if err := s.checkTitle(ctx, actor.ID, rec.Title, uuid.Nil); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	rec.ID = uuid.New()
	rec.UserID = actor.ID
	rec.CreatedAt = now
	rec.UpdatedAt = now

	created, err := s.recipes.Create(ctx, &rec)
	if err != nil {
		return nil, fmt.Errorf("recipe.Create: %w", err)
	}

	s.log.InfoContext(ctx, "recipe created",
		slog.String("recipe_id", created.ID.String()),
		slog.String("user_id", actor.ID.String()),
	)
	s.recordActivity(ctx, actor, domain.ActivityCreated, created)

	return created, nil
}

// Update applies a partial update. Fields left nil keep their value.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*domain.Recipe, error) {
	ctx, span := tracer.Start(ctx, "recipe.Update")
	defer span.End()

	actor, rec, err := s.authorize(ctx, id, domain.OpUpdate)
	if err != nil {
		return nil, err
	}

	in.apply(rec)
	normalize(rec)
	if err := validate(rec); err != nil {
		return nil, err
	}

	if err := s.checkTitle(ctx, rec.UserID, rec.Title, rec.ID); err != nil {
		return nil, err
	}

	updated, err := s.recipes.Update(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("recipe.Update: %w", err)
	}

	s.log.InfoContext(ctx, "recipe updated", slog.String("recipe_id", id.String()))
	s.recordActivity(ctx, actor, domain.ActivityUpdated, updated)

	return updated, nil
}

// SoftDelete moves a recipe to the trash. Deleting a trashed recipe fails
// with ErrAlreadyDeleted.
func (s *Service) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	ctx, span := tracer.Start(ctx, "recipe.SoftDelete")
	defer span.End()

	actor, rec, err := s.authorize(ctx, id, domain.OpSoftDelete)
	if err != nil {
		return nil, err
	}

	deleted, err := s.recipes.SoftDelete(ctx, id)
	if err != nil {
		if domain.ReasonOf(err) == domain.ReasonNotFound {
			// Trashed between the read and the write.
			return nil, domain.ErrAlreadyDeleted
		}
		return nil, fmt.Errorf("recipe.SoftDelete: %w", err)
	}

	s.log.InfoContext(ctx, "recipe trashed", slog.String("recipe_id", id.String()))
	s.recordActivity(ctx, actor, domain.ActivityDeleted, deleted)
	s.recordAudit(ctx, actor, rec, domain.AuditRecipeSoftDeleted)

	return deleted, nil
}

// Restore takes a recipe out of the trash. Fails with ErrNotInTrash when it
// is not trashed and ErrAlreadyExists when its title was reused meanwhile.
func (s *Service) Restore(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	ctx, span := tracer.Start(ctx, "recipe.Restore")
	defer span.End()

	actor, rec, err := s.authorize(ctx, id, domain.OpRestore)
	if err != nil {
		return nil, err
	}

	if err := s.checkTitle(ctx, rec.UserID, rec.Title, rec.ID); err != nil {
		return nil, err
	}

	restored, err := s.recipes.Restore(ctx, id)
	if err != nil {
		if domain.ReasonOf(err) == domain.ReasonNotFound {
			return nil, domain.ErrNotInTrash
		}
		return nil, fmt.Errorf("recipe.Restore: %w", err)
	}

	s.log.InfoContext(ctx, "recipe restored", slog.String("recipe_id", id.String()))
	s.recordAudit(ctx, actor, rec, domain.AuditRecipeRestored)

	return restored, nil
}

// HardDelete removes a recipe permanently, trashed or not.
func (s *Service) HardDelete(ctx context.Context, id uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "recipe.HardDelete")
	defer span.End()

	actor, rec, err := s.authorize(ctx, id, domain.OpHardDelete)
	if err != nil {
		return err
	}

	if err := s.recipes.HardDelete(ctx, id); err != nil {
		return fmt.Errorf("recipe.HardDelete: %w", err)
	}

	s.log.InfoContext(ctx, "recipe deleted permanently", slog.String("recipe_id", id.String()))
	if !rec.IsDeleted() {
		s.recordActivity(ctx, actor, domain.ActivityDeleted, rec)
	}
	s.recordAudit(ctx, actor, rec, domain.AuditRecipeHardDeleted)

	return nil
}

// authorize loads the recipe and asks the gate whether the caller may apply
// op to it.
func (s *Service) authorize(ctx context.Context, id uuid.UUID, op domain.Operation) (domain.Actor, *domain.Recipe, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return domain.Actor{}, nil, err
	}

	rec, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return domain.Actor{}, nil, fmt.Errorf("recipe.%s: %w", op, err)
	}

	if err := access.CanModify(actor, access.RecipeTarget(rec), op).Err(); err != nil {
		return domain.Actor{}, nil, err
	}
	return actor, rec, nil
}

func (s *Service) checkTitle(ctx context.Context, ownerID uuid.UUID, title string, excludeID uuid.UUID) error {
	taken, err := s.recipes.TitleExists(ctx, ownerID, title, excludeID)
	if err != nil {
		return fmt.Errorf("recipe.checkTitle: %w", err)
	}
	if taken {
		return fmt.Errorf("recipe title %q: %w", title, domain.ErrAlreadyExists)
	}
	return nil
}

func (s *Service) recordActivity(ctx context.Context, actor domain.Actor, action domain.ActivityAction, rec *domain.Recipe) {
	s.activity.Record(ctx, activity.Event{
		ActorID:     actor.ID,
		Action:      action,
		RecipeID:    rec.ID,
		RecipeTitle: rec.Title,
	})
}

// recordAudit audits admin actions on recipes owned by someone else.
func (s *Service) recordAudit(ctx context.Context, actor domain.Actor, rec *domain.Recipe, action domain.AuditAction) {
	if !actor.IsAdmin() || actor.ID == rec.UserID {
		return
	}
	s.audit.Record(ctx, audit.Event{
		ActorID:    actor.ID,
		Action:     action,
		TargetType: domain.TargetRecipe,
		TargetID:   rec.ID,
		Details: map[string]any{
			"title":    rec.Title,
			"owner_id": rec.UserID.String(),
		},
	})
}
