package category

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
	"github.com/heartmarshall/recipebox-backend/internal/service/access"
	"github.com/heartmarshall/recipebox-backend/internal/service/audit"
)

// Page is one page of the admin category listing.
type Page struct {
	Categories []domain.Category
	Total      int
	Page       int
	Limit      int
}

// ListActive returns active categories ordered by name.
func (s *Service) ListActive(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.categories.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("category.ListActive: %w", err)
	}
	return categories, nil
}

// List returns categories with their recipe counts (admin only).
func (s *Service) List(ctx context.Context, in ListInput) (*Page, error) {
	if _, err := access.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	limit, offset := domain.Page(in.Page, in.Limit, defaultPageSize, maxPageSize)
	categories, total, err := s.categories.List(ctx, domain.CategoryFilter{
		Search: domain.CleanText(in.Search),
		Active: in.Active,
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, fmt.Errorf("category.List: %w", err)
	}

	page := in.Page
	if page < 1 {
		page = 1
	}
	return &Page{Categories: categories, Total: total, Page: page, Limit: limit}, nil
}

// Create adds a category (admin only).
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Category, error) {
	actor, err := access.RequireAdmin(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	c := &domain.Category{
		ID:          uuid.New(),
		Name:        in.Name,
		Description: in.Description,
		IsActive:    in.IsActive == nil || *in.IsActive,
		CreatedBy:   &actor.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	normalize(c)
	if err := validate(c); err != nil {
		return nil, err
	}

	if err := s.checkName(ctx, c, uuid.Nil); err != nil {
		return nil, err
	}

	created, err := s.categories.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("category.Create: %w", err)
	}

	s.log.InfoContext(ctx, "category created",
		slog.String("category_id", created.ID.String()),
		slog.String("name", created.Name),
	)
	s.record(ctx, actor, domain.AuditCategoryCreated, created.ID, map[string]any{"name": created.Name})

	return created, nil
}

// Update changes a category. A rename is applied to every visible recipe
// using the old name in the same transaction.
func (s *Service) Update(ctx context.Context, id uuid.UUID, in UpdateInput) (*domain.Category, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	current, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("category.Update: %w", err)
	}
	if err := access.CanModify(actor, access.CategoryTarget(current, 0), domain.OpUpdate).Err(); err != nil {
		return nil, err
	}

	next := *current
	if in.Name != nil {
		next.Name = *in.Name
	}
	if in.Description != nil {
		next.Description = *in.Description
	}
	if in.IsActive != nil {
		next.IsActive = *in.IsActive
	}
	normalize(&next)
	if err := validate(&next); err != nil {
		return nil, err
	}

	if err := s.checkName(ctx, &next, id); err != nil {
		return nil, err
	}

	var (
		updated *domain.Category
		renamed int64
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.categories.Update(txCtx, &next)
		if err != nil {
			return fmt.Errorf("update category: %w", err)
		}
		if next.Name != current.Name {
			renamed, err = s.recipes.RenameCategory(txCtx, current.Name, next.Name)
			if err != nil {
				return fmt.Errorf("rename recipes: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("category.Update: %w", err)
	}

	s.log.InfoContext(ctx, "category updated",
		slog.String("category_id", id.String()),
		slog.Int64("recipes_renamed", renamed),
	)
	s.record(ctx, actor, domain.AuditCategoryUpdated, id, map[string]any{
		"oldName":         current.Name,
		"newName":         updated.Name,
		"recipes_renamed": renamed,
	})

	return updated, nil
}

// Delete removes a category that no visible recipe uses. Fails with
// ErrHasData otherwise.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return err
	}

	c, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("category.Delete: %w", err)
	}

	inUse, err := s.recipes.CountByCategory(ctx, c.Name)
	if err != nil {
		return fmt.Errorf("category.Delete: %w", err)
	}
	if err := access.CanModify(actor, access.CategoryTarget(c, inUse), domain.OpHardDelete).Err(); err != nil {
		return err
	}

	if err := s.categories.Delete(ctx, id); err != nil {
		return fmt.Errorf("category.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "category deleted", slog.String("category_id", id.String()))
	s.record(ctx, actor, domain.AuditCategoryDeleted, id, map[string]any{"name": c.Name})

	return nil
}

func (s *Service) checkName(ctx context.Context, c *domain.Category, excludeID uuid.UUID) error {
	taken, err := s.categories.NameTaken(ctx, c.Name, c.Slug, excludeID)
	if err != nil {
		return fmt.Errorf("category.checkName: %w", err)
	}
	if taken {
		return fmt.Errorf("category %q: %w", c.Name, domain.ErrAlreadyExists)
	}
	return nil
}

func (s *Service) record(ctx context.Context, actor domain.Actor, action domain.AuditAction, id uuid.UUID, details map[string]any) {
	s.audit.Record(ctx, audit.Event{
		ActorID:    actor.ID,
		Action:     action,
		TargetType: domain.TargetCategory,
		TargetID:   id,
		Details:    details,
	})
}
