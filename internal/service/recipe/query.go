package recipe

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
	"github.com/heartmarshall/recipebox-backend/internal/service/access"
)

// ListInput holds listing parameters. Page is 1-based.
type ListInput struct {
	Search     string
	Category   string
	Tag        string
	Difficulty domain.Difficulty
	OwnerID    *uuid.UUID
	Status     domain.RecordStatus // admin listing only
	Page       int
	Limit      int
}

// Page is one page of recipes with the total match count.
type Page struct {
	Recipes []domain.Recipe
	Total   int
	Page    int
	Limit   int
}

// Get returns a visible recipe. Trashed recipes are reported as not found.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	rec, err := s.recipes.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("recipe.Get: %w", err)
	}
	if rec.IsDeleted() {
		return nil, fmt.Errorf("recipe.Get: %w", domain.ErrNotFound)
	}
	return rec, nil
}

// List returns visible recipes of every owner.
func (s *Service) List(ctx context.Context, in ListInput) (*Page, error) {
	in.Status = domain.RecordStatusActive
	return s.list(ctx, in)
}

// ListMine returns the caller's visible recipes.
func (s *Service) ListMine(ctx context.Context, in ListInput) (*Page, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	in.OwnerID = &actor.ID
	in.Status = domain.RecordStatusActive
	return s.list(ctx, in)
}

// ListTrash returns the caller's trashed recipes.
func (s *Service) ListTrash(ctx context.Context, in ListInput) (*Page, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}
	in.OwnerID = &actor.ID
	in.Status = domain.RecordStatusDeleted
	return s.list(ctx, in)
}

// AdminList returns recipes of every owner in any state. Status defaults to
// all.
func (s *Service) AdminList(ctx context.Context, in ListInput) (*Page, error) {
	if _, err := access.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	if in.Status == "" {
		in.Status = domain.RecordStatusAll
	}
	if !in.Status.IsValid() {
		return nil, domain.NewValidationError("status", "must be all, active or deleted")
	}
	return s.list(ctx, in)
}

func (s *Service) list(ctx context.Context, in ListInput) (*Page, error) {
	if in.Difficulty != "" && !in.Difficulty.IsValid() {
		return nil, domain.NewValidationError("difficulty", "must be Easy, Medium or Hard")
	}

	limit, offset := domain.Page(in.Page, in.Limit, defaultPageSize, maxPageSize)
	filter := domain.RecipeFilter{
		UserID:     in.OwnerID,
		Search:     domain.CleanText(in.Search),
		Category:   domain.CleanText(in.Category),
		Tag:        domain.NormalizeText(in.Tag),
		Difficulty: in.Difficulty,
		Status:     in.Status,
		Limit:      limit,
		Offset:     offset,
	}

	recipes, total, err := s.recipes.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("recipe.List: %w", err)
	}

	page := in.Page
	if page < 1 {
		page = 1
	}
	return &Page{Recipes: recipes, Total: total, Page: page, Limit: limit}, nil
}
