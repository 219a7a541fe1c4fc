// Package seeder inserts demo users, categories and recipes for local
// development. Every phase is idempotent: rows that already exist are
// skipped, never updated.
package seeder

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
)

// UserRepo is implemented by the postgres user repository.
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

// CategoryRepo is implemented by the postgres category repository.
type CategoryRepo interface {
	NameTaken(ctx context.Context, name, slug string, excludeID uuid.UUID) (bool, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
}

// RecipeRepo is implemented by the postgres recipe repository.
type RecipeRepo interface {
	TitleExists(ctx context.Context, ownerID uuid.UUID, title string, excludeID uuid.UUID) (bool, error)
	Create(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error)
}

// Repos groups the repositories the pipeline writes to.
type Repos struct {
	Users      UserRepo
	Categories CategoryRepo
	Recipes    RecipeRepo
}
