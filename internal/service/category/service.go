// Package category manages recipe categories. Recipes reference categories
// by name, so renames cascade to recipes and deletes are blocked while a
// visible recipe still uses the name.
package category

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
	"github.com/heartmarshall/recipebox-backend/internal/service/audit"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type categoryRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	NameTaken(ctx context.Context, name, slug string, excludeID uuid.UUID) (bool, error)
	ListActive(ctx context.Context) ([]domain.Category, error)
	List(ctx context.Context, filter domain.CategoryFilter) ([]domain.Category, int, error)
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Update(ctx context.Context, c *domain.Category) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type recipeRepo interface {
	CountByCategory(ctx context.Context, name string) (int, error)
	RenameCategory(ctx context.Context, oldName, newName string) (int64, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type auditRecorder interface {
	Record(ctx context.Context, ev audit.Event)
}

// Service implements category operations.
type Service struct {
	log        *slog.Logger
	categories categoryRepo
	recipes    recipeRepo
	tx         txManager
	audit      auditRecorder
	now        func() time.Time
}

// NewService creates a new category service.
func NewService(
	logger *slog.Logger,
	categories categoryRepo,
	recipes recipeRepo,
	tx txManager,
	audit auditRecorder,
) *Service {
	return &Service{
		log:        logger.With("service", "category"),
		categories: categories,
		recipes:    recipes,
		tx:         tx,
		audit:      audit,
		now:        time.Now,
	}
}
