// Package recipe implements the recipe lifecycle: create, update, trash,
// restore and permanent delete, plus the visible and trash listings.
package recipe

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
	"github.com/heartmarshall/recipebox-backend/internal/service/activity"
	"github.com/heartmarshall/recipebox-backend/internal/service/audit"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

var tracer = otel.Tracer("github.com/heartmarshall/recipebox-backend/internal/service/recipe")

type recipeRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	TitleExists(ctx context.Context, ownerID uuid.UUID, title string, excludeID uuid.UUID) (bool, error)
	List(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, int, error)
	Create(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error)
	Update(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	Restore(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	HardDelete(ctx context.Context, id uuid.UUID) error
}

type activityRecorder interface {
	Record(ctx context.Context, ev activity.Event)
}

type auditRecorder interface {
	Record(ctx context.Context, ev audit.Event)
}

// Service implements recipe operations.
type Service struct {
	log      *slog.Logger
	recipes  recipeRepo
	activity activityRecorder
	audit    auditRecorder
	now      func() time.Time
}

// NewService creates a new recipe service.
func NewService(
	logger *slog.Logger,
	recipes recipeRepo,
	activity activityRecorder,
	audit auditRecorder,
) *Service {
	return &Service{
		log:      logger.With("service", "recipe"),
		recipes:  recipes,
		activity: activity,
		audit:    audit,
		now:      time.Now,
	}
}
