// Package user implements self-service account operations and the admin
// user lifecycle: activation, soft delete, restore, hard delete and role
// changes.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
	"github.com/heartmarshall/recipebox-backend/internal/service/audit"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

var tracer = otel.Tracer("github.com/heartmarshall/recipebox-backend/internal/service/user")

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)
	List(ctx context.Context, filter domain.UserFilter) ([]domain.User, int, error)
	Dependents(ctx context.Context, id uuid.UUID) (domain.Dependents, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, firstName, lastName, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	UpdatePreferences(ctx context.Context, id uuid.UUID, p domain.UserPreferences) (*domain.User, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error)
	UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
	SoftDelete(ctx context.Context, id, deletedBy uuid.UUID) (*domain.User, error)
	Restore(ctx context.Context, id uuid.UUID) (*domain.User, error)
	HardDelete(ctx context.Context, id uuid.UUID) error
}

type mealPlanRepo interface {
	GetByUser(ctx context.Context, userID uuid.UUID) (*domain.MealPlan, error)
	Save(ctx context.Context, plan *domain.MealPlan) (*domain.MealPlan, error)
}

type auditRecorder interface {
	Record(ctx context.Context, ev audit.Event)
}

// Service implements user profile and account administration.
type Service struct {
	log       *slog.Logger
	users     userRepo
	mealPlans mealPlanRepo
	audit     auditRecorder
	hashCost  int
}

// NewService creates a new user service instance. hashCost is the bcrypt
// cost used for password changes.
func NewService(
	logger *slog.Logger,
	users userRepo,
	mealPlans mealPlanRepo,
	audit auditRecorder,
	hashCost int,
) *Service {
	return &Service{
		log:       logger.With("service", "user"),
		users:     users,
		mealPlans: mealPlans,
		audit:     audit,
		hashCost:  hashCost,
	}
}
