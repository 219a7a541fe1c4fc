// Package activity records the public recipe activity feed.
package activity

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

type activityRepo interface {
	Append(ctx context.Context, a domain.Activity) error
	Recent(ctx context.Context, limit int) ([]domain.Activity, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Event is a successful recipe lifecycle transition. RecipeTitle is the
// title after the operation.
type Event struct {
	ActorID     uuid.UUID
	ActorName   string
	Action      domain.ActivityAction
	RecipeID    uuid.UUID
	RecipeTitle string
}

// Recorder appends activities. Appends are best effort: failures are logged
// and counted, never returned.
type Recorder struct {
	log      *slog.Logger
	repo     activityRepo
	users    userRepo
	failures prometheus.Counter
	now      func() time.Time
}

// NewRecorder creates an activity recorder. failures is incremented on every
// append that could not be stored.
func NewRecorder(logger *slog.Logger, repo activityRepo, users userRepo, failures prometheus.Counter) *Recorder {
	return &Recorder{
		log:      logger.With("service", "activity"),
		repo:     repo,
		users:    users,
		failures: failures,
		now:      time.Now,
	}
}

// Record appends an activity for ev.
func (r *Recorder) Record(ctx context.Context, ev Event) {
	name := ev.ActorName
	if name == "" {
		if u, err := r.users.GetByID(ctx, ev.ActorID); err != nil {
			r.log.WarnContext(ctx, "resolve activity actor name",
				slog.String("user_id", ev.ActorID.String()),
				slog.String("error", err.Error()),
			)
		} else {
			name = u.FullName()
		}
	}

	a := domain.Activity{
		ID:          uuid.New(),
		UserID:      ev.ActorID,
		UserName:    name,
		Action:      ev.Action,
		RecipeID:    ev.RecipeID,
		RecipeTitle: ev.RecipeTitle,
		CreatedAt:   r.now().UTC(),
	}

	if err := r.repo.Append(ctx, a); err != nil {
		r.failures.Inc()
		r.log.ErrorContext(ctx, "append activity",
			slog.String("action", ev.Action.String()),
			slog.String("recipe_id", ev.RecipeID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// Recent returns the newest activities, most recent first. limit is clamped
// to [1, MaxLimit]; zero or less means DefaultLimit.
func (r *Recorder) Recent(ctx context.Context, limit int) ([]domain.Activity, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return r.repo.Recent(ctx, limit)
}
