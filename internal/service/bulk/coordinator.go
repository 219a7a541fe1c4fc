// Package bulk applies one lifecycle operation to many recipes or users.
// Items are processed one by one in input order; a failing item is skipped
// with its reason and never aborts the batch.
package bulk

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
	"github.com/heartmarshall/recipebox-backend/internal/service/access"
)

// DefaultMaxIDs caps the number of ids per request when no limit is
// configured.
const DefaultMaxIDs = 200

const outcomeApplied = "applied"

var tracer = otel.Tracer("github.com/heartmarshall/recipebox-backend/internal/service/bulk")

type recipeLifecycle interface {
	SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	Restore(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	HardDelete(ctx context.Context, id uuid.UUID) error
}

type userLifecycle interface {
	SetStatus(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*domain.User, error)
	HardDelete(ctx context.Context, id uuid.UUID) error
}

// Coordinator fans a bulk request out to the recipe and user services.
type Coordinator struct {
	log     *slog.Logger
	recipes recipeLifecycle
	users   userLifecycle
	items   *prometheus.CounterVec
	maxIDs  int
}

// NewCoordinator creates a bulk coordinator. items counts processed ids by
// kind, op and outcome. maxIDs <= 0 means DefaultMaxIDs.
func NewCoordinator(
	logger *slog.Logger,
	recipes recipeLifecycle,
	users userLifecycle,
	items *prometheus.CounterVec,
	maxIDs int,
) *Coordinator {
	if maxIDs <= 0 {
		maxIDs = DefaultMaxIDs
	}
	return &Coordinator{
		log:     logger.With("service", "bulk"),
		recipes: recipes,
		users:   users,
		items:   items,
		maxIDs:  maxIDs,
	}
}

// Apply runs op on every id of the given kind. uuid.Nil never names an
// entity and is skipped as not_found without a lookup. The returned error is
// non-nil only for request-level problems: no authenticated actor, an empty
// or oversized id list, or an unsupported kind/op pair.
func (c *Coordinator) Apply(ctx context.Context, kind domain.TargetKind, op domain.Operation, ids []uuid.UUID) (*domain.BulkResult, error) {
	if _, err := access.ActorFromCtx(ctx); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return nil, domain.NewValidationError("ids", "required (at least 1)")
	}
	if len(ids) > c.maxIDs {
		return nil, domain.NewValidationError("ids", fmt.Sprintf("too many (max %d)", c.maxIDs))
	}

	apply, err := c.operation(kind, op)
	if err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "bulk.Apply")
	defer span.End()
	span.SetAttributes(
		attribute.String("bulk.kind", kind.String()),
		attribute.String("bulk.op", op.String()),
		attribute.Int("bulk.size", len(ids)),
	)

	result := &domain.BulkResult{
		Applied: []uuid.UUID{},
		Skipped: []domain.BulkSkip{},
	}
	seen := make(map[uuid.UUID]struct{}, len(ids))

	for _, id := range ids {
		if id == uuid.Nil {
			c.skip(result, kind, op, id, domain.ReasonNotFound)
			continue
		}
		if _, dup := seen[id]; dup {
			c.skip(result, kind, op, id, domain.ReasonNotFound)
			continue
		}
		seen[id] = struct{}{}

		if err := apply(ctx, id); err != nil {
			reason := domain.ReasonOf(err)
			if reason == domain.ReasonInfrastructureFault {
				c.log.ErrorContext(ctx, "bulk item failed",
					slog.String("kind", kind.String()),
					slog.String("op", op.String()),
					slog.String("id", id.String()),
					slog.String("error", err.Error()),
				)
			}
			c.skip(result, kind, op, id, reason)
			continue
		}

		result.Applied = append(result.Applied, id)
		c.items.WithLabelValues(kind.String(), op.String(), outcomeApplied).Inc()
	}

	span.SetAttributes(
		attribute.Int("bulk.applied", len(result.Applied)),
		attribute.Int("bulk.skipped", len(result.Skipped)),
	)
	c.log.InfoContext(ctx, "bulk operation finished",
		slog.String("kind", kind.String()),
		slog.String("op", op.String()),
		slog.Int("applied", len(result.Applied)),
		slog.Int("skipped", len(result.Skipped)),
	)

	return result, nil
}

func (c *Coordinator) skip(result *domain.BulkResult, kind domain.TargetKind, op domain.Operation, id uuid.UUID, reason domain.Reason) {
	result.Skipped = append(result.Skipped, domain.BulkSkip{ID: id, Reason: reason})
	c.items.WithLabelValues(kind.String(), op.String(), reason.String()).Inc()
}

type itemFunc func(ctx context.Context, id uuid.UUID) error

// operation resolves the per-item call for a supported kind/op pair.
func (c *Coordinator) operation(kind domain.TargetKind, op domain.Operation) (itemFunc, error) {
	switch kind {
	case domain.TargetRecipe:
		switch op {
		case domain.OpSoftDelete:
			return func(ctx context.Context, id uuid.UUID) error {
				_, err := c.recipes.SoftDelete(ctx, id)
				return err
			}, nil
		case domain.OpRestore:
			return func(ctx context.Context, id uuid.UUID) error {
				_, err := c.recipes.Restore(ctx, id)
				return err
			}, nil
		case domain.OpHardDelete:
			return c.recipes.HardDelete, nil
		}
	case domain.TargetUser:
		switch op {
		case domain.OpSoftDelete:
			return func(ctx context.Context, id uuid.UUID) error {
				_, err := c.users.SoftDelete(ctx, id)
				return err
			}, nil
		case domain.OpHardDelete:
			return c.users.HardDelete, nil
		case domain.OpActivate, domain.OpDeactivate:
			active := op == domain.OpActivate
			return func(ctx context.Context, id uuid.UUID) error {
				_, err := c.users.SetStatus(ctx, id, active)
				return err
			}, nil
		}
	}
	return nil, domain.NewValidationError("op", fmt.Sprintf("unsupported bulk operation %s on %s", op, kind))
}
