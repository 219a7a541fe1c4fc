// Package dataloader provides per-request DataLoaders that batch lookups
// made while rendering listings into single SQL calls. DataLoaders call
// repositories directly, bypassing the service layer; they only run behind
// handlers that already passed authorization.
package dataloader

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

// userRepo is the batched user lookup the loaders need.
type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

// Loaders contains the per-request DataLoaders. Created via NewLoaders.
type Loaders struct {
	OwnerByID *dataloader.Loader[uuid.UUID, *domain.UserSummary]
}

// NewLoaders creates a new set of DataLoaders backed by the given repository.
// Must be called per-request (loaders cache results within a single request).
func NewLoaders(users userRepo) *Loaders {
	return &Loaders{
		OwnerByID: newLoader(newOwnerBatchFn(users)),
	}
}

// newLoader creates a dataloader.Loader with standard batch parameters.
func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// AttachOwners fills Owner on every recipe. All owners are requested before
// any is awaited so that they share one batch.
func (l *Loaders) AttachOwners(ctx context.Context, recipes []domain.Recipe) error {
	thunks := make([]dataloader.Thunk[*domain.UserSummary], len(recipes))
	for i := range recipes {
		thunks[i] = l.OwnerByID.Load(ctx, recipes[i].UserID)
	}
	for i, thunk := range thunks {
		owner, err := thunk()
		if err != nil {
			return fmt.Errorf("load owner %s: %w", recipes[i].UserID, err)
		}
		recipes[i].Owner = owner
	}
	return nil
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is the middleware configured?")
	}
	return l
}
