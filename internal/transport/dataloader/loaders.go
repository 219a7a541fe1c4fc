package dataloader

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Owner summary by UserID (1:1 nullable)
// ---------------------------------------------------------------------------

func newOwnerBatchFn(repo userRepo) dataloader.BatchFunc[uuid.UUID, *domain.UserSummary] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*domain.UserSummary] {
		users, err := repo.GetByIDs(ctx, keys)
		if err != nil {
			return errorResults[*domain.UserSummary](len(keys), err)
		}

		byID := make(map[uuid.UUID]*domain.UserSummary, len(users))
		for _, u := range users {
			byID[u.ID] = &domain.UserSummary{
				ID:        u.ID,
				FirstName: u.FirstName,
				LastName:  u.LastName,
				Email:     u.Email,
			}
		}

		return mapResults(keys, byID, nilValue[*domain.UserSummary])
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// errorResults returns a slice of error results for all keys.
func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, found map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := found[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// nilValue returns the zero value of V, nil for pointer types.
func nilValue[V any]() V {
	var zero V
	return zero
}
