package domain

import "github.com/google/uuid"

// BulkSkip is one id a bulk operation did not apply, with the reason.
type BulkSkip struct {
	ID     uuid.UUID
	Reason Reason
}

// BulkResult partitions the ids of a bulk operation. Both slices follow input
// order.
type BulkResult struct {
	Applied []uuid.UUID
	Skipped []BulkSkip
}
