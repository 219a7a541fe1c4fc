package domain

import (
	"time"

	"github.com/google/uuid"
)

// Activity is an append-only feed entry describing a recipe lifecycle event.
// Names and titles are snapshots taken when the event happened.
type Activity struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	UserName    string
	Action      ActivityAction
	RecipeID    uuid.UUID
	RecipeTitle string
	CreatedAt   time.Time
}
