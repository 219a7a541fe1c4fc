package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category groups recipes. Recipes reference categories by name.
type Category struct {
	ID          uuid.UUID
	Name        string
	Slug        string
	Description string
	IsActive    bool
	CreatedBy   *uuid.UUID
	CreatedAt   time.Time
	UpdatedAt   time.Time
	RecipeCount int // computed field, not stored in DB
}

// CategoryFilter holds listing parameters for the admin category list.
type CategoryFilter struct {
	Search string
	Active *bool
	Limit  int
	Offset int
}
