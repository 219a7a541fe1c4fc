package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategory is assigned to recipes created without a category.
const DefaultCategory = "Uncategorised"

// Recipe is a user's recipe. Soft-deleted recipes keep DeletedAt set and are
// hidden from every listing except the trash.
type Recipe struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Title        string
	Description  string
	Category     string
	Ingredients  []string
	Instructions []string
	Tags         []string
	Dietary      []string
	Difficulty   Difficulty
	Rating       float64
	CookingTime  int
	PrepTime     int
	Servings     int
	Notes        string
	ImageURL     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time

	Owner *UserSummary // populated by admin listings only
}

// IsDeleted returns true if the recipe is in the trash.
func (r *Recipe) IsDeleted() bool {
	return r.DeletedAt != nil
}

// RecipeFilter holds listing parameters for recipes.
type RecipeFilter struct {
	UserID     *uuid.UUID
	Search     string
	Category   string
	Tag        string
	Difficulty Difficulty
	Status     RecordStatus
	Limit      int
	Offset     int
}
