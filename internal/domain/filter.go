package domain

import "github.com/google/uuid"

// UserFilter holds listing parameters for the admin user list.
type UserFilter struct {
	Search string
	Role   UserRole // empty means any role
	Status UserStatus
	Limit  int
	Offset int
}

// Page converts a 1-based page number and a limit into a clamped
// limit/offset pair.
func Page(page, limit, defaultLimit, maxLimit int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}

// Dependents counts records that reference a user. A user can only be hard
// deleted when Total is zero.
type Dependents struct {
	UserID         uuid.UUID
	Recipes        int
	TrashedRecipes int
	Activities     int
	MealPlans      int
}

func (d Dependents) Total() int {
	return d.Recipes + d.TrashedRecipes + d.Activities + d.MealPlans
}
