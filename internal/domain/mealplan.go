package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxPlannedMeals caps the entries of one meal plan: every slot of a week.
const MaxPlannedMeals = 7 * 4

// MealSlot is the meal of the day an entry is planned for.
type MealSlot string

const (
	MealBreakfast MealSlot = "breakfast"
	MealLunch     MealSlot = "lunch"
	MealDinner    MealSlot = "dinner"
	MealSnack     MealSlot = "snack"
)

func (s MealSlot) String() string { return string(s) }

func (s MealSlot) IsValid() bool {
	switch s {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
		return true
	}
	return false
}

// ParseWeekday accepts an English day name in any case ("monday", "Sunday").
func ParseWeekday(s string) (time.Weekday, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == s {
			return d, true
		}
	}
	return 0, false
}

// WeekdayName is the lowercase form ParseWeekday accepts.
func WeekdayName(d time.Weekday) string {
	return strings.ToLower(d.String())
}

// PlannedMeal is one entry of a weekly meal plan. RecipeID optionally links
// a recipe; Title is always what gets shown.
type PlannedMeal struct {
	Day      time.Weekday
	Slot     MealSlot
	RecipeID *uuid.UUID
	Title    string
}

// MealPlan is a user's weekly plan. Each user has at most one, and saving
// replaces it whole.
type MealPlan struct {
	UserID    uuid.UUID
	Meals     []PlannedMeal
	CreatedAt time.Time
	UpdatedAt time.Time
}
