package domain

import (
	"math"
	"time"
)

// Overview is the admin dashboard summary.
type Overview struct {
	Users      UserCounts
	Recipes    RecipeCounts
	Categories int
	Growth     Growth
}

// UserCounts breaks users down by account state. Active and Inactive only
// count accounts that are not soft-deleted.
type UserCounts struct {
	Total    int
	Active   int
	Inactive int
	Deleted  int
}

// RecipeCounts summarises visible and trashed recipes.
type RecipeCounts struct {
	Total     int
	Deleted   int
	AvgRating float64
}

// Growth holds week-over-week percentage changes.
type Growth struct {
	Users   float64
	Recipes float64
}

// WeeklyCounts is the raw input for Growth: counts created in the last seven
// days and in the seven days before that.
type WeeklyCounts struct {
	UsersThisWeek   int
	UsersLastWeek   int
	RecipesThisWeek int
	RecipesLastWeek int
}

// DailyCount is one point of a trend series.
type DailyCount struct {
	Day   time.Time
	Count int
}

// LabelCount is a label with the number of records carrying it.
type LabelCount struct {
	Label string
	Count int
}

// RatingBucket counts recipes whose rating rounds down to Rating.
type RatingBucket struct {
	Rating int
	Count  int
}

// CalculateGrowth returns the percentage change from previous to current,
// rounded to two decimals. Zero to zero is 0; anything from zero is 100.
func CalculateGrowth(current, previous int) float64 {
	if previous == 0 {
		if current == 0 {
			return 0
		}
		return 100
	}
	pct := float64(current-previous) / float64(previous) * 100
	return math.Round(pct*100) / 100
}
