// Package mealplan stores one weekly meal plan per user using PostgreSQL.
// Entries live in a JSONB array on the plan row.
package mealplan

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/recipebox-backend/internal/adapter/postgres"
	"github.com/heartmarshall/recipebox-backend/internal/domain"
)

// Repo provides meal plan persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new meal plan repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// mealJSON is the stored shape of one planned meal.
type mealJSON struct {
	Day      string     `json:"day"`
	Slot     string     `json:"slot"`
	RecipeID *uuid.UUID `json:"recipeId,omitempty"`
	Title    string     `json:"title"`
}

// GetByUser returns the plan of userID. Returns ErrNotFound if the user has
// never saved one.
func (r *Repo) GetByUser(ctx context.Context, userID uuid.UUID) (*domain.MealPlan, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT user_id, meals, created_at, updated_at FROM meal_plans WHERE user_id = $1`,
		userID,
	)
	plan, err := scanPlan(row)
	if err != nil {
		return nil, postgres.MapError(err, "meal_plan", userID)
	}
	return plan, nil
}

// Save creates or replaces the plan of plan.UserID and returns the stored row.
func (r *Repo) Save(ctx context.Context, plan *domain.MealPlan) (*domain.MealPlan, error) {
	stored := make([]mealJSON, 0, len(plan.Meals))
	for _, m := range plan.Meals {
		stored = append(stored, mealJSON{
			Day:      domain.WeekdayName(m.Day),
			Slot:     m.Slot.String(),
			RecipeID: m.RecipeID,
			Title:    m.Title,
		})
	}
	raw, err := json.Marshal(stored)
	if err != nil {
		return nil, fmt.Errorf("meal_plan marshal meals: %w", err)
	}

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`INSERT INTO meal_plans (user_id, meals) VALUES ($1, $2)
		 ON CONFLICT (user_id) DO UPDATE SET meals = EXCLUDED.meals, updated_at = now()
		 RETURNING user_id, meals, created_at, updated_at`,
		plan.UserID, raw,
	)
	saved, err := scanPlan(row)
	if err != nil {
		return nil, postgres.MapError(err, "meal_plan", plan.UserID)
	}
	return saved, nil
}

func scanPlan(row pgx.Row) (*domain.MealPlan, error) {
	var (
		plan domain.MealPlan
		raw  []byte
	)
	if err := row.Scan(&plan.UserID, &raw, &plan.CreatedAt, &plan.UpdatedAt); err != nil {
		return nil, err
	}

	var stored []mealJSON
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, fmt.Errorf("meal_plan %s unmarshal meals: %w", plan.UserID, err)
	}

	plan.Meals = make([]domain.PlannedMeal, 0, len(stored))
	for _, m := range stored {
		day, ok := domain.ParseWeekday(m.Day)
		if !ok {
			return nil, fmt.Errorf("meal_plan %s: unknown day %q", plan.UserID, m.Day)
		}
		plan.Meals = append(plan.Meals, domain.PlannedMeal{
			Day:      day,
			Slot:     domain.MealSlot(m.Slot),
			RecipeID: m.RecipeID,
			Title:    m.Title,
		})
	}
	return &plan, nil
}
