package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
	"github.com/heartmarshall/recipebox-backend/internal/service/access"
)

// MealPlan returns the caller's weekly plan. A user who never saved one gets
// an empty plan.
func (s *Service) MealPlan(ctx context.Context) (*domain.MealPlan, error) {
	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := s.mealPlans.GetByUser(ctx, actor.ID)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.MealPlan{UserID: actor.ID, Meals: []domain.PlannedMeal{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("user.MealPlan: %w", err)
	}
	return plan, nil
}

// SaveMealPlan replaces the caller's plan. Once saved, the plan counts as
// data that blocks a hard delete of the account.
func (s *Service) SaveMealPlan(ctx context.Context, input MealPlanInput) (*domain.MealPlan, error) {
	ctx, span := tracer.Start(ctx, "user.SaveMealPlan")
	defer span.End()

	meals, err := input.meals()
	if err != nil {
		return nil, err
	}

	actor, err := access.ActorFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := s.mealPlans.Save(ctx, &domain.MealPlan{UserID: actor.ID, Meals: meals})
	if err != nil {
		return nil, fmt.Errorf("user.SaveMealPlan: %w", err)
	}

	s.log.InfoContext(ctx, "meal plan saved",
		slog.String("user_id", actor.ID.String()),
		slog.Int("meals", len(plan.Meals)))

	return plan, nil
}
