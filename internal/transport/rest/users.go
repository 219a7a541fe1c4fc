package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
	"github.com/heartmarshall/recipebox-backend/internal/service/user"
)

type profileService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	ChangePassword(ctx context.Context, input user.ChangePasswordInput) error
	UpdatePreferences(ctx context.Context, input user.PreferencesInput) (*domain.User, error)
	PublicInfo(ctx context.Context, id uuid.UUID) (*user.PublicProfile, error)
	MealPlan(ctx context.Context) (*domain.MealPlan, error)
	SaveMealPlan(ctx context.Context, input user.MealPlanInput) (*domain.MealPlan, error)
}

// UserHandler serves the self-service profile endpoints.
type UserHandler struct {
	svc profileService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc profileService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type updateProfileRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type preferencesRequest struct {
	DarkMode           *bool `json:"darkMode"`
	EmailNotifications *bool `json:"emailNotifications"`
}

type plannedMealDTO struct {
	Day      string     `json:"day"`
	Slot     string     `json:"slot"`
	RecipeID *uuid.UUID `json:"recipeId,omitempty"`
	Title    string     `json:"title"`
}

type mealPlanRequest struct {
	Meals []plannedMealDTO `json:"meals"`
}

type mealPlanResponse struct {
	Meals     []plannedMealDTO `json:"meals"`
	UpdatedAt *time.Time       `json:"updatedAt,omitempty"`
}

func toMealPlanResponse(p *domain.MealPlan) mealPlanResponse {
	resp := mealPlanResponse{Meals: make([]plannedMealDTO, 0, len(p.Meals))}
	for _, m := range p.Meals {
		resp.Meals = append(resp.Meals, plannedMealDTO{
			Day:      domain.WeekdayName(m.Day),
			Slot:     m.Slot.String(),
			RecipeID: m.RecipeID,
			Title:    m.Title,
		})
	}
	if !p.UpdatedAt.IsZero() {
		resp.UpdatedAt = &p.UpdatedAt
	}
	return resp
}

type publicProfileResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// Me handles GET /api/users/me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// UpdateMe handles PUT /api/users/me.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), user.UpdateProfileInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// ChangePassword handles PUT /api/users/me/password.
func (h *UserHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req changePasswordRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.svc.ChangePassword(r.Context(), user.ChangePasswordInput{
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UpdatePreferences handles PUT /api/users/me/preferences.
func (h *UserHandler) UpdatePreferences(w http.ResponseWriter, r *http.Request) {
	var req preferencesRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.svc.UpdatePreferences(r.Context(), user.PreferencesInput{
		DarkMode:           req.DarkMode,
		EmailNotifications: req.EmailNotifications,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// Public handles GET /api/users/{id}/public.
func (h *UserHandler) Public(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	p, err := h.svc.PublicInfo(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, publicProfileResponse{
		ID:   p.ID.String(),
		Name: p.Name,
		Role: p.Role.String(),
	})
}

// MealPlan handles GET /api/users/me/meals.
func (h *UserHandler) MealPlan(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.MealPlan(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMealPlanResponse(p))
}

// SaveMealPlan handles PUT /api/users/me/meals.
func (h *UserHandler) SaveMealPlan(w http.ResponseWriter, r *http.Request) {
	var req mealPlanRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	in := user.MealPlanInput{Meals: make([]user.PlannedMealInput, 0, len(req.Meals))}
	for _, m := range req.Meals {
		in.Meals = append(in.Meals, user.PlannedMealInput{
			Day:      m.Day,
			Slot:     m.Slot,
			RecipeID: m.RecipeID,
			Title:    m.Title,
		})
	}

	p, err := h.svc.SaveMealPlan(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMealPlanResponse(p))
}
