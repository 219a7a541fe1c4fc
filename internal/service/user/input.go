package user

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/recipebox-backend/internal/auth"
	"github.com/heartmarshall/recipebox-backend/internal/domain"
)

// UpdateProfileInput holds parameters for profile update operation.
type UpdateProfileInput struct {
	FirstName string
	LastName  string
	Email     string
}

func (i *UpdateProfileInput) normalize() {
	i.FirstName = domain.CleanText(i.FirstName)
	i.LastName = domain.CleanText(i.LastName)
	i.Email = domain.NormalizeText(i.Email)
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var errs []domain.FieldError

	errs = domain.CheckName(errs, "first_name", i.FirstName)
	errs = domain.CheckName(errs, "last_name", i.LastName)
	errs = domain.CheckEmail(errs, i.Email)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangePasswordInput holds parameters for a self-service password change.
type ChangePasswordInput struct {
	CurrentPassword string
	NewPassword     string
	ConfirmPassword string
}

// Validate validates the change password input.
func (i ChangePasswordInput) Validate() error {
	var errs []domain.FieldError

	if i.CurrentPassword == "" {
		errs = append(errs, domain.FieldError{Field: "current_password", Message: "required"})
	}
	if i.NewPassword == "" {
		errs = append(errs, domain.FieldError{Field: "new_password", Message: "required"})
	} else if msg := auth.PasswordPolicyViolation(i.NewPassword); msg != "" {
		errs = append(errs, domain.FieldError{Field: "new_password", Message: msg})
	}
	if i.ConfirmPassword != i.NewPassword {
		errs = append(errs, domain.FieldError{Field: "confirm_password", Message: "does not match"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// PreferencesInput holds a partial preferences update. Nil keeps the
// current value.
type PreferencesInput struct {
	DarkMode           *bool
	EmailNotifications *bool
}

func (i PreferencesInput) apply(p domain.UserPreferences) domain.UserPreferences {
	if i.DarkMode != nil {
		p.DarkMode = *i.DarkMode
	}
	if i.EmailNotifications != nil {
		p.EmailNotifications = *i.EmailNotifications
	}
	return p
}

// ListInput holds admin listing parameters. Page is 1-based.
type ListInput struct {
	Search string
	Role   string // "", "all", "user" or "admin"
	Status domain.UserStatus
	Page   int
	Limit  int
}

func (i ListInput) filter() (domain.UserFilter, error) {
	var role domain.UserRole
	switch i.Role {
	case "", "all":
	default:
		role = domain.UserRole(i.Role)
		if !role.IsValid() {
			return domain.UserFilter{}, domain.NewValidationError("role", "must be all, user or admin")
		}
	}

	status := i.Status
	if status == "" {
		status = domain.UserStatusAll
	}
	if !status.IsValid() {
		return domain.UserFilter{}, domain.NewValidationError("status", "must be all, active, inactive or deleted")
	}

	limit, offset := domain.Page(i.Page, i.Limit, defaultPageSize, maxPageSize)
	return domain.UserFilter{
		Search: domain.CleanText(i.Search),
		Role:   role,
		Status: status,
		Limit:  limit,
		Offset: offset,
	}, nil
}

const maxMealTitleLen = 200

// PlannedMealInput is one entry of a meal plan as submitted.
type PlannedMealInput struct {
	Day      string
	Slot     string
	RecipeID *uuid.UUID
	Title    string
}

// MealPlanInput replaces the caller's whole meal plan. An empty list clears it.
type MealPlanInput struct {
	Meals []PlannedMealInput
}

// meals validates every entry and converts it. Errors name the entry index,
// e.g. "meals[2].day".
func (i MealPlanInput) meals() ([]domain.PlannedMeal, error) {
	if len(i.Meals) > domain.MaxPlannedMeals {
		return nil, domain.NewValidationError("meals", fmt.Sprintf("at most %d entries", domain.MaxPlannedMeals))
	}

	var errs []domain.FieldError
	out := make([]domain.PlannedMeal, 0, len(i.Meals))
	for n, m := range i.Meals {
		field := func(name string) string { return fmt.Sprintf("meals[%d].%s", n, name) }

		day, ok := domain.ParseWeekday(m.Day)
		if !ok {
			errs = append(errs, domain.FieldError{Field: field("day"), Message: "must be a day of the week"})
		}
		slot := domain.MealSlot(domain.NormalizeText(m.Slot))
		if !slot.IsValid() {
			errs = append(errs, domain.FieldError{Field: field("slot"), Message: "must be breakfast, lunch, dinner or snack"})
		}
		title := domain.CleanText(m.Title)
		switch {
		case title == "":
			errs = append(errs, domain.FieldError{Field: field("title"), Message: "required"})
		case len(title) > maxMealTitleLen:
			errs = append(errs, domain.FieldError{Field: field("title"), Message: fmt.Sprintf("at most %d characters", maxMealTitleLen)})
		}

		out = append(out, domain.PlannedMeal{Day: day, Slot: slot, RecipeID: m.RecipeID, Title: title})
	}

	if len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}
	return out, nil
}
