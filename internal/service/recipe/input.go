package recipe

import (
	"strings"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
)

const (
	maxTitleLen       = 200
	maxDescriptionLen = 2000
	maxCategoryLen    = 50
	maxNotesLen       = 2000
	maxImageURLLen    = 512
	maxListItems      = 100
	maxMinutes        = 10080
	maxServings       = 1000
)

// CreateInput holds the fields of a new recipe.
type CreateInput struct {
	Title        string
	Description  string
	Category     string
	Ingredients  []string
	Instructions []string
	Tags         []string
	Dietary      []string
	Difficulty   domain.Difficulty
	Rating       float64
	CookingTime  int
	PrepTime     int
	Servings     int
	Notes        string
	ImageURL     string
}

// UpdateInput holds a partial update. Nil fields keep their current value.
type UpdateInput struct {
	Title        *string
	Description  *string
	Category     *string
	Ingredients  *[]string
	Instructions *[]string
	Tags         *[]string
	Dietary      *[]string
	Difficulty   *domain.Difficulty
	Rating       *float64
	CookingTime  *int
	PrepTime     *int
	Servings     *int
	Notes        *string
	ImageURL     *string
}

// apply copies the set fields of i onto rec.
func (i UpdateInput) apply(rec *domain.Recipe) {
	if i.Title != nil {
		rec.Title = *i.Title
	}
	if i.Description != nil {
		rec.Description = *i.Description
	}
	if i.Category != nil {
		rec.Category = *i.Category
	}
	if i.Ingredients != nil {
		rec.Ingredients = *i.Ingredients
	}
	if i.Instructions != nil {
		rec.Instructions = *i.Instructions
	}
	if i.Tags != nil {
		rec.Tags = *i.Tags
	}
	if i.Dietary != nil {
		rec.Dietary = *i.Dietary
	}
	if i.Difficulty != nil {
		rec.Difficulty = *i.Difficulty
	}
	if i.Rating != nil {
		rec.Rating = *i.Rating
	}
	if i.CookingTime != nil {
		rec.CookingTime = *i.CookingTime
	}
	if i.PrepTime != nil {
		rec.PrepTime = *i.PrepTime
	}
	if i.Servings != nil {
		rec.Servings = *i.Servings
	}
	if i.Notes != nil {
		rec.Notes = *i.Notes
	}
	if i.ImageURL != nil {
		rec.ImageURL = *i.ImageURL
	}
}

func (i CreateInput) recipe() domain.Recipe {
	return domain.Recipe{
		Title:        i.Title,
		Description:  i.Description,
		Category:     i.Category,
		Ingredients:  i.Ingredients,
		Instructions: i.Instructions,
		Tags:         i.Tags,
		Dietary:      i.Dietary,
		Difficulty:   i.Difficulty,
		Rating:       i.Rating,
		CookingTime:  i.CookingTime,
		PrepTime:     i.PrepTime,
		Servings:     i.Servings,
		Notes:        i.Notes,
		ImageURL:     i.ImageURL,
	}
}

// normalize trims text, cleans lists, lowercases tags and fills defaults.
func normalize(rec *domain.Recipe) {
	rec.Title = domain.CleanText(rec.Title)
	rec.Description = strings.TrimSpace(rec.Description)
	rec.Category = domain.CleanText(rec.Category)
	if rec.Category == "" {
		rec.Category = domain.DefaultCategory
	}
	rec.Ingredients = domain.CleanList(rec.Ingredients)
	rec.Instructions = domain.CleanList(rec.Instructions)
	rec.Dietary = domain.CleanList(rec.Dietary)
	rec.Tags = domain.NormalizeTags(rec.Tags)
	if rec.Difficulty == "" {
		rec.Difficulty = domain.DefaultDifficulty
	}
	rec.Notes = strings.TrimSpace(rec.Notes)
	rec.ImageURL = strings.TrimSpace(rec.ImageURL)
}

// validate checks a normalized recipe.
func validate(rec *domain.Recipe) error {
	var errs []domain.FieldError

	if rec.Title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	} else if len(rec.Title) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if rec.Description == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	} else if len(rec.Description) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if len(rec.Category) > maxCategoryLen {
		errs = append(errs, domain.FieldError{Field: "category", Message: "too long"})
	}

	if !rec.Difficulty.IsValid() {
		errs = append(errs, domain.FieldError{Field: "difficulty", Message: "must be Easy, Medium or Hard"})
	}

	if rec.Rating < 0 || rec.Rating > 5 {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 0 and 5"})
	}

	if rec.CookingTime < 0 || rec.CookingTime > maxMinutes {
		errs = append(errs, domain.FieldError{Field: "cooking_time", Message: "must be between 0 and 10080 minutes"})
	}
	if rec.PrepTime < 0 || rec.PrepTime > maxMinutes {
		errs = append(errs, domain.FieldError{Field: "prep_time", Message: "must be between 0 and 10080 minutes"})
	}
	if rec.Servings < 0 || rec.Servings > maxServings {
		errs = append(errs, domain.FieldError{Field: "servings", Message: "must be between 0 and 1000"})
	}

	lists := []struct {
		field string
		items []string
	}{
		{"ingredients", rec.Ingredients},
		{"instructions", rec.Instructions},
		{"tags", rec.Tags},
		{"dietary", rec.Dietary},
	}
	for _, l := range lists {
		if len(l.items) > maxListItems {
			errs = append(errs, domain.FieldError{Field: l.field, Message: "too many items"})
		}
	}

	if len(rec.Notes) > maxNotesLen {
		errs = append(errs, domain.FieldError{Field: "notes", Message: "too long"})
	}
	if len(rec.ImageURL) > maxImageURLLen {
		errs = append(errs, domain.FieldError{Field: "image_url", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
