package category

import "github.com/heartmarshall/recipebox-backend/internal/domain"

const (
	minNameLen        = 2
	maxNameLen        = 50
	maxDescriptionLen = 200
)

// CreateInput holds the fields of a new category. IsActive defaults to true.
type CreateInput struct {
	Name        string
	Description string
	IsActive    *bool
}

// UpdateInput holds a partial update. Nil fields keep their current value.
type UpdateInput struct {
	Name        *string
	Description *string
	IsActive    *bool
}

// ListInput holds admin listing parameters. Page is 1-based.
type ListInput struct {
	Search string
	Active *bool
	Page   int
	Limit  int
}

func normalize(c *domain.Category) {
	c.Name = domain.CleanText(c.Name)
	c.Description = domain.CleanText(c.Description)
	c.Slug = domain.Slugify(c.Name)
}

func validate(c *domain.Category) error {
	var errs []domain.FieldError

	switch {
	case c.Name == "":
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	case len([]rune(c.Name)) < minNameLen:
		errs = append(errs, domain.FieldError{Field: "name", Message: "too short"})
	case len([]rune(c.Name)) > maxNameLen:
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	case c.Slug == "":
		errs = append(errs, domain.FieldError{Field: "name", Message: "must contain letters or digits"})
	}

	if len([]rune(c.Description)) > maxDescriptionLen {
		errs = append(errs, domain.FieldError{Field: "description", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
