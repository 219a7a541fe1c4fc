package auth

import (
	"github.com/heartmarshall/recipebox-backend/internal/auth"
	"github.com/heartmarshall/recipebox-backend/internal/domain"
)

// maxPasswordLen is bcrypt's input limit.
const maxPasswordLen = 72

// RegisterInput holds parameters for account registration.
type RegisterInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
}

func (i *RegisterInput) normalize() {
	i.FirstName = domain.CleanText(i.FirstName)
	i.LastName = domain.CleanText(i.LastName)
	i.Email = domain.NormalizeText(i.Email)
}

// Validate validates the registration input.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	errs = domain.CheckName(errs, "first_name", i.FirstName)
	errs = domain.CheckName(errs, "last_name", i.LastName)
	errs = domain.CheckEmail(errs, i.Email)

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	} else if msg := auth.PasswordPolicyViolation(i.Password); msg != "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: msg})
	}

	if i.ConfirmPassword != i.Password {
		errs = append(errs, domain.FieldError{Field: "confirm_password", Message: "does not match"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// LoginInput holds parameters for email + password login.
type LoginInput struct {
	Email    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if len(i.Email) > domain.MaxEmailLen {
		errs = append(errs, domain.FieldError{Field: "email", Message: "too long"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
