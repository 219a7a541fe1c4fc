package domain

import "net/mail"

const (
	MaxNameLen  = 50
	MaxEmailLen = 254
)

// CheckName appends an error for field when the name is empty or too long.
func CheckName(errs []FieldError, field, value string) []FieldError {
	if value == "" {
		return append(errs, FieldError{Field: field, Message: "required"})
	}
	if len(value) > MaxNameLen {
		return append(errs, FieldError{Field: field, Message: "too long"})
	}
	return errs
}

// CheckEmail appends an error when email is empty, too long or not a bare
// address.
func CheckEmail(errs []FieldError, email string) []FieldError {
	if email == "" {
		return append(errs, FieldError{Field: "email", Message: "required"})
	}
	if len(email) > MaxEmailLen {
		return append(errs, FieldError{Field: "email", Message: "too long"})
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return append(errs, FieldError{Field: "email", Message: "invalid format"})
	}
	return errs
}
