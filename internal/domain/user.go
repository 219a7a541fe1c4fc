package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User represents a registered account.
type User struct {
	ID                 uuid.UUID
	FirstName          string
	LastName           string
	Email              string
	PasswordHash       string
	Role               UserRole
	Active             bool
	DarkMode           bool
	EmailNotifications bool
	DeletedAt          *time.Time
	DeletedBy          *uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// FullName returns "first last", skipping empty parts.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsDeleted returns true if the account has been soft-deleted.
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// Actor builds the authorization actor for this user.
func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role}
}

// UserPreferences are the self-service display and notification settings.
type UserPreferences struct {
	DarkMode           bool
	EmailNotifications bool
}

// UserSummary is the public projection of a user attached to listings.
type UserSummary struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Email     string
}

// FullName returns "first last", skipping empty parts.
func (s *UserSummary) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// Actor is the authenticated identity performing an operation.
type Actor struct {
	ID   uuid.UUID
	Role UserRole
}

func (a Actor) IsAdmin() bool { return a.Role.IsAdmin() }
