// Package access decides whether an actor may apply a lifecycle operation
// to a target. Decisions are pure: callers load the target, ask CanModify,
// and only then write.
package access

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
)

// Target is the state of an entity relevant to an authorization decision.
type Target struct {
	Kind      domain.TargetKind
	ID        uuid.UUID
	OwnerID   uuid.UUID       // recipes
	Role      domain.UserRole // users
	DeletedAt *time.Time

	// Dependents is only consulted for OpHardDelete.
	Dependents int
}

// RecipeTarget describes a recipe.
func RecipeTarget(r *domain.Recipe) Target {
	return Target{Kind: domain.TargetRecipe, ID: r.ID, OwnerID: r.UserID, DeletedAt: r.DeletedAt}
}

// UserTarget describes a user account with its dependent record count.
func UserTarget(u *domain.User, dependents int) Target {
	return Target{Kind: domain.TargetUser, ID: u.ID, Role: u.Role, DeletedAt: u.DeletedAt, Dependents: dependents}
}

// CategoryTarget describes a category; dependents is the number of visible
// recipes using it.
func CategoryTarget(c *domain.Category, dependents int) Target {
	return Target{Kind: domain.TargetCategory, ID: c.ID, Dependents: dependents}
}

// Decision is the outcome of CanModify. Reason is empty when Allowed.
type Decision struct {
	Allowed bool
	Reason  domain.Reason
}

// Err converts a negative decision to the matching domain error.
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	return domain.ErrorFor(d.Reason)
}

var allow = Decision{Allowed: true}

func deny(r domain.Reason) Decision { return Decision{Reason: r} }

// CanModify evaluates, in order: self protection, admin protection,
// ownership (admins pass), then state preconditions.
func CanModify(actor domain.Actor, target Target, op domain.Operation) Decision {
	if target.Kind == domain.TargetUser {
		if op.IsAccountAction() && actor.ID == target.ID {
			return deny(domain.ReasonSelfProtection)
		}
		if target.Role.IsAdmin() && actor.ID != target.ID {
			return deny(domain.ReasonAdminProtection)
		}
	}

	if !actor.IsAdmin() {
		switch target.Kind {
		case domain.TargetRecipe:
			if actor.ID != target.OwnerID {
				return deny(domain.ReasonNotAllowed)
			}
		case domain.TargetUser:
			if op.IsAccountAction() || actor.ID != target.ID {
				return deny(domain.ReasonNotAllowed)
			}
		default:
			return deny(domain.ReasonNotAllowed)
		}
	}

	return checkState(target, op)
}

func checkState(target Target, op domain.Operation) Decision {
	deleted := target.DeletedAt != nil

	switch op {
	case domain.OpRestore:
		if !deleted {
			return deny(domain.ReasonNotInTrash)
		}
	case domain.OpSoftDelete:
		if deleted {
			return deny(domain.ReasonAlreadyDeleted)
		}
	case domain.OpUpdate:
		if deleted {
			if target.Kind == domain.TargetRecipe {
				return deny(domain.ReasonNotFound)
			}
			return deny(domain.ReasonAlreadyDeleted)
		}
	case domain.OpActivate, domain.OpDeactivate, domain.OpSetRole:
		if deleted {
			return deny(domain.ReasonAlreadyDeleted)
		}
	case domain.OpHardDelete:
		if target.Dependents > 0 {
			return deny(domain.ReasonHasData)
		}
	}
	return allow
}
