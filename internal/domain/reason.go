package domain

import "errors"

// Reason is the machine-readable outcome of a rejected lifecycle operation.
// Bulk results and API error bodies both use this vocabulary.
type Reason string

const (
	ReasonSelfProtection      Reason = "self_protection"
	ReasonAdminProtection     Reason = "admin_protection"
	ReasonNotAllowed          Reason = "not_allowed"
	ReasonNotFound            Reason = "not_found"
	ReasonAlreadyDeleted      Reason = "already_deleted"
	ReasonNotInTrash          Reason = "not_in_trash"
	ReasonHasData             Reason = "has_data"
	ReasonDuplicate           Reason = "duplicate"
	ReasonValidation          Reason = "validation_error"
	ReasonUnauthorized        Reason = "unauthorized"
	ReasonInfrastructureFault Reason = "infrastructure_fault"
)

func (r Reason) String() string { return string(r) }

// ReasonOf classifies err. Specific lifecycle errors are checked before the
// generic sentinels they wrap. Anything unrecognised is an infrastructure
// fault.
func ReasonOf(err error) Reason {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrSelfProtection):
		return ReasonSelfProtection
	case errors.Is(err, ErrAdminProtection):
		return ReasonAdminProtection
	case errors.Is(err, ErrAlreadyDeleted):
		return ReasonAlreadyDeleted
	case errors.Is(err, ErrNotInTrash):
		return ReasonNotInTrash
	case errors.Is(err, ErrHasData):
		return ReasonHasData
	case errors.Is(err, ErrForbidden):
		return ReasonNotAllowed
	case errors.Is(err, ErrNotFound):
		return ReasonNotFound
	case errors.Is(err, ErrAlreadyExists):
		return ReasonDuplicate
	case errors.Is(err, ErrValidation):
		return ReasonValidation
	case errors.Is(err, ErrUnauthorized):
		return ReasonUnauthorized
	}
	return ReasonInfrastructureFault
}

// ErrorFor is the inverse of ReasonOf for the reasons the authorization
// gate produces.
func ErrorFor(r Reason) error {
	switch r {
	case ReasonSelfProtection:
		return ErrSelfProtection
	case ReasonAdminProtection:
		return ErrAdminProtection
	case ReasonNotAllowed:
		return ErrForbidden
	case ReasonNotFound:
		return ErrNotFound
	case ReasonAlreadyDeleted:
		return ErrAlreadyDeleted
	case ReasonNotInTrash:
		return ErrNotInTrash
	case ReasonHasData:
		return ErrHasData
	case ReasonDuplicate:
		return ErrAlreadyExists
	case ReasonUnauthorized:
		return ErrUnauthorized
	}
	return ErrConflict
}
