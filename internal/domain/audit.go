package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord logs a privileged administrative action.
type AuditRecord struct {
	ID         uuid.UUID
	ActorID    uuid.UUID
	Action     AuditAction
	TargetType TargetKind
	TargetID   uuid.UUID
	Details    map[string]any
	CreatedAt  time.Time
}
