// Package audit records privileged administrative actions.
package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
)

type auditRepo interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

// Event is a successful admin mutation.
type Event struct {
	ActorID    uuid.UUID
	Action     domain.AuditAction
	TargetType domain.TargetKind
	TargetID   uuid.UUID
	Details    map[string]any
}

// Recorder appends audit records on a best-effort basis.
type Recorder struct {
	log      *slog.Logger
	repo     auditRepo
	failures prometheus.Counter
	now      func() time.Time
}

// NewRecorder creates an audit recorder.
func NewRecorder(logger *slog.Logger, repo auditRepo, failures prometheus.Counter) *Recorder {
	return &Recorder{
		log:      logger.With("service", "audit"),
		repo:     repo,
		failures: failures,
		now:      time.Now,
	}
}

// Record appends ev. A failed append is logged and counted; it never
// reaches the caller.
func (r *Recorder) Record(ctx context.Context, ev Event) {
	details := ev.Details
	if details == nil {
		details = map[string]any{}
	}

	err := r.repo.Log(ctx, domain.AuditRecord{
		ID:         uuid.New(),
		ActorID:    ev.ActorID,
		Action:     ev.Action,
		TargetType: ev.TargetType,
		TargetID:   ev.TargetID,
		Details:    details,
		CreatedAt:  r.now().UTC(),
	})
	if err != nil {
		r.failures.Inc()
		r.log.ErrorContext(ctx, "append audit record",
			slog.String("action", ev.Action.String()),
			slog.String("target_type", ev.TargetType.String()),
			slog.String("target_id", ev.TargetID.String()),
			slog.String("error", err.Error()),
		)
		return
	}

	r.log.InfoContext(ctx, "admin action",
		slog.String("actor_id", ev.ActorID.String()),
		slog.String("action", ev.Action.String()),
		slog.String("target_id", ev.TargetID.String()),
	)
}
