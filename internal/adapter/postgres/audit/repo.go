// Package audit implements the admin audit log repository using PostgreSQL.
// The log is append-only; nothing in the application reads it back.
package audit

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/recipebox-backend/internal/adapter/postgres"
	"github.com/heartmarshall/recipebox-backend/internal/domain"
)

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new audit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Log appends an audit record. Nil details are stored as an empty object.
func (r *Repo) Log(ctx context.Context, record domain.AuditRecord) error {
	details := record.Details
	if details == nil {
		details = map[string]any{}
	}
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("audit_record marshal details: %w", err)
	}

	_, err = postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`INSERT INTO admin_audit (id, actor_id, action, target_type, target_id, details, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		record.ID, record.ActorID, string(record.Action), string(record.TargetType), record.TargetID,
		detailsJSON, record.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "audit_record", record.ID)
	}
	return nil
}
