// Package activity implements the append-only activity feed using PostgreSQL.
package activity

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/recipebox-backend/internal/adapter/postgres"
	"github.com/heartmarshall/recipebox-backend/internal/domain"
)

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new activity repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Append stores an activity. Activities are never updated.
func (r *Repo) Append(ctx context.Context, a domain.Activity) error {
	_, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`INSERT INTO activities (id, user_id, user_name, action, recipe_id, recipe_title, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.ID, a.UserID, a.UserName, string(a.Action), a.RecipeID, a.RecipeTitle, a.CreatedAt,
	)
	if err != nil {
		return postgres.MapError(err, "activity", a.ID)
	}
	return nil
}

// Recent returns the newest limit activities, most recent first.
func (r *Repo) Recent(ctx context.Context, limit int) ([]domain.Activity, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx,
		`SELECT id, user_id, user_name, action, recipe_id, recipe_title, created_at
		 FROM activities ORDER BY created_at DESC, id LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	activities := make([]domain.Activity, 0, limit)
	for rows.Next() {
		var (
			a      domain.Activity
			action string
		)
		if err := rows.Scan(&a.ID, &a.UserID, &a.UserName, &action, &a.RecipeID, &a.RecipeTitle, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		a.Action = domain.ActivityAction(action)
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}
	return activities, nil
}
