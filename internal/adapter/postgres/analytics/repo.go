// Package analytics implements read-only aggregate queries for the admin
// dashboard using PostgreSQL. Recipe aggregates only consider recipes
// outside the trash.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/recipebox-backend/internal/adapter/postgres"
	"github.com/heartmarshall/recipebox-backend/internal/domain"
)

// Repo runs dashboard aggregates.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new analytics repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// UserCounts breaks users down by account state.
func (r *Repo) UserCounts(ctx context.Context) (domain.UserCounts, error) {
	var c domain.UserCounts
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, `
		SELECT count(*) FILTER (WHERE deleted_at IS NULL),
		       count(*) FILTER (WHERE deleted_at IS NULL AND active),
		       count(*) FILTER (WHERE deleted_at IS NULL AND NOT active),
		       count(*) FILTER (WHERE deleted_at IS NOT NULL)
		FROM users`,
	).Scan(&c.Total, &c.Active, &c.Inactive, &c.Deleted)
	if err != nil {
		return domain.UserCounts{}, fmt.Errorf("count users: %w", err)
	}
	return c, nil
}

// RecipeCounts summarises visible and trashed recipes.
func (r *Repo) RecipeCounts(ctx context.Context) (domain.RecipeCounts, error) {
	var c domain.RecipeCounts
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, `
		SELECT count(*) FILTER (WHERE deleted_at IS NULL),
		       count(*) FILTER (WHERE deleted_at IS NOT NULL),
		       coalesce(round(avg(rating) FILTER (WHERE deleted_at IS NULL)::numeric, 2), 0)::float8
		FROM recipes`,
	).Scan(&c.Total, &c.Deleted, &c.AvgRating)
	if err != nil {
		return domain.RecipeCounts{}, fmt.Errorf("count recipes: %w", err)
	}
	return c, nil
}

// CategoryCount returns the number of categories, active or not.
func (r *Repo) CategoryCount(ctx context.Context) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, `SELECT count(*) FROM categories`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}

// WeeklyCounts counts users and recipes created in the seven days before now
// and in the seven days before that.
func (r *Repo) WeeklyCounts(ctx context.Context, now time.Time) (domain.WeeklyCounts, error) {
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	var c domain.WeeklyCounts
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, `
		SELECT
		  (SELECT count(*) FROM users WHERE created_at >= $2 AND created_at < $1),
		  (SELECT count(*) FROM users WHERE created_at >= $3 AND created_at < $2),
		  (SELECT count(*) FROM recipes WHERE deleted_at IS NULL AND created_at >= $2 AND created_at < $1),
		  (SELECT count(*) FROM recipes WHERE deleted_at IS NULL AND created_at >= $3 AND created_at < $2)`,
		now, weekAgo, twoWeeksAgo,
	).Scan(&c.UsersThisWeek, &c.UsersLastWeek, &c.RecipesThisWeek, &c.RecipesLastWeek)
	if err != nil {
		return domain.WeeklyCounts{}, fmt.Errorf("weekly counts: %w", err)
	}
	return c, nil
}

// UserTrend returns registrations per day for the last days days, oldest
// first, with zero-filled gaps.
func (r *Repo) UserTrend(ctx context.Context, days int) ([]domain.DailyCount, error) {
	return r.dailyTrend(ctx, `SELECT created_at FROM users`, days)
}

// RecipeTrend returns visible recipes created per day for the last days days.
func (r *Repo) RecipeTrend(ctx context.Context, days int) ([]domain.DailyCount, error) {
	return r.dailyTrend(ctx, `SELECT created_at FROM recipes WHERE deleted_at IS NULL`, days)
}

func (r *Repo) dailyTrend(ctx context.Context, source string, days int) ([]domain.DailyCount, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, `
		SELECT d.day, count(s.created_at)
		FROM generate_series(current_date - ($1::int - 1), current_date, interval '1 day') AS d(day)
		LEFT JOIN (`+source+`) s ON s.created_at::date = d.day::date
		GROUP BY d.day
		ORDER BY d.day`,
		days,
	)
	if err != nil {
		return nil, fmt.Errorf("daily trend: %w", err)
	}
	defer rows.Close()

	points := make([]domain.DailyCount, 0, days)
	for rows.Next() {
		var p domain.DailyCount
		if err := rows.Scan(&p.Day, &p.Count); err != nil {
			return nil, fmt.Errorf("scan daily trend: %w", err)
		}
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate daily trend: %w", err)
	}
	return points, nil
}

// CategoryUsage counts visible recipes per category, most used first.
func (r *Repo) CategoryUsage(ctx context.Context, limit int) ([]domain.LabelCount, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, `
		SELECT category, count(*) AS n
		FROM recipes WHERE deleted_at IS NULL
		GROUP BY category
		ORDER BY n DESC, category
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("category usage: %w", err)
	}
	return collectLabels(rows)
}

// TagInsights counts visible recipes per tag, most used first.
func (r *Repo) TagInsights(ctx context.Context, limit int) ([]domain.LabelCount, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, `
		SELECT tag, count(*) AS n
		FROM recipes, unnest(tags) AS tag
		WHERE deleted_at IS NULL
		GROUP BY tag
		ORDER BY n DESC, tag
		LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("tag insights: %w", err)
	}
	return collectLabels(rows)
}

// RoleBreakdown counts accounts outside the trash per role.
func (r *Repo) RoleBreakdown(ctx context.Context) ([]domain.LabelCount, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, `
		SELECT role, count(*) AS n
		FROM users WHERE deleted_at IS NULL
		GROUP BY role
		ORDER BY role`,
	)
	if err != nil {
		return nil, fmt.Errorf("role breakdown: %w", err)
	}
	return collectLabels(rows)
}

// RatingDistribution buckets visible recipes by whole-star rating. Every
// bucket from 0 to 5 is present.
func (r *Repo) RatingDistribution(ctx context.Context) ([]domain.RatingBucket, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, `
		SELECT b.rating, count(rc.id)
		FROM generate_series(0, 5) AS b(rating)
		LEFT JOIN recipes rc ON rc.deleted_at IS NULL AND floor(rc.rating)::int = b.rating
		GROUP BY b.rating
		ORDER BY b.rating`,
	)
	if err != nil {
		return nil, fmt.Errorf("rating distribution: %w", err)
	}
	defer rows.Close()

	buckets := make([]domain.RatingBucket, 0, 6)
	for rows.Next() {
		var b domain.RatingBucket
		if err := rows.Scan(&b.Rating, &b.Count); err != nil {
			return nil, fmt.Errorf("scan rating bucket: %w", err)
		}
		buckets = append(buckets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rating buckets: %w", err)
	}
	return buckets, nil
}

func collectLabels(rows pgx.Rows) ([]domain.LabelCount, error) {
	defer rows.Close()

	out := make([]domain.LabelCount, 0)
	for rows.Next() {
		var lc domain.LabelCount
		if err := rows.Scan(&lc.Label, &lc.Count); err != nil {
			return nil, fmt.Errorf("scan label count: %w", err)
		}
		out = append(out, lc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate label counts: %w", err)
	}
	return out, nil
}
