// Package category implements the Category repository using PostgreSQL.
package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/recipebox-backend/internal/adapter/postgres"
	"github.com/heartmarshall/recipebox-backend/internal/domain"
)

const table = "categories"

var columns = []string{
	"id", "name", "slug", "description", "is_active", "created_by", "created_at", "updated_at",
}

// recipeCount counts visible recipes referencing a category by name.
const recipeCount = `(SELECT count(*) FROM recipes r
	WHERE r.deleted_at IS NULL AND lower(r.category) = lower(categories.name)) AS recipe_count`

var listColumns = append(append([]string{}, columns...), recipeCount)

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a category with its recipe count.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	sql, args, err := postgres.Builder().Select(listColumns...).From(table).
		Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get category: %w", err)
	}
	c, err := scanCategoryWithCount(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return c, nil
}

// NameTaken reports whether another category already uses name
// (case-insensitive) or slug.
func (r *Repo) NameTaken(ctx context.Context, name, slug string, excludeID uuid.UUID) (bool, error) {
	query := postgres.Builder().Select("1").From(table).
		Where(squirrel.Or{
			squirrel.Expr("lower(name) = lower(?)", name),
			squirrel.Eq{"slug": slug},
		})
	if excludeID != uuid.Nil {
		query = query.Where(squirrel.NotEq{"id": excludeID})
	}

	sql, args, err := query.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("build category name check: %w", err)
	}
	var taken bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&taken); err != nil {
		return false, fmt.Errorf("check category name: %w", err)
	}
	return taken, nil
}

// ListActive returns every active category ordered by name.
func (r *Repo) ListActive(ctx context.Context) ([]domain.Category, error) {
	active := true
	categories, _, err := r.List(ctx, domain.CategoryFilter{Active: &active})
	return categories, err
}

// List returns categories matching filter with recipe counts, and the total
// match count. A zero Limit returns every match.
func (r *Repo) List(ctx context.Context, filter domain.CategoryFilter) ([]domain.Category, int, error) {
	where := squirrel.And{}
	if filter.Search != "" {
		where = append(where, postgres.ILike(filter.Search, "name", "description"))
	}
	if filter.Active != nil {
		where = append(where, squirrel.Eq{"is_active": *filter.Active})
	}

	query := postgres.Builder().Select(listColumns...).From(table).
		Where(where).OrderBy("name")
	if filter.Limit > 0 {
		query = query.Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list categories: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]domain.Category, 0)
	for rows.Next() {
		c, err := scanCategoryWithCount(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate categories: %w", err)
	}

	sql, args, err = postgres.Builder().Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count categories: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count categories: %w", err)
	}

	return categories, total, nil
}

// Count returns the number of categories.
func (r *Repo) Count(ctx context.Context) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, `SELECT count(*) FROM categories`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}

// Create inserts a category. A clashing name or slug yields ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	query := postgres.Builder().Insert(table).
		Columns(columns...).
		Values(c.ID, c.Name, c.Slug, c.Description, c.IsActive, c.CreatedBy, c.CreatedAt, c.UpdatedAt).
		Suffix(returning())
	return r.getOne(ctx, query, c.ID)
}

// Update writes name, slug, description and active flag.
func (r *Repo) Update(ctx context.Context, c *domain.Category) (*domain.Category, error) {
	query := postgres.Builder().Update(table).
		SetMap(map[string]any{
			"name":        c.Name,
			"slug":        c.Slug,
			"description": c.Description,
			"is_active":   c.IsActive,
		}).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": c.ID}).
		Suffix(returning())
	return r.getOne(ctx, query, c.ID)
}

// Delete removes a category.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return postgres.MapDeleteError(err, "category", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("category %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (r *Repo) getOne(ctx context.Context, query squirrel.Sqlizer, id uuid.UUID) (*domain.Category, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build category query: %w", err)
	}
	c, err := scanCategory(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "category", id)
	}
	return c, nil
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	if err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.IsActive, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func scanCategoryWithCount(row pgx.Row) (*domain.Category, error) {
	var c domain.Category
	err := row.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.IsActive, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt, &c.RecipeCount)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
