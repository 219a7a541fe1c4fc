// Package recipe implements the Recipe repository using PostgreSQL.
// Every read that is not explicitly about the trash filters on
// deleted_at IS NULL.
package recipe

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/recipebox-backend/internal/adapter/postgres"
	"github.com/heartmarshall/recipebox-backend/internal/domain"
)

const table = "recipes"

var columns = []string{
	"id", "user_id", "title", "description", "category", "ingredients", "instructions",
	"tags", "dietary", "difficulty", "rating", "cooking_time", "prep_time", "servings",
	"notes", "image_url", "deleted_at", "created_at", "updated_at",
}

var visible = squirrel.Eq{"deleted_at": nil}

// Repo provides recipe persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new recipe repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a recipe by id whether or not it is in the trash.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	query := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	return r.getOne(ctx, query, id)
}

// TitleExists reports whether owner has a recipe outside the trash whose title
// equals title case-insensitively. excludeID is ignored when uuid.Nil.
func (r *Repo) TitleExists(ctx context.Context, ownerID uuid.UUID, title string, excludeID uuid.UUID) (bool, error) {
	query := postgres.Builder().Select("1").From(table).
		Where(visible).
		Where(squirrel.Eq{"user_id": ownerID}).
		Where(squirrel.Expr("lower(title) = lower(?)", title))
	if excludeID != uuid.Nil {
		query = query.Where(squirrel.NotEq{"id": excludeID})
	}

	sql, args, err := query.Prefix("SELECT EXISTS (").Suffix(")").ToSql()
	if err != nil {
		return false, fmt.Errorf("build title check: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("check recipe title: %w", err)
	}
	return exists, nil
}

// List returns a page of recipes matching filter and the total match count.
// Status defaults to visible recipes only.
func (r *Repo) List(ctx context.Context, filter domain.RecipeFilter) ([]domain.Recipe, int, error) {
	where := squirrel.And{}
	order := "created_at DESC"

	switch filter.Status {
	case domain.RecordStatusAll:
	case domain.RecordStatusDeleted:
		where = append(where, squirrel.NotEq{"deleted_at": nil})
		order = "deleted_at DESC"
	default:
		where = append(where, visible)
	}

	if filter.UserID != nil {
		where = append(where, squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.Search != "" {
		where = append(where, postgres.ILike(filter.Search, "title", "description"))
	}
	if filter.Category != "" {
		where = append(where, squirrel.Expr("lower(category) = lower(?)", filter.Category))
	}
	if filter.Tag != "" {
		where = append(where, squirrel.Expr("? = ANY(tags)", strings.ToLower(filter.Tag)))
	}
	if filter.Difficulty != "" {
		where = append(where, squirrel.Eq{"difficulty": string(filter.Difficulty)})
	}

	query := postgres.Builder().Select(columns...).From(table).Where(where).
		OrderBy(order, "id").
		Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))

	recipes, err := r.list(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	sql, args, err := postgres.Builder().Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count recipes: %w", err)
	}
	var total int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count recipes: %w", err)
	}

	return recipes, total, nil
}

// CountByCategory counts visible recipes whose category equals name
// case-insensitively.
func (r *Repo) CountByCategory(ctx context.Context, name string) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT count(*) FROM recipes WHERE deleted_at IS NULL AND lower(category) = lower($1)`,
		name,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count recipes by category: %w", err)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a recipe. A visible recipe with the same owner and title
// yields ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error) {
	query := postgres.Builder().Insert(table).
		Columns(
			"id", "user_id", "title", "description", "category", "ingredients", "instructions",
			"tags", "dietary", "difficulty", "rating", "cooking_time", "prep_time", "servings",
			"notes", "image_url", "created_at", "updated_at",
		).
		Values(
			rec.ID, rec.UserID, rec.Title, rec.Description, rec.Category, rec.Ingredients, rec.Instructions,
			rec.Tags, rec.Dietary, string(rec.Difficulty), rec.Rating, rec.CookingTime, rec.PrepTime, rec.Servings,
			rec.Notes, rec.ImageURL, rec.CreatedAt, rec.UpdatedAt,
		).
		Suffix(returning())
	return r.getOne(ctx, query, rec.ID)
}

// Update writes every mutable field of a visible recipe.
func (r *Repo) Update(ctx context.Context, rec *domain.Recipe) (*domain.Recipe, error) {
	query := postgres.Builder().Update(table).
		SetMap(map[string]any{
			"title":        rec.Title,
			"description":  rec.Description,
			"category":     rec.Category,
			"ingredients":  rec.Ingredients,
			"instructions": rec.Instructions,
			"tags":         rec.Tags,
			"dietary":      rec.Dietary,
			"difficulty":   string(rec.Difficulty),
			"rating":       rec.Rating,
			"cooking_time": rec.CookingTime,
			"prep_time":    rec.PrepTime,
			"servings":     rec.Servings,
			"notes":        rec.Notes,
			"image_url":    rec.ImageURL,
		}).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": rec.ID}).
		Where(visible).
		Suffix(returning())
	return r.getOne(ctx, query, rec.ID)
}

// SoftDelete moves a visible recipe to the trash. Returns ErrNotFound if the
// recipe does not exist or is already trashed.
func (r *Repo) SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	query := postgres.Builder().Update(table).
		Set("deleted_at", squirrel.Expr("now()")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where(visible).
		Suffix(returning())
	return r.getOne(ctx, query, id)
}

// Restore takes a recipe out of the trash. Returns ErrNotFound if it is not
// trashed and ErrAlreadyExists if its title is now used by another visible
// recipe of the same owner.
func (r *Repo) Restore(ctx context.Context, id uuid.UUID) (*domain.Recipe, error) {
	query := postgres.Builder().Update(table).
		Set("deleted_at", nil).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"deleted_at": nil}).
		Suffix(returning())
	return r.getOne(ctx, query, id)
}

// HardDelete physically removes a recipe.
func (r *Repo) HardDelete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return postgres.MapDeleteError(err, "recipe", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("recipe %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// RenameCategory sets category to newName on every visible recipe whose
// category equals oldName case-insensitively. Returns the number of rows
// changed.
func (r *Repo) RenameCategory(ctx context.Context, oldName, newName string) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE recipes SET category = $2, updated_at = now()
		 WHERE deleted_at IS NULL AND lower(category) = lower($1)`,
		oldName, newName,
	)
	if err != nil {
		return 0, fmt.Errorf("rename recipe category: %w", err)
	}
	return tag.RowsAffected(), nil
}

// PurgeDeletedBefore physically removes recipes trashed before threshold.
func (r *Repo) PurgeDeletedBefore(ctx context.Context, threshold time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`DELETE FROM recipes WHERE deleted_at IS NOT NULL AND deleted_at < $1`,
		threshold,
	)
	if err != nil {
		return 0, fmt.Errorf("purge deleted recipes: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) getOne(ctx context.Context, query squirrel.Sqlizer, id uuid.UUID) (*domain.Recipe, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build recipe query: %w", err)
	}
	rec, err := scanRecipe(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "recipe", id)
	}
	return rec, nil
}

func (r *Repo) list(ctx context.Context, query squirrel.SelectBuilder) ([]domain.Recipe, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build recipe list: %w", err)
	}
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	recipes := make([]domain.Recipe, 0)
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("scan recipe: %w", err)
		}
		recipes = append(recipes, *rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recipes: %w", err)
	}
	return recipes, nil
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func scanRecipe(row pgx.Row) (*domain.Recipe, error) {
	var (
		rec        domain.Recipe
		difficulty string
	)
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Title, &rec.Description, &rec.Category, &rec.Ingredients, &rec.Instructions,
		&rec.Tags, &rec.Dietary, &difficulty, &rec.Rating, &rec.CookingTime, &rec.PrepTime, &rec.Servings,
		&rec.Notes, &rec.ImageURL, &rec.DeletedAt, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	rec.Difficulty = domain.Difficulty(difficulty)
	return &rec, nil
}
