// Package user implements the User repository using PostgreSQL.
package user

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

const table = "users"

var columns = []string{
	"id", "first_name", "last_name", "email", "password_hash", "role", "active",
	"dark_mode", "email_notifications", "deleted_at", "deleted_by", "created_at", "updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key, including soft-deleted users.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": id})
	return r.getOne(ctx, query, id)
}

// GetByEmail returns a user by email, compared case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := postgres.Builder().Select(columns...).From(table).
		Where(squirrel.Expr("lower(email) = lower(?)", email))
	return r.getOne(ctx, query, uuid.Nil)
}

// GetByIDs returns the users with the given ids in no particular order.
// Missing ids are silently skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}
	query := postgres.Builder().Select(columns...).From(table).Where(squirrel.Eq{"id": ids})
	return r.list(ctx, query)
}

// EmailTaken reports whether another user (not excludeID) already uses email.
func (r *Repo) EmailTaken(ctx context.Context, email string, excludeID uuid.UUID) (bool, error) {
	query := postgres.Builder().Select("1").From(table).
		Where(squirrel.Expr("lower(email) = lower(?)", email)).
		Where(squirrel.NotEq{"id": excludeID}).
		Prefix("SELECT EXISTS (").Suffix(")")

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("build email check: %w", err)
	}

	var taken bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&taken); err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return taken, nil
}

// List returns a page of users matching filter plus the total match count.
func (r *Repo) List(ctx context.Context, filter domain.UserFilter) ([]domain.User, int, error) {
	where := squirrel.And{}
	if filter.Search != "" {
		where = append(where, postgres.ILike(filter.Search, "first_name", "last_name", "email"))
	}
	if filter.Role != "" {
		where = append(where, squirrel.Eq{"role": string(filter.Role)})
	}
	switch filter.Status {
	case domain.UserStatusActive:
		where = append(where, squirrel.Eq{"deleted_at": nil, "active": true})
	case domain.UserStatusInactive:
		where = append(where, squirrel.Eq{"deleted_at": nil, "active": false})
	case domain.UserStatusDeleted:
		where = append(where, squirrel.NotEq{"deleted_at": nil})
	}

	query := postgres.Builder().Select(columns...).From(table).Where(where).
		OrderBy("created_at DESC", "id").
		Limit(uint64(filter.Limit)).Offset(uint64(filter.Offset))

	users, err := r.list(ctx, query)
	if err != nil {
		return nil, 0, err
	}

	total, err := r.count(ctx, where)
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

// Dependents counts the records that block a hard delete of the user:
// recipes (live and trashed), activity entries and the meal plan.
func (r *Repo) Dependents(ctx context.Context, id uuid.UUID) (domain.Dependents, error) {
	d := domain.Dependents{UserID: id}
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx,
		`SELECT
		    count(*) FILTER (WHERE r.deleted_at IS NULL),
		    count(*) FILTER (WHERE r.deleted_at IS NOT NULL),
		    (SELECT count(*) FROM activities WHERE user_id = $1),
		    (SELECT count(*) FROM meal_plans WHERE user_id = $1)
		 FROM recipes r WHERE r.user_id = $1`,
		id,
	).Scan(&d.Recipes, &d.TrashedRecipes, &d.Activities, &d.MealPlans)
	if err != nil {
		return domain.Dependents{}, postgres.MapError(err, "user", id)
	}
	return d, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the persisted row.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query := postgres.Builder().Insert(table).
		Columns("id", "first_name", "last_name", "email", "password_hash", "role", "active",
			"dark_mode", "email_notifications", "created_at", "updated_at").
		Values(u.ID, u.FirstName, u.LastName, u.Email, u.PasswordHash, string(u.Role), u.Active,
			u.DarkMode, u.EmailNotifications, u.CreatedAt, u.UpdatedAt).
		Suffix(returning())
	return r.getOne(ctx, query, u.ID)
}

// UpdateProfile changes the name and email of a user.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, firstName, lastName, email string) (*domain.User, error) {
	return r.update(ctx, id, map[string]any{
		"first_name": firstName,
		"last_name":  lastName,
		"email":      email,
	})
}

// UpdatePassword replaces the stored password hash.
func (r *Repo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	_, err := r.update(ctx, id, map[string]any{"password_hash": hash})
	return err
}

// UpdatePreferences stores the display and notification settings.
func (r *Repo) UpdatePreferences(ctx context.Context, id uuid.UUID, p domain.UserPreferences) (*domain.User, error) {
	return r.update(ctx, id, map[string]any{
		"dark_mode":           p.DarkMode,
		"email_notifications": p.EmailNotifications,
	})
}

// SetActive flips the active flag.
func (r *Repo) SetActive(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error) {
	return r.update(ctx, id, map[string]any{"active": active})
}

// UpdateRole changes the role of a user.
func (r *Repo) UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	return r.update(ctx, id, map[string]any{"role": string(role)})
}

// SoftDelete marks the user deleted by deletedBy and deactivates the account.
// Returns ErrNotFound if the user does not exist or is already deleted.
func (r *Repo) SoftDelete(ctx context.Context, id, deletedBy uuid.UUID) (*domain.User, error) {
	query := postgres.Builder().Update(table).
		Set("deleted_at", squirrel.Expr("now()")).
		Set("deleted_by", deletedBy).
		Set("active", false).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id, "deleted_at": nil}).
		Suffix(returning())
	return r.getOne(ctx, query, id)
}

// Restore clears the deletion marker and reactivates the account.
// Returns ErrNotFound if the user does not exist or is not deleted.
func (r *Repo) Restore(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := postgres.Builder().Update(table).
		Set("deleted_at", nil).
		Set("deleted_by", nil).
		Set("active", true).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.NotEq{"deleted_at": nil}).
		Suffix(returning())
	return r.getOne(ctx, query, id)
}

// HardDelete physically removes the user. Any row still referencing the
// account, trashed recipes included, yields ErrHasData.
func (r *Repo) HardDelete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return postgres.MapDeleteError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// PromoteByEmail grants the admin role. Returns ErrNotFound if no such
// non-admin user exists.
func (r *Repo) PromoteByEmail(ctx context.Context, email string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE users SET role = 'admin', updated_at = now()
		 WHERE lower(email) = lower($1) AND role <> 'admin' AND deleted_at IS NULL`,
		email,
	)
	if err != nil {
		return fmt.Errorf("promote user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", email, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) update(ctx context.Context, id uuid.UUID, set map[string]any) (*domain.User, error) {
	query := postgres.Builder().Update(table).
		SetMap(set).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix(returning())
	return r.getOne(ctx, query, id)
}

func (r *Repo) count(ctx context.Context, where squirrel.Sqlizer) (int, error) {
	sql, args, err := postgres.Builder().Select("count(*)").From(table).Where(where).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count users: %w", err)
	}
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *Repo) getOne(ctx context.Context, query squirrel.Sqlizer, id uuid.UUID) (*domain.User, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user query: %w", err)
	}
	u, err := scanUser(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return u, nil
}

func (r *Repo) list(ctx context.Context, query squirrel.SelectBuilder) ([]domain.User, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build user list: %w", err)
	}
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return users, nil
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u         domain.User
		role      string
		deletedAt *time.Time
		deletedBy *uuid.UUID
	)
	err := row.Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &role, &u.Active,
		&u.DarkMode, &u.EmailNotifications, &deletedAt, &deletedBy, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Role = domain.UserRole(role)
	u.DeletedAt = deletedAt
	u.DeletedBy = deletedBy
	return &u, nil
}
