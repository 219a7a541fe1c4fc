package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates an active user with the "user" role.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleUser)
}

// SeedAdmin creates an active user with the "admin" role.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return seedUser(t, pool, domain.UserRoleAdmin)
}

func seedUser(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:                 uuid.New(),
		FirstName:          "Test",
		LastName:           "User " + suffix,
		Email:              "testuser-" + suffix + "@example.com",
		PasswordHash:       "$2a$10$invalidhashfortestsonlyinvalidhashfortestsonly",
		Role:               role,
		Active:             true,
		EmailNotifications: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, first_name, last_name, email, password_hash, role, active,
		                    dark_mode, email_notifications, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		user.ID, user.FirstName, user.LastName, user.Email, user.PasswordHash, string(user.Role),
		user.Active, user.DarkMode, user.EmailNotifications, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	return user
}

// SeedRecipe creates a visible recipe owned by userID in the given category.
func SeedRecipe(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, title, category string) domain.Recipe {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	r := domain.Recipe{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        title,
		Description:  "Seeded recipe " + uniqueSuffix(),
		Category:     category,
		Ingredients:  []string{"salt"},
		Instructions: []string{"cook"},
		Tags:         []string{},
		Dietary:      []string{},
		Difficulty:   domain.DifficultyMedium,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO recipes (id, user_id, title, description, category, ingredients, instructions,
		                      tags, dietary, difficulty, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		r.ID, r.UserID, r.Title, r.Description, r.Category, r.Ingredients, r.Instructions,
		r.Tags, r.Dietary, string(r.Difficulty), r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRecipe insert: %v", err)
	}

	return r
}

// SeedCategory creates an active category with a unique name based on prefix.
func SeedCategory(t *testing.T, pool *pgxpool.Pool, prefix string) domain.Category {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	name := prefix + " " + uniqueSuffix()
	c := domain.Category{
		ID:        uuid.New(),
		Name:      name,
		Slug:      domain.Slugify(name),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO categories (id, name, slug, description, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		c.ID, c.Name, c.Slug, c.Description, c.IsActive, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory insert: %v", err)
	}

	return c
}
