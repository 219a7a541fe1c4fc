package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		return fmt.Errorf("auth.access_token_ttl must be > 0 (got %v)", c.Auth.AccessTokenTTL)
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.password_hash_cost must be in [%d, %d] (got %d)",
			bcrypt.MinCost, bcrypt.MaxCost, c.Auth.PasswordHashCost)
	}

	if err := c.Recipes.validate(); err != nil {
		return fmt.Errorf("recipes: %w", err)
	}

	if c.RateLimit.AuthRequests <= 0 {
		return fmt.Errorf("ratelimit.auth_requests must be > 0 (got %d)", c.RateLimit.AuthRequests)
	}
	if c.RateLimit.AuthWindow <= 0 {
		return fmt.Errorf("ratelimit.auth_window must be > 0 (got %v)", c.RateLimit.AuthWindow)
	}

	if c.Tracing.Enabled && c.Tracing.Endpoint == "" {
		return fmt.Errorf("tracing.endpoint is required when tracing is enabled")
	}

	return nil
}

func (r *RecipesConfig) validate() error {
	if r.TrashRetentionDays < 1 {
		return fmt.Errorf("trash_retention_days must be >= 1 (got %d)", r.TrashRetentionDays)
	}
	if r.BulkMaxIDs < 1 {
		return fmt.Errorf("bulk_max_ids must be >= 1 (got %d)", r.BulkMaxIDs)
	}
	return nil
}
