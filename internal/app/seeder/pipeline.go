package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/recipebox-backend/internal/auth"
	"github.com/heartmarshall/recipebox-backend/internal/domain"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"users", "categories", "recipes"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline orchestrates the demo seeding phases.
type Pipeline struct {
	log     *slog.Logger
	repos   Repos
	cfg     Config
	hash    func(password string, cost int) (string, error)
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repos Repos, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		repos:   repos,
		cfg:     cfg,
		hash:    auth.HashPassword,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase failed.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run, still in canonical order. An unknown phase name fails before anything
// is written.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	for _, ph := range phases {
		if !slices.Contains(allPhases, ph) {
			return fmt.Errorf("unknown phase %q", ph)
		}
	}

	toRun := allPhases
	if len(phases) > 0 {
		toRun = nil
		for _, ph := range allPhases {
			if slices.Contains(phases, ph) {
				toRun = append(toRun, ph)
			}
		}
	}

	for _, phase := range toRun {
		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case "users":
			result = p.runUsers(ctx)
		case "categories":
			result = p.runCategories(ctx)
		case "recipes":
			result = p.runRecipes(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Int("skipped", result.Skipped),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

func (p *Pipeline) runUsers(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(demoUsers)}
	}

	var result PhaseResult
	for _, du := range demoUsers {
		existing, err := p.lookupUser(ctx, du.Email)
		if err != nil {
			return PhaseResult{Err: err}
		}
		if existing != nil {
			result.Skipped++
			continue
		}

		password := p.cfg.UserPassword
		if du.Role == domain.UserRoleAdmin {
			password = p.cfg.AdminPassword
		}
		hash, err := p.hash(password, p.cfg.HashCost)
		if err != nil {
			return PhaseResult{Err: fmt.Errorf("hash password for %s: %w", du.Email, err)}
		}

		_, err = p.repos.Users.Create(ctx, &domain.User{
			FirstName:          du.FirstName,
			LastName:           du.LastName,
			Email:              du.Email,
			PasswordHash:       hash,
			Role:               du.Role,
			Active:             true,
			EmailNotifications: true,
		})
		if err != nil {
			return PhaseResult{Err: fmt.Errorf("create user %s: %w", du.Email, err)}
		}
		result.Inserted++
	}
	return result
}

func (p *Pipeline) runCategories(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(demoCategories)}
	}

	var createdBy *uuid.UUID
	admin, err := p.lookupUser(ctx, adminEmail)
	if err != nil {
		return PhaseResult{Err: err}
	}
	if admin != nil {
		createdBy = &admin.ID
	}

	var result PhaseResult
	for _, name := range demoCategories {
		slug := domain.Slugify(name)
		taken, err := p.repos.Categories.NameTaken(ctx, name, slug, uuid.Nil)
		if err != nil {
			return PhaseResult{Err: fmt.Errorf("check category %s: %w", name, err)}
		}
		if taken {
			result.Skipped++
			continue
		}

		_, err = p.repos.Categories.Create(ctx, &domain.Category{
			Name:        name,
			Slug:        slug,
			Description: name + " recipes",
			IsActive:    true,
			CreatedBy:   createdBy,
		})
		if err != nil {
			return PhaseResult{Err: fmt.Errorf("create category %s: %w", name, err)}
		}
		result.Inserted++
	}
	return result
}

// runRecipes assigns demo recipes round-robin to the non-admin demo users
// that exist.
func (p *Pipeline) runRecipes(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(demoRecipes)}
	}

	var owners []uuid.UUID
	for _, du := range demoUsers {
		if du.Role == domain.UserRoleAdmin {
			continue
		}
		u, err := p.lookupUser(ctx, du.Email)
		if err != nil {
			return PhaseResult{Err: err}
		}
		if u != nil && u.DeletedAt == nil {
			owners = append(owners, u.ID)
		}
	}
	if len(owners) == 0 {
		return PhaseResult{Skipped: len(demoRecipes), Err: errors.New("no demo users found, run the users phase first")}
	}

	var result PhaseResult
	for i, dr := range demoRecipes {
		owner := owners[i%len(owners)]

		exists, err := p.repos.Recipes.TitleExists(ctx, owner, dr.Title, uuid.Nil)
		if err != nil {
			return PhaseResult{Err: fmt.Errorf("check recipe %s: %w", dr.Title, err)}
		}
		if exists {
			result.Skipped++
			continue
		}

		_, err = p.repos.Recipes.Create(ctx, &domain.Recipe{
			UserID:       owner,
			Title:        dr.Title,
			Description:  dr.Description,
			Category:     dr.Category,
			Rating:       dr.Rating,
			Ingredients:  dr.Ingredients,
			Instructions: dr.Instructions,
			Tags:         dr.Tags,
			Dietary:      []string{},
			Difficulty:   dr.Difficulty,
		})
		if err != nil {
			return PhaseResult{Err: fmt.Errorf("create recipe %s: %w", dr.Title, err)}
		}
		result.Inserted++
	}
	return result
}

// lookupUser returns nil without error when no user has email.
func (p *Pipeline) lookupUser(ctx context.Context, email string) (*domain.User, error) {
	u, err := p.repos.Users.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("lookup user %s: %w", email, err)
	}
	return u, nil
}
