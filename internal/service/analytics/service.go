// Package analytics serves the admin dashboard aggregates.
package analytics

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
	"github.com/heartmarshall/recipebox-backend/internal/service/access"
)

const (
	defaultTrendDays = 30
	maxTrendDays     = 365

	defaultTopN = 20
	maxTopN     = 100
)

var tracer = otel.Tracer("github.com/heartmarshall/recipebox-backend/internal/service/analytics")

type analyticsRepo interface {
	UserCounts(ctx context.Context) (domain.UserCounts, error)
	RecipeCounts(ctx context.Context) (domain.RecipeCounts, error)
	CategoryCount(ctx context.Context) (int, error)
	WeeklyCounts(ctx context.Context, now time.Time) (domain.WeeklyCounts, error)
	UserTrend(ctx context.Context, days int) ([]domain.DailyCount, error)
	RecipeTrend(ctx context.Context, days int) ([]domain.DailyCount, error)
	CategoryUsage(ctx context.Context, limit int) ([]domain.LabelCount, error)
	TagInsights(ctx context.Context, limit int) ([]domain.LabelCount, error)
	RoleBreakdown(ctx context.Context) ([]domain.LabelCount, error)
	RatingDistribution(ctx context.Context) ([]domain.RatingBucket, error)
}

// Service implements admin analytics. Every operation requires an admin.
type Service struct {
	log  *slog.Logger
	repo analyticsRepo
	now  func() time.Time
}

// NewService creates a new analytics service.
func NewService(logger *slog.Logger, repo analyticsRepo) *Service {
	return &Service{
		log:  logger.With("service", "analytics"),
		repo: repo,
		now:  time.Now,
	}
}

// Trend is a zero-filled daily series covering Days days.
type Trend struct {
	Days   int
	Points []domain.DailyCount
}

// Overview collects the dashboard summary. The aggregates are independent
// and run concurrently.
func (s *Service) Overview(ctx context.Context) (*domain.Overview, error) {
	if _, err := access.RequireAdmin(ctx); err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "analytics.Overview")
	defer span.End()

	var (
		out    domain.Overview
		weekly domain.WeeklyCounts
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		out.Users, err = s.repo.UserCounts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		out.Recipes, err = s.repo.RecipeCounts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		out.Categories, err = s.repo.CategoryCount(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		weekly, err = s.repo.WeeklyCounts(gctx, s.now())
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("analytics.Overview: %w", err)
	}

	out.Growth = domain.Growth{
		Users:   domain.CalculateGrowth(weekly.UsersThisWeek, weekly.UsersLastWeek),
		Recipes: domain.CalculateGrowth(weekly.RecipesThisWeek, weekly.RecipesLastWeek),
	}
	return &out, nil
}

// UserTrends returns registrations per day. days defaults to 30 and is
// capped at 365.
func (s *Service) UserTrends(ctx context.Context, days int) (*Trend, error) {
	if _, err := access.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	days = clamp(days, defaultTrendDays, maxTrendDays)

	points, err := s.repo.UserTrend(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("analytics.UserTrends: %w", err)
	}
	return &Trend{Days: days, Points: points}, nil
}

// RecipeTrends returns visible recipes created per day, with the same range
// rules as UserTrends.
func (s *Service) RecipeTrends(ctx context.Context, days int) (*Trend, error) {
	if _, err := access.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	days = clamp(days, defaultTrendDays, maxTrendDays)

	points, err := s.repo.RecipeTrend(ctx, days)
	if err != nil {
		return nil, fmt.Errorf("analytics.RecipeTrends: %w", err)
	}
	return &Trend{Days: days, Points: points}, nil
}

// CategoryUsage returns the most used recipe categories.
func (s *Service) CategoryUsage(ctx context.Context, limit int) ([]domain.LabelCount, error) {
	if _, err := access.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	usage, err := s.repo.CategoryUsage(ctx, clamp(limit, defaultTopN, maxTopN))
	if err != nil {
		return nil, fmt.Errorf("analytics.CategoryUsage: %w", err)
	}
	return usage, nil
}

// TagInsights returns the most used recipe tags.
func (s *Service) TagInsights(ctx context.Context, limit int) ([]domain.LabelCount, error) {
	if _, err := access.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	tags, err := s.repo.TagInsights(ctx, clamp(limit, defaultTopN, maxTopN))
	if err != nil {
		return nil, fmt.Errorf("analytics.TagInsights: %w", err)
	}
	return tags, nil
}

func (s *Service) RatingDistribution(ctx context.Context) ([]domain.RatingBucket, error) {
	if _, err := access.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	buckets, err := s.repo.RatingDistribution(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics.RatingDistribution: %w", err)
	}
	return buckets, nil
}

func (s *Service) RoleBreakdown(ctx context.Context) ([]domain.LabelCount, error) {
	if _, err := access.RequireAdmin(ctx); err != nil {
		return nil, err
	}
	roles, err := s.repo.RoleBreakdown(ctx)
	if err != nil {
		return nil, fmt.Errorf("analytics.RoleBreakdown: %w", err)
	}
	return roles, nil
}

// clamp replaces non-positive values with def and caps at max.
func clamp(v, def, max int) int {
	if v <= 0 {
		return def
	}
	if v > max {
		return max
	}
	return v
}
