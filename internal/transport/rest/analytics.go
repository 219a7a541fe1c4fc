package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
	"github.com/heartmarshall/recipebox-backend/internal/service/analytics"
)

type analyticsService interface {
	Overview(ctx context.Context) (*domain.Overview, error)
	UserTrends(ctx context.Context, days int) (*analytics.Trend, error)
	RecipeTrends(ctx context.Context, days int) (*analytics.Trend, error)
	CategoryUsage(ctx context.Context, limit int) ([]domain.LabelCount, error)
	TagInsights(ctx context.Context, limit int) ([]domain.LabelCount, error)
	RatingDistribution(ctx context.Context) ([]domain.RatingBucket, error)
	RoleBreakdown(ctx context.Context) ([]domain.LabelCount, error)
}

// AnalyticsHandler serves the admin dashboard aggregates.
type AnalyticsHandler struct {
	svc analyticsService
	log *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(svc analyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc, log: logger.With("handler", "analytics")}
}

type overviewResponse struct {
	Users struct {
		Total    int `json:"total"`
		Active   int `json:"active"`
		Inactive int `json:"inactive"`
		Deleted  int `json:"deleted"`
	} `json:"users"`
	Recipes struct {
		Total     int     `json:"total"`
		Deleted   int     `json:"deleted"`
		AvgRating float64 `json:"avgRating"`
	} `json:"recipes"`
	Categories int `json:"categories"`
	Growth     struct {
		Users   float64 `json:"users"`
		Recipes float64 `json:"recipes"`
	} `json:"growth"`
}

type trendPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type trendResponse struct {
	Days   int          `json:"days"`
	Points []trendPoint `json:"points"`
}

type labelCountResponse struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type ratingBucketResponse struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

// Overview handles GET /api/admin/analytics/overview.
func (h *AnalyticsHandler) Overview(w http.ResponseWriter, r *http.Request) {
	o, err := h.svc.Overview(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var resp overviewResponse
	resp.Users.Total = o.Users.Total
	resp.Users.Active = o.Users.Active
	resp.Users.Inactive = o.Users.Inactive
	resp.Users.Deleted = o.Users.Deleted
	resp.Recipes.Total = o.Recipes.Total
	resp.Recipes.Deleted = o.Recipes.Deleted
	resp.Recipes.AvgRating = o.Recipes.AvgRating
	resp.Categories = o.Categories
	resp.Growth.Users = o.Growth.Users
	resp.Growth.Recipes = o.Growth.Recipes

	writeJSON(w, http.StatusOK, resp)
}

// UserTrends handles GET /api/admin/analytics/user-trends?days=N.
func (h *AnalyticsHandler) UserTrends(w http.ResponseWriter, r *http.Request) {
	h.trend(w, r, h.svc.UserTrends)
}

// RecipeTrends handles GET /api/admin/analytics/recipe-trends?days=N.
func (h *AnalyticsHandler) RecipeTrends(w http.ResponseWriter, r *http.Request) {
	h.trend(w, r, h.svc.RecipeTrends)
}

// CategoryUsage handles GET /api/admin/analytics/category-usage?limit=N.
func (h *AnalyticsHandler) CategoryUsage(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.CategoryUsage(r.Context(), queryInt(r, "limit"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLabelCounts(rows))
}

// TagInsights handles GET /api/admin/analytics/tag-insights?limit=N.
func (h *AnalyticsHandler) TagInsights(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.TagInsights(r.Context(), queryInt(r, "limit"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLabelCounts(rows))
}

// RoleBreakdown handles GET /api/admin/analytics/role-breakdown.
func (h *AnalyticsHandler) RoleBreakdown(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.RoleBreakdown(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toLabelCounts(rows))
}

// RatingDistribution handles GET /api/admin/analytics/rating-distribution.
func (h *AnalyticsHandler) RatingDistribution(w http.ResponseWriter, r *http.Request) {
	buckets, err := h.svc.RatingDistribution(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]ratingBucketResponse, len(buckets))
	for i, b := range buckets {
		resp[i] = ratingBucketResponse{Rating: b.Rating, Count: b.Count}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AnalyticsHandler) trend(w http.ResponseWriter, r *http.Request, fetch func(context.Context, int) (*analytics.Trend, error)) {
	t, err := fetch(r.Context(), queryInt(r, "days"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := trendResponse{Days: t.Days, Points: make([]trendPoint, len(t.Points))}
	for i, p := range t.Points {
		resp.Points[i] = trendPoint{Date: p.Day.Format(time.DateOnly), Count: p.Count}
	}
	writeJSON(w, http.StatusOK, resp)
}

func toLabelCounts(rows []domain.LabelCount) []labelCountResponse {
	out := make([]labelCountResponse, len(rows))
	for i, row := range rows {
		out[i] = labelCountResponse{Label: row.Label, Count: row.Count}
	}
	return out
}
