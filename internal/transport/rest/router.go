package rest

import (
	"net/http"

	"github.com/heartmarshall/recipebox-backend/internal/transport/middleware"
)

const (
	authBodyLimit    = 10 << 10
	defaultBodyLimit = 1 << 20
)

// Router holds every handler and the route-scoped middleware. Global
// middleware (request id, logging, recovery, CORS, token resolution) wraps
// the result of Handler.
type Router struct {
	Health     *HealthHandler
	Metrics    http.Handler
	Auth       *AuthHandler
	Recipes    *RecipeHandler
	Users      *UserHandler
	Admin      *AdminHandler
	Categories *CategoryHandler
	Analytics  *AnalyticsHandler
	Activity   *ActivityHandler

	// AuthLimit throttles the register and login routes. Nil disables it.
	AuthLimit middleware.Middleware
	// Loaders installs the per-request data loaders used by admin listings.
	Loaders middleware.Middleware
}

// Handler builds the route table.
func (rt *Router) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", rt.Health.Live)
	mux.HandleFunc("GET /ready", rt.Health.Ready)
	mux.HandleFunc("GET /health", rt.Health.Health)
	if rt.Metrics != nil {
		mux.Handle("GET /metrics", rt.Metrics)
	}

	authChain := middleware.Chain(rt.AuthLimit, middleware.MaxBodyBytes(authBodyLimit))
	mux.Handle("POST /api/auth/register", authChain(http.HandlerFunc(rt.Auth.Register)))
	mux.Handle("POST /api/auth/login", authChain(http.HandlerFunc(rt.Auth.Login)))

	public := middleware.MaxBodyBytes(defaultBodyLimit)
	handle := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, public(h))
	}
	private := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, public(middleware.RequireAuth(h)))
	}
	admin := func(pattern string, h http.HandlerFunc) {
		mux.Handle(pattern, public(middleware.RequireAdmin(h)))
	}

	// Public reads.
	handle("GET /api/recipes", rt.Recipes.List)
	handle("GET /api/recipes/{id}", rt.Recipes.Get)
	handle("GET /api/categories", rt.Categories.ListActive)
	handle("GET /api/activities", rt.Activity.Recent)
	handle("GET /api/users/{id}/public", rt.Users.Public)

	// Authenticated.
	private("GET /api/users/me", rt.Users.Me)
	private("PUT /api/users/me", rt.Users.UpdateMe)
	private("PUT /api/users/me/password", rt.Users.ChangePassword)
	private("PUT /api/users/me/preferences", rt.Users.UpdatePreferences)
	private("GET /api/users/me/meals", rt.Users.MealPlan)
	private("PUT /api/users/me/meals", rt.Users.SaveMealPlan)
	private("POST /api/recipes", rt.Recipes.Create)
	private("GET /api/recipes/mine", rt.Recipes.Mine)
	private("GET /api/recipes/trash", rt.Recipes.Trash)
	private("PUT /api/recipes/{id}", rt.Recipes.Update)
	private("DELETE /api/recipes/{id}", rt.Recipes.Delete)
	private("POST /api/recipes/{id}/restore", rt.Recipes.Restore)
	private("DELETE /api/recipes/{id}/permanent", rt.Recipes.Purge)

	// Admin.
	listRecipes := http.Handler(http.HandlerFunc(rt.Admin.ListRecipes))
	if rt.Loaders != nil {
		listRecipes = rt.Loaders(listRecipes)
	}
	admin("GET /api/admin/recipes", listRecipes.ServeHTTP)
	admin("DELETE /api/admin/recipes/{id}", rt.Admin.DeleteRecipe)
	admin("POST /api/admin/recipes/{id}/restore", rt.Admin.RestoreRecipe)
	admin("POST /api/admin/recipes/bulk-delete", rt.Admin.BulkDeleteRecipes)
	admin("POST /api/admin/recipes/bulk-restore", rt.Admin.BulkRestoreRecipes)

	admin("GET /api/admin/users", rt.Admin.ListUsers)
	admin("PUT /api/admin/users/{id}/status", rt.Admin.SetUserStatus)
	admin("PUT /api/admin/users/{id}/role", rt.Admin.SetUserRole)
	admin("DELETE /api/admin/users/{id}", rt.Admin.DeleteUser)
	admin("POST /api/admin/users/{id}/restore", rt.Admin.RestoreUser)
	admin("POST /api/admin/users/bulk-status", rt.Admin.BulkUserStatus)
	admin("POST /api/admin/users/bulk-delete", rt.Admin.BulkDeleteUsers)

	admin("GET /api/admin/categories", rt.Categories.List)
	admin("POST /api/admin/categories", rt.Categories.Create)
	admin("PUT /api/admin/categories/{id}", rt.Categories.Update)
	admin("DELETE /api/admin/categories/{id}", rt.Categories.Delete)

	admin("GET /api/admin/analytics/overview", rt.Analytics.Overview)
	admin("GET /api/admin/analytics/user-trends", rt.Analytics.UserTrends)
	admin("GET /api/admin/analytics/recipe-trends", rt.Analytics.RecipeTrends)
	admin("GET /api/admin/analytics/category-usage", rt.Analytics.CategoryUsage)
	admin("GET /api/admin/analytics/rating-distribution", rt.Analytics.RatingDistribution)
	admin("GET /api/admin/analytics/tag-insights", rt.Analytics.TagInsights)
	admin("GET /api/admin/analytics/role-breakdown", rt.Analytics.RoleBreakdown)

	return mux
}
