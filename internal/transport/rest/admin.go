package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
	"github.com/heartmarshall/recipebox-backend/internal/service/recipe"
	"github.com/heartmarshall/recipebox-backend/internal/service/user"
	"github.com/heartmarshall/recipebox-backend/internal/transport/dataloader"
)

type adminRecipeService interface {
	AdminList(ctx context.Context, in recipe.ListInput) (*recipe.Page, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	Restore(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	HardDelete(ctx context.Context, id uuid.UUID) error
}

type adminUserService interface {
	List(ctx context.Context, input user.ListInput) (*user.Page, error)
	SetStatus(ctx context.Context, id uuid.UUID, active bool) (*domain.User, error)
	SetRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Restore(ctx context.Context, id uuid.UUID) (*domain.User, error)
	HardDelete(ctx context.Context, id uuid.UUID) error
}

type bulkCoordinator interface {
	Apply(ctx context.Context, kind domain.TargetKind, op domain.Operation, ids []uuid.UUID) (*domain.BulkResult, error)
}

// AdminHandler serves admin recipe and user management endpoints.
type AdminHandler struct {
	recipes adminRecipeService
	users   adminUserService
	bulk    bulkCoordinator
	log     *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(recipes adminRecipeService, users adminUserService, bulk bulkCoordinator, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		recipes: recipes,
		users:   users,
		bulk:    bulk,
		log:     logger.With("handler", "admin"),
	}
}

type bulkRecipeDeleteRequest struct {
	bulkRequest
	Mode string `json:"mode"`
}

type bulkUserStatusRequest struct {
	bulkRequest
	Active *bool `json:"active"`
}

type bulkUserDeleteRequest struct {
	bulkRequest
	Hard bool `json:"hard"`
}

type statusRequest struct {
	Active *bool `json:"active"`
}

type roleRequest struct {
	Role string `json:"role"`
}

type userPageResponse struct {
	Users      []userResponse `json:"users"`
	Pagination pagination     `json:"pagination"`
}

// deleteMode maps "soft" (or empty) and "hard" to lifecycle operations.
func deleteMode(mode string) (domain.Operation, error) {
	switch mode {
	case "", "soft":
		return domain.OpSoftDelete, nil
	case "hard":
		return domain.OpHardDelete, nil
	}
	return "", domain.NewValidationError("mode", "must be soft or hard")
}

// ---------------------------------------------------------------------------
// Recipes
// ---------------------------------------------------------------------------

// ListRecipes handles GET /api/admin/recipes. Owners are attached through
// the per-request loader.
func (h *AdminHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	in := recipeListInput(r)
	if v := r.URL.Query().Get("owner"); v != "" {
		owner, err := uuid.Parse(v)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("owner", "must be a valid UUID"))
			return
		}
		in.OwnerID = &owner
	}

	page, err := h.recipes.AdminList(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := dataloader.FromContext(r.Context()).AttachOwners(r.Context(), page.Recipes); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecipePage(page))
}

// DeleteRecipe handles DELETE /api/admin/recipes/{id}?mode=soft|hard.
func (h *AdminHandler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	op, err := deleteMode(r.URL.Query().Get("mode"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if op == domain.OpHardDelete {
		if err := h.recipes.HardDelete(r.Context(), id); err != nil {
			handleError(h.log, w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	rec, err := h.recipes.SoftDelete(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecipeResponse(rec))
}

// RestoreRecipe handles POST /api/admin/recipes/{id}/restore.
func (h *AdminHandler) RestoreRecipe(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	rec, err := h.recipes.Restore(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecipeResponse(rec))
}

// BulkDeleteRecipes handles POST /api/admin/recipes/bulk-delete.
func (h *AdminHandler) BulkDeleteRecipes(w http.ResponseWriter, r *http.Request) {
	var req bulkRecipeDeleteRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	op, err := deleteMode(req.Mode)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	h.applyBulk(w, r, domain.TargetRecipe, op, req.bulkRequest)
}

// BulkRestoreRecipes handles POST /api/admin/recipes/bulk-restore.
func (h *AdminHandler) BulkRestoreRecipes(w http.ResponseWriter, r *http.Request) {
	var req bulkRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h.applyBulk(w, r, domain.TargetRecipe, domain.OpRestore, req)
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, err := h.users.List(r.Context(), user.ListInput{
		Search: q.Get("search"),
		Role:   q.Get("role"),
		Status: domain.UserStatus(q.Get("status")),
		Page:   queryInt(r, "page"),
		Limit:  queryInt(r, "limit"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := userPageResponse{
		Users:      make([]userResponse, len(page.Users)),
		Pagination: newPagination(page.Total, page.Page, page.Limit),
	}
	for i := range page.Users {
		resp.Users[i] = toUserResponse(&page.Users[i])
	}
	writeJSON(w, http.StatusOK, resp)
}

// SetUserStatus handles PUT /api/admin/users/{id}/status.
func (h *AdminHandler) SetUserStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req statusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Active == nil {
		handleError(h.log, w, r, domain.NewValidationError("active", "required"))
		return
	}

	u, err := h.users.SetStatus(r.Context(), id, *req.Active)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// SetUserRole handles PUT /api/admin/users/{id}/role.
func (h *AdminHandler) SetUserRole(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req roleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	u, err := h.users.SetRole(r.Context(), id, domain.UserRole(req.Role))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// DeleteUser handles DELETE /api/admin/users/{id}?hard=true|false.
func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	hard, err := queryBool(r, "hard")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if hard != nil && *hard {
		if err := h.users.HardDelete(r.Context(), id); err != nil {
			handleError(h.log, w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	u, err := h.users.SoftDelete(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// RestoreUser handles POST /api/admin/users/{id}/restore.
func (h *AdminHandler) RestoreUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	u, err := h.users.Restore(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toUserResponse(u))
}

// BulkUserStatus handles POST /api/admin/users/bulk-status.
func (h *AdminHandler) BulkUserStatus(w http.ResponseWriter, r *http.Request) {
	var req bulkUserStatusRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Active == nil {
		handleError(h.log, w, r, domain.NewValidationError("active", "required"))
		return
	}

	op := domain.OpDeactivate
	if *req.Active {
		op = domain.OpActivate
	}
	h.applyBulk(w, r, domain.TargetUser, op, req.bulkRequest)
}

// BulkDeleteUsers handles POST /api/admin/users/bulk-delete.
func (h *AdminHandler) BulkDeleteUsers(w http.ResponseWriter, r *http.Request) {
	var req bulkUserDeleteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	op := domain.OpSoftDelete
	if req.Hard {
		op = domain.OpHardDelete
	}
	h.applyBulk(w, r, domain.TargetUser, op, req.bulkRequest)
}

func (h *AdminHandler) applyBulk(w http.ResponseWriter, r *http.Request, kind domain.TargetKind, op domain.Operation, req bulkRequest) {
	ids, malformed := req.uuids()

	res, err := h.bulk.Apply(r.Context(), kind, op, ids)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBulkResponse(res, malformed))
}
