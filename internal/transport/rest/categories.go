package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
	"github.com/heartmarshall/recipebox-backend/internal/service/category"
)

type categoryService interface {
	ListActive(ctx context.Context) ([]domain.Category, error)
	List(ctx context.Context, in category.ListInput) (*category.Page, error)
	Create(ctx context.Context, in category.CreateInput) (*domain.Category, error)
	Update(ctx context.Context, id uuid.UUID, in category.UpdateInput) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CategoryHandler serves the public category list and admin category CRUD.
type CategoryHandler struct {
	svc categoryService
	log *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc categoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{svc: svc, log: logger.With("handler", "category")}
}

type createCategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
}

type updateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

type categoryPageResponse struct {
	Categories []categoryResponse `json:"categories"`
	Pagination pagination         `json:"pagination"`
}

// ListActive handles GET /api/categories.
func (h *CategoryHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	cats, err := h.svc.ListActive(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponses(cats))
}

// List handles GET /api/admin/categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	active, err := queryBool(r, "active")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.svc.List(r.Context(), category.ListInput{
		Search: r.URL.Query().Get("search"),
		Active: active,
		Page:   queryInt(r, "page"),
		Limit:  queryInt(r, "limit"),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, categoryPageResponse{
		Categories: toCategoryResponses(page.Categories),
		Pagination: newPagination(page.Total, page.Page, page.Limit),
	})
}

// Create handles POST /api/admin/categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.Create(r.Context(), category.CreateInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCategoryResponse(c))
}

// Update handles PUT /api/admin/categories/{id}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateCategoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	c, err := h.svc.Update(r.Context(), id, category.UpdateInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryResponse(c))
}

// Delete handles DELETE /api/admin/categories/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
