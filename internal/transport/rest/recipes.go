package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
	"github.com/heartmarshall/recipebox-backend/internal/service/recipe"
)

type recipeService interface {
	Create(ctx context.Context, in recipe.CreateInput) (*domain.Recipe, error)
	Update(ctx context.Context, id uuid.UUID, in recipe.UpdateInput) (*domain.Recipe, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	Restore(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	HardDelete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (*domain.Recipe, error)
	List(ctx context.Context, in recipe.ListInput) (*recipe.Page, error)
	ListMine(ctx context.Context, in recipe.ListInput) (*recipe.Page, error)
	ListTrash(ctx context.Context, in recipe.ListInput) (*recipe.Page, error)
}

// RecipeHandler serves the public and owner recipe endpoints.
type RecipeHandler struct {
	svc recipeService
	log *slog.Logger
}

// NewRecipeHandler creates a RecipeHandler.
func NewRecipeHandler(svc recipeService, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{svc: svc, log: logger.With("handler", "recipe")}
}

// recipeRequest is the body of create and update. Absent fields are nil:
// create falls back to defaults, update keeps the stored value.
type recipeRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Category     *string   `json:"category"`
	Ingredients  *[]string `json:"ingredients"`
	Instructions *[]string `json:"instructions"`
	Tags         *[]string `json:"tags"`
	Dietary      *[]string `json:"dietary"`
	Difficulty   *string   `json:"difficulty"`
	Rating       *float64  `json:"rating"`
	CookingTime  *int      `json:"cookingTime"`
	PrepTime     *int      `json:"prepTime"`
	Servings     *int      `json:"servings"`
	Notes        *string   `json:"notes"`
	ImageURL     *string   `json:"imageUrl"`
}

func (req recipeRequest) createInput() recipe.CreateInput {
	return recipe.CreateInput{
		Title:        deref(req.Title),
		Description:  deref(req.Description),
		Category:     deref(req.Category),
		Ingredients:  deref(req.Ingredients),
		Instructions: deref(req.Instructions),
		Tags:         deref(req.Tags),
		Dietary:      deref(req.Dietary),
		Difficulty:   domain.Difficulty(deref(req.Difficulty)),
		Rating:       deref(req.Rating),
		CookingTime:  deref(req.CookingTime),
		PrepTime:     deref(req.PrepTime),
		Servings:     deref(req.Servings),
		Notes:        deref(req.Notes),
		ImageURL:     deref(req.ImageURL),
	}
}

func (req recipeRequest) updateInput() recipe.UpdateInput {
	in := recipe.UpdateInput{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Ingredients:  req.Ingredients,
		Instructions: req.Instructions,
		Tags:         req.Tags,
		Dietary:      req.Dietary,
		Rating:       req.Rating,
		CookingTime:  req.CookingTime,
		PrepTime:     req.PrepTime,
		Servings:     req.Servings,
		Notes:        req.Notes,
		ImageURL:     req.ImageURL,
	}
	if req.Difficulty != nil {
		d := domain.Difficulty(*req.Difficulty)
		in.Difficulty = &d
	}
	return in
}

type recipePageResponse struct {
	Recipes    []recipeResponse `json:"recipes"`
	Pagination pagination       `json:"pagination"`
}

func toRecipePage(p *recipe.Page) recipePageResponse {
	return recipePageResponse{
		Recipes:    toRecipeResponses(p.Recipes),
		Pagination: newPagination(p.Total, p.Page, p.Limit),
	}
}

// recipeListInput reads the shared listing query parameters.
func recipeListInput(r *http.Request) recipe.ListInput {
	q := r.URL.Query()
	return recipe.ListInput{
		Search:     q.Get("search"),
		Category:   q.Get("category"),
		Tag:        q.Get("tag"),
		Difficulty: domain.Difficulty(q.Get("difficulty")),
		Status:     domain.RecordStatus(q.Get("status")),
		Page:       queryInt(r, "page"),
		Limit:      queryInt(r, "limit"),
	}
}

// List handles GET /api/recipes.
func (h *RecipeHandler) List(w http.ResponseWriter, r *http.Request) {
	in := recipeListInput(r)
	if v := r.URL.Query().Get("owner"); v != "" {
		owner, err := uuid.Parse(v)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("owner", "must be a valid UUID"))
			return
		}
		in.OwnerID = &owner
	}

	page, err := h.svc.List(r.Context(), in)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecipePage(page))
}

// Mine handles GET /api/recipes/mine.
func (h *RecipeHandler) Mine(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListMine(r.Context(), recipeListInput(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecipePage(page))
}

// Trash handles GET /api/recipes/trash.
func (h *RecipeHandler) Trash(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.ListTrash(r.Context(), recipeListInput(r))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecipePage(page))
}

// Get handles GET /api/recipes/{id}.
func (h *RecipeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	rec, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecipeResponse(rec))
}

// Create handles POST /api/recipes.
func (h *RecipeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req recipeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rec, err := h.svc.Create(r.Context(), req.createInput())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRecipeResponse(rec))
}

// Update handles PUT /api/recipes/{id}.
func (h *RecipeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req recipeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	rec, err := h.svc.Update(r.Context(), id, req.updateInput())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecipeResponse(rec))
}

// Delete handles DELETE /api/recipes/{id}. The recipe moves to the trash.
func (h *RecipeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	rec, err := h.svc.SoftDelete(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecipeResponse(rec))
}

// Restore handles POST /api/recipes/{id}/restore.
func (h *RecipeHandler) Restore(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	rec, err := h.svc.Restore(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toRecipeResponse(rec))
}

// Purge handles DELETE /api/recipes/{id}/permanent.
func (h *RecipeHandler) Purge(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.svc.HardDelete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
