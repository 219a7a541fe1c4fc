package rest

import (
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
)

type userResponse struct {
	ID                 string     `json:"id"`
	FirstName          string     `json:"firstName"`
	LastName           string     `json:"lastName"`
	Email              string     `json:"email"`
	Role               string     `json:"role"`
	Active             bool       `json:"active"`
	DarkMode           bool       `json:"darkMode"`
	EmailNotifications bool       `json:"emailNotifications"`
	DeletedAt          *time.Time `json:"deletedAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:                 u.ID.String(),
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		Email:              u.Email,
		Role:               u.Role.String(),
		Active:             u.Active,
		DarkMode:           u.DarkMode,
		EmailNotifications: u.EmailNotifications,
		DeletedAt:          u.DeletedAt,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

type ownerResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type recipeResponse struct {
	ID           string         `json:"id"`
	UserID       string         `json:"userId"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	Category     string         `json:"category"`
	Ingredients  []string       `json:"ingredients"`
	Instructions []string       `json:"instructions"`
	Tags         []string       `json:"tags"`
	Dietary      []string       `json:"dietary"`
	Difficulty   string         `json:"difficulty"`
	Rating       float64        `json:"rating"`
	CookingTime  int            `json:"cookingTime"`
	PrepTime     int            `json:"prepTime"`
	Servings     int            `json:"servings"`
	Notes        string         `json:"notes"`
	ImageURL     string         `json:"imageUrl"`
	DeletedAt    *time.Time     `json:"deletedAt,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
	Owner        *ownerResponse `json:"owner,omitempty"`
}

func toRecipeResponse(rec *domain.Recipe) recipeResponse {
	resp := recipeResponse{
		ID:           rec.ID.String(),
		UserID:       rec.UserID.String(),
		Title:        rec.Title,
		Description:  rec.Description,
		Category:     rec.Category,
		Ingredients:  nonNil(rec.Ingredients),
		Instructions: nonNil(rec.Instructions),
		Tags:         nonNil(rec.Tags),
		Dietary:      nonNil(rec.Dietary),
		Difficulty:   rec.Difficulty.String(),
		Rating:       rec.Rating,
		CookingTime:  rec.CookingTime,
		PrepTime:     rec.PrepTime,
		Servings:     rec.Servings,
		Notes:        rec.Notes,
		ImageURL:     rec.ImageURL,
		DeletedAt:    rec.DeletedAt,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
	if rec.Owner != nil {
		resp.Owner = &ownerResponse{
			ID:    rec.Owner.ID.String(),
			Name:  rec.Owner.FullName(),
			Email: rec.Owner.Email,
		}
	}
	return resp
}

func toRecipeResponses(recs []domain.Recipe) []recipeResponse {
	out := make([]recipeResponse, len(recs))
	for i := range recs {
		out[i] = toRecipeResponse(&recs[i])
	}
	return out
}

type categoryResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	IsActive    bool      `json:"isActive"`
	RecipeCount int       `json:"recipeCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toCategoryResponse(c *domain.Category) categoryResponse {
	return categoryResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		IsActive:    c.IsActive,
		RecipeCount: c.RecipeCount,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func toCategoryResponses(cats []domain.Category) []categoryResponse {
	out := make([]categoryResponse, len(cats))
	for i := range cats {
		out[i] = toCategoryResponse(&cats[i])
	}
	return out
}

type activityResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	Action      string    `json:"action"`
	RecipeID    string    `json:"recipeId"`
	RecipeTitle string    `json:"recipeTitle"`
	CreatedAt   time.Time `json:"createdAt"`
}

type pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

func newPagination(total, page, limit int) pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return pagination{Total: total, Page: page, Limit: limit, Pages: pages}
}

type bulkSkipResponse struct {
	ID     string `json:"id"`
	Reason string `json:"reason"`
}

type bulkResponse struct {
	Applied []string           `json:"applied"`
	Skipped []bulkSkipResponse `json:"skipped"`
}

// toBulkResponse renders res. Skips for uuid.Nil stand for the malformed
// request ids, which are echoed back in request order.
func toBulkResponse(res *domain.BulkResult, malformed []string) bulkResponse {
	resp := bulkResponse{
		Applied: make([]string, len(res.Applied)),
		Skipped: make([]bulkSkipResponse, len(res.Skipped)),
	}
	for i, id := range res.Applied {
		resp.Applied[i] = id.String()
	}
	for i, s := range res.Skipped {
		id := s.ID.String()
		if s.ID == uuid.Nil && len(malformed) > 0 {
			id, malformed = malformed[0], malformed[1:]
		}
		resp.Skipped[i] = bulkSkipResponse{ID: id, Reason: s.Reason.String()}
	}
	return resp
}

type bulkRequest struct {
	IDs []string `json:"ids"`
}

// uuids parses the requested ids. An entry that is not a UUID, or is the nil
// UUID, cannot name anything: it becomes uuid.Nil, which the coordinator
// skips as not_found, and its raw value is returned in malformed.
func (b bulkRequest) uuids() (ids []uuid.UUID, malformed []string) {
	ids = make([]uuid.UUID, 0, len(b.IDs))
	for _, raw := range b.IDs {
		id, err := uuid.Parse(raw)
		if err != nil || id == uuid.Nil {
			malformed = append(malformed, raw)
			id = uuid.Nil
		}
		ids = append(ids, id)
	}
	return ids, malformed
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
