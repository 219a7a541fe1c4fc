package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
)

type activityFeed interface {
	Recent(ctx context.Context, limit int) ([]domain.Activity, error)
}

// ActivityHandler serves the polled activity feed.
type ActivityHandler struct {
	feed activityFeed
	log  *slog.Logger
}

// NewActivityHandler creates an ActivityHandler.
func NewActivityHandler(feed activityFeed, logger *slog.Logger) *ActivityHandler {
	return &ActivityHandler{feed: feed, log: logger.With("handler", "activity")}
}

// Recent handles GET /api/activities?limit=N.
func (h *ActivityHandler) Recent(w http.ResponseWriter, r *http.Request) {
	items, err := h.feed.Recent(r.Context(), queryInt(r, "limit"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]activityResponse, len(items))
	for i, a := range items {
		resp[i] = activityResponse{
			ID:          a.ID.String(),
			UserID:      a.UserID.String(),
			UserName:    a.UserName,
			Action:      a.Action.String(),
			RecipeID:    a.RecipeID.String(),
			RecipeTitle: a.RecipeTitle,
			CreatedAt:   a.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
