package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/recipebox-backend/internal/domain"
)

type fieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error  string               `json:"error"`
	Reason string               `json:"reason,omitempty"`
	Fields []fieldErrorResponse `json:"fields,omitempty"`
}

var reasonStatus = map[domain.Reason]int{
	domain.ReasonValidation:      http.StatusBadRequest,
	domain.ReasonUnauthorized:    http.StatusUnauthorized,
	domain.ReasonNotAllowed:      http.StatusForbidden,
	domain.ReasonSelfProtection:  http.StatusForbidden,
	domain.ReasonAdminProtection: http.StatusForbidden,
	domain.ReasonNotFound:        http.StatusNotFound,
	domain.ReasonDuplicate:       http.StatusConflict,
	domain.ReasonAlreadyDeleted:  http.StatusConflict,
	domain.ReasonNotInTrash:      http.StatusConflict,
	domain.ReasonHasData:         http.StatusConflict,
}

var reasonMessage = map[domain.Reason]string{
	domain.ReasonUnauthorized:    "unauthorized",
	domain.ReasonNotAllowed:      "not allowed",
	domain.ReasonSelfProtection:  "cannot perform this action on your own account",
	domain.ReasonAdminProtection: "cannot perform this action on another admin",
	domain.ReasonNotFound:        "not found",
	domain.ReasonDuplicate:       "already exists",
	domain.ReasonAlreadyDeleted:  "already deleted",
	domain.ReasonNotInTrash:      "not in trash",
	domain.ReasonHasData:         "has dependent data",
}

// handleError writes the response for a service error. Unclassified errors
// are logged and reported as a generic 500.
func handleError(log *slog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	reason := domain.ReasonOf(err)

	status, ok := reasonStatus[reason]
	if !ok {
		log.ErrorContext(r.Context(), "internal error",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, domain.ReasonInfrastructureFault, "internal server error")
		return
	}

	if reason == domain.ReasonValidation {
		resp := errorResponse{Error: "validation failed", Reason: string(reason)}
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			for _, fe := range ve.Errors {
				resp.Fields = append(resp.Fields, fieldErrorResponse{Field: fe.Field, Message: fe.Message})
			}
		}
		writeJSON(w, status, resp)
		return
	}

	writeError(w, status, reason, reasonMessage[reason])
}

func writeError(w http.ResponseWriter, status int, reason domain.Reason, message string) {
	writeJSON(w, status, errorResponse{Error: message, Reason: string(reason)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

// decodeJSON reads the request body into dst. On failure it writes the
// response itself and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, domain.ReasonValidation, "request body too large")
		return false
	}
	writeError(w, http.StatusBadRequest, domain.ReasonValidation, "invalid request body")
	return false
}

// pathID parses the {id} path segment. On failure it writes a 400 and
// returns false.
func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "validation failed",
			Reason: string(domain.ReasonValidation),
			Fields: []fieldErrorResponse{{Field: "id", Message: "must be a valid UUID"}},
		})
		return uuid.Nil, false
	}
	return id, true
}

// queryInt returns the integer query parameter name, or 0 when it is absent
// or malformed. Services apply their own defaults to zero.
func queryInt(r *http.Request, name string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil {
		return 0
	}
	return n
}

// queryBool returns nil when name is absent.
func queryBool(r *http.Request, name string) (*bool, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, domain.NewValidationError(name, "must be true or false")
	}
	return &b, nil
}
