package middleware

import (
	"encoding/json"
	"net/http"
)

// errorBody mirrors the REST error envelope so that requests rejected before
// reaching a handler look the same to clients.
type errorBody struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

func writeError(w http.ResponseWriter, status int, reason, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: message, Reason: reason})
}
