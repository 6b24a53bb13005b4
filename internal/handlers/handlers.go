// Package handlers contains one HTTP handler per API operation. Each handler
// declares the narrow service interface it needs and maps service errors to
// HTTP statuses; unexpected errors become a logged 500 with a generic body.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/msokolov/bookshelf/internal/logger"
)

// ErrorResponse is the JSON body returned on any failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Human-readable error message
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Message: msg})
}

func writeInternalError(w http.ResponseWriter, err error) {
	logger.Log.Errorw("internal server error", "err", err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
