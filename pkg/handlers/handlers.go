// Package handlers provides JSON response helpers shared by HTTP handlers.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/proxy-console/pkg/middleware"
)

// ErrorBody is the JSON shape of error responses.
type ErrorBody struct {
	Error         string `json:"error"`
	CorrelationID string `json:"correlation_id,omitempty"`
}

// RespondJSON writes data as JSON with the given status.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondError logs err and writes it as an ErrorBody. Server errors log
// at error level, client errors at debug.
func RespondError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, status int, err error) {
	cid := middleware.CorrelationIDFrom(r.Context())
	if status >= http.StatusInternalServerError {
		logger.Error("handler error", "error", err, "status", status, "correlation_id", cid)
	} else {
		logger.Debug("handler error", "error", err, "status", status, "correlation_id", cid)
	}
	RespondJSON(w, status, ErrorBody{Error: err.Error(), CorrelationID: cid})
}
