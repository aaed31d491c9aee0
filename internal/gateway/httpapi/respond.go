package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/userhub/internal/common"
)

// ErrorResponse is the uniform error envelope returned by every failing
// endpoint.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Error      string `json:"error"`
	Message    any    `json:"message"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
	RequestID  string `json:"requestId,omitempty"`
}

var errorCodes = map[int]string{
	http.StatusBadRequest:          "BAD_REQUEST",
	http.StatusUnauthorized:        "UNAUTHORIZED",
	http.StatusForbidden:           "FORBIDDEN",
	http.StatusNotFound:            "NOT_FOUND",
	http.StatusConflict:            "CONFLICT",
	http.StatusInternalServerError: "INTERNAL_SERVER_ERROR",
	http.StatusServiceUnavailable:  "SERVICE_UNAVAILABLE",
}

func errorCode(status int) string {
	if code, ok := errorCodes[status]; ok {
		return code
	}
	return "UNKNOWN_ERROR"
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError renders the envelope. Message may be a string or a list of
// validation problems.
func writeError(w http.ResponseWriter, r *http.Request, status int, message any) {
	writeJSON(w, status, ErrorResponse{
		StatusCode: status,
		Error:      errorCode(status),
		Message:    message,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       r.URL.Path,
		RequestID:  requestIDFrom(r.Context()),
	})
}

// writeServiceError maps a sentinel error coming back from the auth service
// to an HTTP status. Not-found and not-owned arrive collapsed already.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorEmailExists):
		writeError(w, r, http.StatusConflict, "Email already registered")
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, r, http.StatusNotFound, "User not found")
	case errors.Is(err, common.ErrorUnauthorized):
		writeError(w, r, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, common.ErrorValidation):
		writeError(w, r, http.StatusBadRequest, "Validation failed")
	default:
		writeError(w, r, http.StatusInternalServerError, "Internal server error")
	}
}
