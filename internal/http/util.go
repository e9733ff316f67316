package httpx

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/casernelab/firequiz/internal/core"
)

// validationErrorPatterns holds common validation error substrings to classify 400 vs 5xx.
// Keeping this at package scope avoids per-call allocations in isValidationError.
var validationErrorPatterns = []string{ //nolint:gochecknoglobals // read-only cache of patterns
	"is required",
	"cannot be empty",
	"cannot exceed",
	"at least one field must be updated",
	"cannot contain empty",
	"must be at least",
	"must contain between",
	"must point into",
	"must be updated together",
	"cannot be negative",
	"is not a valid address",
	"invalid role",
	"do not match",
}

// parseIntQuery returns the integer value of a query param or a default.
// It is tolerant of missing/invalid values.
func parseIntQuery(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// ParseLimitOffset parses common pagination params and clamps to sane bounds.
func ParseLimitOffset(r *http.Request, defLimit, maxLimit int) (int, int) {
	if maxLimit < 1 {
		maxLimit = 1
	}

	lim := parseIntQuery(r, "limit", defLimit)
	off := parseIntQuery(r, "offset", 0)
	if lim < 1 {
		lim = 1
	}
	if lim > maxLimit {
		lim = maxLimit
	}
	if off < 0 {
		off = 0
	}
	return lim, off
}

// isValidationError checks for common validation error patterns to decide 400 vs 5xx.
// This is a stopgap until typed validation errors are adopted across services.
func isValidationError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, p := range validationErrorPatterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

// WriteServiceError maps domain sentinels onto HTTP statuses. Unrecognized
// errors become opaque 500s so internals never leak to the client.
func WriteServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, core.ErrForbidden):
		WriteError(w, ErrorParams{Code: http.StatusForbidden, ErrCode: "insufficient_permissions", Err: errors.New("insufficient permissions")})
	case errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrQuizNotFound),
		errors.Is(err, core.ErrQuestionNotFound),
		errors.Is(err, core.ErrGameSessionNotFound):
		WriteError(w, ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: err})
	case errors.Is(err, core.ErrUsernameTaken),
		errors.Is(err, core.ErrEmailTaken),
		errors.Is(err, core.ErrJoinCodeTaken):
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "conflict", Err: err})
	case errors.Is(err, core.ErrSessionNotJoinable):
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "session_not_joinable", Err: err})
	case isValidationError(err):
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_failed", Err: err})
	default:
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "internal_error", Err: errors.New("internal server error")})
	}
}
