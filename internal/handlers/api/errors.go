package api

import (
	"errors"
	"net/http"

	"github.com/KirkDiggler/bactrack/internal/bac"
	"github.com/KirkDiggler/bactrack/internal/models"
	"github.com/KirkDiggler/bactrack/internal/services/tracker"
)

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, tracker.ErrMissingUsername),
		errors.Is(err, models.ErrUnsupportedSex),
		errors.Is(err, models.ErrInvalidWeight),
		errors.Is(err, models.ErrInvalidBAC),
		errors.Is(err, models.ErrMissingMaxBAC):
		return http.StatusBadRequest
	case errors.Is(err, bac.ErrNonFinite):
		return http.StatusUnprocessableEntity
	case errors.Is(err, tracker.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, tracker.ErrProfileNotFound),
		errors.Is(err, tracker.ErrUnknownDrink):
		return http.StatusNotFound
	case errors.Is(err, tracker.ErrUsernameTaken),
		errors.Is(err, tracker.ErrNoActiveSession):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		h.logger.Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		Error(w, status, "internal error")
		return
	}
	Error(w, status, err.Error())
}
