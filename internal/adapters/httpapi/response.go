package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"eventdesk/internal/domain"
)

// fail maps a use-case error to its HTTP status and localized reason string.
func (h *Handler) fail(c *gin.Context, err error) {
	status, key := classify(err)
	if status == http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("request failed")
	}
	h.failKey(c, status, key)
}

// failKey writes a failure response for an explicit status and message key.
func (h *Handler) failKey(c *gin.Context, status int, key string) {
	c.JSON(status, gin.H{"detail": h.translator.T(requestLocale(c), key, nil)})
}

// badRequest reports a request-binding failure.
func (h *Handler) badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": "Validation Error", "errors": err.Error()})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrEventNotAvailable):
		return http.StatusBadRequest, "error.event_not_available"
	case errors.Is(err, domain.ErrEventFull):
		return http.StatusBadRequest, "error.event_full"
	case errors.Is(err, domain.ErrDuplicateEmail):
		return http.StatusBadRequest, "error.duplicate_email"
	case errors.Is(err, domain.ErrUnsupportedFormat):
		return http.StatusBadRequest, "error.unsupported_format"
	case errors.Is(err, domain.ErrEmptyFile):
		return http.StatusBadRequest, "error.empty_file"
	case errors.Is(err, domain.ErrEmailTaken):
		return http.StatusBadRequest, "error.email_taken"
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusBadRequest, "error.username_taken"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, "error.invalid_credentials"
	case errors.Is(err, domain.ErrEventNotFound):
		return http.StatusNotFound, "error.event_not_found"
	case errors.Is(err, domain.ErrNoEventsFound):
		return http.StatusNotFound, "error.no_events"
	case errors.Is(err, domain.ErrAttendeeNotFound):
		return http.StatusNotFound, "error.attendee_not_found"
	case errors.Is(err, domain.ErrNoAttendeesFound):
		return http.StatusNotFound, "error.no_attendees"
	case errors.Is(err, domain.ErrNoValidAttendees):
		return http.StatusNotFound, "error.no_valid_attendees"
	default:
		return http.StatusInternalServerError, "error.internal"
	}
}

// requestLocale extracts the preferred language from the Accept-Language
// header ("fr-CA,fr;q=0.9" -> "fr-CA"); quality factors are ignored.
func requestLocale(c *gin.Context) string {
	raw := c.GetHeader("Accept-Language")
	if raw == "" {
		return ""
	}
	raw, _, _ = strings.Cut(raw, ",")
	raw, _, _ = strings.Cut(raw, ";")
	return strings.TrimSpace(raw)
}
