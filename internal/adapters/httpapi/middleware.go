package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"eventdesk/internal/auth"
)

// Gin context keys set by the auth middleware.
const (
	ctxUserID   = "user_id"
	ctxUserRole = "user_role"
)

// RequestLogger logs one line per request with method, path, status and
// duration.
func RequestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

// bearerAuth requires a valid bearer token and stores the caller identity in
// the request context.
func (h *Handler) bearerAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.TokenFromHeader(c.GetHeader("Authorization"))
		if err == nil {
			claims, verr := h.tokens.Validate(token)
			if verr == nil {
				c.Set(ctxUserID, claims.Subject)
				c.Set(ctxUserRole, claims.Role)
				c.Next()
				return
			}
		}
		c.Header("WWW-Authenticate", "Bearer")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
			"detail": h.translator.T(requestLocale(c), "error.invalid_token", nil),
		})
	}
}
