package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Pinger reports whether the storage dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// NewRouter wires public endpoints (health, auth) and the authenticated API.
func NewRouter(h *Handler, db Pinger, logger zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(logger))

	// Liveness: confirms the process is running.
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Readiness: confirms the DB dependency is reachable.
	r.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	authGroup := r.Group("/auth")
	authGroup.POST("/register", h.registerUser)
	authGroup.POST("/login", h.login)

	api := r.Group("/")
	api.Use(h.bearerAuth())
	api.POST("/events", h.createEvent)
	api.PUT("/events/:id", h.updateEvent)
	api.GET("/events", h.listEvents)
	api.GET("/events/:id", h.getEvent)
	api.POST("/attendees", h.registerAttendee)
	api.PUT("/attendees/check-in/:id", h.checkInAttendee)
	api.GET("/attendees/:event_id", h.listAttendees)
	api.POST("/attendees/bulk-check-in", h.bulkCheckIn)

	return r
}
