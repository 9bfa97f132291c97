// Package httpapi exposes the use cases over HTTP using gin.
package httpapi

import (
	"github.com/rs/zerolog"

	"eventdesk/internal/auth"
	"eventdesk/internal/ports/input"
	"eventdesk/internal/ports/output"
)

// Handler handles HTTP requests using use cases.
type Handler struct {
	events       input.EventUseCase
	registration input.RegistrationUseCase
	checkIn      input.CheckInUseCase
	accounts     input.AuthUseCase
	tokens       *auth.JWTManager
	translator   output.T
	logger       zerolog.Logger
}

// NewHandler creates a Handler.
func NewHandler(
	events input.EventUseCase,
	registration input.RegistrationUseCase,
	checkIn input.CheckInUseCase,
	accounts input.AuthUseCase,
	tokens *auth.JWTManager,
	translator output.T,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		events:       events,
		registration: registration,
		checkIn:      checkIn,
		accounts:     accounts,
		tokens:       tokens,
		translator:   translator,
		logger:       logger,
	}
}
