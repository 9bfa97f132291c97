package input

import (
	"context"

	"eventdesk/internal/domain/entities"
)

type AuthUseCase interface {
	RegisterUser(ctx context.Context, username, email, password, role string) (*entities.User, error)
	// Login authenticates by email or username and returns a signed bearer
	// token on success.
	Login(ctx context.Context, identifier, password string) (string, error)
}
