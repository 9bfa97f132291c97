package application

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"eventdesk/internal/auth"
	"eventdesk/internal/domain"
	"eventdesk/internal/domain/entities"
	"eventdesk/internal/ports/input"
	"eventdesk/internal/ports/output"
)

var _ input.AuthUseCase = (*AuthService)(nil)

type AuthService struct {
	userRepo output.UserRepository
	tokens   *auth.JWTManager
}

func NewAuthService(userRepo output.UserRepository, tokens *auth.JWTManager) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// RegisterUser creates an API account with a bcrypt-hashed password.
func (s *AuthService) RegisterUser(ctx context.Context, username, email, password, role string) (*entities.User, error) {
	if existing, _ := s.userRepo.FindByEmail(ctx, email); existing != nil {
		return nil, domain.ErrEmailTaken
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	if role == "" {
		role = domain.RoleUser
	}
	user := &entities.User{
		Username:       username,
		Email:          email,
		HashedPassword: string(hashed),
		Role:           role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates by email or username and returns a signed bearer token.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (string, error) {
	var user *entities.User
	var err error
	if strings.Contains(identifier, "@") {
		user, err = s.userRepo.FindByEmail(ctx, identifier)
	} else {
		user, err = s.userRepo.FindByUsername(ctx, identifier)
	}
	if err != nil {
		return "", domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(strconv.FormatInt(user.ID, 10), user.Role)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}
