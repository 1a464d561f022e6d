package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"portfolio/internal/auth"
	"portfolio/internal/errors"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

const bcryptCost = 10

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (token string, user *model.User, err error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
}

type authService struct {
	users repository.UserRepository
	jwt   *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwt *auth.JWTService) AuthService {
	return &authService{users: users, jwt: jwt}
}

// Register creates a user with a hashed password and issues a short-lived
// token. Role defaults to USER when empty.
func (s *authService) Register(ctx context.Context, name, email, password, role string) (string, *model.User, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err == nil && existing != nil {
		return "", nil, errors.ErrEmailTaken
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return "", nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	if role == "" {
		role = model.RoleUser
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwt.Generate(user.ID, auth.RegisterTokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, user, nil
}

// Login verifies credentials and issues a day-long token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	token, err := s.jwt.Generate(user.ID, auth.LoginTokenExpiry)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}
	return token, user, nil
}
