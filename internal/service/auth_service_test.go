package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"portfolio/internal/auth"
	"portfolio/internal/errors"
	"portfolio/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		email         string
		role          string
		setupMock     func(*MockUserRepository)
		expectedError error
		expectedRole  string
	}{
		{
			name:  "successful registration defaults to USER",
			email: "test@example.com",
			role:  "",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil).Run(func(args mock.Arguments) {
					args.Get(1).(*model.User).ID = uuid.New()
				})
			},
			expectedRole: model.RoleUser,
		},
		{
			name:  "admin registration keeps role",
			email: "admin@example.com",
			role:  model.RoleAdmin,
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "admin@example.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil).Run(func(args mock.Arguments) {
					args.Get(1).(*model.User).ID = uuid.New()
				})
			},
			expectedRole: model.RoleAdmin,
		},
		{
			name:  "email already taken",
			email: "existing@example.com",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "existing@example.com").
					Return(&model.User{Email: "existing@example.com"}, nil)
			},
			expectedError: errors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)
			svc := NewAuthService(repo, auth.NewJWTService("test-secret"))

			token, user, err := svc.Register(context.Background(), "Test User", tt.email, "password123", tt.role)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, token)
			assert.Equal(t, tt.expectedRole, user.Role)
			assert.NotEqual(t, "password123", user.PasswordHash, "password must never be stored in plaintext")
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	userID := uuid.New()
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &model.User{
		ID:           userID,
		Email:        "test@example.com",
		PasswordHash: string(hashed),
		Role:         model.RoleAdmin,
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "test@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(stored, nil)
			},
		},
		{
			name:     "wrong password",
			email:    "test@example.com",
			password: "wrong",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "test@example.com").Return(stored, nil)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
		{
			name:     "unknown email",
			email:    "missing@example.com",
			password: "password123",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "missing@example.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)
			jwtService := auth.NewJWTService("test-secret")
			svc := NewAuthService(repo, jwtService)

			token, user, err := svc.Login(context.Background(), tt.email, tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, user.ID)

			// The embedded subject id must round-trip to the stored user.
			claims, err := jwtService.Validate(token)
			require.NoError(t, err)
			subject, err := claims.SubjectID()
			require.NoError(t, err)
			assert.Equal(t, userID, subject)
		})
	}
}
