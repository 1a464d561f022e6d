package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"portfolio/internal/auth"
	"portfolio/internal/model"
)

// MockUserRepository is a mock implementation of repository.UserRepository.
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

const testSecret = "test-secret"

// newGate builds an echo instance with one admin-gated route.
func newGate(users *MockUserRepository) *echo.Echo {
	e := echo.New()
	e.GET("/admin", func(c echo.Context) error {
		principal, ok := PrincipalFrom(c)
		if !ok {
			return c.NoContent(http.StatusInternalServerError)
		}
		return c.JSON(http.StatusOK, echo.Map{"id": principal.ID, "role": principal.Role})
	}, JWT(testSecret), LoadPrincipal(users), RequireRole(model.RoleAdmin))
	return e
}

func token(t *testing.T, secret string, userID uuid.UUID, ttl time.Duration) string {
	t.Helper()
	tok, err := auth.NewJWTService(secret).Generate(userID, ttl)
	require.NoError(t, err)
	return tok
}

func TestAdminGate(t *testing.T) {
	adminID := uuid.New()
	userID := uuid.New()
	goneID := uuid.New()

	users := new(MockUserRepository)
	users.On("FindByID", mock.Anything, adminID).Return(&model.User{ID: adminID, Role: model.RoleAdmin}, nil)
	users.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Role: model.RoleUser}, nil)
	users.On("FindByID", mock.Anything, goneID).Return(nil, gorm.ErrRecordNotFound)

	e := newGate(users)

	tests := []struct {
		name         string
		authHeader   string
		expectedCode int
	}{
		{
			name:         "no authorization header",
			authHeader:   "",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "malformed header",
			authHeader:   "Token abc",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "garbage token",
			authHeader:   "Bearer not-a-token",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "expired token",
			authHeader:   "Bearer " + token(t, testSecret, adminID, -time.Minute),
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "token signed with another secret",
			authHeader:   "Bearer " + token(t, "other-secret", adminID, time.Hour),
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "subject no longer exists",
			authHeader:   "Bearer " + token(t, testSecret, goneID, time.Hour),
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "well-formed token with wrong role",
			authHeader:   "Bearer " + token(t, testSecret, userID, time.Hour),
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "admin allowed",
			authHeader:   "Bearer " + token(t, testSecret, adminID, time.Hour),
			expectedCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin", nil)
			if tt.authHeader != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.authHeader)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

// Role comes from the stored record, not the token: the same credential
// observes a role change immediately.
func TestAdminGate_RoleReadFreshPerRequest(t *testing.T) {
	id := uuid.New()
	credential := "Bearer " + token(t, testSecret, id, time.Hour)

	users := new(MockUserRepository)
	users.On("FindByID", mock.Anything, id).Return(&model.User{ID: id, Role: model.RoleUser}, nil).Once()
	users.On("FindByID", mock.Anything, id).Return(&model.User{ID: id, Role: model.RoleAdmin}, nil).Once()

	e := newGate(users)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(echo.HeaderAuthorization, credential)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(echo.HeaderAuthorization, credential)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
