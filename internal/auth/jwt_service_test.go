package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService("test-secret")
	userID := uuid.New()

	token, err := svc.Generate(userID, LoginTokenExpiry)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	require.NoError(t, err)

	subject, err := claims.SubjectID()
	require.NoError(t, err)
	assert.Equal(t, userID, subject)

	// Only the subject travels in the token.
	assert.Equal(t, userID.String(), claims.UserID)
	assert.WithinDuration(t, time.Now().Add(LoginTokenExpiry), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_RegisterExpiryShorterThanLogin(t *testing.T) {
	svc := NewJWTService("test-secret")
	userID := uuid.New()

	registerToken, err := svc.Generate(userID, RegisterTokenExpiry)
	require.NoError(t, err)
	loginToken, err := svc.Generate(userID, LoginTokenExpiry)
	require.NoError(t, err)

	registerClaims, err := svc.Validate(registerToken)
	require.NoError(t, err)
	loginClaims, err := svc.Validate(loginToken)
	require.NoError(t, err)

	assert.True(t, registerClaims.ExpiresAt.Time.Before(loginClaims.ExpiresAt.Time))
}

func TestJWTService_Validate_Errors(t *testing.T) {
	svc := NewJWTService("test-secret")
	userID := uuid.New()

	tests := []struct {
		name  string
		token func() string
	}{
		{
			name:  "garbage token",
			token: func() string { return "not-a-token" },
		},
		{
			name: "wrong secret",
			token: func() string {
				other := NewJWTService("other-secret")
				token, err := other.Generate(userID, time.Hour)
				require.NoError(t, err)
				return token
			},
		},
		{
			name: "expired token",
			token: func() string {
				token, err := svc.Generate(userID, -time.Minute)
				require.NoError(t, err)
				return token
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Validate(tt.token())
			assert.Error(t, err)
		})
	}
}
