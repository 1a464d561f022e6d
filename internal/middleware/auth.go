package middleware

import (
	stderrors "errors"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"portfolio/internal/auth"
	"portfolio/internal/errors"
	"portfolio/internal/repository"
)

// principalKey is the echo context key under which the resolved Principal is
// stored. echo-jwt stores the verified token under its default "user" key.
const principalKey = "principal"

// Principal is the authenticated identity for the current request. Role is
// read from the current user record, never from the token payload.
type Principal struct {
	ID   uuid.UUID
	Role string
}

// JWT verifies the Authorization bearer token on the request.
func JWT(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(secret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		ErrorHandler: func(c echo.Context, err error) error {
			// A TokenError means a token was presented but failed
			// verification; anything else is a missing or malformed header.
			var tokenErr *echojwt.TokenError
			if stderrors.As(err, &tokenErr) {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "invalid or expired credential",
					Code:  "UNAUTHENTICATED",
				})
			}
			return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
				Error: "missing or malformed credential",
				Code:  "UNAUTHENTICATED",
			})
		},
	})
}

// LoadPrincipal resolves the verified token's subject against the user
// store and places a Principal in the request context. Must run after JWT.
func LoadPrincipal(users repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "missing or malformed credential",
					Code:  "UNAUTHENTICATED",
				})
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "invalid or expired credential",
					Code:  "UNAUTHENTICATED",
				})
			}

			subjectID, err := claims.SubjectID()
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "invalid or expired credential",
					Code:  "UNAUTHENTICATED",
				})
			}

			user, err := users.FindByID(c.Request().Context(), subjectID)
			if err != nil {
				if stderrors.Is(err, gorm.ErrRecordNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
						Error: "subject no longer exists",
						Code:  "UNAUTHENTICATED",
					})
				}
				return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
					Error: "internal server error",
					Code:  "INTERNAL_ERROR",
				})
			}

			c.Set(principalKey, Principal{ID: user.ID, Role: user.Role})
			return next(c)
		}
	}
}

// RequireRole gates the request on an exact role match. Must run after
// LoadPrincipal; a missing principal is a wiring bug and maps to 401.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := c.Get(principalKey).(Principal)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, errors.ErrorResponse{
					Error: "missing or malformed credential",
					Code:  "UNAUTHENTICATED",
				})
			}
			if principal.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, errors.ErrorResponse{
					Error: "insufficient role",
					Code:  "FORBIDDEN",
				})
			}
			return next(c)
		}
	}
}

// PrincipalFrom returns the Principal stored on the context, if any.
func PrincipalFrom(c echo.Context) (Principal, bool) {
	principal, ok := c.Get(principalKey).(Principal)
	return principal, ok
}
