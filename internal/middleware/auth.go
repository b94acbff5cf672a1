package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"taskdeck/internal/auth"
	apperrors "taskdeck/internal/errors"
)

// userIDKey is the echo context key under which the authenticated user id is
// stored. Only this package writes it; handlers read it via UserID.
const userIDKey = "authUserID"

// RequireAuth gates a route on a valid bearer access token. On success the
// resolved user id is attached to the request context; no database lookup
// happens here, identity is trusted from the signed token alone. The gate is
// side-effect-free beyond the context value.
func RequireAuth(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return apperrors.Unauthorized("Authorization header is required")
			}

			parts := strings.Split(header, " ")
			if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
				return apperrors.Unauthorized("Invalid authorization header")
			}

			claims, err := tokens.VerifyAccessToken(parts[1])
			if err != nil {
				return apperrors.Unauthorized("Invalid token")
			}

			c.Set(userIDKey, claims.UserID)
			return next(c)
		}
	}
}

// UserID returns the authenticated user id attached by RequireAuth.
func UserID(c echo.Context) (uint, bool) {
	id, ok := c.Get(userIDKey).(uint)
	return id, ok
}
