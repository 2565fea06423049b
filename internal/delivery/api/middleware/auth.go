package middleware

import (
	"log/slog"
	"slices"
	"strings"

	"contacts/internal/delivery/api/response"
	deliverycontext "contacts/internal/delivery/context"
	"contacts/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const principalKey = "principal"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	verifier service.TokenVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate validates the bearer token and stores the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "MISSING_TOKEN", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid token format, must be Bearer token")
		}

		principal, err := m.verifier.Verify(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(principalKey, principal)
		deliverycontext.EnrichLogger(c, slog.Default(), slog.String("username", principal.Username))

		return next(c)
	}
}

// RequireRole lets the request through when the caller holds any of the roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := GetPrincipal(c)
			if !ok {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: role information missing")
			}

			for _, role := range roles {
				if slices.Contains(principal.Roles, role) {
					return next(c)
				}
			}

			return response.Forbidden(c, "FORBIDDEN", "Permission denied: require one of "+strings.Join(roles, ", "))
		}
	}
}

// GetPrincipal returns the authenticated caller.
func GetPrincipal(c echo.Context) (*service.Principal, bool) {
	principal, ok := c.Get(principalKey).(*service.Principal)

	return principal, ok && principal != nil
}
