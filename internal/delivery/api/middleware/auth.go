package middleware

import (
	"strings"

	"leadgrid/internal/delivery/api/response"
	"leadgrid/internal/domain/entity"
	"leadgrid/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "userID"
	contextKeyRoles  = "roles"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the operator identity on the context.
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

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		c.Set(contextKeyUserID, claims.UserID)
		c.Set(contextKeyRoles, entity.RolesFromStrings(claims.Roles))

		return next(c)
	}
}

// RequireRole checks that the authenticated operator carries the role.
// It must be used after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			roles, ok := GetRoles(c)
			if !ok {
				return response.Forbidden(c, "PERMISSION_DENIED", "Role information missing")
			}

			if !roles.Contains(requiredRole) {
				return response.Forbidden(c, "PERMISSION_DENIED", "Require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// GetUserID returns the authenticated operator ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(contextKeyUserID).(uuid.UUID)

	return userID, ok
}

// GetRoles returns the roles of the authenticated operator.
func GetRoles(c echo.Context) (entity.Roles, bool) {
	roles, ok := c.Get(contextKeyRoles).(entity.Roles)

	return roles, ok
}
