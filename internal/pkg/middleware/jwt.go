package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/pullup/internal/pkg/jwt"
	"github.com/piresc/pullup/internal/pkg/models"
	"github.com/piresc/pullup/internal/utils"
)

const (
	userIDKey   = "user_id"
	userRoleKey = "user_role"
	callerKey   = "caller"
)

// JWTAuthMiddleware verifies the bearer token and stores the caller in the context
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := jwtpkg.ExtractToken(c.Request())
			if token == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			claims, err := jwtpkg.ValidateToken(token, config)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			caller, err := claims.Caller()
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id is not a valid UUID")
			}

			c.Set(userIDKey, caller.ID)
			c.Set(userRoleKey, caller.Role)
			c.Set(callerKey, caller)

			return next(c)
		}
	}
}

// CallerFromContext returns the authenticated caller set by JWTAuthMiddleware
func CallerFromContext(c echo.Context) (models.Caller, bool) {
	caller, ok := c.Get(callerKey).(models.Caller)
	return caller, ok
}

// UserIDFromContext returns the authenticated user id, uuid.Nil when absent
func UserIDFromContext(c echo.Context) uuid.UUID {
	id, _ := c.Get(userIDKey).(uuid.UUID)
	return id
}
