package middleware

import (
	"slices"
	"strings"

	deliverycontext "pulse/internal/delivery/context"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware resolves the requester identity from the bearer token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and stores the caller on the echo context.
// Failures are returned as AppErrors for the central error handler.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is missing")
		}

		tokenString, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found || tokenString == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header must be a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrInvalidToken.WrapMessage(err.Error())
		}

		c.Set(deliverycontext.KeyUserID, claims.UserID())
		c.Set(deliverycontext.KeyUserName, claims.Name)
		c.Set(deliverycontext.KeyRoles, claims.Roles)

		return next(c)
	}
}

// RequireRole checks that the caller carries a role. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !slices.Contains(deliverycontext.GetRoles(c), requiredRole) {
				return domainerrors.ErrForbidden.WrapMessage("missing role " + requiredRole)
			}

			return next(c)
		}
	}
}
