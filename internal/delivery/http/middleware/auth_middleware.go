package middleware

import (
	"strings"

	"backoffice/internal/domain/entity"
	domainerrors "backoffice/internal/domain/errors"
	"backoffice/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContextKeyPrincipal is the echo.Context key holding the authenticated principal.
const ContextKeyPrincipal = "principal"

// AuthMiddleware provides middleware for bearer-token authentication and
// access checks.
type AuthMiddleware struct {
	securityUC usecase.SecurityUsecase
	authzUC    usecase.AuthorizationUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(securityUC usecase.SecurityUsecase, authzUC usecase.AuthorizationUsecase) *AuthMiddleware {
	return &AuthMiddleware{securityUC: securityUC, authzUC: authzUC}
}

// Authenticate validates the bearer token on the request and stores the
// verified principal on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrUnauthorized.WrapMessage("invalid token format, must be Bearer token")
		}

		principal, err := m.securityUC.AuthenticateToken(c.Request().Context(), &usecase.TokenAuthenticateInput{
			Token:       tokenString,
			RequestPath: c.Request().URL.Path,
		})
		if err != nil {
			return errors.WithStack(err)
		}

		c.Set(ContextKeyPrincipal, principal)

		return next(c)
	}
}

// RequireAccess is a middleware factory that checks whether the caller's role
// holds an ALLOWED grant for the named access.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAccess(accessName string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal := GetPrincipal(c)
			if principal == nil {
				return domainerrors.ErrUnauthorized
			}

			account, err := m.authzUC.AuthorizeAccount(c.Request().Context(), principal.Identity, "")
			if err != nil {
				return errors.WithStack(err)
			}
			if account.Role == nil {
				return domainerrors.ErrDataInconsistent
			}

			if _, err := m.securityUC.IsRoleAuthorized(c.Request().Context(), account.Role.Name, accessName); err != nil {
				return errors.WithStack(err)
			}

			return next(c)
		}
	}
}

// GetPrincipal extracts the authenticated principal from the context, or nil.
func GetPrincipal(c echo.Context) *entity.Principal {
	principal, _ := c.Get(ContextKeyPrincipal).(*entity.Principal)

	return principal
}
