package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/greentouch-site/internal/domain"
	apperrors "github.com/spec-kit/greentouch-site/pkg/util"
)

const principalKey = "auth_principal"

// Principal represents the authenticated admin.
type Principal struct {
	User    domain.AdminUser
	TokenID string
}

// AuthMiddleware validates bearer tokens and loads principals.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle enforces authentication for admin routes.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	principal, err := m.principal(authHeader)
	if err != nil {
		return err
	}

	c.Locals(principalKey, principal)
	return c.Next()
}

// Optional attaches the principal when a valid token is present and lets
// anonymous callers through otherwise.
func (m *AuthMiddleware) Optional(c *fiber.Ctx) error {
	if authHeader := c.Get(fiber.HeaderAuthorization); authHeader != "" {
		if principal, err := m.principal(authHeader); err == nil {
			c.Locals(principalKey, principal)
		}
	}
	return c.Next()
}

func (m *AuthMiddleware) principal(authHeader string) (*Principal, error) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, apperrors.NewUnauthorized("invalid token")
	}

	return &Principal{
		User: domain.AdminUser{
			ID:    claims.Subject,
			Email: claims.Email,
			Name:  claims.Name,
		},
		TokenID: claims.ID,
	}, nil
}

// PrincipalFromContext retrieves the authenticated admin.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
