package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/greentouch-site/internal/api/dto"
	"github.com/spec-kit/greentouch-site/internal/auth"
	apperrors "github.com/spec-kit/greentouch-site/pkg/util"
)

// bindAndValidate decodes the JSON body into req, trims its text fields and
// validates it.
func bindAndValidate(c *fiber.Ctx, v *dto.Validator, req any) error {
	if err := c.BodyParser(req); err != nil {
		return apperrors.NewValidationError("invalid payload", map[string]any{"body": "must be valid JSON"})
	}
	if n, ok := req.(dto.Normalizer); ok {
		n.Normalize()
	}
	return v.Struct(req)
}

// requireAdmin rejects requests that carry no authenticated principal. It
// backs routes that are public only for a query-selected subset.
func requireAdmin(c *fiber.Ctx) error {
	if _, ok := auth.PrincipalFromContext(c); !ok {
		return apperrors.NewUnauthorized("admin authentication required")
	}
	return nil
}

func wantsApprovedOnly(c *fiber.Ctx) bool {
	return c.QueryBool("approved", false)
}
