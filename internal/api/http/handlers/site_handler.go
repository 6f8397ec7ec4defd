package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/greentouch-site/internal/api/dto"
	"github.com/spec-kit/greentouch-site/internal/domain"
	"github.com/spec-kit/greentouch-site/internal/service"
)

// SiteHandler serves the service catalogue and landing copy.
type SiteHandler struct {
	service   *service.SiteService
	validator *dto.Validator
}

// NewSiteHandler constructs handler.
func NewSiteHandler(siteService *service.SiteService, validator *dto.Validator) *SiteHandler {
	return &SiteHandler{service: siteService, validator: validator}
}

// Services GET /services.
func (h *SiteHandler) Services(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": dto.NewServiceResponses(h.service.Services())})
}

// Hero GET /content/hero.
func (h *SiteHandler) Hero(c *fiber.Ctx) error {
	hero, err := h.service.Hero(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewHeroContentResponse(hero)})
}

// UpdateHero PUT /content/hero.
func (h *SiteHandler) UpdateHero(c *fiber.Ctx) error {
	var req dto.HeroContentRequest
	if err := bindAndValidate(c, h.validator, &req); err != nil {
		return err
	}
	hero, err := h.service.UpdateHero(c.UserContext(), domain.HeroContent{
		Headline:   req.Headline,
		Subtitle:   req.Subtitle,
		ButtonText: req.ButtonText,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewHeroContentResponse(hero)})
}
