package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/greentouch-site/internal/api/dto"
	"github.com/spec-kit/greentouch-site/internal/domain"
	"github.com/spec-kit/greentouch-site/internal/service"
)

// GalleryHandler manages gallery endpoints.
type GalleryHandler struct {
	service   *service.GalleryService
	validator *dto.Validator
}

// NewGalleryHandler constructs handler.
func NewGalleryHandler(galleryService *service.GalleryService, validator *dto.Validator) *GalleryHandler {
	return &GalleryHandler{service: galleryService, validator: validator}
}

// ListGalleryItems GET /gallery. ?approved=true is public; the full list
// needs an admin token.
func (h *GalleryHandler) ListGalleryItems(c *fiber.Ctx) error {
	var (
		items []domain.GalleryItem
		err   error
	)
	if wantsApprovedOnly(c) {
		items, err = h.service.ListApprovedGalleryItems(c.UserContext())
	} else {
		if err := requireAdmin(c); err != nil {
			return err
		}
		items, err = h.service.ListGalleryItems(c.UserContext())
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewGalleryItemResponses(items)})
}

// CreateGalleryItem POST /gallery.
func (h *GalleryHandler) CreateGalleryItem(c *fiber.Ctx) error {
	var req dto.CreateGalleryItemRequest
	if err := bindAndValidate(c, h.validator, &req); err != nil {
		return err
	}
	item, err := h.service.CreateGalleryItem(c.UserContext(), service.GalleryCreateInput{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Category:    domain.ServiceType(req.Category),
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewGalleryItemResponse(item)})
}

// DeleteGalleryItem DELETE /gallery/:id.
func (h *GalleryHandler) DeleteGalleryItem(c *fiber.Ctx) error {
	if err := h.service.DeleteGalleryItem(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}
