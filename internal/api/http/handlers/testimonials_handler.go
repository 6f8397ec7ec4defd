package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/greentouch-site/internal/api/dto"
	"github.com/spec-kit/greentouch-site/internal/domain"
	"github.com/spec-kit/greentouch-site/internal/service"
)

// TestimonialsHandler manages testimonial endpoints.
type TestimonialsHandler struct {
	service   *service.TestimonialService
	validator *dto.Validator
}

// NewTestimonialsHandler constructs handler.
func NewTestimonialsHandler(testimonialService *service.TestimonialService, validator *dto.Validator) *TestimonialsHandler {
	return &TestimonialsHandler{service: testimonialService, validator: validator}
}

// CreateTestimonial POST /testimonials.
func (h *TestimonialsHandler) CreateTestimonial(c *fiber.Ctx) error {
	var req dto.CreateTestimonialRequest
	if err := bindAndValidate(c, h.validator, &req); err != nil {
		return err
	}
	testimonial, err := h.service.CreateTestimonial(c.UserContext(), service.TestimonialCreateInput{
		Name:     req.Name,
		Text:     req.Text,
		Rating:   req.Rating,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewTestimonialResponse(testimonial)})
}

// ListTestimonials GET /testimonials. ?approved=true is public; the full
// list needs an admin token.
func (h *TestimonialsHandler) ListTestimonials(c *fiber.Ctx) error {
	var (
		testimonials []domain.Testimonial
		err          error
	)
	if wantsApprovedOnly(c) {
		testimonials, err = h.service.ListApprovedTestimonials(c.UserContext())
	} else {
		if err := requireAdmin(c); err != nil {
			return err
		}
		testimonials, err = h.service.ListTestimonials(c.UserContext())
	}
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTestimonialResponses(testimonials)})
}

// UpdateTestimonialApproval PATCH /testimonials/:id.
func (h *TestimonialsHandler) UpdateTestimonialApproval(c *fiber.Ctx) error {
	var req dto.UpdateApprovalRequest
	if err := bindAndValidate(c, h.validator, &req); err != nil {
		return err
	}
	testimonial, err := h.service.UpdateTestimonialApproval(c.UserContext(), c.Params("id"), *req.Approved)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTestimonialResponse(testimonial)})
}
