package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/greentouch-site/internal/api/dto"
	"github.com/spec-kit/greentouch-site/internal/domain"
	"github.com/spec-kit/greentouch-site/internal/service"
	apperrors "github.com/spec-kit/greentouch-site/pkg/util"
)

// QuotesHandler manages quote endpoints.
type QuotesHandler struct {
	service   *service.QuoteService
	validator *dto.Validator
}

// NewQuotesHandler constructs handler.
func NewQuotesHandler(quoteService *service.QuoteService, validator *dto.Validator) *QuotesHandler {
	return &QuotesHandler{service: quoteService, validator: validator}
}

// CreateQuote POST /quotes.
func (h *QuotesHandler) CreateQuote(c *fiber.Ctx) error {
	var req dto.CreateQuoteRequest
	if err := bindAndValidate(c, h.validator, &req); err != nil {
		return err
	}
	quote, err := h.service.CreateQuote(c.UserContext(), service.QuoteCreateInput{
		Name:        req.Name,
		Email:       req.Email,
		ServiceType: domain.ServiceType(req.ServiceType),
		GardenSize:  req.GardenSize,
		Comments:    req.Comments,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewQuoteResponse(quote)})
}

// ListQuotes GET /quotes, optionally filtered by ?status=.
func (h *QuotesHandler) ListQuotes(c *fiber.Ctx) error {
	status := domain.QuoteStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		return apperrors.NewValidationError("invalid quote status", map[string]any{"status": status})
	}
	quotes, err := h.service.ListQuotes(c.UserContext())
	if err != nil {
		return err
	}
	if status != "" {
		filtered := quotes[:0]
		for _, q := range quotes {
			if q.Status == status {
				filtered = append(filtered, q)
			}
		}
		quotes = filtered
	}
	return c.JSON(fiber.Map{"data": dto.NewQuoteResponses(quotes)})
}

// UpdateQuoteStatus PATCH /quotes/:id.
func (h *QuotesHandler) UpdateQuoteStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := bindAndValidate(c, h.validator, &req); err != nil {
		return err
	}
	quote, err := h.service.UpdateQuoteStatus(c.UserContext(), c.Params("id"), domain.QuoteStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewQuoteResponse(quote)})
}
