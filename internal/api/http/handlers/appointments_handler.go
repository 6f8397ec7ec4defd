package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/greentouch-site/internal/api/dto"
	"github.com/spec-kit/greentouch-site/internal/domain"
	"github.com/spec-kit/greentouch-site/internal/service"
	apperrors "github.com/spec-kit/greentouch-site/pkg/util"
)

// AppointmentsHandler manages appointment endpoints.
type AppointmentsHandler struct {
	service   *service.AppointmentService
	validator *dto.Validator
}

// NewAppointmentsHandler constructs handler.
func NewAppointmentsHandler(appointmentService *service.AppointmentService, validator *dto.Validator) *AppointmentsHandler {
	return &AppointmentsHandler{service: appointmentService, validator: validator}
}

// CreateAppointment POST /appointments.
func (h *AppointmentsHandler) CreateAppointment(c *fiber.Ctx) error {
	var req dto.CreateAppointmentRequest
	if err := bindAndValidate(c, h.validator, &req); err != nil {
		return err
	}
	appointment, err := h.service.CreateAppointment(c.UserContext(), service.AppointmentCreateInput{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		ServiceType:   domain.ServiceType(req.ServiceType),
		PreferredDate: req.PreferredDate,
	})
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": dto.NewAppointmentResponse(appointment)})
}

// ListAppointments GET /appointments, optionally filtered by ?status=.
func (h *AppointmentsHandler) ListAppointments(c *fiber.Ctx) error {
	status := domain.AppointmentStatus(c.Query("status"))
	if status != "" && !status.Valid() {
		return apperrors.NewValidationError("invalid appointment status", map[string]any{"status": status})
	}
	appointments, err := h.service.ListAppointments(c.UserContext())
	if err != nil {
		return err
	}
	if status != "" {
		filtered := appointments[:0]
		for _, a := range appointments {
			if a.Status == status {
				filtered = append(filtered, a)
			}
		}
		appointments = filtered
	}
	return c.JSON(fiber.Map{"data": dto.NewAppointmentResponses(appointments)})
}

// UpdateAppointmentStatus PATCH /appointments/:id.
func (h *AppointmentsHandler) UpdateAppointmentStatus(c *fiber.Ctx) error {
	var req dto.UpdateStatusRequest
	if err := bindAndValidate(c, h.validator, &req); err != nil {
		return err
	}
	appointment, err := h.service.UpdateAppointmentStatus(c.UserContext(), c.Params("id"), domain.AppointmentStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewAppointmentResponse(appointment)})
}
