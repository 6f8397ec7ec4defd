package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/greentouch-site/internal/api/dto"
	"github.com/spec-kit/greentouch-site/internal/service"
)

// AuthHandler exposes admin login and password management.
type AuthHandler struct {
	service   *service.AuthService
	validator *dto.Validator
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService, validator *dto.Validator) *AuthHandler {
	return &AuthHandler{service: authService, validator: validator}
}

// Login POST /login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bindAndValidate(c, h.validator, &req); err != nil {
		return err
	}
	user, token, err := h.service.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewLoginResponse(user, token)})
}

// ChangePassword POST /admin/password.
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
	if err := bindAndValidate(c, h.validator, &req); err != nil {
		return err
	}
	if err := h.service.ChangePassword(c.UserContext(), req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"status": "password_changed"}})
}
