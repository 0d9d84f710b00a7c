package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusconnect/campus-events-backend/internal/models"
	"github.com/campusconnect/campus-events-backend/internal/service"
	"github.com/campusconnect/campus-events-backend/pkg/utils"
)

type AuthHandler struct {
	authService *service.AuthService
	validator   *utils.Validator
}

func NewAuthHandler(authService *service.AuthService, validator *utils.Validator) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validator:   validator,
	}
}

func (h *AuthHandler) SendOTP(c *fiber.Ctx) error {
	var req models.SendOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.authService.SendOTP(req.Email); err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "OTP sent"))
}

func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var req models.VerifyOTPRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	resp, err := h.authService.VerifyOTP(req.Email, req.Code)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(resp, "Signed in"))
}
