package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/campusconnect/campus-events-backend/internal/models"
	"github.com/campusconnect/campus-events-backend/internal/service"
	"github.com/campusconnect/campus-events-backend/pkg/utils"
)

type UserHandler struct {
	userService *service.UserService
	validator   *utils.Validator
}

func NewUserHandler(userService *service.UserService, validator *utils.Validator) *UserHandler {
	return &UserHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *UserHandler) CreateAnonymous(c *fiber.Ctx) error {
	var req models.AnonymousUserRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	resp, err := h.userService.CreateAnonymous(req.Name)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(resp, "User created"))
}

func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid user id"))
	}

	user, err := h.userService.GetByID(uint(id))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(user, ""))
}

func (h *UserHandler) GetByEmail(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("email query parameter is required"))
	}

	user, err := h.userService.GetByEmail(email)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(user, ""))
}
