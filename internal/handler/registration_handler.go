package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/campusconnect/campus-events-backend/internal/models"
	"github.com/campusconnect/campus-events-backend/internal/service"
	"github.com/campusconnect/campus-events-backend/pkg/utils"
)

// Ticket QR size bounds in pixels.
const (
	defaultQRSize = 256
	maxQRSize     = 1024
)

type RegistrationHandler struct {
	regService *service.RegistrationService
	validator  *utils.Validator
}

func NewRegistrationHandler(regService *service.RegistrationService, validator *utils.Validator) *RegistrationHandler {
	return &RegistrationHandler{
		regService: regService,
		validator:  validator,
	}
}

func (h *RegistrationHandler) Register(c *fiber.Ctx) error {
	var req models.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	resp, err := h.regService.Register(currentUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(resp, "Registered"))
}

func (h *RegistrationHandler) Cancel(c *fiber.Ctx) error {
	eventID, err := parseID(c, "eventId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event id"))
	}

	if err := h.regService.Cancel(eventID, currentUserID(c)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Registration cancelled"))
}

func (h *RegistrationHandler) GetByEvent(c *fiber.Ctx) error {
	eventID, err := parseID(c, "eventId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event id"))
	}

	regs, err := h.regService.GetEventRegistrations(eventID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(regs, ""))
}

func (h *RegistrationHandler) GetMine(c *fiber.Ctx) error {
	regs, err := h.regService.GetUserRegistrations(currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(regs, ""))
}

func (h *RegistrationHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid registration id"))
	}

	reg, err := h.regService.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(reg, ""))
}

func (h *RegistrationHandler) GetByCode(c *fiber.Ctx) error {
	code := c.Params("code")

	reg, err := h.regService.GetByCode(code)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(reg, ""))
}

func (h *RegistrationHandler) TicketQR(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid registration id"))
	}

	size := defaultQRSize
	if s := c.Query("size"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil || parsed <= 0 || parsed > maxQRSize {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid size"))
		}
		size = parsed
	}

	png, err := h.regService.TicketQR(id, size)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

func (h *RegistrationHandler) MarkAttendance(c *fiber.Ctx) error {
	var req models.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	result, err := h.regService.MarkAttendance(req.RegistrationID, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	message := "Attendance marked"
	if result.AlreadyMarked {
		message = "Attendance already marked"
	}
	return c.JSON(models.SuccessResponse(result, message))
}

func (h *RegistrationHandler) GetEventAttendance(c *fiber.Ctx) error {
	eventID, err := parseID(c, "eventId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event id"))
	}

	atts, err := h.regService.GetEventAttendance(eventID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(atts, ""))
}

func (h *RegistrationHandler) History(c *fiber.Ctx) error {
	items, err := h.regService.History(currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(items, ""))
}

func (h *RegistrationHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.regService.Stats(currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(stats, ""))
}
