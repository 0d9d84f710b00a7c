package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/campusconnect/campus-events-backend/internal/models"
	"github.com/campusconnect/campus-events-backend/internal/service"
	"github.com/campusconnect/campus-events-backend/pkg/utils"
)

type EventHandler struct {
	eventService *service.EventService
	validator    *utils.Validator
}

func NewEventHandler(eventService *service.EventService, validator *utils.Validator) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		validator:    validator,
	}
}

func (h *EventHandler) Create(c *fiber.Ctx) error {
	var req models.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	event, err := h.eventService.Create(currentUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(event, "Event created"))
}

func (h *EventHandler) Update(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event id"))
	}

	var req models.EventRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	event, err := h.eventService.Update(eventID, currentUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(event, "Event updated"))
}

func (h *EventHandler) Delete(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event id"))
	}

	if err := h.eventService.Delete(eventID, currentUserID(c)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Event deleted"))
}

func (h *EventHandler) GetByID(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event id"))
	}

	event, err := h.eventService.GetByID(eventID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(event, ""))
}

func (h *EventHandler) GetAll(c *fiber.Ctx) error {
	events, err := h.eventService.GetAll()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(events, ""))
}

func (h *EventHandler) GetMine(c *fiber.Ctx) error {
	events, err := h.eventService.GetByOrganizer(currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(events, ""))
}

func (h *EventHandler) Reassign(c *fiber.Ctx) error {
	eventID, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event id"))
	}

	var req models.ReassignOrganizerRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.eventService.Reassign(eventID, currentUserID(c), req.NewOrganizerID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Event reassigned"))
}

func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
