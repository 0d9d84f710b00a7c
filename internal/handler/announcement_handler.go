package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusconnect/campus-events-backend/internal/models"
	"github.com/campusconnect/campus-events-backend/internal/service"
	"github.com/campusconnect/campus-events-backend/pkg/utils"
)

type AnnouncementHandler struct {
	annService *service.AnnouncementService
	validator  *utils.Validator
}

func NewAnnouncementHandler(annService *service.AnnouncementService, validator *utils.Validator) *AnnouncementHandler {
	return &AnnouncementHandler{
		annService: annService,
		validator:  validator,
	}
}

func (h *AnnouncementHandler) Create(c *fiber.Ctx) error {
	var req models.AnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	ann, err := h.annService.Create(currentUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(ann, "Announcement created"))
}

func (h *AnnouncementHandler) GetGeneral(c *fiber.Ctx) error {
	anns, err := h.annService.GetGeneral()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(anns, ""))
}

func (h *AnnouncementHandler) GetByEvent(c *fiber.Ctx) error {
	eventID, err := parseID(c, "eventId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event id"))
	}

	anns, err := h.annService.GetByEvent(eventID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(anns, ""))
}

func (h *AnnouncementHandler) GetMine(c *fiber.Ctx) error {
	anns, err := h.annService.GetByOrganizer(currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(anns, ""))
}

func (h *AnnouncementHandler) GetAll(c *fiber.Ctx) error {
	anns, err := h.annService.GetAll()
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(anns, ""))
}

func (h *AnnouncementHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid announcement id"))
	}

	if err := h.annService.Delete(id, currentUserID(c)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Announcement deleted"))
}
