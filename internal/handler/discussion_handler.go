package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusconnect/campus-events-backend/internal/models"
	"github.com/campusconnect/campus-events-backend/internal/service"
	"github.com/campusconnect/campus-events-backend/pkg/utils"
)

type DiscussionHandler struct {
	discService *service.DiscussionService
	validator   *utils.Validator
}

func NewDiscussionHandler(discService *service.DiscussionService, validator *utils.Validator) *DiscussionHandler {
	return &DiscussionHandler{
		discService: discService,
		validator:   validator,
	}
}

func (h *DiscussionHandler) Create(c *fiber.Ctx) error {
	var req models.DiscussionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	disc, err := h.discService.Create(currentUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(disc, "Posted"))
}

func (h *DiscussionHandler) GetByEvent(c *fiber.Ctx) error {
	eventID, err := parseID(c, "eventId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event id"))
	}

	discs, err := h.discService.GetByEvent(eventID, c.Query("type"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(discs, ""))
}

func (h *DiscussionHandler) TogglePin(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid discussion id"))
	}

	pinned, err := h.discService.TogglePin(id, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	message := "Discussion unpinned"
	if pinned {
		message = "Discussion pinned"
	}
	return c.JSON(models.SuccessResponse(fiber.Map{"is_pinned": pinned}, message))
}

func (h *DiscussionHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid discussion id"))
	}

	if err := h.discService.Delete(id, currentUserID(c)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Discussion deleted"))
}

func (h *DiscussionHandler) AddComment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid discussion id"))
	}

	var req models.CommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	comment, err := h.discService.AddComment(id, currentUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(comment, "Comment added"))
}

func (h *DiscussionHandler) GetComments(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid discussion id"))
	}

	comments, err := h.discService.GetComments(id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(comments, ""))
}

func (h *DiscussionHandler) DeleteComment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid comment id"))
	}

	if err := h.discService.DeleteComment(id, currentUserID(c)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Comment deleted"))
}

func (h *DiscussionHandler) Report(c *fiber.Ctx) error {
	var req models.ReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	report, err := h.discService.Report(currentUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(report, "Report submitted"))
}

func (h *DiscussionHandler) GetReports(c *fiber.Ctx) error {
	reports, err := h.discService.GetReports(currentUserID(c), c.Query("status"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(reports, ""))
}

func (h *DiscussionHandler) ResolveReport(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid report id"))
	}

	var req models.ResolveReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	if err := h.discService.ResolveReport(id, currentUserID(c), req.Status); err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Report updated"))
}
