package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusconnect/campus-events-backend/internal/models"
	"github.com/campusconnect/campus-events-backend/internal/service"
	"github.com/campusconnect/campus-events-backend/pkg/utils"
)

type PhotoHandler struct {
	photoService *service.PhotoService
	validator    *utils.Validator
}

func NewPhotoHandler(photoService *service.PhotoService, validator *utils.Validator) *PhotoHandler {
	return &PhotoHandler{
		photoService: photoService,
		validator:    validator,
	}
}

func (h *PhotoHandler) GenerateUploadURL(c *fiber.Ctx) error {
	contentType := c.Query("content_type", "image/jpeg")

	resp, err := h.photoService.GenerateUploadURL(contentType)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(resp, ""))
}

func (h *PhotoHandler) Save(c *fiber.Ctx) error {
	var req models.CreatePhotoRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}
	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	photo, err := h.photoService.SavePhoto(currentUserID(c), req)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(photo, "Photo saved"))
}

func (h *PhotoHandler) GetByEvent(c *fiber.Ctx) error {
	eventID, err := parseID(c, "eventId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid event id"))
	}

	photos, err := h.photoService.GetEventPhotos(eventID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(photos, ""))
}

func (h *PhotoHandler) ToggleLike(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid photo id"))
	}

	resp, err := h.photoService.ToggleLike(id, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	message := "Photo unliked"
	if resp.Liked {
		message = "Photo liked"
	}
	return c.JSON(models.SuccessResponse(resp, message))
}

func (h *PhotoHandler) HasLiked(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid photo id"))
	}

	liked, err := h.photoService.HasLiked(id, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"liked": liked}, ""))
}

func (h *PhotoHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid photo id"))
	}

	if err := h.photoService.Delete(id, currentUserID(c)); err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(nil, "Photo deleted"))
}
