package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/campusconnect/campus-events-backend/internal/apperror"
	"github.com/campusconnect/campus-events-backend/internal/models"
)

// respondError maps apperror categories to HTTP statuses and renders the
// standard envelope. Unknown errors become opaque 500s.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
		switch {
		case errors.Is(err, apperror.ErrNotFound):
			status = fiber.StatusNotFound
		case errors.Is(err, apperror.ErrUnauthorized):
			status = fiber.StatusForbidden
		case errors.Is(err, apperror.ErrConflict):
			status = fiber.StatusConflict
		case errors.Is(err, apperror.ErrValidation):
			status = fiber.StatusBadRequest
		case errors.Is(err, apperror.ErrExpired):
			status = fiber.StatusGone
		}
	}

	return c.Status(status).JSON(models.ErrorResponse(message))
}

func currentUserID(c *fiber.Ctx) uint {
	id, _ := c.Locals("userID").(uint)
	return id
}
