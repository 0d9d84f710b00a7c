package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/campusconnect/campus-events-backend/internal/models"
	"github.com/campusconnect/campus-events-backend/internal/service"
)

type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

func (h *AnalyticsHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.analyticsService.Summary(currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(summary, ""))
}

func (h *AnalyticsHandler) Trends(c *fiber.Ctx) error {
	trends, err := h.analyticsService.Trends(currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(trends, ""))
}

func (h *AnalyticsHandler) CategoryStats(c *fiber.Ctx) error {
	stats, err := h.analyticsService.CategoryStats(currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(stats, ""))
}

func (h *AnalyticsHandler) AttendanceRates(c *fiber.Ctx) error {
	rates, err := h.analyticsService.AttendanceRates(currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(rates, ""))
}

func (h *AnalyticsHandler) PeakTimes(c *fiber.Ctx) error {
	peaks, err := h.analyticsService.PeakTimes(currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(models.SuccessResponse(peaks, ""))
}
