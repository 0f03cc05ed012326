package thumbnail

import (
	"errors"

	"thumbnail-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for derivative generation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the thumbnail routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/thumbnails")
	group.Post("/events", h.HandleEvent)
	group.Post("/process", h.HandleProcess)
	group.Get("/variants", h.HandleVariants)
}

// HandleEvent processes a storage notification.
// @Summary Process Storage Notification
// @Description Generates derivatives for every record of an S3-style "object created" notification. Records are processed independently.
// @Tags thumbnails
// @Accept json
// @Produce json
// @Success 200 {object} thumbnail.EventSummary "Event Summary"
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /thumbnails/events [post]
func (h *Handler) HandleEvent(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var n Notification
	if err := c.BodyParser(&n); err != nil {
		l.Warn("Invalid notification body", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid notification body"})
	}

	l.Info("Received notification", zap.Int("records", len(n.Records)))
	return c.JSON(h.service.HandleNotification(c.Context(), n))
}

// HandleProcess processes one original in the configured bucket.
// @Summary Process Original
// @Description Generates all derivatives of a single original key.
// @Tags thumbnails
// @Produce json
// @Param key query string true "Original object key"
// @Success 200 {object} thumbnail.Result "Processing Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} thumbnail.Result "Processing Failed"
// @Router /thumbnails/process [post]
func (h *Handler) HandleProcess(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	key := c.Query("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "key is required"})
	}

	res, err := h.service.ProcessOriginal(c.Context(), key)
	if err != nil {
		l.Error("Processing failed", zap.String("key", key), zap.Error(err))
		status := fiber.StatusInternalServerError
		if ErrInvalidImage.Has(err) {
			status = fiber.StatusUnprocessableEntity
		} else if errors.Is(err, ErrNoRenderer) {
			status = fiber.StatusServiceUnavailable
		}
		return c.Status(status).JSON(res)
	}

	return c.JSON(res)
}

// HandleVariants lists the derivative variants.
// @Summary List Variants
// @Description Returns the derivative size table and, when key is given, the derivative keys of that original.
// @Tags thumbnails
// @Produce json
// @Param key query string false "Original object key"
// @Success 200 {object} thumbnail.VariantReport "Variant Report"
// @Router /thumbnails/variants [get]
func (h *Handler) HandleVariants(c *fiber.Ctx) error {
	return c.JSON(h.service.Describe(c.Query("key")))
}
