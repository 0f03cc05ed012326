package backfill

import (
	"errors"

	"thumbnail-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for backfill runs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the backfill routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/backfill")
	group.Post("/", h.HandleRun)
	group.Get("/runs", h.HandleRuns)
}

// HandleRun runs a backfill.
// @Summary Run Backfill
// @Description Scans the bucket for originals without derivatives and generates them in batches. With dryRun only the count and a sample are returned.
// @Tags backfill
// @Accept json
// @Produce json
// @Param options body backfill.Options false "Run options"
// @Success 200 {object} backfill.Result "Run Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 503 {object} map[string]string "No Renderer"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /backfill [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var opts Options
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&opts); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid options body"})
		}
	}
	if opts.BatchSize < 0 || opts.MaxImages < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "batchSize and maxImages must not be negative"})
	}

	l.Info("Starting backfill",
		zap.Bool("dry_run", opts.DryRun),
		zap.Int("batch_size", opts.BatchSize),
		zap.Int("max_images", opts.MaxImages),
	)

	res, err := h.service.Run(c.Context(), opts)
	switch {
	case errors.Is(err, ErrNoBucket):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrNoRenderer):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		l.Error("Backfill failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(res)
}

// HandleRuns lists recorded runs.
// @Summary List Backfill Runs
// @Description Returns the most recent recorded backfill runs. Empty when no database is configured.
// @Tags backfill
// @Produce json
// @Param limit query int false "Maximum runs to return"
// @Success 200 {array} backfill.BackfillRun "Runs"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /backfill/runs [get]
func (h *Handler) HandleRuns(c *fiber.Ctx) error {
	runs, err := h.service.journal.Recent(c.Context(), c.QueryInt("limit", 20))
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to list runs", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(runs)
}
