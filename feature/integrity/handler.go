package integrity

import (
	"errors"

	"thumbnail-manager/core/logger"
	"thumbnail-manager/feature/integrity/checks"
	"thumbnail-manager/feature/thumbnail"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/integrity")
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/structure", h.HandleStructureCheck)
	group.Get("/derivatives", h.HandleDerivativesCheck)
	group.Get("/journal", h.HandleJournalCheck)
}

// HandleIntegrityCheck triggers the bucket-wide checks.
// @Summary Run All Integrity Checks
// @Description Performs the structure check and, when a database is configured, the journal schema check.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all integrity checks")

	report := make(map[string]interface{})

	if missing, err := h.service.CheckStructure(c.Context()); err != nil {
		report["structure"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["structure"] = map[string]interface{}{"status": "ok", "missing": missing}
	}

	if journal, err := h.service.CheckJournal(); err != nil {
		report["journal"] = map[string]interface{}{"status": "skipped", "error": err.Error()}
	} else {
		report["journal"] = journal
	}

	return c.JSON(report)
}

// HandleStructureCheck checks and optionally fixes structure.
// @Summary Check Structure
// @Description Checks that the bucket exists and holds the root prefix. Optionally creates the missing prefix.
// @Tags integrity
// @Accept json
// @Produce json
// @Param fix query boolean false "Fix missing folders"
// @Success 200 {object} map[string]interface{} "Structure Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/structure [get]
func (h *Handler) HandleStructureCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := c.Query("fix") == "true"

	missing, err := h.service.CheckStructure(c.Context())
	if err != nil {
		l.Error("Structure check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if len(missing) > 0 {
		l.Warn("Missing folders detected", zap.Strings("missing", missing))

		if fix {
			l.Info("Attempting to fix missing folders")
			if err := h.service.FixStructure(c.Context(), missing); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix structure",
					"details": err.Error(),
					"missing": missing,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  missing,
			})
		}
	}

	return c.JSON(fiber.Map{
		"status":  "checked",
		"missing": missing,
	})
}

// HandleDerivativesCheck reports per-variant presence for one original.
// @Summary Check Derivatives
// @Description Checks every derivative of one original key, not only the probe variant.
// @Tags integrity
// @Accept json
// @Produce json
// @Param key query string true "Original object key"
// @Success 200 {object} checks.DerivativeReport "Derivative Report"
// @Failure 400 {object} map[string]string "Invalid key"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /integrity/derivatives [get]
func (h *Handler) HandleDerivativesCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	key := c.Query("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "key is required"})
	}

	report, err := h.service.CheckDerivatives(c.Context(), key)
	if err != nil {
		var keyErr *thumbnail.KeyError
		if errors.As(err, &keyErr) || errors.Is(err, checks.ErrDerivativeKey) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Derivatives check failed", zap.String("key", key), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !report.Complete {
		l.Warn("Incomplete derivative set", zap.String("key", key), zap.Strings("missing", report.Missing))
	}
	return c.JSON(report)
}

// HandleJournalCheck checks the backfill journal schema.
// @Summary Check Journal Schema
// @Description Checks that the backfill journal table carries every expected column.
// @Tags integrity
// @Accept json
// @Produce json
// @Success 200 {object} checks.JournalReport "Journal Check Report"
// @Failure 503 {object} map[string]string "Database not configured"
// @Router /integrity/journal [get]
func (h *Handler) HandleJournalCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckJournal()
	if errors.Is(err, ErrNoDatabase) {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Journal check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}
