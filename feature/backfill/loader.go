package backfill

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the backfill feature around an existing service.
func NewFeature(svc *Service) *Feature {
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "backfill"
}

// IsEnabled reports whether a bucket is configured.
func (f *Feature) IsEnabled() bool {
	return f.service.bucket != ""
}

// Load migrates the journal and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.service.journal.Migrate(); err != nil {
		f.service.logger.Warn("Failed to migrate backfill journal", zap.Error(err))
	}
	f.handler.RegisterRoutes(app)
	return nil
}
