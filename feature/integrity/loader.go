package integrity

import (
	"thumbnail-manager/core/storage"
	"thumbnail-manager/feature/thumbnail"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
}

// NewFeature creates a new integrity feature. db may be nil.
func NewFeature(client storage.Client, bucket string, cfg thumbnail.Config, db *gorm.DB, logger *zap.Logger) *Feature {
	svc := NewService(client, bucket, cfg, db, logger)
	return &Feature{handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "integrity"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
