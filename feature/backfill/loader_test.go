package backfill

import (
	"testing"

	"thumbnail-manager/core/storage/mocks"
	"thumbnail-manager/feature/thumbnail"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	svc := NewService(new(mocks.Client), "test-bucket", DefaultConfig(), thumbnail.DefaultConfig(), nil, NewJournal(nil, zap.NewNop()), zap.NewNop())
	feature := NewFeature(svc)

	assert.Equal(t, "backfill", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))

	noBucket := NewFeature(NewService(new(mocks.Client), "", DefaultConfig(), thumbnail.DefaultConfig(), nil, nil, zap.NewNop()))
	assert.False(t, noBucket.IsEnabled())
}
