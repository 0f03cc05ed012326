package thumbnail

import (
	"context"
	"image"
	"time"

	"thumbnail-manager/core/metrics"
	"thumbnail-manager/core/storage"

	"go.uber.org/zap"
)

// Generator renders and stores every variant of one original.
type Generator struct {
	client    storage.Client
	renderer  *Renderer
	variants  []Variant
	maxPixels int
	logger    *zap.Logger
}

// NewGenerator creates a generator for the standard variant set. cfg
// supplies the decode pixel limit.
func NewGenerator(client storage.Client, renderer *Renderer, cfg Config, logger *zap.Logger) *Generator {
	return &Generator{
		client:    client,
		renderer:  renderer,
		variants:  Variants,
		maxPixels: cfg.maxPixels(),
		logger:    logger,
	}
}

// GenerateAll decodes content once and writes one derivative per variant.
// A variant that fails is logged and left out of the returned keys; the
// others are still written. Only a decode failure aborts the whole set.
func (g *Generator) GenerateAll(ctx context.Context, bucket, originalKey string, content []byte) ([]string, error) {
	if g.renderer == nil {
		return nil, ErrNoRenderer
	}

	img, err := Decode(content, g.maxPixels)
	if err != nil {
		g.logger.Error("Failed to decode original", zap.String("key", originalKey), zap.Error(err))
		return nil, err
	}

	b := img.Bounds()
	g.logger.Debug("Decoded original",
		zap.String("key", originalKey),
		zap.Int("width", b.Dx()),
		zap.Int("height", b.Dy()),
	)

	keys := make([]string, 0, len(g.variants))
	for _, v := range g.variants {
		if err := ctx.Err(); err != nil {
			return keys, err
		}

		start := time.Now()
		key, err := g.generateOne(ctx, bucket, originalKey, img, v)
		metrics.RecordDerivative(v.Name, time.Since(start), err)
		if err != nil {
			g.logger.Error("Failed to generate derivative",
				zap.String("key", originalKey),
				zap.String("variant", v.Name),
				zap.Error(err),
			)
			continue
		}

		g.logger.Info("Uploaded derivative",
			zap.String("key", key),
			zap.Int("width", v.Width),
			zap.Int("height", v.Height),
		)
		keys = append(keys, key)
	}

	return keys, nil
}

func (g *Generator) generateOne(ctx context.Context, bucket, originalKey string, img image.Image, v Variant) (string, error) {
	data, err := g.renderer.Render(img, v.Width, v.Height)
	if err != nil {
		return "", err
	}

	key := DerivativeKey(originalKey, v.Name)
	if err := storage.PutBytes(ctx, g.client, bucket, key, data, ContentType, CacheControl); err != nil {
		return "", err
	}
	return key, nil
}
