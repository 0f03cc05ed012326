package cmd

import (
	"fmt"

	"thumbnail-manager/core/config"
	"thumbnail-manager/core/database"
	"thumbnail-manager/core/logger"
	"thumbnail-manager/feature/backfill"
	"thumbnail-manager/feature/thumbnail"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// loadRuntime loads configuration and builds the logger every command starts with.
func loadRuntime() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}
	return cfg, logg, nil
}

// openJournalDB connects to the optional database. A disabled or unreachable
// database yields nil and the run journal stays off.
func openJournalDB(cfg database.Config, logg *zap.Logger) *gorm.DB {
	if !cfg.Enabled {
		return nil
	}
	db, err := database.Connect(cfg)
	if err != nil {
		logg.Warn("Optional database connection failed", zap.Error(err))
		return nil
	}
	logg.Info("Connected to journal database", zap.String("driver", cfg.Driver))
	return db
}

// localCapability is the result of the encoder self-test. One probe per
// process feeds both the thumbnail routes and backfill strategy selection.
type localCapability struct {
	enc thumbnail.Encoder
	err error
}

func probeLocal(probe func() (thumbnail.Encoder, error), logg *zap.Logger) localCapability {
	enc, err := probe()
	if err != nil {
		logg.Warn("Local renderer unavailable", zap.Error(err))
	}
	return localCapability{enc: enc, err: err}
}

// renderer returns nil when this binary cannot encode derivatives.
func (c localCapability) renderer(cfg thumbnail.Config) *thumbnail.Renderer {
	if c.err != nil {
		return nil
	}
	return thumbnail.NewRenderer(c.enc, cfg.Quality)
}

// capabilities hands the recorded probe result to backfill.SelectStrategy.
func (c localCapability) capabilities(delegate backfill.Invoker) backfill.Capabilities {
	return backfill.Capabilities{
		Probe:    func() (thumbnail.Encoder, error) { return c.enc, c.err },
		Delegate: delegate,
	}
}
