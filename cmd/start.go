package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"thumbnail-manager/core/loader"
	"thumbnail-manager/core/logger"
	"thumbnail-manager/core/metrics"
	"thumbnail-manager/core/middleware/auth"
	"thumbnail-manager/core/middleware/rayid"
	"thumbnail-manager/core/storage"
	"thumbnail-manager/feature/backfill"
	"thumbnail-manager/feature/integrity"
	"thumbnail-manager/feature/thumbnail"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "thumbnail-manager/docs/swagger"
)

// @title Thumbnail Manager API
// @version 1.0
// @description API for generating and backfilling image derivatives.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the thumbnail manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Configuration and logger
		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Optional journal database
		db := openJournalDB(cfg.Database, logg)

		// 3. Storage
		store, err := storage.Shared(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		// 4. Rendering capability
		local := probeLocal(thumbnail.ProbeLocal, logg)
		renderer := local.renderer(cfg.Thumbnail)
		strategy, err := backfill.SelectStrategy(store, cfg.Thumbnail, local.capabilities(cfg.Delegate.NewInvoker()), logg)
		if err != nil {
			logg.Warn("Backfill limited to dry runs", zap.Error(err))
			strategy = nil
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 5. Features
		mgr := loader.NewManager()
		mgr.Register(thumbnail.NewFeature(store, cfg.Storage.Bucket, renderer, cfg.Thumbnail, logg))
		backfillSvc := backfill.NewService(store, cfg.Storage.Bucket, cfg.Backfill, cfg.Thumbnail,
			strategy, backfill.NewJournal(db, logg), logg)
		mgr.Register(backfill.NewFeature(backfillSvc))
		mgr.Register(integrity.NewFeature(store, cfg.Storage.Bucket, cfg.Thumbnail, db, logg))

		// RayID must be first to trace everything
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Public routes
		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/health", func(c *fiber.Ctx) error {
			return c.JSON(fiber.Map{"status": "ok"})
		})
		app.Get("/metrics", metrics.Handler())

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			return fmt.Errorf("failed to load features: %w", err)
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		go func() {
			logg.Info("Starting server", zap.String("addr", cfg.Server.Addr()))
			if err := app.Listen(cfg.Server.Addr()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// Graceful shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
