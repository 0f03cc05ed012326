package cmd

import (
	"context"
	"fmt"

	"thumbnail-manager/core/storage"
	"thumbnail-manager/feature/backfill"
	"thumbnail-manager/feature/thumbnail"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var lambdaHandler string

// lambdaCmd runs this binary as a serverless function.
var lambdaCmd = &cobra.Command{
	Use:   "lambda",
	Short: "Run as an AWS Lambda function",
	Long: `Starts the Lambda runtime loop with one of two handlers:

  thumbnail  receives S3 object-created notifications and renders derivatives
  backfill   receives {"dryRun","batchSize","maxImages"} and runs a backfill`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		store, err := storage.Shared(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		local := probeLocal(thumbnail.ProbeLocal, logg)

		switch lambdaHandler {
		case "thumbnail":
			renderer := local.renderer(cfg.Thumbnail)
			if renderer == nil {
				return thumbnail.ErrNoRenderer
			}
			svc := thumbnail.NewService(store, cfg.Storage.Bucket, renderer, cfg.Thumbnail, logg)
			lambda.Start(func(ctx context.Context, event events.S3Event) (thumbnail.Response, error) {
				summary := svc.HandleNotification(ctx, event)
				logg.Info("Processed notification",
					zap.Int("total", summary.Total),
					zap.Int("successful", summary.Successful),
					zap.Int("failed", summary.Failed),
				)
				return thumbnail.NewResponse(summary)
			})

		case "backfill":
			// The function renders locally; delegating to itself would loop.
			var strategy backfill.Strategy
			if s, err := backfill.SelectStrategy(store, cfg.Thumbnail, local.capabilities(nil), logg); err != nil {
				logg.Warn("Backfill limited to dry runs", zap.Error(err))
			} else {
				strategy = s
			}
			journal := backfill.NewJournal(openJournalDB(cfg.Database, logg), logg)
			svc := backfill.NewService(store, cfg.Storage.Bucket, cfg.Backfill, cfg.Thumbnail, strategy, journal, logg)
			lambda.Start(func(ctx context.Context, opts backfill.Options) (backfill.InvocationResponse, error) {
				return svc.Invoke(ctx, opts), nil
			})

		default:
			return fmt.Errorf("unknown handler %q: want thumbnail or backfill", lambdaHandler)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(lambdaCmd)
	lambdaCmd.Flags().StringVar(&lambdaHandler, "handler", "thumbnail", "Handler to run (thumbnail|backfill)")
}
