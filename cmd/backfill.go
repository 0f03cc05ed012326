package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"thumbnail-manager/core/storage"
	"thumbnail-manager/feature/backfill"
	"thumbnail-manager/feature/thumbnail"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	backfillBucket       string
	backfillDryRun       bool
	backfillBatchSize    int
	backfillMaxImages    int
	backfillFunctionName string
	backfillDelegateURL  string
	backfillDelayMS      int
)

// backfillCmd generates derivatives for every original that lacks them.
var backfillCmd = &cobra.Command{
	Use:   "backfill",
	Short: "Generate missing derivatives for existing images",
	Long: `Scans the bucket for originals whose probe derivative is missing and
regenerates their derivative sets in sequential batches.

Examples:
  # List what would be processed
  backfill --bucket images --dry-run

  # Process at most 100 images, 5 at a time
  backfill --bucket images --batch-size 5 --max-images 100

  # Delegate rendering to a deployed function
  backfill --bucket images --function-name thumbnail-generator`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := loadRuntime()
		if err != nil {
			return err
		}
		defer logg.Sync()

		flags := cmd.Flags()
		if flags.Changed("bucket") {
			cfg.Storage.Bucket = backfillBucket
		}
		if flags.Changed("function-name") {
			cfg.Delegate.FunctionName = backfillFunctionName
		}
		if flags.Changed("delegate-url") {
			cfg.Delegate.URL = backfillDelegateURL
		}
		if flags.Changed("delay") {
			cfg.Backfill.DelayMS = backfillDelayMS
		}
		if cfg.Storage.Bucket == "" {
			return fmt.Errorf("%w: set --bucket or BUCKET_NAME", backfill.ErrNoBucket)
		}

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		// Dry runs never render, so they skip the capability probe
		var strategy backfill.Strategy
		if !backfillDryRun {
			local := probeLocal(thumbnail.ProbeLocal, logg)
			strategy, err = backfill.SelectStrategy(store, cfg.Thumbnail, local.capabilities(cfg.Delegate.NewInvoker()), logg)
			if err != nil {
				return err
			}
		}

		journal := backfill.NewJournal(openJournalDB(cfg.Database, logg), logg)
		if err := journal.Migrate(); err != nil {
			logg.Warn("Failed to migrate backfill journal", zap.Error(err))
		}

		svc := backfill.NewService(store, cfg.Storage.Bucket, cfg.Backfill, cfg.Thumbnail, strategy, journal, logg)
		res, err := svc.Run(cmd.Context(), backfill.Options{
			DryRun:    backfillDryRun,
			BatchSize: backfillBatchSize,
			MaxImages: backfillMaxImages,
		})
		if err != nil {
			return fmt.Errorf("backfill failed: %w", err)
		}

		printBackfillResult(os.Stdout, res)
		return nil
	},
}

// printBackfillResult writes the operator summary of a finished run.
func printBackfillResult(w io.Writer, res *backfill.Result) {
	rule := strings.Repeat("=", 60)

	if res.DryRun {
		fmt.Fprintf(w, "Found %d images needing thumbnails\n", res.TotalImages)
		for i, key := range res.SampleImages {
			fmt.Fprintf(w, "  %d. %s\n", i+1, key)
		}
		if more := res.TotalImages - len(res.SampleImages); more > 0 {
			fmt.Fprintf(w, "  ... and %d more\n", more)
		}
		fmt.Fprintf(w, "\n%s\nDRY RUN COMPLETE\n%s\n", rule, rule)
		fmt.Fprintf(w, "Total images:    %d\n", res.TotalImages)
		fmt.Fprintln(w, rule)
		return
	}

	fmt.Fprintf(w, "\n%s\nBACKFILL COMPLETE\n%s\n", rule, rule)
	fmt.Fprintf(w, "Total images:    %d\n", res.Stats.Total)
	fmt.Fprintf(w, "Successful:      %d\n", res.Stats.Successful)
	fmt.Fprintf(w, "Skipped:         %d\n", res.Stats.Skipped)
	fmt.Fprintf(w, "Failed:          %d\n", res.Stats.Failed)
	if res.Mode != "" {
		fmt.Fprintf(w, "Mode:            %s\n", res.Mode)
	}
	if res.RunID != "" {
		fmt.Fprintf(w, "Run ID:          %s\n", res.RunID)
	}
	fmt.Fprintln(w, rule)
}

func init() {
	RootCmd.AddCommand(backfillCmd)

	f := backfillCmd.Flags()
	f.StringVar(&backfillBucket, "bucket", "", "Bucket name (or set STORAGE_BUCKET / BUCKET_NAME)")
	f.BoolVar(&backfillDryRun, "dry-run", false, "List images only, do not process")
	f.IntVar(&backfillBatchSize, "batch-size", 0, "Number of images to process concurrently (default from BACKFILL_BATCH_SIZE, 10)")
	f.IntVar(&backfillMaxImages, "max-images", 0, "Maximum number of images to process (0 means no limit)")
	f.StringVar(&backfillFunctionName, "function-name", "", "Lambda function used when local rendering is unavailable")
	f.StringVar(&backfillDelegateURL, "delegate-url", "", "Base URL of a server used when local rendering is unavailable")
	f.IntVar(&backfillDelayMS, "delay", 0, "Pause between batches in milliseconds (default from BACKFILL_DELAY_MS, 500)")
}
