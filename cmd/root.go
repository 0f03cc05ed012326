package cmd

import (
	"fmt"
	"os"

	"thumbnail-manager/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "thumbnail-manager",
	Short: "Thumbnail Manager Service",
	Long: `Thumbnail Manager keeps fixed-size WebP derivatives of user images in sync
with the originals stored in an S3-compatible bucket.
It handles upload notifications, serves an HTTP API and backfills missing derivatives.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		if l, logErr := logger.Console(); logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}
