package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"thumbnail-manager/core/storage"
	"thumbnail-manager/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the image storage",
	Long:  `Checks that the bucket holds the root prefix and that the backfill journal schema is current.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		return runIntegrityChecks(cmd, true, true)
	},
}

// structureCmd represents the integrity structure command
var structureCmd = &cobra.Command{
	Use:   "structure",
	Short: "Check and fix the bucket structure",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, true, false)
	},
}

// journalCmd represents the integrity journal command
var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Check the backfill journal table schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd, false, true)
	},
}

// derivativesCmd checks the full derivative set of one original.
var derivativesCmd = &cobra.Command{
	Use:   "derivatives <key>",
	Short: "Report per-variant presence for one original",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, logg, err := newIntegrityService()
		if err != nil {
			return err
		}
		defer logg.Sync()

		report, err := svc.CheckDerivatives(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("derivatives check failed: %w", err)
		}
		if !report.OriginalPresent {
			logg.Warn("Original not found", zap.String("key", report.Key))
		}
		if report.Complete {
			logg.Info("Derivative set is complete", zap.String("key", report.Key))
		} else {
			logg.Warn("Missing derivatives detected", zap.String("key", report.Key), zap.Strings("missing", report.Missing))
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	},
}

func init() {
	RootCmd.AddCommand(integrityCmd)
	integrityCmd.AddCommand(structureCmd, journalCmd, derivativesCmd)

	structureCmd.Flags().BoolVar(&fixFlag, "fix", false, "Create the missing root prefix")
}

func newIntegrityService() (*integrity.Service, *zap.Logger, error) {
	cfg, logg, err := loadRuntime()
	if err != nil {
		return nil, nil, err
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	db := openJournalDB(cfg.Database, logg)
	return integrity.NewService(store, cfg.Storage.Bucket, cfg.Thumbnail, db, logg), logg, nil
}

func runIntegrityChecks(cmd *cobra.Command, runStructure, runJournal bool) error {
	svc, logg, err := newIntegrityService()
	if err != nil {
		return err
	}
	defer logg.Sync()
	ctx := cmd.Context()

	if runStructure {
		logg.Info("Checking bucket structure...")
		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}

		if len(missing) == 0 {
			logg.Info("Structure is intact.")
		} else {
			logg.Warn("Missing folders detected", zap.Strings("missing", missing))

			onlyStructure := !runJournal
			if onlyStructure && fixFlag {
				logg.Info("Fixing missing folders...")
				if err := svc.FixStructure(ctx, missing); err != nil {
					return fmt.Errorf("failed to fix structure: %w", err)
				}
				logg.Info("Structure fixed successfully.")
			} else if onlyStructure {
				logg.Info("Run with --fix to create missing folders.")
			}
		}
	}

	if runJournal {
		logg.Info("Checking backfill journal schema...")
		report, err := svc.CheckJournal()
		switch {
		case errors.Is(err, integrity.ErrNoDatabase):
			logg.Info("Journal database not configured, skipping.")
		case err != nil:
			logg.Error("Journal schema check failed", zap.Error(err))
		case report.Matched:
			logg.Info("Journal schema matches expected definition.", zap.String("table", report.Table))
		default:
			logg.Warn("Journal schema mismatches found",
				zap.String("table", report.Table),
				zap.String("status", report.Status),
				zap.Strings("missing_columns", report.MissingColumns),
			)
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
		}
	}
	return nil
}
