// Package config provides configuration management for the thumbnail service.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file. Defaults come from `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Storage: S3/MinIO credentials and bucket
//   - Log: Logging level and format
//   - Database: optional run journal connection
//   - Thumbnail: root prefix, size limit, encoder quality
//   - Backfill: batch size, inter-batch delay, dry-run sample size
//   - Delegate: remote renderer (Lambda function or HTTP endpoint)
//
// Environment names are the upper-cased keys with dots replaced by
// underscores (STORAGE_BUCKET, BACKFILL_BATCH_SIZE). BUCKET_NAME and
// THUMBNAIL_FUNCTION_NAME are accepted as fallbacks.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
