// Package logger builds the zap loggers used by the server, the CLI and the
// Lambda handlers.
//
// Level is one of debug, info, warn or error; Format is json or console.
// WithRayID ties handler logs to the ray_id the request middleware assigns.
//
//	log, err := logger.New(&cfg.Log)
//	log.Info("Server started", zap.Int("port", cfg.Server.Port))
package logger
