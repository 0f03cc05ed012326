// Package database handles the optional database connection and schema
// inspection.
//
// It wraps GORM to configure MySQL or SQLite connections from the
// application's configuration. The database is only used for the backfill
// run journal; every caller must keep working when Connect fails.
//
// # Schema Inspection
//
// TableColumns reads a table's columns (SHOW COLUMNS on MySQL, PRAGMA
// table_info on SQLite). MissingColumns diffs them against the names the
// journal writes.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Optional database connection failed", zap.Error(err))
//	}
//
//	columns, err := database.TableColumns(db, "backfill_runs")
package database
