package checks

import (
	"fmt"

	"thumbnail-manager/core/database"

	"gorm.io/gorm"
)

// JournalReport is the result of comparing the journal table with the
// columns the backfill journal writes.
type JournalReport struct {
	Table          string   `json:"table"`
	Matched        bool     `json:"matched"`
	MissingColumns []string `json:"missing_columns"`
	Status         string   `json:"status"` // "ok", "missing", "error"
	Errors         []string `json:"errors,omitempty"`
}

// CheckJournal verifies that table carries every expected column.
func CheckJournal(db *gorm.DB, table string, expected []string) (*JournalReport, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}

	report := &JournalReport{
		Table:          table,
		Matched:        true,
		MissingColumns: []string{},
		Status:         "ok",
	}

	actual, err := database.TableColumns(db, table)
	if err != nil {
		report.Errors = append(report.Errors, fmt.Sprintf("Failed to inspect table %s: %v", table, err))
		report.Matched = false
		report.Status = "error"
		return report, nil
	}
	if len(actual) == 0 {
		report.Matched = false
		report.Status = "missing"
		report.MissingColumns = append(report.MissingColumns, expected...)
		return report, nil
	}

	report.MissingColumns = database.MissingColumns(actual, expected)
	if len(report.MissingColumns) > 0 {
		report.Matched = false
		report.Status = "error"
	}
	return report, nil
}
