package database

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

var tableName = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Column is one live column, names and types lowercased.
type Column struct {
	Name       string
	Type       string
	PrimaryKey bool
}

// mysqlColumn is a SHOW COLUMNS row.
type mysqlColumn struct {
	Field   string
	Type    string
	Null    string
	Key     string
	Default *string
	Extra   string
}

// sqliteColumn is a PRAGMA table_info row.
type sqliteColumn struct {
	Cid        int
	Name       string
	Type       string
	Notnull    int
	DefaultVal *string `gorm:"column:dflt_value"`
	Pk         int
}

// TableColumns lists the columns of table. A missing table yields no columns
// on SQLite and an error on MySQL.
func TableColumns(db *gorm.DB, table string) ([]Column, error) {
	if !tableName.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}

	if db.Dialector.Name() == "sqlite" {
		var rows []sqliteColumn
		if err := db.Raw("PRAGMA table_info('" + table + "')").Scan(&rows).Error; err != nil {
			return nil, fmt.Errorf("inspect table %s: %w", table, err)
		}
		cols := make([]Column, 0, len(rows))
		for _, r := range rows {
			cols = append(cols, Column{Name: strings.ToLower(r.Name), Type: strings.ToLower(r.Type), PrimaryKey: r.Pk > 0})
		}
		return cols, nil
	}

	// SHOW COLUMNS keeps the exact MySQL type strings.
	var rows []mysqlColumn
	if err := db.Raw("SHOW COLUMNS FROM `" + table + "`").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("inspect table %s: %w", table, err)
	}
	cols := make([]Column, 0, len(rows))
	for _, r := range rows {
		cols = append(cols, Column{Name: strings.ToLower(r.Field), Type: strings.ToLower(r.Type), PrimaryKey: r.Key == "PRI"})
	}
	return cols, nil
}

// MissingColumns returns the names in want that cols lacks, in want's order.
func MissingColumns(cols []Column, want []string) []string {
	have := make(map[string]bool, len(cols))
	for _, c := range cols {
		have[c.Name] = true
	}
	missing := []string{}
	for _, name := range want {
		if !have[strings.ToLower(name)] {
			missing = append(missing, name)
		}
	}
	return missing
}
