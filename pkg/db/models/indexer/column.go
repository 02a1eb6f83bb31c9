package indexer

import (
	"fmt"
	"strings"
)

// ColumnDef defines a single column for a table. This is the single
// source of truth for column definitions: pkg/families builds its SELECT
// column lists from it, and ColumnsToSchemaSQL renders it for CREATE TABLE
// statements.
type ColumnDef struct {
	// Name is the column name in the table.
	Name string

	// Type is the ClickHouse data type (e.g., "UInt64", "String", "DateTime64(6)").
	Type string

	// Codec is the optional compression codec (e.g., "ZSTD(1)", "Delta, ZSTD(3)").
	// Leave empty for no codec.
	Codec string
}

// SQL returns the full column definition for CREATE TABLE statements.
// Example: "address String CODEC(ZSTD(1))"
func (c ColumnDef) SQL() string {
	if c.Codec != "" {
		return fmt.Sprintf("%s %s CODEC(%s)", c.Name, c.Type, c.Codec)
	}
	return fmt.Sprintf("%s %s", c.Name, c.Type)
}

// Validate checks if the column definition is valid.
func (c ColumnDef) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("column name cannot be empty")
	}
	if c.Type == "" {
		return fmt.Errorf("column %s: type cannot be empty", c.Name)
	}
	return nil
}

// ColumnsToSchemaSQL converts a list of ColumnDef to a CREATE TABLE schema string.
func ColumnsToSchemaSQL(columns []ColumnDef) string {
	var parts []string
	for _, col := range columns {
		parts = append(parts, col.SQL())
	}
	return strings.Join(parts, ",\n\t\t\t")
}

// ColumnsToNameList extracts just the column names from a list of ColumnDef.
// Useful for INSERT statements.
func ColumnsToNameList(columns []ColumnDef) []string {
	var names []string
	for _, col := range columns {
		names = append(names, col.Name)
	}
	return names
}

// ValidateColumns validates all columns in a list.
func ValidateColumns(columns []ColumnDef) error {
	for _, col := range columns {
		if err := col.Validate(); err != nil {
			return err
		}
	}
	return nil
}
