// Package output renders query results in various output formats.
//
// Currently supported formats:
//   - Table: bordered grid with a header row (human-oriented default)
//   - CSV: comma-separated values with header row
//   - JSON Lines: one JSON object per line
//
// Example usage:
//
//	formatter := output.NewTableFormatter(os.Stdout)
//	if err := formatter.Format(dataset.Headers, rows); err != nil {
//	    log.Fatal(err)
//	}
package output

import "io"

// Formatter defines the interface for output formatters.
//
// Column order is supplied by the caller, so output follows the dataset's
// header order rather than map iteration order. Rows missing a column
// render an empty cell.
type Formatter interface {
	// Format writes rows in the formatter's specific format using the
	// given column order
	Format(columns []string, rows []map[string]string) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// record projects a row onto the column order, filling gaps with empty
// strings.
func record(columns []string, row map[string]string) []string {
	cells := make([]string, len(columns))
	for i, col := range columns {
		cells[i] = row[col]
	}
	return cells
}
