// Package reader loads comma-separated text files into query datasets.
//
// It owns the byte-level concerns: opening the file, checking the text
// encoding, and CSV framing (including quoted fields with embedded
// commas). Structural validation of the decoded table is delegated to the
// query package.
package reader

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fobuzzz/workmate/query"
)

// Load reads the CSV file at path into a fully-materialized dataset.
//
// The first row is the header row. Returns a not-found error when the file
// does not exist, a decoding error when the bytes are not UTF-8 text or
// the CSV framing is malformed, and a validation error when the table
// fails the header heuristics or contains no data rows.
func Load(path string) (*query.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, query.NewNotFoundError("file not found: %s", path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	if !utf8.Valid(data) {
		return nil, query.NewDecodingError("file %s is not valid UTF-8 text", path)
	}

	// The header heuristics apply to the raw first line, before CSV parsing.
	firstLine, _, _ := strings.Cut(string(data), "\n")
	if err := query.SniffHeader(strings.TrimRight(firstLine, "\r")); err != nil {
		return nil, err
	}

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // rows may be shorter than the header; gaps become empty cells
	rows, err := r.ReadAll()
	if err != nil {
		return nil, query.NewDecodingError("malformed CSV in %s: %v", path, err)
	}
	if len(rows) == 0 {
		return nil, query.NewValidationError("input file is empty or contains no data")
	}

	return query.NewDataset(rows[0], rows[1:])
}
