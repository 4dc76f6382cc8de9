package query

import (
	"strings"
	"unicode"
)

// Dataset is a fully-materialized table: header names in file order plus
// one record per data row. Every record carries the full header key set;
// gap cells are empty strings. A Dataset is read-only after construction:
// Filter and Sort produce new slices and never reorder Records in place.
type Dataset struct {
	Headers []string
	Records []map[string]string
}

// NewDataset builds a Dataset from a header row and raw data rows. Rows
// shorter than the header are padded with empty strings; cells beyond the
// header set are dropped.
func NewDataset(headers []string, rows [][]string) (*Dataset, error) {
	if len(headers) == 0 {
		return nil, NewValidationError("input file has no header row")
	}
	if len(rows) == 0 {
		return nil, NewValidationError("input file has no data rows")
	}

	records := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		record := make(map[string]string, len(headers))
		for i, name := range headers {
			if i < len(row) {
				record[name] = row[i]
			} else {
				record[name] = ""
			}
		}
		records = append(records, record)
	}

	return &Dataset{Headers: headers, Records: records}, nil
}

// SniffHeader applies the header heuristics to the raw first line of an
// input file: the line must be non-empty, contain at least one letter, and
// not consist entirely of numeric comma-separated fields (an all-numeric
// first row is data, not headers). This is a best-effort sniff, not header
// inference, and is part of the documented contract.
func SniffHeader(line string) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return NewValidationError("input file is empty or contains no data")
	}

	hasLetter := false
	for _, r := range trimmed {
		if unicode.IsLetter(r) {
			hasLetter = true
			break
		}
	}
	if !hasLetter {
		return NewValidationError("input file has no header row")
	}

	allNumeric := true
	for _, field := range strings.Split(trimmed, ",") {
		if _, ok := toNumber(field); !ok {
			allNumeric = false
			break
		}
	}
	if allNumeric {
		return NewValidationError("input file has no header row")
	}

	return nil
}

// ValidateColumn fails when name is not among the headers. The error
// enumerates every available header to guide correction.
func (d *Dataset) ValidateColumn(name string) error {
	for _, header := range d.Headers {
		if header == name {
			return nil
		}
	}
	return NewValidationError("column %q not found; available columns: %s", name, strings.Join(d.Headers, ", "))
}

// Filter returns the records satisfying the comparison, in dataset order.
func (d *Dataset) Filter(c *Comparison) ([]map[string]string, error) {
	if err := d.ValidateColumn(c.Column); err != nil {
		return nil, err
	}
	return Filter(d.Records, c)
}

// Aggregate reduces one column of the dataset to a scalar statistic. A
// dataset with zero records short-circuits to 0 before the column or the
// kind is consulted.
func (d *Dataset) Aggregate(req *AggregationRequest) (float64, error) {
	if len(d.Records) == 0 {
		return 0, nil
	}

	if err := d.ValidateColumn(req.Column); err != nil {
		return 0, err
	}

	values := make([]string, 0, len(d.Records))
	for _, record := range d.Records {
		values = append(values, record[req.Column])
	}
	return Aggregate(req.Kind, values)
}

// Sort returns the records ordered by the spec. Column existence is
// validated lazily inside Sort, against the first record.
func (d *Dataset) Sort(spec *SortSpec) ([]map[string]string, error) {
	return Sort(d.Records, spec)
}
