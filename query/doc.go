// Package query implements the filter/aggregate/sort engine for tabular
// text data.
//
// This package implements a compact expression grammar and the operations
// built on it:
//   - Filter conditions ("price>500") with the six comparison operators
//   - Aggregation requests ("price=avg") over a single column
//   - Sort specifications ("price=desc") with stable ordering
//   - Dataset validation (header heuristics, column existence)
//
// All three grammars share the same shape: split on a delimiter, trim both
// sides, require both sides non-empty. Comparisons and sort keys use
// numeric-first coercion: when both sides parse as floating-point numbers
// they compare numerically, otherwise they compare as text.
//
// # Basic Usage
//
// Parse and apply a filter condition:
//
//	condition, err := query.ParseCondition("price>500")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rows := []map[string]string{
//	    {"name": "iphone", "price": "999"},
//	    {"name": "redmi", "price": "199"},
//	}
//
//	matched, err := query.Filter(rows, condition)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Aggregation
//
// Reduce a column to a single statistic:
//
//	result, err := query.Aggregate(query.KindAvg, []string{"999", "199"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Aggregation is best-effort over dirty data: values that do not parse as
// numbers are ignored, and an input with no numeric values reduces to 0.
//
// # Sorting
//
// Order rows by one column:
//
//	spec, err := query.ParseSort("price=desc")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sorted, err := query.Sort(rows, spec)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Sorting is stable: rows with equal keys keep their original relative
// order in both directions.
//
// # Error Handling
//
// Recoverable failures are reported as *Error values carrying an ErrorCode
// that distinguishes bad user input (ErrValidation) from a missing input
// file (ErrNotFound) and an unreadable one (ErrDecoding). Use IsValidation,
// IsNotFound and IsDecoding to branch on the category.
package query
