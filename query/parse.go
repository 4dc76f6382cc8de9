package query

import "strings"

// ParseCondition parses a compact filter expression such as "price>500"
// into a Comparison. The input is scanned for each operator in priority
// order; the first operator substring found splits it into column and
// operand, and both sides are trimmed of surrounding whitespace.
func ParseCondition(input string) (*Comparison, error) {
	if strings.TrimSpace(input) == "" {
		return nil, NewValidationError("filter condition cannot be empty")
	}

	for _, op := range operators {
		column, operand, ok := splitExpression(input, string(op))
		if !ok {
			continue
		}
		if column == "" {
			return nil, NewValidationError("column name cannot be empty")
		}
		if operand == "" {
			return nil, NewValidationError("comparison value cannot be empty")
		}
		return NewComparison(column, op, operand)
	}

	return nil, NewValidationError("invalid condition format %q: expected <column><op><value>, e.g. \"price>500\"", input)
}

// ParseAggregation parses an aggregation expression such as "price=avg"
// into an AggregationRequest.
func ParseAggregation(input string) (*AggregationRequest, error) {
	column, kind, err := splitAssignment(input, "aggregation", "price=avg")
	if err != nil {
		return nil, err
	}
	if kind == "" {
		return nil, NewValidationError("aggregation kind cannot be empty")
	}
	return NewAggregationRequest(column, kind)
}

// ParseSort parses a sort expression such as "price=desc" into a SortSpec.
func ParseSort(input string) (*SortSpec, error) {
	column, direction, err := splitAssignment(input, "sort", "price=desc")
	if err != nil {
		return nil, err
	}
	if direction == "" {
		return nil, NewValidationError("sort direction cannot be empty")
	}
	return NewSortSpec(column, direction)
}

// splitAssignment handles the common shape of the aggregation and sort
// grammars: split on the first "=", trim both sides, require a non-empty
// column. The right side is validated by the caller so the error can name
// what was missing.
func splitAssignment(input, what, example string) (column, value string, err error) {
	if strings.TrimSpace(input) == "" {
		return "", "", NewValidationError("%s expression cannot be empty", what)
	}
	column, value, ok := splitExpression(input, "=")
	if !ok {
		return "", "", NewValidationError("invalid %s format %q: expected <column>=<value>, e.g. %q", what, input, example)
	}
	if column == "" {
		return "", "", NewValidationError("column name cannot be empty")
	}
	return column, value, nil
}

// splitExpression splits input on the first occurrence of delim and trims
// surrounding whitespace from both halves.
func splitExpression(input, delim string) (left, right string, ok bool) {
	idx := strings.Index(input, delim)
	if idx < 0 {
		return "", "", false
	}
	left = strings.TrimSpace(input[:idx])
	right = strings.TrimSpace(input[idx+len(delim):])
	return left, right, true
}
