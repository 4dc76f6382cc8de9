package query

import (
	"fmt"
	"strconv"
	"strings"
)

// toNumber reports whether a raw cell parses as a floating-point number.
// It is the single coercion rule shared by the comparator, the sort key
// and the header heuristics, so all three agree on what counts as numeric.
func toNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Evaluate reports whether row satisfies the comparison. A row that lacks
// the comparison's column never matches. When both the cell and the
// operand parse as numbers the comparison is numeric; otherwise both sides
// compare as strings in their original textual form.
//
// The operator was validated at construction; an unrecognized operator
// here is an internal-consistency failure and surfaces as a generic error.
func (c *Comparison) Evaluate(row map[string]string) (bool, error) {
	cell, exists := row[c.Column]
	if !exists {
		return false, nil
	}

	leftNum, leftIsNum := toNumber(cell)
	rightNum, rightIsNum := toNumber(c.Operand)
	if leftIsNum && rightIsNum {
		return compareNumbers(leftNum, c.Operator, rightNum)
	}

	return compareStrings(cell, c.Operator, c.Operand)
}

// compareNumbers compares two numbers. Equality is exact: the contract is
// float(a) OP float(b), not an epsilon comparison.
func compareNumbers(left float64, op Operator, right float64) (bool, error) {
	switch op {
	case OpEqual:
		return left == right, nil
	case OpNotEqual:
		return left != right, nil
	case OpLess:
		return left < right, nil
	case OpGreater:
		return left > right, nil
	case OpLessEqual:
		return left <= right, nil
	case OpGreaterEqual:
		return left >= right, nil
	default:
		return false, fmt.Errorf("unsupported comparison operator: %q", string(op))
	}
}

// compareStrings compares two strings (case-sensitive, lexicographic).
func compareStrings(left string, op Operator, right string) (bool, error) {
	switch op {
	case OpEqual:
		return left == right, nil
	case OpNotEqual:
		return left != right, nil
	case OpLess:
		return left < right, nil
	case OpGreater:
		return left > right, nil
	case OpLessEqual:
		return left <= right, nil
	case OpGreaterEqual:
		return left >= right, nil
	default:
		return false, fmt.Errorf("unsupported comparison operator: %q", string(op))
	}
}

// Filter returns the rows satisfying the comparison, in input order. The
// input slice is never modified.
func Filter(rows []map[string]string, c *Comparison) ([]map[string]string, error) {
	filtered := make([]map[string]string, 0)
	for _, row := range rows {
		match, err := c.Evaluate(row)
		if err != nil {
			return nil, err
		}
		if match {
			filtered = append(filtered, row)
		}
	}
	return filtered, nil
}
