package query

import (
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"
)

// Aggregate reduces a column's raw values to a single number according to
// kind.
//
// The numeric kinds (avg, min, max, median, sum) consider only values that
// parse as floating-point numbers; unparseable entries are ignored, not
// failed on, and an input with no numeric values reduces to 0. The count
// kind counts entries that are non-empty after trimming whitespace and
// does not require numeric parseability.
func Aggregate(kind Kind, values []string) (float64, error) {
	switch kind {
	case KindAvg:
		return reduceNumeric(values, stats.Mean)
	case KindMin:
		return reduceNumeric(values, stats.Min)
	case KindMax:
		return reduceNumeric(values, stats.Max)
	case KindMedian:
		return reduceNumeric(values, stats.Median)
	case KindSum:
		return reduceNumeric(values, stats.Sum)
	case KindCount:
		return countNonBlank(values), nil
	default:
		return 0, NewValidationError("unsupported aggregation kind %q (supported: %s)", string(kind), supportedKinds)
	}
}

// reduceNumeric applies reduce to the parseable values. Zero numeric
// values degrade to 0 rather than failing: the statistics are best-effort
// over dirty data.
func reduceNumeric(values []string, reduce func(stats.Float64Data) (float64, error)) (float64, error) {
	numeric := make([]float64, 0, len(values))
	for _, v := range values {
		if f, ok := toNumber(v); ok {
			numeric = append(numeric, f)
		}
	}

	if len(numeric) == 0 {
		return 0, nil
	}

	result, err := reduce(numeric)
	if err != nil {
		return 0, fmt.Errorf("reducing %d values: %w", len(numeric), err)
	}
	return result, nil
}

// countNonBlank counts values that contain something other than
// whitespace.
func countNonBlank(values []string) float64 {
	count := 0
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			count++
		}
	}
	return float64(count)
}
