package query

import "sort"

// Sort returns rows ordered by the spec's column without modifying the
// input. Empty input returns empty output without validating the column;
// for non-empty input the column must exist in the first row (rows are
// assumed homogeneous).
//
// Sorting is stable in both directions: rows with equal keys keep their
// original relative order. The comparator uses strict inequalities, so
// descending is not a naive reversal that would flip tie order.
func Sort(rows []map[string]string, spec *SortSpec) ([]map[string]string, error) {
	if len(rows) == 0 {
		return []map[string]string{}, nil
	}

	if _, exists := rows[0][spec.Column]; !exists {
		return nil, NewValidationError("column %q not found", spec.Column)
	}

	sorted := make([]map[string]string, len(rows))
	copy(sorted, rows)

	sort.SliceStable(sorted, func(i, j int) bool {
		cmp := compareCells(sorted[i][spec.Column], sorted[j][spec.Column])
		if spec.Descending {
			return cmp > 0
		}
		return cmp < 0
	})

	return sorted, nil
}

// compareCells orders two raw cells using the shared numeric-or-text rule:
// values that both parse as numbers compare numerically, text compares
// lexicographically, and numbers order before text. A column mixing the
// two therefore gets a mixed numeric/lexicographic ordering. That is a
// known limitation of best-effort typing, not something the sort hides.
func compareCells(a, b string) int {
	aNum, aIsNum := toNumber(a)
	bNum, bIsNum := toNumber(b)

	switch {
	case aIsNum && bIsNum:
		if aNum < bNum {
			return -1
		}
		if aNum > bNum {
			return 1
		}
		return 0
	case aIsNum:
		return -1
	case bIsNum:
		return 1
	}

	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
