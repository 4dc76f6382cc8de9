package query

import "strings"

// Operator represents one of the six comparison relations.
type Operator string

const (
	OpGreaterEqual Operator = ">="
	OpLessEqual    Operator = "<="
	OpNotEqual     Operator = "!="
	OpGreater      Operator = ">"
	OpLess         Operator = "<"
	OpEqual        Operator = "="
)

// operators lists the recognized operators in scan priority order.
// Composite operators come before their single-character prefixes so that
// ">=" is never misread as ">".
var operators = []Operator{OpGreaterEqual, OpLessEqual, OpNotEqual, OpGreater, OpLess, OpEqual}

// Comparison is a validated column/operator/operand triple used for row
// filtering. The operator is checked at construction, never at evaluation.
type Comparison struct {
	Column   string
	Operator Operator
	Operand  string
}

// NewComparison builds a Comparison, validating the column name and the
// operator.
func NewComparison(column string, op Operator, operand string) (*Comparison, error) {
	if strings.TrimSpace(column) == "" {
		return nil, NewValidationError("column name cannot be empty")
	}
	valid := false
	for _, known := range operators {
		if op == known {
			valid = true
			break
		}
	}
	if !valid {
		return nil, NewValidationError("unsupported operator: %q", string(op))
	}
	return &Comparison{Column: column, Operator: op, Operand: operand}, nil
}

// SortSpec is a validated column/direction pair for ordering. The direction
// is checked at construction; column existence is checked lazily against
// the data at sort time, since a SortSpec can be built before any data is
// loaded.
type SortSpec struct {
	Column     string
	Descending bool
}

// NewSortSpec builds a SortSpec. Direction is case-insensitive and must be
// "asc" or "desc".
func NewSortSpec(column, direction string) (*SortSpec, error) {
	switch strings.ToLower(direction) {
	case "asc":
		return &SortSpec{Column: column, Descending: false}, nil
	case "desc":
		return &SortSpec{Column: column, Descending: true}, nil
	default:
		return nil, NewValidationError("invalid sort direction %q: use \"asc\" or \"desc\"", direction)
	}
}

// Kind identifies one of the six supported aggregations.
type Kind string

const (
	KindAvg    Kind = "avg"
	KindMin    Kind = "min"
	KindMax    Kind = "max"
	KindMedian Kind = "median"
	KindSum    Kind = "sum"
	KindCount  Kind = "count"
)

// supportedKinds is the fixed order error messages enumerate the kinds in.
const supportedKinds = "avg, min, max, median, sum, count"

// AggregationRequest names the column to project and the statistic to
// reduce it to.
type AggregationRequest struct {
	Column string
	Kind   Kind
}

// NewAggregationRequest builds an AggregationRequest. The kind is
// case-insensitive and must be one of the six supported kinds.
func NewAggregationRequest(column, kind string) (*AggregationRequest, error) {
	k := Kind(strings.ToLower(kind))
	switch k {
	case KindAvg, KindMin, KindMax, KindMedian, KindSum, KindCount:
		return &AggregationRequest{Column: column, Kind: k}, nil
	default:
		return nil, NewValidationError("unsupported aggregation kind %q (supported: %s)", kind, supportedKinds)
	}
}
