package query

import (
	"testing"
)

func TestComparisonEvaluate_Numeric(t *testing.T) {
	tests := []struct {
		name    string
		column  string
		op      Operator
		operand string
		row     map[string]string
		want    bool
	}{
		{
			name:    "greater than matches",
			column:  "price",
			op:      OpGreater,
			operand: "500",
			row:     map[string]string{"price": "999"},
			want:    true,
		},
		{
			name:    "greater than does not match",
			column:  "price",
			op:      OpGreater,
			operand: "500",
			row:     map[string]string{"price": "199"},
			want:    false,
		},
		{
			name:    "zero-padded values compare numerically",
			column:  "price",
			op:      OpGreater,
			operand: "6",
			row:     map[string]string{"price": "007"},
			want:    true,
		},
		{
			name:    "numeric equality ignores formatting",
			column:  "price",
			op:      OpEqual,
			operand: "500.0",
			row:     map[string]string{"price": "500"},
			want:    true,
		},
		{
			name:    "less or equal on boundary",
			column:  "price",
			op:      OpLessEqual,
			operand: "199",
			row:     map[string]string{"price": "199"},
			want:    true,
		},
		{
			name:    "greater or equal on boundary",
			column:  "price",
			op:      OpGreaterEqual,
			operand: "199",
			row:     map[string]string{"price": "199"},
			want:    true,
		},
		{
			name:    "not equal",
			column:  "price",
			op:      OpNotEqual,
			operand: "199",
			row:     map[string]string{"price": "200"},
			want:    true,
		},
		{
			name:    "negative numbers",
			column:  "delta",
			op:      OpLess,
			operand: "0",
			row:     map[string]string{"delta": "-3.5"},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := NewComparison(tt.column, tt.op, tt.operand)
			if err != nil {
				t.Fatalf("NewComparison() error = %v", err)
			}
			got, err := cond.Evaluate(tt.row)
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComparisonEvaluate_StringFallback(t *testing.T) {
	tests := []struct {
		name    string
		column  string
		op      Operator
		operand string
		row     map[string]string
		want    bool
	}{
		{
			name:    "string equality",
			column:  "brand",
			op:      OpEqual,
			operand: "apple",
			row:     map[string]string{"brand": "apple"},
			want:    true,
		},
		{
			name:    "string equality is case-sensitive",
			column:  "brand",
			op:      OpEqual,
			operand: "Apple",
			row:     map[string]string{"brand": "apple"},
			want:    false,
		},
		{
			name:    "lexicographic ordering",
			column:  "brand",
			op:      OpLess,
			operand: "samsung",
			row:     map[string]string{"brand": "apple"},
			want:    true,
		},
		{
			name:    "numeric cell against non-numeric operand compares as text",
			column:  "price",
			op:      OpGreater,
			operand: "cheap",
			row:     map[string]string{"price": "999"},
			want:    false, // "999" < "cheap" lexicographically
		},
		{
			name:    "non-numeric cell against numeric operand compares as text",
			column:  "price",
			op:      OpGreater,
			operand: "500",
			row:     map[string]string{"price": "abc"},
			want:    true, // "abc" > "500" lexicographically
		},
		{
			name:    "string not equal",
			column:  "brand",
			op:      OpNotEqual,
			operand: "apple",
			row:     map[string]string{"brand": "xiaomi"},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := NewComparison(tt.column, tt.op, tt.operand)
			if err != nil {
				t.Fatalf("NewComparison() error = %v", err)
			}
			got, err := cond.Evaluate(tt.row)
			if err != nil {
				t.Fatalf("Evaluate() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComparisonEvaluate_MissingColumnNeverMatches(t *testing.T) {
	cond, err := NewComparison("rating", OpGreater, "4")
	if err != nil {
		t.Fatalf("NewComparison() error = %v", err)
	}

	match, err := cond.Evaluate(map[string]string{"price": "999"})
	if err != nil {
		t.Fatalf("Evaluate() error = %v", err)
	}
	if match {
		t.Error("Evaluate() = true for missing column, want false")
	}
}

func TestNewComparison_Validation(t *testing.T) {
	if _, err := NewComparison("", OpEqual, "x"); !IsValidation(err) {
		t.Errorf("NewComparison with empty column: error = %v, want validation error", err)
	}
	if _, err := NewComparison("price", Operator("~"), "x"); !IsValidation(err) {
		t.Errorf("NewComparison with bad operator: error = %v, want validation error", err)
	}
}

func TestFilter(t *testing.T) {
	rows := []map[string]string{
		{"name": "iphone", "brand": "apple", "price": "999"},
		{"name": "galaxy", "brand": "samsung", "price": "1199"},
		{"name": "redmi", "brand": "xiaomi", "price": "199"},
		{"name": "poco", "brand": "xiaomi", "price": "299"},
	}

	tests := []struct {
		name      string
		condition string
		wantNames []string
	}{
		{
			name:      "price above threshold keeps input order",
			condition: "price>500",
			wantNames: []string{"iphone", "galaxy"},
		},
		{
			name:      "brand equality",
			condition: "brand=xiaomi",
			wantNames: []string{"redmi", "poco"},
		},
		{
			name:      "no matches",
			condition: "price>5000",
			wantNames: []string{},
		},
		{
			name:      "not equal",
			condition: "brand!=xiaomi",
			wantNames: []string{"iphone", "galaxy"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cond, err := ParseCondition(tt.condition)
			if err != nil {
				t.Fatalf("ParseCondition(%q) error = %v", tt.condition, err)
			}

			filtered, err := Filter(rows, cond)
			if err != nil {
				t.Fatalf("Filter() error = %v", err)
			}

			if len(filtered) != len(tt.wantNames) {
				t.Fatalf("Filter() returned %d rows, want %d", len(filtered), len(tt.wantNames))
			}
			for i, want := range tt.wantNames {
				if got := filtered[i]["name"]; got != want {
					t.Errorf("row %d name = %q, want %q", i, got, want)
				}
			}
		})
	}

	if len(rows) != 4 {
		t.Errorf("input slice was modified: len = %d, want 4", len(rows))
	}
}
