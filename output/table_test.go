package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestTableFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewTableFormatter(&buf)

	rows := []map[string]string{
		{"name": "iphone", "brand": "apple", "price": "999"},
		{"name": "redmi", "brand": "xiaomi", "price": "199"},
	}

	if err := formatter.Format([]string{"name", "brand", "price"}, rows); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	got := buf.String()
	for _, want := range []string{"name", "brand", "price", "iphone", "apple", "999", "redmi", "xiaomi", "199"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}

	// Header order follows the given column order, not map iteration order.
	if strings.Index(got, "name") > strings.Index(got, "price") {
		t.Errorf("columns out of order:\n%s", got)
	}
}

func TestTableFormatter_MissingColumnRendersEmptyCell(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewTableFormatter(&buf)

	rows := []map[string]string{{"name": "galaxy"}}
	if err := formatter.Format([]string{"name", "price"}, rows); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), "galaxy") {
		t.Errorf("output missing row value:\n%s", buf.String())
	}
}

func TestTableFormatter_SetOutput(t *testing.T) {
	formatter := NewTableFormatter(&bytes.Buffer{})

	var buf bytes.Buffer
	formatter.SetOutput(&buf)

	if err := formatter.Format([]string{"result"}, []map[string]string{{"result": "674"}}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), "674") {
		t.Errorf("output missing value after SetOutput:\n%s", buf.String())
	}
}
