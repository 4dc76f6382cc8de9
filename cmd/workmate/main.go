package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fobuzzz/workmate/output"
	"github.com/fobuzzz/workmate/query"
	"github.com/fobuzzz/workmate/reader"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code: 0 on success,
// non-zero on any validation, not-found, decoding or unexpected error.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("workmate", flag.ContinueOnError)
	flags.SetOutput(stderr)

	whereFlag := flags.String("where", "", "filter condition (e.g. \"price>500\")")
	aggregateFlag := flags.String("aggregate", "", "aggregation expression (e.g. \"price=avg\")")
	orderByFlag := flags.String("order-by", "", "sort expression (e.g. \"price=desc\")")
	formatFlag := flags.String("f", "table", "output format: table, csv, json")
	limitFlag := flags.Int("limit", 0, "limit number of result rows (0 = unlimited)")

	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: workmate [options] <file.csv>\n\n")
		fmt.Fprintf(stderr, "A tool to filter, aggregate and sort CSV files.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  workmate data.csv\n")
		fmt.Fprintf(stderr, "  workmate --where \"price>500\" data.csv\n")
		fmt.Fprintf(stderr, "  workmate --where \"brand=apple\" data.csv\n")
		fmt.Fprintf(stderr, "  workmate --aggregate \"price=avg\" data.csv\n")
		fmt.Fprintf(stderr, "  workmate --order-by \"price=desc\" data.csv\n")
		fmt.Fprintf(stderr, "  workmate -f csv --order-by \"price=desc\" data.csv\n")
	}

	if err := flags.Parse(args); err != nil {
		return 1
	}

	if *limitFlag < 0 {
		fmt.Fprintf(stderr, "Error: -limit must be non-negative, got %d\n", *limitFlag)
		return 1
	}

	if flags.NArg() < 1 {
		fmt.Fprintf(stderr, "Error: missing CSV file argument\n\n")
		flags.Usage()
		return 1
	}
	filename := flags.Arg(0)

	var formatter output.Formatter
	switch *formatFlag {
	case "table":
		formatter = output.NewTableFormatter(stdout)
	case "csv":
		formatter = output.NewCSVFormatter(stdout)
	case "json", "jsonl":
		formatter = output.NewJSONFormatter(stdout)
	default:
		fmt.Fprintf(stderr, "Error: unsupported format '%s'\n", *formatFlag)
		fmt.Fprintf(stderr, "Supported formats: table, csv, json\n")
		return 1
	}

	dataset, err := reader.Load(filename)
	if err != nil {
		return fail(stderr, err)
	}

	// Exactly one of filter / aggregate / sort-then-display-all executes
	// per invocation, in that priority.
	switch {
	case *whereFlag != "":
		condition, err := query.ParseCondition(*whereFlag)
		if err != nil {
			return fail(stderr, err)
		}
		rows, err := dataset.Filter(condition)
		if err != nil {
			return fail(stderr, err)
		}
		return render(stdout, stderr, formatter, dataset.Headers, rows, *limitFlag)

	case *aggregateFlag != "":
		request, err := query.ParseAggregation(*aggregateFlag)
		if err != nil {
			return fail(stderr, err)
		}
		result, err := dataset.Aggregate(request)
		if err != nil {
			return fail(stderr, err)
		}
		row := map[string]string{"result": formatNumber(result)}
		return render(stdout, stderr, formatter, []string{"result"}, []map[string]string{row}, 0)

	default:
		rows := dataset.Records
		if *orderByFlag != "" {
			spec, err := query.ParseSort(*orderByFlag)
			if err != nil {
				return fail(stderr, err)
			}
			sorted, err := dataset.Sort(spec)
			if err != nil {
				return fail(stderr, err)
			}
			rows = sorted
		}
		return render(stdout, stderr, formatter, dataset.Headers, rows, *limitFlag)
	}
}

// render writes rows through the formatter, applying the flag-based row
// limit. An empty result set prints a message instead of an empty table.
func render(stdout, stderr io.Writer, formatter output.Formatter, columns []string, rows []map[string]string, limit int) int {
	if len(rows) == 0 {
		fmt.Fprintln(stdout, "No results found.")
		return 0
	}

	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	if err := formatter.Format(columns, rows); err != nil {
		fmt.Fprintf(stderr, "Error formatting output: %v\n", err)
		return 1
	}
	return 0
}

// formatNumber renders an aggregation result: integral values print
// without a decimal point.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// fail prints a user-facing diagnostic for err and returns the exit code.
func fail(stderr io.Writer, err error) int {
	switch {
	case query.IsValidation(err):
		fmt.Fprintf(stderr, "Validation error: %v\n", err)
	case query.IsNotFound(err), query.IsDecoding(err):
		fmt.Fprintf(stderr, "Error: %v\n", err)
	default:
		fmt.Fprintf(stderr, "Unexpected error: %v\n", err)
	}
	return 1
}
