// Package output renders a survey report in one of several formats.
//
// Currently supported formats:
//   - text: the console layout, one heading per section
//   - JSON Lines: one JSON object per section
//   - CSV: one row per result value with a header row
//   - table: aligned ASCII tables
//
// Example usage:
//
//	formatter, err := output.New("table", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(r); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/vegasq/surveyq/internal/report"
)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to render a report in the target format
// and SetOutput to change the output destination.
type Formatter interface {
	// Format writes the report in the formatter's specific format
	Format(r *report.Report) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Formats lists the names New accepts.
var Formats = []string{"text", "json", "jsonl", "csv", "table"}

// New returns the formatter registered under name.
func New(name string, w io.Writer) (Formatter, error) {
	switch strings.ToLower(name) {
	case "text", "":
		return NewTextFormatter(w), nil
	case "json", "jsonl":
		return NewJSONFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	case "table":
		return NewTableFormatter(w), nil
	}
	return nil, fmt.Errorf("unknown output format %q (want one of %s)", name, strings.Join(Formats, ", "))
}

// formatScalar renders a section or entry value the way the console report
// prints it. Averages keep a trailing ".0" when they are whole numbers.
func formatScalar(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return strconv.FormatFloat(val, 'f', -1, 64)
		}
		s := strconv.FormatFloat(val, 'f', -1, 64)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
		return s
	default:
		return fmt.Sprint(val)
	}
}
