package output

import (
	"bufio"
	"fmt"
	"io"

	"github.com/vegasq/surveyq/internal/report"
)

// NoData is printed for a group whose aggregate has no value.
const NoData = "no data"

// TextFormatter prints the report as plain console text
type TextFormatter struct {
	writer io.Writer
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(w io.Writer) *TextFormatter {
	return &TextFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TextFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format writes every section under its numbered heading, separated by a
// blank line. A scalar with no value prints only its heading.
func (t *TextFormatter) Format(r *report.Report) error {
	bw := bufio.NewWriter(t.writer)
	for i, s := range r.Sections {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		fmt.Fprintf(bw, "%s. %s:\n", s.ID, s.Title)

		switch s.Kind {
		case report.KindRecords:
			for _, rec := range s.Records {
				fmt.Fprintln(bw, rec)
			}
		case report.KindLines:
			for _, line := range s.Lines {
				fmt.Fprintln(bw, line)
			}
		case report.KindScalar:
			if !s.Absent {
				fmt.Fprintf(bw, "%s: %s\n", s.Label, formatScalar(s.Value))
			}
		case report.KindGroups:
			for _, e := range s.Entries {
				writeEntry(bw, e, "")
			}
		case report.KindNested:
			for _, outer := range s.Entries {
				fmt.Fprintf(bw, "%s:\n", outer.Key)
				for _, inner := range outer.Entries {
					writeEntry(bw, inner, "  ")
				}
			}
		default:
			return fmt.Errorf("section %s: unknown kind %q", s.ID, s.Kind)
		}
	}
	return bw.Flush()
}

func writeEntry(w io.Writer, e report.Entry, indent string) {
	switch {
	case e.Records != nil:
		fmt.Fprintf(w, "%s%s:\n", indent, e.Key)
		for _, rec := range e.Records {
			fmt.Fprintf(w, "%s%s\n", indent, rec)
		}
	case e.Absent:
		fmt.Fprintf(w, "%s%s: %s\n", indent, e.Key, NoData)
	default:
		fmt.Fprintf(w, "%s%s: %s\n", indent, e.Key, formatScalar(e.Value))
	}
}
