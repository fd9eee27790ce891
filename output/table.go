package output

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"

	"github.com/vegasq/surveyq/internal/report"
	"github.com/vegasq/surveyq/record"
)

var recordColumns = []string{"job", "salary", "id", "city", "year", "age"}

// TableFormatter renders each section as an ASCII table under an
// underlined heading
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format writes one table per section
func (t *TableFormatter) Format(r *report.Report) error {
	bw := bufio.NewWriter(t.writer)
	for i, s := range r.Sections {
		if i > 0 {
			fmt.Fprintln(bw)
		}
		heading := s.ID + ". " + s.Title
		fmt.Fprintln(bw, heading)
		fmt.Fprintln(bw, strings.Repeat("=", runewidth.StringWidth(heading)))

		header, rows, err := tableRows(s)
		if err != nil {
			return err
		}
		table := tablewriter.NewWriter(bw)
		table.SetAutoFormatHeaders(false)
		table.SetAutoWrapText(false)
		table.SetHeader(header)
		for _, row := range rows {
			table.Append(row)
		}
		table.Render()
	}
	return bw.Flush()
}

func tableRows(s report.Section) ([]string, [][]string, error) {
	var rows [][]string
	switch s.Kind {
	case report.KindRecords:
		for _, p := range s.Records {
			rows = append(rows, recordCells(p))
		}
		return recordColumns, rows, nil

	case report.KindLines:
		for _, line := range s.Lines {
			rows = append(rows, []string{line})
		}
		return []string{"value"}, rows, nil

	case report.KindScalar:
		value := formatScalar(s.Value)
		if s.Absent {
			value = NoData
		}
		return []string{strings.ToLower(s.Label)}, [][]string{{value}}, nil

	case report.KindGroups:
		if hasRecords(s.Entries) {
			for _, e := range s.Entries {
				for _, p := range e.Records {
					rows = append(rows, append([]string{e.Key}, recordCells(p)...))
				}
			}
			return append([]string{"group"}, recordColumns...), rows, nil
		}
		for _, e := range s.Entries {
			value := formatScalar(e.Value)
			if e.Absent {
				value = NoData
			}
			rows = append(rows, []string{e.Key, value})
		}
		return []string{"group", "value"}, rows, nil

	case report.KindNested:
		for _, outer := range s.Entries {
			for _, inner := range outer.Entries {
				rows = append(rows, []string{outer.Key, inner.Key, formatScalar(inner.Value)})
			}
		}
		return []string{"group", "subgroup", "value"}, rows, nil
	}
	return nil, nil, fmt.Errorf("section %s: unknown kind %q", s.ID, s.Kind)
}

func hasRecords(entries []report.Entry) bool {
	for _, e := range entries {
		if e.Records != nil {
			return true
		}
	}
	return false
}

func recordCells(p record.Record) []string {
	return []string{
		p.Job,
		strconv.Itoa(p.Salary),
		strconv.Itoa(p.ID),
		p.City,
		strconv.Itoa(p.Year),
		strconv.Itoa(p.Age),
	}
}
