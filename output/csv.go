package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/surveyq/internal/report"
	"github.com/vegasq/surveyq/record"
)

// csvHeader names the columns every CSV row carries. A row fills the
// record columns when it describes a person and the value column otherwise.
var csvHeader = []string{
	"section", "title", "group", "subgroup", "value",
	"job", "salary", "id", "city", "year", "age",
}

// CSVFormatter outputs the report as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes the header followed by one row per record, line, scalar
// or group value. Absent values leave the value column empty.
func (c *CSVFormatter) Format(r *report.Report) error {
	csvWriter := csv.NewWriter(c.writer)

	if err := csvWriter.Write(csvHeader); err != nil {
		return err
	}

	for _, s := range r.Sections {
		for _, row := range sectionRows(s) {
			for i := range row {
				row[i] = formatValue(row[i])
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}

func sectionRows(s report.Section) [][]string {
	var rows [][]string
	valueRow := func(group, subgroup, value string) {
		rows = append(rows, []string{s.ID, s.Title, group, subgroup, value, "", "", "", "", "", ""})
	}
	recordRow := func(group string, p record.Record) {
		rows = append(rows, append([]string{s.ID, s.Title, group, "", ""}, recordCells(p)...))
	}

	switch s.Kind {
	case report.KindRecords:
		for _, p := range s.Records {
			recordRow("", p)
		}
	case report.KindLines:
		for _, line := range s.Lines {
			valueRow("", "", line)
		}
	case report.KindScalar:
		valueRow("", "", formatScalar(s.Value))
	case report.KindGroups:
		for _, e := range s.Entries {
			if e.Records != nil {
				for _, p := range e.Records {
					recordRow(e.Key, p)
				}
				continue
			}
			valueRow(e.Key, "", formatScalar(e.Value))
		}
	case report.KindNested:
		for _, outer := range s.Entries {
			for _, inner := range outer.Entries {
				valueRow(outer.Key, inner.Key, formatScalar(inner.Value))
			}
		}
	}
	return rows
}

// formatValue sanitizes a cell against CSV injection by prefixing
// characters that could trigger formula execution in spreadsheet
// applications.
func formatValue(val string) string {
	if len(val) > 0 {
		firstChar := val[0]
		if firstChar == '=' || firstChar == '+' || firstChar == '-' || firstChar == '@' || firstChar == '\t' || firstChar == '\r' || firstChar == '\n' || firstChar == '|' {
			return "'" + strings.ReplaceAll(val, "'", "''")
		}
	}
	return val
}
