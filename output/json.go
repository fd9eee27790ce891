package output

import (
	"encoding/json"
	"io"

	"github.com/google/uuid"

	"github.com/vegasq/surveyq/internal/report"
)

// JSONFormatter outputs the report as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

type jsonSection struct {
	RunID  uuid.UUID `json:"run_id"`
	Source string    `json:"source,omitempty"`
	report.Section
}

// Format writes one JSON object per section, each tagged with the run ID
func (j *JSONFormatter) Format(r *report.Report) error {
	encoder := json.NewEncoder(j.writer)
	encoder.SetEscapeHTML(false)
	for _, s := range r.Sections {
		if err := encoder.Encode(jsonSection{RunID: r.RunID, Source: r.Source, Section: s}); err != nil {
			return err
		}
	}
	return nil
}
