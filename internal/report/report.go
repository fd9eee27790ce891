// Package report runs the fixed sequence of survey queries and collects
// their results as report sections ready for an output formatter.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/vegasq/surveyq/record"
)

// Kind tells a formatter how to lay out a section.
type Kind string

const (
	KindRecords Kind = "records" // a list of records
	KindLines   Kind = "lines"   // a list of projected strings
	KindScalar  Kind = "scalar"  // one labelled value, possibly absent
	KindGroups  Kind = "groups"  // one entry per group key
	KindNested  Kind = "nested"  // outer groups holding inner entries
)

// Report is the rendered output of one run.
type Report struct {
	RunID     uuid.UUID `json:"run_id"`
	Source    string    `json:"source"`
	Generated time.Time `json:"generated"`
	Sections  []Section `json:"sections"`
}

// Section is the result of a single query.
type Section struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"`
	Kind    Kind            `json:"kind"`
	Label   string          `json:"label,omitempty"`
	Value   any             `json:"value,omitempty"`
	Absent  bool            `json:"absent,omitempty"`
	Lines   []string        `json:"lines,omitempty"`
	Records []record.Record `json:"records,omitempty"`
	Entries []Entry         `json:"entries,omitempty"`
}

// Entry is one group in a grouped section. A group carries either its
// member records, a scalar value, or nested entries.
type Entry struct {
	Key     string          `json:"key"`
	Value   any             `json:"value,omitempty"`
	Absent  bool            `json:"absent,omitempty"`
	Records []record.Record `json:"records,omitempty"`
	Entries []Entry         `json:"entries,omitempty"`
}
