package record

import "fmt"

// SchemaError reports a field that is missing, null or of the wrong kind.
//
// Index is the position of the offending record in its source, or -1 when
// the error is not tied to a particular record (for example an accessor
// requested for the wrong field kind).
type SchemaError struct {
	Index  int
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("record %d: field %q: %s", e.Index, e.Field, e.Reason)
	}
	return fmt.Sprintf("field %q: %s", e.Field, e.Reason)
}
