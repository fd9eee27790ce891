package reader

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/vegasq/surveyq/record"
)

// LoadError reports a record source that could not be read completely.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// SchemaErrors returns every schema violation carried by the error.
func (e *LoadError) SchemaErrors() []*record.SchemaError {
	var found []*record.SchemaError

	var merr *multierror.Error
	if errors.As(e.Err, &merr) {
		for _, err := range merr.Errors {
			var se *record.SchemaError
			if errors.As(err, &se) {
				found = append(found, se)
			}
		}
		return found
	}

	var se *record.SchemaError
	if errors.As(e.Err, &se) {
		found = append(found, se)
	}
	return found
}
