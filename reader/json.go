package reader

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/xeipuuv/gojsonschema"

	"github.com/vegasq/surveyq/record"
)

// personSchema describes the accepted JSON input: an array of person
// objects with all six fields present and non-null.
const personSchema = `{
  "type": "array",
  "items": {
    "type": "object",
    "required": ["job", "salary", "id", "city", "year", "age"],
    "properties": {
      "job":    {"type": "string"},
      "city":   {"type": "string"},
      "salary": {"$ref": "#/definitions/count"},
      "age":    {"$ref": "#/definitions/count"},
      "id":     {"$ref": "#/definitions/integer"},
      "year":   {"$ref": "#/definitions/integer"}
    }
  },
  "definitions": {
    "integer": {
      "anyOf": [
        {"type": "integer"},
        {"type": "string", "pattern": "^\\s*-?[0-9]+\\s*$"}
      ]
    },
    "count": {
      "anyOf": [
        {"type": "integer", "minimum": 0},
        {"type": "string", "pattern": "^\\s*[0-9]+\\s*$"}
      ]
    }
  }
}`

// rootContext is the name gojsonschema gives the top of the document.
const rootContext = "(root)"

var compiledSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(personSchema))
})

// jsonPerson is one raw array element. Values are looked up by exact key
// so the fields decoded are the ones the schema validated; keys that differ
// only in case are extra fields and ignored.
type jsonPerson map[string]json.RawMessage

func (p jsonPerson) toRecord(index int) (record.Record, error) {
	var r record.Record
	targets := map[record.Field]any{
		record.FieldJob:    &r.Job,
		record.FieldSalary: (*coercedInt)(&r.Salary),
		record.FieldID:     (*coercedInt)(&r.ID),
		record.FieldCity:   &r.City,
		record.FieldYear:   (*coercedInt)(&r.Year),
		record.FieldAge:    (*coercedInt)(&r.Age),
	}

	var merr *multierror.Error
	for _, f := range record.Fields {
		if err := json.Unmarshal(p[f.String()], targets[f]); err != nil {
			merr = multierror.Append(merr, &record.SchemaError{Index: index, Field: f.String(), Reason: err.Error()})
		}
	}
	return r, merr.ErrorOrNil()
}

// coercedInt decodes a JSON integer, an integral float or a string holding
// an integer. Values outside the range of int are rejected.
type coercedInt int

func (c *coercedInt) UnmarshalJSON(data []byte) error {
	text := strings.TrimSpace(string(data))
	if text == "null" {
		return errors.New("null is not an integer")
	}
	if unquoted, err := strconv.Unquote(text); err == nil {
		text = strings.TrimSpace(unquoted)
	}

	n, err := strconv.Atoi(text)
	if err == nil {
		*c = coercedInt(n)
		return nil
	}
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("%s is out of range", text)
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil || f != math.Trunc(f) {
		return fmt.Errorf("%s is not an integer", text)
	}
	// -math.MinInt is a power of two, so unlike math.MaxInt it converts to
	// float64 exactly.
	if f < math.MinInt || f >= -math.MinInt {
		return fmt.Errorf("%s is out of range", text)
	}
	*c = coercedInt(int(f))
	return nil
}

// DecodeJSON validates and decodes a JSON array of person objects.
//
// Validation runs over the whole document first; if any object is invalid
// the returned error aggregates one *record.SchemaError per violation and
// no records are returned.
func DecodeJSON(data []byte) (record.Collection, error) {
	schema, err := compiledSchema()
	if err != nil {
		return nil, fmt.Errorf("failed to compile record schema: %w", err)
	}

	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	if !result.Valid() {
		var merr *multierror.Error
		for _, re := range result.Errors() {
			merr = multierror.Append(merr, schemaErrorFrom(re))
		}
		return nil, merr.ErrorOrNil()
	}

	var rows []jsonPerson
	dec := json.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("failed to decode records: %w", err)
	}
	end := dec.InputOffset()
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode records: unexpected data after offset %d", end)
	}

	var merr *multierror.Error
	people := make(record.Collection, 0, len(rows))
	for i, row := range rows {
		r, err := row.toRecord(i)
		if err != nil {
			merr = multierror.Append(merr, err)
			continue
		}
		people = append(people, r)
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return people, nil
}

// schemaErrorFrom converts a validation failure into a SchemaError. The
// context path looks like "(root).3.salary": the first segment after the
// root is the record index.
func schemaErrorFrom(re gojsonschema.ResultError) *record.SchemaError {
	se := &record.SchemaError{Index: -1, Reason: re.Description()}

	var path []string
	if ctx := re.Context(); ctx != nil {
		path = strings.Split(ctx.String(), ".")
	}
	if len(path) > 0 && path[0] == rootContext {
		path = path[1:]
	}
	if len(path) > 0 {
		if i, err := strconv.Atoi(path[0]); err == nil {
			se.Index = i
			path = path[1:]
		}
	}
	se.Field = strings.Join(path, ".")

	if re.Type() == "required" {
		if property, ok := re.Details()["property"].(string); ok {
			se.Field = property
		}
	}
	if se.Field == "" {
		se.Field = rootContext
	}
	return se
}

// WriteJSON writes people to w as an indented JSON array that DecodeJSON
// accepts.
func WriteJSON(w io.Writer, people []record.Record) error {
	if people == nil {
		people = []record.Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(people); err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}
	return nil
}
