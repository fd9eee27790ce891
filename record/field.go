package record

import (
	"cmp"
	"fmt"
	"strings"
)

// Field names one of the record's columns.
type Field int

const (
	FieldJob Field = iota
	FieldSalary
	FieldID
	FieldCity
	FieldYear
	FieldAge
)

// Fields lists every field in declaration order.
var Fields = []Field{FieldJob, FieldSalary, FieldID, FieldCity, FieldYear, FieldAge}

var fieldNames = map[Field]string{
	FieldJob:    "job",
	FieldSalary: "salary",
	FieldID:     "id",
	FieldCity:   "city",
	FieldYear:   "year",
	FieldAge:    "age",
}

// String returns the column name used in JSON and parquet input.
func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return fmt.Sprintf("field(%d)", int(f))
}

// Numeric reports whether the field holds an integer.
func (f Field) Numeric() bool {
	switch f {
	case FieldSalary, FieldID, FieldYear, FieldAge:
		return true
	}
	return false
}

// ParseField resolves a column name (case-insensitive) to a Field.
func ParseField(name string) (Field, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, f := range Fields {
		if fieldNames[f] == want {
			return f, nil
		}
	}
	return 0, &SchemaError{Index: -1, Field: name, Reason: "unknown field"}
}

// IntField returns the accessor for a numeric field.
func IntField(f Field) (func(Record) int, error) {
	switch f {
	case FieldSalary:
		return Salary, nil
	case FieldID:
		return ID, nil
	case FieldYear:
		return Year, nil
	case FieldAge:
		return Age, nil
	case FieldJob, FieldCity:
		return nil, &SchemaError{Index: -1, Field: f.String(), Reason: "not a numeric field"}
	}
	return nil, &SchemaError{Index: -1, Field: f.String(), Reason: "unknown field"}
}

// TextField returns the accessor for a text field.
func TextField(f Field) (func(Record) string, error) {
	switch f {
	case FieldJob:
		return Job, nil
	case FieldCity:
		return City, nil
	case FieldSalary, FieldID, FieldYear, FieldAge:
		return nil, &SchemaError{Index: -1, Field: f.String(), Reason: "not a text field"}
	}
	return nil, &SchemaError{Index: -1, Field: f.String(), Reason: "unknown field"}
}

// Compare returns a three-way comparison of two records on field f.
// Text fields compare lexicographically, numeric fields numerically.
func Compare(f Field) (func(a, b Record) int, error) {
	if f.Numeric() {
		get, err := IntField(f)
		if err != nil {
			return nil, err
		}
		return func(a, b Record) int { return cmp.Compare(get(a), get(b)) }, nil
	}
	get, err := TextField(f)
	if err != nil {
		return nil, err
	}
	return func(a, b Record) int { return cmp.Compare(get(a), get(b)) }, nil
}
