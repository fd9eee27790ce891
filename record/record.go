// Package record defines the person record that the query pipeline runs over.
//
// A Record is a plain value with six fixed fields. Field accessors are
// ordinary function values so they can be handed to the query package as
// predicates, sort keys and group keys:
//
//	young := query.Filter(people, query.Where(record.Age, query.Less(25)))
//	byCity := query.GroupBy(people, record.City)
//
// Fields can also be addressed by name through the Field tag, which is how
// the CLI lets a user pick the sort or group column.
package record

import "fmt"

// Record is one survey respondent.
//
// Records are built once by the reader and never modified afterwards.
// Every pipeline stage takes records by value.
type Record struct {
	Job    string `json:"job" parquet:"job"`
	Salary int    `json:"salary" parquet:"salary"`
	ID     int    `json:"id" parquet:"id"`
	City   string `json:"city" parquet:"city"`
	Year   int    `json:"year" parquet:"year"`
	Age    int    `json:"age" parquet:"age"`
}

// Collection is an ordered sequence of records in input order.
type Collection []Record

// String renders the record the same way the console report prints it.
func (r Record) String() string {
	return fmt.Sprintf("Person{job='%s', salary=%d, id=%d, city='%s', year=%d, age=%d}",
		r.Job, r.Salary, r.ID, r.City, r.Year, r.Age)
}

// Job returns the record's job title.
func Job(r Record) string { return r.Job }

// Salary returns the record's salary.
func Salary(r Record) int { return r.Salary }

// ID returns the record's identifier.
func ID(r Record) int { return r.ID }

// City returns the record's city.
func City(r Record) string { return r.City }

// Year returns the record's survey year.
func Year(r Record) int { return r.Year }

// Age returns the record's age.
func Age(r Record) int { return r.Age }
