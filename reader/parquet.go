package reader

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/surveyq/record"
)

// parquetPerson is the on-disk row layout. Every column is optional so a
// null can be detected and rejected instead of silently read as zero.
type parquetPerson struct {
	Job    *string `parquet:"job,optional"`
	Salary *int64  `parquet:"salary,optional"`
	ID     *int64  `parquet:"id,optional"`
	City   *string `parquet:"city,optional"`
	Year   *int64  `parquet:"year,optional"`
	Age    *int64  `parquet:"age,optional"`
}

// parquetSource keeps both the OS file handle and the parquet file handle
// so the file can be closed once reading is done.
type parquetSource struct {
	file   *os.File
	pqFile *parquet.File
	size   int64
}

func openParquet(path string) (*parquetSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}
	return &parquetSource{file: file, pqFile: pqFile, size: stat.Size()}, nil
}

func (s *parquetSource) Close() error {
	return s.file.Close()
}

// readParquet reads every row of a parquet file into records.
func readParquet(path string) (record.Collection, error) {
	src, err := openParquet(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = src.Close() }()

	if err := checkColumns(src.pqFile.Schema()); err != nil {
		return nil, err
	}

	rows, err := parquet.Read[parquetPerson](src.file, src.size)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	people := make(record.Collection, 0, len(rows))
	for i, row := range rows {
		r, err := row.toRecord(i)
		if err != nil {
			return nil, err
		}
		people = append(people, r)
	}
	return people, nil
}

func (p parquetPerson) toRecord(index int) (record.Record, error) {
	invalid := func(f record.Field, reason string) error {
		return &record.SchemaError{Index: index, Field: f.String(), Reason: reason}
	}

	switch {
	case p.Job == nil:
		return record.Record{}, invalid(record.FieldJob, "null value")
	case p.Salary == nil:
		return record.Record{}, invalid(record.FieldSalary, "null value")
	case p.ID == nil:
		return record.Record{}, invalid(record.FieldID, "null value")
	case p.City == nil:
		return record.Record{}, invalid(record.FieldCity, "null value")
	case p.Year == nil:
		return record.Record{}, invalid(record.FieldYear, "null value")
	case p.Age == nil:
		return record.Record{}, invalid(record.FieldAge, "null value")
	case *p.Salary < 0:
		return record.Record{}, invalid(record.FieldSalary, "negative value")
	case *p.Age < 0:
		return record.Record{}, invalid(record.FieldAge, "negative value")
	}

	// int may be narrower than the column on 32-bit platforms.
	for _, c := range []struct {
		field record.Field
		value int64
	}{
		{record.FieldSalary, *p.Salary},
		{record.FieldID, *p.ID},
		{record.FieldYear, *p.Year},
		{record.FieldAge, *p.Age},
	} {
		if c.value < math.MinInt || c.value > math.MaxInt {
			return record.Record{}, invalid(c.field, "value out of range")
		}
	}

	return record.Record{
		Job:    *p.Job,
		Salary: int(*p.Salary),
		ID:     int(*p.ID),
		City:   *p.City,
		Year:   int(*p.Year),
		Age:    int(*p.Age),
	}, nil
}

// WriteParquet writes people to w as a parquet file.
func WriteParquet(w io.Writer, people []record.Record) error {
	rows := make([]parquetPerson, 0, len(people))
	for _, r := range people {
		rows = append(rows, parquetPerson{
			Job:    ptr(r.Job),
			Salary: ptr(int64(r.Salary)),
			ID:     ptr(int64(r.ID)),
			City:   ptr(r.City),
			Year:   ptr(int64(r.Year)),
			Age:    ptr(int64(r.Age)),
		})
	}

	writer := parquet.NewGenericWriter[parquetPerson](w)
	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write rows: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to close parquet writer: %w", err)
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
