package reader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vegasq/surveyq/record"
)

var testPeople = []record.Record{
	{Job: "Программист", Salary: 150000, ID: 1, City: "Прага", Year: 2023, Age: 30},
	{Job: "Оператор call-центра", Salary: 55000, ID: 2, City: "София", Year: 2022, Age: 24},
	{Job: "Бариста", Salary: 40000, ID: 3, City: "Прага", Year: 2021, Age: 19},
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func writeParquetFile(t *testing.T, dir, name string, people []record.Record) string {
	t.Helper()
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}
	defer func() { _ = f.Close() }()

	if err := WriteParquet(f, people); err != nil {
		t.Fatalf("failed to write test data: %v", err)
	}
	return path
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "data.json", `[
		{"job": "Программист", "salary": 150000, "id": 1, "city": "Прага", "year": 2023, "age": 30}
	]`)

	people, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, record.Collection{testPeople[0]}, people)
}

func TestLoad_Parquet(t *testing.T) {
	path := writeParquetFile(t, t.TempDir(), "data.parquet", testPeople)

	people, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, record.Collection(testPeople), people)
}

func TestLoad_EmptyParquet(t *testing.T) {
	path := writeParquetFile(t, t.TempDir(), "empty.parquet", nil)

	people, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, people)
}

func TestLoad_Glob(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", `[{"job":"Программист","salary":150000,"id":1,"city":"Прага","year":2023,"age":30}]`)
	writeParquetFile(t, dir, "b.parquet", testPeople[1:])
	writeFile(t, dir, "notes.txt", "ignored")

	people, err := Load(filepath.Join(dir, "*.json"))
	require.NoError(t, err)
	assert.Len(t, people, 1)

	people, err = Load(filepath.Join(dir, "[ab].*"))
	require.NoError(t, err)
	assert.Equal(t, record.Collection(testPeople), people)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.json", `[{"job":"a","salary":null,"id":1,"city":"c","year":2020,"age":1}]`)
	text := writeFile(t, dir, "data.csv", "job,salary")

	tests := []struct {
		name    string
		path    string
		wantErr func(t *testing.T, err error)
	}{
		{
			name: "missing file",
			path: filepath.Join(dir, "missing.json"),
			wantErr: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, os.ErrNotExist))
			},
		},
		{
			name: "schema violation",
			path: bad,
			wantErr: func(t *testing.T, err error) {
				var le *LoadError
				require.True(t, errors.As(err, &le))
				assert.Equal(t, bad, le.Path)
				assert.NotEmpty(t, le.SchemaErrors())
			},
		},
		{
			name: "unsupported extension",
			path: text,
			wantErr: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, ErrUnsupportedFormat))
			},
		},
		{
			name: "glob without matches",
			path: filepath.Join(dir, "*.parquet"),
			wantErr: func(t *testing.T, err error) {
				var le *LoadError
				assert.True(t, errors.As(err, &le))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			people, err := Load(tt.path)
			require.Error(t, err)
			assert.Nil(t, people)
			tt.wantErr(t, err)
		})
	}
}

func TestExtractSchemaInfo(t *testing.T) {
	path := writeParquetFile(t, t.TempDir(), "data.parquet", testPeople)

	infos, err := ExtractSchemaInfo(path)
	require.NoError(t, err)

	byName := make(map[string]SchemaInfo)
	for _, info := range infos {
		byName[info.Name] = info
	}
	for _, f := range record.Fields {
		info, ok := byName[f.String()]
		require.True(t, ok, "column %s missing", f)
		assert.True(t, info.Optional)
		if f.Numeric() {
			assert.Equal(t, "INT64", info.PhysicalType)
		} else {
			assert.Equal(t, "BYTE_ARRAY", info.PhysicalType)
		}
	}
}

func TestCheckColumns_MissingColumn(t *testing.T) {
	type partial struct {
		Job    string `parquet:"job"`
		Salary int64  `parquet:"salary"`
	}

	path := filepath.Join(t.TempDir(), "partial.parquet")
	f, err := os.Create(path)
	require.NoError(t, err)
	w := parquet.NewGenericWriter[partial](f)
	_, err = w.Write([]partial{{Job: "a", Salary: 1}})
	require.NoError(t, err)
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	_, err = Load(path)
	var se *record.SchemaError
	require.True(t, errors.As(err, &se), "want SchemaError, got %v", err)
	assert.Equal(t, "id", se.Field)
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"out.json", "out.parquet"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, Save(path, testPeople))

			people, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, record.Collection(testPeople), people)
		})
	}
}

func TestSave_EmptyJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, Save(path, nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestSave_UnsupportedExtension(t *testing.T) {
	err := Save(filepath.Join(t.TempDir(), "out.csv"), testPeople)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestLoad_ParquetNegativeValues(t *testing.T) {
	tests := []struct {
		name      string
		person    record.Record
		wantField string
	}{
		{name: "negative salary", person: record.Record{Job: "a", Salary: -5, ID: 1, City: "c", Year: 2020, Age: 1}, wantField: "salary"},
		{name: "negative age", person: record.Record{Job: "a", Salary: 5, ID: 1, City: "c", Year: 2020, Age: -1}, wantField: "age"},
		{name: "both negative", person: record.Record{Job: "a", Salary: -5, ID: 1, City: "c", Year: 2020, Age: -1}, wantField: "salary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "data.parquet")
			require.NoError(t, Save(path, []record.Record{testPeople[0], tt.person}))

			people, err := Load(path)
			require.Error(t, err)
			assert.Nil(t, people)

			var se *record.SchemaError
			require.True(t, errors.As(err, &se), "%v", err)
			assert.Equal(t, 1, se.Index)
			assert.Equal(t, tt.wantField, se.Field)
			assert.Equal(t, "negative value", se.Reason)
		})
	}
}

func TestLoad_ParquetNegativeIDAndYear(t *testing.T) {
	person := record.Record{Job: "a", Salary: 5, ID: -1, City: "c", Year: -300, Age: 1}
	path := writeParquetFile(t, t.TempDir(), "data.parquet", []record.Record{person})

	people, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, record.Collection{person}, people)
}
