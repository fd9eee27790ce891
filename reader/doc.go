// Package reader loads survey records from JSON or Parquet files.
//
// The whole collection is read and validated before it is returned; the
// query pipeline never sees partial data.
//
// # Basic Usage
//
// Loading a JSON array of person objects:
//
//	people, err := reader.Load("data.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The file extension selects the decoder: ".json" for a JSON array and
// ".parquet" for a Parquet file with job, salary, id, city, year and age
// columns.
//
// # Multi-file Operations
//
// A glob pattern concatenates every matching file in lexical order:
//
//	people, err := reader.Load("surveys/*.json")
//
// # Validation
//
// JSON input is checked against an embedded JSON Schema before decoding.
// Every object must carry all six fields, none of them null. Integer fields
// accept JSON integers or strings holding an integer; salary and age must
// not be negative. Extra fields are ignored.
//
// Parquet input must provide the six columns with integer or byte array
// physical types. A null value in any column is rejected.
//
// # Error Handling
//
// All failures are reported as *LoadError. Validation failures carry one
// *record.SchemaError per problem, reachable with errors.As or through
// LoadError.SchemaErrors:
//
//	var le *reader.LoadError
//	if errors.As(err, &le) {
//	    for _, se := range le.SchemaErrors() {
//	        fmt.Println(se)
//	    }
//	}
package reader
