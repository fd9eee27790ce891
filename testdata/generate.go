//go:build ignore

// Regenerates data.parquet from data.json:
//
//	go run testdata/generate.go
package main

import (
	"log"

	"github.com/vegasq/surveyq/reader"
)

func main() {
	people, err := reader.Load("testdata/data.json")
	if err != nil {
		log.Fatal(err)
	}

	if err := reader.Save("testdata/data.parquet", people); err != nil {
		log.Fatal(err)
	}

	log.Printf("Generated testdata/data.parquet with %d people", len(people))
}
