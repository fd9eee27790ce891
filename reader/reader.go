package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vegasq/surveyq/record"
)

// maxFiles bounds how many files a single glob pattern may expand to.
const maxFiles = 1000

// ErrUnsupportedFormat is returned for a file extension no decoder handles.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// Load reads every record from path. The path may be a glob pattern, in
// which case all matching files are read in lexical order and concatenated.
//
// Returns a *LoadError if any file is missing, malformed or fails
// validation. No records are returned in that case.
func Load(path string) (record.Collection, error) {
	start := time.Now()

	if !strings.ContainsAny(path, "*?[") {
		people, err := loadFile(path)
		if err != nil {
			return nil, err
		}
		log.WithFields(log.Fields{"path": path, "records": len(people), "elapsed": time.Since(start)}).Debug("loaded records")
		return people, nil
	}

	matches, err := filepath.Glob(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("invalid glob pattern: %w", err)}
	}
	if len(matches) == 0 {
		return nil, &LoadError{Path: path, Err: errors.New("no files match pattern")}
	}
	if len(matches) > maxFiles {
		return nil, &LoadError{Path: path, Err: fmt.Errorf("glob pattern matched too many files (%d), maximum is %d", len(matches), maxFiles)}
	}

	all := make(record.Collection, 0)
	for _, file := range matches {
		people, err := loadFile(file)
		if err != nil {
			return nil, err
		}
		all = append(all, people...)
	}

	log.WithFields(log.Fields{"pattern": path, "files": len(matches), "records": len(all), "elapsed": time.Since(start)}).Debug("loaded records")
	return all, nil
}

func loadFile(path string) (record.Collection, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		people, err := DecodeJSON(data)
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		return people, nil
	case ".parquet":
		people, err := readParquet(path)
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}
		return people, nil
	default:
		return nil, &LoadError{Path: path, Err: fmt.Errorf("%w %q", ErrUnsupportedFormat, filepath.Ext(path))}
	}
}

// Save writes people to path, choosing JSON or parquet by its extension.
// The file is created or truncated.
func Save(path string, people []record.Record) (err error) {
	var write func(io.Writer, []record.Record) error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		write = WriteJSON
	case ".parquet":
		write = WriteParquet
	default:
		return fmt.Errorf("%w %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := write(f, people); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	log.WithFields(log.Fields{"path": path, "records": len(people)}).Debug("saved records")
	return nil
}
