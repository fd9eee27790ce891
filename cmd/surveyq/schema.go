package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vegasq/surveyq/reader"
)

func schemaCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schema <file.parquet>",
		Short: "Show the columns of a parquet file",
		Long: `Print the name, physical type, logical type and optionality of every column
in a parquet file. For a glob pattern the first matching file is shown.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveSchemaPath(args[0])
			if err != nil {
				return err
			}
			infos, err := reader.ExtractSchemaInfo(path)
			if err != nil {
				return err
			}
			return writeSchema(cmd.OutOrStdout(), a.cfg.Format, infos)
		},
	}
}

// resolveSchemaPath returns pattern itself, or its first match when it is
// a glob.
func resolveSchemaPath(pattern string) (string, error) {
	if !strings.ContainsAny(pattern, "*?[") {
		return pattern, nil
	}
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", fmt.Errorf("invalid glob pattern: %w", err)
	}
	if len(matches) == 0 {
		return "", fmt.Errorf("no files match pattern: %s", pattern)
	}
	if len(matches) > 1 {
		log.WithFields(log.Fields{"file": matches[0], "matched": len(matches)}).Info("showing schema of first match")
	}
	return matches[0], nil
}

func writeSchema(w io.Writer, format string, infos []reader.SchemaInfo) error {
	header := []string{"name", "physical_type", "logical_type", "optional"}
	cells := func(info reader.SchemaInfo) []string {
		return []string{info.Name, info.PhysicalType, info.LogicalType, strconv.FormatBool(info.Optional)}
	}

	switch strings.ToLower(format) {
	case "json", "jsonl":
		enc := json.NewEncoder(w)
		for _, info := range infos {
			if err := enc.Encode(info); err != nil {
				return err
			}
		}
		return nil
	case "csv":
		cw := csv.NewWriter(w)
		if err := cw.Write(header); err != nil {
			return err
		}
		for _, info := range infos {
			if err := cw.Write(cells(info)); err != nil {
				return err
			}
		}
		cw.Flush()
		return cw.Error()
	case "text", "table", "":
		table := tablewriter.NewWriter(w)
		table.SetAutoFormatHeaders(false)
		table.SetHeader(header)
		for _, info := range infos {
			table.Append(cells(info))
		}
		table.Render()
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}
