package reader

import (
	"fmt"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/surveyq/record"
)

// SchemaInfo represents metadata about a single column in a Parquet file.
type SchemaInfo struct {
	Name         string `json:"name"`
	PhysicalType string `json:"physical_type"`
	LogicalType  string `json:"logical_type"`
	Optional     bool   `json:"optional"`
}

// ExtractSchemaInfo lists the top-level columns of a Parquet file.
func ExtractSchemaInfo(path string) ([]SchemaInfo, error) {
	src, err := openParquet(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer func() { _ = src.Close() }()

	var infos []SchemaInfo
	for _, field := range src.pqFile.Schema().Fields() {
		infos = append(infos, SchemaInfo{
			Name:         field.Name(),
			PhysicalType: getPhysicalType(field),
			LogicalType:  getLogicalType(field),
			Optional:     field.Optional(),
		})
	}
	return infos, nil
}

// checkColumns verifies that schema carries every record field with a
// compatible physical type. Extra columns are ignored.
func checkColumns(schema *parquet.Schema) error {
	columns := make(map[string]parquet.Field)
	for _, field := range schema.Fields() {
		columns[field.Name()] = field
	}

	for _, f := range record.Fields {
		field, ok := columns[f.String()]
		if !ok {
			return &record.SchemaError{Index: -1, Field: f.String(), Reason: "missing column"}
		}

		physical := getPhysicalType(field)
		switch {
		case f.Numeric() && physical != "INT32" && physical != "INT64":
			return &record.SchemaError{Index: -1, Field: f.String(), Reason: fmt.Sprintf("expected integer column, got %s", physical)}
		case !f.Numeric() && physical != "BYTE_ARRAY":
			return &record.SchemaError{Index: -1, Field: f.String(), Reason: fmt.Sprintf("expected string column, got %s", physical)}
		}
	}
	return nil
}

// getPhysicalType returns the physical type name of a Parquet field.
func getPhysicalType(field parquet.Field) string {
	if field.Type() == nil || len(field.Fields()) > 0 {
		return "GROUP"
	}

	switch field.Type().Kind() {
	case parquet.Boolean:
		return "BOOLEAN"
	case parquet.Int32:
		return "INT32"
	case parquet.Int64:
		return "INT64"
	case parquet.Int96:
		return "INT96"
	case parquet.Float:
		return "FLOAT"
	case parquet.Double:
		return "DOUBLE"
	case parquet.ByteArray:
		return "BYTE_ARRAY"
	case parquet.FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}

// getLogicalType returns the logical type name of a Parquet field.
func getLogicalType(field parquet.Field) string {
	if field.Type() == nil {
		return ""
	}
	logicalType := field.Type().LogicalType()
	if logicalType == nil {
		return ""
	}
	return logicalType.String()
}
