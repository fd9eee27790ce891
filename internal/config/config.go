// Package config holds surveyq's runtime settings and binds them to
// command-line flags, SURVEYQ_* environment variables and an optional
// config file.
package config

import (
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/vegasq/surveyq/record"
)

// EnvPrefix prefixes every environment variable surveyq reads.
const EnvPrefix = "SURVEYQ"

// Config is the complete runtime configuration.
type Config struct {
	Data     string `mapstructure:"data"`
	Format   string `mapstructure:"format"`
	LogLevel string `mapstructure:"log-level"`
	Query    Query  `mapstructure:"query"`
}

// Query parameterises the sample report queries.
type Query struct {
	City            string `mapstructure:"city"`
	SecondCity      string `mapstructure:"second-city"`
	Job             string `mapstructure:"job"`
	SalaryThreshold int    `mapstructure:"salary-threshold"`
	CountSalary     int    `mapstructure:"count-salary"`
	YoungAge        int    `mapstructure:"young-age"`
	MinAge          int    `mapstructure:"min-age"`
	MaxAge          int    `mapstructure:"max-age"`
	TopN            int    `mapstructure:"top"`
	LimitN          int    `mapstructure:"limit"`
	SortField       string `mapstructure:"sort-field"`
	GroupField      string `mapstructure:"group-field"`
	CountField      string `mapstructure:"count-field"`
}

// Default returns the configuration the report uses when nothing is overridden.
func Default() Config {
	return Config{
		Data:     "data.json",
		Format:   "text",
		LogLevel: "info",
		Query: Query{
			City:            "Прага",
			SecondCity:      "София",
			Job:             "Оператор call-центра",
			SalaryThreshold: 100000,
			CountSalary:     50000,
			YoungAge:        25,
			MinAge:          25,
			MaxAge:          40,
			TopN:            10,
			LimitN:          3,
			SortField:       "salary",
			GroupField:      "job",
			CountField:      "city",
		},
	}
}

// queryFlags lists the flags that bind to keys under "query".
var queryFlags = []string{
	"city", "second-city", "job", "salary-threshold", "count-salary",
	"young-age", "min-age", "max-age", "top", "limit",
	"sort-field", "group-field", "count-field",
}

// RegisterFlags adds a flag for every query parameter to fs. Defaults come
// from Default.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default().Query
	fs.String("city", d.City, "city for the top salaries and minimum age queries")
	fs.String("second-city", d.SecondCity, "city for the maximum salary query")
	fs.String("job", d.Job, "job for the count query")
	fs.Int("salary-threshold", d.SalaryThreshold, "salary a record must exceed to pass the salary filters")
	fs.Int("count-salary", d.CountSalary, "salary a record must exceed to be counted")
	fs.Int("young-age", d.YoungAge, "exclusive upper age bound for the top salaries query")
	fs.Int("min-age", d.MinAge, "inclusive lower age bound for the maximum salary query")
	fs.Int("max-age", d.MaxAge, "inclusive upper age bound for the maximum salary query")
	fs.Int("top", d.TopN, "number of records in the top salaries query")
	fs.Int("limit", d.LimitN, "number of records in the limit query")
	fs.String("sort-field", d.SortField, "field the sort query orders by")
	fs.String("group-field", d.GroupField, "text field the grouping query groups by")
	fs.String("count-field", d.CountField, "text field the counting query groups by")
}

// bindFlags binds every flag in fs to its viper key. Query flags live under
// "query", the rest at the top level.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for _, name := range queryFlags {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag("query."+name, f); err != nil {
				return err
			}
		}
	}
	for _, name := range []string{"data", "format", "log-level"} {
		if f := fs.Lookup(name); f != nil {
			if err := v.BindPFlag(name, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// Load builds a Config from defaults, an optional config file, environment
// variables and the flags bound in fs, in increasing order of precedence.
func Load(v *viper.Viper, fs *pflag.FlagSet, configFile string) (Config, error) {
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := bindFlags(v, fs); err != nil {
			return Config{}, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("data", d.Data)
	v.SetDefault("format", d.Format)
	v.SetDefault("log-level", d.LogLevel)
	v.SetDefault("query.city", d.Query.City)
	v.SetDefault("query.second-city", d.Query.SecondCity)
	v.SetDefault("query.job", d.Query.Job)
	v.SetDefault("query.salary-threshold", d.Query.SalaryThreshold)
	v.SetDefault("query.count-salary", d.Query.CountSalary)
	v.SetDefault("query.young-age", d.Query.YoungAge)
	v.SetDefault("query.min-age", d.Query.MinAge)
	v.SetDefault("query.max-age", d.Query.MaxAge)
	v.SetDefault("query.top", d.Query.TopN)
	v.SetDefault("query.limit", d.Query.LimitN)
	v.SetDefault("query.sort-field", d.Query.SortField)
	v.SetDefault("query.group-field", d.Query.GroupField)
	v.SetDefault("query.count-field", d.Query.CountField)
}

// Validate rejects settings no query can run with.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.Query.TopN < 0 {
		result = multierror.Append(result, fmt.Errorf("query.top must be non-negative, got %d", c.Query.TopN))
	}
	if c.Query.LimitN < 0 {
		result = multierror.Append(result, fmt.Errorf("query.limit must be non-negative, got %d", c.Query.LimitN))
	}
	if _, err := record.ParseField(c.Query.SortField); err != nil {
		result = multierror.Append(result, fmt.Errorf("query.sort-field: %w", err))
	}
	if err := checkTextField(c.Query.GroupField); err != nil {
		result = multierror.Append(result, fmt.Errorf("query.group-field: %w", err))
	}
	if err := checkTextField(c.Query.CountField); err != nil {
		result = multierror.Append(result, fmt.Errorf("query.count-field: %w", err))
	}
	return result.ErrorOrNil()
}

func checkTextField(name string) error {
	f, err := record.ParseField(name)
	if err != nil {
		return err
	}
	_, err = record.TextField(f)
	return err
}
