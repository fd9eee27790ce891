package main

import (
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vegasq/surveyq/internal/config"
	"github.com/vegasq/surveyq/output"
)

// app carries the configuration resolved before a command runs.
type app struct {
	cfg config.Config
}

// newRootCmd builds the surveyq command tree. All sub-commands are
// registered here.
func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "surveyq",
		Short: "surveyq runs queries over a collection of survey responses.",
		Long: `surveyq loads person records from JSON or parquet files and runs a fixed
sequence of filter, sort, limit, map, aggregate and grouping queries over
them.

Settings come from flags, SURVEYQ_* environment variables and an optional
YAML config file, in decreasing order of precedence.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}
			cfg, err := config.Load(viper.New(), cmd.Flags(), configFile)
			if err != nil {
				return err
			}
			if err := configureLogging(cmd.ErrOrStderr(), cfg.LogLevel); err != nil {
				return err
			}
			a.cfg = cfg
			return nil
		},
	}

	d := config.Default()
	cmd.PersistentFlags().String("config", "", "path to a YAML config file")
	cmd.PersistentFlags().StringP("format", "f", d.Format, "output format: "+strings.Join(output.Formats, ", "))
	cmd.PersistentFlags().String("log-level", d.LogLevel, "log level: debug, info, warn, error")

	cmd.AddCommand(
		reportCmd(a),
		lambdasCmd(),
		convertCmd(),
		schemaCmd(a),
		versionCmd(),
	)
	return cmd
}

// configureLogging sends logrus output to w at the given level. Report
// output never goes through the logger.
func configureLogging(w io.Writer, level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	log.SetOutput(w)
	log.SetLevel(lvl)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	return nil
}
