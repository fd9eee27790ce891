package main

import (
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vegasq/surveyq/internal/config"
	"github.com/vegasq/surveyq/internal/report"
	"github.com/vegasq/surveyq/output"
	"github.com/vegasq/surveyq/reader"
)

func reportCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [file]",
		Short: "Run every query and print the report",
		Long: `Load records from file (default: the configured data path, data.json) and
print the result of every query. file may be a .json or .parquet file or a
glob pattern matching several of them.`,
		Example: `  surveyq report data.json
  surveyq report -f table --city Берлин "surveys/*.parquet"
  SURVEYQ_QUERY_TOP=5 surveyq report -f csv data.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.Data
			if len(args) == 1 {
				path = args[0]
			}

			start := time.Now()
			log.WithField("path", path).Info("loading records")
			people, err := reader.Load(path)
			if err != nil {
				return err
			}
			log.WithFields(log.Fields{"records": len(people), "elapsed": time.Since(start)}).Info("records loaded")

			r, err := report.Build(path, people, a.cfg.Query)
			if err != nil {
				return err
			}

			formatter, err := output.New(a.cfg.Format, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return formatter.Format(r)
		},
	}
	config.RegisterFlags(cmd.Flags())
	return cmd
}
