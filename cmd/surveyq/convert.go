package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vegasq/surveyq/reader"
)

func convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input> <output>",
		Short: "Convert records between JSON and parquet",
		Long: `Load and validate records from input, then write them to output. The output
format follows its extension: .json or .parquet.`,
		Example: `  surveyq convert data.json data.parquet
  surveyq convert "surveys/*.parquet" all.json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			people, err := reader.Load(args[0])
			if err != nil {
				return err
			}
			if err := reader.Save(args[1], people); err != nil {
				return err
			}
			log.WithFields(log.Fields{"from": args[0], "to": args[1], "records": len(people)}).Info("converted records")
			return nil
		},
	}
}
