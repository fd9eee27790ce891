package main

import (
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/vegasq/surveyq/lambda"
)

func lambdasCmd() *cobra.Command {
	var seed uint64
	cmd := &cobra.Command{
		Use:   "lambdas",
		Short: "Print examples of function values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src := rand.NewPCG(rand.Uint64(), rand.Uint64())
			if cmd.Flags().Changed("seed") {
				src = rand.NewPCG(seed, seed)
			}
			return lambda.Demo(cmd.OutOrStdout(), rand.New(src))
		},
	}
	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for the random number example")
	return cmd
}
