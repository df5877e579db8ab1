package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jba/ordered/internal/workload"
)

func newBenchCmd(baseConfig *baseConfiguration) *cobra.Command {
	var config workload.BenchConfig
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run random insertions then erasures and verify the tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := workload.Bench(cmd.Context(), baseConfig.log, config)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "container=%s inserted=%d erased=%d len=%d height=%d elapsed=%s\n",
				config.Container, res.Inserted, res.Erased, res.Len, res.Height, res.Elapsed)
			return nil
		},
	}
	cmd.Flags().StringVar(&config.Container, "container", workload.KindMultiSet, "container kind, one of: map, set, multiset")
	cmd.Flags().IntVar(&config.Size, "size", 100_000, "number of insertions")
	cmd.Flags().IntVar(&config.Erase, "erase", 0, "number of erasures after the insertions")
	cmd.Flags().Uint64Var(&config.Seed, "seed", 1, "random seed")
	return cmd
}
