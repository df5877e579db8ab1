package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jba/ordered/internal/workload"
)

type runConfiguration struct {
	Base   *baseConfiguration
	Dump   bool
	Verify bool
}

func newRunCmd(baseConfig *baseConfiguration) *cobra.Command {
	config := &runConfiguration{Base: baseConfig}
	cmd := &cobra.Command{
		Use:   "run SCRIPT.yaml",
		Short: "Replay an operation script and print the query results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScript(cmd, config, args[0])
		},
	}
	cmd.Flags().BoolVar(&config.Dump, "dump", false, "print the final tree")
	cmd.Flags().BoolVar(&config.Verify, "verify", true, "check tree invariants after every mutation")
	return cmd
}

func runScript(cmd *cobra.Command, config *runConfiguration, fileName string) error {
	s, err := workload.LoadScript(fileName)
	if err != nil {
		return err
	}
	res, err := workload.NewRunner(config.Base.log, config.Verify).Run(cmd.Context(), s)
	if err != nil {
		return fmt.Errorf("running %s: %w", fileName, err)
	}
	out := cmd.OutOrStdout()
	for _, l := range res.Lines {
		fmt.Fprintln(out, l)
	}
	if config.Dump {
		fmt.Fprintln(out, res.Dump)
	}
	return nil
}
