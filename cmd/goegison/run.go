package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	m "github.com/gitrdm/goegison/pkg/match"
	"github.com/gitrdm/goegison/pkg/scenarios"
)

// resolveScenario looks up args[0] by name, erroring with a pointer to
// 'goegison list' if it isn't registered.
func resolveScenario(args []string) (scenarios.Scenario, error) {
	if len(args) == 0 {
		return scenarios.Scenario{}, fmt.Errorf("missing scenario name (see 'goegison list')")
	}
	s, ok := scenarios.ByName(args[0])
	if !ok {
		return scenarios.Scenario{}, fmt.Errorf("unknown scenario %q (see 'goegison list')", args[0])
	}
	return s, nil
}

// traceFromFlag builds a *m.Trace writing to cmd's stderr when verbose is
// set, or nil (no logging) otherwise.
func traceFromFlag(cmd *cobra.Command, verbose bool) *m.Trace {
	if !verbose {
		return nil
	}
	return m.NewTrace(log.New(cmd.ErrOrStderr(), "", 0))
}

func newRunCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "run SCENARIO",
		Short: "Run a scenario depth-first to its first solution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveScenario(args)
			if err != nil {
				return err
			}
			tr := traceFromFlag(cmd, verbose)
			result, err := scenarios.RunFirst(s, tr)
			if err != nil {
				return fmt.Errorf("%s: %w", s.Name, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), result)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log search diagnostics to stderr")
	return cmd
}

func newRunAllCmd() *cobra.Command {
	var verbose bool
	var limit int
	cmd := &cobra.Command{
		Use:   "run-all SCENARIO",
		Short: "Run a scenario fair-breadth-first, printing up to --limit solutions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveScenario(args)
			if err != nil {
				return err
			}
			tr := traceFromFlag(cmd, verbose)
			for _, line := range s.Run(tr, limit) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log search diagnostics to stderr")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum number of solutions to print")
	return cmd
}

func newRunDFSCmd() *cobra.Command {
	var verbose bool
	var limit int
	cmd := &cobra.Command{
		Use:   "run-dfs SCENARIO",
		Short: "Run a scenario depth-first, printing up to --limit solutions",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := resolveScenario(args)
			if err != nil {
				return err
			}
			tr := traceFromFlag(cmd, verbose)
			for _, line := range s.RunDFS(tr, limit) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log search diagnostics to stderr")
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "maximum number of solutions to print")
	return cmd
}
