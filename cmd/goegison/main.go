// Command goegison runs the seed pattern-matching scenarios from the
// command line, for manual inspection and as a smoke test of the engine
// end to end.
package main

import (
	"context"

	"github.com/spf13/cobra"
)

func main() {
	cobra.CheckErr(newRootCmd().ExecuteContext(context.Background()))
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "goegison",
		Short: "Run non-linear pattern-matching scenarios",
		Long:  "goegison exercises the pkg/match engine's seed scenarios: list/multiset destructuring, Join over an infinite prime stream, And/Or/Not composition, Later forward references, and fair-BFS enumeration over an infinite target.",
	}

	root.AddCommand(newRunCmd(), newRunAllCmd(), newRunDFSCmd(), newListCmd())
	return root
}
