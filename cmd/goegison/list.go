package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitrdm/goegison/pkg/scenarios"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, s := range scenarios.All {
				fmt.Fprintf(cmd.OutOrStdout(), "%-20s %s\n", s.Name, s.Description)
			}
			return nil
		},
	}
}
