package main

import (
	"fmt"

	"github.com/spf13/cobra"

	functions "github.com/anselboero/cloud-functions"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Displays the current version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), functions.VERSION)
			return nil
		},
	}
}
