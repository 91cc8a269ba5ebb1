package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/anselboero/cloud-functions/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			s, err := cfg.Marshal()
			if err != nil {
				return fmt.Errorf("unable to marshal config (%w)", err)
			}

			fmt.Fprint(cmd.OutOrStdout(), s)
			return nil
		},
	})

	configCmd.AddCommand(&cobra.Command{
		Use:   "sample",
		Short: "Print an annotated sample configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), config.Sample())
			return nil
		},
	})

	return configCmd
}
