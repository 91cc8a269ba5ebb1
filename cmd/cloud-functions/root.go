package main

import (
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/anselboero/cloud-functions/internal/config"
)

type commandContext struct {
	configFlag *string
	debugFlag  *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newRootCommand() *cobra.Command {
	var configFlag string
	var debugFlag bool

	ctx := &commandContext{
		configFlag: &configFlag,
		debugFlag:  &debugFlag,
	}

	rootCmd := &cobra.Command{
		Use:           "cloud-functions",
		Short:         "Run and inspect the sheets, movies, net worth and running chart functions",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path (defaults to CONFIG_FILE)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debugging information")

	rootCmd.AddCommand(newServeCommand(ctx))
	rootCmd.AddCommand(newWeeklyCommand(ctx))
	rootCmd.AddCommand(newGetCommand(ctx))
	rootCmd.AddCommand(newAuthoriseCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}

		if c.debugFlag != nil && *c.debugFlag {
			cfg.Debug = true
		}

		c.config = cfg
	})

	return c.config, c.configErr
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}

	return strings.TrimSpace(*c.configFlag)
}
