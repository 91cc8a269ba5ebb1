package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/spf13/cobra"

	functions "github.com/anselboero/cloud-functions"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve every function locally through the functions framework",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// validate before listening
			if _, err := ctx.ensureConfig(); err != nil {
				return err
			}

			if path := ctx.configPath(); path != "" {
				if err := os.Setenv("CONFIG_FILE", path); err != nil {
					return err
				}
			}

			if ctx.debugFlag != nil && *ctx.debugFlag {
				if err := os.Setenv("DEBUG", "true"); err != nil {
					return err
				}
			}

			if port = strings.TrimSpace(port); port == "" {
				port = "8080"
			}

			log.Printf("%-5s %s %s listening on :%s (%s)", "INFO", "cloud-functions", functions.VERSION, port, strings.Join(functions.Names, ", "))

			if err := funcframework.Start(port); err != nil {
				return fmt.Errorf("unable to start functions framework (%w)", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", os.Getenv("PORT"), "Port to listen on (defaults to PORT or 8080)")

	return cmd
}
