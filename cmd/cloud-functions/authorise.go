package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"google.golang.org/api/sheets/v4"
	"google.golang.org/api/storage/v1"

	"github.com/anselboero/cloud-functions/internal/credentials"
)

func newAuthoriseCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "authorise",
		Short: "Verifies that the configured credentials can access Google Sheets and Cloud Storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			source := cfg.Credentials.File
			if source == "" {
				source = "application default credentials"
			}

			token, err := credentials.Token(cmd.Context(), cfg.Credentials.File, sheets.SpreadsheetsReadonlyScope, storage.DevstorageReadWriteScope)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Authorised using %s\n", source)
			if !token.Expiry.IsZero() {
				fmt.Fprintf(out, "Access token expires %s\n", token.Expiry.Format("2006-01-02 15:04:05 MST"))
			}

			return nil
		},
	}
}
