package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anselboero/cloud-functions/internal/keyvalue"
	"github.com/anselboero/cloud-functions/internal/spreadsheet"
)

type getOptions struct {
	spreadsheet string
	area        string
	format      string
	file        string
}

func newGetCommand(ctx *commandContext) *cobra.Command {
	var opts getOptions

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Retrieve a worksheet range and print it as a table, TSV or key/value JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			id, err := spreadsheet.ParseID(opts.spreadsheet)
			if err != nil {
				return err
			}

			if _, err := spreadsheet.SheetName(opts.area); err != nil {
				return err
			}

			reader := spreadsheet.Google{Credentials: cfg.Credentials.File}
			rows, err := reader.Read(cmd.Context(), id, opts.area)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.file != "" {
				f, err := os.Create(opts.file)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			return writeRows(out, rows, opts.format)
		},
	}

	cmd.Flags().StringVarP(&opts.spreadsheet, "spreadsheet", "s", "", "Spreadsheet ID or URL")
	cmd.Flags().StringVarP(&opts.area, "range", "r", "API!A:B", "Worksheet range, e.g. 'API!A:B'")
	cmd.Flags().StringVar(&opts.format, "format", "table", "Output format: table, tsv or json")
	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Write to this file instead of stdout")
	_ = cmd.MarkFlagRequired("spreadsheet")

	return cmd
}

func writeRows(out io.Writer, rows [][]string, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "table":
		if len(rows) == 0 {
			return spreadsheet.ErrNoData
		}
		fmt.Fprintln(out, renderTable(out, rows[0], rows[1:], nil))
		return nil

	case "tsv":
		return writeTSV(out, rows)

	case "json":
		b, err := keyvalue.Build(rows).JSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(b))
		return err

	default:
		return fmt.Errorf("invalid --format %q (expected table, tsv or json)", format)
	}
}

func writeTSV(out io.Writer, rows [][]string) error {
	w := csv.NewWriter(out)
	w.Comma = '\t'

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()

	return w.Error()
}
