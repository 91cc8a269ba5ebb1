package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anselboero/cloud-functions/internal/bucket"
	"github.com/anselboero/cloud-functions/internal/config"
	"github.com/anselboero/cloud-functions/internal/running"
)

type weeklyOptions struct {
	file         string
	bucket       string
	variant      string
	sport        string
	nameContains string
	all          bool
}

func newWeeklyCommand(ctx *commandContext) *cobra.Command {
	var opts weeklyOptions

	cmd := &cobra.Command{
		Use:   "weekly",
		Short: "Print the weekly average pace and heart rate of an activity CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			data, err := readActivities(cmd, cfg, opts)
			if err != nil {
				return err
			}

			loadOptions, err := weeklyLoadOptions(cmd, cfg.Running, opts)
			if err != nil {
				return err
			}

			records, summary, err := running.Load(bytes.NewReader(data), loadOptions)
			if err != nil {
				return fmt.Errorf("unable to load activities (%w)", err)
			}

			weeks := running.Aggregate(records, cfg.Running.WeekEnding())
			if !opts.all {
				weeks = running.Plottable(weeks)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out, weeklyHeaders, weeklyRows(weeks), weeklyAligns))
			fmt.Fprintf(out, "%d rows, %d filtered, %d dropped, %d loaded, %d weeks\n",
				summary.Rows, summary.Filtered, summary.Dropped, summary.Loaded, len(weeks))

			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.file, "file", "f", "", "Local activity CSV")
	cmd.Flags().StringVarP(&opts.bucket, "bucket", "b", "", "Bucket holding the activity CSV (running.csv_object)")
	cmd.Flags().StringVar(&opts.variant, "variant", "", "Elapsed time from 'pace' or 'duration' (defaults to running.variant)")
	cmd.Flags().StringVar(&opts.sport, "sport", "", "Only include activities of this type")
	cmd.Flags().StringVar(&opts.nameContains, "name-contains", "", "Only include activities whose name contains this text")
	cmd.Flags().BoolVar(&opts.all, "all", false, "Include weeks without a defined pace or heart rate")

	cmd.MarkFlagsMutuallyExclusive("file", "bucket")
	cmd.MarkFlagsOneRequired("file", "bucket")

	return cmd
}

var weeklyHeaders = []string{"Week ending", "Runs", "Distance", "Time (min)", "Pace", "HR"}

var weeklyAligns = []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight}

func weeklyRows(weeks []running.Week) [][]string {
	rows := make([][]string, 0, len(weeks))

	for _, w := range weeks {
		pace := "-"
		if v, ok := w.Pace(); ok {
			pace = running.FormatPace(v)
		}

		hr := "-"
		if v, ok := w.HeartRate(); ok {
			hr = fmt.Sprintf("%.0f", v)
		}

		rows = append(rows, []string{
			w.Ending.Format("2006-01-02"),
			fmt.Sprintf("%d", w.Runs),
			fmt.Sprintf("%.1f", w.Distance),
			fmt.Sprintf("%.0f", w.TotalTime),
			pace,
			hr,
		})
	}

	return rows
}

func weeklyLoadOptions(cmd *cobra.Command, cfg config.Running, opts weeklyOptions) (running.Options, error) {
	loadOptions := cfg.LoadOptions()

	if v := strings.ToLower(strings.TrimSpace(opts.variant)); v != "" {
		if v != config.VariantPace && v != config.VariantDuration {
			return running.Options{}, fmt.Errorf("invalid --variant %q (expected %q or %q)", opts.variant, config.VariantPace, config.VariantDuration)
		}
		loadOptions.Variant = running.Variant(v)
	}

	if cmd.Flags().Changed("sport") {
		loadOptions.Sport = strings.TrimSpace(opts.sport)
	}

	if cmd.Flags().Changed("name-contains") {
		loadOptions.NameContains = opts.nameContains
	}

	return loadOptions, nil
}

func readActivities(cmd *cobra.Command, cfg *config.Config, opts weeklyOptions) ([]byte, error) {
	switch {
	case opts.file == "-":
		return io.ReadAll(cmd.InOrStdin())

	case opts.file != "":
		return os.ReadFile(opts.file)

	case opts.bucket != "":
		store := bucket.GCS{Credentials: cfg.Credentials.File}
		return store.Get(cmd.Context(), opts.bucket, cfg.Running.CSVObject)

	default:
		return nil, errors.New("one of --file or --bucket is required")
	}
}
