package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/anselboero/cloud-functions/internal/running"
	"github.com/anselboero/cloud-functions/internal/spreadsheet"
)

func (c *Config) normalize() {
	c.Credentials.File = strings.TrimSpace(c.Credentials.File)

	c.LastMovie.Spreadsheet = spreadsheetID(c.LastMovie.Spreadsheet)
	c.LastMovie.Range = strings.TrimSpace(c.LastMovie.Range)
	c.LastMovie.Bucket = strings.TrimSpace(c.LastMovie.Bucket)
	c.LastMovie.Object = strings.TrimSpace(c.LastMovie.Object)

	c.NetWorth.Spreadsheet = spreadsheetID(c.NetWorth.Spreadsheet)
	c.NetWorth.Range = strings.TrimSpace(c.NetWorth.Range)
	c.NetWorth.Bucket = strings.TrimSpace(c.NetWorth.Bucket)
	c.NetWorth.Object = strings.TrimSpace(c.NetWorth.Object)

	c.Export.Range = strings.TrimSpace(c.Export.Range)

	c.Running.Variant = strings.ToLower(strings.TrimSpace(c.Running.Variant))
	c.Running.WeekEnd = strings.TrimSpace(c.Running.WeekEnd)
	c.Running.Sport = strings.TrimSpace(c.Running.Sport)
}

// spreadsheetID accepts either a bare spreadsheet ID or a docs.google.com URL. Values that
// are neither are left for Validate to reject.
func spreadsheetID(v string) string {
	v = strings.TrimSpace(v)
	if id, err := spreadsheet.ParseID(v); err == nil {
		return id
	}
	return v
}

// Validate ensures the configuration is usable. Requirements that only apply to a single
// function (e.g. the net worth bucket) are checked when that function's handler is built.
func (c *Config) Validate() error {
	if err := c.validateCORS(); err != nil {
		return err
	}
	if err := c.validateLastMovie(); err != nil {
		return err
	}
	if err := c.validateNetWorth(); err != nil {
		return err
	}
	if err := c.validateExport(); err != nil {
		return err
	}
	if err := c.validateRunning(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCORS() error {
	if (c.LastMovie.CORS || c.NetWorth.CORS) && strings.TrimSpace(c.CORS.AllowOrigin) == "" {
		return errors.New("cors.allow_origin must be set when CORS is enabled")
	}
	return nil
}

func (c *Config) validateLastMovie() error {
	if _, err := spreadsheet.ParseID(c.LastMovie.Spreadsheet); err != nil {
		return fmt.Errorf("last_movie.spreadsheet: %w", err)
	}
	if _, err := spreadsheet.SheetName(c.LastMovie.Range); err != nil {
		return fmt.Errorf("last_movie.range: %w", err)
	}
	if c.LastMovie.Object == "" {
		return errors.New("last_movie.object must be set")
	}
	return nil
}

func (c *Config) validateNetWorth() error {
	if _, err := spreadsheet.ParseID(c.NetWorth.Spreadsheet); err != nil {
		return fmt.Errorf("net_worth.spreadsheet: %w", err)
	}
	if _, err := spreadsheet.SheetName(c.NetWorth.Range); err != nil {
		return fmt.Errorf("net_worth.range: %w", err)
	}
	if c.NetWorth.Object == "" {
		return errors.New("net_worth.object must be set")
	}
	return nil
}

func (c *Config) validateExport() error {
	if _, err := spreadsheet.SheetName(c.Export.Range); err != nil {
		return fmt.Errorf("export.range: %w", err)
	}
	return nil
}

func (c *Config) validateRunning() error {
	r := c.Running

	if strings.TrimSpace(r.CSVObject) == "" {
		return errors.New("running.csv_object must be set")
	}
	if strings.TrimSpace(r.ChartObject) == "" {
		return errors.New("running.chart_object must be set")
	}

	switch r.Variant {
	case VariantPace:
		if strings.TrimSpace(r.Columns.Pace) == "" {
			return errors.New("running.columns.pace must be set for the pace variant")
		}
	case VariantDuration:
		if strings.TrimSpace(r.Columns.MovingTime) == "" {
			return errors.New("running.columns.moving_time must be set for the duration variant")
		}
	default:
		return fmt.Errorf("running.variant must be %q or %q (got %q)", VariantPace, VariantDuration, r.Variant)
	}

	if _, err := ParseWeekday(r.WeekEnd); err != nil {
		return fmt.Errorf("running.week_end: %w", err)
	}
	if r.PaceGoal <= 0 {
		return errors.New("running.pace_goal must be positive")
	}
	if r.HeartRateGoal <= 0 {
		return errors.New("running.heart_rate_goal must be positive")
	}
	if strings.TrimSpace(r.Columns.Date) == "" || strings.TrimSpace(r.Columns.Distance) == "" || strings.TrimSpace(r.Columns.HeartRate) == "" {
		return errors.New("running.columns.date, distance and heart_rate must be set")
	}
	if r.Chart.Width <= 0 || r.Chart.Height <= 0 {
		return errors.New("running.chart.width and height must be positive")
	}
	if r.Chart.DPI <= 0 {
		return errors.New("running.chart.dpi must be positive")
	}
	return nil
}

// WeekEnding returns the weekday that closes each aggregation week.
func (r Running) WeekEnding() time.Weekday {
	day, err := ParseWeekday(r.WeekEnd)
	if err != nil {
		return time.Monday
	}
	return day
}

// ParseWeekday accepts full or three-letter English weekday names, case-insensitively.
func ParseWeekday(v string) (time.Weekday, error) {
	s := strings.ToLower(strings.TrimSpace(v))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return d, nil
		}
	}
	return time.Sunday, fmt.Errorf("invalid weekday %q", v)
}

// LoadOptions returns the activity CSV loading options for the configured variant and
// filters.
func (r Running) LoadOptions() running.Options {
	return running.Options{
		Variant: running.Variant(r.Variant),
		Columns: running.Columns{
			Date:       r.Columns.Date,
			Distance:   r.Columns.Distance,
			Pace:       r.Columns.Pace,
			MovingTime: r.Columns.MovingTime,
			HeartRate:  r.Columns.HeartRate,
			Sport:      r.Columns.Sport,
			Name:       r.Columns.Name,
		},
		Sport:        r.Sport,
		NameContains: r.NameContains,
		DecimalComma: r.DecimalComma,
	}
}
