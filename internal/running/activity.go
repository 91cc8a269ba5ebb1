// Package running loads running activities from a Garmin style CSV export and aggregates
// them into weekly, time-weighted pace and heart rate.
package running

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/anselboero/cloud-functions/internal/spreadsheet"
)

// Variant selects how the elapsed time of an activity is derived.
type Variant string

const (
	// Pace derives elapsed time as distance × the 'mm:ss' average pace.
	Pace Variant = "pace"
	// Duration takes elapsed time from the '[h:]mm:ss' moving time.
	Duration Variant = "duration"
)

// Columns names the CSV headers. Matching ignores case, spaces and underscores.
type Columns struct {
	Date       string
	Distance   string
	Pace       string
	MovingTime string
	HeartRate  string
	Sport      string
	Name       string
}

// Options controls loading. An empty Sport or NameContains disables that filter.
type Options struct {
	Variant      Variant
	Columns      Columns
	Sport        string
	NameContains string
	DecimalComma bool
}

// Record is a cleaned activity. TotalTime is in minutes and Pace in minutes per distance
// unit (zero for the duration variant).
type Record struct {
	Sport     string
	Name      string
	Date      time.Time
	Distance  float64
	Pace      float64
	TotalTime float64
	HeartRate float64
}

// WeightedHeartRate is the activity's contribution to a time-weighted heart rate average.
func (r Record) WeightedHeartRate() float64 {
	return r.TotalTime * r.HeartRate
}

// Summary counts what happened to the CSV rows while loading.
type Summary struct {
	Rows     int
	Filtered int
	Dropped  int
	Loaded   int
}

var dateLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1/2/2006",
}

// Load parses the CSV, applies the sport and name filters and drops rows with a missing or
// unparsable date, distance, pace or moving time, or heart rate.
func Load(r io.Reader, opts Options) ([]Record, Summary, error) {
	summary := Summary{}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, summary, fmt.Errorf("invalid CSV (%w)", err)
	}

	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\ufeff")
	}

	table, err := spreadsheet.MakeTable(rows, opts.required()...)
	if err != nil {
		return nil, summary, err
	}

	records := []Record{}
	for _, row := range table.Records {
		summary.Rows++

		if !opts.matches(table, row) {
			summary.Filtered++
			continue
		}

		record, ok := opts.parse(table, row)
		if !ok {
			summary.Dropped++
			continue
		}

		records = append(records, record)
	}

	summary.Loaded = len(records)

	return records, summary, nil
}

func (o Options) required() []string {
	columns := []string{o.Columns.Date, o.Columns.Distance, o.Columns.HeartRate}

	if o.Variant == Duration {
		columns = append(columns, o.Columns.MovingTime)
	} else {
		columns = append(columns, o.Columns.Pace)
	}

	if o.Sport != "" {
		columns = append(columns, o.Columns.Sport)
	}

	if o.NameContains != "" {
		columns = append(columns, o.Columns.Name)
	}

	return columns
}

func (o Options) matches(table *spreadsheet.Table, row []string) bool {
	if o.Sport != "" {
		if sport, _ := table.Get(row, o.Columns.Sport); strings.TrimSpace(sport) != o.Sport {
			return false
		}
	}

	if o.NameContains != "" {
		if name, _ := table.Get(row, o.Columns.Name); !strings.Contains(name, o.NameContains) {
			return false
		}
	}

	return true
}

func (o Options) parse(table *spreadsheet.Table, row []string) (Record, bool) {
	get := func(column string) string {
		v, _ := table.Get(row, column)
		return strings.TrimSpace(v)
	}

	date, ok := parseDate(get(o.Columns.Date))
	if !ok {
		return Record{}, false
	}

	distance, ok := parseNumber(get(o.Columns.Distance), o.DecimalComma)
	if !ok {
		return Record{}, false
	}

	hr, ok := parseNumber(get(o.Columns.HeartRate), o.DecimalComma)
	if !ok {
		return Record{}, false
	}

	record := Record{
		Sport:     get(o.Columns.Sport),
		Name:      get(o.Columns.Name),
		Date:      date,
		Distance:  distance,
		HeartRate: hr,
	}

	switch o.Variant {
	case Duration:
		minutes, ok := parseDuration(get(o.Columns.MovingTime))
		if !ok {
			return Record{}, false
		}
		record.TotalTime = minutes

	default:
		pace, ok := parsePace(get(o.Columns.Pace))
		if !ok {
			return Record{}, false
		}
		record.Pace = pace
		record.TotalTime = pace * distance
	}

	return record, true
}

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func parseNumber(s string, decimalComma bool) (float64, bool) {
	if decimalComma {
		s = strings.ReplaceAll(s, ",", ".")
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}

	return v, true
}

// parsePace converts 'mm:ss' to decimal minutes. Anything after the seconds is ignored.
func parsePace(s string) (float64, bool) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, false
	}

	minutes, ok := parseNumber(parts[0], false)
	if !ok {
		return 0, false
	}

	seconds, ok := parseNumber(parts[1], false)
	if !ok {
		return 0, false
	}

	return minutes + seconds/60, true
}

// parseDuration converts 'h:mm:ss', 'mm:ss' or plain minutes to decimal minutes.
func parseDuration(s string) (float64, bool) {
	parts := strings.Split(s, ":")
	values := make([]float64, len(parts))
	for i, p := range parts {
		v, ok := parseNumber(p, false)
		if !ok {
			return 0, false
		}
		values[i] = v
	}

	switch len(values) {
	case 1:
		return values[0], true
	case 2:
		return values[0] + values[1]/60, true
	case 3:
		return values[0]*60 + values[1] + values[2]/60, true
	default:
		return 0, false
	}
}
