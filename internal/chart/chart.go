// Package chart renders the weekly pace and heart rate chart as a PNG.
package chart

import (
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/anselboero/cloud-functions/internal/running"
)

// ErrNoWeeks is returned when there is nothing to plot.
var ErrNoWeeks = errors.New("no plottable weeks")

var (
	paceColor     = drawing.ColorFromHex("1f77b4")
	hrColor       = drawing.ColorFromHex("d62728")
	paceGoalColor = drawing.ColorFromHex("00ffff")
	hrGoalColor   = drawing.ColorFromHex("ffa500")
	labelColor    = drawing.ColorFromHex("000080")
)

// half a week either side of the first and last points
const margin = 84 * time.Hour

// Options sizes and labels the chart.
type Options struct {
	Title         string
	Width         int
	Height        int
	DPI           float64
	PaceGoal      float64
	HeartRateGoal float64
}

// Render draws weighted pace on the left axis and weighted heart rate on the right axis,
// each with its goal line, and labels every pace point with the week's distance. Weeks with
// an undefined pace or heart rate are skipped.
func Render(w io.Writer, weeks []running.Week, opts Options) error {
	weeks = running.Plottable(weeks)
	if len(weeks) == 0 {
		return ErrNoWeeks
	}

	dates := make([]time.Time, len(weeks))
	paces := make([]float64, len(weeks))
	rates := make([]float64, len(weeks))

	for i, week := range weeks {
		pace, _ := week.Pace()
		hr, _ := week.HeartRate()

		dates[i] = week.Ending
		paces[i] = pace
		rates[i] = hr
	}

	start := dates[0].Add(-margin)
	end := dates[len(dates)-1].Add(margin)
	window := []time.Time{start, end}

	graph := chart.Chart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		DPI:    opts.DPI,
		TitleStyle: chart.Style{
			FontSize: 16,
		},
		Background: chart.Style{
			Padding: chart.Box{Top: 60, Left: 20, Right: 20, Bottom: 20},
		},
		XAxis: chart.XAxis{
			Name:           "Week",
			ValueFormatter: formatDate,
			Range:          &chart.ContinuousRange{Min: toFloat(start), Max: toFloat(end)},
		},
		YAxis: chart.YAxis{
			Name:           "Average Pace (min/km)",
			NameStyle:      chart.Style{FontColor: paceColor, FontSize: 12},
			Style:          chart.Style{FontColor: paceColor},
			ValueFormatter: formatPace,
			Range:          bounds(append(paces, opts.PaceGoal), 0.25),
		},
		YAxisSecondary: chart.YAxis{
			Name:      "Average Heart Rate (bpm)",
			NameStyle: chart.Style{FontColor: hrColor, FontSize: 12},
			Style:     chart.Style{FontColor: hrColor},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
			Range: bounds(append(rates, opts.HeartRateGoal), 2),
		},
		Series: []chart.Series{
			chart.TimeSeries{
				Name:    "Avg Pace",
				XValues: dates,
				YValues: paces,
				Style: chart.Style{
					StrokeColor: paceColor,
					StrokeWidth: 2,
					DotColor:    paceColor,
					DotWidth:    4,
				},
			},
			chart.TimeSeries{
				Name:    "Avg HR",
				YAxis:   chart.YAxisSecondary,
				XValues: dates,
				YValues: rates,
				Style: chart.Style{
					StrokeColor:     hrColor,
					StrokeWidth:     2,
					StrokeDashArray: []float64{6, 4},
					DotColor:        hrColor,
					DotWidth:        4,
				},
			},
			chart.TimeSeries{
				Name:    fmt.Sprintf("Pace Goal (%s)", goal(opts.PaceGoal)),
				XValues: window,
				YValues: []float64{opts.PaceGoal, opts.PaceGoal},
				Style: chart.Style{
					StrokeColor:     paceGoalColor,
					StrokeWidth:     1.5,
					StrokeDashArray: []float64{6, 4},
				},
			},
			chart.TimeSeries{
				Name:    fmt.Sprintf("HR Goal (%.0f)", opts.HeartRateGoal),
				YAxis:   chart.YAxisSecondary,
				XValues: window,
				YValues: []float64{opts.HeartRateGoal, opts.HeartRateGoal},
				Style: chart.Style{
					StrokeColor:     hrGoalColor,
					StrokeWidth:     1.5,
					StrokeDashArray: []float64{6, 4},
				},
			},
			chart.AnnotationSeries{
				Annotations: annotations(weeks),
			},
		},
	}

	graph.Elements = []chart.Renderable{
		chart.Legend(&graph),
	}

	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("unable to render chart (%w)", err)
	}

	return nil
}

// annotations labels each week's pace point with the week's total distance, rounded to a
// whole unit.
func annotations(weeks []running.Week) []chart.Value2 {
	list := make([]chart.Value2, 0, len(weeks))

	for _, week := range weeks {
		pace, ok := week.Pace()
		if !ok {
			continue
		}

		list = append(list, chart.Value2{
			XValue: toFloat(week.Ending),
			YValue: pace,
			Label:  fmt.Sprintf("%.0f", week.Distance),
			Style: chart.Style{
				FontSize:    9,
				FontColor:   labelColor,
				StrokeColor: labelColor,
			},
		})
	}

	return list
}

func toFloat(t time.Time) float64 {
	return float64(t.UnixNano())
}

func formatDate(v interface{}) string {
	if f, ok := v.(float64); ok {
		return time.Unix(0, int64(f)).UTC().Format("2006-01-02")
	}
	return ""
}

func formatPace(v interface{}) string {
	if f, ok := v.(float64); ok {
		return running.FormatPace(f)
	}
	return ""
}

// goal formats a pace goal without the leading zero, e.g. 6.5 as 6:30.
func goal(minutes float64) string {
	m := int(minutes)
	s := int(math.Round((minutes - float64(m)) * 60))
	if s == 60 {
		m, s = m+1, 0
	}

	return fmt.Sprintf("%d:%02d", m, s)
}

// bounds returns a range covering values, padded by a tenth of their spread and at least by
// pad so that a flat series still has a non-zero range.
func bounds(values []float64, pad float64) *chart.ContinuousRange {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	padding := math.Max((hi-lo)/10, pad)

	return &chart.ContinuousRange{
		Min: lo - padding,
		Max: hi + padding,
	}
}
