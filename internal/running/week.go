package running

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Week is the aggregate of the activities in one week. Ending is the closing day of the
// week at midnight UTC.
type Week struct {
	Ending     time.Time
	Runs       int
	Distance   float64
	TotalTime  float64
	WeightedHR float64
}

// Pace is the time-weighted average pace, total time over total distance. It is undefined
// for a week without distance.
func (w Week) Pace() (float64, bool) {
	if w.Distance == 0 {
		return 0, false
	}
	return w.TotalTime / w.Distance, true
}

// HeartRate is the time-weighted average heart rate. It is undefined for a week without
// time.
func (w Week) HeartRate() (float64, bool) {
	if w.TotalTime == 0 {
		return 0, false
	}
	return w.WeightedHR / w.TotalTime, true
}

// WeekEnding returns the calendar date of the first 'end' weekday on or after t. With a
// Monday end, weeks run Tuesday through Monday and every Monday closes its own week.
func WeekEnding(t time.Time, end time.Weekday) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := (int(end) - int(day.Weekday()) + 7) % 7

	return day.AddDate(0, 0, offset)
}

// Aggregate sums distance, time and weighted heart rate per week, ordered by week.
func Aggregate(records []Record, end time.Weekday) []Week {
	weeks := map[time.Time]*Week{}

	for _, r := range records {
		ending := WeekEnding(r.Date, end)

		w, ok := weeks[ending]
		if !ok {
			w = &Week{Ending: ending}
			weeks[ending] = w
		}

		w.Runs++
		w.Distance += r.Distance
		w.TotalTime += r.TotalTime
		w.WeightedHR += r.WeightedHeartRate()
	}

	list := make([]Week, 0, len(weeks))
	for _, w := range weeks {
		list = append(list, *w)
	}

	sort.Slice(list, func(i, j int) bool { return list[i].Ending.Before(list[j].Ending) })

	return list
}

// Plottable drops the weeks whose pace or heart rate is undefined.
func Plottable(weeks []Week) []Week {
	list := []Week{}
	for _, w := range weeks {
		_, okPace := w.Pace()
		_, okHR := w.HeartRate()
		if okPace && okHR {
			list = append(list, w)
		}
	}

	return list
}

// FormatPace formats decimal minutes as 'mm:ss'. Non-positive values format as "".
func FormatPace(minutes float64) string {
	if math.IsNaN(minutes) || minutes <= 0 {
		return ""
	}

	m := int(minutes)
	s := int(math.Mod(minutes*60, 60))

	return fmt.Sprintf("%02d:%02d", m, s)
}
