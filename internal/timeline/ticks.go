package timeline

import "time"

// AxisTick is one axis mark: its pixel position, date, label and weight.
// Minor ticks render unlabeled.
type AxisTick struct {
	X     float64   `json:"x"`
	Date  time.Time `json:"date"`
	Label string    `json:"label"`
	Major bool      `json:"major"`
}

// Density thresholds choosing the tick tier. Below decadeThreshold only
// decades are readable; above weekThreshold individual days are.
const (
	decadeThreshold = 0.08 // px/day below which decades are the major unit
	monthThreshold  = 1.0  // px/day below which years are the major unit
	weekThreshold   = 8.0  // px/day below which months are the major unit
)

// GenerateTicks produces calendar-aligned axis ticks for the [start,end]
// window at the given density. Ticks walk calendar boundaries (year starts,
// month starts, week starts, days) rather than fixed pixel steps, so they
// stay aligned under panning and zooming. The tier (decade, year, month or
// week view) follows the density thresholds.
func GenerateTicks(start, end time.Time, origin time.Time, ppd float64) []AxisTick {
	ppd = ClampPixelsPerDay(ppd)
	if end.Before(start) {
		return nil
	}

	switch {
	case ppd < decadeThreshold:
		return decadeTicks(start, end, origin, ppd)
	case ppd < monthThreshold:
		return yearTicks(start, end, origin, ppd)
	case ppd < weekThreshold:
		return monthTicks(start, end, origin, ppd)
	default:
		return weekTicks(start, end, origin, ppd)
	}
}

// decadeTicks: major at decade year starts, minor at year starts.
func decadeTicks(start, end, origin time.Time, ppd float64) []AxisTick {
	var ticks []AxisTick
	for y := start.Year(); y <= end.Year(); y++ {
		d := time.Date(y, time.January, 1, 0, 0, 0, 0, start.Location())
		if d.Before(start) || d.After(end) {
			continue
		}
		major := y%10 == 0
		label := ""
		if major {
			label = d.Format("2006")
		}
		ticks = append(ticks, AxisTick{X: DateToPixel(d, origin, ppd), Date: d, Label: label, Major: major})
	}
	return ticks
}

// yearTicks: major at year starts, minor at month starts.
func yearTicks(start, end, origin time.Time, ppd float64) []AxisTick {
	var ticks []AxisTick
	d := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, start.Location())
	if d.Before(start) {
		d = d.AddDate(0, 1, 0)
	}
	for !d.After(end) {
		major := d.Month() == time.January
		label := ""
		if major {
			label = d.Format("2006")
		}
		ticks = append(ticks, AxisTick{X: DateToPixel(d, origin, ppd), Date: d, Label: label, Major: major})
		d = d.AddDate(0, 1, 0)
	}
	return ticks
}

// monthTicks: major at month starts, minor at week starts (Mondays).
func monthTicks(start, end, origin time.Time, ppd float64) []AxisTick {
	var ticks []AxisTick
	for d := startOfDay(start); !d.After(end); d = d.AddDate(0, 0, 1) {
		major := d.Day() == 1
		minor := d.Weekday() == time.Monday
		if !major && !minor {
			continue
		}
		label := ""
		if major {
			label = d.Format("Jan 2006")
		}
		ticks = append(ticks, AxisTick{X: DateToPixel(d, origin, ppd), Date: d, Label: label, Major: major})
	}
	return ticks
}

// weekTicks: major at week starts, minor at every day.
func weekTicks(start, end, origin time.Time, ppd float64) []AxisTick {
	var ticks []AxisTick
	for d := startOfDay(start); !d.After(end); d = d.AddDate(0, 0, 1) {
		major := d.Weekday() == time.Monday
		label := ""
		if major {
			label = d.Format("Jan 02")
		}
		ticks = append(ticks, AxisTick{X: DateToPixel(d, origin, ppd), Date: d, Label: label, Major: major})
	}
	return ticks
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
