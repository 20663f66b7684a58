// Package timeline maps phases onto a 2-D coordinate space for rendering:
// horizontal pixels from dates, lanes from categories, calendar-aligned axis
// ticks, and viewport culling. It shares the temporal domain model with the
// simulation engines but does no financial or stress computation.
package timeline

import (
	"math"
	"time"
)

// Zoom density bounds in pixels per day.
const (
	MinPixelsPerDay = 0.01
	MaxPixelsPerDay = 100.0
)

// ClampPixelsPerDay bounds a zoom density to the supported range. In-range
// values pass through unchanged.
func ClampPixelsPerDay(ppd float64) float64 {
	if ppd < MinPixelsPerDay {
		return MinPixelsPerDay
	}
	if ppd > MaxPixelsPerDay {
		return MaxPixelsPerDay
	}
	return ppd
}

// DaysBetween returns the whole-day difference from origin to date.
func DaysBetween(origin, date time.Time) int {
	return int(math.Round(date.Sub(origin).Hours() / 24))
}

// DateToPixel converts a date to a horizontal pixel position relative to the
// time origin at the given density.
func DateToPixel(date, origin time.Time, ppd float64) float64 {
	return float64(DaysBetween(origin, date)) * ppd
}

// PixelToDate converts a pixel position back to a date, rounding to whole
// days. DateToPixel(PixelToDate(px)) == px whenever px falls on a whole-day
// boundary.
func PixelToDate(px float64, origin time.Time, ppd float64) time.Time {
	days := int(math.Round(px / ppd))
	return origin.AddDate(0, 0, days)
}
