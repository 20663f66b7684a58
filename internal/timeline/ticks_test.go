package timeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTicks_InvertedWindow(t *testing.T) {
	assert.Nil(t, GenerateTicks(origin, origin.AddDate(0, 0, -1), origin, 1))
}

func TestGenerateTicks_WeekTier(t *testing.T) {
	// 2026-01-01 is a Thursday; the window holds Mondays Jan 5 and Jan 12.
	ticks := GenerateTicks(origin, origin.AddDate(0, 0, 13), origin, 10)

	require.Len(t, ticks, 14, "every day gets a tick at high densities")
	var majors []AxisTick
	for _, tick := range ticks {
		if tick.Major {
			majors = append(majors, tick)
		} else {
			assert.Empty(t, tick.Label)
		}
	}
	require.Len(t, majors, 2)
	assert.Equal(t, "Jan 05", majors[0].Label)
	assert.Equal(t, "Jan 12", majors[1].Label)
	assert.Equal(t, time.Monday, majors[0].Date.Weekday())
}

func TestGenerateTicks_MonthTier(t *testing.T) {
	ticks := GenerateTicks(origin, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), origin, 2)

	var majors, minors []AxisTick
	for _, tick := range ticks {
		if tick.Major {
			majors = append(majors, tick)
		} else {
			minors = append(minors, tick)
		}
	}
	require.Len(t, majors, 3)
	assert.Equal(t, "Jan 2026", majors[0].Label)
	assert.Equal(t, "Feb 2026", majors[1].Label)
	assert.Equal(t, "Mar 2026", majors[2].Label)
	for _, tick := range minors {
		assert.Equal(t, time.Monday, tick.Date.Weekday())
	}
	assert.Len(t, minors, 8)
}

func TestGenerateTicks_YearTier(t *testing.T) {
	ticks := GenerateTicks(origin, time.Date(2027, 12, 31, 0, 0, 0, 0, time.UTC), origin, 0.5)

	require.Len(t, ticks, 24, "one tick per month start")
	var majors []AxisTick
	for _, tick := range ticks {
		if tick.Major {
			majors = append(majors, tick)
		}
	}
	require.Len(t, majors, 2)
	assert.Equal(t, "2026", majors[0].Label)
	assert.Equal(t, "2027", majors[1].Label)
}

func TestGenerateTicks_DecadeTier(t *testing.T) {
	start := time.Date(2018, 6, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2041, 1, 1, 0, 0, 0, 0, time.UTC)

	ticks := GenerateTicks(start, end, origin, 0.05)

	require.Len(t, ticks, 23, "year starts 2019 through 2041")
	var labels []string
	for _, tick := range ticks {
		if tick.Major {
			labels = append(labels, tick.Label)
		}
	}
	assert.Equal(t, []string{"2020", "2030", "2040"}, labels)
}

func TestGenerateTicks_PositionsMatchDates(t *testing.T) {
	ticks := GenerateTicks(origin, origin.AddDate(0, 2, 0), origin, 2)

	for _, tick := range ticks {
		assert.Equal(t, DateToPixel(tick.Date, origin, 2), tick.X)
	}
}

func TestGenerateTicks_StableUnderPanning(t *testing.T) {
	// The same Monday must land on the same pixel whatever window asked
	// for it.
	a := GenerateTicks(origin, origin.AddDate(0, 1, 0), origin, 10)
	b := GenerateTicks(origin.AddDate(0, 0, 3), origin.AddDate(0, 1, 0), origin, 10)

	positions := map[string]float64{}
	for _, tick := range a {
		positions[tick.Date.Format("2006-01-02")] = tick.X
	}
	for _, tick := range b {
		if x, ok := positions[tick.Date.Format("2006-01-02")]; ok {
			assert.Equal(t, x, tick.X)
		}
	}
}
