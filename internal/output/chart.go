package output

import (
	"github.com/guptarohit/asciigraph"
	"github.com/lifeplan/lpgo/internal/domain"
)

// chartWidth is the downsampling target: long series are thinned to roughly
// this many points before plotting so an 80-year projection still fits a
// terminal.
const chartWidth = 100

const chartHeight = 12

// NetWorthChart plots the net worth series as an ascii chart.
func NetWorthChart(projections []domain.MonthlyProjection) string {
	if len(projections) == 0 {
		return ""
	}
	series := make([]float64, len(projections))
	for i, p := range projections {
		series[i], _ = p.NetWorth.Float64()
	}
	return asciigraph.Plot(downsample(series, chartWidth),
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Caption("Net worth"))
}

// StressChart plots the composite stress series as an ascii chart.
func StressChart(scores []domain.StressScore) string {
	if len(scores) == 0 {
		return ""
	}
	series := make([]float64, len(scores))
	for i, s := range scores {
		series[i] = s.Composite
	}
	return asciigraph.Plot(downsample(series, chartWidth),
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Caption("Composite stress"))
}

// downsample thins a series to at most target points by striding. The final
// point is always kept so the chart ends where the series does.
func downsample(series []float64, target int) []float64 {
	if len(series) <= target || target <= 0 {
		return series
	}
	stride := float64(len(series)-1) / float64(target-1)
	out := make([]float64, 0, target)
	for i := 0; i < target; i++ {
		out = append(out, series[int(float64(i)*stride)])
	}
	out[len(out)-1] = series[len(series)-1]
	return out
}
