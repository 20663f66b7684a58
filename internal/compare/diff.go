// Package compare diffs two already-computed scenario series into a
// neutral-language delta report. It performs no simulation of its own: every
// number here is a subtraction or lookup over the projection and stress
// engines' outputs.
package compare

import (
	"fmt"
	"math"

	"github.com/lifeplan/lpgo/internal/domain"
	"github.com/lifeplan/lpgo/internal/stress"
	"github.com/shopspring/decimal"
)

// MetricDelta is one compared metric: the value under each scenario and
// their difference (B minus A).
type MetricDelta struct {
	A     float64 `json:"a"`
	B     float64 `json:"b"`
	Delta float64 `json:"delta"`
}

// ScenarioDiff is the structured comparison of two scenarios at a target
// month. WorstMonth carries labels only; the other metrics carry deltas.
type ScenarioDiff struct {
	TargetMonth      string      `json:"targetMonth"`
	NetWorthAtTarget MetricDelta `json:"netWorthAtTarget"`
	PeakStress       MetricDelta `json:"peakStress"`
	WorstMonthA      string      `json:"worstMonthA"`
	WorstMonthB      string      `json:"worstMonthB"`
	RedZoneMonths    MetricDelta `json:"redZoneMonths"`
	MinFreeTime      MetricDelta `json:"minFreeTime"`
}

// Series pairs one scenario's projection and stress outputs.
type Series struct {
	Projections []domain.MonthlyProjection
	Stress      []domain.StressScore
}

// Diff compares scenario B against scenario A at the target month label
// (for example the retirement month). Red-zone counting uses the given
// threshold; pass stress.DefaultRedZoneThreshold for the standard cut.
func Diff(a, b Series, targetMonth string, redZoneThreshold float64) ScenarioDiff {
	d := ScenarioDiff{TargetMonth: targetMonth}

	d.NetWorthAtTarget = delta(
		netWorthAt(a.Projections, targetMonth),
		netWorthAt(b.Projections, targetMonth),
	)

	_, peakA := stress.PeakStress(a.Stress)
	_, peakB := stress.PeakStress(b.Stress)
	d.PeakStress = delta(peakA.Composite, peakB.Composite)

	d.WorstMonthA = worstMonth(a.Projections)
	d.WorstMonthB = worstMonth(b.Projections)

	d.RedZoneMonths = delta(
		float64(stress.RedZoneMonths(a.Stress, redZoneThreshold)),
		float64(stress.RedZoneMonths(b.Stress, redZoneThreshold)),
	)
	d.MinFreeTime = delta(stress.MinFreeTime(a.Stress), stress.MinFreeTime(b.Stress))

	return d
}

func delta(a, b float64) MetricDelta {
	return MetricDelta{A: a, B: b, Delta: b - a}
}

// netWorthAt looks up net worth at the labeled month, falling back to the
// final month when the label is absent. Empty series read as zero.
func netWorthAt(projections []domain.MonthlyProjection, label string) float64 {
	if len(projections) == 0 {
		return 0
	}
	for _, p := range projections {
		if p.Month == label {
			v, _ := p.NetWorth.Float64()
			return v
		}
	}
	v, _ := projections[len(projections)-1].NetWorth.Float64()
	return v
}

// worstMonth returns the label of the most negative cashflow month, first
// occurrence on ties. Empty series yield "".
func worstMonth(projections []domain.MonthlyProjection) string {
	if len(projections) == 0 {
		return ""
	}
	worst := 0
	for i, p := range projections {
		if p.NetCashflow.LessThan(projections[worst].NetCashflow) {
			worst = i
		}
	}
	return projections[worst].Month
}

// FormatDeltaNeutral renders a delta without judgment about direction:
// "14 additional X", "5 fewer X", or "No difference in X". The delta is
// rounded before formatting and rendered as an absolute value.
func FormatDeltaNeutral(delta float64, noun string) string {
	rounded := int(math.Round(delta))
	switch {
	case rounded == 0:
		return fmt.Sprintf("No difference in %s", noun)
	case rounded > 0:
		return fmt.Sprintf("%d additional %s", rounded, noun)
	default:
		return fmt.Sprintf("%d fewer %s", -rounded, noun)
	}
}

// FormatCurrencyDelta is FormatDeltaNeutral for decimal currency amounts.
func FormatCurrencyDelta(delta decimal.Decimal, noun string) string {
	f, _ := delta.Float64()
	return FormatDeltaNeutral(f, noun)
}
