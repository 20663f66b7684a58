// Package stress derives the monthly composite psychosocial stress score
// from phase overlap and the financial projection.
//
// Naming note: the FreeTime sub-score measures load, not free time; a
// higher value means more stress. The inversion is historical and cancels
// correctly inside the composite's weight table, so it is preserved rather
// than flipped; MinFreeTime converts back to actual free time where callers
// need it.
package stress

import (
	"math"
	"time"

	"github.com/lifeplan/lpgo/internal/domain"
)

// DefaultRedZoneThreshold marks a month as red-zone when the composite
// meets or exceeds it.
const DefaultRedZoneThreshold = 70.0

// Composite weights. They sum to 1; FreeTime and FinancialSurplus carry the
// most signal.
const (
	weightFreeTime         = 0.20
	weightFinancialSurplus = 0.20
	weightOverlapCount     = 0.15
	weightCaregivingLoad   = 0.15
	weightSleepProxy       = 0.15
	weightEmotionalLoad    = 0.15
)

// Compute scores every month from start. The projection series supplies net
// cashflow per month; months beyond its length score as zero cashflow.
func Compute(phases []domain.Phase, projections []domain.MonthlyProjection, start time.Time, months int) []domain.StressScore {
	if months <= 0 {
		return []domain.StressScore{}
	}

	out := make([]domain.StressScore, 0, months)
	for m := 0; m < months; m++ {
		monthDate := domain.MonthDate(start, m)

		totalLoad := 0.0
		totalCaregiving := 0.0
		totalIntensity := 0.0
		activeCount := 0
		for _, p := range phases {
			if !p.ActiveAt(monthDate) {
				continue
			}
			activeCount++
			totalLoad += p.LoadTimeCost
			totalCaregiving += p.CaregivingHours
			totalIntensity += p.EmotionalIntensity
		}

		cashflow := 0.0
		if m < len(projections) {
			cashflow, _ = projections[m].NetCashflow.Float64()
		}

		score := domain.StressScore{
			Month:            domain.MonthLabel(start, m),
			ActivePhaseCount: activeCount,
			FreeTime:         clamp(totalLoad),
			FinancialSurplus: financialSurplus(cashflow),
			OverlapCount:     clamp(float64(activeCount) * 20),
			CaregivingLoad:   clamp(totalCaregiving / 40 * 100),
			SleepProxy:       clamp(math.Max(0, totalLoad-60) * 2.5),
		}
		if activeCount > 0 {
			score.EmotionalLoad = clamp(totalIntensity / float64(activeCount))
		}

		composite := score.FreeTime*weightFreeTime +
			score.FinancialSurplus*weightFinancialSurplus +
			score.OverlapCount*weightOverlapCount +
			score.CaregivingLoad*weightCaregivingLoad +
			score.SleepProxy*weightSleepProxy +
			score.EmotionalLoad*weightEmotionalLoad
		score.Composite = clamp(composite)

		score.FreeTime = math.Round(score.FreeTime)
		score.FinancialSurplus = math.Round(score.FinancialSurplus)
		score.OverlapCount = math.Round(score.OverlapCount)
		score.CaregivingLoad = math.Round(score.CaregivingLoad)
		score.SleepProxy = math.Round(score.SleepProxy)
		score.EmotionalLoad = math.Round(score.EmotionalLoad)
		score.Composite = math.Round(score.Composite)

		out = append(out, score)
	}
	return out
}

// financialSurplus maps net cashflow to stress: deficits scale linearly,
// while surpluses still carry a small floor that decays as the surplus
// grows.
func financialSurplus(cashflow float64) float64 {
	if cashflow < 0 {
		return clamp(-cashflow / 50)
	}
	return clamp(math.Max(0, 30-cashflow/200))
}

// PeakStress returns the month index and score of the maximum composite,
// first occurrence on ties. Index is -1 for an empty series.
func PeakStress(scores []domain.StressScore) (int, domain.StressScore) {
	if len(scores) == 0 {
		return -1, domain.StressScore{}
	}
	best := 0
	for i, s := range scores {
		if s.Composite > scores[best].Composite {
			best = i
		}
	}
	return best, scores[best]
}

// RedZoneMonths counts months whose composite meets or exceeds the
// threshold.
func RedZoneMonths(scores []domain.StressScore, threshold float64) int {
	count := 0
	for _, s := range scores {
		if s.Composite >= threshold {
			count++
		}
	}
	return count
}

// MinFreeTime returns the minimum actual free time (100 minus the FreeTime
// load score) across the series, or 100 for an empty series.
func MinFreeTime(scores []domain.StressScore) float64 {
	min := 100.0
	for _, s := range scores {
		if free := 100 - s.FreeTime; free < min {
			min = free
		}
	}
	return min
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
