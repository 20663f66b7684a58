package longevity

import (
	"math"

	"github.com/lifeplan/lpgo/internal/domain"
)

// Percentiles holds the ages at which survival probability first falls to
// the complementary quantile: P25 is the age a quarter of the cohort does
// not reach, P90 the age only one in ten reaches.
type Percentiles struct {
	P25 float64 `json:"p25"`
	P50 float64 `json:"p50"`
	P75 float64 `json:"p75"`
	P90 float64 `json:"p90"`
}

// Summary bundles the longevity outputs for one person.
type Summary struct {
	CurrentAge            int                    `json:"currentAge"`
	Sex                   domain.Sex             `json:"sex"`
	Curve                 []domain.SurvivalPoint `json:"curve"`
	LifeExpectancy        float64                `json:"lifeExpectancy"`        // remaining years
	HealthyLifeExpectancy float64                `json:"healthyLifeExpectancy"` // remaining years free of disability
	Percentiles           Percentiles            `json:"percentiles"`
}

// SurvivalCurve builds the survival probability sequence from the current
// age (fractional ages floor to the integer year) up to maxAge. The curve
// starts at 1.0 and never increases.
func SurvivalCurve(currentAge float64, sex domain.Sex, maxAge int) []domain.SurvivalPoint {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	age := int(math.Floor(currentAge))
	if age < 0 {
		age = 0
	}
	if age > maxAge {
		age = maxAge
	}

	curve := make([]domain.SurvivalPoint, 0, maxAge-age+1)
	prob := 1.0
	for a := age; a <= maxAge; a++ {
		curve = append(curve, domain.SurvivalPoint{Age: a, Probability: prob})
		q := MortalityRate(float64(a), sex)
		prob *= 1 - q
		if prob < 0 {
			prob = 0
		}
	}
	return curve
}

// LifeExpectancy integrates the survival curve by the trapezoidal rule and
// returns expected remaining years, rounded to one decimal.
func LifeExpectancy(currentAge float64, sex domain.Sex, maxAge int) float64 {
	return round1(expectedYears(SurvivalCurve(currentAge, sex, maxAge)))
}

func expectedYears(curve []domain.SurvivalPoint) float64 {
	total := 0.0
	for i := 1; i < len(curve); i++ {
		total += (curve[i-1].Probability + curve[i].Probability) / 2
	}
	return total
}

// LongevityPercentiles finds, by linear interpolation between bracketing
// curve points, the fractional age at which survival first falls to or
// below 1-p for each of the four standard percentiles.
func LongevityPercentiles(currentAge float64, sex domain.Sex, maxAge int) Percentiles {
	curve := SurvivalCurve(currentAge, sex, maxAge)
	return Percentiles{
		P25: ageAtProbability(curve, 0.75),
		P50: ageAtProbability(curve, 0.50),
		P75: ageAtProbability(curve, 0.25),
		P90: ageAtProbability(curve, 0.10),
	}
}

// ageAtProbability interpolates the fractional age where the curve crosses
// the target probability. If the curve never falls that low the final age is
// returned.
func ageAtProbability(curve []domain.SurvivalPoint, target float64) float64 {
	if len(curve) == 0 {
		return 0
	}
	for i := 1; i < len(curve); i++ {
		if curve[i].Probability <= target {
			prev, cur := curve[i-1], curve[i]
			drop := prev.Probability - cur.Probability
			if drop <= 0 {
				return float64(cur.Age)
			}
			t := (prev.Probability - target) / drop
			return round1(float64(prev.Age) + t)
		}
	}
	return float64(curve[len(curve)-1].Age)
}

// Disability fractions by age band: the share of a year at that age expected
// to be lived with limiting disability.
func disabilityFraction(age int) float64 {
	switch {
	case age < 50:
		return 0.12
	case age < 65:
		return 0.15
	case age < 75:
		return 0.25
	default:
		return 0.35
	}
}

// HealthyLifeExpectancy subtracts the age-banded disability-year estimate
// from total life expectancy, rounded to one decimal.
func HealthyLifeExpectancy(currentAge float64, sex domain.Sex, maxAge int) float64 {
	curve := SurvivalCurve(currentAge, sex, maxAge)
	total := 0.0
	disabled := 0.0
	for i := 1; i < len(curve); i++ {
		years := (curve[i-1].Probability + curve[i].Probability) / 2
		total += years
		disabled += years * disabilityFraction(curve[i-1].Age)
	}
	return round1(total - disabled)
}

// Summarize computes the full longevity picture in one pass.
func Summarize(currentAge float64, sex domain.Sex, maxAge int) Summary {
	curve := SurvivalCurve(currentAge, sex, maxAge)
	return Summary{
		CurrentAge:            int(math.Floor(currentAge)),
		Sex:                   sex,
		Curve:                 curve,
		LifeExpectancy:        round1(expectedYears(curve)),
		HealthyLifeExpectancy: HealthyLifeExpectancy(currentAge, sex, maxAge),
		Percentiles:           LongevityPercentiles(currentAge, sex, maxAge),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
