package longevity

import (
	"math"

	"github.com/lifeplan/lpgo/internal/domain"
	"github.com/shopspring/decimal"
)

// careCurveMaxAge bounds the care-needs curve; care probabilities flatten
// past 100 and the survival weight is negligible there.
const careCurveMaxAge = 100

// CareNeedsPoint holds the four care-level probabilities (percent) at one
// age. The four values sum to 100.
type CareNeedsPoint struct {
	Age         int     `json:"age"`
	Independent float64 `json:"independent"`
	Light       float64 `json:"light"`
	Moderate    float64 `json:"moderate"`
	Full        float64 `json:"full"`
}

// CareCostPoint is the expected annual care cost at one age, weighted by the
// probability of surviving to it.
type CareCostPoint struct {
	Age          int             `json:"age"`
	ExpectedCost decimal.Decimal `json:"expectedCost"`
}

// CareCostResult is the lifetime care cost expectation plus its per-age
// series.
type CareCostResult struct {
	LifetimeExpected decimal.Decimal `json:"lifetimeExpected"`
	ByAge            []CareCostPoint `json:"byAge"`
}

// Monthly care cost estimates in today's dollars, by assistance level.
var (
	costLightMonthly    = decimal.NewFromInt(2500)
	costModerateMonthly = decimal.NewFromInt(5500)
	costFullMonthly     = decimal.NewFromInt(9500)
)

// careSexFactor scales the transition probabilities. Women live longer with
// more years of assistance need, so the female factor runs above 1.
func careSexFactor(sex domain.Sex) float64 {
	if sex == domain.SexFemale {
		return 1.15
	}
	return 1.0
}

// baseCareBlend returns the unadjusted light/moderate/full probabilities
// (percent) for an age, built from age-band-specific linear blends.
func baseCareBlend(age int) (light, moderate, full float64) {
	switch {
	case age < 65:
		return 1.5, 0.4, 0.1
	case age < 75:
		t := float64(age-65) / 10
		return 2 + 8*t, 0.5 + 3.5*t, 0.2 + 1.8*t
	case age < 85:
		t := float64(age-75) / 10
		return 10 + 10*t, 4 + 8*t, 2 + 8*t
	default:
		t := float64(age-85) / 15
		if t > 1 {
			t = 1
		}
		return 20 + 5*t, 12 + 13*t, 10 + 25*t
	}
}

// CareNeedsCurve builds the care-level probability curve from the current
// age to 100. The sex factor multiplies the transition terms, then each
// point is renormalized so the four probabilities sum to exactly 100.
func CareNeedsCurve(currentAge float64, sex domain.Sex) []CareNeedsPoint {
	age := int(math.Floor(currentAge))
	if age < 0 {
		age = 0
	}
	if age > careCurveMaxAge {
		age = careCurveMaxAge
	}

	factor := careSexFactor(sex)
	curve := make([]CareNeedsPoint, 0, careCurveMaxAge-age+1)

	for a := age; a <= careCurveMaxAge; a++ {
		light, moderate, full := baseCareBlend(a)
		light *= factor
		moderate *= factor
		full *= factor

		independent := 100 - light - moderate - full
		if independent < 0 {
			independent = 0
		}

		total := independent + light + moderate + full
		scale := 100 / total

		curve = append(curve, CareNeedsPoint{
			Age:         a,
			Independent: independent * scale,
			Light:       light * scale,
			Moderate:    moderate * scale,
			Full:        full * scale,
		})
	}
	return curve
}

// ExpectedCareCosts integrates survival-weighted annual care costs over the
// care curve: per age, survival probability times the probability-weighted
// annual cost across the three paid assistance levels.
func ExpectedCareCosts(currentAge float64, sex domain.Sex) CareCostResult {
	curve := CareNeedsCurve(currentAge, sex)
	survival := SurvivalCurve(currentAge, sex, DefaultMaxAge)

	survivalAt := make(map[int]float64, len(survival))
	for _, pt := range survival {
		survivalAt[pt.Age] = pt.Probability
	}

	result := CareCostResult{LifetimeExpected: decimal.Zero}
	for _, pt := range curve {
		annual := annualCost(pt.Light, costLightMonthly).
			Add(annualCost(pt.Moderate, costModerateMonthly)).
			Add(annualCost(pt.Full, costFullMonthly))

		expected := annual.Mul(decimal.NewFromFloat(survivalAt[pt.Age])).Round(2)
		result.ByAge = append(result.ByAge, CareCostPoint{Age: pt.Age, ExpectedCost: expected})
		result.LifetimeExpected = result.LifetimeExpected.Add(expected)
	}
	result.LifetimeExpected = result.LifetimeExpected.Round(2)
	return result
}

// annualCost converts a probability (percent) and a monthly cost into the
// expected annual cost contribution.
func annualCost(probabilityPct float64, monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(decimal.NewFromInt(12)).Mul(decimal.NewFromFloat(probabilityPct / 100))
}
