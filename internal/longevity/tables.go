// Package longevity derives survival curves, life expectancy, longevity
// percentiles and care-need projections from fixed period-life mortality
// tables. The tables are reference data, not fitted: they are sampled at
// irregular age breakpoints and linearly interpolated between them.
package longevity

import "github.com/lifeplan/lpgo/internal/domain"

// DefaultMaxAge bounds the survival curve. Rates clamp at the table's last
// breakpoint beyond it.
const DefaultMaxAge = 110

// ratePoint is one table breakpoint: annual probability of death at an age.
type ratePoint struct {
	age  int
	rate float64
}

// Period-life annual mortality probabilities, male. Irregular breakpoints:
// dense where the curve bends, sparse where it is flat.
var maleMortality = []ratePoint{
	{0, 0.0058},
	{1, 0.0004},
	{5, 0.0001},
	{10, 0.0001},
	{15, 0.0005},
	{20, 0.0012},
	{25, 0.0015},
	{30, 0.0017},
	{35, 0.0020},
	{40, 0.0025},
	{45, 0.0036},
	{50, 0.0053},
	{55, 0.0080},
	{60, 0.0119},
	{65, 0.0177},
	{70, 0.0270},
	{75, 0.0424},
	{80, 0.0692},
	{85, 0.1146},
	{90, 0.1849},
	{95, 0.2730},
	{100, 0.3664},
	{105, 0.4548},
	{110, 0.5344},
}

// Period-life annual mortality probabilities, female. Lower than the male
// table at every breakpoint.
var femaleMortality = []ratePoint{
	{0, 0.0048},
	{1, 0.0003},
	{5, 0.0001},
	{10, 0.0001},
	{15, 0.0002},
	{20, 0.0004},
	{25, 0.0006},
	{30, 0.0008},
	{35, 0.0011},
	{40, 0.0015},
	{45, 0.0022},
	{50, 0.0033},
	{55, 0.0050},
	{60, 0.0075},
	{65, 0.0112},
	{70, 0.0175},
	{75, 0.0290},
	{80, 0.0503},
	{85, 0.0888},
	{90, 0.1514},
	{95, 0.2337},
	{100, 0.3249},
	{105, 0.4126},
	{110, 0.4952},
}

func tableFor(sex domain.Sex) []ratePoint {
	if sex == domain.SexFemale {
		return femaleMortality
	}
	return maleMortality
}

// MortalityRate returns the annual probability of death at the given age,
// linearly interpolated between table breakpoints. Ages outside the table
// clamp to the boundary rate.
func MortalityRate(age float64, sex domain.Sex) float64 {
	table := tableFor(sex)

	if age <= float64(table[0].age) {
		return table[0].rate
	}
	last := table[len(table)-1]
	if age >= float64(last.age) {
		return last.rate
	}

	for i := 1; i < len(table); i++ {
		if age <= float64(table[i].age) {
			lo, hi := table[i-1], table[i]
			span := float64(hi.age - lo.age)
			t := (age - float64(lo.age)) / span
			return lo.rate + t*(hi.rate-lo.rate)
		}
	}
	return last.rate
}
