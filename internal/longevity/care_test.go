package longevity

import (
	"testing"

	"github.com/lifeplan/lpgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCareNeedsCurve_SumsToHundred(t *testing.T) {
	for _, sex := range []domain.Sex{domain.SexMale, domain.SexFemale} {
		curve := CareNeedsCurve(60, sex)
		require.NotEmpty(t, curve)
		for _, pt := range curve {
			sum := pt.Independent + pt.Light + pt.Moderate + pt.Full
			assert.InDelta(t, 100.0, sum, 0.0001, "age %d (%s)", pt.Age, sex)
		}
	}
}

func TestCareNeedsCurve_RunsToAgeHundred(t *testing.T) {
	curve := CareNeedsCurve(60, domain.SexMale)

	assert.Equal(t, 60, curve[0].Age)
	assert.Equal(t, 100, curve[len(curve)-1].Age)
	assert.Len(t, curve, 41)
}

func TestCareNeedsCurve_NeedRisesWithAge(t *testing.T) {
	for _, sex := range []domain.Sex{domain.SexMale, domain.SexFemale} {
		curve := CareNeedsCurve(60, sex)
		for i := 1; i < len(curve); i++ {
			assert.GreaterOrEqual(t, curve[i].Full, curve[i-1].Full,
				"full-care probability must not fall at age %d (%s)", curve[i].Age, sex)
			assert.LessOrEqual(t, curve[i].Independent, curve[i-1].Independent,
				"independence must not rise at age %d (%s)", curve[i].Age, sex)
		}
	}
}

func TestCareNeedsCurve_WomenNeedMoreCare(t *testing.T) {
	male := CareNeedsCurve(80, domain.SexMale)
	female := CareNeedsCurve(80, domain.SexFemale)

	require.Equal(t, len(male), len(female))
	for i := range male {
		assert.Greater(t, female[i].Full, male[i].Full, "age %d", male[i].Age)
		assert.Less(t, female[i].Independent, male[i].Independent, "age %d", male[i].Age)
	}
}

func TestExpectedCareCosts_PositiveAndReconciled(t *testing.T) {
	result := ExpectedCareCosts(65, domain.SexFemale)

	assert.True(t, result.LifetimeExpected.GreaterThan(decimal.Zero))
	require.NotEmpty(t, result.ByAge)

	sum := decimal.Zero
	for _, pt := range result.ByAge {
		assert.False(t, pt.ExpectedCost.IsNegative(), "age %d", pt.Age)
		sum = sum.Add(pt.ExpectedCost)
	}
	assert.True(t, sum.Equal(result.LifetimeExpected))
}

func TestExpectedCareCosts_SurvivalWeightShrinksLateCosts(t *testing.T) {
	result := ExpectedCareCosts(65, domain.SexMale)

	byAge := make(map[int]decimal.Decimal, len(result.ByAge))
	for _, pt := range result.ByAge {
		byAge[pt.Age] = pt.ExpectedCost
	}
	// Care need keeps climbing past 85, but so few survive to 100 that the
	// survival weight dominates.
	assert.True(t, byAge[100].LessThan(byAge[85]))
}
