package savings

import (
	"testing"
	"time"

	"github.com/lifeplan/lpgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func goal(name string, balance, target, contribution, rate int64, gt domain.GoalType, months int) domain.SavingsGoal {
	return domain.SavingsGoal{
		Name:                name,
		CurrentBalance:      decimal.NewFromInt(balance),
		TargetAmount:        decimal.NewFromInt(target),
		MonthlyContribution: decimal.NewFromInt(contribution),
		AnnualReturnRate:    decimal.NewFromInt(rate),
		Type:                gt,
		StartDate:           testStart,
		TargetDate:          testStart.AddDate(0, months, 0),
	}
}

func TestCompute_NoGoals(t *testing.T) {
	result := Compute(nil)

	assert.Empty(t, result.Goals)
	assert.True(t, result.Retirement.TotalSaved.IsZero())
	assert.True(t, result.Retirement.EstimatedMonthlyIncome.IsZero())
}

func TestCompute_ContributionsAccumulate(t *testing.T) {
	result := Compute([]domain.SavingsGoal{
		goal("house fund", 1000, 2000, 100, 0, domain.GoalHouse, 5),
	})

	require.Len(t, result.Goals, 1)
	gp := result.Goals[0]
	require.Len(t, gp.Months, 6, "start through target inclusive")
	assert.True(t, gp.FinalBalance.Equal(decimal.NewFromInt(1600)), "got %s", gp.FinalBalance)
	assert.InDelta(t, 80.0, gp.Months[5].PercentComplete, 0.001)
	assert.False(t, gp.Reached)
}

func TestCompute_ReturnsCompoundMonthly(t *testing.T) {
	result := Compute([]domain.SavingsGoal{
		goal("index fund", 1200, 100000, 0, 12, domain.GoalCustom, 1),
	})

	require.Len(t, result.Goals, 1)
	months := result.Goals[0].Months
	require.Len(t, months, 2)
	// 1% monthly: 1200 -> 1212 -> 1224.12.
	assert.True(t, months[0].Balance.Equal(decimal.NewFromInt(1212)), "got %s", months[0].Balance)
	assert.True(t, months[1].Balance.Equal(decimal.NewFromFloat(1224.12)), "got %s", months[1].Balance)
}

func TestCompute_ZeroTargetReadsComplete(t *testing.T) {
	result := Compute([]domain.SavingsGoal{
		goal("no target", 500, 0, 0, 0, domain.GoalCustom, 2),
	})

	require.Len(t, result.Goals, 1)
	gp := result.Goals[0]
	assert.True(t, gp.Reached)
	for _, m := range gp.Months {
		assert.Equal(t, 100.0, m.PercentComplete)
	}
}

func TestCompute_PercentCompleteClampsAt100(t *testing.T) {
	result := Compute([]domain.SavingsGoal{
		goal("overfunded", 5000, 1000, 0, 0, domain.GoalEmergency, 1),
	})

	gp := result.Goals[0]
	assert.True(t, gp.Reached)
	for _, m := range gp.Months {
		assert.Equal(t, 100.0, m.PercentComplete)
	}
}

func TestCompute_RetirementIncomeUsesFourPercentRule(t *testing.T) {
	result := Compute([]domain.SavingsGoal{
		goal("401k", 120000, 1000000, 0, 0, domain.GoalRetirement, 0),
		goal("vacation", 9999, 10000, 0, 0, domain.GoalCustom, 0),
	})

	// Only retirement-typed goals feed the readiness summary.
	assert.True(t, result.Retirement.TotalSaved.Equal(decimal.NewFromInt(120000)),
		"got %s", result.Retirement.TotalSaved)
	assert.True(t, result.Retirement.EstimatedMonthlyIncome.Equal(decimal.NewFromInt(400)),
		"4%% of 120000 over twelve months, got %s", result.Retirement.EstimatedMonthlyIncome)
}

func TestCompute_TargetBeforeStartProjectsSingleMonth(t *testing.T) {
	g := goal("inverted", 100, 1000, 50, 0, domain.GoalCustom, 0)
	g.TargetDate = testStart.AddDate(0, -3, 0)

	result := Compute([]domain.SavingsGoal{g})

	require.Len(t, result.Goals, 1)
	assert.Len(t, result.Goals[0].Months, 1)
}
