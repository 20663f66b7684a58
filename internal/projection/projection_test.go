package projection

import (
	"testing"
	"time"

	"github.com/lifeplan/lpgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStart = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestCompute_StartingNetWorthNetsDebts(t *testing.T) {
	accounts := []domain.Account{
		{Name: "checking", Balance: decimal.NewFromInt(25000)},
		{Name: "card", Balance: decimal.NewFromInt(5000), IsDebt: true},
	}

	projections := Compute(accounts, nil, nil, testStart, 12)

	require.Len(t, projections, 12)
	assert.True(t, projections[0].NetWorth.Equal(decimal.NewFromInt(20000)),
		"net worth should net debts against assets, got %s", projections[0].NetWorth)
}

func TestCompute_EmptyInputs(t *testing.T) {
	projections := Compute(nil, nil, nil, testStart, 3)

	require.Len(t, projections, 3)
	for _, p := range projections {
		assert.True(t, p.Income.IsZero())
		assert.True(t, p.Expenses.IsZero())
		assert.True(t, p.NetWorth.IsZero())
	}
}

func TestCompute_NonPositiveMonths(t *testing.T) {
	assert.Empty(t, Compute(nil, nil, nil, testStart, 0))
	assert.Empty(t, Compute(nil, nil, nil, testStart, -5))
}

func TestCompute_IncomeGrowsAnnually(t *testing.T) {
	incomes := []domain.IncomeStream{{
		Name:             "salary",
		MonthlyAmount:    decimal.NewFromInt(1000),
		StartDate:        testStart,
		EndDate:          testStart.AddDate(10, 0, 0),
		AnnualGrowthRate: decimal.NewFromInt(12),
	}}

	projections := Compute(nil, incomes, nil, testStart, 13)

	require.Len(t, projections, 13)
	assert.True(t, projections[0].Income.Equal(decimal.NewFromInt(1000)))
	// One elapsed year compounds the full annual growth rate.
	assert.True(t, projections[12].Income.Equal(decimal.NewFromInt(1120)),
		"expected 1120 after one year of 12%% growth, got %s", projections[12].Income)
}

func TestCompute_WindowBoundsIncome(t *testing.T) {
	incomes := []domain.IncomeStream{{
		Name:          "contract",
		MonthlyAmount: decimal.NewFromInt(500),
		StartDate:     testStart.AddDate(0, 2, 0),
		EndDate:       testStart.AddDate(0, 4, 0),
	}}

	projections := Compute(nil, incomes, nil, testStart, 6)

	assert.True(t, projections[0].Income.IsZero())
	assert.True(t, projections[1].Income.IsZero())
	assert.True(t, projections[2].Income.Equal(decimal.NewFromInt(500)))
	assert.True(t, projections[4].Income.Equal(decimal.NewFromInt(500)))
	assert.True(t, projections[5].Income.IsZero())
}

func TestCompute_MonthlyInterestCompounds(t *testing.T) {
	accounts := []domain.Account{{
		Name:               "savings",
		Balance:            decimal.NewFromInt(1200),
		AnnualInterestRate: decimal.NewFromInt(12),
	}}

	projections := Compute(accounts, nil, nil, testStart, 2)

	// 1% monthly on 1200 earns 12 the first month.
	assert.True(t, projections[0].NetWorth.Equal(decimal.NewFromInt(1212)),
		"got %s", projections[0].NetWorth)
	// Second month compounds on 1212.
	assert.True(t, projections[1].NetWorth.Equal(decimal.NewFromInt(1224)),
		"got %s", projections[1].NetWorth)
}

func TestCompute_DebtInterestDragsNetWorth(t *testing.T) {
	accounts := []domain.Account{{
		Name:               "loan",
		Balance:            decimal.NewFromInt(1200),
		AnnualInterestRate: decimal.NewFromInt(12),
		IsDebt:             true,
	}}

	projections := Compute(accounts, nil, nil, testStart, 1)

	assert.True(t, projections[0].NetWorth.Equal(decimal.NewFromInt(-1212)),
		"debt interest should deepen negative net worth, got %s", projections[0].NetWorth)
}

func TestCompute_UncertaintyBandsWiden(t *testing.T) {
	projections := Compute(nil, nil, nil, testStart, 240)

	prev := decimal.Zero
	for i, p := range projections {
		width := p.NetWorthHigh.Sub(p.NetWorthLow)
		assert.True(t, width.GreaterThan(prev),
			"band width must strictly widen at month %d: %s <= %s", i, width, prev)
		prev = width
	}
}

func TestCompute_MonthLabels(t *testing.T) {
	projections := Compute(nil, nil, nil, testStart, 3)

	assert.Equal(t, "2026-01", projections[0].Month)
	assert.Equal(t, "2026-02", projections[1].Month)
	assert.Equal(t, "2026-03", projections[2].Month)
}
