package output

import (
	"strings"
	"testing"
	"time"

	"github.com/lifeplan/lpgo/internal/compare"
	"github.com/lifeplan/lpgo/internal/debt"
	"github.com/lifeplan/lpgo/internal/domain"
	"github.com/lifeplan/lpgo/internal/longevity"
	"github.com/lifeplan/lpgo/internal/savings"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProjections() []domain.MonthlyProjection {
	return []domain.MonthlyProjection{
		{
			Month:        "2026-01",
			Income:       decimal.NewFromInt(6500),
			Expenses:     decimal.NewFromInt(4200),
			NetCashflow:  decimal.NewFromInt(2300),
			NetWorth:     decimal.NewFromInt(25000),
			NetWorthLow:  decimal.NewFromInt(24500),
			NetWorthHigh: decimal.NewFromInt(25500),
		},
		{
			Month:        "2026-02",
			Income:       decimal.NewFromInt(6500),
			Expenses:     decimal.NewFromInt(4300),
			NetCashflow:  decimal.NewFromInt(2200),
			NetWorth:     decimal.NewFromInt(27200),
			NetWorthLow:  decimal.NewFromInt(26493),
			NetWorthHigh: decimal.NewFromInt(27907),
		},
	}
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"table", "csv", "json"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, Format(name), f)
	}

	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xml")
}

func TestJSON(t *testing.T) {
	out, err := JSON(map[string]int{"months": 12})

	require.NoError(t, err)
	assert.Contains(t, out, `"months": 12`)
}

func TestProjectionTable(t *testing.T) {
	out := ProjectionTable(sampleProjections())

	assert.Contains(t, out, "FINANCIAL PROJECTION")
	assert.Contains(t, out, "2026-01")
	assert.Contains(t, out, "25000")
	assert.Contains(t, out, "27907")
}

func TestProjectionCSV(t *testing.T) {
	out := ProjectionCSV(sampleProjections())

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "month,income,expenses,net_cashflow,net_worth,net_worth_low,net_worth_high", lines[0])
	assert.Equal(t, "2026-01,6500,4200,2300,25000,24500,25500", lines[1])
}

func TestStressCSV(t *testing.T) {
	scores := []domain.StressScore{
		{Month: "2026-01", Composite: 42, FreeTime: 60, FinancialSurplus: 25,
			OverlapCount: 40, CaregivingLoad: 0, SleepProxy: 0, EmotionalLoad: 55},
	}

	out := StressCSV(scores)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "2026-01,42,60,25,40,0,0,55", lines[1])
}

func TestDebtTable(t *testing.T) {
	payoff := time.Date(2027, 6, 1, 0, 0, 0, 0, time.UTC)
	result := debt.PayoffResult{
		Pooled: true,
		Debts: []debt.DebtSummary{
			{
				Name:          "Credit card",
				Strategy:      domain.StrategyAvalanche,
				TotalInterest: decimal.NewFromFloat(312.50),
				TotalPaid:     decimal.NewFromFloat(5312.50),
				PayoffMonth:   18,
				PayoffDate:    &payoff,
			},
			{
				Name:     "Student loan",
				Strategy: domain.StrategyMinimumPayment,
			},
		},
		TotalInterest:    decimal.NewFromFloat(312.50),
		TotalPaid:        decimal.NewFromFloat(5312.50),
		MonthsToDebtFree: 0,
	}

	out := DebtTable(result)

	assert.Contains(t, out, "pooled allocation")
	assert.Contains(t, out, "Credit card")
	assert.Contains(t, out, "2027-06")
	assert.Contains(t, out, "never", "unpaid debts render explicitly")
	assert.Contains(t, out, "TOTAL")
}

func TestSavingsTable(t *testing.T) {
	result := savings.Result{
		Goals: []savings.GoalProjection{{
			Name:         "Emergency fund",
			Type:         domain.GoalEmergency,
			TargetAmount: decimal.NewFromInt(20000),
			FinalBalance: decimal.NewFromInt(21500),
			Reached:      true,
			Months:       []savings.GoalMonth{{Month: "2026-01", PercentComplete: 100}},
		}},
		Retirement: savings.RetirementReadiness{
			TotalSaved:             decimal.NewFromInt(120000),
			EstimatedMonthlyIncome: decimal.NewFromInt(400),
		},
	}

	out := SavingsTable(result)

	assert.Contains(t, out, "Emergency fund")
	assert.Contains(t, out, "100.0%")
	assert.Contains(t, out, "400.00/month")
}

func TestLongevityTable(t *testing.T) {
	summary := longevity.Summary{
		CurrentAge:            40,
		Sex:                   domain.SexMale,
		LifeExpectancy:        37.2,
		HealthyLifeExpectancy: 29.9,
		Percentiles:           longevity.Percentiles{P25: 68.9, P50: 79.0, P75: 86.4, P90: 91.5},
	}
	care := longevity.CareCostResult{LifetimeExpected: decimal.NewFromInt(185000)}

	out := LongevityTable(summary, care)

	assert.Contains(t, out, "40 (male)")
	assert.Contains(t, out, "37.2 more years (to age 77.2)")
	assert.Contains(t, out, "p50 79.0")
	assert.Contains(t, out, "185000 lifetime")
}

func TestDiffTable(t *testing.T) {
	d := compare.ScenarioDiff{
		TargetMonth:      "2046-01",
		NetWorthAtTarget: compare.MetricDelta{A: 400000, B: 385000, Delta: -15000},
		PeakStress:       compare.MetricDelta{A: 72, B: 86, Delta: 14},
		WorstMonthA:      "2031-03",
		WorstMonthB:      "2031-03",
		RedZoneMonths:    compare.MetricDelta{A: 4, B: 18, Delta: 14},
		MinFreeTime:      compare.MetricDelta{A: 35, B: 35, Delta: 0},
	}

	out := DiffTable(d)

	assert.Contains(t, out, "2046-01")
	assert.Contains(t, out, "14 additional months of elevated stress")
	assert.Contains(t, out, "15000 fewer dollars of net worth")
	assert.Contains(t, out, "No difference in points of minimum free time")
}

func TestDiffCSV(t *testing.T) {
	d := compare.ScenarioDiff{
		TargetMonth:      "2046-01",
		NetWorthAtTarget: compare.MetricDelta{A: 400000, B: 385000, Delta: -15000},
		WorstMonthA:      "2031-03",
		WorstMonthB:      "2032-07",
		RedZoneMonths:    compare.MetricDelta{A: 4, B: 18, Delta: 14},
	}

	out := DiffCSV(d)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "metric,a,b,delta", lines[0])
	assert.Equal(t, "net_worth_at_target,400000,385000,-15000", lines[1])
	assert.Equal(t, "worst_month,2031-03,2032-07,", lines[3])
	assert.Equal(t, "red_zone_months,4,18,14", lines[4])
}

func TestNetWorthChart(t *testing.T) {
	assert.Empty(t, NetWorthChart(nil))

	out := NetWorthChart(sampleProjections())
	assert.Contains(t, out, "Net worth")
}

func TestStressChart_DownsamplesLongSeries(t *testing.T) {
	scores := make([]domain.StressScore, 960)
	for i := range scores {
		scores[i] = domain.StressScore{Composite: float64(i % 100)}
	}

	out := StressChart(scores)

	assert.Contains(t, out, "Composite stress")
	assert.NotEmpty(t, out)
}
