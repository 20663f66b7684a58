// Package savings projects per-goal compounding contribution balances and a
// retirement-readiness summary.
package savings

import (
	"github.com/lifeplan/lpgo/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// withdrawalRate is the 4%-rule annual withdrawal fraction used for the
// retirement income estimate.
var withdrawalRate = decimal.NewFromFloat(0.04)

// GoalMonth is one month of a goal's balance track.
type GoalMonth struct {
	Month           string          `json:"month"`
	Balance         decimal.Decimal `json:"balance"`
	PercentComplete float64         `json:"percentComplete"`
}

// GoalProjection is the full track for one goal.
type GoalProjection struct {
	GoalID       string          `json:"goalId"`
	Name         string          `json:"name"`
	Type         domain.GoalType `json:"type"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	FinalBalance decimal.Decimal `json:"finalBalance"`
	Reached      bool            `json:"reached"`
	Months       []GoalMonth     `json:"months"`
}

// RetirementReadiness summarizes all retirement-typed goals: total projected
// savings and the monthly income they support under the 4% rule.
type RetirementReadiness struct {
	TotalSaved             decimal.Decimal `json:"totalSaved"`
	EstimatedMonthlyIncome decimal.Decimal `json:"estimatedMonthlyIncome"`
}

// Result bundles every goal projection with the retirement summary.
type Result struct {
	Goals      []GoalProjection    `json:"goals"`
	Retirement RetirementReadiness `json:"retirement"`
}

// Compute projects each goal month by month from its start date to its
// target date inclusive. A target amount of zero reads as already complete
// (100%) rather than dividing by zero.
func Compute(goals []domain.SavingsGoal) Result {
	result := Result{
		Retirement: RetirementReadiness{
			TotalSaved:             decimal.Zero,
			EstimatedMonthlyIncome: decimal.Zero,
		},
	}

	for _, g := range goals {
		result.Goals = append(result.Goals, projectGoal(g))
	}

	for _, gp := range result.Goals {
		if gp.Type == domain.GoalRetirement {
			result.Retirement.TotalSaved = result.Retirement.TotalSaved.Add(gp.FinalBalance)
		}
	}
	result.Retirement.EstimatedMonthlyIncome = result.Retirement.TotalSaved.
		Mul(withdrawalRate).Div(twelve).Round(2)

	return result
}

func projectGoal(g domain.SavingsGoal) GoalProjection {
	gp := GoalProjection{
		GoalID:       g.ID.String(),
		Name:         g.Name,
		Type:         g.Type,
		TargetAmount: g.TargetAmount,
	}

	months := domain.MonthsBetween(g.StartDate, g.TargetDate)
	if months < 0 {
		months = 0
	}

	monthlyRate := g.AnnualReturnRate.Div(hundred).Div(twelve)
	balance := g.CurrentBalance

	for m := 0; m <= months; m++ {
		balance = balance.Add(balance.Mul(monthlyRate)).Add(g.MonthlyContribution)
		gp.Months = append(gp.Months, GoalMonth{
			Month:           domain.MonthLabel(g.StartDate, m),
			Balance:         balance.Round(2),
			PercentComplete: percentComplete(balance, g.TargetAmount),
		})
	}

	gp.FinalBalance = balance.Round(2)
	gp.Reached = percentComplete(balance, g.TargetAmount) >= 100
	return gp
}

// percentComplete clamps to [0,100]; a zero target counts as complete.
func percentComplete(balance, target decimal.Decimal) float64 {
	if target.LessThanOrEqual(decimal.Zero) {
		return 100
	}
	pct, _ := balance.Div(target).Mul(hundred).Float64()
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}
