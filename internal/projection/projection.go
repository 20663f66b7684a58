// Package projection derives the month-by-month financial series for a
// scenario: income, expenses, net cashflow and net worth with an uncertainty
// band. All functions are pure; callers may re-invoke them on every edit.
package projection

import (
	"math"
	"time"

	"github.com/lifeplan/lpgo/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultMonths is the standard projection horizon: 80 years.
const DefaultMonths = 960

var decimalTwelve = decimal.NewFromInt(12)

// bandScale controls how fast the net worth uncertainty band widens. The band
// grows with the square root of elapsed months, a heuristic that models
// compounding long-run uncertainty without overfitting.
var bandScale = decimal.NewFromInt(500)

// Compute simulates months of cashflow and interest starting at start and
// returns one MonthlyProjection per month. Empty entity lists degrade to a
// zero-income track; months <= 0 yields an empty slice. The function is total
// over well-formed input and never errors.
func Compute(accounts []domain.Account, incomes []domain.IncomeStream, expenses []domain.ExpenseRule, start time.Time, months int) []domain.MonthlyProjection {
	if months <= 0 {
		return []domain.MonthlyProjection{}
	}

	// Track each account balance separately so interest compounds per
	// account. Debt balances run negative.
	balances := make([]decimal.Decimal, len(accounts))
	rates := make([]decimal.Decimal, len(accounts))
	for i, a := range accounts {
		if a.IsDebt {
			balances[i] = a.Balance.Neg()
		} else {
			balances[i] = a.Balance
		}
		rates[i] = a.AnnualInterestRate.Div(decimal.NewFromInt(100)).Div(decimalTwelve)
	}

	netWorth := domain.NetWorth(accounts)
	out := make([]domain.MonthlyProjection, 0, months)

	for m := 0; m < months; m++ {
		monthDate := domain.MonthDate(start, m)
		elapsedYears := float64(m) / 12.0

		income := decimal.Zero
		for _, s := range incomes {
			if !s.ActiveAt(monthDate) {
				continue
			}
			income = income.Add(grow(s.MonthlyAmount, s.AnnualGrowthRate, elapsedYears))
		}

		expense := decimal.Zero
		for _, r := range expenses {
			if !r.ActiveAt(monthDate) {
				continue
			}
			expense = expense.Add(grow(r.MonthlyAmount, r.AnnualInflationRate, elapsedYears))
		}

		interest := decimal.Zero
		for i := range balances {
			earned := balances[i].Mul(rates[i])
			balances[i] = balances[i].Add(earned)
			interest = interest.Add(earned)
		}

		cashflow := income.Sub(expense)
		netWorth = netWorth.Add(cashflow).Add(interest)

		band := bandScale.Mul(decimal.NewFromFloat(math.Sqrt(float64(m + 1))))

		out = append(out, domain.MonthlyProjection{
			Month:        domain.MonthLabel(start, m),
			Income:       income.Round(0),
			Expenses:     expense.Round(0),
			NetCashflow:  cashflow.Round(0),
			NetWorth:     netWorth.Round(0),
			NetWorthLow:  netWorth.Sub(band).Round(0),
			NetWorthHigh: netWorth.Add(band).Round(0),
		})
	}

	return out
}

// grow scales a monthly amount by (1+rate/100)^elapsedYears.
func grow(amount, annualRatePct decimal.Decimal, elapsedYears float64) decimal.Decimal {
	rate, _ := annualRatePct.Float64()
	factor := math.Pow(1+rate/100, elapsedYears)
	return amount.Mul(decimal.NewFromFloat(factor))
}
