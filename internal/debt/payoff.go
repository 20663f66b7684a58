package debt

import (
	"time"

	"github.com/lifeplan/lpgo/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
)

// pay reduces the balance and accumulates paid totals. Callers cap the
// amount at the remaining balance before calling.
func (ds *debtState) pay(amount decimal.Decimal) {
	ds.balance = ds.balance.Sub(amount)
	ds.totalPaid = ds.totalPaid.Add(amount)
	ds.monthPayment = ds.monthPayment.Add(amount)
}

// ComputePayoff runs the month-by-month amortization simulation over the
// given plans and returns the full schedule, per-debt summaries and
// aggregate totals. The loop ends when every debt is paid off or the safety
// cap is reached, whichever comes first.
func ComputePayoff(plans []domain.DebtPlan, opts Options) PayoffResult {
	result := PayoffResult{
		TotalInterest: decimal.Zero,
		TotalPaid:     decimal.Zero,
	}
	if len(plans) == 0 {
		return result
	}

	maxMonths := opts.MaxMonths
	if maxMonths <= 0 {
		maxMonths = DefaultMaxMonths
	}

	start := earliestStart(plans)
	if opts.Start != nil {
		start = *opts.Start
	}

	strategy := strategyFor(plans)
	_, pooled := strategy.(*pooledStrategy)
	result.Pooled = pooled

	states := make([]*debtState, len(plans))
	for i, p := range plans {
		states[i] = &debtState{
			plan:          p,
			balance:       p.Principal,
			totalInterest: decimal.Zero,
			totalPaid:     decimal.Zero,
		}
	}

	for m := 0; m < maxMonths; m++ {
		monthDate := domain.MonthDate(start, m)

		started := make([]*debtState, 0, len(states))
		for _, ds := range states {
			if domain.MonthStarted(ds.plan.StartDate, monthDate) {
				started = append(started, ds)
			}
			ds.monthInterest = decimal.Zero
			ds.monthPayment = decimal.Zero
		}

		// Interest accrues before any payment lands.
		for _, ds := range started {
			if ds.paidOff {
				continue
			}
			interest := ds.balance.Mul(ds.plan.AnnualInterestRate).Div(hundred).Div(twelve)
			ds.balance = ds.balance.Add(interest)
			ds.totalInterest = ds.totalInterest.Add(interest)
			ds.monthInterest = interest
		}

		// Minimum payments, capped at the remaining balance.
		for _, ds := range started {
			if ds.paidOff {
				continue
			}
			pay := ds.plan.MinimumPayment
			if pay.GreaterThan(ds.balance) {
				pay = ds.balance
			}
			ds.pay(pay)
		}

		if pooled {
			strategy.Allocate(started, pooledBudget(started))
		} else {
			strategy.Allocate(started, decimal.Zero)
		}

		// Close out debts and record the month.
		for _, ds := range started {
			if ds.paidOff && ds.monthPayment.IsZero() {
				continue
			}
			if !ds.paidOff && ds.balance.LessThanOrEqual(payoffEpsilon) {
				ds.balance = decimal.Zero
				ds.paidOff = true
				ds.payoffMonth = m + 1
			}
			ds.schedule = append(ds.schedule, ScheduleEntry{
				Month:    m + 1,
				Label:    domain.MonthLabel(start, m),
				Interest: ds.monthInterest.Round(2),
				Payment:  ds.monthPayment.Round(2),
				Balance:  ds.balance.Round(2),
			})
		}

		allDone := true
		for _, ds := range states {
			if !ds.paidOff {
				allDone = false
				break
			}
		}
		if allDone {
			break
		}
	}

	monthsToFree := 0
	anyUnpaid := false
	for _, ds := range states {
		summary := DebtSummary{
			DebtID:        ds.plan.ID.String(),
			Name:          ds.plan.Name,
			Strategy:      ds.plan.Strategy,
			TotalInterest: ds.totalInterest.Round(2),
			TotalPaid:     ds.totalPaid.Round(2),
			PayoffMonth:   ds.payoffMonth,
			Schedule:      ds.schedule,
		}
		if ds.payoffMonth > 0 {
			d := domain.MonthDate(start, ds.payoffMonth-1)
			summary.PayoffDate = &d
			if ds.payoffMonth > monthsToFree {
				monthsToFree = ds.payoffMonth
			}
		} else {
			anyUnpaid = true
		}
		result.Debts = append(result.Debts, summary)
		result.TotalInterest = result.TotalInterest.Add(ds.totalInterest)
		result.TotalPaid = result.TotalPaid.Add(ds.totalPaid)
	}
	result.TotalInterest = result.TotalInterest.Round(2)
	result.TotalPaid = result.TotalPaid.Round(2)
	if anyUnpaid {
		monthsToFree = 0
	}
	result.MonthsToDebtFree = monthsToFree

	return result
}

// pooledBudget sums every started plan's configured extra payment plus the
// minimum payments freed by debts already paid off. The pool deliberately
// includes plans whose own strategy is not snowball/avalanche: pooling is a
// run-wide mode, not a per-debt one.
func pooledBudget(started []*debtState) decimal.Decimal {
	budget := decimal.Zero
	for _, ds := range started {
		budget = budget.Add(ds.plan.ExtraPayment)
		if ds.paidOff {
			budget = budget.Add(ds.plan.MinimumPayment)
		}
	}
	return budget
}

func earliestStart(plans []domain.DebtPlan) time.Time {
	earliest := plans[0].StartDate
	for _, p := range plans[1:] {
		if p.StartDate.Before(earliest) {
			earliest = p.StartDate
		}
	}
	return earliest
}
