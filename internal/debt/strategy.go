package debt

import (
	"sort"

	"github.com/lifeplan/lpgo/internal/domain"
	"github.com/shopspring/decimal"
)

// debtState is the mutable per-debt accumulator scoped to one payoff run.
type debtState struct {
	plan          domain.DebtPlan
	balance       decimal.Decimal
	totalInterest decimal.Decimal
	totalPaid     decimal.Decimal
	monthInterest decimal.Decimal
	monthPayment  decimal.Decimal
	paidOff       bool
	payoffMonth   int
	schedule      []ScheduleEntry
}

// AllocationStrategy distributes the month's surplus payment capacity across
// open debts. The mode is decided once per run, not per debt: if any plan
// uses snowball or avalanche the whole run pools every plan's extra budget
// (plus minimums freed by paid-off debts); otherwise each debt spends only
// its own capacity.
type AllocationStrategy interface {
	Name() string
	// Allocate applies this month's extra payments to the open debts in
	// started. pool holds the pooled budget (zero in per-debt mode).
	Allocate(started []*debtState, pool decimal.Decimal)
}

// strategyFor inspects the plans and picks the run-wide allocation mode.
// The first pooled strategy in input order wins when snowball and avalanche
// are mixed.
func strategyFor(plans []domain.DebtPlan) AllocationStrategy {
	for _, p := range plans {
		switch p.Strategy {
		case domain.StrategySnowball:
			return &pooledStrategy{name: "snowball", less: byBalanceAsc}
		case domain.StrategyAvalanche:
			return &pooledStrategy{name: "avalanche", less: byRateDesc}
		}
	}
	return &perDebtStrategy{}
}

// byBalanceAsc orders open debts smallest balance first (snowball).
func byBalanceAsc(a, b *debtState) bool {
	return a.balance.LessThan(b.balance)
}

// byRateDesc orders open debts highest interest rate first (avalanche).
func byRateDesc(a, b *debtState) bool {
	return a.plan.AnnualInterestRate.GreaterThan(b.plan.AnnualInterestRate)
}

// pooledStrategy applies the pooled budget to debts in sort order, spilling
// any remainder to the next debt once one is retired.
type pooledStrategy struct {
	name string
	less func(a, b *debtState) bool
}

func (ps *pooledStrategy) Name() string { return ps.name }

func (ps *pooledStrategy) Allocate(started []*debtState, pool decimal.Decimal) {
	open := make([]*debtState, 0, len(started))
	for _, ds := range started {
		if !ds.paidOff {
			open = append(open, ds)
		}
	}
	sort.SliceStable(open, func(i, j int) bool { return ps.less(open[i], open[j]) })

	remaining := pool
	for _, ds := range open {
		if remaining.LessThanOrEqual(decimal.Zero) {
			break
		}
		pay := remaining
		if pay.GreaterThan(ds.balance) {
			pay = ds.balance
		}
		ds.pay(pay)
		remaining = remaining.Sub(pay)
	}
}

// perDebtStrategy applies each debt's own surplus: a fixed-payment debt pays
// monthlyPayment minus minimum, a minimum-payment debt pays nothing extra.
type perDebtStrategy struct{}

func (perDebtStrategy) Name() string { return "per-debt" }

func (perDebtStrategy) Allocate(started []*debtState, _ decimal.Decimal) {
	for _, ds := range started {
		if ds.paidOff || ds.plan.Strategy != domain.StrategyFixedPayment || ds.plan.MonthlyPayment == nil {
			continue
		}
		extra := ds.plan.MonthlyPayment.Sub(ds.plan.MinimumPayment)
		if extra.LessThanOrEqual(decimal.Zero) {
			continue
		}
		if extra.GreaterThan(ds.balance) {
			extra = ds.balance
		}
		ds.pay(extra)
	}
}
