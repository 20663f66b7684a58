// Package run orchestrates the pure engines for a loaded scenario: it wires
// configuration defaults, invokes the engines in dependency order and logs
// timings. The engines stay pure; all sequencing and logging lives here.
package run

import (
	"time"

	"github.com/lifeplan/lpgo/internal/compare"
	"github.com/lifeplan/lpgo/internal/config"
	"github.com/lifeplan/lpgo/internal/debt"
	"github.com/lifeplan/lpgo/internal/domain"
	"github.com/lifeplan/lpgo/internal/projection"
	"github.com/lifeplan/lpgo/internal/savings"
	"github.com/lifeplan/lpgo/internal/stress"
)

// Logger is the minimal logging surface the runner needs.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger discards all log output.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Warnf(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}

// Runner invokes the engines over one scenario.
type Runner struct {
	Defaults config.Defaults
	Logger   Logger
}

// NewRunner creates a runner with the given defaults and a no-op logger.
func NewRunner(defaults config.Defaults) *Runner {
	return &Runner{Defaults: defaults, Logger: NopLogger{}}
}

// SetLogger replaces the runner's logger; nil restores the no-op logger.
func (r *Runner) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	r.Logger = l
}

// Project computes the financial projection for a scenario over the
// configured horizon.
func (r *Runner) Project(s *domain.Scenario) []domain.MonthlyProjection {
	started := time.Now()
	out := projection.Compute(s.Accounts, s.IncomeStreams, s.ExpenseRules, s.StartDate, r.Defaults.Months)
	r.Logger.Debugf("projected %d months in %s", len(out), time.Since(started))
	return out
}

// Stress computes the stress series, projecting first since the financial
// sub-score depends on monthly cashflow.
func (r *Runner) Stress(s *domain.Scenario) []domain.StressScore {
	projections := r.Project(s)
	started := time.Now()
	out := stress.Compute(s.Phases, projections, s.StartDate, r.Defaults.Months)
	r.Logger.Debugf("scored %d months in %s", len(out), time.Since(started))
	return out
}

// Debts runs the payoff simulation under the configured safety cap.
func (r *Runner) Debts(s *domain.Scenario) debt.PayoffResult {
	started := time.Now()
	out := debt.ComputePayoff(s.DebtPlans, debt.Options{MaxMonths: r.Defaults.DebtMaxMonths})
	r.Logger.Debugf("amortized %d debts in %s", len(out.Debts), time.Since(started))
	if out.MonthsToDebtFree == 0 && len(out.Debts) > 0 {
		r.Logger.Warnf("some debts never amortize within the %d-month cap", r.Defaults.DebtMaxMonths)
	}
	return out
}

// Savings projects every savings goal.
func (r *Runner) Savings(s *domain.Scenario) savings.Result {
	return savings.Compute(s.SavingsGoals)
}

// Series computes the paired projection and stress series used by the diff
// engine.
func (r *Runner) Series(s *domain.Scenario) compare.Series {
	projections := r.Project(s)
	return compare.Series{
		Projections: projections,
		Stress:      stress.Compute(s.Phases, projections, s.StartDate, r.Defaults.Months),
	}
}

// Diff compares scenario b against scenario a at the target month.
func (r *Runner) Diff(a, b *domain.Scenario, targetMonth string) compare.ScenarioDiff {
	return compare.Diff(r.Series(a), r.Series(b), targetMonth, r.Defaults.RedZoneThreshold)
}
