// Package debt simulates amortization and extra-payment allocation across
// one or more debts under the configured strategies. Like every engine in
// this module it is pure: no I/O, no shared state, total over well-formed
// input.
package debt

import (
	"time"

	"github.com/lifeplan/lpgo/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultMaxMonths caps the simulation so configurations that can never
// amortize (minimum payment below accruing interest) still terminate.
const DefaultMaxMonths = 600

// payoffEpsilon is the residual balance below which a debt counts as paid.
var payoffEpsilon = decimal.NewFromFloat(0.01)

// ScheduleEntry is one month of one debt's payment schedule.
type ScheduleEntry struct {
	Month    int             `json:"month"` // 1-indexed
	Label    string          `json:"label"` // "2026-01"
	Interest decimal.Decimal `json:"interest"`
	Payment  decimal.Decimal `json:"payment"`
	Balance  decimal.Decimal `json:"balance"`
}

// DebtSummary is the per-debt payoff outcome. TotalInterest and TotalPaid
// are non-decreasing across the schedule; the final schedule balance equals
// the balance at the payoff month.
type DebtSummary struct {
	DebtID        string              `json:"debtId"`
	Name          string              `json:"name"`
	Strategy      domain.DebtStrategy `json:"strategy"`
	TotalInterest decimal.Decimal     `json:"totalInterest"`
	TotalPaid     decimal.Decimal     `json:"totalPaid"`
	PayoffMonth   int                 `json:"payoffMonth"` // 1-indexed; 0 when never paid off within the cap
	PayoffDate    *time.Time          `json:"payoffDate,omitempty"`
	Schedule      []ScheduleEntry     `json:"schedule"`
}

// PayoffResult aggregates a full payoff run.
type PayoffResult struct {
	Debts            []DebtSummary   `json:"debts"`
	TotalInterest    decimal.Decimal `json:"totalInterest"`
	TotalPaid        decimal.Decimal `json:"totalPaid"`
	MonthsToDebtFree int             `json:"monthsToDebtFree"` // 0 when some debt never amortizes
	Pooled           bool            `json:"pooled"`
}

// Options configures a payoff run. Zero values select the defaults.
type Options struct {
	MaxMonths int        // safety cap, default DefaultMaxMonths
	Start     *time.Time // timeline origin, default earliest plan start
}
