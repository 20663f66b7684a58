package domain

import "github.com/shopspring/decimal"

// Derived series shared between engines. These are computed, never persisted.

// MonthlyProjection is one month of the financial projection: income,
// expenses, cashflow and net worth with its uncertainty band. All values are
// rounded to whole currency units.
type MonthlyProjection struct {
	Month        string          `json:"month"` // "2026-01"
	Income       decimal.Decimal `json:"income"`
	Expenses     decimal.Decimal `json:"expenses"`
	NetCashflow  decimal.Decimal `json:"netCashflow"`
	NetWorth     decimal.Decimal `json:"netWorth"`
	NetWorthLow  decimal.Decimal `json:"netWorthLow"`
	NetWorthHigh decimal.Decimal `json:"netWorthHigh"`
}

// StressScore is one month of the composite stress series. Composite and all
// six sub-scores are clamped to [0,100] and rounded.
//
// FreeTime measures load, not free time: higher means more stress. The name
// is a deliberate inversion artifact kept for continuity with the weight
// table; see the stress package doc comment before "fixing" it.
type StressScore struct {
	Month            string  `json:"month"`
	Composite        float64 `json:"composite"`
	FreeTime         float64 `json:"freeTime"`
	FinancialSurplus float64 `json:"financialSurplus"`
	OverlapCount     float64 `json:"overlapCount"`
	CaregivingLoad   float64 `json:"caregivingLoad"`
	SleepProxy       float64 `json:"sleepProxy"`
	EmotionalLoad    float64 `json:"emotionalLoad"`
	ActivePhaseCount int     `json:"activePhaseCount"`
}

// SurvivalPoint is one point on a survival curve: the probability of being
// alive at the given age. Probabilities start at 1.0 and never increase.
type SurvivalPoint struct {
	Age         int     `json:"age"`
	Probability float64 `json:"probability"`
}
