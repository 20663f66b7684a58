// Package output renders engine results for the terminal: plain tables,
// CSV, JSON and ascii charts. The engines never format anything themselves.
package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"
	"github.com/lifeplan/lpgo/internal/compare"
	"github.com/lifeplan/lpgo/internal/debt"
	"github.com/lifeplan/lpgo/internal/domain"
	"github.com/lifeplan/lpgo/internal/longevity"
	"github.com/lifeplan/lpgo/internal/savings"
)

// Format selects the output rendering.
type Format string

const (
	FormatTable Format = "table"
	FormatCSV   Format = "csv"
	FormatJSON  Format = "json"
)

// ParseFormat resolves a format flag value.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatTable, FormatCSV, FormatJSON:
		return Format(name), nil
	default:
		return FormatTable, fmt.Errorf("unknown format %q (supported: table, csv, json)", name)
	}
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748B"))
)

// JSON marshals any result with indentation.
func JSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// ProjectionTable renders the projection series, one row per month.
func ProjectionTable(projections []domain.MonthlyProjection) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("FINANCIAL PROJECTION") + "\n")
	sb.WriteString(headerStyle.Render(fmt.Sprintf("%-9s %12s %12s %12s %14s %14s %14s",
		"Month", "Income", "Expenses", "Cashflow", "Net Worth", "Low", "High")) + "\n")
	sb.WriteString(strings.Repeat("-", 92) + "\n")
	for _, p := range projections {
		sb.WriteString(fmt.Sprintf("%-9s %12s %12s %12s %14s %14s %14s\n",
			p.Month,
			p.Income.StringFixed(0),
			p.Expenses.StringFixed(0),
			p.NetCashflow.StringFixed(0),
			p.NetWorth.StringFixed(0),
			p.NetWorthLow.StringFixed(0),
			p.NetWorthHigh.StringFixed(0)))
	}
	return sb.String()
}

// ProjectionCSV renders the projection series as CSV.
func ProjectionCSV(projections []domain.MonthlyProjection) string {
	var sb strings.Builder
	sb.WriteString("month,income,expenses,net_cashflow,net_worth,net_worth_low,net_worth_high\n")
	for _, p := range projections {
		sb.WriteString(fmt.Sprintf("%s,%s,%s,%s,%s,%s,%s\n",
			p.Month,
			p.Income.StringFixed(0),
			p.Expenses.StringFixed(0),
			p.NetCashflow.StringFixed(0),
			p.NetWorth.StringFixed(0),
			p.NetWorthLow.StringFixed(0),
			p.NetWorthHigh.StringFixed(0)))
	}
	return sb.String()
}

// StressTable renders the stress series with its sub-scores.
func StressTable(scores []domain.StressScore) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("STRESS SCORES") + "\n")
	sb.WriteString(headerStyle.Render(fmt.Sprintf("%-9s %10s %9s %9s %9s %9s %9s %9s",
		"Month", "Composite", "Load", "Money", "Overlap", "Care", "Sleep", "Emotion")) + "\n")
	sb.WriteString(strings.Repeat("-", 80) + "\n")
	for _, s := range scores {
		sb.WriteString(fmt.Sprintf("%-9s %10.0f %9.0f %9.0f %9.0f %9.0f %9.0f %9.0f\n",
			s.Month, s.Composite, s.FreeTime, s.FinancialSurplus,
			s.OverlapCount, s.CaregivingLoad, s.SleepProxy, s.EmotionalLoad))
	}
	return sb.String()
}

// StressCSV renders the stress series as CSV.
func StressCSV(scores []domain.StressScore) string {
	var sb strings.Builder
	sb.WriteString("month,composite,free_time,financial_surplus,overlap_count,caregiving_load,sleep_proxy,emotional_load\n")
	for _, s := range scores {
		sb.WriteString(fmt.Sprintf("%s,%.0f,%.0f,%.0f,%.0f,%.0f,%.0f,%.0f\n",
			s.Month, s.Composite, s.FreeTime, s.FinancialSurplus,
			s.OverlapCount, s.CaregivingLoad, s.SleepProxy, s.EmotionalLoad))
	}
	return sb.String()
}

// DebtTable renders the payoff summaries and aggregate totals.
func DebtTable(result debt.PayoffResult) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("DEBT PAYOFF PLAN") + "\n")
	mode := "per-debt allocation"
	if result.Pooled {
		mode = "pooled allocation"
	}
	sb.WriteString(mutedStyle.Render(mode) + "\n")
	sb.WriteString(headerStyle.Render(fmt.Sprintf("%-22s %-16s %12s %12s %8s %10s",
		"Debt", "Strategy", "Interest", "Paid", "Months", "Paid Off")) + "\n")
	sb.WriteString(strings.Repeat("-", 86) + "\n")
	for _, d := range result.Debts {
		paidOff := "never"
		if d.PayoffDate != nil {
			paidOff = d.PayoffDate.Format("2006-01")
		}
		sb.WriteString(fmt.Sprintf("%-22s %-16s %12s %12s %8d %10s\n",
			d.Name, d.Strategy, d.TotalInterest.StringFixed(2), d.TotalPaid.StringFixed(2),
			d.PayoffMonth, paidOff))
	}
	sb.WriteString(strings.Repeat("-", 86) + "\n")
	sb.WriteString(fmt.Sprintf("%-22s %-16s %12s %12s %8d\n",
		"TOTAL", "", result.TotalInterest.StringFixed(2), result.TotalPaid.StringFixed(2),
		result.MonthsToDebtFree))
	return sb.String()
}

// SavingsTable renders per-goal outcomes and the retirement summary.
func SavingsTable(result savings.Result) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("SAVINGS GOALS") + "\n")
	sb.WriteString(headerStyle.Render(fmt.Sprintf("%-22s %-12s %14s %14s %9s",
		"Goal", "Type", "Target", "Projected", "Complete")) + "\n")
	sb.WriteString(strings.Repeat("-", 76) + "\n")
	for _, g := range result.Goals {
		pct := 100.0
		if len(g.Months) > 0 {
			pct = g.Months[len(g.Months)-1].PercentComplete
		}
		sb.WriteString(fmt.Sprintf("%-22s %-12s %14s %14s %8.1f%%\n",
			g.Name, g.Type, g.TargetAmount.StringFixed(0), g.FinalBalance.StringFixed(0), pct))
	}
	sb.WriteString(strings.Repeat("-", 76) + "\n")
	sb.WriteString(fmt.Sprintf("Retirement savings: %s  (4%% rule: %s/month)\n",
		result.Retirement.TotalSaved.StringFixed(0),
		result.Retirement.EstimatedMonthlyIncome.StringFixed(2)))
	return sb.String()
}

// LongevityTable renders the longevity summary and care cost expectation.
func LongevityTable(summary longevity.Summary, care longevity.CareCostResult) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("LONGEVITY OUTLOOK") + "\n")
	sb.WriteString(fmt.Sprintf("Current age:             %d (%s)\n", summary.CurrentAge, summary.Sex))
	sb.WriteString(fmt.Sprintf("Life expectancy:         %.1f more years (to age %.1f)\n",
		summary.LifeExpectancy, float64(summary.CurrentAge)+summary.LifeExpectancy))
	sb.WriteString(fmt.Sprintf("Healthy life expectancy: %.1f more years\n", summary.HealthyLifeExpectancy))
	sb.WriteString(fmt.Sprintf("Longevity percentiles:   p25 %.1f | p50 %.1f | p75 %.1f | p90 %.1f\n",
		summary.Percentiles.P25, summary.Percentiles.P50, summary.Percentiles.P75, summary.Percentiles.P90))
	sb.WriteString(fmt.Sprintf("Expected care costs:     %s lifetime\n", care.LifetimeExpected.StringFixed(0)))
	return sb.String()
}

// DiffCSV renders a scenario diff as CSV, one row per metric.
func DiffCSV(d compare.ScenarioDiff) string {
	var sb strings.Builder
	sb.WriteString("metric,a,b,delta\n")
	sb.WriteString(fmt.Sprintf("net_worth_at_target,%.0f,%.0f,%.0f\n",
		d.NetWorthAtTarget.A, d.NetWorthAtTarget.B, d.NetWorthAtTarget.Delta))
	sb.WriteString(fmt.Sprintf("peak_stress,%.0f,%.0f,%.0f\n",
		d.PeakStress.A, d.PeakStress.B, d.PeakStress.Delta))
	sb.WriteString(fmt.Sprintf("worst_month,%s,%s,\n", d.WorstMonthA, d.WorstMonthB))
	sb.WriteString(fmt.Sprintf("red_zone_months,%.0f,%.0f,%.0f\n",
		d.RedZoneMonths.A, d.RedZoneMonths.B, d.RedZoneMonths.Delta))
	sb.WriteString(fmt.Sprintf("min_free_time,%.0f,%.0f,%.0f\n",
		d.MinFreeTime.A, d.MinFreeTime.B, d.MinFreeTime.Delta))
	return sb.String()
}

// DiffTable renders a scenario diff in neutral language.
func DiffTable(d compare.ScenarioDiff) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render("SCENARIO COMPARISON") + "\n")
	sb.WriteString(fmt.Sprintf("Target month: %s\n\n", d.TargetMonth))
	sb.WriteString(fmt.Sprintf("Net worth at target:  %.0f vs %.0f  (%s)\n",
		d.NetWorthAtTarget.A, d.NetWorthAtTarget.B,
		compare.FormatDeltaNeutral(d.NetWorthAtTarget.Delta, "dollars of net worth")))
	sb.WriteString(fmt.Sprintf("Peak stress:          %.0f vs %.0f  (%s)\n",
		d.PeakStress.A, d.PeakStress.B,
		compare.FormatDeltaNeutral(d.PeakStress.Delta, "points of peak stress")))
	sb.WriteString(fmt.Sprintf("Worst cashflow month: %s vs %s\n", d.WorstMonthA, d.WorstMonthB))
	sb.WriteString(fmt.Sprintf("Red-zone months:      %.0f vs %.0f  (%s)\n",
		d.RedZoneMonths.A, d.RedZoneMonths.B,
		compare.FormatDeltaNeutral(d.RedZoneMonths.Delta, "months of elevated stress")))
	sb.WriteString(fmt.Sprintf("Minimum free time:    %.0f vs %.0f  (%s)\n",
		d.MinFreeTime.A, d.MinFreeTime.B,
		compare.FormatDeltaNeutral(d.MinFreeTime.Delta, "points of minimum free time")))
	return sb.String()
}
