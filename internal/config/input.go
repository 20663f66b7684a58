// Package config loads and validates scenario files. Validation lives here,
// at the persistence boundary: the engines themselves are total functions and
// assume well-formed input.
package config

import (
	"fmt"
	"os"

	"github.com/lifeplan/lpgo/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario from a YAML file and validates it.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Load(data)
}

// Load parses and validates scenario YAML.
func (ip *InputParser) Load(data []byte) (*domain.Scenario, error) {
	var scenario domain.Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := ip.ValidateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}
	return &scenario, nil
}

// ValidateScenario checks the date and magnitude invariants on every entity.
func (ip *InputParser) ValidateScenario(s *domain.Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if s.StartDate.IsZero() {
		return fmt.Errorf("scenario startDate is required")
	}

	for i, p := range s.Phases {
		if err := validatePhase(&p); err != nil {
			return fmt.Errorf("phase %d (%s): %w", i, p.Name, err)
		}
	}
	for i, st := range s.IncomeStreams {
		if st.EndDate.Before(st.StartDate) {
			return fmt.Errorf("income stream %d (%s): end date before start date", i, st.Name)
		}
	}
	for i, r := range s.ExpenseRules {
		if r.EndDate.Before(r.StartDate) {
			return fmt.Errorf("expense rule %d (%s): end date before start date", i, r.Name)
		}
	}
	for i, d := range s.DebtPlans {
		if err := validateDebtPlan(&d); err != nil {
			return fmt.Errorf("debt plan %d (%s): %w", i, d.Name, err)
		}
	}
	for i, g := range s.SavingsGoals {
		if err := validateSavingsGoal(&g); err != nil {
			return fmt.Errorf("savings goal %d (%s): %w", i, g.Name, err)
		}
	}
	return nil
}

func validatePhase(p *domain.Phase) error {
	if p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("end date before start date")
	}
	if p.LoadTimeCost < 0 || p.LoadTimeCost > 100 {
		return fmt.Errorf("loadTimeCost must be in [0,100], got %v", p.LoadTimeCost)
	}
	if p.EmotionalIntensity < 0 || p.EmotionalIntensity > 100 {
		return fmt.Errorf("emotionalIntensity must be in [0,100], got %v", p.EmotionalIntensity)
	}
	if p.CaregivingHours < 0 {
		return fmt.Errorf("caregivingHours must be >= 0, got %v", p.CaregivingHours)
	}
	return nil
}

func validateDebtPlan(d *domain.DebtPlan) error {
	if d.Principal.LessThan(decimal.Zero) {
		return fmt.Errorf("principal must be >= 0")
	}
	if d.MinimumPayment.LessThan(decimal.Zero) {
		return fmt.Errorf("minimumPayment must be >= 0")
	}
	if d.Strategy == domain.StrategyFixedPayment && d.MonthlyPayment == nil {
		return fmt.Errorf("fixed-payment strategy requires monthlyPayment")
	}
	return nil
}

func validateSavingsGoal(g *domain.SavingsGoal) error {
	if g.TargetDate.Before(g.StartDate) {
		return fmt.Errorf("target date before start date")
	}
	if g.TargetAmount.LessThan(decimal.Zero) {
		return fmt.Errorf("targetAmount must be >= 0")
	}
	return nil
}
