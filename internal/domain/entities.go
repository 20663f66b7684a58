package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Scenario is the aggregate the persistence collaborator hands the engines:
// one named what-if world with all of its entity collections. The engines
// never mutate it.
type Scenario struct {
	ID            uuid.UUID      `yaml:"id" json:"id"`
	Name          string         `yaml:"name" json:"name"`
	StartDate     time.Time      `yaml:"startDate" json:"startDate"`
	BirthDate     *time.Time     `yaml:"birthDate,omitempty" json:"birthDate,omitempty"`
	Sex           *Sex           `yaml:"sex,omitempty" json:"sex,omitempty"`
	Accounts      []Account      `yaml:"accounts" json:"accounts"`
	IncomeStreams []IncomeStream `yaml:"incomeStreams" json:"incomeStreams"`
	ExpenseRules  []ExpenseRule  `yaml:"expenseRules" json:"expenseRules"`
	DebtPlans     []DebtPlan     `yaml:"debtPlans" json:"debtPlans"`
	SavingsGoals  []SavingsGoal  `yaml:"savingsGoals" json:"savingsGoals"`
	Phases        []Phase        `yaml:"phases" json:"phases"`
}

// Phase is a labeled time interval representing a life activity with
// load/intensity/caregiving attributes. Phases overlap freely; the stress
// engine resolves the overlap per month.
type Phase struct {
	ID                 uuid.UUID     `yaml:"id" json:"id"`
	Name               string        `yaml:"name" json:"name"`
	Category           PhaseCategory `yaml:"category" json:"category"`
	StartDate          time.Time     `yaml:"startDate" json:"startDate"`
	EndDate            time.Time     `yaml:"endDate" json:"endDate"`
	Certainty          Certainty     `yaml:"certainty" json:"certainty"`
	Flexibility        Flexibility   `yaml:"flexibility" json:"flexibility"`
	LoadTimeCost       float64       `yaml:"loadTimeCost" json:"loadTimeCost"`             // 0-100, % of capacity consumed
	EmotionalIntensity float64       `yaml:"emotionalIntensity" json:"emotionalIntensity"` // 0-100
	CaregivingHours    float64       `yaml:"caregivingHours" json:"caregivingHours"`       // hrs/week, >= 0
	Notes              string        `yaml:"notes,omitempty" json:"notes,omitempty"`
	DisplayOrder       int           `yaml:"displayOrder" json:"displayOrder"`
	FamilyMember       string        `yaml:"familyMember,omitempty" json:"familyMember,omitempty"`
	FromTemplate       string        `yaml:"fromTemplate,omitempty" json:"fromTemplate,omitempty"`
}

// Account holds a balance that compounds monthly. Debt accounts store the
// balance as a positive magnitude and contribute negatively to net worth.
type Account struct {
	ID                 uuid.UUID       `yaml:"id" json:"id"`
	Name               string          `yaml:"name" json:"name"`
	Balance            decimal.Decimal `yaml:"balance" json:"balance"`
	AnnualInterestRate decimal.Decimal `yaml:"annualInterestRate" json:"annualInterestRate"` // percent
	IsDebt             bool            `yaml:"isDebt" json:"isDebt"`
}

// IncomeStream is a monthly income amount active inside a date window,
// growing continuously per elapsed year since scenario start.
type IncomeStream struct {
	ID               uuid.UUID       `yaml:"id" json:"id"`
	Name             string          `yaml:"name" json:"name"`
	MonthlyAmount    decimal.Decimal `yaml:"monthlyAmount" json:"monthlyAmount"`
	StartDate        time.Time       `yaml:"startDate" json:"startDate"`
	EndDate          time.Time       `yaml:"endDate" json:"endDate"`
	AnnualGrowthRate decimal.Decimal `yaml:"annualGrowthRate" json:"annualGrowthRate"` // percent
	PhaseID          *uuid.UUID      `yaml:"phaseId,omitempty" json:"phaseId,omitempty"`
}

// ExpenseRule mirrors IncomeStream on the outflow side, inflating instead of
// growing.
type ExpenseRule struct {
	ID                  uuid.UUID       `yaml:"id" json:"id"`
	Name                string          `yaml:"name" json:"name"`
	MonthlyAmount       decimal.Decimal `yaml:"monthlyAmount" json:"monthlyAmount"`
	StartDate           time.Time       `yaml:"startDate" json:"startDate"`
	EndDate             time.Time       `yaml:"endDate" json:"endDate"`
	AnnualInflationRate decimal.Decimal `yaml:"annualInflationRate" json:"annualInflationRate"` // percent
	PhaseID             *uuid.UUID      `yaml:"phaseId,omitempty" json:"phaseId,omitempty"`
}

// DebtPlan describes one debt to amortize plus its payment policy.
type DebtPlan struct {
	ID                 uuid.UUID        `yaml:"id" json:"id"`
	Name               string           `yaml:"name" json:"name"`
	Principal          decimal.Decimal  `yaml:"principal" json:"principal"`
	AnnualInterestRate decimal.Decimal  `yaml:"annualInterestRate" json:"annualInterestRate"` // percent
	MinimumPayment     decimal.Decimal  `yaml:"minimumPayment" json:"minimumPayment"`
	MonthlyPayment     *decimal.Decimal `yaml:"monthlyPayment,omitempty" json:"monthlyPayment,omitempty"` // fixed-payment strategy only
	ExtraPayment       decimal.Decimal  `yaml:"extraPayment" json:"extraPayment"`
	Strategy           DebtStrategy     `yaml:"strategy" json:"strategy"`
	StartDate          time.Time        `yaml:"startDate" json:"startDate"`
}

// SavingsGoal describes one compounding contribution target.
type SavingsGoal struct {
	ID                  uuid.UUID       `yaml:"id" json:"id"`
	Name                string          `yaml:"name" json:"name"`
	CurrentBalance      decimal.Decimal `yaml:"currentBalance" json:"currentBalance"`
	TargetAmount        decimal.Decimal `yaml:"targetAmount" json:"targetAmount"`
	MonthlyContribution decimal.Decimal `yaml:"monthlyContribution" json:"monthlyContribution"`
	AnnualReturnRate    decimal.Decimal `yaml:"annualReturnRate" json:"annualReturnRate"` // percent
	Type                GoalType        `yaml:"type" json:"type"`
	StartDate           time.Time       `yaml:"startDate" json:"startDate"`
	TargetDate          time.Time       `yaml:"targetDate" json:"targetDate"`
}

// NetWorth sums account balances with debt accounts negated.
func NetWorth(accounts []Account) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		if a.IsDebt {
			total = total.Sub(a.Balance)
		} else {
			total = total.Add(a.Balance)
		}
	}
	return total
}

// ActiveAt reports whether the stream's window contains the given month.
func (s IncomeStream) ActiveAt(monthDate time.Time) bool {
	return ContainsMonth(s.StartDate, s.EndDate, monthDate)
}

// ActiveAt reports whether the rule's window contains the given month.
func (r ExpenseRule) ActiveAt(monthDate time.Time) bool {
	return ContainsMonth(r.StartDate, r.EndDate, monthDate)
}

// ActiveAt reports whether the phase's interval contains the given month.
func (p Phase) ActiveAt(monthDate time.Time) bool {
	return ContainsMonth(p.StartDate, p.EndDate, monthDate)
}
