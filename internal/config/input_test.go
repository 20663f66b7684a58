package config

import (
	"testing"
	"time"

	"github.com/lifeplan/lpgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validScenarioYAML = `
name: "Base plan"
startDate: 2026-01-01
birthDate: 1986-05-20
sex: female
accounts:
  - name: "Checking"
    balance: 25000
    annualInterestRate: 0.5
  - name: "Credit card"
    balance: 5000
    annualInterestRate: 22
    isDebt: true
incomeStreams:
  - name: "Salary"
    monthlyAmount: 6500
    startDate: 2026-01-01
    endDate: 2056-01-01
    annualGrowthRate: 3
expenseRules:
  - name: "Rent"
    monthlyAmount: 2200
    startDate: 2026-01-01
    endDate: 2056-01-01
    annualInflationRate: 2.5
debtPlans:
  - name: "Credit card"
    principal: 5000
    annualInterestRate: 22
    minimumPayment: 150
    extraPayment: 200
    strategy: avalanche
    startDate: 2026-01-01
savingsGoals:
  - name: "Emergency fund"
    currentBalance: 3000
    targetAmount: 20000
    monthlyContribution: 400
    annualReturnRate: 4
    type: emergency
    startDate: 2026-01-01
    targetDate: 2030-01-01
phases:
  - name: "New role ramp-up"
    category: career
    startDate: 2026-01-01
    endDate: 2027-01-01
    certainty: likely
    flexibility: movable
    loadTimeCost: 60
    emotionalIntensity: 50
    caregivingHours: 0
`

func TestLoad_ValidScenario(t *testing.T) {
	parser := NewInputParser()

	s, err := parser.Load([]byte(validScenarioYAML))

	require.NoError(t, err)
	assert.Equal(t, "Base plan", s.Name)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), s.StartDate)
	require.NotNil(t, s.Sex)
	assert.Equal(t, domain.SexFemale, *s.Sex)
	require.NotNil(t, s.BirthDate)
	assert.Equal(t, 1986, s.BirthDate.Year())

	require.Len(t, s.Accounts, 2)
	assert.True(t, s.Accounts[1].IsDebt)
	assert.True(t, s.Accounts[0].Balance.Equal(decimal.NewFromInt(25000)))

	require.Len(t, s.DebtPlans, 1)
	assert.Equal(t, domain.StrategyAvalanche, s.DebtPlans[0].Strategy)

	require.Len(t, s.SavingsGoals, 1)
	assert.Equal(t, domain.GoalEmergency, s.SavingsGoals[0].Type)

	require.Len(t, s.Phases, 1)
	assert.Equal(t, domain.CategoryCareer, s.Phases[0].Category)
	assert.Equal(t, domain.CertaintyLikely, s.Phases[0].Certainty)
	assert.Equal(t, domain.FlexibilityMovable, s.Phases[0].Flexibility)
}

func TestLoad_MalformedYAML(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.Load([]byte("name: [unclosed"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	parser := NewInputParser()

	_, err := parser.LoadFromFile("/nonexistent/scenario.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestValidateScenario_RequiredFields(t *testing.T) {
	parser := NewInputParser()

	err := parser.ValidateScenario(&domain.Scenario{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")

	err = parser.ValidateScenario(&domain.Scenario{Name: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "startDate is required")
}

func TestValidateScenario_PhaseBounds(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	parser := NewInputParser()

	tests := []struct {
		name    string
		phase   domain.Phase
		wantErr string
	}{
		{
			name: "end before start",
			phase: domain.Phase{
				Name: "p", StartDate: base, EndDate: base.AddDate(0, -1, 0),
			},
			wantErr: "end date before start date",
		},
		{
			name: "load out of range",
			phase: domain.Phase{
				Name: "p", StartDate: base, EndDate: base.AddDate(0, 1, 0), LoadTimeCost: 150,
			},
			wantErr: "loadTimeCost",
		},
		{
			name: "intensity out of range",
			phase: domain.Phase{
				Name: "p", StartDate: base, EndDate: base.AddDate(0, 1, 0), EmotionalIntensity: -1,
			},
			wantErr: "emotionalIntensity",
		},
		{
			name: "negative caregiving",
			phase: domain.Phase{
				Name: "p", StartDate: base, EndDate: base.AddDate(0, 1, 0), CaregivingHours: -2,
			},
			wantErr: "caregivingHours",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &domain.Scenario{Name: "x", StartDate: base, Phases: []domain.Phase{tt.phase}}
			err := parser.ValidateScenario(s)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateScenario_FixedPaymentNeedsMonthlyPayment(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	parser := NewInputParser()

	s := &domain.Scenario{
		Name:      "x",
		StartDate: base,
		DebtPlans: []domain.DebtPlan{{
			Name:      "loan",
			Principal: decimal.NewFromInt(1000),
			Strategy:  domain.StrategyFixedPayment,
			StartDate: base,
		}},
	}

	err := parser.ValidateScenario(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires monthlyPayment")

	monthly := decimal.NewFromInt(100)
	s.DebtPlans[0].MonthlyPayment = &monthly
	assert.NoError(t, parser.ValidateScenario(s))
}

func TestValidateScenario_SavingsGoalDates(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	parser := NewInputParser()

	s := &domain.Scenario{
		Name:      "x",
		StartDate: base,
		SavingsGoals: []domain.SavingsGoal{{
			Name:       "fund",
			StartDate:  base,
			TargetDate: base.AddDate(-1, 0, 0),
		}},
	}

	err := parser.ValidateScenario(s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "target date before start date")
}

func TestLoad_UnknownEnumRejected(t *testing.T) {
	parser := NewInputParser()
	doc := `
name: "Bad enum"
startDate: 2026-01-01
phases:
  - name: "p"
    category: spelunking
    startDate: 2026-01-01
    endDate: 2027-01-01
`

	_, err := parser.Load([]byte(doc))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "spelunking")
}
