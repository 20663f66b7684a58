package domain

import "fmt"

// PhaseCategory classifies a life phase. The set is closed; lane assignment,
// styling and stress weighting all dispatch over it with exhaustive tables.
type PhaseCategory int

const (
	CategoryCareer PhaseCategory = iota
	CategoryEducation
	CategoryFamily
	CategoryCaregiving
	CategoryHealth
	CategoryHousing
	CategoryFinancial
	CategoryPersonal
	CategoryRelationship
	CategoryBiorhythm
)

// PhaseCategories lists every category in canonical display order. Timeline
// lane assignment iterates this slice, never a sorted or frequency-ordered
// structure, so row indices are stable across recomputation.
var PhaseCategories = []PhaseCategory{
	CategoryCareer,
	CategoryEducation,
	CategoryFamily,
	CategoryCaregiving,
	CategoryHealth,
	CategoryHousing,
	CategoryFinancial,
	CategoryPersonal,
	CategoryRelationship,
	CategoryBiorhythm,
}

var categoryNames = map[PhaseCategory]string{
	CategoryCareer:       "career",
	CategoryEducation:    "education",
	CategoryFamily:       "family",
	CategoryCaregiving:   "caregiving",
	CategoryHealth:       "health",
	CategoryHousing:      "housing",
	CategoryFinancial:    "financial",
	CategoryPersonal:     "personal",
	CategoryRelationship: "relationship",
	CategoryBiorhythm:    "biorhythm",
}

func (pc PhaseCategory) String() string {
	if name, ok := categoryNames[pc]; ok {
		return name
	}
	return "unknown"
}

// ParsePhaseCategory resolves a category name. Unknown names fall back to
// CategoryPersonal with ok=false so callers can decide whether to reject.
func ParsePhaseCategory(name string) (PhaseCategory, bool) {
	for cat, n := range categoryNames {
		if n == name {
			return cat, true
		}
	}
	return CategoryPersonal, false
}

// CategoryStyle carries the display attributes for one phase category.
// Color is a lipgloss-compatible hex value; Opacity and Dash feed the
// timeline viewer's rendering of certainty levels.
type CategoryStyle struct {
	Color string
	Label string
}

var categoryStyles = map[PhaseCategory]CategoryStyle{
	CategoryCareer:       {Color: "#2563EB", Label: "Career"},
	CategoryEducation:    {Color: "#7C3AED", Label: "Education"},
	CategoryFamily:       {Color: "#DB2777", Label: "Family"},
	CategoryCaregiving:   {Color: "#EA580C", Label: "Caregiving"},
	CategoryHealth:       {Color: "#16A34A", Label: "Health"},
	CategoryHousing:      {Color: "#0D9488", Label: "Housing"},
	CategoryFinancial:    {Color: "#CA8A04", Label: "Financial"},
	CategoryPersonal:     {Color: "#64748B", Label: "Personal"},
	CategoryRelationship: {Color: "#E11D48", Label: "Relationship"},
	CategoryBiorhythm:    {Color: "#9333EA", Label: "Biorhythm"},
}

// Style returns the display attributes for the category.
func (pc PhaseCategory) Style() CategoryStyle {
	if s, ok := categoryStyles[pc]; ok {
		return s
	}
	return CategoryStyle{Color: "#64748B", Label: "Unknown"}
}

// Certainty expresses how firm a phase's dates are.
type Certainty int

const (
	CertaintyConfirmed Certainty = iota
	CertaintyLikely
	CertaintyPossible
	CertaintySpeculative
)

var certaintyNames = map[Certainty]string{
	CertaintyConfirmed:   "confirmed",
	CertaintyLikely:      "likely",
	CertaintyPossible:    "possible",
	CertaintySpeculative: "speculative",
}

func (c Certainty) String() string {
	if name, ok := certaintyNames[c]; ok {
		return name
	}
	return "unknown"
}

// ParseCertainty resolves a certainty name, defaulting to likely.
func ParseCertainty(name string) (Certainty, bool) {
	for c, n := range certaintyNames {
		if n == name {
			return c, true
		}
	}
	return CertaintyLikely, false
}

// Opacity maps certainty to a render opacity in [0,1]. Confirmed phases are
// fully opaque; speculative ones fade out.
func (c Certainty) Opacity() float64 {
	switch c {
	case CertaintyConfirmed:
		return 1.0
	case CertaintyLikely:
		return 0.85
	case CertaintyPossible:
		return 0.6
	case CertaintySpeculative:
		return 0.35
	default:
		return 0.85
	}
}

// Dash reports whether the phase outline renders dashed (uncommitted dates).
func (c Certainty) Dash() bool {
	return c == CertaintyPossible || c == CertaintySpeculative
}

// Flexibility expresses how movable a phase is when plans shift.
type Flexibility int

const (
	FlexibilityFixed Flexibility = iota
	FlexibilityMovable
	FlexibilityFlexible
)

var flexibilityNames = map[Flexibility]string{
	FlexibilityFixed:    "fixed",
	FlexibilityMovable:  "movable",
	FlexibilityFlexible: "flexible",
}

func (f Flexibility) String() string {
	if name, ok := flexibilityNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFlexibility resolves a flexibility name, defaulting to movable.
func ParseFlexibility(name string) (Flexibility, bool) {
	for f, n := range flexibilityNames {
		if n == name {
			return f, true
		}
	}
	return FlexibilityMovable, false
}

// DebtStrategy selects how surplus payment capacity is allocated across debts.
type DebtStrategy int

const (
	StrategyMinimumPayment DebtStrategy = iota
	StrategyFixedPayment
	StrategySnowball
	StrategyAvalanche
)

var debtStrategyNames = map[DebtStrategy]string{
	StrategyMinimumPayment: "minimum-payment",
	StrategyFixedPayment:   "fixed-payment",
	StrategySnowball:       "snowball",
	StrategyAvalanche:      "avalanche",
}

func (ds DebtStrategy) String() string {
	if name, ok := debtStrategyNames[ds]; ok {
		return name
	}
	return "unknown"
}

// ParseDebtStrategy resolves a strategy name, defaulting to minimum-payment.
func ParseDebtStrategy(name string) (DebtStrategy, bool) {
	for ds, n := range debtStrategyNames {
		if n == name {
			return ds, true
		}
	}
	return StrategyMinimumPayment, false
}

// Pooled reports whether the strategy participates in run-wide extra-budget
// pooling. The payoff run decides its allocation mode once: if any debt uses
// a pooled strategy the whole run pools.
func (ds DebtStrategy) Pooled() bool {
	return ds == StrategySnowball || ds == StrategyAvalanche
}

// GoalType classifies a savings goal.
type GoalType int

const (
	GoalEmergency GoalType = iota
	GoalRetirement
	GoalEducation
	GoalHouse
	GoalCustom
)

var goalTypeNames = map[GoalType]string{
	GoalEmergency:  "emergency",
	GoalRetirement: "retirement",
	GoalEducation:  "education",
	GoalHouse:      "house",
	GoalCustom:     "custom",
}

func (gt GoalType) String() string {
	if name, ok := goalTypeNames[gt]; ok {
		return name
	}
	return "unknown"
}

// ParseGoalType resolves a goal type name, defaulting to custom.
func ParseGoalType(name string) (GoalType, bool) {
	for gt, n := range goalTypeNames {
		if n == name {
			return gt, true
		}
	}
	return GoalCustom, false
}

// Sex selects the mortality table. Only two reference tables exist; anything
// else is rejected at parse time rather than silently mapped.
type Sex int

const (
	SexMale Sex = iota
	SexFemale
)

func (s Sex) String() string {
	switch s {
	case SexMale:
		return "male"
	case SexFemale:
		return "female"
	default:
		return "unknown"
	}
}

// ParseSex resolves a sex name for mortality table selection.
func ParseSex(name string) (Sex, error) {
	switch name {
	case "male", "m":
		return SexMale, nil
	case "female", "f":
		return SexFemale, nil
	default:
		return SexMale, fmt.Errorf("no mortality table for sex %q (supported: male, female)", name)
	}
}
