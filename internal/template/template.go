// Package template expands named life templates (ordered lists of phase
// blueprints with month offsets and durations) into concrete phases anchored
// at a start date. This is the producer side of the engines' Phase input;
// it does simple date arithmetic, never scoring or simulation.
package template

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lifeplan/lpgo/internal/domain"
)

// Blueprint is one phase within a template, positioned relative to the
// template's anchor date.
type Blueprint struct {
	Name               string
	Category           domain.PhaseCategory
	OffsetMonths       int
	DurationMonths     int
	Certainty          domain.Certainty
	Flexibility        domain.Flexibility
	LoadTimeCost       float64
	EmotionalIntensity float64
	CaregivingHours    float64
	FamilyMember       string
}

// Template is a named, ordered collection of blueprints.
type Template struct {
	Name        string
	Description string
	Blueprints  []Blueprint
}

// Registry holds the available templates, looked up case-insensitively.
type Registry struct {
	templates map[string]Template
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{templates: make(map[string]Template)}
}

// Register adds a template, replacing any previous one with the same name.
func (r *Registry) Register(t Template) {
	r.templates[strings.ToLower(t.Name)] = t
}

// Get retrieves a template by name.
func (r *Registry) Get(name string) (Template, bool) {
	t, ok := r.templates[strings.ToLower(name)]
	return t, ok
}

// List returns all registered template names, sorted.
func (r *Registry) List() []string {
	names := make([]string, 0, len(r.templates))
	for name := range r.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Expand instantiates a template's blueprints as concrete phases anchored at
// start. Display order follows blueprint order.
func (r *Registry) Expand(name string, start time.Time) ([]domain.Phase, error) {
	t, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("template %q not found (available: %s)", name, strings.Join(r.List(), ", "))
	}

	phases := make([]domain.Phase, 0, len(t.Blueprints))
	for i, bp := range t.Blueprints {
		phaseStart := start.AddDate(0, bp.OffsetMonths, 0)
		phases = append(phases, domain.Phase{
			ID:                 uuid.New(),
			Name:               bp.Name,
			Category:           bp.Category,
			StartDate:          phaseStart,
			EndDate:            phaseStart.AddDate(0, bp.DurationMonths, 0),
			Certainty:          bp.Certainty,
			Flexibility:        bp.Flexibility,
			LoadTimeCost:       bp.LoadTimeCost,
			EmotionalIntensity: bp.EmotionalIntensity,
			CaregivingHours:    bp.CaregivingHours,
			FamilyMember:       bp.FamilyMember,
			DisplayOrder:       i,
			FromTemplate:       t.Name,
		})
	}
	return phases, nil
}

// BuiltIn creates a registry preloaded with the common life templates.
func BuiltIn() *Registry {
	r := NewRegistry()

	r.Register(Template{
		Name:        "new-child",
		Description: "First year with a newborn plus the longer parenting arc",
		Blueprints: []Blueprint{
			{Name: "Parental leave", Category: domain.CategoryFamily, OffsetMonths: 0, DurationMonths: 6,
				Certainty: domain.CertaintyLikely, Flexibility: domain.FlexibilityFixed,
				LoadTimeCost: 70, EmotionalIntensity: 75, CaregivingHours: 60},
			{Name: "Infant care", Category: domain.CategoryCaregiving, OffsetMonths: 0, DurationMonths: 12,
				Certainty: domain.CertaintyLikely, Flexibility: domain.FlexibilityFixed,
				LoadTimeCost: 40, EmotionalIntensity: 60, CaregivingHours: 35},
			{Name: "Early childhood", Category: domain.CategoryFamily, OffsetMonths: 12, DurationMonths: 48,
				Certainty: domain.CertaintyLikely, Flexibility: domain.FlexibilityMovable,
				LoadTimeCost: 30, EmotionalIntensity: 40, CaregivingHours: 20},
		},
	})

	r.Register(Template{
		Name:        "career-change",
		Description: "Retrain, search and ramp into a new field",
		Blueprints: []Blueprint{
			{Name: "Retraining", Category: domain.CategoryEducation, OffsetMonths: 0, DurationMonths: 9,
				Certainty: domain.CertaintyLikely, Flexibility: domain.FlexibilityFlexible,
				LoadTimeCost: 50, EmotionalIntensity: 45},
			{Name: "Job search", Category: domain.CategoryCareer, OffsetMonths: 6, DurationMonths: 6,
				Certainty: domain.CertaintyPossible, Flexibility: domain.FlexibilityMovable,
				LoadTimeCost: 35, EmotionalIntensity: 65},
			{Name: "New role ramp-up", Category: domain.CategoryCareer, OffsetMonths: 12, DurationMonths: 12,
				Certainty: domain.CertaintyPossible, Flexibility: domain.FlexibilityMovable,
				LoadTimeCost: 60, EmotionalIntensity: 50},
		},
	})

	r.Register(Template{
		Name:        "caregiving-parent",
		Description: "Escalating care for an aging parent",
		Blueprints: []Blueprint{
			{Name: "Check-ins and errands", Category: domain.CategoryCaregiving, OffsetMonths: 0, DurationMonths: 24,
				Certainty: domain.CertaintyLikely, Flexibility: domain.FlexibilityMovable,
				LoadTimeCost: 15, EmotionalIntensity: 35, CaregivingHours: 6, FamilyMember: "parent"},
			{Name: "Regular care", Category: domain.CategoryCaregiving, OffsetMonths: 24, DurationMonths: 24,
				Certainty: domain.CertaintyPossible, Flexibility: domain.FlexibilityMovable,
				LoadTimeCost: 30, EmotionalIntensity: 55, CaregivingHours: 15, FamilyMember: "parent"},
			{Name: "Intensive care", Category: domain.CategoryCaregiving, OffsetMonths: 48, DurationMonths: 18,
				Certainty: domain.CertaintySpeculative, Flexibility: domain.FlexibilityFixed,
				LoadTimeCost: 50, EmotionalIntensity: 80, CaregivingHours: 30, FamilyMember: "parent"},
		},
	})

	r.Register(Template{
		Name:        "home-purchase",
		Description: "Search, purchase and settle into a home",
		Blueprints: []Blueprint{
			{Name: "House hunt", Category: domain.CategoryHousing, OffsetMonths: 0, DurationMonths: 6,
				Certainty: domain.CertaintyLikely, Flexibility: domain.FlexibilityFlexible,
				LoadTimeCost: 20, EmotionalIntensity: 45},
			{Name: "Closing and move", Category: domain.CategoryHousing, OffsetMonths: 6, DurationMonths: 3,
				Certainty: domain.CertaintyPossible, Flexibility: domain.FlexibilityMovable,
				LoadTimeCost: 45, EmotionalIntensity: 60},
			{Name: "Settling in", Category: domain.CategoryHousing, OffsetMonths: 9, DurationMonths: 6,
				Certainty: domain.CertaintyPossible, Flexibility: domain.FlexibilityFlexible,
				LoadTimeCost: 25, EmotionalIntensity: 30},
		},
	})

	r.Register(Template{
		Name:        "sabbatical",
		Description: "A deliberate break from work",
		Blueprints: []Blueprint{
			{Name: "Wind-down", Category: domain.CategoryCareer, OffsetMonths: 0, DurationMonths: 2,
				Certainty: domain.CertaintyLikely, Flexibility: domain.FlexibilityMovable,
				LoadTimeCost: 55, EmotionalIntensity: 40},
			{Name: "Sabbatical", Category: domain.CategoryPersonal, OffsetMonths: 2, DurationMonths: 6,
				Certainty: domain.CertaintyLikely, Flexibility: domain.FlexibilityFlexible,
				LoadTimeCost: 10, EmotionalIntensity: 20},
			{Name: "Re-entry", Category: domain.CategoryCareer, OffsetMonths: 8, DurationMonths: 3,
				Certainty: domain.CertaintyPossible, Flexibility: domain.FlexibilityMovable,
				LoadTimeCost: 50, EmotionalIntensity: 45},
		},
	})

	return r
}
