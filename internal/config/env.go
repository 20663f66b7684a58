package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Defaults carries the engine configuration surface. Every value is passed
// down as an explicit argument, nothing here is global engine state, but
// the CLI lets operators override the standard values via environment.
type Defaults struct {
	// Months is the projection horizon (default 80 years).
	Months int `env:"LPGO_MONTHS" envDefault:"960"`
	// DebtMaxMonths caps the debt payoff simulation.
	DebtMaxMonths int `env:"LPGO_DEBT_MAX_MONTHS" envDefault:"600"`
	// RedZoneThreshold is the composite stress red-zone cut.
	RedZoneThreshold float64 `env:"LPGO_RED_ZONE_THRESHOLD" envDefault:"70"`
	// MaxAge bounds the survival curve.
	MaxAge int `env:"LPGO_MAX_AGE" envDefault:"110"`
}

// LoadDefaults reads the defaults, applying any LPGO_* overrides.
func LoadDefaults() (Defaults, error) {
	var d Defaults
	if err := env.Parse(&d); err != nil {
		return Defaults{}, fmt.Errorf("failed to parse environment defaults: %w", err)
	}
	return d, nil
}
