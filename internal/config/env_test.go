package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults_StandardValues(t *testing.T) {
	d, err := LoadDefaults()

	require.NoError(t, err)
	assert.Equal(t, 960, d.Months)
	assert.Equal(t, 600, d.DebtMaxMonths)
	assert.Equal(t, 70.0, d.RedZoneThreshold)
	assert.Equal(t, 110, d.MaxAge)
}

func TestLoadDefaults_EnvironmentOverrides(t *testing.T) {
	t.Setenv("LPGO_MONTHS", "120")
	t.Setenv("LPGO_RED_ZONE_THRESHOLD", "85.5")

	d, err := LoadDefaults()

	require.NoError(t, err)
	assert.Equal(t, 120, d.Months)
	assert.Equal(t, 85.5, d.RedZoneThreshold)
	assert.Equal(t, 600, d.DebtMaxMonths, "unrelated values keep their defaults")
}

func TestLoadDefaults_BadValue(t *testing.T) {
	t.Setenv("LPGO_MONTHS", "not-a-number")

	_, err := LoadDefaults()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "environment defaults")
}
