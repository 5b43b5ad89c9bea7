package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKnown(t *testing.T) {
	cfg := Lookup("IPUMS USA")
	require.True(t, cfg.HasVariableURL)
	require.NotNil(t, cfg.URLBuilder)
	assert.Equal(t, "https://usa.ipums.org/usa-action/variables/HEALTH#codes_section", cfg.URLBuilder("health"))
}

func TestLookupAggregateProject(t *testing.T) {
	cfg := Lookup("IPUMS NHGIS")
	assert.False(t, cfg.HasVariableURL)
	assert.Nil(t, cfg.URLBuilder)
}

func TestLookupUnknownDefaults(t *testing.T) {
	cfg := Lookup("No Such Project")
	assert.False(t, cfg.HasVariableURL)
	assert.Nil(t, cfg.URLBuilder)
}

func TestKnown(t *testing.T) {
	ids := Known()
	require.NotEmpty(t, ids)
	assert.IsNonDecreasing(t, ids)
	assert.Contains(t, ids, "IPUMS CPS")

	for _, id := range ids {
		cfg := Lookup(id)
		if cfg.HasVariableURL {
			assert.NotNil(t, cfg.URLBuilder, id)
		} else {
			assert.Nil(t, cfg.URLBuilder, id)
		}
	}
}
