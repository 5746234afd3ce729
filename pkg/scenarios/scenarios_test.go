package scenarios_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/goegison/pkg/scenarios"
)

func TestAllScenariosRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, s := range scenarios.All {
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Description)
		names[s.Name] = true
	}
	assert.Len(t, names, len(scenarios.All), "scenario names must be unique")
}

func TestByNameLookup(t *testing.T) {
	s, ok := scenarios.ByName("twin-primes")
	require.True(t, ok)
	results := s.Run(nil, 2)
	assert.Len(t, results, 2)

	_, ok = scenarios.ByName("no-such-scenario")
	assert.False(t, ok)
}

func TestRunFirstOnPredicateFilterIsNoMatch(t *testing.T) {
	s, ok := scenarios.ByName("predicate-filter")
	require.True(t, ok)
	_, err := scenarios.RunFirst(s, nil)
	assert.Error(t, err)
}

func TestRunFirstOnAndOrNot(t *testing.T) {
	s, ok := scenarios.ByName("and-or-not")
	require.True(t, ok)
	got, err := scenarios.RunFirst(s, nil)
	require.NoError(t, err)
	assert.Equal(t, "matched", got)
}
