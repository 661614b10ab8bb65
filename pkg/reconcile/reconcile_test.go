package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nateprich/mfl-salary-top30/pkg/league"
	"github.com/nateprich/mfl-salary-top30/pkg/reconcile"
)

func sampleSources() []league.SalaryMap {
	return []league.SalaryMap{
		{"0001": 1000000, "0002": 500000},             // roster week 1
		{"0002": 750000, "0004": 300000},              // roster week 14
		{"0001": 1500000, "0003": 425000},             // auction
		{"0003": 425000, "0004": 100000, "0005": 1.0}, // waivers
	}
}

// permutations returns every ordering of the given source maps.
func permutations(sources []league.SalaryMap) [][]league.SalaryMap {
	if len(sources) <= 1 {
		return [][]league.SalaryMap{append([]league.SalaryMap(nil), sources...)}
	}
	var out [][]league.SalaryMap
	for i := range sources {
		rest := make([]league.SalaryMap, 0, len(sources)-1)
		rest = append(rest, sources[:i]...)
		rest = append(rest, sources[i+1:]...)
		for _, perm := range permutations(rest) {
			out = append(out, append([]league.SalaryMap{sources[i]}, perm...))
		}
	}
	return out
}

func TestMergeCommutativity(t *testing.T) {
	sources := sampleSources()
	want := reconcile.Merge(sources...)

	perms := permutations(sources)
	require.Len(t, perms, 24)
	for _, perm := range perms {
		assert.Equal(t, want, reconcile.Merge(perm...))
	}
}

func TestMergeMonotonicity(t *testing.T) {
	sources := sampleSources()
	merged := reconcile.Merge(sources...)

	for _, src := range sources {
		for id, amount := range src {
			got, ok := merged[id]
			require.True(t, ok, "player %s lost during merge", id)
			assert.GreaterOrEqual(t, got, amount)
		}
	}

	// Nothing appears that no source observed.
	for id := range merged {
		found := false
		for _, src := range sources {
			if _, ok := src[id]; ok {
				found = true
				break
			}
		}
		assert.True(t, found, "player %s invented by merge", id)
	}
}

func TestMergeTakesMax(t *testing.T) {
	merged := reconcile.Merge(sampleSources()...)

	assert.Equal(t, league.SalaryMap{
		"0001": 1500000,
		"0002": 750000,
		"0003": 425000,
		"0004": 300000,
		"0005": 1.0,
	}, merged)
}

func TestMergeOfNothing(t *testing.T) {
	assert.Empty(t, reconcile.Merge())
	assert.Empty(t, reconcile.Merge(league.SalaryMap{}, nil))
}

func TestMergeIntoAccumulates(t *testing.T) {
	dst := league.SalaryMap{"0001": 100}
	src := league.SalaryMap{"0001": 50, "0002": 200}

	reconcile.MergeInto(dst, src)

	assert.Equal(t, league.SalaryMap{"0001": 100, "0002": 200}, dst)
	// Source must stay untouched.
	assert.Equal(t, league.SalaryMap{"0001": 50, "0002": 200}, src)
}
