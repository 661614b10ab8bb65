// Package reconcile merges overlapping per-source salary maps into one
// authoritative value per player using a max-wins policy.
//
// No single source is complete: roster snapshots miss players dropped
// mid-season, auction results miss players carried over from a prior year,
// and waiver bids miss everyone never claimed off waivers. Amounts only ever
// get corrected upward toward their true value across these sources, so the
// maximum observation is the trusted one.
package reconcile

import "github.com/nateprich/mfl-salary-top30/pkg/league"

// Merge folds any number of salary maps into a fresh map where every player
// carries the maximum amount observed across all sources. Max is commutative
// and associative, so the result is identical for any source ordering.
func Merge(sources ...league.SalaryMap) league.SalaryMap {
	merged := make(league.SalaryMap)
	for _, src := range sources {
		MergeInto(merged, src)
	}
	return merged
}

// MergeInto folds one source into dst in place: for every player present in
// either map, dst keeps the larger amount. The source map is never mutated.
func MergeInto(dst, src league.SalaryMap) {
	for id, amount := range src {
		if amount > dst[id] {
			dst[id] = amount
		}
	}
}
