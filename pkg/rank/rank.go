// Package rank joins reconciled salaries with player metadata and produces
// per-position top-N rankings.
package rank

import (
	"sort"

	"github.com/nateprich/mfl-salary-top30/pkg/league"
)

// Top buckets reconciled salaries by position, sorts each bucket descending
// by amount, and truncates to the first topN entries with dense 1-based
// ranks.
//
// Players without metadata are skipped silently: a salary with an
// unrecognized or missing position is expected data noise (historical and
// off-roster IDs), not an error. Positions outside the tracked list are
// skipped the same way. Every tracked position gets a bucket even when
// empty.
//
// Salaries are consumed in ascending player-ID order so that the stable
// tie-break between equal amounts is reproducible run to run.
func Top(salaries league.SalaryMap, meta league.MetaMap, positions []league.Position, topN int) map[league.Position][]league.RankedEntry {
	buckets := make(map[league.Position][]league.RankedEntry, len(positions))
	tracked := make(map[league.Position]struct{}, len(positions))
	for _, pos := range positions {
		tracked[pos] = struct{}{}
		buckets[pos] = []league.RankedEntry{}
	}

	for _, id := range sortedIDs(salaries) {
		m, ok := meta[id]
		if !ok {
			continue
		}
		if _, ok := tracked[m.Position]; !ok {
			continue
		}
		buckets[m.Position] = append(buckets[m.Position], league.RankedEntry{
			Name:   m.Name,
			Amount: salaries[id],
		})
	}

	for pos, entries := range buckets {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].Amount > entries[j].Amount
		})
		if topN >= 0 && len(entries) > topN {
			entries = entries[:topN]
		}
		for i := range entries {
			entries[i].Rank = i + 1
		}
		buckets[pos] = entries
	}

	return buckets
}

func sortedIDs(salaries league.SalaryMap) []league.PlayerID {
	ids := make([]league.PlayerID, 0, len(salaries))
	for id := range salaries {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
