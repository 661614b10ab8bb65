// Package league defines the domain types shared across the salary report
// pipeline: seasons, players, positions, salary observations, and the
// season-by-position report that rendering consumes.
//
// All values are built fresh per run from network data and are never
// persisted. Player IDs are opaque strings scoped to a single season; no
// cross-season identity merging is attempted.
package league

// Season is one year's competition cycle, e.g. "2023". It is the unit of
// independent data collection.
type Season string

// PlayerID is an opaque stable player key, scoped to one season.
type PlayerID string

// SalaryMap holds one source's salary claims for a season.
type SalaryMap map[PlayerID]float64

// Record stores an observation, keeping the maximum when the same player is
// seen more than once within one source. Zero and negative amounts are
// treated as absent and never stored.
func (m SalaryMap) Record(id PlayerID, amount float64) {
	if id == "" || amount <= 0 {
		return
	}
	if amount > m[id] {
		m[id] = amount
	}
}

// PlayerMeta is a season-scoped player description. Players whose raw
// position is not in the recognized set never get a PlayerMeta entry, which
// is what ultimately excludes them from ranking.
type PlayerMeta struct {
	Name     string
	Position Position
}

// MetaMap maps player IDs to their season-scoped metadata.
type MetaMap map[PlayerID]PlayerMeta

// RankedEntry is one row of a position bucket: a 1-based rank, the player's
// display name, and the reconciled salary amount.
type RankedEntry struct {
	Rank   int     `json:"rank" yaml:"rank"`
	Name   string  `json:"name" yaml:"name"`
	Amount float64 `json:"amount" yaml:"amount"`
}
