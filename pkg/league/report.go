package league

// Report is the terminal artifact of a run: per position, per season, the
// ordered top-N ranked entries. Seasons and Positions carry the configured
// ordering so rendering stays deterministic regardless of map iteration.
type Report struct {
	Seasons   []Season
	Positions []Position
	Entries   map[Position]map[Season][]RankedEntry
}

// NewReport creates an empty report for the given season and position lists.
// Every (position, season) cell exists from the start, so positions with
// zero qualifying players still appear with an empty sequence.
func NewReport(seasons []Season, positions []Position) *Report {
	entries := make(map[Position]map[Season][]RankedEntry, len(positions))
	for _, pos := range positions {
		entries[pos] = make(map[Season][]RankedEntry, len(seasons))
		for _, season := range seasons {
			entries[pos][season] = []RankedEntry{}
		}
	}
	return &Report{
		Seasons:   append([]Season(nil), seasons...),
		Positions: append([]Position(nil), positions...),
		Entries:   entries,
	}
}

// Set stores the ranked entries for one (position, season) cell.
func (r *Report) Set(pos Position, season Season, entries []RankedEntry) {
	bucket, ok := r.Entries[pos]
	if !ok {
		return // untracked position
	}
	if entries == nil {
		entries = []RankedEntry{}
	}
	bucket[season] = entries
}

// Get returns the ranked entries for one (position, season) cell.
func (r *Report) Get(pos Position, season Season) []RankedEntry {
	if bucket, ok := r.Entries[pos]; ok {
		return bucket[season]
	}
	return nil
}

// MaxRows returns the longest bucket length for a position across all
// seasons, which rendering uses to size the rank column.
func (r *Report) MaxRows(pos Position) int {
	maxLen := 0
	for _, season := range r.Seasons {
		if n := len(r.Get(pos, season)); n > maxLen {
			maxLen = n
		}
	}
	return maxLen
}
