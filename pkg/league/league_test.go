package league_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nateprich/mfl-salary-top30/pkg/league"
)

func TestFormatName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"last comma first", "Smith, John", "John Smith"},
		{"no comma passes through", "Buffalo Bills", "Buffalo Bills"},
		{"empty yields placeholder", "", "Unknown"},
		{"whitespace only yields placeholder", "   ", "Unknown"},
		{"extra whitespace trimmed", "  Smith ,  John  ", "John Smith"},
		{"trailing comma keeps last name", "Smith,", "Smith"},
		{"suffix stays with last name", "Smith Jr., John", "John Smith Jr."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, league.FormatName(tt.raw))
		})
	}
}

func TestNormalizePosition(t *testing.T) {
	tests := []struct {
		raw  string
		want league.Position
		ok   bool
	}{
		{"QB", league.QB, true},
		{"qb", league.QB, true},
		{"RB", league.RB, true},
		{"wr", league.WR, true},
		{"TE", league.TE, true},
		{"K", league.PK, true},
		{"k", league.PK, true},
		{"PK", league.PK, true},
		{"DEF", league.Def, true},
		{"def", league.Def, true},
		{"Def", league.Def, true},
		{"CB", "", false},   // deny-listed defensive sub-position
		{"s", "", false},    // deny-list is case-insensitive too
		{"TMQB", "", false}, // team-aggregate tag
		{"Off", "", false},
		{"Coach", "", false},
		{"XYZ", "", false}, // unrecognized
		{"", "", false},
		{"  ", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := league.NormalizePosition(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSalaryMapRecord(t *testing.T) {
	m := make(league.SalaryMap)

	m.Record("0001", 100)
	m.Record("0001", 50) // lower duplicate keeps the max
	assert.Equal(t, 100.0, m["0001"])

	m.Record("0001", 250)
	assert.Equal(t, 250.0, m["0001"])

	m.Record("0002", 0) // zero treated as absent
	m.Record("0003", -5)
	m.Record("", 42)
	assert.Len(t, m, 1)
}

func TestNewReportHasEmptyBuckets(t *testing.T) {
	seasons := []league.Season{"2022", "2023"}
	positions := []league.Position{league.QB, league.PK}
	rep := league.NewReport(seasons, positions)

	for _, pos := range positions {
		for _, season := range seasons {
			entries := rep.Get(pos, season)
			require.NotNil(t, entries, "bucket %s/%s must exist", pos, season)
			assert.Empty(t, entries)
		}
	}
}

func TestReportSetAndMaxRows(t *testing.T) {
	rep := league.NewReport([]league.Season{"2022", "2023"}, []league.Position{league.QB})

	rep.Set(league.QB, "2023", []league.RankedEntry{
		{Rank: 1, Name: "John Smith", Amount: 1500000},
		{Rank: 2, Name: "Alan Doe", Amount: 900000},
	})
	rep.Set(league.QB, "2022", nil) // nil normalizes to empty, not missing

	assert.Len(t, rep.Get(league.QB, "2023"), 2)
	assert.NotNil(t, rep.Get(league.QB, "2022"))
	assert.Equal(t, 2, rep.MaxRows(league.QB))

	// Untracked positions are ignored, not added.
	rep.Set(league.WR, "2023", []league.RankedEntry{{Rank: 1, Name: "X", Amount: 1}})
	assert.Nil(t, rep.Get(league.WR, "2023"))
}
