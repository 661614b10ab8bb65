package report

import (
	"encoding/json"
	"io"

	"github.com/agentstation/utc"
	"github.com/goccy/go-yaml"

	"github.com/nateprich/mfl-salary-top30/pkg/errors"
	"github.com/nateprich/mfl-salary-top30/pkg/league"
)

// Export is the machine-readable form of a report, ordered deterministically
// (positions and seasons in configured order) rather than by map iteration.
type Export struct {
	GeneratedAt string           `json:"generated_at" yaml:"generated_at"`
	Seasons     []league.Season  `json:"seasons" yaml:"seasons"`
	Positions   []PositionExport `json:"positions" yaml:"positions"`
}

// PositionExport holds one position's per-season rankings.
type PositionExport struct {
	Position league.Position `json:"position" yaml:"position"`
	Seasons  []SeasonExport  `json:"seasons" yaml:"seasons"`
}

// SeasonExport holds one (position, season) bucket.
type SeasonExport struct {
	Season  league.Season        `json:"season" yaml:"season"`
	Entries []league.RankedEntry `json:"entries" yaml:"entries"`
}

// BuildExport flattens a report into its export form.
func BuildExport(rep *league.Report, now utc.Time) Export {
	out := Export{
		GeneratedAt: now.Format("2006-01-02T15:04:05Z"),
		Seasons:     append([]league.Season(nil), rep.Seasons...),
		Positions:   make([]PositionExport, 0, len(rep.Positions)),
	}
	for _, pos := range rep.Positions {
		pe := PositionExport{
			Position: pos,
			Seasons:  make([]SeasonExport, 0, len(rep.Seasons)),
		}
		for _, season := range rep.Seasons {
			entries := rep.Get(pos, season)
			if entries == nil {
				entries = []league.RankedEntry{}
			}
			pe.Seasons = append(pe.Seasons, SeasonExport{Season: season, Entries: entries})
		}
		out.Positions = append(out.Positions, pe)
	}
	return out
}

// WriteYAML writes the export as YAML.
func WriteYAML(w io.Writer, rep *league.Report, now utc.Time) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()
	if err := enc.Encode(BuildExport(rep, now)); err != nil {
		return errors.WrapIO("encode yaml", "export", err)
	}
	return nil
}

// WriteJSON writes the export as indented JSON.
func WriteJSON(w io.Writer, rep *league.Report, now utc.Time) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(BuildExport(rep, now)); err != nil {
		return errors.WrapIO("encode json", "export", err)
	}
	return nil
}
