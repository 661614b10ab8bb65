// Package pipeline sequences a full report run: for each season, fetch the
// four salary sources and the player directory, reconcile, rank, and fold
// the result into the aggregate report.
//
// Execution is strictly sequential, seasons one at a time and sources within
// a season one at a time, with a courtesy pause after every request to stay
// under the upstream's throttling radar. The first terminal fetch failure
// aborts the whole run; there is no partial-report mode.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nateprich/mfl-salary-top30/internal/config"
	"github.com/nateprich/mfl-salary-top30/internal/sources/mfl"
	"github.com/nateprich/mfl-salary-top30/pkg/league"
	"github.com/nateprich/mfl-salary-top30/pkg/logging"
	"github.com/nateprich/mfl-salary-top30/pkg/rank"
	"github.com/nateprich/mfl-salary-top30/pkg/reconcile"
)

// Runner executes the fetch → reconcile → rank pipeline across all
// configured seasons.
type Runner struct {
	cfg    *config.Config
	source *mfl.Client
	logger *zerolog.Logger
}

// New creates a Runner.
func New(cfg *config.Config, source *mfl.Client, logger *zerolog.Logger) *Runner {
	if logger == nil {
		logger = logging.Default()
	}
	return &Runner{
		cfg:    cfg,
		source: source,
		logger: logger,
	}
}

// Run executes the pipeline and returns the aggregate report. The context is
// tagged with a fresh run ID so every log line below, including the fetch
// client's retry logging, carries it.
func (r *Runner) Run(ctx context.Context) (*league.Report, error) {
	ctx = logging.WithLogger(ctx, r.logger)
	ctx = logging.WithRunID(ctx, uuid.NewString())
	log := logging.Ctx(ctx)

	report := league.NewReport(r.cfg.Seasons, r.cfg.Positions)
	start := time.Now()

	log.Info().
		Str("league_id", r.cfg.LeagueID).
		Int("seasons", len(r.cfg.Seasons)).
		Int("top_n", r.cfg.TopN).
		Msg("starting salary report run")

	for _, season := range r.cfg.Seasons {
		if err := r.runSeason(ctx, season, report); err != nil {
			return nil, fmt.Errorf("season %s: %w", season, err)
		}
	}

	log.Info().
		Dur("elapsed", time.Since(start)).
		Msg("salary report run complete")
	return report, nil
}

// runSeason fetches all sources for one season, merges the salary maps with
// the max-wins policy, and stores the ranked buckets into the report. The
// season-tagged logger is threaded back into the context so fetches inherit
// the season field.
func (r *Runner) runSeason(ctx context.Context, season league.Season, report *league.Report) error {
	seasonLogger := logging.Ctx(ctx).With().Str("season", string(season)).Logger()
	ctx = logging.WithLogger(ctx, &seasonLogger)
	log := &seasonLogger
	start := time.Now()

	merged := make(league.SalaryMap)

	for _, week := range r.cfg.RosterWeeks {
		salaries, err := r.source.RosterSalaries(ctx, season, week)
		if err != nil {
			return err
		}
		log.Debug().Int("week", week).Int("players", len(salaries)).Msg("roster snapshot fetched")
		reconcile.MergeInto(merged, salaries)
		if err := r.pause(ctx); err != nil {
			return err
		}
	}

	auction, err := r.source.AuctionSalaries(ctx, season)
	if err != nil {
		return err
	}
	log.Debug().Int("players", len(auction)).Msg("auction results fetched")
	reconcile.MergeInto(merged, auction)
	if err := r.pause(ctx); err != nil {
		return err
	}

	waivers, err := r.source.WaiverSalaries(ctx, season)
	if err != nil {
		return err
	}
	log.Debug().Int("players", len(waivers)).Msg("waiver bids fetched")
	reconcile.MergeInto(merged, waivers)
	if err := r.pause(ctx); err != nil {
		return err
	}

	meta, err := r.source.Players(ctx, season)
	if err != nil {
		return err
	}
	log.Debug().Int("players", len(meta)).Msg("player directory fetched")
	if err := r.pause(ctx); err != nil {
		return err
	}

	buckets := rank.Top(merged, meta, r.cfg.Positions, r.cfg.TopN)
	for pos, entries := range buckets {
		report.Set(pos, season, entries)
	}

	log.Info().
		Int("salaried_players", len(merged)).
		Dur("elapsed", time.Since(start)).
		Msg("season reconciled")
	return nil
}

// pause sleeps for the configured inter-request delay, honoring context
// cancellation.
func (r *Runner) pause(ctx context.Context) error {
	if r.cfg.RequestDelay <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(r.cfg.RequestDelay):
		return nil
	}
}
