// Package config loads the fixed run configuration for the salary report
// tool. Precedence: environment variables (with a .env preload) over an
// optional config file over defaults. The loaded value is immutable and
// passed into the pipeline explicitly, so the core stays testable against
// synthetic seasons and positions.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/nateprich/mfl-salary-top30/pkg/errors"
	"github.com/nateprich/mfl-salary-top30/pkg/league"
)

// Defaults.
const (
	DefaultLeagueID     = "13522"
	DefaultTopN         = 30
	DefaultWaiverCount  = 2000
	DefaultRequestDelay = 2 * time.Second
	DefaultHTTPTimeout  = 30 * time.Second
	DefaultMaxAttempts  = 3
	DefaultRetryBackoff = 1 * time.Second
)

// DefaultSeasons is the fixed season range the report covers.
var DefaultSeasons = []league.Season{
	"2015", "2016", "2017", "2018", "2019",
	"2020", "2021", "2022", "2023", "2024",
}

// DefaultRosterWeeks are the two fixed roster snapshot offsets: opening
// rosters and the late-season week 14 state.
var DefaultRosterWeeks = []int{1, 14}

// Config is the immutable run configuration.
type Config struct {
	LeagueID    string
	BaseURL     string
	Seasons     []league.Season
	Positions   []league.Position
	TopN        int
	RosterWeeks []int
	WaiverCount int

	RequestDelay time.Duration
	HTTPTimeout  time.Duration
	MaxAttempts  int
	RetryBackoff time.Duration

	OutputDir string
}

// Load reads configuration from .env files, environment variables (prefixed
// MFL_), and an optional config file, then validates the result.
func Load(configFile string) (*Config, error) {
	loadEnvFiles()

	v := viper.New()
	v.SetEnvPrefix("MFL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.NewConfigError("config_file", "cannot read "+configFile, err)
		}
	} else {
		v.SetConfigName(".mflsalary")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
		// A missing config file is fine; defaults and env carry the run.
		if err := v.ReadInConfig(); err != nil {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				return nil, errors.NewConfigError("config_file", "cannot read config", err)
			}
		}
	}

	cfg := &Config{
		LeagueID:     v.GetString("league_id"),
		BaseURL:      strings.TrimRight(v.GetString("base_url"), "/"),
		Seasons:      toSeasons(v.GetStringSlice("seasons")),
		Positions:    toPositions(v.GetStringSlice("positions")),
		TopN:         v.GetInt("top_n"),
		RosterWeeks:  v.GetIntSlice("roster_weeks"),
		WaiverCount:  v.GetInt("waiver_count"),
		RequestDelay: v.GetDuration("request_delay"),
		HTTPTimeout:  v.GetDuration("http_timeout"),
		MaxAttempts:  v.GetInt("max_attempts"),
		RetryBackoff: v.GetDuration("retry_backoff"),
		OutputDir:    v.GetString("output_dir"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the built-in configuration without touching the
// environment, for tests and library use.
func Default() *Config {
	return &Config{
		LeagueID:     DefaultLeagueID,
		BaseURL:      "https://api.myfantasyleague.com",
		Seasons:      append([]league.Season(nil), DefaultSeasons...),
		Positions:    append([]league.Position(nil), league.DefaultPositions...),
		TopN:         DefaultTopN,
		RosterWeeks:  append([]int(nil), DefaultRosterWeeks...),
		WaiverCount:  DefaultWaiverCount,
		RequestDelay: DefaultRequestDelay,
		HTTPTimeout:  DefaultHTTPTimeout,
		MaxAttempts:  DefaultMaxAttempts,
		RetryBackoff: DefaultRetryBackoff,
		OutputDir:    ".",
	}
}

// Validate checks the configuration for values the pipeline cannot run with.
func (c *Config) Validate() error {
	if c.LeagueID == "" {
		return errors.NewConfigError("league_id", "must not be empty", nil)
	}
	if c.BaseURL == "" {
		return errors.NewConfigError("base_url", "must not be empty", nil)
	}
	if len(c.Seasons) == 0 {
		return errors.NewConfigError("seasons", "at least one season is required", nil)
	}
	if len(c.Positions) == 0 {
		return errors.NewConfigError("positions", "at least one position is required", nil)
	}
	for _, raw := range c.Positions {
		if _, ok := league.NormalizePosition(string(raw)); !ok {
			return errors.NewConfigError("positions", "unrecognized position "+string(raw), nil)
		}
	}
	if c.TopN <= 0 {
		return errors.NewConfigError("top_n", "must be positive", nil)
	}
	if len(c.RosterWeeks) == 0 {
		return errors.NewConfigError("roster_weeks", "at least one roster week is required", nil)
	}
	for _, w := range c.RosterWeeks {
		if w < 1 || w > 18 {
			return errors.NewConfigError("roster_weeks", "week out of range", nil)
		}
	}
	if c.MaxAttempts < 1 {
		return errors.NewConfigError("max_attempts", "must be at least 1", nil)
	}
	if c.RequestDelay < 0 || c.RetryBackoff < 0 {
		return errors.NewConfigError("delays", "must not be negative", nil)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("league_id", def.LeagueID)
	v.SetDefault("base_url", def.BaseURL)
	v.SetDefault("seasons", seasonsToStrings(def.Seasons))
	v.SetDefault("positions", positionsToStrings(def.Positions))
	v.SetDefault("top_n", def.TopN)
	v.SetDefault("roster_weeks", def.RosterWeeks)
	v.SetDefault("waiver_count", def.WaiverCount)
	v.SetDefault("request_delay", def.RequestDelay)
	v.SetDefault("http_timeout", def.HTTPTimeout)
	v.SetDefault("max_attempts", def.MaxAttempts)
	v.SetDefault("retry_backoff", def.RetryBackoff)
	v.SetDefault("output_dir", def.OutputDir)
}

// loadEnvFiles loads .env files if present; missing files are not an error.
func loadEnvFiles() {
	for _, file := range []string{".env.local", ".env"} {
		if _, err := os.Stat(file); err == nil {
			_ = godotenv.Load(file)
		}
	}
}

func toSeasons(raw []string) []league.Season {
	out := make([]league.Season, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, league.Season(s))
		}
	}
	return out
}

func toPositions(raw []string) []league.Position {
	out := make([]league.Position, 0, len(raw))
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if pos, ok := league.NormalizePosition(s); ok {
			out = append(out, pos)
		} else {
			out = append(out, league.Position(s)) // kept invalid so Validate reports it
		}
	}
	return out
}

func seasonsToStrings(seasons []league.Season) []string {
	out := make([]string, len(seasons))
	for i, s := range seasons {
		out[i] = string(s)
	}
	return out
}

func positionsToStrings(positions []league.Position) []string {
	out := make([]string, len(positions))
	for i, p := range positions {
		out[i] = string(p)
	}
	return out
}
