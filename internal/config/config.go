// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New() to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Provider names accepted by the Provider field.
const (
	ProviderESPN    = "espn"
	ProviderSleeper = "sleeper"
	ProviderStatic  = "static"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":9080".
	Addr string `koanf:"addr"`

	// Provider selects the player data source: espn, sleeper or static.
	Provider string `koanf:"provider"`

	// Season is the season year requested from the provider.
	Season int `koanf:"season"`

	// ScoringPeriod is the provider week index; 0 requests the full pool.
	ScoringPeriod int `koanf:"scoring_period"`

	// MaxPlayers caps how many players one provider fetch pulls.
	MaxPlayers int `koanf:"max_players"`

	// MinPercentOwned filters out players owned in fewer than this
	// percentage of leagues. Zero disables the filter.
	MinPercentOwned float64 `koanf:"min_percent_owned"`

	// ESPNS2 and ESPNSWID are optional ESPN auth cookies.
	ESPNS2   string `koanf:"espn_s2"`
	ESPNSWID string `koanf:"espn_swid"`

	// FetchTimeoutMS bounds a single provider fetch.
	FetchTimeoutMS int `koanf:"fetch_timeout_ms"`

	// UsageWeight and SOSWeight tune the valuation formula.
	UsageWeight float64 `koanf:"usage_weight"`
	SOSWeight   float64 `koanf:"sos_weight"`

	// TierPolicy selects the tier labelling scheme: cutoff or percentile.
	TierPolicy string `koanf:"tier_policy"`
}

// New creates a Config populated with defaults. The service is operable
// with zero configuration: a failed or unconfigured provider falls back
// to the static pool.
func New() *Config {
	return &Config{
		LogLevel:        "info",
		Addr:            ":9080",
		Provider:        ProviderESPN,
		Season:          2025,
		ScoringPeriod:   0,
		MaxPlayers:      400,
		MinPercentOwned: 20.0,
		FetchTimeoutMS:  15_000,
		UsageWeight:     0.03,
		SOSWeight:       0.10,
		TierPolicy:      "cutoff",
	}
}
