package smoketest

import "time"

// Config holds configuration for the smoke test run.
type Config struct {
	BaseURL  string        // Base URL of the service
	TopN     int           // Number of top ranked players to display
	Timeout  time.Duration // HTTP request timeout
	LogFile  string        // Log file for test output
	Verbose  bool          // Enable verbose logging
	RunID    string        // Unique identifier tagged onto every request
	Position string        // Optional position filter for the rankings check
}

// Player mirrors the player payload returned by the service.
type Player struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Team           string  `json:"team"`
	Position       string  `json:"position"`
	FPPG           float64 `json:"fppg"`
	Usage          float64 `json:"usage"`
	SOS            float64 `json:"sos"`
	RemainingGames int     `json:"remaining_games"`
}

// ROSEntry mirrors a rest-of-season ranking entry.
type ROSEntry struct {
	Player    Player  `json:"player"`
	ROSPoints float64 `json:"ros_points"`
	Tier      string  `json:"tier"`
}

// TradeRequest is the body for the trade analysis endpoint.
type TradeRequest struct {
	TeamA []string `json:"team_a"`
	TeamB []string `json:"team_b"`
}

// TradeResponse mirrors the trade analysis payload.
type TradeResponse struct {
	TeamATotal float64 `json:"team_a_total"`
	TeamBTotal float64 `json:"team_b_total"`
	DeltaA     float64 `json:"delta_a"`
	Verdict    string  `json:"verdict"`
}

// Stats holds smoke test statistics.
type Stats struct {
	PlayersRetrieved int
	RankingsChecked  int
	TradesAnalyzed   int
	ChecksPassed     int
	ChecksFailed     int
	StartTime        time.Time
	EndTime          time.Time
	Duration         time.Duration
}
