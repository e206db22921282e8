package smoketest

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/fftw/tradewizard/pkg/logger"
)

// Run executes the complete smoke test against a running instance.
func Run(ctx context.Context, config *Config) error {
	stats := &Stats{
		StartTime: time.Now(),
	}

	logger.Get().Info(ctx, "starting trade wizard smoke test",
		logger.String("baseURL", config.BaseURL),
		logger.String("runID", config.RunID),
		logger.Int("topN", config.TopN),
		logger.String("timeout", config.Timeout.String()),
		logger.String("logFile", config.LogFile),
		logger.Bool("verbose", config.Verbose))

	client := newHTTPClient(config.Timeout, config.RunID)

	// Step 1: Check service health
	if err := checkServiceHealth(ctx, client, config); err != nil {
		return fmt.Errorf("service health check failed: %w", err)
	}

	// Step 2: Retrieve the player pool
	players, err := retrievePlayers(ctx, client, config, stats)
	if err != nil {
		return fmt.Errorf("player retrieval failed: %w", err)
	}

	// Step 3: Retrieve and verify rankings
	rankings, err := retrieveRankings(ctx, client, config)
	if err != nil {
		return fmt.Errorf("ranking retrieval failed: %w", err)
	}
	if err := verifyRankings(ctx, rankings, stats); err != nil {
		return fmt.Errorf("ranking verification failed: %w", err)
	}

	// Step 4: Trade checks built from real pool members
	teamA, teamB := pickTradeSides(players)
	if err := verifyTradeSymmetry(ctx, client, config.BaseURL, teamA, teamB, stats); err != nil {
		return fmt.Errorf("trade symmetry check failed: %w", err)
	}
	if err := verifyEmptyTrade(ctx, client, config.BaseURL, stats); err != nil {
		return fmt.Errorf("empty trade check failed: %w", err)
	}

	// Step 5: Display results
	displayTopPlayers(rankings, config.TopN, config.Verbose)

	stats.EndTime = time.Now()
	stats.Duration = stats.EndTime.Sub(stats.StartTime)

	displayFinalStats(stats)

	logger.Get().Info(ctx, "smoke test completed successfully")
	return nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, client *HTTPClient, config *Config) error {
	logger.Get().Info(ctx, "checking service health")

	resp, err := client.Get(ctx, config.BaseURL+"/healthz")
	if err != nil {
		return fmt.Errorf("failed to connect to service: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Get().Error(context.Background(), "failed to close response body", logger.Error(err))
		}
	}()

	// Any 200 response counts as healthy (the endpoint returns Prometheus metrics).
	if resp.StatusCode != 200 {
		return fmt.Errorf("service health check failed with status: %d", resp.StatusCode)
	}

	logger.Get().Info(ctx, "service is healthy")
	return nil
}

// retrievePlayers fetches the full player pool.
func retrievePlayers(ctx context.Context, client *HTTPClient, config *Config, stats *Stats) ([]Player, error) {
	logger.Get().Info(ctx, "retrieving player pool")

	var players []Player
	if err := client.getJSON(ctx, config.BaseURL+"/players", &players); err != nil {
		return nil, err
	}

	if len(players) == 0 {
		stats.ChecksFailed++
		return nil, fmt.Errorf("player pool is empty")
	}

	stats.PlayersRetrieved = len(players)
	stats.ChecksPassed++
	logger.Get().Info(ctx, "player pool retrieved", logger.Int("players", len(players)))
	return players, nil
}

// retrieveRankings fetches rest-of-season rankings, optionally filtered
// by position.
func retrieveRankings(ctx context.Context, client *HTTPClient, config *Config) ([]ROSEntry, error) {
	logger.Get().Info(ctx, "retrieving rankings", logger.String("position", config.Position))

	endpoint := config.BaseURL + "/rankings/ros"
	if config.Position != "" {
		endpoint += "?position=" + url.QueryEscape(config.Position)
	}

	var rankings []ROSEntry
	if err := client.getJSON(ctx, endpoint, &rankings); err != nil {
		return nil, err
	}
	return rankings, nil
}

// pickTradeSides splits the first few pool members into two small trade
// packages.
func pickTradeSides(players []Player) (teamA, teamB []string) {
	for i, p := range players {
		if i >= 4 {
			break
		}
		if i%2 == 0 {
			teamA = append(teamA, p.ID)
		} else {
			teamB = append(teamB, p.ID)
		}
	}
	return teamA, teamB
}

// displayFinalStats prints the final smoke test statistics.
func displayFinalStats(stats *Stats) {
	logger.Get().Info(context.Background(), "final statistics",
		logger.Int("playersRetrieved", stats.PlayersRetrieved),
		logger.Int("rankingsChecked", stats.RankingsChecked),
		logger.Int("tradesAnalyzed", stats.TradesAnalyzed),
		logger.Int("checksPassed", stats.ChecksPassed),
		logger.Int("checksFailed", stats.ChecksFailed),
		logger.String("duration", stats.Duration.String()))
}
