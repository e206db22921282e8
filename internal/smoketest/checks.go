package smoketest

import (
	"context"
	"fmt"
	"log"
	"math"
)

// floatTolerance covers rounding differences when comparing totals
// computed on opposite sides of a swapped trade.
const floatTolerance = 0.011

// verifyRankings checks that rankings are sorted by ROS points in
// descending order and that tier labels never interleave.
func verifyRankings(ctx context.Context, rankings []ROSEntry, stats *Stats) error {
	log.Println("🔍 Verifying rankings...")

	if len(rankings) == 0 {
		return fmt.Errorf("no rankings to verify")
	}

	for i := 1; i < len(rankings); i++ {
		if rankings[i].ROSPoints > rankings[i-1].ROSPoints {
			stats.ChecksFailed++
			return fmt.Errorf("rankings not sorted: entry %d (%.2f) scores higher than entry %d (%.2f)",
				i, rankings[i].ROSPoints, i-1, rankings[i-1].ROSPoints)
		}
	}
	stats.ChecksPassed++
	log.Println("✅ Rankings sorted by ROS points")

	if err := verifyTierMonotonicity(rankings); err != nil {
		stats.ChecksFailed++
		return err
	}
	stats.ChecksPassed++
	log.Println("✅ Tier labels are contiguous")

	stats.RankingsChecked += len(rankings)
	return nil
}

// verifyTierMonotonicity checks that once a tier label has been left
// behind, it never reappears further down the ranking.
func verifyTierMonotonicity(rankings []ROSEntry) error {
	seen := make(map[string]bool)
	current := rankings[0].Tier

	for i, entry := range rankings {
		if entry.Tier == current {
			continue
		}
		if seen[entry.Tier] {
			return fmt.Errorf("tier %q reappears at entry %d after being left behind", entry.Tier, i)
		}
		seen[current] = true
		current = entry.Tier
	}
	return nil
}

// verifyTradeSymmetry submits a trade and its mirror and checks that
// the totals swap and the delta negates.
func verifyTradeSymmetry(ctx context.Context, client *HTTPClient, baseURL string, teamA, teamB []string, stats *Stats) error {
	log.Println("🔍 Verifying trade symmetry...")

	url := baseURL + "/trade/analyze"

	var forward TradeResponse
	if err := client.postJSON(ctx, url, TradeRequest{TeamA: teamA, TeamB: teamB}, &forward); err != nil {
		return fmt.Errorf("forward trade failed: %w", err)
	}
	stats.TradesAnalyzed++

	var mirrored TradeResponse
	if err := client.postJSON(ctx, url, TradeRequest{TeamA: teamB, TeamB: teamA}, &mirrored); err != nil {
		return fmt.Errorf("mirrored trade failed: %w", err)
	}
	stats.TradesAnalyzed++

	if math.Abs(forward.TeamATotal-mirrored.TeamBTotal) > floatTolerance ||
		math.Abs(forward.TeamBTotal-mirrored.TeamATotal) > floatTolerance {
		stats.ChecksFailed++
		return fmt.Errorf("swapped totals do not match: forward (%.2f, %.2f) vs mirrored (%.2f, %.2f)",
			forward.TeamATotal, forward.TeamBTotal, mirrored.TeamATotal, mirrored.TeamBTotal)
	}

	if math.Abs(forward.DeltaA+mirrored.DeltaA) > floatTolerance {
		stats.ChecksFailed++
		return fmt.Errorf("mirrored delta is not negated: %.2f vs %.2f", forward.DeltaA, mirrored.DeltaA)
	}

	stats.ChecksPassed++
	log.Printf("✅ Trade symmetry verified (delta %.2f, verdict %q)", forward.DeltaA, forward.Verdict)
	return nil
}

// verifyEmptyTrade submits a trade with no players on either side and
// checks that both totals are zero and the verdict declares it fair.
func verifyEmptyTrade(ctx context.Context, client *HTTPClient, baseURL string, stats *Stats) error {
	log.Println("🔍 Verifying empty trade...")

	var result TradeResponse
	if err := client.postJSON(ctx, baseURL+"/trade/analyze", TradeRequest{TeamA: []string{}, TeamB: []string{}}, &result); err != nil {
		return fmt.Errorf("empty trade failed: %w", err)
	}
	stats.TradesAnalyzed++

	if result.TeamATotal != 0 || result.TeamBTotal != 0 || result.DeltaA != 0 {
		stats.ChecksFailed++
		return fmt.Errorf("empty trade returned non-zero totals: (%.2f, %.2f, %.2f)",
			result.TeamATotal, result.TeamBTotal, result.DeltaA)
	}

	stats.ChecksPassed++
	log.Printf("✅ Empty trade verified (verdict %q)", result.Verdict)
	return nil
}

// displayTopPlayers shows the top ranked players from the run.
func displayTopPlayers(rankings []ROSEntry, topN int, verbose bool) {
	if len(rankings) < topN {
		topN = len(rankings)
	}

	log.Printf("🏆 Top %d players by ROS points:", topN)
	for i := 0; i < topN; i++ {
		entry := rankings[i]
		log.Printf("   %d. %s (%s, %s) - %.2f [%s]",
			i+1, entry.Player.Name, entry.Player.Position, entry.Player.Team, entry.ROSPoints, entry.Tier)
	}

	if verbose && len(rankings) > 0 {
		sum := 0.0
		for _, entry := range rankings {
			sum += entry.ROSPoints
		}
		log.Printf(`📊 ROS point statistics:
   Average: %.2f
   Maximum: %.2f
   Minimum: %.2f
`, sum/float64(len(rankings)), rankings[0].ROSPoints, rankings[len(rankings)-1].ROSPoints)
	}
}
