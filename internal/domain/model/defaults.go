package model

// DefaultPlayers returns the static fallback pool used when no provider
// can be reached. The set covers every rosterable position so rankings
// and trades stay meaningful offline.
//
// Returned as a fresh slice each call so callers can never mutate the
// fallback data out from under each other.
func DefaultPlayers() []Player {
	return []Player{
		{
			ID:             "p1",
			Name:           "Justin Jefferson",
			Team:           "MIN",
			Position:       PositionWR,
			FPPG:           18.5,
			Usage:          0.30, // ~30% team target share
			SOS:            0.5,  // mid difficulty schedule
			RemainingGames: 7,
		},
		{
			ID:             "p2",
			Name:           "Ja'Marr Chase",
			Team:           "CIN",
			Position:       PositionWR,
			FPPG:           17.3,
			Usage:          0.28,
			SOS:            0.55,
			RemainingGames: 7,
		},
		{
			ID:             "p3",
			Name:           "Christian McCaffrey",
			Team:           "SF",
			Position:       PositionRB,
			FPPG:           21.7,
			Usage:          0.40, // very high usage RB
			SOS:            0.45, // slightly easier schedule
			RemainingGames: 7,
		},
		{
			ID:             "p4",
			Name:           "Josh Allen",
			Team:           "BUF",
			Position:       PositionQB,
			FPPG:           22.1,
			Usage:          0.85,
			SOS:            0.5,
			RemainingGames: 7,
		},
		{
			ID:             "p5",
			Name:           "Travis Kelce",
			Team:           "KC",
			Position:       PositionTE,
			FPPG:           14.2,
			Usage:          0.24,
			SOS:            0.52,
			RemainingGames: 7,
		},
		{
			ID:             "p6",
			Name:           "Bijan Robinson",
			Team:           "ATL",
			Position:       PositionRB,
			FPPG:           16.8,
			Usage:          0.34,
			SOS:            0.48,
			RemainingGames: 7,
		},
		{
			ID:             "p7",
			Name:           "Amon-Ra St. Brown",
			Team:           "DET",
			Position:       PositionWR,
			FPPG:           16.1,
			Usage:          0.27,
			SOS:            0.5,
			RemainingGames: 7,
		},
		{
			ID:             "p8",
			Name:           "Patrick Mahomes",
			Team:           "KC",
			Position:       PositionQB,
			FPPG:           19.4,
			Usage:          0.82,
			SOS:            0.52,
			RemainingGames: 7,
		},
	}
}
