package api_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fftw/tradewizard/internal/adapters/http/api"
	"github.com/fftw/tradewizard/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// Mock implementations for testing
type mockDeps struct {
	players  []model.Player
	rankings []model.ROSResult
	analysis model.TradeAnalysis
	err      error

	lastPosition string
	lastTeamA    []string
	lastTeamB    []string
}

func (m *mockDeps) ListPlayers(_ context.Context, position string) ([]model.Player, error) {
	m.lastPosition = position
	if m.err != nil {
		return nil, m.err
	}
	if position == "" || strings.EqualFold(position, "all") {
		return m.players, nil
	}
	out := make([]model.Player, 0, len(m.players))
	for _, p := range m.players {
		if strings.EqualFold(string(p.Position), position) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockDeps) Rankings(_ context.Context, position string) ([]model.ROSResult, error) {
	m.lastPosition = position
	if m.err != nil {
		return nil, m.err
	}
	return m.rankings, nil
}

func (m *mockDeps) AnalyzeTrade(_ context.Context, teamAIDs, teamBIDs []string) (model.TradeAnalysis, error) {
	m.lastTeamA = teamAIDs
	m.lastTeamB = teamBIDs
	if m.err != nil {
		return model.TradeAnalysis{}, m.err
	}
	return m.analysis, nil
}

type mockStats struct{}

func (mockStats) GetStats() map[string]interface{} {
	return map[string]interface{}{"started": true, "poolSize": 2}
}

func newTestServer(deps *mockDeps) *httptest.Server {
	mux := http.NewServeMux()
	api.NewServer(deps, mockStats{}).Register(context.Background(), mux)
	return httptest.NewServer(mux)
}

func defaultDeps() *mockDeps {
	players := []model.Player{
		{ID: "p1", Name: "Alpha Receiver", Team: "MIN", Position: model.PositionWR, FPPG: 18.5},
		{ID: "p2", Name: "Beta Back", Team: "SF", Position: model.PositionRB, FPPG: 21.7},
	}
	return &mockDeps{
		players: players,
		rankings: []model.ROSResult{
			{Player: players[1], ROSPoints: 160.1, Tier: "Tier 1 (Elite)"},
			{Player: players[0], ROSPoints: 141.16, Tier: "Tier 1 (Elite)"},
		},
		analysis: model.TradeAnalysis{TeamATotal: 141.16, TeamBTotal: 160.1, DeltaA: 18.94, Verdict: "Slight edge for Team A."},
	}
}

func TestPlayersEndpoint(t *testing.T) {
	Convey("Given a running API server", t, func() {
		deps := defaultDeps()
		srv := newTestServer(deps)
		defer srv.Close()

		Convey("When requesting the full pool", func() {
			resp, err := http.Get(srv.URL + "/players")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then it should return every player as JSON", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(resp.Header.Get("Content-Type"), ShouldContainSubstring, "application/json")

				var players []model.Player
				So(json.NewDecoder(resp.Body).Decode(&players), ShouldBeNil)
				So(len(players), ShouldEqual, 2)
			})
		})

		Convey("When requesting a position filter", func() {
			resp, err := http.Get(srv.URL + "/players?position=WR")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the filter should be forwarded and applied", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(deps.lastPosition, ShouldEqual, "WR")

				var players []model.Player
				So(json.NewDecoder(resp.Body).Decode(&players), ShouldBeNil)
				So(len(players), ShouldEqual, 1)
				So(players[0].ID, ShouldEqual, "p1")
			})
		})

		Convey("When using the wrong method", func() {
			resp, err := http.Post(srv.URL+"/players", "application/json", nil)
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})

		Convey("When the service fails", func() {
			deps.err = errors.New("pool unavailable")
			resp, err := http.Get(srv.URL + "/players")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then it should return a structured 500", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusInternalServerError)
				var body map[string]string
				So(json.NewDecoder(resp.Body).Decode(&body), ShouldBeNil)
				So(body["code"], ShouldEqual, "internal_error")
			})
		})
	})
}

func TestRankingsEndpoint(t *testing.T) {
	Convey("Given a running API server", t, func() {
		deps := defaultDeps()
		srv := newTestServer(deps)
		defer srv.Close()

		Convey("When requesting rest-of-season rankings", func() {
			resp, err := http.Get(srv.URL + "/rankings/ros?position=rb")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the ranked results should come back in order", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(deps.lastPosition, ShouldEqual, "rb")

				var results []model.ROSResult
				So(json.NewDecoder(resp.Body).Decode(&results), ShouldBeNil)
				So(len(results), ShouldEqual, 2)
				So(results[0].ROSPoints, ShouldBeGreaterThan, results[1].ROSPoints)
				So(results[0].Tier, ShouldNotBeEmpty)
			})
		})

		Convey("When using the wrong method", func() {
			resp, err := http.Post(srv.URL+"/rankings/ros", "application/json", nil)
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestTradeEndpoint(t *testing.T) {
	Convey("Given a running API server", t, func() {
		deps := defaultDeps()
		srv := newTestServer(deps)
		defer srv.Close()

		Convey("When posting a valid trade", func() {
			body := strings.NewReader(`{"team_a": ["p1"], "team_b": ["p2"]}`)
			resp, err := http.Post(srv.URL+"/trade/analyze", "application/json", body)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the analysis should come back with both totals", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(deps.lastTeamA, ShouldResemble, []string{"p1"})
				So(deps.lastTeamB, ShouldResemble, []string{"p2"})

				var analysis model.TradeAnalysis
				So(json.NewDecoder(resp.Body).Decode(&analysis), ShouldBeNil)
				So(analysis.DeltaA, ShouldEqual, 18.94)
				So(analysis.Verdict, ShouldEqual, "Slight edge for Team A.")
			})
		})

		Convey("When posting malformed JSON", func() {
			body := strings.NewReader(`{"team_a": [`)
			resp, err := http.Post(srv.URL+"/trade/analyze", "application/json", body)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then it should return a structured 400", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
				var errBody map[string]string
				So(json.NewDecoder(resp.Body).Decode(&errBody), ShouldBeNil)
				So(errBody["code"], ShouldEqual, "bad_request")
			})
		})

		Convey("When posting a body with neither side", func() {
			body := strings.NewReader(`{}`)
			resp, err := http.Post(srv.URL+"/trade/analyze", "application/json", body)
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
		})

		Convey("When posting empty sides explicitly", func() {
			body := strings.NewReader(`{"team_a": [], "team_b": []}`)
			resp, err := http.Post(srv.URL+"/trade/analyze", "application/json", body)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the request should be accepted", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
			})
		})

		Convey("When using the wrong method", func() {
			resp, err := http.Get(srv.URL + "/trade/analyze")
			So(err, ShouldBeNil)
			defer resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
		})
	})
}

func TestStatsAndHealthEndpoints(t *testing.T) {
	Convey("Given a running API server", t, func() {
		srv := newTestServer(defaultDeps())
		defer srv.Close()

		Convey("When requesting stats", func() {
			resp, err := http.Get(srv.URL + "/stats")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the stats payload should be served", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				var stats map[string]interface{}
				So(json.NewDecoder(resp.Body).Decode(&stats), ShouldBeNil)
				So(stats["started"], ShouldEqual, true)
			})
		})

		Convey("When requesting health", func() {
			resp, err := http.Get(srv.URL + "/healthz")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then the metrics scrape should double as liveness", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
			})
		})
	})
}

func TestInstrumentation(t *testing.T) {
	Convey("Given a running API server", t, func() {
		srv := newTestServer(defaultDeps())
		defer srv.Close()

		Convey("When sending a CORS preflight", func() {
			req, err := http.NewRequest(http.MethodOptions, srv.URL+"/players", nil)
			So(err, ShouldBeNil)
			resp, err := http.DefaultClient.Do(req)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then it should short-circuit with CORS headers", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusNoContent)
				So(resp.Header.Get("Access-Control-Allow-Origin"), ShouldEqual, "*")
				So(resp.Header.Get("Access-Control-Allow-Methods"), ShouldContainSubstring, "POST")
			})
		})

		Convey("When no request id is supplied", func() {
			resp, err := http.Get(srv.URL + "/players")
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then one should be generated", func() {
				So(resp.Header.Get("X-Request-Id"), ShouldNotBeEmpty)
			})
		})

		Convey("When the client supplies a request id", func() {
			req, err := http.NewRequest(http.MethodGet, srv.URL+"/players", nil)
			So(err, ShouldBeNil)
			req.Header.Set("X-Request-Id", "trace-42")
			resp, err := http.DefaultClient.Do(req)
			So(err, ShouldBeNil)
			defer resp.Body.Close()

			Convey("Then it should be echoed back", func() {
				So(resp.Header.Get("X-Request-Id"), ShouldEqual, "trace-42")
			})
		})
	})
}
