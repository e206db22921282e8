// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fftw/tradewizard/internal/adapters/provider"
	"github.com/fftw/tradewizard/internal/adapters/repository"
	"github.com/fftw/tradewizard/internal/config"
	"github.com/fftw/tradewizard/internal/domain/model"
	"github.com/fftw/tradewizard/internal/domain/tiering"
	"github.com/fftw/tradewizard/internal/domain/trade"
	"github.com/fftw/tradewizard/internal/domain/valuation"
	"github.com/fftw/tradewizard/internal/pool"
	"github.com/fftw/tradewizard/pkg/logger"
	"github.com/fftw/tradewizard/pkg/metrics"
)

// Default service configuration.
const (
	defaultFetchTimeout = 15 * time.Second
)

// Service wires the pool, valuation engine, ranker and trade analyzer
// behind the operations the HTTP API consumes. The pool is built exactly
// once in Start; every handler reads it without locking afterwards.
type Service struct {
	mu sync.RWMutex

	// Core components
	adapter  provider.Adapter
	pool     repository.Pool
	valuator valuation.Valuator
	ranker   *tiering.Ranker
	analyzer *trade.Analyzer

	// Configuration
	providerName string
	season       int
	scoringPer   int
	maxPlayers   int
	minOwned     float64
	espnS2       string
	espnSWID     string
	fetchTimeout time.Duration
	usageWeight  float64
	sosWeight    float64
	tierPolicy   tiering.Policy

	// State
	started   bool
	startedAt time.Time

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithProvider selects the player data source by name: espn, sleeper or
// static.
func WithProvider(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.providerName = name
		}
	}
}

// WithAdapter injects a concrete adapter, overriding WithProvider. Tests
// use this to substitute fakes.
func WithAdapter(a provider.Adapter) Option {
	return func(s *Service) {
		if a != nil {
			s.adapter = a
		}
	}
}

// WithSeason sets the season year requested from the provider.
func WithSeason(year int) Option {
	return func(s *Service) {
		if year > 0 {
			s.season = year
		}
	}
}

// WithScoringPeriod sets the provider week index.
func WithScoringPeriod(period int) Option {
	return func(s *Service) {
		if period >= 0 {
			s.scoringPer = period
		}
	}
}

// WithMaxPlayers caps the provider pull size.
func WithMaxPlayers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxPlayers = n
		}
	}
}

// WithMinPercentOwned sets the relevance filter threshold.
func WithMinPercentOwned(pct float64) Option {
	return func(s *Service) {
		if pct >= 0 {
			s.minOwned = pct
		}
	}
}

// WithESPNCredentials sets the optional espn_s2/SWID cookies.
func WithESPNCredentials(s2, swid string) Option {
	return func(s *Service) {
		s.espnS2 = s2
		s.espnSWID = swid
	}
}

// WithFetchTimeout bounds the provider fetch during Start.
func WithFetchTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.fetchTimeout = d
		}
	}
}

// WithScoringWeights sets the valuation usage and sos weights.
func WithScoringWeights(usage, sos float64) Option {
	return func(s *Service) {
		if usage > 0 {
			s.usageWeight = usage
		}
		if sos > 0 {
			s.sosWeight = sos
		}
	}
}

// WithTierPolicy selects the tier labelling scheme.
func WithTierPolicy(p tiering.Policy) Option {
	return func(s *Service) {
		s.tierPolicy = p
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		providerName: config.ProviderESPN,
		season:       2025,
		maxPlayers:   400,
		minOwned:     20.0,
		fetchTimeout: defaultFetchTimeout,
		usageWeight:  valuation.DefaultUsageWeight,
		sosWeight:    valuation.DefaultSOSWeight,
		tierPolicy:   tiering.PolicyFixedCutoff,
		logger:       nil, // Will be replaced when service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start builds the player pool and the read-side components. It runs
// synchronously: callers must not serve traffic until it returns.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting trade analyzer service...")

	if s.adapter == nil {
		adapter, err := s.buildAdapter()
		if err != nil {
			return err
		}
		s.adapter = adapter
	}

	loader := pool.New(s.adapter,
		pool.WithFetchTimeout(s.fetchTimeout),
		pool.WithLogger(s.logger.Named("pool")),
	)
	s.pool = loader.Build(ctx)

	engine := valuation.New(
		valuation.WithUsageWeight(s.usageWeight),
		valuation.WithSOSWeight(s.sosWeight),
	)
	s.valuator = &meteredValuator{inner: engine}
	s.ranker = tiering.New(s.valuator, tiering.WithPolicy(s.tierPolicy))
	s.analyzer = trade.New(s.valuator)

	s.started = true
	s.startedAt = time.Now()
	s.logger.Info(ctx, "trade analyzer service started",
		logger.String("provider", s.adapter.Name()),
		logger.Int("poolSize", s.pool.Count(ctx)),
		logger.Float64("usageWeight", s.usageWeight),
		logger.Float64("sosWeight", s.sosWeight),
	)

	return nil
}

// buildAdapter maps the configured provider name to a concrete adapter.
func (s *Service) buildAdapter() (provider.Adapter, error) {
	switch s.providerName {
	case config.ProviderESPN:
		return provider.NewESPN(
			provider.WithSeason(s.season),
			provider.WithScoringPeriod(s.scoringPer),
			provider.WithMaxPlayers(s.maxPlayers),
			provider.WithMinPercentOwned(s.minOwned),
			provider.WithCredentials(s.espnS2, s.espnSWID),
		), nil
	case config.ProviderSleeper:
		return provider.NewSleeper(
			provider.WithSleeperMaxPlayers(s.maxPlayers),
		), nil
	case config.ProviderStatic:
		return provider.NewStatic(), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", s.providerName)
	}
}

// Stop marks the service stopped. The pool holds no resources to release.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "trade analyzer service stopped")
}

// ListPlayers returns the pool, optionally filtered by exact
// case-insensitive position match. Empty and "ALL" return everything.
func (s *Service) ListPlayers(ctx context.Context, position string) ([]model.Player, error) {
	p, err := s.readyPool()
	if err != nil {
		return nil, err
	}
	return p.ByPosition(ctx, position), nil
}

// Rankings scores and ranks the (optionally filtered) pool, assigning
// tier labels. Results are recomputed on every call; nothing is cached.
func (s *Service) Rankings(ctx context.Context, position string) ([]model.ROSResult, error) {
	p, err := s.readyPool()
	if err != nil {
		return nil, err
	}

	start := time.Now()
	results := s.ranker.Rank(p.ByPosition(ctx, position))
	metrics.RecordValuationDuration(float64(time.Since(start).Microseconds()) / 1000)
	metrics.RecordRankingsRequest()
	return results, nil
}

// AnalyzeTrade values both sides of a proposed trade against the live
// pool. Unknown ids are skipped silently.
func (s *Service) AnalyzeTrade(ctx context.Context, teamAIDs, teamBIDs []string) (model.TradeAnalysis, error) {
	p, err := s.readyPool()
	if err != nil {
		return model.TradeAnalysis{}, err
	}

	analysis := s.analyzer.Analyze(p.All(ctx), teamAIDs, teamBIDs)
	metrics.RecordTradeAnalyzed(analysis.Verdict)

	s.logger.Debug(ctx, "trade analyzed",
		logger.Int("teamA", len(teamAIDs)),
		logger.Int("teamB", len(teamBIDs)),
		logger.Float64("deltaA", analysis.DeltaA),
		logger.String("verdict", analysis.Verdict),
	)
	return analysis, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":  s.started,
		"provider": s.providerName,
	}
	if s.adapter != nil {
		stats["provider"] = s.adapter.Name()
	}

	if s.started {
		stats["poolSize"] = s.pool.Count(context.Background())
		stats["uptimeSeconds"] = int(time.Since(s.startedAt).Seconds())
	}

	return stats
}

// readyPool guards handlers against a request racing Start. In normal
// operation Start completes before the listener opens.
func (s *Service) readyPool() (repository.Pool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.started || s.pool == nil {
		return nil, ErrNotStarted
	}
	return s.pool, nil
}

// meteredValuator counts valuations without touching the pure engine.
type meteredValuator struct {
	inner valuation.Valuator
}

func (m *meteredValuator) Score(p model.Player) float64 {
	metrics.RecordValuations(1)
	return m.inner.Score(p)
}
