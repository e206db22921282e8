// Package pool builds the process-wide player pool exactly once at
// startup.
package pool

import (
	"context"
	"time"

	"github.com/fftw/tradewizard/internal/adapters/provider"
	"github.com/fftw/tradewizard/internal/adapters/repository"
	"github.com/fftw/tradewizard/internal/domain/model"
	"github.com/fftw/tradewizard/pkg/logger"
	"github.com/fftw/tradewizard/pkg/metrics"
)

const defaultFetchTimeout = 15 * time.Second

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithFetchTimeout bounds the single provider fetch attempt. A timeout is
// treated like any other adapter failure.
func WithFetchTimeout(d time.Duration) Option {
	return func(l *Loader) {
		if d > 0 {
			l.fetchTimeout = d
		}
	}
}

// WithLogger sets a custom logger for the loader.
func WithLogger(log logger.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// Loader runs one adapter's full pipeline and guarantees a non-empty pool
// by falling back to the static default set on any failure.
type Loader struct {
	adapter      provider.Adapter
	fetchTimeout time.Duration
	log          logger.Logger
}

// New creates a Loader around the configured adapter.
func New(adapter provider.Adapter, opts ...Option) *Loader {
	l := &Loader{
		adapter:      adapter,
		fetchTimeout: defaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.log == nil {
		l.log = logger.Get().Named("pool")
	}
	return l
}

// Build invokes the adapter once, bounded by the fetch timeout, and
// returns the frozen pool. The fallback is a hard guarantee: the returned
// pool always has at least one player, and no adapter failure escapes
// this method.
func (l *Loader) Build(ctx context.Context) repository.Pool {
	start := time.Now()
	players := l.fetch(ctx)

	p, err := repository.NewPool(players)
	if err != nil {
		// Provider records slipped past normalization; the static set
		// is valid by construction.
		l.log.Warn(ctx, "provider pool failed validation; falling back to defaults",
			logger.String("provider", l.adapter.Name()),
			logger.Error(err),
		)
		metrics.RecordPoolFallback()
		p, _ = repository.NewPool(model.DefaultPlayers())
	}

	metrics.UpdatePoolSize(p.Count(ctx))
	metrics.RecordPoolLoadDuration(float64(time.Since(start).Milliseconds()))

	l.log.Info(ctx, "player pool ready",
		logger.String("provider", l.adapter.Name()),
		logger.Int("players", p.Count(ctx)),
	)
	return p
}

func (l *Loader) fetch(ctx context.Context) []model.Player {
	fetchCtx, cancel := context.WithTimeout(ctx, l.fetchTimeout)
	defer cancel()

	players, stats, err := l.adapter.Players(fetchCtx)

	metrics.RecordProviderRecordsFetched(stats.Fetched)
	metrics.RecordProviderRecordsSkipped(stats.Skipped)
	metrics.RecordProviderRecordsFiltered(stats.Filtered)

	if err != nil {
		l.log.Warn(ctx, "provider failed; falling back to default players",
			logger.String("provider", l.adapter.Name()),
			logger.Error(err),
		)
		metrics.RecordProviderFetchError()
		metrics.RecordPoolFallback()
		return model.DefaultPlayers()
	}
	if len(players) == 0 {
		// Adapters report this as ErrEmptyResult, but the fallback
		// guarantee must not depend on them doing so.
		l.log.Warn(ctx, "provider returned no players; falling back to default players",
			logger.String("provider", l.adapter.Name()),
		)
		metrics.RecordPoolFallback()
		return model.DefaultPlayers()
	}
	return players
}
