// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	repository "github.com/okian/podium/internal/adapters/repository"
	"github.com/okian/podium/internal/domain/flag"
	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/ranking"
	"github.com/okian/podium/internal/domain/types"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

const loadKey = "medals"

// Service implements the API dependencies for the medal table.
type Service struct {
	mu sync.RWMutex

	// Core components
	store  repository.Store
	loads  singleflight.Group
	tracer trace.Tracer

	// Configuration
	defaultSort types.SortKey
	latency     time.Duration

	// State
	started    bool
	loadCount  int64
	loadErrors int64
	countries  int

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStore sets the medal data source. The bundled data set is used otherwise.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithDefaultSort sets the key used when callers ask for an unknown one.
func WithDefaultSort(key types.SortKey) Option {
	return func(s *Service) {
		if key.Valid() {
			s.defaultSort = key
		}
	}
}

// WithSimulatedLatency delays every data load by d. Zero disables the delay.
func WithSimulatedLatency(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.latency = d
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		defaultSort: types.SortGold,
		latency:     100 * time.Millisecond,
		tracer:      otel.Tracer("podium-service"),
		logger:      nil, // Will be replaced when service starts
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start loads the data once so bad input fails at boot rather than on
// the first request.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	if s.store == nil {
		store, err := repository.NewDefaultStore()
		if err != nil {
			s.mu.Unlock()
			return fmt.Errorf("open bundled medal data: %w", err)
		}
		s.store = store
	}

	s.logger.Info(ctx, "starting medal service...",
		logger.String("source", s.store.Describe()),
	)
	s.started = true
	s.mu.Unlock()

	medals, err := s.load(ctx)
	if err != nil {
		s.mu.Lock()
		s.started = false
		s.mu.Unlock()
		return err
	}

	s.logger.Info(ctx, "medal service started",
		logger.Int("countries", len(medals)),
		logger.String("defaultSort", s.defaultSort.String()),
		logger.Duration("simulatedLatency", s.latency),
	)
	return nil
}

// Stop marks the service stopped. Data operations fail afterwards.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "medal service stopped")
}

// DefaultSort returns the key used when a request names none or an unknown one.
func (s *Service) DefaultSort() types.SortKey {
	return s.defaultSort
}

// Medals returns the raw medal counts in source order.
func (s *Service) Medals(ctx context.Context) ([]model.Medal, error) {
	ctx, span := s.tracer.Start(ctx, "Service.Medals")
	defer span.End()

	medals, err := s.load(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("medals.countries", len(medals)))
	return medals, nil
}

// Rankings returns the medal table ordered by key. Keys outside the closed
// set are replaced by the default sort.
func (s *Service) Rankings(ctx context.Context, key types.SortKey) (types.Ranking, error) {
	start := time.Now()
	if !key.Valid() {
		metrics.RecordSortFallback()
		key = s.defaultSort
	}

	ctx, span := s.tracer.Start(ctx, "Service.Rankings",
		trace.WithAttributes(attribute.String("ranking.sort", key.String())),
	)
	defer span.End()

	medals, err := s.load(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return types.Ranking{}, err
	}

	ranked := ranking.Rank(ranking.AddTotals(medals), key)
	entries := make([]types.Entry, len(ranked))
	for i, r := range ranked {
		entries[i] = toEntry(i+1, r)
	}

	metrics.RecordRankingServed(key.String())
	metrics.RecordRankingLatency(float64(time.Since(start).Microseconds()) / 1000)
	span.SetAttributes(attribute.Int("ranking.entries", len(entries)))

	return types.Ranking{
		Sort:     key,
		Tiebreak: ranking.Tiebreak(key),
		Entries:  entries,
	}, nil
}

// CountryRank returns the entry of one country in the table ordered by key.
// Codes are matched case-insensitively.
func (s *Service) CountryRank(ctx context.Context, key types.SortKey, code string) (types.Entry, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !key.Valid() {
		metrics.RecordSortFallback()
		key = s.defaultSort
	}

	ctx, span := s.tracer.Start(ctx, "Service.CountryRank",
		trace.WithAttributes(
			attribute.String("ranking.sort", key.String()),
			attribute.String("country", code),
		),
	)
	defer span.End()

	medals, err := s.load(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return types.Entry{}, err
	}

	records := ranking.AddTotals(medals)
	pos, ok := ranking.Position(records, key, code)
	if !ok {
		return types.Entry{}, fmt.Errorf("%w: %s", repository.ErrNotFound, code)
	}
	i := slices.IndexFunc(records, func(m model.RankedMedal) bool { return m.Code == code })
	span.SetAttributes(attribute.Int("ranking.position", pos))
	return toEntry(pos, records[i]), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":            s.started,
		"defaultSort":        s.defaultSort.String(),
		"simulatedLatencyMs": s.latency.Milliseconds(),
		"loads":              s.loadCount,
		"loadErrors":         s.loadErrors,
	}

	if s.store != nil {
		stats["dataSource"] = s.store.Describe()
	}
	if s.started {
		stats["countries"] = s.countries
	}

	return stats
}

// load reads the data set through the store. Concurrent callers share one
// read; each caller gets its own copy and may give up when its ctx ends.
func (s *Service) load(ctx context.Context) ([]model.Medal, error) {
	s.mu.RLock()
	started, store := s.started, s.store
	s.mu.RUnlock()
	if !started {
		return nil, ErrNotStarted
	}

	shared := context.WithoutCancel(ctx)
	ch := s.loads.DoChan(loadKey, func() (any, error) {
		return s.fetch(shared, store)
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return slices.Clone(res.Val.([]model.Medal)), nil
	}
}

func (s *Service) fetch(ctx context.Context, store repository.Store) ([]model.Medal, error) {
	ctx, span := s.tracer.Start(ctx, "Service.load",
		trace.WithAttributes(attribute.String("store", store.Describe())),
	)
	defer span.End()

	start := time.Now()
	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	medals, err := store.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loadCount++
	if err != nil {
		s.loadErrors++
		metrics.RecordDataLoadError()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.logger.Error(ctx, "failed to load medal data",
			logger.String("source", store.Describe()),
			logger.Error(err),
		)
		return nil, err
	}

	s.countries = len(medals)
	metrics.RecordDataLoad(float64(time.Since(start).Microseconds()) / 1000)
	metrics.UpdateCountries(len(medals))
	span.SetAttributes(attribute.Int("medals.countries", len(medals)))
	return medals, nil
}

func toEntry(rank int, r model.RankedMedal) types.Entry {
	return types.Entry{
		Rank:        rank,
		Code:        r.Code,
		Gold:        r.Gold,
		Silver:      r.Silver,
		Bronze:      r.Bronze,
		Total:       r.Total,
		FlagOffsetY: flag.OffsetY(r.Code),
	}
}
