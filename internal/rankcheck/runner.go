package rankcheck

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
	"github.com/okian/podium/pkg/logger"
)

// fallbackProbe is a sort value no key matches.
const fallbackProbe = "not-a-medal"

// Run checks a running service: every served table must equal the local
// ranking of /api/medals, every country lookup must agree with its table,
// and an unknown sort must fall back to a valid one.
func Run(ctx context.Context, config *Config) (*Report, error) {
	log := logger.Named("rankcheck")
	report := &Report{Stats: Stats{RunID: uuid.NewString(), StartTime: time.Now()}}
	client := newHTTPClient(config.BaseURL, config.Timeout, report.Stats.RunID)

	log.Info(ctx, "starting ranking check",
		logger.String("baseURL", config.BaseURL),
		logger.String("runId", report.Stats.RunID),
		logger.Duration("timeout", config.Timeout),
		logger.Int("workers", config.Workers),
	)

	if err := checkServiceHealth(ctx, client); err != nil {
		return nil, err
	}

	var medals []model.Medal
	if err := client.getJSON(ctx, "/api/medals", &medals); err != nil {
		return nil, fmt.Errorf("fetch medals: %w", err)
	}
	report.Stats.Countries = len(medals)
	log.Info(ctx, "fetched medal data", logger.Int("countries", len(medals)))

	var (
		mu     sync.Mutex
		tables = make(map[types.SortKey][]types.Entry)
	)
	record := func(ms []Mismatch) {
		mu.Lock()
		defer mu.Unlock()
		report.Mismatches = append(report.Mismatches, ms...)
	}

	// Tables for every key, concurrently.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(config.Workers, 1))
	for _, key := range types.SortKeys() {
		g.Go(func() error {
			var body rankingBody
			if err := client.getJSON(gctx, "/api/rankings?sort="+key.String(), &body); err != nil {
				return err
			}
			ms := VerifyTable(medals, key, body.Entries)
			if body.Sort != key {
				ms = append(ms, Mismatch{Sort: key, Message: fmt.Sprintf("served sort %s", body.Sort)})
			}
			record(ms)
			mu.Lock()
			tables[key] = body.Entries
			mu.Unlock()
			if config.Verbose {
				log.Info(gctx, "checked table", logger.String("sort", key.String()), logger.Int("mismatches", len(ms)))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	report.Stats.KeysChecked = len(tables)

	// Every country under every key.
	g, gctx = errgroup.WithContext(ctx)
	g.SetLimit(max(config.Workers, 1))
	for key, rows := range tables {
		for _, want := range rows {
			g.Go(func() error {
				var got types.Entry
				path := "/api/rankings/" + url.PathEscape(want.Code) + "?sort=" + key.String()
				if err := client.getJSON(gctx, path, &got); err != nil {
					return err
				}
				if got != want {
					record([]Mismatch{{Sort: key, Code: want.Code, Message: fmt.Sprintf("lookup returned rank %d, table says %d", got.Rank, want.Rank)}})
				}
				return nil
			})
			report.Stats.CountryLookups++
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := checkFallback(ctx, client, medals, record); err != nil {
		return nil, err
	}

	report.Stats.Requests = client.requests.Load()
	report.Stats.EndTime = time.Now()
	report.Stats.Duration = report.Stats.EndTime.Sub(report.Stats.StartTime)
	displayFinalStats(ctx, log, report)

	if !report.OK() {
		return report, fmt.Errorf("%w: %d problems", ErrMismatch, len(report.Mismatches))
	}
	return report, nil
}

// checkServiceHealth verifies the service is running.
func checkServiceHealth(ctx context.Context, client *HTTPClient) error {
	resp, err := client.Get(ctx, "/healthz")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrUnhealthy, resp.StatusCode)
	}
	return nil
}

// checkFallback asks for an unknown sort and expects a valid table that
// echoes the rejected value.
func checkFallback(ctx context.Context, client *HTTPClient, medals []model.Medal, record func([]Mismatch)) error {
	var body rankingBody
	if err := client.getJSON(ctx, "/api/rankings?sort="+fallbackProbe, &body); err != nil {
		return fmt.Errorf("fallback probe: %w", err)
	}
	if !body.Sort.Valid() {
		record([]Mismatch{{Message: "unknown sort did not fall back to a valid key"}})
		return nil
	}
	ms := VerifyTable(medals, body.Sort, body.Entries)
	if body.RequestedSort != fallbackProbe {
		ms = append(ms, Mismatch{Sort: body.Sort, Message: fmt.Sprintf("requested_sort %q, want %q", body.RequestedSort, fallbackProbe)})
	}
	record(ms)
	return nil
}

// displayFinalStats logs the run summary and each mismatch.
func displayFinalStats(ctx context.Context, log logger.Logger, report *Report) {
	for _, m := range report.Mismatches {
		log.Warn(ctx, "mismatch", logger.String("detail", m.String()))
	}
	log.Info(ctx, "final statistics",
		logger.String("runId", report.Stats.RunID),
		logger.Int("countries", report.Stats.Countries),
		logger.Int("keysChecked", report.Stats.KeysChecked),
		logger.Int("countryLookups", report.Stats.CountryLookups),
		logger.Any("requests", report.Stats.Requests),
		logger.Int("mismatches", len(report.Mismatches)),
		logger.Duration("duration", report.Stats.Duration),
	)
}
