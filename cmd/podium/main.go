package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/okian/podium/internal/adapters/http/api"
	"github.com/okian/podium/internal/adapters/http/site"
	"github.com/okian/podium/internal/adapters/http/swagger"
	repository "github.com/okian/podium/internal/adapters/repository"
	app "github.com/okian/podium/internal/app"
	"github.com/okian/podium/internal/config"
	"github.com/okian/podium/pkg/logger"
	"github.com/okian/podium/pkg/metrics"
)

// HTTP server timeout constants.
const (
	readTimeout               = 10 * time.Second
	writeTimeout              = 10 * time.Second
	idleTimeout               = 60 * time.Second
	readHeaderTimeout         = 5 * time.Second
	shutdownTimeout           = 30 * time.Second
	systemMetricsInterval     = 10 * time.Second
	nanosecondsPerMillisecond = 1e6
)

func main() {
	if err := logger.Init(); err != nil {
		_, _ = os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Configure(os.Stdout, cfg.LogFormat); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}
	log := logger.Get()
	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	store, err := newStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to open medal data: %w", err)
	}

	svc := app.New(
		app.WithLogger(log.Named("service")),
		app.WithStore(store),
		app.WithDefaultSort(cfg.SortKey()),
		app.WithSimulatedLatency(time.Duration(cfg.SimulatedLatencyMS)*time.Millisecond),
	)
	if err := svc.Start(ctx); err != nil {
		return fmt.Errorf("failed to start service: %w", err)
	}
	defer svc.Stop()

	go startSystemMetricsUpdater(ctx)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newHandler(ctx, cfg, svc, log),
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info(ctx, "starting HTTP server", logger.String("addr", cfg.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("HTTP server failed: %w", err)
		}
		close(errCh)
	}()

	// Wait for shutdown signal or a listener failure
	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return err
		}
	}
	log.Info(ctx, "shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error(ctx, "server shutdown failed", logger.Error(err))
	}

	log.Info(ctx, "server stopped")
	return nil
}

// newStore opens the configured data file, or the bundled data set when
// none is configured.
func newStore(cfg *config.Config) (repository.Store, error) {
	if cfg.DataPath == "" {
		return repository.NewDefaultStore()
	}
	return repository.NewFileStore(cfg.DataPath)
}

// newHandler registers every route and wraps the mux in the API middleware.
func newHandler(ctx context.Context, cfg *config.Config, svc *app.Service, log logger.Logger) http.Handler {
	mux := http.NewServeMux()

	swagger.Register(ctx, mux)

	apiServer := api.NewServer(svc, svc,
		api.WithCORSOrigins(cfg.CORSAllowedOrigins),
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
		api.WithLogger(log.Named("http")),
	)
	apiServer.Register(ctx, mux)

	site.Register(ctx, mux, svc,
		site.WithFlagSpriteURL(cfg.FlagSpriteURL),
		site.WithLogger(log.Named("site")),
	)

	return apiServer.Handler(mux)
}

// startSystemMetricsUpdater starts a background goroutine that updates system metrics.
func startSystemMetricsUpdater(ctx context.Context) {
	ticker := time.NewTicker(systemMetricsInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			updateSystemMetrics()
		}
	}
}

// updateSystemMetrics updates system-level metrics.
func updateSystemMetrics() {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	metrics.UpdateSystemMemoryUsage(m.Alloc)

	metrics.UpdateSystemGoroutineCount(runtime.NumGoroutine())

	if m.NumGC > 0 {
		avgPauseMs := float64(m.PauseTotalNs) / float64(m.NumGC) / nanosecondsPerMillisecond
		metrics.RecordSystemGCPauseTime(avgPauseMs)
	}
}
