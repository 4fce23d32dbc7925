package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/podium/internal/rankcheck"
)

// Default configuration constants.
const (
	defaultTimeout     = 10 * time.Second
	defaultWorkers     = 8
	defaultTestTimeout = 2 * time.Minute
)

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:9080", "Base URL of the service")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		workers = flag.Int("workers", defaultWorkers, "Concurrent requests")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
		help    = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		rankcheck.ShowHelp()
		return
	}

	if err := rankcheck.SetupLogging(*verbose); err != nil {
		_, _ = os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTestTimeout)
	defer cancel()

	config := &rankcheck.Config{
		BaseURL: *baseURL,
		Timeout: *timeout,
		Workers: *workers,
		Verbose: *verbose,
	}

	if _, err := rankcheck.Run(ctx, config); err != nil {
		_, _ = os.Stderr.WriteString("Check failed: " + err.Error() + "\n")
		cancel()
		os.Exit(1)
	}
}
