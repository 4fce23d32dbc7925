package rankcheck

import (
	"fmt"
	"os"

	"github.com/okian/podium/pkg/logger"
)

// SetupLogging initializes the global logger for the CLI.
func SetupLogging(verbose bool) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if verbose {
		return logger.SetLevelString("debug")
	}
	return nil
}

// ShowHelp prints usage information for the rankcheck tool.
func ShowHelp() {
	_, _ = os.Stdout.WriteString(`Podium Ranking Check
====================

Verifies a running podium service: every medal table it serves must match
the local ranking of its own /api/medals data.

Usage:
  go run ./cmd/rankcheck [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:9080")
  -timeout duration
        HTTP request timeout (default 10s)
  -workers int
        Concurrent requests (default 8)
  -verbose
        Enable verbose logging
  -help
        Show this help message

Examples:
  # Check a local instance
  go run ./cmd/rankcheck

  # Check a remote instance with a longer timeout
  go run ./cmd/rankcheck -url http://medals.internal:9080 -timeout 30s
`)
}
