package rankcheck

import (
	"time"

	"github.com/okian/podium/internal/domain/types"
)

// Config holds configuration for a verification run.
type Config struct {
	BaseURL string        // Base URL of the service
	Timeout time.Duration // HTTP request timeout
	Workers int           // Concurrent requests
	Verbose bool          // Log every check, not just failures
}

// rankingBody mirrors the fields of GET /api/rankings that are checked.
type rankingBody struct {
	Sort          types.SortKey `json:"sort"`
	Tiebreak      types.SortKey `json:"tiebreak"`
	RequestedSort string        `json:"requested_sort"`
	Entries       []types.Entry `json:"entries"`
}

// Stats holds run statistics.
type Stats struct {
	RunID          string
	Countries      int
	KeysChecked    int
	CountryLookups int
	Requests       int64
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
}

// Report is the outcome of a run.
type Report struct {
	Stats      Stats
	Mismatches []Mismatch
}

// OK reports whether the run found no mismatches.
func (r *Report) OK() bool { return len(r.Mismatches) == 0 }
