package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/okian/podium/internal/domain/model"
)

func writeDataFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write data file: %v", err)
	}
	return path
}

func TestDefaultStore_List(t *testing.T) {
	ctx := context.Background()
	store, err := NewDefaultStore()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	medals, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(medals) != 13 {
		t.Fatalf("expected 13 countries, got %d", len(medals))
	}
	if medals[0] != (model.Medal{Code: "RUS", Gold: 13, Silver: 11, Bronze: 9}) {
		t.Errorf("unexpected first record: %+v", medals[0])
	}
	if store.Describe() != "static" {
		t.Errorf("expected static source, got %q", store.Describe())
	}

	// The caller owns the returned slice.
	medals[0].Gold = 99
	again, _ := store.List(ctx)
	if again[0].Gold != 13 {
		t.Errorf("store data changed through returned slice: %+v", again[0])
	}
}

func TestStaticStore_Validation(t *testing.T) {
	tests := []struct {
		name   string
		medals []model.Medal
	}{
		{"duplicate code", []model.Medal{{Code: "NOR", Gold: 1}, {Code: "NOR", Gold: 2}}},
		{"negative count", []model.Medal{{Code: "NOR", Gold: -1}}},
		{"missing code", []model.Medal{{Gold: 1}}},
		{"lower case code", []model.Medal{{Code: "nor"}}},
		{"code too long", []model.Medal{{Code: "NORW"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStaticStore(tt.medals)
			if !errors.Is(err, ErrInvalidData) {
				t.Errorf("expected ErrInvalidData, got %v", err)
			}
		})
	}

	store, err := NewStaticStore(nil)
	if err != nil {
		t.Fatalf("empty data set should be valid: %v", err)
	}
	medals, err := store.List(context.Background())
	if err != nil || medals == nil || len(medals) != 0 {
		t.Errorf("expected empty non-nil slice, got %v (%v)", medals, err)
	}
}

func TestStaticStore_CancelledContext(t *testing.T) {
	store, err := NewDefaultStore()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = store.List(ctx)
	if !errors.Is(err, ErrLoadData) || !errors.Is(err, context.Canceled) {
		t.Errorf("expected ErrLoadData wrapping context.Canceled, got %v", err)
	}
}

func TestFileStore_JSON(t *testing.T) {
	path := writeDataFile(t, "medals.json", `[
		{"code": "CAN", "gold": 10, "silver": 10, "bronze": 5},
		{"code": "SUI", "gold": 6, "silver": 3, "bronze": 2}
	]`)
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	medals, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []model.Medal{
		{Code: "CAN", Gold: 10, Silver: 10, Bronze: 5},
		{Code: "SUI", Gold: 6, Silver: 3, Bronze: 2},
	}
	if len(medals) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(medals))
	}
	for i := range want {
		if medals[i] != want[i] {
			t.Errorf("record %d: expected %+v, got %+v", i, want[i], medals[i])
		}
	}
	if store.Describe() != path {
		t.Errorf("expected description %q, got %q", path, store.Describe())
	}
}

func TestFileStore_YAML(t *testing.T) {
	path := writeDataFile(t, "medals.yml", `
- code: GER
  gold: 8
  silver: 6
  bronze: 5
- code: ITA
  gold: 0
  silver: 2
  bronze: 6
`)
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	medals, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(medals) != 2 || medals[1] != (model.Medal{Code: "ITA", Silver: 2, Bronze: 6}) {
		t.Errorf("unexpected records: %+v", medals)
	}
}

func TestFileStore_ReloadsOnEveryList(t *testing.T) {
	path := writeDataFile(t, "medals.json", `[{"code": "CHN", "gold": 3, "silver": 4, "bronze": 2}]`)
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()
	if _, err := store.List(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := os.WriteFile(path, []byte(`[{"code": "CHN", "gold": 4, "silver": 4, "bronze": 2}]`), 0o600); err != nil {
		t.Fatalf("rewrite data file: %v", err)
	}
	medals, err := store.List(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if medals[0].Gold != 4 {
		t.Errorf("expected updated gold count 4, got %d", medals[0].Gold)
	}
}

func TestFileStore_Errors(t *testing.T) {
	ctx := context.Background()

	if _, err := NewFileStore("medals.csv"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}

	missing, err := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := missing.List(ctx); !errors.Is(err, ErrLoadData) {
		t.Errorf("expected ErrLoadData for missing file, got %v", err)
	}

	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"malformed json", `[{"code": "NOR",`, ErrLoadData},
		{"fractional count", `[{"code": "NOR", "gold": 1.5, "silver": 0, "bronze": 0}]`, ErrLoadData},
		{"missing field", `[{"code": "NOR", "gold": 1, "silver": 0}]`, ErrInvalidData},
		{"negative count", `[{"code": "NOR", "gold": -1, "silver": 0, "bronze": 0}]`, ErrInvalidData},
		{"duplicate code", `[{"code": "NOR", "gold": 1, "silver": 0, "bronze": 0}, {"code": "NOR", "gold": 2, "silver": 0, "bronze": 0}]`, ErrInvalidData},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := NewFileStore(writeDataFile(t, "medals.json", tt.content))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, err := store.List(ctx); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestFileStore_WithFormat(t *testing.T) {
	path := writeDataFile(t, "medals.data", "- {code: NED, gold: 8, silver: 7, bronze: 9}\n")
	if _, err := NewFileStore(path); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat without override, got %v", err)
	}

	store, err := NewFileStore(path, WithFormat(FormatYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	medals, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(medals) != 1 || medals[0].Code != "NED" || medals[0].Bronze != 9 {
		t.Errorf("unexpected records: %+v", medals)
	}
}
