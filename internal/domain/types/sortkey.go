package types

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrUnknownSortKey is returned when text does not name a sort key.
var ErrUnknownSortKey = errors.New("unknown sort key")

// maxSuggestDistance bounds how far a typo may be from a key to be suggested.
const maxSuggestDistance = 2

// SortKey names the medal field a table is ordered by.
// The zero value is SortUnknown and is never produced by ParseSortKey.
type SortKey int

// Sort keys.
const (
	SortUnknown SortKey = iota
	SortGold
	SortSilver
	SortBronze
	SortTotal
)

var sortKeyNames = map[SortKey]string{
	SortGold:   "gold",
	SortSilver: "silver",
	SortBronze: "bronze",
	SortTotal:  "total",
}

// SortKeys returns the closed set of valid keys in display order.
func SortKeys() []SortKey {
	return []SortKey{SortGold, SortSilver, SortBronze, SortTotal}
}

// ParseSortKey maps the exact lower-case key name to its SortKey.
func ParseSortKey(s string) (SortKey, bool) {
	for k, name := range sortKeyNames {
		if name == s {
			return k, true
		}
	}
	return SortUnknown, false
}

// Valid reports whether k belongs to the closed set.
func (k SortKey) Valid() bool {
	_, ok := sortKeyNames[k]
	return ok
}

func (k SortKey) String() string {
	if name, ok := sortKeyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Label returns the column title for k, e.g. "Gold".
func (k SortKey) Label() string {
	return cases.Title(language.English).String(k.String())
}

// Heading returns the table title shown for k, e.g. "Sort By Gold".
func (k SortKey) Heading() string {
	return "Sort By " + k.Label()
}

// MarshalText implements encoding.TextMarshaler.
func (k SortKey) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *SortKey) UnmarshalText(text []byte) error {
	parsed, ok := ParseSortKey(string(text))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSortKey, text)
	}
	*k = parsed
	return nil
}

// Suggest returns the key the caller most likely meant by s, if any.
// Case differences and small typos ("Gold", "silvr") are recognized.
func Suggest(s string) (SortKey, bool) {
	folded := cases.Fold().String(s)
	if k, ok := ParseSortKey(folded); ok {
		return k, true
	}
	best, bestDist := SortUnknown, maxSuggestDistance+1
	for _, k := range SortKeys() {
		if d := levenshtein.ComputeDistance(folded, k.String()); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best, best != SortUnknown
}
