// Package ranking turns raw medal counts into ordered medal tables.
//
// AddTotals derives each country's total and Rank orders countries by a
// SortKey. Both functions allocate their results and never modify their
// input, so they are safe to call concurrently on shared slices.
package ranking

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/types"
)

// field reads one count from a ranked record.
type field struct {
	key   types.SortKey
	value func(model.RankedMedal) int
}

var (
	gold   = field{types.SortGold, func(m model.RankedMedal) int { return m.Gold }}
	silver = field{types.SortSilver, func(m model.RankedMedal) int { return m.Silver }}
	bronze = field{types.SortBronze, func(m model.RankedMedal) int { return m.Bronze }}
	total  = field{types.SortTotal, func(m model.RankedMedal) int { return m.Total }}
)

// order is the descending comparison used for one sort key.
type order struct {
	primary  field
	tiebreak field
}

// orders maps every sort key to its primary field and tie-break field.
var orders = map[types.SortKey]order{
	types.SortGold:   {primary: gold, tiebreak: silver},
	types.SortSilver: {primary: silver, tiebreak: gold},
	types.SortBronze: {primary: bronze, tiebreak: gold},
	types.SortTotal:  {primary: total, tiebreak: gold},
}

// compare orders a before b when a has the larger primary value, falling
// back to the larger tie-break value.
func (o order) compare(a, b model.RankedMedal) int {
	if c := cmp.Compare(o.primary.value(b), o.primary.value(a)); c != 0 {
		return c
	}
	return cmp.Compare(o.tiebreak.value(b), o.tiebreak.value(a))
}

// AddTotals returns one RankedMedal per input record, in input order.
func AddTotals(medals []model.Medal) []model.RankedMedal {
	out := make([]model.RankedMedal, len(medals))
	for i, m := range medals {
		out[i] = m.WithTotal()
	}
	return out
}

// Rank returns a copy of records ordered by key, descending.
//
// Records equal on both the primary and the tie-break field keep their
// input order. A key outside the closed set leaves the order unchanged.
func Rank(records []model.RankedMedal, key types.SortKey) []model.RankedMedal {
	out := slices.Clone(records)
	if out == nil {
		out = []model.RankedMedal{}
	}
	o, ok := orders[key]
	if !ok {
		return out
	}
	slices.SortStableFunc(out, o.compare)
	return out
}

// Tiebreak returns the field that orders records tied on key's primary
// field. It returns SortUnknown for keys outside the closed set.
func Tiebreak(key types.SortKey) types.SortKey {
	o, ok := orders[key]
	if !ok {
		return types.SortUnknown
	}
	return o.tiebreak.key
}

// Note explains how ties under key are ordered, e.g.
// "Note the tiebreak between countries is handled by total silver." It is
// empty for unknown keys.
func Note(key types.SortKey) string {
	o, ok := orders[key]
	if !ok {
		return ""
	}
	return fmt.Sprintf("Note the tiebreak between countries is handled by total %s.", o.tiebreak.key)
}

// Position returns the 1-based place of code in records ranked by key.
// The second result is false when no record carries code.
func Position(records []model.RankedMedal, key types.SortKey, code string) (int, bool) {
	ranked := Rank(records, key)
	i := slices.IndexFunc(ranked, func(m model.RankedMedal) bool { return m.Code == code })
	if i < 0 {
		return 0, false
	}
	return i + 1, true
}
