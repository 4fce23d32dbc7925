package rankcheck

import (
	"fmt"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/ranking"
	"github.com/okian/podium/internal/domain/types"
)

// Mismatch describes one disagreement between the service and the local
// ranking of the same data.
type Mismatch struct {
	Sort    types.SortKey
	Code    string
	Message string
}

func (m Mismatch) String() string {
	if m.Code == "" {
		return fmt.Sprintf("[%s] %s", m.Sort, m.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", m.Sort, m.Code, m.Message)
}

// Expected ranks medals locally the way the service should.
func Expected(medals []model.Medal, key types.SortKey) []model.RankedMedal {
	return ranking.Rank(ranking.AddTotals(medals), key)
}

// VerifyTable compares a served table for key against the local ranking
// of medals and checks its ordering.
func VerifyTable(medals []model.Medal, key types.SortKey, got []types.Entry) []Mismatch {
	var out []Mismatch
	want := Expected(medals, key)
	if len(got) != len(want) {
		out = append(out, Mismatch{Sort: key, Message: fmt.Sprintf("got %d entries, want %d", len(got), len(want))})
	}
	for i := 0; i < len(got) && i < len(want); i++ {
		g, w := got[i], want[i]
		switch {
		case g.Code != w.Code:
			out = append(out, Mismatch{Sort: key, Code: g.Code, Message: fmt.Sprintf("at place %d, want %s", i+1, w.Code)})
		case g.Rank != i+1:
			out = append(out, Mismatch{Sort: key, Code: g.Code, Message: fmt.Sprintf("rank %d at place %d", g.Rank, i+1)})
		case g.Gold != w.Gold || g.Silver != w.Silver || g.Bronze != w.Bronze:
			out = append(out, Mismatch{Sort: key, Code: g.Code, Message: "medal counts differ from /api/medals"})
		case g.Total != w.Total:
			out = append(out, Mismatch{Sort: key, Code: g.Code, Message: fmt.Sprintf("total %d, want %d", g.Total, w.Total)})
		}
	}
	return append(out, VerifyOrdering(key, got)...)
}

// VerifyOrdering checks that adjacent entries descend by key's primary
// field, then by its tie-break field.
func VerifyOrdering(key types.SortKey, got []types.Entry) []Mismatch {
	tb := ranking.Tiebreak(key)
	var out []Mismatch
	for i := 0; i+1 < len(got); i++ {
		a, b := got[i], got[i+1]
		pa, pb := value(a, key), value(b, key)
		if pa < pb || (pa == pb && value(a, tb) < value(b, tb)) {
			out = append(out, Mismatch{Sort: key, Code: b.Code, Message: fmt.Sprintf("ranked below %s but should be above", a.Code)})
		}
	}
	return out
}

func value(e types.Entry, key types.SortKey) int {
	switch key {
	case types.SortGold:
		return e.Gold
	case types.SortSilver:
		return e.Silver
	case types.SortBronze:
		return e.Bronze
	case types.SortTotal:
		return e.Total
	}
	return 0
}
