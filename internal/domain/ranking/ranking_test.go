package ranking_test

import (
	"testing"

	"github.com/okian/podium/internal/domain/model"
	"github.com/okian/podium/internal/domain/ranking"
	"github.com/okian/podium/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func sampleMedals() []model.Medal {
	return []model.Medal{
		{Code: "USA", Gold: 9, Silver: 7, Bronze: 12},
		{Code: "NOR", Gold: 11, Silver: 5, Bronze: 10},
		{Code: "RUS", Gold: 13, Silver: 11, Bronze: 9},
		{Code: "FRA", Gold: 4, Silver: 4, Bronze: 7},
		{Code: "SWE", Gold: 2, Silver: 7, Bronze: 6},
	}
}

func codes(records []model.RankedMedal) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = r.Code
	}
	return out
}

func TestAddTotals(t *testing.T) {
	Convey("Given raw medal counts", t, func() {
		medals := sampleMedals()

		Convey("When adding totals", func() {
			ranked := ranking.AddTotals(medals)

			Convey("Then every record carries the sum of its counts", func() {
				So(ranked, ShouldHaveLength, len(medals))
				totals := make([]int, len(ranked))
				for i, r := range ranked {
					totals[i] = r.Total
				}
				So(totals, ShouldResemble, []int{28, 26, 33, 15, 15})
			})

			Convey("And the input order and fields are preserved", func() {
				for i, r := range ranked {
					So(r.Medal, ShouldResemble, medals[i])
				}
			})
		})

		Convey("When the input is empty", func() {
			ranked := ranking.AddTotals(nil)

			Convey("Then the result is empty", func() {
				So(ranked, ShouldNotBeNil)
				So(ranked, ShouldBeEmpty)
			})
		})
	})
}

func TestRank(t *testing.T) {
	Convey("Given the sample medal table", t, func() {
		ranked := ranking.AddTotals(sampleMedals())

		Convey("When ranking by gold", func() {
			Convey("Then countries are ordered by gold count", func() {
				So(codes(ranking.Rank(ranked, types.SortGold)), ShouldResemble, []string{"RUS", "NOR", "USA", "FRA", "SWE"})
			})
		})

		Convey("When ranking by silver", func() {
			Convey("Then the silver tie between USA and SWE goes to more gold", func() {
				So(codes(ranking.Rank(ranked, types.SortSilver)), ShouldResemble, []string{"RUS", "USA", "SWE", "NOR", "FRA"})
			})
		})

		Convey("When ranking by bronze", func() {
			Convey("Then countries are ordered by bronze count", func() {
				So(codes(ranking.Rank(ranked, types.SortBronze)), ShouldResemble, []string{"USA", "NOR", "RUS", "FRA", "SWE"})
			})
		})

		Convey("When ranking by total", func() {
			Convey("Then the total tie between FRA and SWE goes to more gold", func() {
				So(codes(ranking.Rank(ranked, types.SortTotal)), ShouldResemble, []string{"RUS", "USA", "NOR", "FRA", "SWE"})
			})
		})

		Convey("When ranking by an unknown key", func() {
			Convey("Then the input order is returned", func() {
				So(codes(ranking.Rank(ranked, types.SortUnknown)), ShouldResemble, []string{"USA", "NOR", "RUS", "FRA", "SWE"})
				So(codes(ranking.Rank(ranked, types.SortKey(99))), ShouldResemble, []string{"USA", "NOR", "RUS", "FRA", "SWE"})
			})
		})

		Convey("When ranking", func() {
			before := make([]model.RankedMedal, len(ranked))
			copy(before, ranked)
			out := ranking.Rank(ranked, types.SortTotal)

			Convey("Then the input slice is left untouched", func() {
				So(ranked, ShouldResemble, before)
			})

			Convey("And the result does not share storage with the input", func() {
				out[0].Gold = -100
				So(ranked, ShouldResemble, before)
			})
		})
	})
}

func TestRank_TieBreaks(t *testing.T) {
	Convey("Given two countries tied on the primary field", t, func() {
		Convey("When tied on gold", func() {
			tie := []model.RankedMedal{
				{Medal: model.Medal{Code: "A", Gold: 5, Silver: 3, Bronze: 2}, Total: 10},
				{Medal: model.Medal{Code: "B", Gold: 5, Silver: 4, Bronze: 1}, Total: 10},
			}
			Convey("Then more silver ranks first", func() {
				So(codes(ranking.Rank(tie, types.SortGold)), ShouldResemble, []string{"B", "A"})
			})
		})

		Convey("When tied on total", func() {
			tie := []model.RankedMedal{
				{Medal: model.Medal{Code: "A", Gold: 3, Silver: 2, Bronze: 5}, Total: 10},
				{Medal: model.Medal{Code: "B", Gold: 4, Silver: 1, Bronze: 5}, Total: 10},
			}
			Convey("Then more gold ranks first", func() {
				So(codes(ranking.Rank(tie, types.SortTotal)), ShouldResemble, []string{"B", "A"})
			})
		})

		Convey("When tied on silver", func() {
			tie := []model.RankedMedal{
				{Medal: model.Medal{Code: "A", Gold: 2, Silver: 5, Bronze: 3}, Total: 10},
				{Medal: model.Medal{Code: "B", Gold: 4, Silver: 5, Bronze: 1}, Total: 10},
			}
			Convey("Then more gold ranks first", func() {
				So(codes(ranking.Rank(tie, types.SortSilver)), ShouldResemble, []string{"B", "A"})
			})
		})

		Convey("When tied on bronze", func() {
			tie := []model.RankedMedal{
				{Medal: model.Medal{Code: "A", Gold: 2, Silver: 3, Bronze: 5}, Total: 10},
				{Medal: model.Medal{Code: "B", Gold: 4, Silver: 1, Bronze: 5}, Total: 10},
			}
			Convey("Then more gold ranks first", func() {
				So(codes(ranking.Rank(tie, types.SortBronze)), ShouldResemble, []string{"B", "A"})
			})
		})

		Convey("When tied on both primary and tie-break fields", func() {
			tie := ranking.AddTotals([]model.Medal{
				{Code: "CCC", Gold: 1, Silver: 1, Bronze: 0},
				{Code: "AAA", Gold: 1, Silver: 1, Bronze: 3},
				{Code: "BBB", Gold: 1, Silver: 1, Bronze: 1},
			})
			Convey("Then the input order is kept", func() {
				So(codes(ranking.Rank(tie, types.SortGold)), ShouldResemble, []string{"CCC", "AAA", "BBB"})
			})
		})
	})
}

func TestRank_SmallInputs(t *testing.T) {
	Convey("Given inputs with fewer than two records", t, func() {
		Convey("Then nil and empty inputs rank to an empty slice", func() {
			So(ranking.Rank(nil, types.SortGold), ShouldBeEmpty)
			So(ranking.Rank(nil, types.SortGold), ShouldNotBeNil)
			So(ranking.Rank([]model.RankedMedal{}, types.SortTotal), ShouldBeEmpty)
		})

		Convey("Then a single record ranks to itself", func() {
			one := ranking.AddTotals([]model.Medal{{Code: "AUT", Gold: 4, Silver: 8, Bronze: 5}})
			So(ranking.Rank(one, types.SortBronze), ShouldResemble, one)
		})
	})
}

func TestTiebreak(t *testing.T) {
	Convey("Given the comparator table", t, func() {
		Convey("Then each key reports its tie-break field", func() {
			So(ranking.Tiebreak(types.SortGold), ShouldEqual, types.SortSilver)
			So(ranking.Tiebreak(types.SortSilver), ShouldEqual, types.SortGold)
			So(ranking.Tiebreak(types.SortBronze), ShouldEqual, types.SortGold)
			So(ranking.Tiebreak(types.SortTotal), ShouldEqual, types.SortGold)
			So(ranking.Tiebreak(types.SortUnknown), ShouldEqual, types.SortUnknown)
		})
	})
}

func TestNote(t *testing.T) {
	Convey("Given each sort key", t, func() {
		Convey("Then the note names the tie-break field", func() {
			So(ranking.Note(types.SortGold), ShouldEqual, "Note the tiebreak between countries is handled by total silver.")
			So(ranking.Note(types.SortSilver), ShouldEqual, "Note the tiebreak between countries is handled by total gold.")
			So(ranking.Note(types.SortBronze), ShouldEqual, "Note the tiebreak between countries is handled by total gold.")
			So(ranking.Note(types.SortTotal), ShouldEqual, "Note the tiebreak between countries is handled by total gold.")
			So(ranking.Note(types.SortUnknown), ShouldBeEmpty)
		})
	})
}

func TestPosition(t *testing.T) {
	Convey("Given the sample medal table", t, func() {
		ranked := ranking.AddTotals(sampleMedals())

		Convey("When locating a known country", func() {
			Convey("Then its 1-based place under the key is returned", func() {
				pos, ok := ranking.Position(ranked, types.SortGold, "USA")
				So(ok, ShouldBeTrue)
				So(pos, ShouldEqual, 3)

				pos, ok = ranking.Position(ranked, types.SortBronze, "USA")
				So(ok, ShouldBeTrue)
				So(pos, ShouldEqual, 1)
			})
		})

		Convey("When locating an unknown country", func() {
			pos, ok := ranking.Position(ranked, types.SortGold, "ZZZ")

			Convey("Then it is not found", func() {
				So(ok, ShouldBeFalse)
				So(pos, ShouldEqual, 0)
			})
		})
	})
}
