// Package types contains common types used across the application
package types

// Entry represents one row of a medal table.
type Entry struct {
	Rank        int    `json:"rank"`
	Code        string `json:"code"`
	Gold        int    `json:"gold"`
	Silver      int    `json:"silver"`
	Bronze      int    `json:"bronze"`
	Total       int    `json:"total"`
	FlagOffsetY int    `json:"flag_offset_y"`
}

// Ranking is a medal table ordered by Sort, with ties broken by Tiebreak.
type Ranking struct {
	Sort     SortKey `json:"sort"`
	Tiebreak SortKey `json:"tiebreak"`
	Entries  []Entry `json:"entries"`
}
