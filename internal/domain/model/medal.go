// Package model contains domain models passed between layers.
package model

// Medal holds the raw medal counts of one country.
// Fields mirror the JSON documents served by /api/medals.
type Medal struct {
	Code   string `json:"code" yaml:"code" validate:"required,alpha,uppercase,min=2,max=3"` // country identifier, e.g. "NOR"
	Gold   int    `json:"gold" yaml:"gold" validate:"min=0"`
	Silver int    `json:"silver" yaml:"silver" validate:"min=0"`
	Bronze int    `json:"bronze" yaml:"bronze" validate:"min=0"`
}

// RankedMedal is a Medal with its derived total.
// Total is only ever produced by WithTotal; it is never decoded from input.
type RankedMedal struct {
	Medal
	Total int `json:"total"`
}

// WithTotal returns a RankedMedal whose Total is the sum of the three counts.
func (m Medal) WithTotal() RankedMedal {
	return RankedMedal{
		Medal: m,
		Total: m.Gold + m.Silver + m.Bronze,
	}
}
