// Package flag locates country flags inside the vertical flag sprite.
package flag

import "slices"

// Sprite cell dimensions in pixels.
const (
	Width  = 28
	Height = 17
)

// codes lists the countries in the sprite, top to bottom.
var codes = []string{
	"AUT",
	"BLR",
	"CAN",
	"CHN",
	"FRA",
	"GER",
	"ITA",
	"NED",
	"NOR",
	"RUS",
	"SUI",
	"SWE",
	"USA",
}

// Index returns the sprite row of code.
func Index(code string) (int, bool) {
	i := slices.Index(codes, code)
	return i, i >= 0
}

// OffsetY returns the CSS background-position y offset for code.
// Codes missing from the sprite get 0, which shows the first flag.
func OffsetY(code string) int {
	i, ok := Index(code)
	if !ok {
		return 0
	}
	return -i * Height
}
