package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for board elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Attr is a bit set of text attributes applied on top of a cell's color.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrStrikethrough
	AttrReverse
)

// AttrNone is a plain cell.
const AttrNone Attr = 0

// Has reports whether all bits of other are set.
func (a Attr) Has(other Attr) bool {
	return a&other == other
}
