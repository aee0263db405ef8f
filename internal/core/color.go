package core

// Color represents a foreground color for a screen cell.
type Color uint8

// The palette covers the seven piece colors plus the dim gray used for
// empty cells and the ghost piece. ColorDefault renders with the
// terminal's own foreground.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorOrange
	ColorGray
)
