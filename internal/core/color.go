package core

// Color represents a foreground color for a screen cell.
// Values below ansiBase are named colors; values at or above it carry
// an explicit ANSI 256-color palette index.
type Color uint16

// Predefined colors for game elements.
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
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

const ansiBase Color = 0x100

// ANSI returns the color for a 256-color palette index.
func ANSI(index uint8) Color {
	return ansiBase + Color(index)
}

// ANSIIndex reports the palette index of c, if it was built with ANSI.
func (c Color) ANSIIndex() (uint8, bool) {
	if c < ansiBase {
		return 0, false
	}
	return uint8(c - ansiBase), true
}
