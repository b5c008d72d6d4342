package core

// Color identifies the foreground color of a screen cell. The zero value
// is the terminal default; the renderer maps everything else onto the
// ANSI 256-color palette, so games never deal in escape codes.
type Color uint8

// The base and bright groups follow standard ANSI ordering. The last two
// entries reach into the extended palette: orange for emphasis glyphs and
// gray for cave walls, where bright white reads too loud.
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
