package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI codes by the platform renderer.
type Color uint8

// Predefined colors for match elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorGray
)
