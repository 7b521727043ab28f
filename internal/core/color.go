package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Colors used by game elements.
const (
	ColorDefault     Color = iota
	ColorRed               // Obstacles heavier than the player
	ColorGreen             // Obstacles the player can absorb
	ColorBlue              // Player body
	ColorBrightBlue        // Player stats in the HUD
	ColorBrightWhite       // Weight labels
	ColorGray              // Secondary HUD text
)

// String returns a human-readable name for the color.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "Default"
	case ColorRed:
		return "Red"
	case ColorGreen:
		return "Green"
	case ColorBlue:
		return "Blue"
	case ColorBrightBlue:
		return "BrightBlue"
	case ColorBrightWhite:
		return "BrightWhite"
	case ColorGray:
		return "Gray"
	default:
		return "Unknown"
	}
}
