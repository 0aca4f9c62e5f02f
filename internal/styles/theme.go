package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for the application
type Theme struct {
	Primary    lipgloss.Color
	UserAccent lipgloss.Color

	TextPrimary lipgloss.Color
	TextMuted   lipgloss.Color

	Success lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	// Mode accent colors
	ModeChat  lipgloss.Color
	ModeImage lipgloss.Color
	ModeVideo lipgloss.Color
}

var Dark = Theme{
	Primary:    lipgloss.Color("#B39DDB"),
	UserAccent: lipgloss.Color("#90CAF9"),

	TextPrimary: lipgloss.Color("#F1F5F9"),
	TextMuted:   lipgloss.Color("#545454"),

	Success: lipgloss.Color("#34D399"), // Emerald 400
	Error:   lipgloss.Color("#EF9A9A"),
	Info:    lipgloss.Color("#60A5FA"), // Blue 400

	ModeChat:  lipgloss.Color("#818CF8"), // Indigo
	ModeImage: lipgloss.Color("#F472B6"), // Pink
	ModeVideo: lipgloss.Color("#FBBF24"), // Amber
}

// ModeColor returns the accent color for a mode name.
func ModeColor(mode string) lipgloss.Color {
	switch mode {
	case "image":
		return Dark.ModeImage
	case "video":
		return Dark.ModeVideo
	default:
		return Dark.ModeChat
	}
}
