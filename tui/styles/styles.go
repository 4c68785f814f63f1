package styles

import (
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	// Primary colors
	PrimaryColor = lipgloss.Color("#7C3AED") // Purple
	AccentColor  = lipgloss.Color("#F59E0B") // Amber

	// Status colors
	OKColor   = lipgloss.Color("#10B981") // Green
	WarnColor = lipgloss.Color("#EF4444") // Red

	// Background colors
	BackgroundColor  = lipgloss.Color("#1F2937")
	BorderColor      = lipgloss.Color("#374151")
	FocusBorderColor = lipgloss.Color("#7C3AED")

	// Text colors
	TextColor          = lipgloss.Color("#F9FAFB")
	TextSecondaryColor = lipgloss.Color("#9CA3AF")
	TextMutedColor     = lipgloss.Color("#6B7280")

	// Chart overlays
	GridColor   = "#374151"
	CursorColor = "#F59E0B"
)

// Panel styles
var (
	// Base panel style
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1)

	// Focused panel style
	FocusedPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(FocusBorderColor).
				Padding(0, 1)

	// Panel title style
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Padding(0, 1)

	// Header row style
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextSecondaryColor)

	RowStyle = lipgloss.NewStyle().
			Foreground(TextColor)
)

// Text styles
var (
	ValueStyle = lipgloss.NewStyle().
			Foreground(TextColor)

	LabelStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor)

	MutedStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor)

	// Shown while the simulation is paused
	PausedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AccentColor)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(WarnColor)

	// Axis labels next to the plot
	AxisLabelStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor)
)

// Status bar styles
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(BackgroundColor).
			Foreground(TextSecondaryColor).
			Padding(0, 1)

	StatusBarKeyStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	StatusBarDescStyle = lipgloss.NewStyle().
				Foreground(TextSecondaryColor)
)

// RenderTitle renders a title bar for a panel.
func RenderTitle(title string, focused bool) string {
	style := TitleStyle
	if focused {
		style = style.Foreground(FocusBorderColor)
	}
	return style.Render(title)
}

// Swatch renders a colored block identifying a series.
func Swatch(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

// FormatValue formats a sample value with a sign and fixed precision.
func FormatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', 3, 64)
	if !math.Signbit(v) {
		s = "+" + s
	}
	return s
}

// FormatTime formats simulation seconds.
func FormatTime(t float64) string {
	return strconv.FormatFloat(t, 'f', 1, 64) + "s"
}
