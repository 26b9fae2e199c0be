package preview

import (
	"github.com/charmbracelet/lipgloss"

	"fragvec/internal/render"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
)

// shapeStyles mirrors the export palette so the terminal preview and
// the SVG/PNG output agree on shape colors.
var shapeStyles = func() []lipgloss.Style {
	s := make([]lipgloss.Style, len(render.Palette))
	for i, hex := range render.Palette {
		s[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
	}
	return s
}()

// shapeStyle returns the foreground style for shape index i.
func shapeStyle(i int) lipgloss.Style {
	if i < 0 {
		return appStyle
	}
	return shapeStyles[i%len(shapeStyles)]
}
