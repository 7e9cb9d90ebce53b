package tui

import (
	"github.com/charmbracelet/lipgloss"

	"sgthelper/internal/config"
	"sgthelper/internal/scene"
)

type styles struct {
	app    lipgloss.Style
	box    lipgloss.Style
	title  lipgloss.Style
	dim    lipgloss.Style
	label  lipgloss.Style
	stroke lipgloss.Style
	text   lipgloss.Style
	err    lipgloss.Style
	active lipgloss.Style
}

func newStyles(t config.Theme) styles {
	baseFg := lipgloss.Color(t.Canvas)
	dimFg := lipgloss.Color(t.Dim)
	accentFg := lipgloss.Color(t.Accent)
	borderCol := lipgloss.Color("#243141")
	return styles{
		app:    lipgloss.NewStyle().Foreground(baseFg),
		box:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1),
		title:  lipgloss.NewStyle().Foreground(accentFg).Bold(true),
		dim:    lipgloss.NewStyle().Foreground(dimFg),
		label:  lipgloss.NewStyle().Foreground(dimFg).Bold(true),
		stroke: lipgloss.NewStyle().Foreground(baseFg),
		text:   lipgloss.NewStyle().Foreground(lipgloss.Color(t.Label)),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color(t.Error)),
		active: lipgloss.NewStyle().Foreground(accentFg).Bold(true),
	}
}

// cell colors one raster run by what drew it.
func (s styles) cell(k scene.CellKind, run string) string {
	switch k {
	case scene.Stroke:
		return s.stroke.Render(run)
	case scene.Text:
		return s.text.Render(run)
	case scene.Marker:
		return s.active.Render(run)
	default:
		return run
	}
}
