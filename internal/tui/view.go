package tui

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.layout()

	header := m.styles.title.Render(" sgthelper ─ segment tree viewer ")
	header = lipgloss.NewStyle().Width(lo.contentW).Render(header)

	var sidebar string
	if m.showSidebar {
		sidebar = lipgloss.NewStyle().Width(lo.sidebarW).Render(m.l.View())
	}

	var canvas string
	switch {
	case m.showLicense:
		box := m.styles.box.Render(License)
		canvas = lipgloss.Place(lo.canvasW, lo.canvasH, lipgloss.Center, lipgloss.Center, box)
	case m.showTable:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(lo.canvasW, max(32, colW))
		box := m.styles.box.Width(maxW).Render(m.tbl.View())
		canvas = lipgloss.Place(lo.canvasW, lo.canvasH, lipgloss.Center, lipgloss.Center, box)
	default:
		canvas = m.renderCanvas(lo.canvasW, lo.canvasH)
	}
	canvas = lipgloss.NewStyle().Width(lo.canvasW).Height(lo.canvasH).MaxHeight(lo.canvasH).Render(canvas)

	body := canvas
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", canvas)
	}
	body = lipgloss.JoinHorizontal(lipgloss.Top, body, " ", m.renderPanel(lo))

	footer := lipgloss.NewStyle().Width(lo.contentW).Render(
		lipgloss.JoinVertical(lipgloss.Left, m.renderStatus(lo), m.renderHelp()))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return m.styles.app.Width(lo.contentW).Height(m.height).MaxHeight(m.height).Render(ui)
}

// renderPanel stacks the three editors and the render log.
func (m Model) renderPanel(lo layout) string {
	titles := [editorCount]string{"data", "schema", "display"}
	var rows []string
	for i := 0; i < editorCount; i++ {
		title := titles[i]
		if p := m.paths[i]; p != "" {
			title += "  " + filepath.Base(p)
		}
		st := m.styles.label
		if m.focus == focus(i+1) {
			st = m.styles.active
		}
		rows = append(rows, st.Render(title), m.editors[i].View())
	}
	rows = append(rows, m.styles.label.Render("log"), m.logView.View())
	return lipgloss.NewStyle().Width(lo.panelW).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m Model) renderStatus(lo layout) string {
	status := m.styles.dim.Render(" " + m.status + " ")
	right := m.styles.dim.Render(fmt.Sprintf(" zoom %.2fx ", m.view.Zoom))
	if m.hovering {
		right = m.styles.text.Render(" "+describe(m.hover)+" ") + right
	}
	gap := max(0, lo.contentW-lipgloss.Width(status)-lipgloss.Width(right))
	return lipgloss.JoinHorizontal(lipgloss.Bottom, status, lipgloss.NewStyle().Width(gap).Render(""), right)
}

func (m Model) renderHelp() string {
	if !m.helpVisible {
		return ""
	}
	return m.help.View(m.keys)
}
