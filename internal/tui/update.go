package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"sgthelper/internal/scene"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil
	case fileChangedMsg:
		m.applyChange(msg)
		return m, m.waitForChange()
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return m.passThrough(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	if m.showLicense {
		m.showLicense = false
		return m, nil
	}
	// sidebar filtering owns every key
	if m.showSidebar && m.l.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	if m.showSidebar {
		switch msg.String() {
		case "esc", "f", "ctrl+o":
			m.showSidebar = false
			m.resize()
			return m, nil
		case "enter":
			if it, ok := m.l.SelectedItem().(fileItem); ok {
				if m.loadFile(m.lastEditor, it.path) {
					m.render()
				}
			}
			m.showSidebar = false
			m.resize()
			return m, nil
		}
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Focus):
		return m.setFocus((m.focus + 1) % (editorCount + 1))
	case key.Matches(msg, m.keys.FocusBack):
		return m.setFocus((m.focus + editorCount) % (editorCount + 1))
	}

	if m.focus != focusCanvas {
		switch msg.String() {
		case "ctrl+r":
			m.render()
			return m, nil
		case "esc":
			return m.setFocus(focusCanvas)
		}
		i := int(m.focus) - 1
		var cmd tea.Cmd
		m.editors[i], cmd = m.editors[i].Update(msg)
		return m, cmd
	}

	if m.showTable {
		switch msg.String() {
		case "esc", "t":
			m.showTable = false
			return m, nil
		}
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Render):
		m.render()
	case key.Matches(msg, m.keys.ZoomIn):
		m.zoomIn()
	case key.Matches(msg, m.keys.ZoomOut):
		m.zoomOut()
	case key.Matches(msg, m.keys.ResetZoom):
		m.view.ResetZoom()
		m.status = "zoom reset"
	case key.Matches(msg, m.keys.Home):
		m.view.Home()
		m.status = "view reset"
	case key.Matches(msg, m.keys.Up):
		m.view.Pan(0, 1)
	case key.Matches(msg, m.keys.Down):
		m.view.Pan(0, -1)
	case key.Matches(msg, m.keys.Left):
		m.view.Pan(2, 0)
	case key.Matches(msg, m.keys.Right):
		m.view.Pan(-2, 0)
	case key.Matches(msg, m.keys.Table):
		if m.refreshTable() {
			m.showTable = true
		} else {
			m.status = "no records rendered yet"
		}
	case key.Matches(msg, m.keys.Files):
		m.showSidebar = true
		m.refreshDir()
		m.resize()
	case key.Matches(msg, m.keys.License):
		m.showLicense = true
	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
	}
	return m, nil
}

func (m Model) setFocus(f focus) (tea.Model, tea.Cmd) {
	m.focus = f
	var cmd tea.Cmd
	for i := range m.editors {
		if focus(i+1) == f {
			cmd = m.editors[i].Focus()
			m.lastEditor = i
		} else {
			m.editors[i].Blur()
		}
	}
	if f == focusCanvas {
		m.status = "canvas"
	} else {
		m.status = "editing " + editorRoles[f-1]
	}
	return m, cmd
}

func (m *Model) zoomIn() {
	if m.view.ZoomIn() {
		m.status = fmt.Sprintf("zoom: %.2fx", m.view.Zoom)
	}
}

func (m *Model) zoomOut() {
	if m.view.ZoomOut() {
		m.status = fmt.Sprintf("zoom: %.2fx", m.view.Zoom)
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	lo := m.layout()
	if m.showSidebar && msg.X < lo.sidebarW {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}

	switch msg.Action {
	case tea.MouseActionRelease:
		m.dragging = false
		return m, nil
	case tea.MouseActionMotion:
		if m.dragging {
			dx, dy := msg.X-m.dragX, msg.Y-m.dragY
			m.view.Pan(dx, dy)
			m.dragX, m.dragY = msg.X, msg.Y
			return m, nil
		}
	}

	if !lo.inCanvas(msg.X, msg.Y) {
		m.hovering = false
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			if i := lo.editorAt(msg.X, msg.Y); i >= 0 {
				return m.setFocus(focus(i + 1))
			}
		}
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			var cmd tea.Cmd
			m.logView, cmd = m.logView.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.zoomIn()
	case msg.Button == tea.MouseButtonWheelDown:
		m.zoomOut()
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.dragging = true
		m.dragX, m.dragY = msg.X, msg.Y
	case msg.Action == tea.MouseActionMotion:
		cx, cy := msg.X-lo.canvasX, msg.Y-lo.canvasY
		m.hover, m.hovering = scene.NodeAt(m.session.Canvas().Batch(), m.projection(), cx, cy)
	}
	return m, nil
}

func (m Model) passThrough(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.focus == focusCanvas {
		return m, nil
	}
	i := int(m.focus) - 1
	var cmd tea.Cmd
	m.editors[i], cmd = m.editors[i].Update(msg)
	return m, cmd
}
