package tui

import (
	"fmt"
	"strings"

	"sgthelper/internal/scene"
	"sgthelper/internal/seg"
)

// render runs the render command over the three editors.
func (m *Model) render() {
	in := scene.Input{
		Data:    m.editors[editorData].Value(),
		Schema:  m.editors[editorSchema].Value(),
		Display: m.editors[editorDisplay].Value(),
	}
	err := m.session.Render(in)
	m.hovering = false
	m.refreshLog()
	if err != nil {
		m.status = "render failed: " + seg.KindOf(err).String()
		return
	}
	m.status = fmt.Sprintf("rendered %d nodes", len(m.session.Records()))
	if m.showTable {
		m.refreshTable()
	}
}

func (m *Model) refreshLog() {
	var lines []string
	for _, l := range m.session.Log() {
		if strings.HasPrefix(l, "[error]") {
			lines = append(lines, m.styles.err.Render(l))
		} else {
			lines = append(lines, m.styles.dim.Render(l))
		}
	}
	m.logView.SetContent(strings.Join(lines, "\n"))
	m.logView.GotoBottom()
}

func (m Model) projection() scene.Projection {
	return scene.NewProjection(m.session.Canvas().Batch(), m.cfg.Render.CellScale, m.view)
}

func (m Model) renderCanvas(w, h int) string {
	b := m.session.Canvas().Batch()
	p := m.projection()
	r := scene.Rasterize(b, p, w, h)
	if m.hovering {
		// mark the hovered bracket at its left end
		l := b.Lines[m.hover.Lines[0]]
		cx, cy := p.Cell(l.X1, l.Y1)
		r.Mark(cx, cy, '◆')
	}
	return strings.Join(r.Styled(m.styles.cell), "\n")
}

// describe formats a node for the footer.
func describe(n scene.Node) string {
	rec := n.Placement.Record
	parts := []string{fmt.Sprintf("[%d,%d] level %d", rec.S, rec.T, n.Placement.Level)}
	for _, f := range rec.Fields {
		if f.Name == seg.FieldS || f.Name == seg.FieldT {
			continue
		}
		parts = append(parts, f.Name+"="+f.Value)
	}
	return strings.Join(parts, "  ")
}
