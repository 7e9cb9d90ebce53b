package tui

const (
	headerHeight = 1
	footerHeight = 2
	sidebarWidth = 28
)

// layout is the screen geometry shared by View and mouse hit-testing.
type layout struct {
	contentW int
	contentH int

	sidebarW int

	canvasX int
	canvasY int
	canvasW int
	canvasH int

	panelX int
	panelW int

	editorY [editorCount]int // first row of each editor, below its title
	editorH [editorCount]int
	logY    int
	logH    int
}

func (m Model) layout() layout {
	var lo layout
	lo.contentW = max(10, m.width)
	lo.contentH = max(8, m.height-headerHeight-footerHeight)
	if m.showSidebar {
		lo.sidebarW = sidebarWidth
	}

	lo.panelW = min(48, max(28, lo.contentW/3))
	lo.canvasX = lo.sidebarW
	if m.showSidebar {
		lo.canvasX++
	}
	lo.canvasY = headerHeight
	lo.canvasW = max(10, lo.contentW-lo.canvasX-lo.panelW-1)
	lo.canvasH = lo.contentH
	lo.panelX = lo.canvasX + lo.canvasW + 1

	// four title rows: three editors and the log
	avail := max(4, lo.contentH-4)
	lo.editorH[editorData] = max(1, avail*35/100)
	lo.editorH[editorSchema] = max(1, avail*20/100)
	lo.editorH[editorDisplay] = max(1, avail*15/100)
	lo.logH = max(1, avail-lo.editorH[editorData]-lo.editorH[editorSchema]-lo.editorH[editorDisplay])

	y := headerHeight
	for i := 0; i < editorCount; i++ {
		y++ // title
		lo.editorY[i] = y
		y += lo.editorH[i]
	}
	lo.logY = y + 1
	return lo
}

// resize pushes the current layout into the sized widgets.
func (m *Model) resize() {
	lo := m.layout()
	for i := range m.editors {
		m.editors[i].SetWidth(lo.panelW)
		m.editors[i].SetHeight(lo.editorH[i])
	}
	m.logView.Width = lo.panelW
	m.logView.Height = lo.logH
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lo.contentH-2)
	}
	m.tbl.SetHeight(min(lo.canvasH-2, 20))
	m.help.Width = lo.contentW
}

func (lo layout) inCanvas(x, y int) bool {
	return x >= lo.canvasX && x < lo.canvasX+lo.canvasW && y >= lo.canvasY && y < lo.canvasY+lo.canvasH
}

// editorAt returns the editor under (x, y), or -1.
func (lo layout) editorAt(x, y int) int {
	if x < lo.panelX || x >= lo.panelX+lo.panelW {
		return -1
	}
	for i := 0; i < editorCount; i++ {
		if y >= lo.editorY[i]-1 && y < lo.editorY[i]+lo.editorH[i] {
			return i
		}
	}
	return -1
}
