package scene

// brailleBits maps a micro-pixel (column, row) inside a cell to its dot.
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// brailleGrid is a cell grid where each cell holds 2x4 micro-pixels.
type brailleGrid struct {
	w, h int
	dots [][]uint8
}

func newBrailleGrid(w, h int) *brailleGrid {
	dots := make([][]uint8, h)
	for i := range dots {
		dots[i] = make([]uint8, w)
	}
	return &brailleGrid{w: w, h: h, dots: dots}
}

// set lights the micro-pixel at (mx, my); points off the grid are dropped.
func (g *brailleGrid) set(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, cy := mx/2, my/4
	if cx >= g.w || cy >= g.h {
		return
	}
	g.dots[cy][cx] |= brailleBits[mx%2][my%4]
}

// line draws with Bresenham on the micro grid.
func (g *brailleGrid) line(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		g.set(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// rune returns the glyph of a cell, or 0 when no dot is set.
func (g *brailleGrid) rune(cx, cy int) rune {
	mask := g.dots[cy][cx]
	if mask == 0 {
		return 0
	}
	return rune(0x2800 + int(mask))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
