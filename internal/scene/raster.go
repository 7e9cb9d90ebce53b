package scene

import (
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Projection maps layout units onto a braille micro grid (2x4 per cell).
type Projection struct {
	Scale   float64 // layout units per micro-pixel at zoom 1
	OriginX float64
	OriginY float64
	View    View
}

// NewProjection anchors the top-left of b's bounds one cell in from the
// canvas corner.
func NewProjection(b Batch, scale float64, v View) Projection {
	p := Projection{Scale: scale, View: v}
	if bb, ok := b.Bounds(); ok {
		p.OriginX = bb.MinX - 2*scale
		p.OriginY = bb.MinY - 4*scale
	}
	return p
}

// MicroF projects a layout point to unrounded micro-pixel coordinates.
func (p Projection) MicroF(x, y float64) (float64, float64) {
	k := p.View.Zoom / p.Scale
	mx := (x-p.OriginX)*k + float64(p.View.OffsetX*2)
	my := (y-p.OriginY)*k + float64(p.View.OffsetY*4)
	return mx, my
}

// Micro projects a layout point to micro-pixel coordinates.
func (p Projection) Micro(x, y float64) (int, int) {
	mx, my := p.MicroF(x, y)
	return toMicro(mx), toMicro(my)
}

// microLimit keeps projected points of huge ranges inside int.
const microLimit = 1 << 40

func toMicro(v float64) int {
	return int(math.Round(math.Max(-microLimit, math.Min(microLimit, v))))
}

// Cell projects a layout point to the cell containing it.
func (p Projection) Cell(x, y float64) (int, int) {
	mx, my := p.Micro(x, y)
	return floorDiv(mx, 2), floorDiv(my, 4)
}

// CellKind tells what put a glyph in a cell.
type CellKind int

const (
	Blank CellKind = iota
	Stroke
	Text
	Marker
)

type cell struct {
	r    rune
	kind CellKind
	cont bool // right half of a wide rune
}

// Raster is a batch drawn onto a w x h cell grid.
type Raster struct {
	W, H  int
	cells [][]cell
}

// Rasterize draws lines as braille dots and overlays labels centered on
// their anchor cell.
func Rasterize(b Batch, p Projection, w, h int) *Raster {
	g := newBrailleGrid(w, h)
	for _, l := range b.Lines {
		x0, y0 := p.MicroF(l.X1, l.Y1)
		x1, y1 := p.MicroF(l.X2, l.Y2)
		// one micro-pixel of slack so rounding never drops an edge dot
		x0, y0, x1, y1, ok := clipLine(x0, y0, x1, y1, -1, -1, float64(2*w), float64(4*h))
		if !ok {
			continue
		}
		g.line(toMicro(x0), toMicro(y0), toMicro(x1), toMicro(y1))
	}
	r := &Raster{W: w, H: h, cells: make([][]cell, h)}
	for y := 0; y < h; y++ {
		row := make([]cell, w)
		for x := 0; x < w; x++ {
			if ch := g.rune(x, y); ch != 0 {
				row[x] = cell{r: ch, kind: Stroke}
			} else {
				row[x] = cell{r: ' '}
			}
		}
		r.cells[y] = row
	}
	for _, t := range b.Labels {
		cx, cy := p.Cell(t.X, t.Y)
		r.text(cx-runewidth.StringWidth(t.Body)/2, cy, t.Body)
	}
	return r
}

func (r *Raster) text(x, y int, s string) {
	if y < 0 || y >= r.H {
		return
	}
	row := r.cells[y]
	for _, ch := range s {
		cw := runewidth.RuneWidth(ch)
		if cw == 0 {
			continue
		}
		if x >= 0 && x+cw <= r.W {
			row[x] = cell{r: ch, kind: Text}
			for i := 1; i < cw; i++ {
				row[x+i] = cell{kind: Text, cont: true}
			}
		}
		x += cw
	}
}

// Mark puts r in cell (x, y). A wide rune it overlaps is blanked so the row
// keeps its width.
func (r *Raster) Mark(x, y int, ch rune) {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return
	}
	row := r.cells[y]
	if row[x].cont {
		for i := x - 1; i >= 0; i-- {
			wasHead := !row[i].cont
			row[i] = cell{r: ' '}
			if wasHead {
				break
			}
		}
	}
	for i := x + 1; i < r.W && row[i].cont; i++ {
		row[i] = cell{r: ' '}
	}
	row[x] = cell{r: ch, kind: Marker}
}

// Lines returns the raster as plain text rows.
func (r *Raster) Lines() []string {
	return r.Styled(nil)
}

// Styled returns the rows with each run of same-kind cells passed through
// style. A nil style leaves text plain.
func (r *Raster) Styled(style func(CellKind, string) string) []string {
	out := make([]string, r.H)
	for y, row := range r.cells {
		var sb, run strings.Builder
		kind := Blank
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if style != nil {
				sb.WriteString(style(kind, run.String()))
			} else {
				sb.WriteString(run.String())
			}
			run.Reset()
		}
		for _, c := range row {
			if c.cont {
				continue
			}
			if c.kind != kind {
				flush()
				kind = c.kind
			}
			run.WriteRune(c.r)
		}
		flush()
		out[y] = sb.String()
	}
	return out
}

// NodeAt finds the bracket drawn through cell (cx, cy), if any.
func NodeAt(b Batch, p Projection, cx, cy int) (Node, bool) {
	for _, n := range b.Nodes {
		l := b.Lines[n.Lines[0]]
		x0, y := p.Cell(l.X1, l.Y1)
		x1, _ := p.Cell(l.X2, l.Y2)
		_, tick := p.Cell(l.X1, l.Y1+b.tickLen(n))
		if cx >= x0 && cx <= x1 && cy >= y && cy <= tick {
			return n, true
		}
	}
	return Node{}, false
}

func (b Batch) tickLen(n Node) float64 {
	t := b.Lines[n.Lines[1]]
	return t.Y2 - t.Y1
}

// clipLine clips a segment to the box [xmin,xmax]x[ymin,ymax] (Liang-Barsky).
func clipLine(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (float64, float64, float64, float64, bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x0 - xmin},
		{dx, xmax - x0},
		{-dy, y0 - ymin},
		{dy, ymax - y0},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, r)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
