package scene

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"sgthelper/internal/config"
)

func renderBatch(t *testing.T, in Input) Batch {
	t.Helper()
	s := newSession()
	if err := s.Render(in); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	return s.Canvas().Batch()
}

func TestRasterizeDrawsBrackets(t *testing.T) {
	b := renderBatch(t, Input{Data: "0 1\n0 0\n1 1", Schema: "s\nt"})
	p := NewProjection(b, config.Default().Render.CellScale, NewView(config.Default().View))
	r := Rasterize(b, p, 60, 20)
	lines := r.Lines()
	if len(lines) != 20 {
		t.Fatalf("expected 20 rows, got %d", len(lines))
	}
	var dotted int
	for _, l := range lines {
		for _, ch := range l {
			if ch >= 0x2800 && ch <= 0x28FF {
				dotted++
			}
		}
	}
	if dotted == 0 {
		t.Fatal("expected braille strokes in raster")
	}
}

func TestRasterizeLabels(t *testing.T) {
	b := renderBatch(t, Input{Data: "0 3 root", Schema: "s\nt\nname", Display: "name"})
	p := NewProjection(b, config.Default().Render.CellScale, NewView(config.Default().View))
	out := strings.Join(Rasterize(b, p, 80, 20).Lines(), "\n")
	if !strings.Contains(out, "name: root") {
		t.Errorf("expected label in raster:\n%s", out)
	}
}

func TestRasterizeWideLabel(t *testing.T) {
	b := renderBatch(t, Input{Data: "0 3 根", Schema: "s\nt\nname", Display: "name"})
	p := NewProjection(b, config.Default().Render.CellScale, NewView(config.Default().View))
	r := Rasterize(b, p, 80, 20)
	for i, l := range r.Lines() {
		if w := len([]rune(l)); w > 80 {
			t.Errorf("row %d has %d runes, want at most 80", i, w)
		}
	}
	if !strings.Contains(strings.Join(r.Lines(), "\n"), "name: 根") {
		t.Error("expected wide label in raster")
	}
}

func TestStyledWrapsRuns(t *testing.T) {
	b := renderBatch(t, Input{Data: "0 3 x", Schema: "s\nt\nv", Display: "v"})
	p := NewProjection(b, config.Default().Render.CellScale, NewView(config.Default().View))
	r := Rasterize(b, p, 80, 20)
	var kinds = map[CellKind]int{}
	r.Styled(func(k CellKind, s string) string {
		kinds[k]++
		return s
	})
	if kinds[Stroke] == 0 || kinds[Text] == 0 {
		t.Errorf("expected stroke and text runs, got %v", kinds)
	}
}

func TestProjectionZoomAndPan(t *testing.T) {
	v := NewView(config.Default().View)
	p := Projection{Scale: 2.5, View: v}
	mx, my := p.Micro(50, 10)
	if mx != 20 || my != 4 {
		t.Errorf("expected (20,4), got (%d,%d)", mx, my)
	}
	v.Pan(3, 1)
	p.View = v
	mx, my = p.Micro(50, 10)
	if mx != 26 || my != 8 {
		t.Errorf("expected panned (26,8), got (%d,%d)", mx, my)
	}
	v.Home()
	v.Zoom = 2
	p.View = v
	mx, _ = p.Micro(50, 10)
	if mx != 40 {
		t.Errorf("expected zoomed x=40, got %d", mx)
	}
}

func TestViewZoomLimits(t *testing.T) {
	v := NewView(config.Default().View)
	for i := 0; i < 20; i++ {
		v.ZoomIn()
	}
	if v.Zoom > 5 {
		t.Errorf("zoom passed maximum: %v", v.Zoom)
	}
	if v.ZoomIn() {
		t.Error("expected ZoomIn to refuse past the maximum")
	}
	v.ResetZoom()
	if v.Zoom != 1 {
		t.Errorf("expected zoom 1 after reset, got %v", v.Zoom)
	}
	for i := 0; i < 100; i++ {
		v.ZoomOut()
	}
	if v.Zoom < 0.05 {
		t.Errorf("zoom passed minimum: %v", v.Zoom)
	}
}

func TestNodeAt(t *testing.T) {
	b := renderBatch(t, Input{Data: "0 3\n0 1\n2 3", Schema: "s\nt"})
	p := NewProjection(b, config.Default().Render.CellScale, NewView(config.Default().View))
	target := b.Nodes[2]
	l := b.Lines[target.Lines[0]]
	cx, cy := p.Cell((l.X1+l.X2)/2, l.Y1)
	n, ok := NodeAt(b, p, cx, cy)
	if !ok {
		t.Fatal("expected a node under the bracket midpoint")
	}
	if n.Placement.Record.S != 2 || n.Placement.Record.T != 3 {
		t.Errorf("expected node [2,3], got [%d,%d]", n.Placement.Record.S, n.Placement.Record.T)
	}
	if _, ok := NodeAt(b, p, 0, 0); ok {
		t.Error("expected no node at the corner")
	}
}

func TestWriteSVG(t *testing.T) {
	b := renderBatch(t, Input{Data: "0 1 <a&b>", Schema: "s\nt\nv", Display: "v"})
	var buf bytes.Buffer
	if err := WriteSVG(&buf, b, config.Default().Theme); err != nil {
		t.Fatalf("WriteSVG failed: %v", err)
	}
	out := buf.String()
	if strings.Count(out, "<line ") != 3 {
		t.Errorf("expected 3 lines in svg:\n%s", out)
	}
	if !strings.Contains(out, "v: &lt;a&amp;b&gt;") {
		t.Errorf("expected escaped label in svg:\n%s", out)
	}
	if !strings.HasPrefix(out, "<svg ") || !strings.HasSuffix(strings.TrimSpace(out), "</svg>") {
		t.Errorf("expected a complete svg document:\n%s", out)
	}
}

func TestWriteSVGEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, Batch{}, config.Default().Theme); err != nil {
		t.Fatalf("WriteSVG failed: %v", err)
	}
	if strings.Contains(buf.String(), "<text") {
		t.Error("expected no text group for empty batch")
	}
}

func TestMarkKeepsCellColumns(t *testing.T) {
	blank := func() *Raster {
		r := Rasterize(Batch{}, Projection{Scale: 1, View: View{Zoom: 1}}, 6, 1)
		r.text(0, 0, "根x")
		return r
	}
	cases := []struct {
		x    int
		want string
	}{
		{2, "根◆   "},
		{0, "◆ x   "},
		{1, " ◆x   "},
		{4, "根x ◆ "},
	}
	for _, tc := range cases {
		r := blank()
		r.Mark(tc.x, 0, '◆')
		if got := r.Lines()[0]; got != tc.want {
			t.Errorf("Mark(%d): expected %q, got %q", tc.x, tc.want, got)
		}
	}

	r := blank()
	r.Mark(3, 0, '◆')
	var marked string
	r.Styled(func(k CellKind, s string) string {
		if k == Marker {
			marked += s
		}
		return s
	})
	if marked != "◆" {
		t.Errorf("expected a single marker run, got %q", marked)
	}
}

func TestRasterizeHugeRange(t *testing.T) {
	b := renderBatch(t, Input{Data: "0 2000000000\n0 0", Schema: "s\nt"})
	done := make(chan []string, 1)
	go func() {
		p := NewProjection(b, config.Default().Render.CellScale, NewView(config.Default().View))
		done <- Rasterize(b, p, 80, 24).Lines()
	}()
	select {
	case lines := <-done:
		var dotted int
		for _, l := range lines {
			for _, ch := range l {
				if ch >= 0x2801 && ch <= 0x28FF {
					dotted++
				}
			}
		}
		if dotted == 0 {
			t.Error("expected the visible part of the wide bracket to be drawn")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("rasterizing a huge range did not finish")
	}
}

func TestClipLine(t *testing.T) {
	x0, y0, x1, y1, ok := clipLine(-1e12, 8, 1e12, 8, 0, 0, 100, 40)
	if !ok || x0 != 0 || x1 != 100 || y0 != 8 || y1 != 8 {
		t.Errorf("expected horizontal line clipped to [0,100], got (%v,%v)-(%v,%v) %v", x0, y0, x1, y1, ok)
	}
	if _, _, _, _, ok := clipLine(-50, 80, 50, 80, 0, 0, 100, 40); ok {
		t.Error("expected a line below the box to be dropped")
	}
	x0, y0, x1, y1, ok = clipLine(10, 5, 20, 30, 0, 0, 100, 40)
	if !ok || x0 != 10 || y0 != 5 || x1 != 20 || y1 != 30 {
		t.Error("expected an inside line to be unchanged")
	}
}
