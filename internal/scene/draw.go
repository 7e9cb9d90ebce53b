package scene

import (
	"fmt"

	"sgthelper/internal/seg"
)

// Style sizes the bracket glyph and label stack in layout units.
type Style struct {
	Inset        float64
	TickLen      float64
	LabelSpacing float64
}

// Draw emits one bracket per placement: a horizontal segment inset from both
// ends with a tick dropping down at each end. Every field named in display is
// labelled above the bracket, one row per label, in schema order.
func Draw(placements []seg.Placement, display []string, st Style) Batch {
	show := make(map[string]bool, len(display))
	for _, name := range display {
		show[name] = true
	}
	var b Batch
	for _, pl := range placements {
		x1 := pl.X1 + st.Inset
		x2 := pl.X2 - st.Inset
		y := pl.Y
		first := len(b.Lines)
		b.Lines = append(b.Lines,
			Line{X1: x1, Y1: y, X2: x2, Y2: y},
			Line{X1: x1, Y1: y, X2: x1, Y2: y + st.TickLen},
			Line{X1: x2, Y1: y, X2: x2, Y2: y + st.TickLen},
		)
		b.Nodes = append(b.Nodes, Node{Placement: pl, Lines: [3]int{first, first + 1, first + 2}})

		cx := (pl.X1 + pl.X2) / 2
		index := 1
		for _, f := range pl.Record.Fields {
			if !show[f.Name] {
				continue
			}
			b.Labels = append(b.Labels, Label{
				X:    cx,
				Y:    y - float64(index)*st.LabelSpacing,
				Body: fmt.Sprintf("%s: %s", f.Name, f.Value),
			})
			index++
		}
	}
	return b
}
