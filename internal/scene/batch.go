// Package scene turns parsed segment records into drawables and owns the
// batch currently on the canvas.
package scene

import (
	"math"

	"sgthelper/internal/seg"
)

// Line is a straight segment in layout units.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Label is text centered on (X, Y).
type Label struct {
	X, Y float64
	Body string
}

// Node ties a drawn bracket back to its record for inspection.
type Node struct {
	Placement seg.Placement
	Lines     [3]int // indexes into Batch.Lines
}

// Batch is every drawable produced by one render.
type Batch struct {
	Lines  []Line
	Labels []Label
	Nodes  []Node
}

// Len is the number of drawables in b.
func (b Batch) Len() int { return len(b.Lines) + len(b.Labels) }

func (b Batch) Empty() bool { return b.Len() == 0 }

// Bounds returns the box covering every line endpoint and label anchor.
func (b Batch) Bounds() (Bounds, bool) {
	var bb Bounds
	for _, l := range b.Lines {
		bb.add(l.X1, l.Y1)
		bb.add(l.X2, l.Y2)
	}
	for _, t := range b.Labels {
		bb.add(t.X, t.Y)
	}
	return bb, bb.set
}

type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
	set                    bool
}

func (b *Bounds) add(x, y float64) {
	if !b.set {
		b.MinX, b.MaxX = x, x
		b.MinY, b.MaxY = y, y
		b.set = true
		return
	}
	b.MinX = math.Min(b.MinX, x)
	b.MaxX = math.Max(b.MaxX, x)
	b.MinY = math.Min(b.MinY, y)
	b.MaxY = math.Max(b.MaxY, y)
}

// Canvas holds the batch on screen. Replace swaps it in one step so the old
// items are dropped before the new ones show.
type Canvas struct {
	cur Batch
}

// Replace installs b and returns the batch it displaced.
func (c *Canvas) Replace(b Batch) Batch {
	prev := c.cur
	c.cur = b
	return prev
}

func (c *Canvas) Clear() { c.cur = Batch{} }

func (c *Canvas) Batch() Batch { return c.cur }

func (c *Canvas) Len() int { return c.cur.Len() }
