package seg

import "math"

// LayoutParams are the scale constants of the abstract layout space.
type LayoutParams struct {
	UnitX     float64 // horizontal distance per integer point
	BaseY     float64 // tier height with no labels
	PerFieldY float64 // extra tier height per displayed field
}

// DefaultLayout matches the reference drawing scale.
var DefaultLayout = LayoutParams{UnitX: 50, BaseY: 30, PerFieldY: 15}

// UnitY is the tier height when displayCount fields are labelled.
func (p LayoutParams) UnitY(displayCount int) float64 {
	return p.BaseY + float64(displayCount)*p.PerFieldY
}

// Placement is the geometry of one record.
type Placement struct {
	Record Record
	Level  int
	X1, X2 float64
	Y      float64
}

// MaxSpan returns the largest span among recs, or 0 when recs is empty.
func MaxSpan(recs []Record) float64 {
	best := 0.0
	for _, r := range recs {
		if sp := r.Span(); sp > best {
			best = sp
		}
	}
	return best
}

// Level is the tier of a node with the given span: 1 for the widest node and
// one more for every halving needed to reach span.
func Level(maxSpan, span float64) int {
	return int(math.Ceil(math.Log2(maxSpan/span))) + 1
}

// Layout places every record. Spans must be positive (see ValidateSpans).
func Layout(recs []Record, p LayoutParams, displayCount int) []Placement {
	maxSpan := MaxSpan(recs)
	unitY := p.UnitY(displayCount)
	out := make([]Placement, 0, len(recs))
	for _, r := range recs {
		lvl := Level(maxSpan, r.Span())
		out = append(out, Placement{
			Record: r,
			Level:  lvl,
			X1:     float64(r.S) * p.UnitX,
			X2:     float64(r.T+1) * p.UnitX,
			Y:      float64(lvl) * unitY,
		})
	}
	return out
}

// Levels returns the deepest tier in placements.
func Levels(placements []Placement) int {
	deepest := 0
	for _, pl := range placements {
		if pl.Level > deepest {
			deepest = pl.Level
		}
	}
	return deepest
}
