package scene

import "sgthelper/internal/config"

// View is the pan/zoom transform of the canvas. It never touches the record
// set.
type View struct {
	Zoom    float64
	OffsetX int // cells
	OffsetY int // cells

	limits config.View
}

func NewView(limits config.View) View {
	return View{Zoom: 1, limits: limits}
}

// ZoomIn scales up by one wheel step unless that would pass the maximum.
func (v *View) ZoomIn() bool {
	next := v.Zoom * v.limits.ZoomIn
	if next > v.limits.MaxZoom {
		return false
	}
	v.Zoom = next
	return true
}

// ZoomOut scales down by one wheel step, stopping at the minimum.
func (v *View) ZoomOut() bool {
	next := v.Zoom * v.limits.ZoomOut
	if next < v.limits.MinZoom {
		return false
	}
	v.Zoom = next
	return true
}

func (v *View) Pan(dx, dy int) {
	v.OffsetX += dx
	v.OffsetY += dy
}

// ResetZoom restores zoom 1 and leaves the pan alone.
func (v *View) ResetZoom() { v.Zoom = 1 }

// Home restores zoom 1 and clears the pan.
func (v *View) Home() {
	v.Zoom = 1
	v.OffsetX, v.OffsetY = 0, 0
}
