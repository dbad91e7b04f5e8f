package gfx

// Dirty accumulates the area touched since the last flush.
//
// The tracked rectangle only ever grows until Validate empties it, so a
// failed flush followed by a retry resends at least the same region.
type Dirty struct {
	r Rect
}

// Mark extends the tracked area to cover the width×height box at
// (left, top). Non-positive sizes are ignored.
func (d *Dirty) Mark(left, top uint8, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	box := Rect{
		Origin: Point{X: left, Y: top},
		Size:   Size{Width: clampSize(width), Height: clampSize(height)},
	}
	d.r = d.r.Union(box)
}

// MarkRect is Mark for a rectangle.
func (d *Dirty) MarkRect(r Rect) {
	d.Mark(r.Origin.X, r.Origin.Y, int(r.Size.Width), int(r.Size.Height))
}

// Invalidate marks the whole full-size area.
func (d *Dirty) Invalidate(full Size) {
	d.r = Rect{Size: full}
}

// Validate forgets the tracked area.
func (d *Dirty) Validate() { d.r = Rect{} }

// Rect returns the tracked area.
func (d *Dirty) Rect() Rect { return d.r }

// Empty reports whether nothing has been touched.
func (d *Dirty) Empty() bool { return d.r.Empty() }
