package gfx

// Display draws onto a PixelSink and tracks what it touched.
//
// A Display is not safe for concurrent use.
type Display struct {
	sink   PixelSink
	size   Size
	cursor Point
	font   *Font
	dirty  Dirty
}

// New returns a Display of the given size drawing into sink. The whole
// display starts dirty so the first flush sends everything.
func New(sink PixelSink, size Size) *Display {
	d := &Display{sink: sink, size: size}
	d.Invalidate()
	return d
}

// Size returns the display size.
func (d *Display) Size() Size { return d.size }

// Sink returns the backend pixels are sent to.
func (d *Display) Sink() PixelSink { return d.sink }

// Cursor returns the current pen position.
func (d *Display) Cursor() Point { return d.cursor }

// MoveTo moves the pen without drawing.
func (d *Display) MoveTo(p Point) { d.cursor = p }

// SetFont selects the font used by the text operations. nil disables text.
func (d *Display) SetFont(f *Font) { d.font = f }

// Font returns the selected font.
func (d *Display) Font() *Font { return d.font }

// Dirty returns the area modified since the last Validate.
func (d *Display) Dirty() Rect { return d.dirty.Rect() }

// Invalidate marks the whole display dirty.
func (d *Display) Invalidate() { d.dirty.Invalidate(d.size) }

// Validate clears the dirty area. Backends call it after a successful flush.
func (d *Display) Validate() { d.dirty.Validate() }

// MarkDirty adds a box to the dirty area. Drawing operations do this on
// their own; it is exported for callers that write to the sink directly.
func (d *Display) MarkDirty(r Rect) { d.dirty.MarkRect(r) }

// SetPixel sets a single pixel.
func (d *Display) SetPixel(x, y uint8) {
	d.dirty.Mark(x, y, 1, 1)
	d.sink.SetPixel(x, y)
}

// LineTo draws a line from the cursor to p, both ends included, and moves
// the cursor to p.
func (d *Display) LineTo(p Point) {
	from := d.cursor
	d.cursor = p

	switch {
	case from.X == p.X:
		top, bottom := min(from.Y, p.Y), max(from.Y, p.Y)
		d.sink.SetVerticalRun(p.X, top, bottom)
		d.dirty.Mark(p.X, top, 1, int(bottom-top)+1)
		return
	case from.Y == p.Y:
		left, right := min(from.X, p.X), max(from.X, p.X)
		d.sink.SetHorizontalRun(left, right, p.Y)
		d.dirty.Mark(left, p.Y, int(right-left)+1, 1)
		return
	}

	left, right := min(from.X, p.X), max(from.X, p.X)
	top, bottom := min(from.Y, p.Y), max(from.Y, p.Y)
	d.dirty.Mark(left, top, int(right-left)+1, int(bottom-top)+1)

	dx := int(right - left)
	dy := int(bottom - top)
	sx, sy := 1, 1
	if from.X > p.X {
		sx = -1
	}
	if from.Y > p.Y {
		sy = -1
	}

	x, y := from.X, from.Y
	err := dx - dy
	for {
		d.sink.SetPixel(x, y)
		e2 := err << 1
		if e2 >= -dy {
			if x == p.X {
				break
			}
			err -= dy
			x = uint8(int(x) + sx)
		}
		if e2 <= dx {
			if y == p.Y {
				break
			}
			err += dx
			y = uint8(int(y) + sy)
		}
	}
}

// PaintRect fills r.
func (d *Display) PaintRect(r Rect) {
	if r.Empty() {
		return
	}
	d.dirty.MarkRect(r)
	d.paintRect(r.Origin.X, r.Origin.Y, int(r.Size.Width), int(r.Size.Height))
}

// paintRect fills a w×h box column by column. Non-positive sizes are
// ignored.
func (d *Display) paintRect(x, y uint8, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	bottom := y + uint8(h-1)
	for i := 0; i < w; i++ {
		d.sink.SetVerticalRun(x+uint8(i), y, bottom)
	}
}

// FrameRect draws the one pixel wide outline of r.
func (d *Display) FrameRect(r Rect) {
	if r.Empty() {
		return
	}
	d.dirty.MarkRect(r)

	x, y := r.Origin.X, r.Origin.Y
	w, h := r.Size.Width, r.Size.Height
	right := x + w - 1
	bottom := y + h - 1
	switch {
	case w == 1:
		d.sink.SetVerticalRun(x, y, bottom)
	case h == 1:
		d.sink.SetHorizontalRun(x, right, y)
	default:
		d.sink.SetVerticalRun(x, y, bottom)
		d.sink.SetVerticalRun(right, y, bottom)
		if w > 2 {
			d.sink.SetHorizontalRun(x+1, right-1, y)
			d.sink.SetHorizontalRun(x+1, right-1, bottom)
		}
	}
}
