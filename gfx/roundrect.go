package gfx

// Corner quadrants for drawCorner. CornerFill switches from the arc outline
// to vertical runs between the arc and the center row.
const (
	CornerBottomRight uint8 = 0x01
	CornerBottomLeft  uint8 = 0x02
	CornerTopLeft     uint8 = 0x04
	CornerTopRight    uint8 = 0x08
	CornerFill        uint8 = 0x10
)

// DrawCorner draws the quadrants selected by mask of a circle of the given
// radius centered on (xm, ym). It does not touch the dirty area; callers
// that use it directly mark the affected box themselves.
func (d *Display) DrawCorner(xm, ym, radius uint8, mask uint8) {
	d.corner(xm, ym, int(radius), mask)
}

// corner walks one octant pair of a Bresenham circle from (−r, 0) to
// (0, r). In fill mode each column gets a single run, taken when the run
// for that column is longest.
func (d *Display) corner(xm, ym uint8, r int, mask uint8) {
	fill := mask&CornerFill != 0
	x, y := -r, 0
	err := 2 - 2*r
	newY := true
	for x <= 0 {
		cx, cy := x, y
		e := err
		stepY := false
		if e <= y {
			y++
			err += y*2 + 1
			stepY = true
		}
		stepX := false
		if e > x || err > y {
			x++
			err += x*2 + 1
			stepX = true
		}

		switch {
		case !fill:
			d.cornerPixels(int(xm), int(ym), cx, cy, mask)
		default:
			// Quadrants 1 and 4 pick the column from x and grow the run
			// with y; 2 and 8 pick the column from y and shrink with x.
			if stepX {
				if mask&CornerBottomRight != 0 {
					d.vrun(int(xm)-cx, int(ym), int(ym)+cy)
				}
				if mask&CornerTopLeft != 0 {
					d.vrun(int(xm)+cx, int(ym)-cy, int(ym))
				}
			}
			if newY {
				if mask&CornerBottomLeft != 0 {
					d.vrun(int(xm)-cy, int(ym), int(ym)-cx)
				}
				if mask&CornerTopRight != 0 {
					d.vrun(int(xm)+cy, int(ym)+cx, int(ym))
				}
			}
		}
		newY = stepY
	}
}

func (d *Display) cornerPixels(xm, ym, x, y int, mask uint8) {
	if mask&CornerBottomRight != 0 {
		d.sink.SetPixel(uint8(xm-x), uint8(ym+y))
	}
	if mask&CornerBottomLeft != 0 {
		d.sink.SetPixel(uint8(xm-y), uint8(ym-x))
	}
	if mask&CornerTopLeft != 0 {
		d.sink.SetPixel(uint8(xm+x), uint8(ym-y))
	}
	if mask&CornerTopRight != 0 {
		d.sink.SetPixel(uint8(xm+y), uint8(ym+x))
	}
}

// hrun and vrun take unwrapped coordinates and drop runs that end before
// they start.
func (d *Display) hrun(left, right, y int) {
	if right < left {
		return
	}
	d.sink.SetHorizontalRun(uint8(left), uint8(right), uint8(y))
}

func (d *Display) vrun(x, top, bottom int) {
	if bottom < top {
		return
	}
	d.sink.SetVerticalRun(uint8(x), uint8(top), uint8(bottom))
}

func cornerRadius(r Rect, corner uint8) int {
	return int(min(corner, min(r.Size.Width, r.Size.Height)/2))
}

// FrameRoundRect outlines r with corners of the given radius. The radius is
// clamped to half the shorter side.
func (d *Display) FrameRoundRect(r Rect, corner uint8) {
	if r.Empty() {
		return
	}
	d.dirty.MarkRect(r)

	c := cornerRadius(r, corner)
	x, y := int(r.Origin.X), int(r.Origin.Y)
	right := r.Right() - 1
	bottom := r.Bottom() - 1

	d.corner(uint8(x+c), uint8(y+c), c, CornerTopLeft)
	d.corner(uint8(right-c), uint8(y+c), c, CornerTopRight)
	d.corner(uint8(right-c), uint8(bottom-c), c, CornerBottomRight)
	d.corner(uint8(x+c), uint8(bottom-c), c, CornerBottomLeft)

	d.hrun(x+c+1, right-c-1, y)
	d.hrun(x+c+1, right-c-1, bottom)
	d.vrun(x, y+c+1, bottom-c-1)
	d.vrun(right, y+c+1, bottom-c-1)
}

// PaintRoundRect fills r with corners of the given radius. The radius is
// clamped to half the shorter side.
func (d *Display) PaintRoundRect(r Rect, corner uint8) {
	if r.Empty() {
		return
	}
	d.dirty.MarkRect(r)

	c := cornerRadius(r, corner)
	x, y := int(r.Origin.X), int(r.Origin.Y)
	w, h := int(r.Size.Width), int(r.Size.Height)
	right := x + w - 1
	bottom := y + h - 1

	d.corner(uint8(x+c), uint8(y+c), c, CornerTopLeft|CornerFill)
	d.corner(uint8(right-c), uint8(y+c), c, CornerTopRight|CornerFill)
	d.corner(uint8(right-c), uint8(bottom-c), c, CornerBottomRight|CornerFill)
	d.corner(uint8(x+c), uint8(bottom-c), c, CornerBottomLeft|CornerFill)

	// Middle band at full width, then the strips between the corners.
	d.paintRect(uint8(x), uint8(y+c+1), w, h-2*c-2)
	d.paintRect(uint8(x+c+1), uint8(y), w-2*c-2, c+1)
	d.paintRect(uint8(x+c+1), uint8(bottom-c), w-2*c-2, c+1)
}
