package gfx

// FrameOval draws the outline of the ellipse inscribed in r.
func (d *Display) FrameOval(r Rect) {
	if r.Empty() {
		return
	}
	d.dirty.MarkRect(r)
	d.oval(r, false)
}

// PaintOval fills the ellipse inscribed in r.
func (d *Display) PaintOval(r Rect) {
	if r.Empty() {
		return
	}
	d.dirty.MarkRect(r)
	d.oval(r, true)
}

// oval is the integer midpoint ellipse over the inclusive box spanned by r.
// Two scan fronts start at the left and right edges and walk towards the
// center while the rows grow from the middle outwards. Every pixel is
// emitted once so the result inverts cleanly.
func (d *Display) oval(r Rect, fill bool) {
	a := int(r.Size.Width) - 1
	b := int(r.Size.Height) - 1
	x0 := int(r.Origin.X)
	x1 := x0 + a
	y0 := int(r.Origin.Y)
	b1 := b & 1

	dx := 4 * (1 - a) * b * b
	dy := 4 * (b1 + 1) * a * a
	err := dx + dy + b1*a*a
	y0 += (b + 1) / 2
	y1 := y0 - b1
	a = 8 * a * a
	b1 = 8 * b * b

	var left, right, top, bottom int
	for x0 <= x1 {
		left, right, top, bottom = x0, x1, y1, y0
		if !fill {
			d.plotQuad(left, right, top, bottom)
		}
		e2 := 2 * err
		if e2 <= dy {
			y0++
			y1--
			dy += a
			err += dy
		}
		if e2 >= dx || 2*err > dy {
			x0++
			x1--
			dx += b1
			err += dx
			// Rows only grow while x stays put, so the last span per
			// column covers all earlier ones.
			if fill && x0 <= x1 {
				d.spanPair(left, right, top, bottom)
			}
		}
	}

	// Flat ellipses run out of columns before reaching the top and
	// bottom rows. Finish the tips in the last column pair.
	for y0-y1 <= b {
		if !fill && y0 > bottom {
			d.plotQuad(left, right, y1, y0)
		}
		top = min(top, y1)
		bottom = max(bottom, y0)
		y0++
		y1--
	}
	if fill {
		d.spanPair(left, right, top, bottom)
	}
}

// plotQuad sets the four mirrored pixels of an ellipse step, skipping
// duplicates when the columns or rows coincide.
func (d *Display) plotQuad(left, right, top, bottom int) {
	d.sink.SetPixel(uint8(right), uint8(bottom))
	if left != right {
		d.sink.SetPixel(uint8(left), uint8(bottom))
	}
	if top == bottom {
		return
	}
	d.sink.SetPixel(uint8(left), uint8(top))
	if left != right {
		d.sink.SetPixel(uint8(right), uint8(top))
	}
}

func (d *Display) spanPair(left, right, top, bottom int) {
	d.sink.SetVerticalRun(uint8(left), uint8(top), uint8(bottom))
	if left != right {
		d.sink.SetVerticalRun(uint8(right), uint8(top), uint8(bottom))
	}
}
