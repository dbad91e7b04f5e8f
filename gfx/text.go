package gfx

// Width returns the horizontal advance of code in the current font, or 0
// when there is no font or the code is not covered.
func (d *Display) Width(code uint16) uint8 {
	g := d.font.Glyph(code)
	if g == nil {
		return 0
	}
	return g.XAdvance
}

// StringWidth is the sum of Width over the bytes of text.
func (d *Display) StringWidth(text string) int {
	n := 0
	for i := 0; i < len(text); i++ {
		n += int(d.Width(uint16(text[i])))
	}
	return n
}

// DrawChar draws one glyph with its origin at the cursor and advances the
// cursor by the glyph's XAdvance. The whole glyph box counts as dirty.
func (d *Display) DrawChar(code uint16) {
	g := d.font.Glyph(code)
	if g == nil {
		return
	}

	x0 := uint8(int(d.cursor.X) + int(g.XOffset))
	y0 := uint8(int(d.cursor.Y) + int(g.YOffset))
	w, h := int(g.Width), int(g.Height)
	d.dirty.Mark(x0, y0, w, h)

	n := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if d.font.bit(g.BitmapOffset, n) {
				d.sink.SetPixel(x0+uint8(x), y0+uint8(y))
			}
			n++
		}
	}
	d.cursor.X += g.XAdvance
}

// DrawString draws each byte of text as a character code.
func (d *Display) DrawString(text string) {
	for i := 0; i < len(text); i++ {
		d.DrawChar(uint16(text[i]))
	}
}
