package gfx

// Glyph describes one character inside a Font's shared bitmap.
//
// Bits are stored MSB first, row-major, packed across byte boundaries
// starting at byte BitmapOffset. XOffset/YOffset place the glyph box
// relative to the cursor (YOffset is usually negative: the cursor sits on
// the baseline).
type Glyph struct {
	BitmapOffset uint16
	Width        uint8
	Height       uint8
	XAdvance     uint8
	XOffset      int8
	YOffset      int8
}

// Font is a read-only bitmap font covering codes First..Last.
type Font struct {
	Bitmap   []byte
	Glyphs   []Glyph
	First    uint16
	Last     uint16
	YAdvance uint8
}

// Glyph returns the glyph for code, or nil when f is nil or the code is
// not covered.
func (f *Font) Glyph(code uint16) *Glyph {
	if f == nil || code < f.First || code > f.Last {
		return nil
	}
	i := int(code - f.First)
	if i >= len(f.Glyphs) {
		return nil
	}
	return &f.Glyphs[i]
}

// bit reports whether bit n of the glyph starting at byte off is set.
// Bits past the end of the bitmap read as unset.
func (f *Font) bit(off uint16, n int) bool {
	i := int(off) + n>>3
	if i >= len(f.Bitmap) {
		return false
	}
	return f.Bitmap[i]&(0x80>>(n&7)) != 0
}
