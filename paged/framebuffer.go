// Package paged implements the bit-packed page layout used by SSD1306-class
// monochrome controllers: each byte holds 8 vertically stacked pixels, and
// a page is one row of such bytes.
package paged

// Mode selects how drawn pixels combine with the buffer.
type Mode uint8

const (
	ModeSet Mode = iota
	ModeClear
	ModeInvert
)

func (m Mode) String() string {
	switch m {
	case ModeSet:
		return "set"
	case ModeClear:
		return "clear"
	case ModeInvert:
		return "invert"
	}
	return "unknown"
}

// Framebuffer is a width×height monochrome buffer, ceil(height/8) pages of
// width bytes. Byte x+page*width bit y&7 holds pixel (x, y), with
// page = (y>>3) & (pages-1) when the page count is a power of two: rows
// past the last page fold back onto the first. Other page counts drop rows
// at or below height. Columns at or past width are always dropped.
//
// It implements gfx.PixelSink.
type Framebuffer struct {
	width  uint8
	height uint8
	pages  uint8
	mode   Mode
	buf    []byte
}

// New allocates a cleared framebuffer.
func New(width, height uint8) *Framebuffer {
	pages := uint8((int(height) + 7) / 8)
	return &Framebuffer{
		width:  width,
		height: height,
		pages:  pages,
		buf:    make([]byte, int(width)*int(pages)),
	}
}

func (f *Framebuffer) Width() uint8  { return f.width }
func (f *Framebuffer) Height() uint8 { return f.height }
func (f *Framebuffer) Pages() uint8  { return f.pages }

// Bytes returns the backing buffer. It is not a copy.
func (f *Framebuffer) Bytes() []byte { return f.buf }

// Page returns the bytes of page p, or nil if p is out of range.
func (f *Framebuffer) Page(p uint8) []byte {
	if p >= f.pages {
		return nil
	}
	off := int(p) * int(f.width)
	return f.buf[off : off+int(f.width)]
}

// Mode returns the current draw mode.
func (f *Framebuffer) Mode() Mode { return f.mode }

// SetMode changes how subsequent pixels are combined.
func (f *Framebuffer) SetMode(m Mode) { f.mode = m }

// Clear zeroes every pixel regardless of mode.
func (f *Framebuffer) Clear() {
	for i := range f.buf {
		f.buf[i] = 0
	}
}

// Wraps reports whether rows fold modulo the page count.
func (f *Framebuffer) Wraps() bool {
	return f.pages != 0 && f.pages&(f.pages-1) == 0
}

// page maps row y to its page, or reports false when y is dropped.
func (f *Framebuffer) page(y uint8) (uint8, bool) {
	if f.Wraps() {
		return (y >> 3) & (f.pages - 1), true
	}
	if y >= f.height {
		return 0, false
	}
	return y >> 3, true
}

// Pixel reports whether (x, y) is lit, using the same row mapping as the
// drawing calls. Dropped pixels read as unlit.
func (f *Framebuffer) Pixel(x, y uint8) bool {
	p, ok := f.page(y)
	if x >= f.width || !ok {
		return false
	}
	return f.buf[f.index(x, p)]&(1<<(y&7)) != 0
}

func (f *Framebuffer) index(x, page uint8) int {
	return int(x) + int(page)*int(f.width)
}

func (f *Framebuffer) apply(i int, mask byte) {
	switch f.mode {
	case ModeClear:
		f.buf[i] &^= mask
	case ModeInvert:
		f.buf[i] ^= mask
	default:
		f.buf[i] |= mask
	}
}

// SetPixel draws one pixel.
func (f *Framebuffer) SetPixel(x, y uint8) {
	p, ok := f.page(y)
	if x >= f.width || !ok {
		return
	}
	f.apply(f.index(x, p), 1<<(y&7))
}

// SetHorizontalRun draws pixels left..right inclusive on row y.
func (f *Framebuffer) SetHorizontalRun(left, right, y uint8) {
	p, ok := f.page(y)
	if !ok || left >= f.width || right < left {
		return
	}
	right = min(right, f.width-1)

	mask := byte(1) << (y & 7)
	i := f.index(left, p)
	for n := int(right - left); n >= 0; n-- {
		f.apply(i, mask)
		i++
	}
}

// SetVerticalRun draws pixels top..bottom inclusive in column x. The
// partial first and last pages are masked, the pages in between are filled
// whole.
func (f *Framebuffer) SetVerticalRun(x, top, bottom uint8) {
	if x >= f.width || bottom < top {
		return
	}
	if !f.Wraps() {
		if top >= f.height {
			return
		}
		bottom = min(bottom, f.height-1)
	}

	topPage := int(top >> 3)
	bottomPage := int(bottom >> 3)
	topPattern := byte(0xFF) << (top & 7)
	// 0x02<<7 overflows to 0 and the subtraction wraps to 0xFF.
	bottomPattern := byte(0x02)<<(bottom&7) - 1

	if topPage == bottomPage {
		f.apply(f.index(x, f.fold(topPage)), topPattern&bottomPattern)
		return
	}
	f.apply(f.index(x, f.fold(topPage)), topPattern)
	for p := topPage + 1; p < bottomPage; p++ {
		f.apply(f.index(x, f.fold(p)), 0xFF)
	}
	f.apply(f.index(x, f.fold(bottomPage)), bottomPattern)
}

// fold maps an unmasked page number onto the buffer. Only wrapping buffers
// see page numbers past the last page.
func (f *Framebuffer) fold(p int) uint8 {
	if f.Wraps() {
		return uint8(p) & (f.pages - 1)
	}
	return uint8(p)
}
