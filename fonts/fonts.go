// Package fonts builds gfx.Font tables from tinyfont fonts and x/image font
// faces, and transcodes UTF-8 text into the single-byte codes those tables
// are indexed by.
package fonts

import (
	"image/color"
	"sync"
	"unicode/utf8"

	"monogfx/gfx"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/text/encoding/charmap"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	smallOnce sync.Once
	small     *gfx.Font

	fixedOnce sync.Once
	fixed7x13 *gfx.Font
)

// Small is proggy TinySZ 8pt covering printable ASCII.
func Small() *gfx.Font {
	smallOnce.Do(func() {
		small = FromFonter(&proggy.TinySZ8pt7b, nil, 0x20, 0x7E)
	})
	return small
}

// Fixed7x13 is the X11 misc-fixed 7x13 face covering printable ASCII.
func Fixed7x13() *gfx.Font {
	fixedOnce.Do(func() {
		fixed7x13 = FromFace(basicfont.Face7x13, nil, 0x20, 0x7E)
	})
	return fixed7x13
}

// codeRune maps a font code to the rune it stands for. Without a charmap
// codes are runes.
func codeRune(cm *charmap.Charmap, code uint16) rune {
	if cm == nil || code > 0xFF {
		return rune(code)
	}
	return cm.DecodeByte(byte(code))
}

// FromFonter renders every glyph of f for codes first..last into a gfx.Font.
// Codes are mapped to runes through cm (nil: code is the rune). Runes the
// font does not have become empty glyphs with no advance.
func FromFonter(f tinyfont.Fonter, cm *charmap.Charmap, first, last uint16) *gfx.Font {
	var b builder
	b.start(first, last, f.GetYAdvance())
	for code := int(first); code <= int(last); code++ {
		r := codeRune(cm, uint16(code))
		if r == utf8.RuneError {
			b.add(gfx.Glyph{}, nil)
			continue
		}
		g := f.GetGlyph(r)
		info := g.Info()
		if info.Rune != r {
			b.add(gfx.Glyph{}, nil)
			continue
		}

		glyph := gfx.Glyph{
			Width:    uint8(info.Width),
			Height:   uint8(info.Height),
			XAdvance: uint8(info.XAdvance),
			XOffset:  int8(info.XOffset),
			YOffset:  int8(info.YOffset),
		}
		c := newGlyphCanvas(int(glyph.Width), int(glyph.Height))
		g.Draw(c, -int16(glyph.XOffset), -int16(glyph.YOffset), color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF})
		b.add(glyph, c.at)
	}
	return b.font()
}

// builder packs glyph bitmaps back to back, MSB first.
type builder struct {
	f gfx.Font
}

func (b *builder) start(first, last uint16, yAdvance uint8) {
	b.f = gfx.Font{
		First:    first,
		Last:     last,
		YAdvance: yAdvance,
		Glyphs:   make([]gfx.Glyph, 0, int(last)-int(first)+1),
	}
}

func (b *builder) add(g gfx.Glyph, lit func(x, y int) bool) {
	g.BitmapOffset = uint16(len(b.f.Bitmap))
	if lit != nil {
		var acc byte
		n := 0
		for y := 0; y < int(g.Height); y++ {
			for x := 0; x < int(g.Width); x++ {
				if lit(x, y) {
					acc |= 0x80 >> (n & 7)
				}
				n++
				if n&7 == 0 {
					b.f.Bitmap = append(b.f.Bitmap, acc)
					acc = 0
				}
			}
		}
		if n&7 != 0 {
			b.f.Bitmap = append(b.f.Bitmap, acc)
		}
	}
	b.f.Glyphs = append(b.f.Glyphs, g)
}

func (b *builder) font() *gfx.Font {
	f := b.f
	return &f
}

// glyphCanvas is a drivers.Displayer that records one glyph box.
type glyphCanvas struct {
	w, h int
	px   []bool
}

func newGlyphCanvas(w, h int) *glyphCanvas {
	return &glyphCanvas{w: w, h: h, px: make([]bool, w*h)}
}

func (c *glyphCanvas) Size() (x, y int16) { return int16(c.w), int16(c.h) }

func (c *glyphCanvas) SetPixel(x, y int16, col color.RGBA) {
	if x < 0 || y < 0 || int(x) >= c.w || int(y) >= c.h {
		return
	}
	c.px[int(y)*c.w+int(x)] = true
}

func (c *glyphCanvas) Display() error { return nil }

func (c *glyphCanvas) at(x, y int) bool { return c.px[y*c.w+x] }
