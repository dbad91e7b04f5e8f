package fonts

import (
	"monogfx/gfx"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"
)

// FromFace rasterizes face at the origin for codes first..last. Mask
// coverage of at least 50% counts as lit.
func FromFace(face font.Face, cm *charmap.Charmap, first, last uint16) *gfx.Font {
	var b builder
	b.start(first, last, uint8(face.Metrics().Height.Round()))
	for code := int(first); code <= int(last); code++ {
		r := codeRune(cm, uint16(code))
		dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok || mask == nil {
			b.add(gfx.Glyph{}, nil)
			continue
		}

		g := gfx.Glyph{
			Width:    uint8(dr.Dx()),
			Height:   uint8(dr.Dy()),
			XAdvance: uint8(advance.Round()),
			XOffset:  int8(dr.Min.X),
			YOffset:  int8(dr.Min.Y),
		}
		b.add(g, func(x, y int) bool {
			_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
			return a >= 0x8000
		})
	}
	return b.font()
}
