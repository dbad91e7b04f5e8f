package fonts

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Replacement stands in for runes the charmap cannot encode.
const Replacement = '?'

// Encode converts UTF-8 text into one byte per rune using cm, ready for
// gfx.Display.DrawString. ASCII passes through; without a charmap every
// other rune becomes Replacement.
func Encode(cm *charmap.Charmap, s string) string {
	buf := make([]byte, 0, len(s))
	for _, r := range s {
		switch {
		case r < utf8.RuneSelf:
			buf = append(buf, byte(r))
		case cm != nil:
			b, ok := cm.EncodeRune(r)
			if !ok {
				b = Replacement
			}
			buf = append(buf, b)
		default:
			buf = append(buf, Replacement)
		}
	}
	return string(buf)
}

// Charmap returns the code page for a short name: "latin1", "cp1251",
// "koi8r" or "" for none. ok is false for unknown names.
func Charmap(name string) (cm *charmap.Charmap, ok bool) {
	switch name {
	case "", "ascii":
		return nil, true
	case "latin1":
		return charmap.ISO8859_1, true
	case "cp1251":
		return charmap.Windows1251, true
	case "koi8r":
		return charmap.KOI8R, true
	}
	return nil, false
}
