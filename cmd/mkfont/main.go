// Command mkfont converts a built-in font into Go source declaring a
// *gfx.Font table.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"go/token"
	"os"
	"strconv"

	"monogfx/fonts"
	"monogfx/gfx"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/text/encoding/charmap"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"
)

func main() {
	var (
		source  = flag.String("font", "proggy", "proggy|freemono9|basic7x13.")
		first   = flag.Uint("first", 0x20, "First code.")
		last    = flag.Uint("last", 0x7E, "Last code.")
		cmName  = flag.String("charmap", "", "latin1|cp1251|koi8r (empty: codes are runes).")
		name    = flag.String("name", "Font", "Name of the generated variable.")
		pkg     = flag.String("pkg", "fonts", "Package of the generated file.")
		outPath = flag.String("o", "", "Output file (default stdout).")
	)
	flag.Parse()

	if *first > *last || *last > 0xFFFF {
		fatalf("bad code range %#x..%#x", *first, *last)
	}
	if !token.IsIdentifier(*name) || !token.IsIdentifier(*pkg) {
		fatalf("bad identifier: -name %q -pkg %q", *name, *pkg)
	}
	cm, ok := fonts.Charmap(*cmName)
	if !ok {
		fatalf("unknown charmap: %s", *cmName)
	}

	f, err := load(*source, cm, uint16(*first), uint16(*last))
	if err != nil {
		fatalf("%v", err)
	}
	src, err := generate(*pkg, *name, *source, f)
	if err != nil {
		fatalf("generate: %v", err)
	}

	if err := writeOutput(*outPath, src); err != nil {
		fatalf("write: %v", err)
	}
}

// writeOutput writes src to path, or to stdout when path is empty. A failed
// Close is reported since it can mean a truncated file.
func writeOutput(path string, src []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(src)
		return err
	}
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := out.Write(src); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func fatalf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(2)
}

func load(source string, cm *charmap.Charmap, first, last uint16) (*gfx.Font, error) {
	switch source {
	case "proggy":
		return fonts.FromFonter(&proggy.TinySZ8pt7b, cm, first, last), nil
	case "freemono9":
		return fonts.FromFonter(&freemono.Bold9pt7b, cm, first, last), nil
	case "basic7x13":
		return fonts.FromFace(basicfont.Face7x13, cm, first, last), nil
	}
	return nil, fmt.Errorf("unknown font: %s", source)
}

// generate renders f as a gofmt-ed Go file.
func generate(pkg, name, source string, f *gfx.Font) ([]byte, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by mkfont -font %s; DO NOT EDIT.\n\n", source)
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintf(&b, "import \"monogfx/gfx\"\n\n")
	fmt.Fprintf(&b, "var %s = &gfx.Font{\n", name)
	fmt.Fprintf(&b, "First: %#x,\nLast: %#x,\nYAdvance: %d,\n", f.First, f.Last, f.YAdvance)

	b.WriteString("Bitmap: []byte{")
	for i, v := range f.Bitmap {
		if i%12 == 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "0x%02x, ", v)
	}
	b.WriteString("\n},\n")

	b.WriteString("Glyphs: []gfx.Glyph{\n")
	for i, g := range f.Glyphs {
		fmt.Fprintf(&b, "{BitmapOffset: %d, Width: %d, Height: %d, XAdvance: %d, XOffset: %d, YOffset: %d}, // %s\n",
			g.BitmapOffset, g.Width, g.Height, g.XAdvance, g.XOffset, g.YOffset, codeComment(int(f.First)+i))
	}
	b.WriteString("},\n}\n")

	return format.Source(b.Bytes())
}

func codeComment(code int) string {
	if code >= 0x20 && code < 0x7F {
		return strconv.QuoteRune(rune(code))
	}
	return fmt.Sprintf("%#x", code)
}
