// Package gfx rasterizes lines, rectangles, ovals, rounded rectangles and
// bitmap text for small monochrome displays.
//
// Coordinates are 8-bit and wrap modulo 256. Drawing never allocates and
// never blocks; pixels go to a PixelSink and the touched area accumulates in
// a dirty rectangle until the caller validates it after a flush.
package gfx

import "fmt"

// Point is a pixel position. The origin is the top-left corner.
type Point struct {
	X, Y uint8
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y uint8) Point { return Point{X: x, Y: y} }

// Add returns p+q with 8-bit wraparound.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Size is a width and height in pixels.
type Size struct {
	Width, Height uint8
}

// Empty reports whether the size covers no pixels.
func (s Size) Empty() bool { return s.Width == 0 || s.Height == 0 }

// Rect is an origin plus a size. Right and bottom edges are exclusive.
type Rect struct {
	Origin Point
	Size   Size
}

// R is shorthand for Rect{Point{x, y}, Size{w, h}}.
func R(x, y, w, h uint8) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: w, Height: h}}
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool { return r.Size.Empty() }

// Right is the exclusive right edge, computed without wrapping.
func (r Rect) Right() int { return int(r.Origin.X) + int(r.Size.Width) }

// Bottom is the exclusive bottom edge, computed without wrapping.
func (r Rect) Bottom() int { return int(r.Origin.Y) + int(r.Size.Height) }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	x, y := int(p.X), int(p.Y)
	return x >= int(r.Origin.X) && x < r.Right() && y >= int(r.Origin.Y) && y < r.Bottom()
}

// Union returns the smallest rectangle covering r and s. An empty operand
// is ignored. Sizes saturate at 255.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	left := min(r.Origin.X, s.Origin.X)
	top := min(r.Origin.Y, s.Origin.Y)
	right := max(r.Right(), s.Right())
	bottom := max(r.Bottom(), s.Bottom())
	return Rect{
		Origin: Point{X: left, Y: top},
		Size:   Size{Width: clampSize(right - int(left)), Height: clampSize(bottom - int(top))},
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("{%d,%d %dx%d}", r.Origin.X, r.Origin.Y, r.Size.Width, r.Size.Height)
}

func clampSize(v int) uint8 {
	switch {
	case v <= 0:
		return 0
	case v > 0xFF:
		return 0xFF
	}
	return uint8(v)
}
