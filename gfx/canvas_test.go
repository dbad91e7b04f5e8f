package gfx

// canvas is a PixelSink that counts how often each pixel was written.
type canvas struct {
	hits   [256][256]uint8 // [x][y]
	pixels int
	hruns  int
	vruns  int
}

func (c *canvas) SetPixel(x, y uint8) {
	c.pixels++
	c.hits[x][y]++
}

func (c *canvas) SetHorizontalRun(left, right, y uint8) {
	c.hruns++
	for x := int(left); x <= int(right); x++ {
		c.hits[x][y]++
	}
}

func (c *canvas) SetVerticalRun(x, top, bottom uint8) {
	c.vruns++
	for y := int(top); y <= int(bottom); y++ {
		c.hits[x][y]++
	}
}

func (c *canvas) set(x, y int) bool { return c.hits[x][y] > 0 }

func (c *canvas) calls() int { return c.pixels + c.hruns + c.vruns }

func (c *canvas) count() int {
	n := 0
	for x := range c.hits {
		for y := range c.hits[x] {
			if c.hits[x][y] > 0 {
				n++
			}
		}
	}
	return n
}

func (c *canvas) maxHits() int {
	m := 0
	for x := range c.hits {
		for y := range c.hits[x] {
			m = max(m, int(c.hits[x][y]))
		}
	}
	return m
}

// bounds returns the smallest rect covering every written pixel.
func (c *canvas) bounds() Rect {
	var r Rect
	for x := range c.hits {
		for y := range c.hits[x] {
			if c.hits[x][y] > 0 {
				r = r.Union(R(uint8(x), uint8(y), 1, 1))
			}
		}
	}
	return r
}

// column returns the first and last written row of column x, or ok=false.
func (c *canvas) column(x int) (top, bottom int, ok bool) {
	top = -1
	for y := range c.hits[x] {
		if c.hits[x][y] > 0 {
			if top < 0 {
				top = y
			}
			bottom = y
		}
	}
	return top, bottom, top >= 0
}

func (c *canvas) sameAs(o *canvas) bool {
	for x := range c.hits {
		for y := range c.hits[x] {
			if (c.hits[x][y] > 0) != (o.hits[x][y] > 0) {
				return false
			}
		}
	}
	return true
}

// newTestDisplay returns a 128×64 display with an empty dirty area.
func newTestDisplay() (*Display, *canvas) {
	c := new(canvas)
	d := New(c, Size{Width: 128, Height: 64})
	d.Validate()
	return d, c
}
