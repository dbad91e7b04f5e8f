package ssd1306

import (
	"image/color"

	"monogfx/gfx"
	"monogfx/paged"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/pixel"
)

// Displayer adapts a Device to the tinygo drawing interfaces, so tinyfont
// and tinyterm can render into it. Light colors draw with the current
// mode, dark colors clear. Display flushes.
type Displayer struct {
	d *Device
}

// Displayer returns the device's drivers.Displayer view.
func (d *Device) Displayer() *Displayer { return &Displayer{d: d} }

func (p *Displayer) Size() (x, y int16) {
	s := p.d.Size()
	return int16(s.Width), int16(s.Height)
}

func (p *Displayer) SetPixel(x, y int16, c color.RGBA) {
	w, h := p.Size()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	p.with(c, func() { p.d.Display.SetPixel(uint8(x), uint8(y)) })
}

// FillRectangle paints the part of the rectangle that is on the panel.
func (p *Displayer) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	w, h := p.Size()
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+width, w), min(y+height, h)
	if x0 >= x1 || y0 >= y1 {
		return nil
	}
	r := gfx.R(uint8(x0), uint8(y0), uint8(x1-x0), uint8(y1-y0))
	p.with(c, func() { p.d.PaintRect(r) })
	return nil
}

// SetScroll moves the panel's start line. It takes effect on the next
// Display.
func (p *Displayer) SetScroll(line int16) {
	_, h := p.Size()
	line %= h
	if line < 0 {
		line += h
	}
	p.d.SetStartLine(uint8(line))
}

func (p *Displayer) SetRotation(r drivers.Rotation) error { return p.d.SetRotation(r) }

func (p *Displayer) Display() error { return p.d.Flush() }

// with runs draw in the current mode for light colors and in clear mode
// for dark ones.
func (p *Displayer) with(c color.RGBA, draw func()) {
	if pixel.NewMonochrome(c.R, c.G, c.B) {
		draw()
		return
	}
	mode := p.d.fb.Mode()
	p.d.fb.SetMode(paged.ModeClear)
	draw()
	p.d.fb.SetMode(mode)
}

var _ drivers.Displayer = (*Displayer)(nil)
