package app

import (
	"fmt"

	"monogfx/gfx"
	"monogfx/paged"
	"monogfx/ssd1306"

	"tinygo.org/x/tinyterm"
)

type scene interface {
	name() string
	start(d *ssd1306.Device)
	key(d *ssd1306.Device, k byte)
}

// Scenes lists the scene names accepted by Config.Scene.
var Scenes = []string{"keypad", "shapes", "console"}

func newScene(name string) (scene, bool) {
	switch name {
	case "", "keypad":
		return &keypadScene{}, true
	case "shapes":
		return &shapesScene{}, true
	case "console":
		return &consoleScene{}, true
	}
	return &keypadScene{}, false
}

// keypadScene greets and echoes keys along one row, wiping the row when
// it is full.
type keypadScene struct {
	x uint8
}

// Glyphs sit on their baseline row, so the greeting ends at row 9 and the
// echo row fits rows 10..19, which is exactly what echoBand wipes.
var echoBand = gfx.R(0, 10, 128, 10)

const (
	greetBaseline = 9
	echoBaseline  = 19
	echoPitch     = 6
	echoWrap      = 120
)

func (s *keypadScene) name() string { return "keypad" }

func (s *keypadScene) start(d *ssd1306.Device) {
	d.MoveTo(gfx.Pt(0, greetBaseline))
	d.DrawString("Hello there!")
}

func (s *keypadScene) key(d *ssd1306.Device, k byte) {
	if s.x >= echoWrap {
		s.x = 0
		d.SetDrawMode(paged.ModeClear)
		d.PaintRect(echoBand)
	}
	d.SetDrawMode(paged.ModeSet)
	d.MoveTo(gfx.Pt(s.x, echoBaseline))
	d.DrawChar(uint16(k))
	s.x += echoPitch
}

// shapesScene shows every primitive; keys toggle an inverted banner.
type shapesScene struct {
	highlighted bool
}

var banner = gfx.R(2, 2, 60, 18)

func (s *shapesScene) name() string { return "shapes" }

func (s *shapesScene) start(d *ssd1306.Device) {
	d.FrameOval(gfx.R(20, 25, 50, 35))
	d.PaintOval(gfx.R(25, 30, 40, 25))

	fan := gfx.Pt(28, 30)
	for x := 0; x < 127; x += 8 {
		d.MoveTo(fan)
		d.LineTo(gfx.Pt(uint8(x), 63))
	}
	d.MoveTo(fan)
	d.LineTo(gfx.Pt(127, 63))

	d.FrameRoundRect(gfx.R(80, 2, 46, 24), 6)
	d.PaintRoundRect(gfx.R(86, 8, 34, 12), 4)
	d.FrameRect(gfx.R(80, 30, 46, 12))

	d.MoveTo(gfx.Pt(8, 14))
	d.DrawString("monogfx")
}

func (s *shapesScene) key(d *ssd1306.Device, _ byte) {
	d.SetDrawMode(paged.ModeInvert)
	d.PaintRoundRect(banner, 5)
	d.SetDrawMode(paged.ModeSet)
	s.highlighted = !s.highlighted
}

// consoleScene types keys into a terminal. '#' starts a new line, which
// scrolls the panel through its start line.
type consoleScene struct {
	term *tinyterm.Terminal
}

func (s *consoleScene) name() string { return "console" }

func (s *consoleScene) start(d *ssd1306.Device) {
	s.term = newTerminal(d.Displayer())
	fmt.Fprint(s.term, "monogfx console\n")
}

func (s *consoleScene) key(_ *ssd1306.Device, k byte) {
	if k == '#' {
		s.term.Write([]byte{'\n'})
		return
	}
	s.term.Write([]byte{k})
}
