package app

import (
	"errors"
	"strings"
	"testing"
	"time"

	"monogfx/hal"

	"tinygo.org/x/drivers"
)

type testLogger struct {
	lines []string
}

func (l *testLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *testLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

func (l *testLogger) count(substr string) int {
	n := 0
	for _, line := range l.lines {
		if strings.Contains(line, substr) {
			n++
		}
	}
	return n
}

type testLED struct {
	on bool
}

func (l *testLED) High() { l.on = true }
func (l *testLED) Low()  { l.on = false }

type testKeypad struct {
	queue   []byte
	explode bool
}

func (k *testKeypad) GetKey() byte {
	if k.explode {
		panic("keypad wiring")
	}
	if len(k.queue) == 0 {
		return 0
	}
	b := k.queue[0]
	k.queue = k.queue[1:]
	return b
}

// flakyBus fails every transaction while down is set.
type flakyBus struct {
	*hal.Panel
	down bool
}

func (b *flakyBus) Tx(addr uint16, w, r []byte) error {
	if b.down {
		return hal.ErrNoAck
	}
	return b.Panel.Tx(addr, w, r)
}

type testHAL struct {
	log  testLogger
	led  testLED
	bus  flakyBus
	keys testKeypad
}

func newTestHAL() *testHAL {
	return &testHAL{bus: flakyBus{Panel: hal.NewPanel(hal.PanelConfig{})}}
}

func (h *testHAL) Logger() hal.Logger { return &h.log }
func (h *testHAL) LED() hal.LED       { return &h.led }
func (h *testHAL) Bus() drivers.I2C   { return &h.bus }
func (h *testHAL) Keypad() hal.Keypad { return &h.keys }

func noDelay(time.Duration) {}

// anyLit reports whether the panel has a set pixel in [x0,x1)x[y0,y1).
func anyLit(p *hal.Panel, x0, y0, x1, y1 int) bool {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if p.Pixel(x, y) {
				return true
			}
		}
	}
	return false
}

// rows copies the lit state of rows [y0,y1) across the whole panel.
func rows(p *hal.Panel, y0, y1 int) []bool {
	var lit []bool
	for y := y0; y < y1; y++ {
		for x := 0; x < 128; x++ {
			lit = append(lit, p.Pixel(x, y))
		}
	}
	return lit
}

func mustStep(t *testing.T, step func() error) {
	t.Helper()
	if err := step(); err != nil {
		t.Fatalf("step: %v", err)
	}
}

func TestKeypadSceneGreets(t *testing.T) {
	h := newTestHAL()
	step := NewWithConfig(h, Config{Delay: noDelay})
	mustStep(t, step)

	p := h.bus.Panel
	if !p.On() {
		t.Fatal("expected the display switched on")
	}
	if !anyLit(p, 0, 0, 128, 10) {
		t.Fatal("expected the greeting above row 10")
	}
	if anyLit(p, 0, 10, 128, 64) {
		t.Fatal("expected nothing below the greeting")
	}
	if h.log.count("scene keypad") != 1 {
		t.Fatalf("expected the scene logged, got %q", h.log.lines)
	}
}

func TestKeypadSceneEchoesAndWraps(t *testing.T) {
	h := newTestHAL()
	step := NewWithConfig(h, Config{Delay: noDelay})
	mustStep(t, step)
	p := h.bus.Panel
	greeting := rows(p, 0, 10)

	h.keys.queue = []byte{'1'}
	mustStep(t, step)
	if !anyLit(p, 0, 10, 6, 20) {
		t.Fatal("expected the key echoed at the start of the row")
	}

	// 20 keys fill the row up to x=120; the next one wipes it.
	for i := 0; i < 19; i++ {
		h.keys.queue = []byte{'8'}
		mustStep(t, step)
	}
	if !anyLit(p, 114, 10, 128, 20) {
		t.Fatal("expected the 20th key at x=114")
	}
	h.keys.queue = []byte{'#'}
	mustStep(t, step)
	if anyLit(p, 8, 10, 128, 20) {
		t.Fatal("expected the row wiped after wrapping")
	}
	if !anyLit(p, 0, 10, 6, 20) {
		t.Fatal("expected the wrapped key at x=0")
	}
	if anyLit(p, 0, 20, 128, 64) {
		t.Fatal("expected the echo row to stay above row 20")
	}
	after := rows(p, 0, 10)
	for i := range greeting {
		if greeting[i] != after[i] {
			t.Fatalf("expected the greeting kept, pixel (%d,%d) changed", i%128, i/128)
		}
	}
}

func TestFlushFailureAndRecovery(t *testing.T) {
	h := newTestHAL()
	step := NewWithConfig(h, Config{Delay: noDelay})
	mustStep(t, step)

	h.bus.down = true
	h.keys.queue = []byte{'5'}
	mustStep(t, step)
	mustStep(t, step)
	if !h.led.on {
		t.Fatal("expected the LED lit while failing")
	}
	if n := h.log.count("flush failed"); n != 1 {
		t.Fatalf("expected one failure line, got %d", n)
	}
	if anyLit(h.bus.Panel, 0, 10, 6, 20) {
		t.Fatal("expected nothing delivered while the bus is down")
	}

	h.bus.down = false
	mustStep(t, step)
	if h.led.on {
		t.Fatal("expected the LED off after recovery")
	}
	if h.log.count("recovered") != 1 {
		t.Fatalf("expected a recovery line, got %q", h.log.lines)
	}
	if !anyLit(h.bus.Panel, 0, 10, 6, 20) {
		t.Fatal("expected the pending key delivered on retry")
	}
}

func TestStartRetried(t *testing.T) {
	h := newTestHAL()
	h.bus.down = true
	step := NewWithConfig(h, Config{Delay: noDelay})
	mustStep(t, step)
	if h.bus.Panel.On() || !h.led.on || h.log.count("start failed") != 1 {
		t.Fatalf("expected a start failure, got %q", h.log.lines)
	}

	h.bus.down = false
	mustStep(t, step)
	if !h.bus.Panel.On() || h.led.on {
		t.Fatal("expected the panel started on retry")
	}
}

func TestShapesSceneToggle(t *testing.T) {
	h := newTestHAL()
	step := NewWithConfig(h, Config{Scene: "shapes", Delay: noDelay})
	mustStep(t, step)

	p := h.bus.Panel
	before := p.RAM()
	if !p.Pixel(28, 30) || !p.Pixel(127, 63) {
		t.Fatal("expected the line fan drawn")
	}

	h.keys.queue = []byte{'A'}
	mustStep(t, step)
	if !p.Pixel(banner.Right()/2, int(banner.Origin.Y)) {
		t.Fatal("expected the banner inverted")
	}

	h.keys.queue = []byte{'A'}
	mustStep(t, step)
	after := p.RAM()
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("expected a second toggle to restore the frame, byte %d differs", i)
		}
	}
}

func TestConsoleSceneScrolls(t *testing.T) {
	h := newTestHAL()
	step := NewWithConfig(h, Config{Scene: "console", Delay: noDelay})
	mustStep(t, step)

	p := h.bus.Panel
	if !anyLit(p, 0, 0, 128, 10) {
		t.Fatal("expected the console header on the first line")
	}
	if p.StartLine() == 0 {
		t.Fatal("expected the newline to move the start line")
	}

	h.keys.queue = []byte{'7'}
	mustStep(t, step)
	if !anyLit(p, 0, 10, 6, 20) {
		t.Fatal("expected the key on the second line")
	}

	h.keys.queue = []byte{'#'}
	mustStep(t, step)
	h.keys.queue = []byte{'8'}
	mustStep(t, step)
	if !anyLit(p, 0, 20, 6, 30) {
		t.Fatal("expected '#' to start the third line")
	}
}

func TestUnknownSceneFallsBack(t *testing.T) {
	h := newTestHAL()
	step := NewWithConfig(h, Config{Scene: "nope", Delay: noDelay})
	mustStep(t, step)
	if h.log.count("unknown scene") != 1 || h.log.count("scene keypad") != 1 {
		t.Fatalf("expected a fallback to keypad, got %q", h.log.lines)
	}
}

func TestPanicShownOnPanel(t *testing.T) {
	h := newTestHAL()
	step := NewWithConfig(h, Config{Delay: noDelay})
	mustStep(t, step)

	h.keys.explode = true
	err := step()
	if err == nil || !strings.Contains(err.Error(), "keypad wiring") {
		t.Fatalf("expected the panic as an error, got %v", err)
	}
	if h.log.count("monogfx panic: keypad wiring") != 1 {
		t.Fatalf("expected the panic logged, got %q", h.log.lines)
	}
	if !anyLit(h.bus.Panel, 0, 0, 128, 64) {
		t.Fatal("expected the panic screen")
	}
	if err2 := step(); !errors.Is(err2, err) {
		t.Fatalf("expected later steps to keep failing, got %v", err2)
	}
}
