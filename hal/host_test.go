//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
)

func TestPanelDecodesPageWrites(t *testing.T) {
	p := NewPanel(PanelConfig{})

	if err := p.Tx(0x3C, []byte{0x00, 0xAE, 0xA8, 0x3F, 0x81, 0x7F, 0xAF}, nil); err != nil {
		t.Fatalf("Tx: %v", err)
	}
	if !p.On() || p.Contrast() != 0x7F {
		t.Fatalf("expected display on with contrast 0x7f, got on=%v contrast=%#x", p.On(), p.Contrast())
	}

	// Page 1, column 0x25.
	if err := p.Tx(0x3C, []byte{0x00, 0xB1, 0x12, 0x05}, nil); err != nil {
		t.Fatalf("Tx: %v", err)
	}
	if err := p.Tx(0x3C, []byte{0x40, 0x81, 0x01}, nil); err != nil {
		t.Fatalf("Tx: %v", err)
	}
	if !p.Pixel(0x25, 8) || !p.Pixel(0x25, 15) || p.Pixel(0x25, 9) {
		t.Fatal("expected bits 0 and 7 of column 0x25 on page 1")
	}
	if !p.Pixel(0x26, 8) || p.Pixel(0x26, 15) {
		t.Fatal("expected the column to advance")
	}
	if ram := p.RAM(); ram[128+0x25] != 0x81 {
		t.Fatalf("expected 0x81 in ram, got %#x", ram[128+0x25])
	}
	if p.Writes() != 1 {
		t.Fatalf("expected 1 data write, got %d", p.Writes())
	}
}

func TestPanelNaksOtherAddresses(t *testing.T) {
	p := NewPanel(PanelConfig{})
	if err := p.Tx(0x3D, []byte{0x00, 0xAF}, nil); !errors.Is(err, ErrNoAck) {
		t.Fatalf("expected ErrNoAck, got %v", err)
	}
	if p.On() {
		t.Fatal("expected the foreign write ignored")
	}
}

func TestPanelFailEvery(t *testing.T) {
	p := NewPanel(PanelConfig{FailEvery: 3})
	var failed []int
	for i := 1; i <= 7; i++ {
		if err := p.Tx(0x3C, []byte{0x00, 0xE3}, nil); err != nil {
			if !errors.Is(err, ErrNoAck) {
				t.Fatalf("expected ErrNoAck, got %v", err)
			}
			failed = append(failed, i)
		}
	}
	if len(failed) != 2 || failed[0] != 3 || failed[1] != 6 {
		t.Fatalf("expected transactions 3 and 6 to fail, got %v", failed)
	}
}

func TestPanelSnapshot(t *testing.T) {
	p := NewPanel(PanelConfig{Width: 8, Height: 8})
	p.Tx(0x3C, []byte{0x40, 0x01}, nil)

	if img := p.Snapshot(); img.ColorIndexAt(0, 0) != 0 {
		t.Fatal("expected nothing shown while the display is off")
	}

	p.Tx(0x3C, []byte{0x00, 0xAF}, nil)
	img := p.Snapshot()
	if img.ColorIndexAt(0, 0) != 1 || img.ColorIndexAt(1, 0) != 0 {
		t.Fatal("expected only (0,0) lit")
	}

	p.Tx(0x3C, []byte{0x00, 0xA7}, nil)
	img = p.Snapshot()
	if img.ColorIndexAt(0, 0) != 0 || img.ColorIndexAt(1, 0) != 1 {
		t.Fatal("expected an inverted snapshot")
	}
}

func TestKeypadFiltersLabels(t *testing.T) {
	var k hostKeypad
	k.pressString("1a x#Dz*")

	var got []byte
	for b := k.GetKey(); b != 0; b = k.GetKey() {
		got = append(got, b)
	}
	if string(got) != "1A#D*" {
		t.Fatalf("expected 1A#D*, got %q", got)
	}
}

func TestDumpASCII(t *testing.T) {
	p := NewPanel(PanelConfig{Width: 4, Height: 4})
	p.Tx(0x3C, []byte{0x00, 0xAF}, nil)
	// Column 0 rows 0,1; column 1 row 0; column 2 row 3.
	p.Tx(0x3C, []byte{0x40, 0x03, 0x01, 0x08, 0x00}, nil)

	var buf bytes.Buffer
	Dump(&buf, p, termenv.Ascii)

	out := buf.String()
	if strings.ContainsRune(out, '\x1b') {
		t.Fatalf("expected no escape sequences, got %q", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != "█▀  " || lines[1] != "  ▄ " {
		t.Fatalf("unexpected dump %q", lines)
	}
}

func TestRunHeadless(t *testing.T) {
	dir := t.TempDir()
	snap := filepath.Join(dir, "panel.bmp")

	var log, dump bytes.Buffer
	var keys []byte
	cfg := HeadlessConfig{
		Hz:       1000,
		Ticks:    4,
		Keys:     "12q3",
		Log:      &log,
		Dump:     &dump,
		Profile:  termenv.Ascii,
		Snapshot: snap,
	}
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		h.Logger().WriteLineString("started")
		h.Bus().Tx(0x3C, []byte{0x00, 0xAF}, nil)
		return func() error {
			if k := h.Keypad().GetKey(); k != 0 {
				keys = append(keys, k)
			}
			return nil
		}
	}, cfg)
	if err != nil {
		t.Fatalf("RunHeadless: %v", err)
	}
	if string(keys) != "123" {
		t.Fatalf("expected keys 123, got %q", keys)
	}
	if !strings.Contains(log.String(), "started") {
		t.Fatalf("expected the log line, got %q", log.String())
	}
	if strings.Count(dump.String(), "\n") != 32 {
		t.Fatalf("expected 32 dump lines, got %q", dump.String())
	}
	b, err := os.ReadFile(snap)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if len(b) < 2 || string(b[:2]) != "BM" {
		t.Fatal("expected a BMP file")
	}
}

func TestRunHeadlessStopsOnStepError(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), func(HAL) func() error {
		return func() error { return boom }
	}, HeadlessConfig{Hz: 1000, Log: &bytes.Buffer{}})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
}

func TestDrawPanelTerminal(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer s.Fini()
	s.SetSize(80, 40)

	p := NewPanel(PanelConfig{Width: 8, Height: 8})
	p.Tx(0x3C, []byte{0x00, 0xAF}, nil)
	p.Tx(0x3C, []byte{0x40, 0x03, 0x02}, nil)
	drawPanel(s, p)

	cells, w, _ := s.GetContents()
	rune0 := func(x, y int) rune {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			return ' '
		}
		return c.Runes[0]
	}
	if rune0(0, 0) != '█' || rune0(1, 0) != '▄' || rune0(2, 0) != ' ' || rune0(0, 1) != ' ' {
		t.Fatalf("unexpected cells %q %q %q", rune0(0, 0), rune0(1, 0), rune0(2, 0))
	}
}

func TestRunTerminalQuitsOnEscape(t *testing.T) {
	s := tcell.NewSimulationScreen("UTF-8")
	done := make(chan error, 1)
	go func() {
		done <- RunTerminal(context.Background(), func(h HAL) func() error {
			return func() error { return nil }
		}, TerminalConfig{Hz: 1000, Ticks: 100000, Screen: s})
	}()

	// Events posted before Init are dropped.
	for {
		if w, _ := s.Size(); w > 0 {
			break
		}
		time.Sleep(time.Millisecond)
	}
	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)
	if err := <-done; err != nil {
		t.Fatalf("RunTerminal: %v", err)
	}
}

func TestHostLEDLogs(t *testing.T) {
	var buf bytes.Buffer
	h := newHost(&buf, PanelConfig{})
	h.LED().High()
	if !h.led.isOn() {
		t.Fatal("expected the LED on")
	}
	h.LED().Low()
	if h.led.isOn() || buf.String() != "led: HIGH\nled: LOW\n" {
		t.Fatalf("unexpected log %q", buf.String())
	}
}
