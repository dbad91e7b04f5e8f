//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TerminalConfig controls the terminal runner.
type TerminalConfig struct {
	Hz    int
	Ticks uint64
	Panel PanelConfig

	// Log receives log lines. The terminal owns the screen, so nil discards.
	Log io.Writer

	// Screen overrides the terminal screen, mostly for tests.
	Screen tcell.Screen
}

// RunTerminal shows the emulated panel in the terminal with half blocks.
// Keypad labels typed on the keyboard are forwarded; Esc or Ctrl-C quits.
func RunTerminal(ctx context.Context, newApp func(HAL) func() error, cfg TerminalConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 30
	}
	if cfg.Log == nil {
		cfg.Log = io.Discard
	}

	s := cfg.Screen
	if s == nil {
		var err error
		if s, err = tcell.NewScreen(); err != nil {
			return fmt.Errorf("terminal: %w", err)
		}
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	defer s.Fini()

	h := newHost(cfg.Log, cfg.Panel)
	step := newApp(h)

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	t := time.NewTicker(time.Second / time.Duration(cfg.Hz))
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					return nil
				case tcell.KeyRune:
					h.keys.press(ev.Rune())
				}
			case *tcell.EventResize:
				s.Sync()
			}
		case <-t.C:
			if step != nil {
				if err := step(); err != nil {
					return err
				}
			}
			drawPanel(s, h.panel)
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return nil
			}
		}
	}
}

// drawPanel paints the panel in the top left corner of s.
func drawPanel(s tcell.Screen, p *Panel) {
	style := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(Lit.R), int32(Lit.G), int32(Lit.B))).
		Background(tcell.ColorBlack)

	img := p.Snapshot()
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.ColorIndexAt(x, y) == 1
			bottom := y+1 < b.Max.Y && img.ColorIndexAt(x, y+1) == 1
			s.SetContent(x, y/2, halfBlock(top, bottom), nil, style)
		}
	}
	s.Show()
}
