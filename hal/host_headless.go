//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/image/bmp"
)

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64

	// Keys are fed to the keypad, one per tick.
	Keys string

	Panel PanelConfig

	// Log receives log lines; nil selects stdout.
	Log io.Writer

	// Dump, when set, receives a text rendering of the panel at exit.
	Dump    io.Writer
	Profile termenv.Profile

	// Snapshot names a BMP file written at exit.
	Snapshot string
}

// RunHeadless runs the application against the emulated panel without
// opening a window.
func RunHeadless(ctx context.Context, newApp func(HAL) func() error, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	if cfg.Log == nil {
		cfg.Log = os.Stdout
	}

	h := newHost(cfg.Log, cfg.Panel)
	step := newApp(h)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	keys := []rune(cfg.Keys)
	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return finishHeadless(h, cfg, ctx.Err())
		case <-t.C:
			if len(keys) > 0 {
				h.keys.press(keys[0])
				keys = keys[1:]
			}
			if step != nil {
				if err := step(); err != nil {
					return finishHeadless(h, cfg, err)
				}
			}
			tick++
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return finishHeadless(h, cfg, nil)
			}
		}
	}
}

func finishHeadless(h *hostHAL, cfg HeadlessConfig, err error) error {
	if cfg.Dump != nil {
		Dump(cfg.Dump, h.panel, cfg.Profile)
	}
	if cfg.Snapshot != "" {
		if serr := WriteSnapshot(cfg.Snapshot, h.panel); serr != nil && err == nil {
			err = serr
		}
	}
	return err
}

// Dump writes the panel as text, two pixel rows per line using half blocks.
func Dump(w io.Writer, p *Panel, profile termenv.Profile) {
	out := termenv.NewOutput(w, termenv.WithProfile(profile))
	fg := out.Color(fmt.Sprintf("#%02X%02X%02X", Lit.R, Lit.G, Lit.B))

	img := p.Snapshot()
	b := img.Bounds()
	line := make([]rune, 0, b.Dx())
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		line = line[:0]
		for x := b.Min.X; x < b.Max.X; x++ {
			top := img.ColorIndexAt(x, y) == 1
			bottom := y+1 < b.Max.Y && img.ColorIndexAt(x, y+1) == 1
			line = append(line, halfBlock(top, bottom))
		}
		fmt.Fprintln(w, out.String(string(line)).Foreground(fg).String())
	}
}

func halfBlock(top, bottom bool) rune {
	switch {
	case top && bottom:
		return '█'
	case top:
		return '▀'
	case bottom:
		return '▄'
	}
	return ' '
}

// WriteSnapshot saves what the panel shows as a BMP file.
func WriteSnapshot(path string, p *Panel) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := bmp.Encode(f, p.Snapshot()); err != nil {
		f.Close()
		return fmt.Errorf("snapshot %s: %w", path, err)
	}
	return f.Close()
}
