//go:build !tinygo && cgo

package hal

import (
	"os"

	"monogfx/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Scale int
	Panel PanelConfig
}

// RunWindow starts a desktop window that shows the emulated panel and feeds
// typed keypad labels to the keypad. It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error, cfg WindowConfig) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 4
	}
	h := newHost(os.Stdout, cfg.Panel)
	step := newApp(h)

	w, ht := h.panel.Size()
	g := &hostGame{h: h, step: step, pix: make([]byte, w*ht*4)}
	ebiten.SetWindowTitle("monogfx (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(w*cfg.Scale, ht*cfg.Scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	img   *ebiten.Image
	pix   []byte
	chars []rune
	step  func() error
}

func (g *hostGame) Update() error {
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		g.h.keys.press(r)
	}
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	snap := g.h.panel.Snapshot()
	b := snap.Bounds()
	if g.img == nil {
		g.img = ebiten.NewImage(b.Dx(), b.Dy())
	}

	for i, idx := range snap.Pix {
		c := Dark
		if idx == 1 {
			c = Lit
		}
		j := i * 4
		g.pix[j+0] = c.R
		g.pix[j+1] = c.G
		g.pix[j+2] = c.B
		g.pix[j+3] = c.A
	}

	g.img.WritePixels(g.pix)
	screen.DrawImage(g.img, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.panel.Size()
}
