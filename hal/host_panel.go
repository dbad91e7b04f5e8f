//go:build !baremetal

package hal

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"tinygo.org/x/drivers/pixel"
)

// PanelConfig describes the emulated display. Zero values select a 128x64
// panel at 0x3C.
type PanelConfig struct {
	Address uint16
	Width   int
	Height  int

	// FailEvery makes every n-th transaction fail with ErrNoAck.
	FailEvery int
}

// Panel emulates an SSD1306 on an I2C bus in page addressing mode.
// It keeps display RAM and a pixel.Image showing what the glass shows.
type Panel struct {
	mu  sync.Mutex
	cfg PanelConfig

	ram   []byte
	glass pixel.Image[pixel.Monochrome]

	page, col int
	on        bool
	inverted  bool
	contrast  uint8

	// startLine is the RAM row shown at the top edge. mirrorX and mirrorY
	// are set by the A0 and C0 scan directions.
	startLine        int
	mirrorX, mirrorY bool

	txs    int
	writes uint64
}

// Lit and Dark are the Snapshot palette entries.
var (
	Dark = color.RGBA{A: 0xFF}
	Lit  = color.RGBA{R: 0x7F, G: 0xDB, B: 0xFF, A: 0xFF}
)

func NewPanel(cfg PanelConfig) *Panel {
	if cfg.Address == 0 {
		cfg.Address = 0x3C
	}
	if cfg.Width <= 0 {
		cfg.Width = 128
	}
	if cfg.Height <= 0 {
		cfg.Height = 64
	}
	return &Panel{
		cfg:   cfg,
		ram:   make([]byte, cfg.Width*((cfg.Height+7)/8)),
		glass: pixel.NewImage[pixel.Monochrome](cfg.Width, cfg.Height),
	}
}

func (p *Panel) Size() (w, h int) { return p.cfg.Width, p.cfg.Height }

// Tx implements drivers.I2C. Only writes are decoded; r is left untouched.
func (p *Panel) Tx(addr uint16, w, r []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.txs++
	if addr != p.cfg.Address {
		return fmt.Errorf("hal: address %#x: %w", addr, ErrNoAck)
	}
	if p.cfg.FailEvery > 0 && p.txs%p.cfg.FailEvery == 0 {
		return fmt.Errorf("hal: address %#x transaction %d: %w", addr, p.txs, ErrNoAck)
	}
	if len(w) == 0 {
		return nil
	}
	switch w[0] {
	case 0x00:
		p.commands(w[1:])
	case 0x40:
		p.data(w[1:])
	default:
		return fmt.Errorf("hal: unknown control byte %#x", w[0])
	}
	return nil
}

// arity is the length of a command including its parameters.
func arity(c byte) int {
	switch c {
	case 0x20, 0x81, 0x82, 0x8D, 0xA8, 0xD3, 0xD5, 0xD9, 0xDA, 0xDB:
		return 2
	case 0x21, 0x22:
		return 3
	}
	return 1
}

func (p *Panel) commands(cmds []byte) {
	for i := 0; i < len(cmds); {
		c := cmds[i]
		n := arity(c)
		switch {
		case c <= 0x0F:
			p.col = p.col&0xF0 | int(c&0x0F)
		case c <= 0x1F:
			p.col = int(c&0x0F)<<4 | p.col&0x0F
		case c >= 0x40 && c <= 0x7F:
			p.startLine = int(c & 0x3F)
		case c >= 0xB0 && c <= 0xB7:
			p.page = int(c & 0x07)
		case c == 0xA0, c == 0xA1:
			p.mirrorX = c == 0xA0
		case c == 0xC0, c == 0xC8:
			p.mirrorY = c == 0xC0
		case c == 0xAE, c == 0xAF:
			p.on = c == 0xAF
		case c == 0xA6, c == 0xA7:
			p.inverted = c == 0xA7
		case c == 0x81 && i+1 < len(cmds):
			p.contrast = cmds[i+1]
		}
		i += n
	}
}

func (p *Panel) data(b []byte) {
	pages := len(p.ram) / p.cfg.Width
	for _, v := range b {
		if p.page < pages && p.col < p.cfg.Width {
			p.ram[p.page*p.cfg.Width+p.col] = v
			for bit := 0; bit < 8; bit++ {
				y := p.page*8 + bit
				if y < p.cfg.Height {
					p.glass.Set(p.col, y, pixel.Monochrome(v&(1<<bit) != 0))
				}
			}
		}
		p.col++
		if p.col >= p.cfg.Width {
			p.col = 0
		}
	}
	p.writes++
}

// Writes counts data transactions received so far.
func (p *Panel) Writes() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.writes
}

// On reports whether the display has been switched on.
func (p *Panel) On() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.on
}

// Contrast returns the last contrast value written.
func (p *Panel) Contrast() uint8 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.contrast
}

// Inverted reports whether the invert command is in effect.
func (p *Panel) Inverted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.inverted
}

// StartLine returns the RAM row shown at the top edge.
func (p *Panel) StartLine() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.startLine
}

// RAM returns a copy of display RAM, one byte per column per page.
func (p *Panel) RAM() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]byte(nil), p.ram...)
}

// Pixel reports whether the RAM bit for (x, y) is set, ignoring the
// display on and invert state.
func (p *Panel) Pixel(x, y int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if x < 0 || y < 0 || x >= p.cfg.Width || y >= p.cfg.Height {
		return false
	}
	return bool(p.glass.Get(x, y))
}

// Snapshot renders what the glass shows: nothing while the display is off,
// RAM contents otherwise, scrolled by the start line, mirrored by the scan
// directions and flipped when inverted. Index 1 is lit.
func (p *Panel) Snapshot() *image.Paletted {
	p.mu.Lock()
	defer p.mu.Unlock()

	img := image.NewPaletted(image.Rect(0, 0, p.cfg.Width, p.cfg.Height), color.Palette{Dark, Lit})
	if !p.on {
		return img
	}
	w, h := p.cfg.Width, p.cfg.Height
	for y := 0; y < h; y++ {
		ry := y
		if p.mirrorY {
			ry = h - 1 - y
		}
		ry = (ry + p.startLine) % h
		for x := 0; x < w; x++ {
			rx := x
			if p.mirrorX {
				rx = w - 1 - x
			}
			if bool(p.glass.Get(rx, ry)) != p.inverted {
				img.SetColorIndex(x, y, 1)
			}
		}
	}
	return img
}
