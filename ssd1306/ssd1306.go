// Package ssd1306 drives SSD1306 monochrome OLED controllers over I2C.
//
// Drawing goes to an in-memory paged framebuffer through the embedded
// gfx.Display; Flush sends only the pages and columns covering the dirty
// area.
package ssd1306

import (
	"errors"
	"fmt"
	"time"

	"monogfx/gfx"
	"monogfx/paged"

	"tinygo.org/x/drivers"
)

var (
	ErrInvalidSize         = errors.New("ssd1306: invalid panel size")
	ErrUnsupportedRotation = errors.New("ssd1306: unsupported rotation")
)

// Config selects the panel. Zero values pick a 128×64 panel at
// DefaultAddress.
type Config struct {
	Address  uint16
	Width    uint8
	Height   uint8
	Contrast uint8
	// Delay is used for the power-up waits. Defaults to time.Sleep.
	Delay func(time.Duration)
}

// Device is an SSD1306 panel with a local framebuffer.
type Device struct {
	*gfx.Display

	fb       *paged.Framebuffer
	bus      drivers.I2C
	addr     uint16
	contrast uint8
	delay    func(time.Duration)
	buf      [maxTx]byte

	// startLine is sent by the next Flush when scrollPending is set.
	startLine     uint8
	scrollPending bool
}

// New returns a Device for the panel described by cfg. The panel is not
// touched until Start.
func New(bus drivers.I2C, cfg Config) (*Device, error) {
	if cfg.Address == 0 {
		cfg.Address = DefaultAddress
	}
	if cfg.Width == 0 {
		cfg.Width = 128
	}
	if cfg.Height == 0 {
		cfg.Height = 64
	}
	if cfg.Contrast == 0 {
		cfg.Contrast = 0x2F
	}
	if cfg.Delay == nil {
		cfg.Delay = time.Sleep
	}
	if cfg.Width > 128 || cfg.Height > 64 || cfg.Height%8 != 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, cfg.Width, cfg.Height)
	}

	fb := paged.New(cfg.Width, cfg.Height)
	return &Device{
		Display:  gfx.New(fb, gfx.Size{Width: cfg.Width, Height: cfg.Height}),
		fb:       fb,
		bus:      bus,
		addr:     cfg.Address,
		contrast: cfg.Contrast,
		delay:    cfg.Delay,
	}, nil
}

// Start powers the panel up, turns it on and clears the local buffer. The
// panel RAM is only overwritten by the next Flush.
func (d *Device) Start() error {
	d.delay(30 * time.Millisecond)

	comPins := byte(0x12)
	if d.fb.Height() < 64 {
		comPins = 0x02
	}
	d.startLine, d.scrollPending = 0, false
	err := d.command(
		displayOff,
		setDisplayClockDiv, 0x80,
		setMultiplex, d.fb.Height()-1,
		setDisplayOffset, 0x00,
		setStartLine|0x00,
		chargePump, 0x14,
		memoryMode, pageAddressing,
		segRemap|0x01,
		comScanDec,
		setCOMPins, comPins,
		setContrast, 0x32,
		setBrightness, 0x80,
		setPrecharge, 0xF1,
		setVCOMDetect, 0x40,
		displayAllOnResume,
		normalDisplay,
		deactivateScroll,
		displayOn,
	)
	if err != nil {
		return fmt.Errorf("ssd1306: init: %w", err)
	}
	d.delay(10 * time.Millisecond)

	if err := d.SetDisplay(true); err != nil {
		return err
	}
	if err := d.SetContrast(d.contrast); err != nil {
		return err
	}
	d.Clear()
	return nil
}

// SetDisplay turns the panel on or off. RAM is kept while off.
func (d *Device) SetDisplay(on bool) error {
	cmd := byte(displayOff)
	if on {
		cmd = displayOn
	}
	if err := d.command(cmd); err != nil {
		return fmt.Errorf("ssd1306: display on=%v: %w", on, err)
	}
	return nil
}

// SetContrast sets the panel brightness.
func (d *Device) SetContrast(c uint8) error {
	if err := d.command(setContrast, c); err != nil {
		return fmt.Errorf("ssd1306: contrast: %w", err)
	}
	d.contrast = c
	return nil
}

// SetInverted swaps lit and unlit pixels on the panel without touching RAM.
func (d *Device) SetInverted(on bool) error {
	cmd := byte(normalDisplay)
	if on {
		cmd = invertDisplay
	}
	if err := d.command(cmd); err != nil {
		return fmt.Errorf("ssd1306: invert=%v: %w", on, err)
	}
	return nil
}

// SetStartLine queues a hardware scroll: the panel shows RAM row line at
// its top edge. It is sent by the next Flush.
func (d *Device) SetStartLine(line uint8) {
	d.startLine = line % d.fb.Height()
	d.scrollPending = true
}

// StartLine returns the last queued start line.
func (d *Device) StartLine() uint8 { return d.startLine }

// SetRotation flips the panel. Only Rotation0 and Rotation180 are
// possible without rotating the framebuffer.
func (d *Device) SetRotation(r drivers.Rotation) error {
	var cmds []byte
	switch r {
	case drivers.Rotation0:
		cmds = []byte{segRemap | 0x01, comScanDec}
	case drivers.Rotation180:
		cmds = []byte{segRemap, comScanInc}
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedRotation, r)
	}
	if err := d.command(cmds...); err != nil {
		return fmt.Errorf("ssd1306: rotation: %w", err)
	}
	return nil
}

// Framebuffer returns the local buffer.
func (d *Device) Framebuffer() *paged.Framebuffer { return d.fb }

// SetDrawMode selects how subsequent drawing combines with the buffer.
func (d *Device) SetDrawMode(m paged.Mode) { d.fb.SetMode(m) }

// DrawMode returns the current draw mode.
func (d *Device) DrawMode() paged.Mode { return d.fb.Mode() }

// Clear blanks the local buffer and marks the whole panel dirty.
func (d *Device) Clear() {
	d.fb.Clear()
	d.Invalidate()
}

// Flush sends the dirty area to the panel. On error the dirty area is kept
// so the next Flush resends it.
func (d *Device) Flush() error {
	if d.scrollPending {
		if err := d.command(setStartLine | d.startLine); err != nil {
			return fmt.Errorf("ssd1306: start line: %w", err)
		}
		d.scrollPending = false
	}

	dirty := d.Dirty()
	if dirty.Empty() {
		d.Validate()
		return nil
	}

	left := int(dirty.Origin.X)
	right := min(dirty.Right(), int(d.fb.Width()))
	first := int(dirty.Origin.Y) >> 3
	last := min((dirty.Bottom()-1)>>3, int(d.fb.Pages())-1)
	if dirty.Bottom() > int(d.fb.Height()) && d.fb.Wraps() {
		// Rows past the bottom landed on the top pages.
		first = 0
	}

	for p := first; left < right && p <= last; p++ {
		err := d.command(
			setPageStart|byte(p),
			setHighColumn|byte(left>>4),
			setLowColumn|byte(left&0x0F),
		)
		if err != nil {
			return fmt.Errorf("ssd1306: page %d address: %w", p, err)
		}

		row := d.fb.Page(uint8(p))[left:right]
		for len(row) > 0 {
			d.buf[0] = controlData
			n := copy(d.buf[1:], row)
			if err := d.bus.Tx(d.addr, d.buf[:n+1], nil); err != nil {
				return fmt.Errorf("ssd1306: page %d data: %w", p, err)
			}
			row = row[n:]
		}
	}

	d.Validate()
	return nil
}

func (d *Device) command(cmds ...byte) error {
	d.buf[0] = controlCommand
	n := copy(d.buf[1:], cmds)
	return d.bus.Tx(d.addr, d.buf[:n+1], nil)
}
