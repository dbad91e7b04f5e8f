//go:build tinygo && !baremetal

package hal

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"tinygo.org/x/drivers"
)

type tinyGoHostHAL struct {
	logger *tinyGoHostLogger
	led    *tinyGoHostLED
	panel  *Panel
	keys   *hostKeypad
}

// New returns a TinyGo-on-host HAL implementation with an emulated panel.
//
// This is used by `tinygo run` targets like linux/wasm where there is no MCU
// pin mapping. Keys are read from stdin when it is readable.
func New() HAL {
	l := &tinyGoHostLogger{}
	h := &tinyGoHostHAL{
		logger: l,
		led:    &tinyGoHostLED{logger: l},
		panel:  NewPanel(PanelConfig{}),
		keys:   &hostKeypad{},
	}
	go h.readKeys(os.Stdin)
	return h
}

func (h *tinyGoHostHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHostHAL) LED() LED         { return h.led }
func (h *tinyGoHostHAL) Bus() drivers.I2C { return h.panel }
func (h *tinyGoHostHAL) Keypad() Keypad   { return h.keys }

func (h *tinyGoHostHAL) readKeys(r io.Reader) {
	var buf [16]byte
	for {
		n, err := r.Read(buf[:])
		h.keys.pressString(string(buf[:n]))
		if err != nil {
			return
		}
	}
}

type tinyGoHostLogger struct{}

func (l *tinyGoHostLogger) WriteLineString(s string) {
	println(s)
}

func (l *tinyGoHostLogger) WriteLineBytes(b []byte) {
	println(string(b))
}

type tinyGoHostLED struct {
	on     bool
	logger *tinyGoHostLogger
}

func (l *tinyGoHostLED) High() {
	l.on = true
	l.logger.WriteLineString(fmt.Sprintf("led: HIGH (tinygo/%s)", runtime.GOOS))
}

func (l *tinyGoHostLED) Low() {
	l.on = false
	l.logger.WriteLineString(fmt.Sprintf("led: LOW (tinygo/%s)", runtime.GOOS))
}
