package hal

import (
	"errors"

	"tinygo.org/x/drivers"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// LED is a minimal output pin abstraction.
type LED interface {
	High()
	Low()
}

// Keypad reports key presses from a 4x4 matrix keypad.
//
// GetKey returns the key label ('0'-'9', 'A'-'D', '*', '#') once per press,
// and 0 when no new key is down.
type Keypad interface {
	GetKey() byte
}

var (
	ErrNotImplemented = errors.New("not implemented")

	// ErrNoAck is returned by emulated buses when no device answers.
	ErrNoAck = errors.New("i2c: no ack")
)

// KeyLabels lists keypad labels in row-major order, top left first.
const KeyLabels = "123A456B789C*0#D"

// IsKey reports whether b is a keypad label.
func IsKey(b byte) bool {
	for i := 0; i < len(KeyLabels); i++ {
		if KeyLabels[i] == b {
			return true
		}
	}
	return false
}

// HAL provides the only contact point between the application and the board.
type HAL interface {
	Logger() Logger
	LED() LED
	Bus() drivers.I2C
	Keypad() Keypad
}
