//go:build tinygo && baremetal

package hal

import (
	"machine"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/keypad4x4"
)

type tinyGoHAL struct {
	logger *uartLogger
	led    *pinLED
	bus    *machine.I2C
	keys   *matrixKeypad
}

// New returns a Pico 2 (RP2350) HAL implementation.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// I2C: I2C0 on GP4 (SDA) / GP5 (SCL), 400 kHz.
// Keypad: rows GP10-GP13, columns GP18-GP21.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})

	ledPin := machine.LED
	ledPin.Configure(machine.PinConfig{Mode: machine.PinOutput})

	bus := machine.I2C0
	bus.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       machine.GP4,
		SCL:       machine.GP5,
	})

	kp := keypad4x4.NewDevice(
		machine.GP13, machine.GP12, machine.GP11, machine.GP10,
		machine.GP21, machine.GP20, machine.GP19, machine.GP18,
	)
	kp.Configure()

	return &tinyGoHAL{
		logger: &uartLogger{uart: uart},
		led:    &pinLED{pin: ledPin},
		bus:    bus,
		keys:   &matrixKeypad{dev: kp},
	}
}

func (h *tinyGoHAL) Logger() Logger   { return h.logger }
func (h *tinyGoHAL) LED() LED         { return h.led }
func (h *tinyGoHAL) Bus() drivers.I2C { return h.bus }
func (h *tinyGoHAL) Keypad() Keypad   { return h.keys }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

type pinLED struct {
	pin machine.Pin
}

func (l *pinLED) High() { l.pin.High() }
func (l *pinLED) Low()  { l.pin.Low() }

// matrixKeypad maps keypad4x4 codes to labels. The driver only reports a
// key again after it has been released.
type matrixKeypad struct {
	dev keypad4x4.Device
}

func (k *matrixKeypad) GetKey() byte {
	code := k.dev.GetKey()
	if code == keypad4x4.NoKeyPressed || int(code) >= len(KeyLabels) {
		return 0
	}
	return KeyLabels[code]
}
