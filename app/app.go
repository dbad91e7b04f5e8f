package app

import (
	"fmt"
	"runtime/debug"
	"time"

	"monogfx/fonts"
	"monogfx/hal"
	"monogfx/ssd1306"
)

type Config struct {
	// Scene is one of Scenes; empty selects "keypad".
	Scene    string
	Address  uint16
	Contrast uint8

	// Delay replaces time.Sleep for the panel power-up waits.
	Delay func(time.Duration)
}

type system struct {
	h     hal.HAL
	log   hal.Logger
	dev   *ssd1306.Device
	scene scene

	started bool
	failing bool
	panic   error
}

// New initializes the application with default config and returns its step
// function.
func New(h hal.HAL) func() error {
	return NewWithConfig(h, Config{})
}

// Run drives the application forever (TinyGo/native entrypoint).
func Run(h hal.HAL) {
	RunWithConfig(h, Config{})
}

func NewWithConfig(h hal.HAL, cfg Config) func() error {
	s, err := newSystem(h, cfg)
	if err != nil {
		return func() error { return err }
	}
	return s.step
}

func RunWithConfig(h hal.HAL, cfg Config) {
	step := NewWithConfig(h, cfg)
	for {
		if err := step(); err != nil {
			h.Logger().WriteLineString("app: " + err.Error())
			select {}
		}
		time.Sleep(10 * time.Millisecond)
	}
}

func newSystem(h hal.HAL, cfg Config) (*system, error) {
	dev, err := ssd1306.New(h.Bus(), ssd1306.Config{
		Address:  cfg.Address,
		Contrast: cfg.Contrast,
		Delay:    cfg.Delay,
	})
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	dev.SetFont(fonts.Small())

	sc, ok := newScene(cfg.Scene)
	if !ok {
		h.Logger().WriteLineString(fmt.Sprintf("app: unknown scene %q, using keypad", cfg.Scene))
	}
	size := dev.Size()
	h.Logger().WriteLineString(fmt.Sprintf("display: ssd1306 %dx%d", size.Width, size.Height))
	return &system{h: h, log: h.Logger(), dev: dev, scene: sc}, nil
}

func (s *system) step() (err error) {
	if s.panic != nil {
		return s.panic
	}
	defer func() {
		if r := recover(); r != nil {
			s.showPanic(r, debug.Stack())
			s.panic = fmt.Errorf("panic: %v", r)
			err = s.panic
		}
	}()

	if !s.started {
		if err := s.dev.Start(); err != nil {
			s.fail("start", err)
			return nil
		}
		s.started = true
		s.scene.start(s.dev)
		s.log.WriteLineString("app: scene " + s.scene.name())
	}

	if k := s.h.Keypad().GetKey(); k != 0 {
		s.log.WriteLineString(fmt.Sprintf("keypad: %c", k))
		s.scene.key(s.dev, k)
	}

	if err := s.dev.Flush(); err != nil {
		s.fail("flush", err)
		return nil
	}
	if s.failing {
		s.failing = false
		s.h.LED().Low()
		s.log.WriteLineString("display: recovered")
	}
	return nil
}

// fail reports the first of a run of display errors and lights the LED.
// The failed operation is retried on the next step.
func (s *system) fail(op string, err error) {
	if s.failing {
		return
	}
	s.failing = true
	s.h.LED().High()
	s.log.WriteLineString(fmt.Sprintf("display: %s failed: %v", op, err))
}
