//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"monogfx/app"
	"monogfx/hal"
	"monogfx/internal/buildinfo"

	"github.com/muesli/termenv"
)

func main() {
	var (
		headless, term, dump, version bool
		hz                            int
		ticks                         uint64
		keys, snapshot                string
		failEvery                     int
		cfg                           app.Config
	)
	flag.BoolVar(&headless, "headless", false, "Run without a window.")
	flag.BoolVar(&term, "term", false, "Show the panel in the terminal.")
	flag.IntVar(&hz, "hz", 60, "Step rate in headless and terminal mode.")
	flag.Uint64Var(&ticks, "ticks", 0, "Stop after N steps in headless mode (0 = run forever).")
	flag.StringVar(&keys, "keys", "", "Keypad labels fed one per step in headless mode.")
	flag.BoolVar(&dump, "dump", false, "Print the panel to stdout when headless mode ends.")
	flag.StringVar(&snapshot, "snapshot", "", "Write the panel as BMP to this file when headless mode ends.")
	flag.IntVar(&failEvery, "fail-every", 0, "Fail every N-th bus transaction (0 = never).")
	flag.StringVar(&cfg.Scene, "scene", "keypad", "Scene to run: "+strings.Join(app.Scenes, ", ")+".")
	flag.BoolVar(&version, "version", false, "Print version and exit.")
	flag.Parse()

	if version {
		fmt.Println(buildinfo.String())
		return
	}

	panel := hal.PanelConfig{FailEvery: failEvery}
	if v := os.Getenv("MONOGFX_I2C_ADDR"); v != "" {
		addr, err := strconv.ParseUint(v, 0, 7)
		if err != nil {
			fmt.Fprintf(os.Stderr, "MONOGFX_I2C_ADDR: %v\n", err)
			os.Exit(2)
		}
		panel.Address = uint16(addr)
		cfg.Address = uint16(addr)
	}

	newApp := func(h hal.HAL) func() error {
		h.Logger().WriteLineString("monogfx " + buildinfo.Short())
		return app.NewWithConfig(h, cfg)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var err error
	switch {
	case headless:
		hc := hal.HeadlessConfig{
			Hz:       hz,
			Ticks:    ticks,
			Keys:     keys,
			Panel:    panel,
			Snapshot: snapshot,
		}
		if dump {
			hc.Dump = os.Stdout
			hc.Profile = termenv.ColorProfile()
		}
		err = hal.RunHeadless(ctx, newApp, hc)
	case term:
		err = hal.RunTerminal(ctx, newApp, hal.TerminalConfig{Hz: hz, Panel: panel})
	default:
		err = hal.RunWindow(newApp, hal.WindowConfig{Panel: panel})
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
