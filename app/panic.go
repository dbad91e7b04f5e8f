package app

import (
	"fmt"
	"strings"

	"monogfx/paged"

	"tinygo.org/x/tinyfont/proggy"
	"tinygo.org/x/tinyterm"
)

// showPanic logs a recovered panic with its stack and prints the message
// on the panel through a terminal, which wraps long lines.
func (s *system) showPanic(v any, stack []byte) {
	s.log.WriteLineString(fmt.Sprintf("monogfx panic: %v", v))
	for _, line := range strings.Split(string(stack), "\n") {
		if line == "" {
			continue
		}
		s.log.WriteLineString(line)
	}

	s.dev.SetDrawMode(paged.ModeSet)
	s.dev.Clear()

	disp := s.dev.Displayer()
	term := newTerminal(disp)
	fmt.Fprintf(term, "panic:\n%v", v)

	if err := disp.Display(); err != nil {
		s.log.WriteLineString(fmt.Sprintf("display: panic screen: %v", err))
	}
}

// newTerminal starts a terminal at the top of d with the small font.
func newTerminal(d tinyterm.Displayer) *tinyterm.Terminal {
	term := tinyterm.NewTerminal(d)
	term.Configure(&tinyterm.Config{
		Font:       &proggy.TinySZ8pt7b,
		FontHeight: termLineHeight,
		FontOffset: termBaseline,
	})
	return term
}

const (
	termLineHeight = 10
	termBaseline   = 7
)
