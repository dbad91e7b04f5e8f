package gfx

// PixelSetter is the minimum a backend has to provide.
type PixelSetter interface {
	SetPixel(x, y uint8)
}

// PixelSink receives the pixels produced by a Display.
//
// Runs are inclusive of both ends. A run whose end precedes its start is
// empty. How a pixel is combined with the existing content (set, clear,
// invert) is up to the sink.
type PixelSink interface {
	PixelSetter
	SetHorizontalRun(left, right, y uint8)
	SetVerticalRun(x, top, bottom uint8)
}

// Runs returns p as a PixelSink. If p already implements the run methods
// it is returned as is; otherwise runs are drawn one pixel at a time.
func Runs(p PixelSetter) PixelSink {
	if s, ok := p.(PixelSink); ok {
		return s
	}
	return pixelRuns{p}
}

type pixelRuns struct {
	PixelSetter
}

func (p pixelRuns) SetHorizontalRun(left, right, y uint8) {
	for x := int(left); x <= int(right); x++ {
		p.SetPixel(uint8(x), y)
	}
}

func (p pixelRuns) SetVerticalRun(x, top, bottom uint8) {
	for y := int(top); y <= int(bottom); y++ {
		p.SetPixel(x, uint8(y))
	}
}
