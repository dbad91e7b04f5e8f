//go:build tinygo

package main

import (
	"monogfx/app"
	"monogfx/hal"
)

func main() {
	app.Run(hal.New())
}
