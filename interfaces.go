package main

import (
	"github.com/stianeikeland/go-rpio"

	"dscheirer.com/bargraph/bargraph_backpack"
)

// display is the surface the effects loop drives; one real
// implementation over the backpack driver and one fake for tests
type display interface {
	OpenDisplay(settings configSettings) error
	CloseDisplay()
	Initialize(brightness int) error
	SetBar(bar int, color bargraph_backpack.BarColor) error
	FillTo(bar int, color bargraph_backpack.BarColor) error
	Clear()
	Draw() error
	SetBrightness(level int) error
	SetBlinkRate(rate uint8) error
	PowerUp() error
	PowerDown() error
}

type buttons interface {
	setupButtons(rt runtimeConfig) error
	readButtons(rt runtimeConfig) (map[string]rpio.State, error)
	closeButtons()
}
