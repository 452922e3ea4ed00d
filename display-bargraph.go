package main

import (
	"log"

	"dscheirer.com/bargraph/bargraph_backpack"
	"dscheirer.com/bargraph/i2c"
	"dscheirer.com/bargraph/periphio"
)

// stdLogger adapts the process logger to the driver's diag sink
type stdLogger struct{}

func (stdLogger) Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

type busCloser interface {
	Close() error
}

// ledBargraph is the real display: the backpack driver on whichever
// bus transport the settings pick
type ledBargraph struct {
	bg  *bargraph_backpack.Bargraph
	bus busCloser
}

func (lb *ledBargraph) OpenDisplay(settings configSettings) error {
	var bus bargraph_backpack.Bus
	switch settings.GetString(sI2CDriver) {
	case "periph":
		p, err := periphio.Open(settings.GetString(sPeriphBus))
		if err != nil {
			return err
		}
		bus, lb.bus = p, p
	default:
		raw, err := i2c.Open(settings.GetInt(sI2CBus), settings.GetBool(sI2CSim), stdLogger{})
		if err != nil {
			return err
		}
		bus, lb.bus = raw, raw
	}

	lb.bg = bargraph_backpack.Open(bus, settings.GetByte(sI2CAddr), settings.GetBool(sZeroChip))
	lb.bg.SetDiag(stdLogger{})
	return nil
}

func (lb *ledBargraph) CloseDisplay() {
	if lb.bus != nil {
		lb.bus.Close()
	}
}

func (lb *ledBargraph) Initialize(brightness int) error {
	return lb.bg.Initialize(brightness)
}

func (lb *ledBargraph) SetBar(bar int, color bargraph_backpack.BarColor) error {
	return lb.bg.SetBar(bar, color)
}

func (lb *ledBargraph) FillTo(bar int, color bargraph_backpack.BarColor) error {
	return lb.bg.FillTo(bar, color)
}

func (lb *ledBargraph) Clear() {
	lb.bg.Clear()
}

func (lb *ledBargraph) Draw() error {
	return lb.bg.Draw()
}

func (lb *ledBargraph) SetBrightness(level int) error {
	return lb.bg.SetBrightness(level)
}

func (lb *ledBargraph) SetBlinkRate(rate uint8) error {
	return lb.bg.SetBlinkRate(rate)
}

func (lb *ledBargraph) PowerUp() error {
	return lb.bg.PowerUp()
}

func (lb *ledBargraph) PowerDown() error {
	return lb.bg.PowerDown()
}
