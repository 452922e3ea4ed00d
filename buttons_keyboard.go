package main

import (
	"errors"

	// keyboard for sim mode
	"github.com/nsf/termbox-go"
	"github.com/stianeikeland/go-rpio"
)

// simButtons maps keypresses to buttons when there is no GPIO
type simButtons struct {
	buttons map[string]button
}

func (sb *simButtons) setupButtons(rt runtimeConfig) error {
	if err := termbox.Init(); err != nil {
		return err
	}

	sb.buttons = make(map[string]button)
	for name, bm := range defaultButtons(rt.settings) {
		sb.buttons[name] = button{button: bm}
	}
	return nil
}

func (sb *simButtons) readButtons(rt runtimeConfig) (map[string]rpio.State, error) {
	ret := make(map[string]rpio.State)

	// poll with a quick timeout; no key means "all up"
	go func() {
		rt.clock.Sleep(dButtonSleep)
		termbox.Interrupt()
	}()

	var ev termbox.Event
	waitForInterrupt := true
	for waitForInterrupt {
		evTemp := termbox.PollEvent()
		switch evTemp.Type {
		case termbox.EventKey:
			// add an exit key
			if evTemp.Key == termbox.KeyCtrlC {
				return ret, errors.New("Exit termbox loop")
			}
			ev = evTemp
		// wait for the interrupt to fire
		default:
			waitForInterrupt = false
		}
	}

	termbox.Flush()

	for name, btn := range sb.buttons {
		if ev.Ch == btn.button.key {
			ret[name] = btnDown
		} else {
			ret[name] = btnUp
		}
	}

	return ret, nil
}

func (sb *simButtons) closeButtons() {
	termbox.Close()
}
