package main

import (
	"log"

	// gpio lib
	"github.com/stianeikeland/go-rpio"
)

type rpioButtons struct {
	buttons map[string]button
}

func (rb *rpioButtons) setupButtons(rt runtimeConfig) error {
	err := rpio.Open()
	if err != nil {
		log.Println(err.Error())
		return err
	}

	rb.buttons = make(map[string]button)
	for name, bm := range defaultButtons(rt.settings) {
		var btn button
		btn.button = bm
		btn.pin = rpio.Pin(bm.pin)

		// we only care about the "low" state
		btn.pin.Input()  // Input mode
		btn.pin.PullUp() // GND => button press

		rb.buttons[name] = btn
	}

	return nil
}

func (rb *rpioButtons) readButtons(rt runtimeConfig) (map[string]rpio.State, error) {
	ret := make(map[string]rpio.State)
	for name, btn := range rb.buttons {
		ret[name] = btn.pin.Read() // Read state from pin (High / Low)
	}
	return ret, nil
}

func (rb *rpioButtons) closeButtons() {
	rpio.Close()
}
