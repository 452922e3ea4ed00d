package main

import (
	"log"

	"github.com/stianeikeland/go-rpio"

	"dscheirer.com/bargraph/bargraph_backpack"
)

// button names
const (
	btnBrightUp   = "up"
	btnBrightDown = "down"
	btnPower      = "power"
)

// pins are pulled up, GND means pressed
const btnDown = rpio.Low
const btnUp = rpio.High

type buttonMap struct {
	pin uint8
	key rune
}

type button struct {
	button  buttonMap
	pin     rpio.Pin
	pressed bool
}

func defaultButtons(settings configSettings) map[string]buttonMap {
	return map[string]buttonMap{
		btnBrightUp:   {pin: settings.GetByte(sPinUp), key: 'u'},
		btnBrightDown: {pin: settings.GetByte(sPinDown), key: 'd'},
		btnPower:      {pin: settings.GetByte(sPinPower), key: 'p'},
	}
}

// runWatchButtons polls the buttons and turns press edges into
// effects: brightness up/down and power toggle
func runWatchButtons(rt runtimeConfig) {
	defer wg.Done()
	defer func() {
		log.Println("exiting runWatchButtons")
	}()

	if err := rt.buttons.setupButtons(rt); err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}
	defer rt.buttons.closeButtons()

	brightness := rt.settings.GetInt(sBrightness)
	on := true
	pressed := make(map[string]bool)

	for {
		select {
		case <-rt.comms.quit:
			log.Println("quit from runWatchButtons")
			return
		default:
		}

		states, err := rt.buttons.readButtons(rt)
		if err != nil {
			log.Printf("Error: %s", err.Error())
			return
		}

		for name, state := range states {
			isDown := state == btnDown
			if isDown && !pressed[name] {
				// act on the press edge only
				switch name {
				case btnBrightUp:
					if brightness < bargraph_backpack.BRIGHTNESS_MAX {
						brightness++
					}
					rt.comms.effects <- brightnessEffect(brightness)
				case btnBrightDown:
					if brightness > 0 {
						brightness--
					}
					rt.comms.effects <- brightnessEffect(brightness)
				case btnPower:
					on = !on
					rt.comms.effects <- powerEffect(on)
				}
			}
			pressed[name] = isDown
		}

		rt.clock.Sleep(dButtonSleep)
	}
}
