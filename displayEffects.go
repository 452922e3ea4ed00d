package main

import (
	"fmt"
	"log"

	"dscheirer.com/bargraph/bargraph_backpack"
)

type displayEffect struct {
	id  int
	val interface{}
}

type barSet struct {
	bar   int
	color bargraph_backpack.BarColor
}

type levelSet struct {
	level int
	color bargraph_backpack.BarColor
}

const (
	modeManual = iota
	modeSweep
)

const (
	eBar = iota
	eLevel
	eMeter
	eBrightness
	eBlink
	ePower
	eSweep
	eClear
	eTerminate
)

// channel messaging functions
func setBarEffect(bar int, color bargraph_backpack.BarColor) displayEffect {
	return displayEffect{id: eBar, val: barSet{bar: bar, color: color}}
}

func setLevelEffect(level int, color bargraph_backpack.BarColor) displayEffect {
	return displayEffect{id: eLevel, val: levelSet{level: level, color: color}}
}

func meterEffect(level int) displayEffect {
	return displayEffect{id: eMeter, val: level}
}

func brightnessEffect(level int) displayEffect {
	return displayEffect{id: eBrightness, val: level}
}

func blinkEffect(rate uint8) displayEffect {
	return displayEffect{id: eBlink, val: rate}
}

func powerEffect(on bool) displayEffect {
	return displayEffect{id: ePower, val: on}
}

func sweepEffect(on bool) displayEffect {
	return displayEffect{id: eSweep, val: on}
}

func clearEffect() displayEffect {
	return displayEffect{id: eClear, val: nil}
}

func terminateEffect() displayEffect {
	return displayEffect{id: eTerminate, val: nil}
}

func toBarSet(val interface{}) (*barSet, error) {
	switch v := val.(type) {
	case barSet:
		return &v, nil
	default:
		return nil, fmt.Errorf("Bad type: %T", v)
	}
}

func toLevelSet(val interface{}) (*levelSet, error) {
	switch v := val.(type) {
	case levelSet:
		return &v, nil
	default:
		return nil, fmt.Errorf("Bad type: %T", v)
	}
}

func toInt(val interface{}) (int, error) {
	switch v := val.(type) {
	case int:
		return v, nil
	default:
		return 0, fmt.Errorf("Bad type: %T", v)
	}
}

func toBool(val interface{}) (bool, error) {
	switch v := val.(type) {
	case bool:
		return v, nil
	default:
		return false, fmt.Errorf("Bad type: %T", v)
	}
}

func toRate(val interface{}) (uint8, error) {
	switch v := val.(type) {
	case uint8:
		return v, nil
	default:
		return 0, fmt.Errorf("Bad type: %T", v)
	}
}

// zoneColor is the classic meter coloring: green floor, yellow
// warning band, red top
func zoneColor(bar int) bargraph_backpack.BarColor {
	switch {
	case bar < 15:
		return bargraph_backpack.COLOR_GREEN
	case bar < 20:
		return bargraph_backpack.COLOR_YELLOW
	default:
		return bargraph_backpack.COLOR_RED
	}
}

// renderMeter lights the first level bars with zone colors and blanks
// the rest
func renderMeter(d display, level int) error {
	d.Clear()
	for n := 0; n < level && n < bargraph_backpack.BAR_COUNT; n++ {
		if err := d.SetBar(n, zoneColor(n)); err != nil {
			return err
		}
	}
	return d.Draw()
}

func runEffects(rt runtimeConfig) {
	defer wg.Done()
	defer func() {
		log.Println("exiting runEffects")
	}()

	settings := rt.settings

	if err := rt.display.OpenDisplay(settings); err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}
	defer rt.display.CloseDisplay()

	// ready to rock
	if err := rt.display.Initialize(settings.GetInt(sBrightness)); err != nil {
		log.Printf("Error: %s", err.Error())
		return
	}

	mode := modeManual
	if settings.GetBool(sSweep) {
		mode = modeSweep
	}
	sweepLevel := 0
	sweepDir := 1

	for {
		select {
		case <-rt.comms.quit:
			log.Println("quit from runEffects")
			rt.display.PowerDown()
			return
		case e := <-rt.comms.effects:
			switch e.id {
			case eBar:
				v, _ := toBarSet(e.val)
				if err := rt.display.SetBar(v.bar, v.color); err != nil {
					log.Printf("Error: %s", err.Error())
					continue
				}
				rt.display.Draw()
			case eLevel:
				v, _ := toLevelSet(e.val)
				rt.display.Clear()
				if err := rt.display.FillTo(v.level, v.color); err != nil {
					log.Printf("Error: %s", err.Error())
					continue
				}
				rt.display.Draw()
			case eMeter:
				v, _ := toInt(e.val)
				if err := renderMeter(rt.display, v); err != nil {
					log.Printf("Error: %s", err.Error())
				}
			case eBrightness:
				v, _ := toInt(e.val)
				rt.display.SetBrightness(v)
			case eBlink:
				v, _ := toRate(e.val)
				if err := rt.display.SetBlinkRate(v); err != nil {
					log.Printf("Error: %s", err.Error())
				}
			case ePower:
				v, _ := toBool(e.val)
				if v {
					rt.display.PowerUp()
				} else {
					rt.display.PowerDown()
				}
			case eSweep:
				v, _ := toBool(e.val)
				if v {
					mode = modeSweep
					sweepLevel = 0
					sweepDir = 1
				} else {
					mode = modeManual
					rt.display.Clear()
					rt.display.Draw()
				}
			case eClear:
				rt.display.Clear()
				rt.display.Draw()
			case eTerminate:
				log.Println("terminate")
				return
			default:
				log.Printf("Unhandled %d\n", e.id)
			}
		default:
			rt.clock.Sleep(dEffectSleep)
		}

		if mode == modeSweep {
			if err := renderMeter(rt.display, sweepLevel); err != nil {
				log.Printf("Error: %s", err.Error())
			}
			sweepLevel += sweepDir
			if sweepLevel >= bargraph_backpack.BAR_COUNT {
				sweepDir = -1
			} else if sweepLevel <= 0 {
				sweepDir = 1
			}
		}
	}
}
