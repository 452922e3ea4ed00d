package main

import (
	"fmt"
	"log"

	"github.com/pkg/errors"

	"dscheirer.com/bargraph/bargraph_backpack"
)

// logBargraph keeps the display state in memory and audits every
// draw, for tests
type logBargraph struct {
	bars       [bargraph_backpack.BAR_COUNT]bargraph_backpack.BarColor
	brightness int
	blinkRate  uint8
	on         bool
	draws      int
	audit      []string
}

func (lb *logBargraph) OpenDisplay(settings configSettings) error {
	lb.bars = [bargraph_backpack.BAR_COUNT]bargraph_backpack.BarColor{}
	lb.brightness = 0
	lb.blinkRate = 0
	lb.on = false
	lb.draws = 0
	lb.audit = []string{}
	return nil
}

func (lb *logBargraph) CloseDisplay() {
}

func (lb *logBargraph) Initialize(brightness int) error {
	lb.on = true
	return lb.SetBrightness(brightness)
}

func (lb *logBargraph) SetBar(bar int, color bargraph_backpack.BarColor) error {
	if bar < 0 || bar >= bargraph_backpack.BAR_COUNT {
		return errors.Wrapf(bargraph_backpack.ErrOutOfRange, "bad bar number: %d", bar)
	}
	lb.bars[bar] = color
	return nil
}

func (lb *logBargraph) FillTo(bar int, color bargraph_backpack.BarColor) error {
	if bar < 0 || bar >= bargraph_backpack.BAR_COUNT {
		return errors.Wrapf(bargraph_backpack.ErrOutOfRange, "bad bar number: %d", bar)
	}
	for n := 0; n < bar; n++ {
		lb.bars[n] = color
	}
	return nil
}

func (lb *logBargraph) Clear() {
	lb.bars = [bargraph_backpack.BAR_COUNT]bargraph_backpack.BarColor{}
}

func (lb *logBargraph) Draw() error {
	lb.draws++
	lb.audit = append(lb.audit, fmt.Sprintf("draw %v", lb.bars))
	return nil
}

func (lb *logBargraph) SetBrightness(level int) error {
	if level < 0 {
		level = 0
	} else if level > bargraph_backpack.BRIGHTNESS_MAX {
		level = bargraph_backpack.BRIGHTNESS_MAX
	}
	lb.brightness = level
	return nil
}

func (lb *logBargraph) SetBlinkRate(rate uint8) error {
	if rate > bargraph_backpack.BLINK_HALFHZ {
		return errors.Wrapf(bargraph_backpack.ErrInvalidRate, "bad blink rate: %d", rate)
	}
	lb.blinkRate = rate
	lb.on = true
	return nil
}

func (lb *logBargraph) PowerUp() error {
	lb.on = true
	log.Println("logBargraph: power up")
	return nil
}

func (lb *logBargraph) PowerDown() error {
	lb.on = false
	log.Println("logBargraph: power down")
	return nil
}
