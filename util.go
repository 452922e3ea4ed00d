// utility functions
package main

import (
	"time"

	"github.com/jonboulle/clockwork"
)

const dEffectSleep = 250 * time.Millisecond
const dButtonSleep = 100 * time.Millisecond

type commChannels struct {
	quit    chan struct{}
	effects chan displayEffect
}

type runtimeConfig struct {
	settings configSettings
	comms    commChannels
	clock    clockwork.Clock
	display  display
	buttons  buttons
}

func initCommChannels() commChannels {
	return commChannels{
		quit:    make(chan struct{}, 1),
		effects: make(chan displayEffect, 10),
	}
}

func initRuntime(settings configSettings) runtimeConfig {
	rt := runtimeConfig{
		settings: settings,
		comms:    initCommChannels(),
		clock:    clockwork.NewRealClock(),
		display:  &ledBargraph{},
	}

	switch settings.GetString(sButtons) {
	case "rpio":
		rt.buttons = &rpioButtons{}
	case "keyboard":
		rt.buttons = &simButtons{}
	default:
		rt.buttons = &noButtons{}
	}

	return rt
}

func initTestRuntime(settings configSettings) runtimeConfig {
	return runtimeConfig{
		settings: settings,
		comms:    initCommChannels(),
		clock:    clockwork.NewFakeClock(),
		display:  &logBargraph{},
		buttons:  &noButtons{},
	}
}
