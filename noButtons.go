package main

import (
	"github.com/stianeikeland/go-rpio"
)

// noButtons is for headless runs; tests poke states in with set()
type noButtons struct {
	buttons map[string]button
	states  map[string]rpio.State
}

func (nb *noButtons) setupButtons(rt runtimeConfig) error {
	nb.buttons = make(map[string]button)
	nb.states = make(map[string]rpio.State)

	for name, bm := range defaultButtons(rt.settings) {
		nb.buttons[name] = button{button: bm}
		nb.states[name] = btnUp
	}
	return nil
}

func (nb *noButtons) readButtons(rt runtimeConfig) (map[string]rpio.State, error) {
	ret := make(map[string]rpio.State)
	for name, state := range nb.states {
		ret[name] = state
	}
	return ret, nil
}

func (nb *noButtons) closeButtons() {
}

func (nb *noButtons) set(btns map[string]rpio.State) {
	for name, state := range btns {
		nb.states[name] = state
	}
}

func (nb *noButtons) clear() {
	for name := range nb.buttons {
		nb.states[name] = btnUp
	}
}
