// Package periphio adapts a periph.io i2c bus to the bargraph
// transport contract, for hosts where the periph driver stack is
// preferable to raw /dev/i2c ioctls.
package periphio

import (
	"io"

	"github.com/pkg/errors"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

type Bus struct {
	bus i2c.Bus
}

// Open initializes the periph host drivers and opens a bus by name
// ("" picks the first available one, "1" is /dev/i2c-1 on a Pi)
func Open(name string) (*Bus, error) {
	if _, err := host.Init(); err != nil {
		return nil, errors.Wrap(err, "periph host init")
	}
	b, err := i2creg.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "open i2c bus %q", name)
	}
	return &Bus{bus: b}, nil
}

// New wraps an already-open bus (handy for playback tests)
func New(bus i2c.Bus) *Bus {
	return &Bus{bus: bus}
}

// Write is one write-only transaction to the 7-bit device address
func (b *Bus) Write(addr byte, data []byte) error {
	return b.bus.Tx(uint16(addr), data, nil)
}

func (b *Bus) Close() error {
	if c, ok := b.bus.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
