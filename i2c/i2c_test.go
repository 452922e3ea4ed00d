package i2c

import (
	"fmt"
	"testing"

	"gotest.tools/assert"
)

type logCapture struct {
	lines []string
}

func (lc *logCapture) Printf(format string, v ...interface{}) {
	lc.lines = append(lc.lines, fmt.Sprintf(format, v...))
}

func TestSimulatedWrite(t *testing.T) {
	lc := &logCapture{}
	bus, err := Open(1, true, lc)
	assert.NilError(t, err)
	defer bus.Close()

	assert.NilError(t, bus.Write(0x70, []byte{0x21, 0x00}))
	assert.Equal(t, len(lc.lines), 1)
	// 7-bit 0x70 goes on the wire as 0xe0
	assert.Equal(t, lc.lines[0], "i2c @ 0x70 (w 0xe0): 21 00")
}

func TestSimulatedNilLogger(t *testing.T) {
	bus, err := Open(1, true, nil)
	assert.NilError(t, err)
	assert.NilError(t, bus.Write(0x70, []byte{0x00}))
	assert.NilError(t, bus.Close())
}
