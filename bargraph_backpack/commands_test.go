package bargraph_backpack

import (
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"gotest.tools/assert"
)

// diagRecorder collects driver diagnostics for inspection
type diagRecorder struct {
	lines []string
}

func (dr *diagRecorder) Printf(format string, v ...interface{}) {
	dr.lines = append(dr.lines, fmt.Sprintf(format, v...))
}

func TestEncodeBrightnessClamp(t *testing.T) {
	dr := &diagRecorder{}

	// in range: no diagnostic
	assert.DeepEqual(t, encodeBrightness(7, dr), []byte{0xE7, 0x00})
	assert.Equal(t, len(dr.lines), 0)

	// over: clamp to 15 and say so
	assert.DeepEqual(t, encodeBrightness(20, dr), []byte{0xEF, 0x00})
	assert.Equal(t, len(dr.lines), 1)

	// under: clamp to 0
	assert.DeepEqual(t, encodeBrightness(-1, dr), []byte{0xE0, 0x00})
	assert.Equal(t, len(dr.lines), 2)

	// nil sink just clamps quietly
	assert.DeepEqual(t, encodeBrightness(99, nil), []byte{0xEF, 0x00})
}

func TestEncodeBlinkRate(t *testing.T) {
	expect := map[uint8]byte{
		BLINK_OFF:    0x81,
		BLINK_2HZ:    0x83,
		BLINK_1HZ:    0x85,
		BLINK_HALFHZ: 0x87,
	}
	for rate, cmd := range expect {
		buf, err := encodeBlinkRate(rate)
		assert.NilError(t, err)
		assert.DeepEqual(t, buf, []byte{cmd, 0x00})
	}

	// no clamping here, unlike brightness
	_, err := encodeBlinkRate(4)
	assert.Assert(t, errors.Is(err, ErrInvalidRate), "got %v", err)
}

func TestSetBlinkRateOnDevice(t *testing.T) {
	bg, bus := setup(false)

	assert.NilError(t, bg.SetBlinkRate(BLINK_2HZ))
	assert.DeepEqual(t, bus.last(), []byte{0x83, 0x00})
	// the blink command doubles as display-on
	assert.Equal(t, bg.Power(), POWER_ON)

	err := bg.SetBlinkRate(9)
	assert.Assert(t, errors.Is(err, ErrInvalidRate), "got %v", err)
	// nothing hit the bus for the bad rate
	assert.Equal(t, len(bus.writes), 1)
}

func TestBrightnessOnDevice(t *testing.T) {
	bg, bus := setup(false)
	dr := &diagRecorder{}
	bg.SetDiag(dr)

	assert.NilError(t, bg.SetBrightness(20))
	assert.DeepEqual(t, bus.last(), []byte{0xEF, 0x00})
	assert.Equal(t, len(dr.lines), 1)
}

func TestEncodePowerOrder(t *testing.T) {
	assert.Equal(t, encodePowerOn(), [2]byte{0x21, 0x81})
	assert.Equal(t, encodePowerOff(), [2]byte{0x80, 0x20})
}
