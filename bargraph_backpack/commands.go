package bargraph_backpack

import (
	"github.com/pkg/errors"
)

// Command encoding for the chip's control registers.  These build the
// exact bytes for one bus transaction and never look at bar
// semantics.

// every command transaction is two bytes; the chip ignores the pad
func encodeCmd(cmd byte) []byte {
	return []byte{cmd, 0x00}
}

// encodeDraw is the buffer write: display RAM address, then the three
// words low byte first
func encodeDraw(display *[3]uint16) []byte {
	buf := make([]byte, 0, 7)
	buf = append(buf, i2cRAM_ADDR)
	for _, word := range display {
		buf = append(buf, byte(word&0xff), byte(word>>8))
	}
	return buf
}

// encodeBrightness clamps level into 0..15 (best effort, not an
// error) and builds the dimming command
func encodeBrightness(level int, diag Logger) []byte {
	if level < 0 {
		if diag != nil {
			diag.Printf("clamping brightness %d to 0", level)
		}
		level = 0
	} else if level > BRIGHTNESS_MAX {
		if diag != nil {
			diag.Printf("clamping brightness %d to %d", level, BRIGHTNESS_MAX)
		}
		level = BRIGHTNESS_MAX
	}
	return encodeCmd(i2cBRIGHTNESS_CMD | byte(level))
}

// encodeBlinkRate builds the display-on command with the blink bits.
// rate is the chip's 2-bit rate index: 0=off, 1=2Hz, 2=1Hz, 3=0.5Hz.
// Unlike brightness there is no clamping; a bad rate is rejected.
func encodeBlinkRate(rate uint8) ([]byte, error) {
	if rate > BLINK_HALFHZ {
		return nil, errors.Wrapf(ErrInvalidRate, "bad blink rate: %d", rate)
	}
	return encodeCmd(i2cDISPLAY_ON | (rate << 1)), nil
}

// encodePowerOn is oscillator first, display second
func encodePowerOn() [2]byte {
	return [2]byte{i2cOSC_ON, i2cDISPLAY_ON}
}

// encodePowerOff is the reverse: display first, oscillator second
func encodePowerOff() [2]byte {
	return [2]byte{i2cDISPLAY_OFF, i2cOSC_OFF}
}
