package bargraph_backpack

import (
	"github.com/pkg/errors"
)

// commands we support
// OSC on/off
const i2cOSC_ON = 0x21
const i2cOSC_OFF = 0x20

// display on/off and 2 "blink" bits in position 2+1
const i2cDISPLAY_ON = 0x81
const i2cDISPLAY_OFF = 0x80

// 0x0 -> 0xF brightness levels
const i2cBRIGHTNESS_CMD = 0xE0

// display RAM starts at register 0
const i2cRAM_ADDR = 0x00

// default 7-bit address of the backpack (the bus shifts it left one
// for the R/W bit on the wire)
const I2C_ADDRESS = 0x70

// export blink positions
const BLINK_OFF = 0
const BLINK_2HZ = 1
const BLINK_1HZ = 2
const BLINK_HALFHZ = 3

const BAR_COUNT = 24
const BRIGHTNESS_MAX = 15

// BarColor is the state of one bar; yellow is both LEDs lit
type BarColor byte

const (
	COLOR_OFF BarColor = iota
	COLOR_RED
	COLOR_YELLOW
	COLOR_GREEN
)

// cosmetic alias, same LEDs as yellow
const COLOR_AMBER = COLOR_YELLOW

// failure modes the driver owns; bus errors pass through untouched
var ErrOutOfRange = errors.New("bar or color out of range")
var ErrInvalidRate = errors.New("bad blink rate")

// Bus is the transport collaborator: one blocking write of a payload
// to a 7-bit device address, already configured by the caller
type Bus interface {
	Write(addr byte, data []byte) error
}

// Logger is an injected diagnostics sink; log.Logger satisfies it,
// nil discards
type Logger interface {
	Printf(format string, v ...interface{})
}

type PowerState int

const (
	POWER_UNKNOWN PowerState = iota
	POWER_OFF
	POWER_ON
)

// Bargraph drives a 24-bar bi-color graph on an HT16K33 backpack.
// Mutate the buffer with SetBar/FillTo/Clear, then Draw to push it
// to the device.  Not safe for concurrent use.
type Bargraph struct {
	bus        Bus
	address    byte
	display    [3]uint16
	zeroAtChip bool
	power      PowerState
	diag       Logger
}

// Open wires up a driver on the given transport.  No commands are
// sent; the device power state is unknown until PowerUp/Initialize.
// zeroAtChip picks which physical end of the board is bar 0.
func Open(bus Bus, address byte, zeroAtChip bool) *Bargraph {
	return &Bargraph{
		bus:        bus,
		address:    address,
		zeroAtChip: zeroAtChip,
		power:      POWER_UNKNOWN,
	}
}

// SetDiag points driver diagnostics at the caller's logger
func (bg *Bargraph) SetDiag(diag Logger) {
	bg.diag = diag
}

func (bg *Bargraph) diagf(format string, v ...interface{}) {
	if bg.diag == nil {
		return
	}
	bg.diag.Printf(format, v...)
}

// Power reports the last commanded device power state
func (bg *Bargraph) Power() PowerState {
	return bg.power
}

// Initialize forces the device on and applies a starting brightness
func (bg *Bargraph) Initialize(brightness int) error {
	if err := bg.PowerUp(); err != nil {
		return err
	}
	return bg.SetBrightness(brightness)
}

// PowerUp enables the oscillator, then the display.  The order is
// fixed: the display register is undefined while the oscillator is
// down.
func (bg *Bargraph) PowerUp() error {
	for _, cmd := range encodePowerOn() {
		if err := bg.sendCmd(cmd); err != nil {
			return err
		}
	}
	bg.power = POWER_ON
	return nil
}

// PowerDown disables the display, then the oscillator (reverse of
// PowerUp, same reason)
func (bg *Bargraph) PowerDown() error {
	for _, cmd := range encodePowerOff() {
		if err := bg.sendCmd(cmd); err != nil {
			return err
		}
	}
	bg.power = POWER_OFF
	return nil
}

// SetBar sets one bar, leaving the other 23 untouched.  Fails with
// ErrOutOfRange on a bad bar number or color; the buffer is left
// as it was.
func (bg *Bargraph) SetBar(bar int, color BarColor) error {
	if err := checkBar(bar, color); err != nil {
		return err
	}
	bg.setBarBits(bg.physicalBar(bar), color)
	return nil
}

// FillTo sets every bar from the display's zero end through bar to
// one color.  Bars past the fill are left alone, not cleared.
func (bg *Bargraph) FillTo(bar int, color BarColor) error {
	if err := checkBar(bar, color); err != nil {
		return err
	}
	if bg.zeroAtChip {
		for n := BAR_COUNT - 1; n >= BAR_COUNT-1-bar; n-- {
			bg.setBarBits(n, color)
		}
	} else {
		for n := 0; n < bar; n++ {
			bg.setBarBits(n, color)
		}
	}
	return nil
}

// Clear blanks the whole buffer (call Draw to blank the device)
func (bg *Bargraph) Clear() {
	bg.display = [3]uint16{}
}

// Draw pushes the buffer to the display RAM in one bus write
func (bg *Bargraph) Draw() error {
	return bg.bus.Write(bg.address, encodeDraw(&bg.display))
}

// SetBrightness dims the whole display, 0 (dimmest) to 15.  Out of
// range levels are clamped, not rejected.
func (bg *Bargraph) SetBrightness(level int) error {
	return bg.bus.Write(bg.address, encodeBrightness(level, bg.diag))
}

// SetBlinkRate blinks the whole display: BLINK_OFF, BLINK_2HZ,
// BLINK_1HZ or BLINK_HALFHZ.  Anything else is ErrInvalidRate.
// The command also turns the display on.
func (bg *Bargraph) SetBlinkRate(rate uint8) error {
	buf, err := encodeBlinkRate(rate)
	if err != nil {
		return err
	}
	if err := bg.bus.Write(bg.address, buf); err != nil {
		return err
	}
	bg.power = POWER_ON
	return nil
}

func (bg *Bargraph) sendCmd(cmd byte) error {
	return bg.bus.Write(bg.address, encodeCmd(cmd))
}

func checkBar(bar int, color BarColor) error {
	if bar < 0 || bar >= BAR_COUNT {
		return errors.Wrapf(ErrOutOfRange, "bad bar number: %d", bar)
	}
	if color > COLOR_GREEN {
		return errors.Wrapf(ErrOutOfRange, "bad color: %d", color)
	}
	return nil
}

// physicalBar applies the board orientation to a logical bar number
func (bg *Bargraph) physicalBar(bar int) int {
	if bg.zeroAtChip {
		return BAR_COUNT - 1 - bar
	}
	return bar
}

// setBarBits updates one physical bar in the register image.  Word g
// holds bars 4g..4g+3 in its low nibble and 12+4g..12+4g+3 in its
// high nibble; low byte is the red plane, high byte the green plane.
// The split follows the wiring of the two LED rows to the chip's row
// drivers, so don't rearrange the arithmetic.
func (bg *Bargraph) setBarBits(n int, color BarColor) {
	group := n / 4
	bit := uint(n % 4)
	if n >= 12 {
		group = (n - 12) / 4
		bit += 4
	}

	red := uint16(1) << bit
	green := uint16(1) << (bit + 8)

	// independent set/clear per plane; never touch neighbor bits
	switch color {
	case COLOR_RED:
		bg.display[group] |= red
		bg.display[group] &^= green
	case COLOR_GREEN:
		bg.display[group] |= green
		bg.display[group] &^= red
	case COLOR_YELLOW:
		bg.display[group] |= red | green
	case COLOR_OFF:
		bg.display[group] &^= red | green
	}
}
