package i2c

import (
	"fmt"
	"os"
	"syscall"

	"github.com/pkg/errors"
)

const i2cSLAVE = 0x0703

// Logger receives simulated traffic; the caller picks the
// destination (log.Logger works), nil discards
type Logger interface {
	Printf(format string, v ...interface{})
}

// Bus is one /dev/i2c-N character device.  In simulated mode there is
// no device; every write is logged instead.
type Bus struct {
	fd  *os.File
	sim bool
	log Logger
}

// Open grabs the bus device, or a simulated stand-in
func Open(bus int, simulated bool, logger Logger) (*Bus, error) {
	if simulated {
		return &Bus{sim: true, log: logger}, nil
	}
	f, err := os.OpenFile(fmt.Sprintf("/dev/i2c-%d", bus), os.O_RDWR, 0600)
	if err != nil {
		return nil, errors.Wrapf(err, "open i2c bus %d", bus)
	}
	return &Bus{fd: f, log: logger}, nil
}

func (b *Bus) Close() error {
	if b.sim {
		b.logf("i2c close")
		return nil
	}
	return b.fd.Close()
}

// Write selects the 7-bit device address and sends the payload as one
// transaction.  Not MT safe; the caller serializes bus access.
func (b *Bus) Write(addr byte, buf []byte) error {
	if b.sim {
		// the wire sees the address shifted up one for the R/W bit
		b.logf("i2c @ 0x%02x (w 0x%02x): % 02x", addr, addr<<1, buf)
		return nil
	}
	if err := ioctl(b.fd.Fd(), i2cSLAVE, uintptr(addr)); err != nil {
		return errors.Wrapf(err, "select device 0x%02x", addr)
	}
	_, err := b.fd.Write(buf)
	return err
}

func (b *Bus) logf(format string, v ...interface{}) {
	if b.log == nil {
		return
	}
	b.log.Printf(format, v...)
}

func ioctl(fd, cmd, arg uintptr) error {
	_, _, errno := syscall.Syscall6(syscall.SYS_IOCTL, fd, cmd, arg, 0, 0, 0)
	if errno != 0 {
		return errno
	}
	return nil
}
