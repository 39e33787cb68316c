// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

/*
Package linux provides a transport for devices connected to a Linux I2C
bus, via the i2c-dev character device interface.
*/
package linux

import (
	"errors"
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
)

// DefaultAddr is the factory I2C address of the device.
const DefaultAddr = 0x60

// The I2C word address byte prefixed to every frame, selecting the
// device's command buffer.
const wordAddrCommand = 0x03

// Post wake delay before the device accepts a command.
const wakeDelay = 1500 * time.Microsecond

// The I2C_SLAVE ioctl request from <linux/i2c-dev.h>, not exported by
// golang.org/x/sys/unix.
const ioctlI2CSlave = 0x0703

var errClosed = errors.New("use of closed transport")

// Transport is a connection to a device on an I2C bus. It implements
// atca.Transport.
type Transport struct {
	f    *os.File
	wake bool
}

// Open opens the I2C bus character device at path (for example
// "/dev/i2c-1") and addresses the device at addr.
func Open(path string, addr uint8) (*Transport, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	if err := unix.IoctlSetInt(int(f.Fd()), ioctlI2CSlave, int(addr)); err != nil {
		f.Close()
		return nil, fmt.Errorf("cannot select device address 0x%02x: %w", addr, err)
	}

	return &Transport{f: f}, nil
}

// OpenDefault opens the I2C bus at path with the device's factory
// address.
func OpenDefault(path string) (*Transport, error) {
	return Open(path, DefaultAddr)
}

// Wake pulses the bus to bring the device out of sleep. The wake token
// is a write to address zero that the device NAKs, so the transfer error
// is expected and discarded.
func (t *Transport) Wake() error {
	if t.f == nil {
		return errClosed
	}
	t.f.Write([]byte{0x00})
	time.Sleep(wakeDelay)
	t.wake = true
	return nil
}

// Write transmits one command frame, prefixing the word address byte the
// bus protocol requires. The device is woken first if it has not been
// yet.
func (t *Transport) Write(p []byte) (int, error) {
	if t.f == nil {
		return 0, errClosed
	}
	if !t.wake {
		if err := t.Wake(); err != nil {
			return 0, err
		}
	}

	buf := make([]byte, 0, len(p)+1)
	buf = append(buf, wordAddrCommand)
	buf = append(buf, p...)
	n, err := t.f.Write(buf)
	if n > 0 {
		n--
	}
	return n, err
}

// Read receives one response frame.
func (t *Transport) Read(p []byte) (int, error) {
	if t.f == nil {
		return 0, errClosed
	}
	return t.f.Read(p)
}

// Close puts the device to sleep and closes the bus handle.
func (t *Transport) Close() error {
	if t.f == nil {
		return errClosed
	}
	// Sleep token; a NAK here is fine.
	t.f.Write([]byte{0x01})
	err := t.f.Close()
	t.f = nil
	return err
}
