// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package atca

import (
	"encoding/binary"
	"time"
)

// defaultExecutionTime is the wait applied for opcodes with no published
// execution time.
const defaultExecutionTime = 250 * time.Millisecond

type lockState uint8

const (
	lockUnknown lockState = iota
	lockOpen
	lockSealed
)

// Device is a handle to one physical device over a Transport. All command
// issuance is strictly sequential: the device has no queueing, and a new
// frame must not be transmitted until the previous command's execution
// time has elapsed and its response has been read. A Device owns its
// transport exclusively and is not safe for concurrent use; this package
// never retries a failed transmission, since retry safety for stateful
// sequences is a caller concern.
type Device struct {
	transport Transport
	divider   ClockDivider
	wait      func(time.Duration)
	sum       ChecksumFunc

	cmd [CommandSizeMax]byte
	rsp [ResponseSizeMax]byte
	b   *PacketBuilder

	locks [3]lockState
}

// DeviceOption configures a Device.
type DeviceOption func(*Device)

// WithClockDivider selects the execution time column matching the
// device's clock configuration. The default is ClockDividerZero.
func WithClockDivider(div ClockDivider) DeviceOption {
	return func(d *Device) {
		d.divider = div
	}
}

// WithWait replaces the post-transmit delay primitive. The default is
// time.Sleep.
func WithWait(wait func(time.Duration)) DeviceOption {
	return func(d *Device) {
		d.wait = wait
	}
}

// WithChecksum replaces the frame checksum primitive on both the command
// and response paths. The default is CRC16.
func WithChecksum(sum ChecksumFunc) DeviceOption {
	return func(d *Device) {
		d.sum = sum
	}
}

// NewDevice returns a Device communicating over the supplied transport.
func NewDevice(transport Transport, options ...DeviceOption) *Device {
	d := &Device{
		transport: transport,
		divider:   ClockDividerZero,
		wait:      time.Sleep,
		sum:       CRC16,
	}
	for _, opt := range options {
		opt(d)
	}
	d.b = NewPacketBuilder(d.cmd[:]).SetChecksum(d.sum)
	return d
}

// Builder returns the device's frame builder. The builder writes into a
// single buffer owned by the Device, so a Packet is only valid until the
// next command is constructed.
func (d *Device) Builder() *PacketBuilder {
	return d.b
}

// Close closes the underlying transport.
func (d *Device) Close() error {
	return d.transport.Close()
}

// lockStatus returns the cached lock state of a zone. The cache moves in
// one direction only, mirroring the hardware: a zone observed locked
// stays locked.
func (d *Device) lockStatus(zone Zone) lockState {
	return d.locks[zone]
}

func (d *Device) setLockStatus(zone Zone, s lockState) {
	if d.locks[zone] == lockSealed {
		return
	}
	d.locks[zone] = s
}

// Execute transmits the frame, waits out the opcode's worst case
// execution time, reads the response frame and returns its payload.
// A four byte response carries a status byte, which is decoded; any
// status other than success becomes a StatusError.
func (d *Device) Execute(p Packet) ([]byte, error) {
	if _, err := d.transport.Write(p.Bytes()); err != nil {
		if _, ok := err.(*TransportError); ok {
			return nil, err
		}
		return nil, &TransportError{Op: "write", err: err}
	}

	t, ok := p.OpCode().ExecutionTime(d.divider)
	if !ok {
		t = defaultExecutionTime
	}
	d.wait(t)

	n, err := d.transport.Read(d.rsp[:])
	if err != nil {
		if _, ok := err.(*TransportError); ok {
			return nil, err
		}
		return nil, &TransportError{Op: "read", err: err}
	}

	return d.parseResponse(p.OpCode(), d.rsp[:n])
}

func (d *Device) parseResponse(op OpCode, rsp []byte) ([]byte, error) {
	if len(rsp) < ResponseSizeMin {
		return nil, parseError("response of %d bytes is shorter than the minimum frame", len(rsp))
	}

	count := int(rsp[0])
	if count < ResponseSizeMin || count > len(rsp) {
		return nil, parseError("invalid count byte %d for a %d byte response", count, len(rsp))
	}

	crc := binary.LittleEndian.Uint16(rsp[count-2:])
	if d.sum(rsp[:count-2]) != crc {
		return nil, parseError("response checksum mismatch")
	}

	data := rsp[1 : count-2]
	if count == ResponseSizeMin {
		if err := DecodeStatus(op, StatusCode(data[0])); err != nil {
			return nil, err
		}
	}
	return data, nil
}
