// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package atca

import (
	"encoding/binary"
)

const (
	// CommandSizeMin is the length of a command frame with no payload:
	// count, opcode, param1, param2 and the two checksum bytes.
	CommandSizeMin = 7

	// CommandSizeMax is the largest command frame the device accepts.
	CommandSizeMax = 4*36 + 7

	// MaxPDULen is the largest payload a single command frame carries.
	MaxPDULen = CommandSizeMax - CommandSizeMin

	// ResponseSizeMin is the length of a bare status response frame:
	// count, status byte and the two checksum bytes.
	ResponseSizeMin = 4

	// ResponseSizeMax is the largest response frame the device emits.
	ResponseSizeMax = 75
)

// Offsets of the header fields within a command frame.
const (
	countOffset  = 0
	opcodeOffset = 1
	param1Offset = 2
	param2Offset = 3
	dataOffset   = 5
)

// Packet is a finished command frame. It aliases the builder's buffer and
// is only valid until the buffer is reused for the next command.
type Packet struct {
	frame  []byte
	opcode OpCode
}

// Bytes returns the serialized frame.
func (p Packet) Bytes() []byte {
	return p.frame
}

// OpCode returns the command the frame requests.
func (p Packet) OpCode() OpCode {
	return p.opcode
}

// PacketBuilder assembles one command frame at a time into a caller
// supplied buffer, so sequential commands can reuse a single allocation.
// All fallible checks happen when a field is supplied; Build itself
// cannot fail.
type PacketBuilder struct {
	buf     []byte
	opcode  OpCode
	param1  uint8
	param2  uint16
	dataLen int
	sum     ChecksumFunc
}

// NewPacketBuilder returns a builder writing frames into buf. The buffer
// must hold at least CommandSizeMin bytes; payload capacity is bounded by
// its length.
func NewPacketBuilder(buf []byte) *PacketBuilder {
	return &PacketBuilder{buf: buf, sum: CRC16}
}

// SetChecksum replaces the frame checksum primitive. The default is
// CRC16.
func (b *PacketBuilder) SetChecksum(sum ChecksumFunc) *PacketBuilder {
	b.sum = sum
	return b
}

// Reset clears the builder for the next command.
func (b *PacketBuilder) Reset() *PacketBuilder {
	b.opcode = 0
	b.param1 = 0
	b.param2 = 0
	b.dataLen = 0
	return b
}

// OpCode sets the command opcode.
func (b *PacketBuilder) OpCode(op OpCode) *PacketBuilder {
	b.opcode = op
	return b
}

// Mode sets the command's param1 byte.
func (b *PacketBuilder) Mode(mode uint8) *PacketBuilder {
	b.param1 = mode
	return b
}

// Param2 sets the command's 16 bit param2 field.
func (b *PacketBuilder) Param2(v uint16) *PacketBuilder {
	b.param2 = v
	return b
}

// Data supplies the command payload. It fails with InvalidSizeError when
// the payload exceeds the protocol's maximum data unit and with
// OutOfRangeError when the destination buffer cannot hold the resulting
// frame.
func (b *PacketBuilder) Data(data []byte) error {
	if len(data) > MaxPDULen {
		return &InvalidSizeError{Len: len(data), Limit: MaxPDULen}
	}
	if CommandSizeMin+len(data) > len(b.buf) {
		return outOfRangeError("frame of %d bytes exceeds buffer of %d", CommandSizeMin+len(data), len(b.buf))
	}
	copy(b.buf[dataOffset:], data)
	b.dataLen = len(data)
	return nil
}

// PadData extends the payload with zero bytes up to length n. The device
// requires some payloads, such as AES input, to be sent at a fixed length
// regardless of the caller's input.
func (b *PacketBuilder) PadData(n int) error {
	if n > MaxPDULen {
		return &InvalidSizeError{Len: n, Limit: MaxPDULen}
	}
	if CommandSizeMin+n > len(b.buf) {
		return outOfRangeError("frame of %d bytes exceeds buffer of %d", CommandSizeMin+n, len(b.buf))
	}
	for i := b.dataLen; i < n; i++ {
		b.buf[dataOffset+i] = 0
	}
	if n > b.dataLen {
		b.dataLen = n
	}
	return nil
}

// Build assembles the frame: the count byte covering the whole frame
// including itself and the checksum, the header fields, the payload and
// the trailing checksum. The checksum spans everything before it and is
// always computed; the device silently drops frames without a valid one.
func (b *PacketBuilder) Build() Packet {
	count := CommandSizeMin + b.dataLen
	b.buf[countOffset] = uint8(count)
	b.buf[opcodeOffset] = uint8(b.opcode)
	b.buf[param1Offset] = b.param1
	binary.LittleEndian.PutUint16(b.buf[param2Offset:], b.param2)
	crc := b.sum(b.buf[:count-2])
	binary.LittleEndian.PutUint16(b.buf[count-2:], crc)
	return Packet{frame: b.buf[:count], opcode: b.opcode}
}
