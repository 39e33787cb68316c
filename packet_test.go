// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package atca_test

import (
	"bytes"

	. "gopkg.in/check.v1"

	. "github.com/canonical/go-atca"
	internal_testutil "github.com/canonical/go-atca/internal/testutil"
)

type packetSuite struct {
	buf [CommandSizeMax]byte
}

var _ = Suite(&packetSuite{})

func (s *packetSuite) TestBuildNoPayload(c *C) {
	p := NewPacketBuilder(s.buf[:]).OpCode(OpCodeSha).Build()
	c.Check(p.OpCode(), Equals, OpCodeSha)
	c.Check(p.Bytes(), DeepEquals, []byte{0x07, 0x47, 0x00, 0x00, 0x00, 0x2e, 0x85})
}

func (s *packetSuite) TestBuildHeaderFields(c *C) {
	b := NewPacketBuilder(s.buf[:])
	p := b.OpCode(OpCodeRead).Mode(0x80).Param2(0x0315).Build()
	frame := p.Bytes()
	c.Assert(frame, internal_testutil.LenEquals, CommandSizeMin)
	c.Check(frame[0], Equals, uint8(CommandSizeMin))
	c.Check(frame[1], Equals, uint8(OpCodeRead))
	c.Check(frame[2], Equals, uint8(0x80))
	c.Check(frame[3], Equals, uint8(0x15))
	c.Check(frame[4], Equals, uint8(0x03))
}

func (s *packetSuite) TestBuildWithPayload(c *C) {
	b := NewPacketBuilder(s.buf[:]).OpCode(OpCodeNonce).Mode(0x03)
	data := bytes.Repeat([]byte{0xa5}, 32)
	c.Assert(b.Data(data), IsNil)
	frame := b.Build().Bytes()
	c.Assert(frame, internal_testutil.LenEquals, CommandSizeMin+32)
	c.Check(frame[0], Equals, uint8(CommandSizeMin+32))
	c.Check(frame[5:37], DeepEquals, data)

	crc := CRC16(frame[:len(frame)-2])
	c.Check(frame[len(frame)-2], Equals, uint8(crc))
	c.Check(frame[len(frame)-1], Equals, uint8(crc>>8))
}

func (s *packetSuite) TestDataTooLong(c *C) {
	b := NewPacketBuilder(s.buf[:]).OpCode(OpCodeWrite)
	err := b.Data(make([]byte, MaxPDULen+1))
	c.Assert(err, FitsTypeOf, &InvalidSizeError{})
	c.Check(err.(*InvalidSizeError).Len, Equals, MaxPDULen+1)
	c.Check(err.(*InvalidSizeError).Limit, Equals, MaxPDULen)
}

func (s *packetSuite) TestDataExceedsBuffer(c *C) {
	var small [16]byte
	b := NewPacketBuilder(small[:]).OpCode(OpCodeWrite)
	err := b.Data(make([]byte, 10))
	c.Assert(err, FitsTypeOf, &OutOfRangeError{})
	c.Check(b.Data(make([]byte, 9)), IsNil)
}

func (s *packetSuite) TestPadData(c *C) {
	b := NewPacketBuilder(s.buf[:]).OpCode(OpCodeAes)
	c.Assert(b.Data([]byte{0x01, 0x02, 0x03}), IsNil)
	c.Assert(b.PadData(16), IsNil)
	frame := b.Build().Bytes()
	c.Assert(frame, internal_testutil.LenEquals, CommandSizeMin+16)
	c.Check(frame[5:21], DeepEquals, []byte{
		0x01, 0x02, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00})
}

func (s *packetSuite) TestReset(c *C) {
	b := NewPacketBuilder(s.buf[:])
	c.Assert(b.OpCode(OpCodeNonce).Mode(0x03).Data(make([]byte, 32)), IsNil)
	b.Build()

	p := b.Reset().OpCode(OpCodeInfo).Build()
	c.Check(p.Bytes(), DeepEquals, []byte{0x07, 0x30, 0x00, 0x00, 0x00, 0x03, 0x5d})
}

func (s *packetSuite) TestSetChecksum(c *C) {
	b := NewPacketBuilder(s.buf[:]).SetChecksum(func(data []byte) uint16 { return 0xabcd })
	frame := b.OpCode(OpCodeInfo).Build().Bytes()
	c.Check(frame[5], Equals, uint8(0xcd))
	c.Check(frame[6], Equals, uint8(0xab))
}

func (s *packetSuite) TestFrameBounds(c *C) {
	c.Check(CommandSizeMin, Equals, 7)
	c.Check(CommandSizeMax, Equals, 151)
	c.Check(MaxPDULen, Equals, 144)
}
