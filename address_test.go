// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package atca_test

import (
	. "gopkg.in/check.v1"

	. "github.com/canonical/go-atca"
)

type addressSuite struct{}

var _ = Suite(&addressSuite{})

func (s *addressSuite) TestConfigAddr(c *C) {
	addr, err := ZoneConfig.Addr(0, 5)
	c.Check(err, IsNil)
	c.Check(addr, Equals, uint16(0x0005))

	addr, err = ZoneConfig.Addr(3, 0)
	c.Check(err, IsNil)
	c.Check(addr, Equals, uint16(0x0018))
}

func (s *addressSuite) TestConfigAddrOutOfRange(c *C) {
	_, err := ZoneConfig.Addr(4, 0)
	c.Check(err, FitsTypeOf, &OutOfRangeError{})

	_, err = ZoneConfig.Addr(0, 8)
	c.Check(err, FitsTypeOf, &OutOfRangeError{})
}

func (s *addressSuite) TestOTPAddr(c *C) {
	addr, err := ZoneOTP.Addr(1, 7)
	c.Check(err, IsNil)
	c.Check(addr, Equals, uint16(0x000f))

	_, err = ZoneOTP.Addr(2, 0)
	c.Check(err, FitsTypeOf, &OutOfRangeError{})
}

func (s *addressSuite) TestDataAddrRequiresSlot(c *C) {
	_, err := ZoneData.Addr(0, 0)
	c.Check(err, FitsTypeOf, &BadParameterError{})
}

func (s *addressSuite) TestSlotAddr(c *C) {
	addr, err := ZoneData.SlotAddr(SlotPrivateKey02, 1)
	c.Check(err, IsNil)
	c.Check(addr, Equals, uint16(0x0110))

	addr, err = ZoneData.SlotAddr(SlotData08, 12)
	c.Check(err, IsNil)
	c.Check(addr, Equals, uint16(0x0c40))
}

func (s *addressSuite) TestSlotAddrBlockCapacity(c *C) {
	// Slots 0 to 7 span two blocks, slot 8 thirteen and the rest three.
	_, err := ZoneData.SlotAddr(SlotPrivateKey00, 2)
	c.Check(err, FitsTypeOf, &OutOfRangeError{})

	_, err = ZoneData.SlotAddr(SlotData08, 13)
	c.Check(err, FitsTypeOf, &OutOfRangeError{})

	_, err = ZoneData.SlotAddr(SlotCertificate09, 3)
	c.Check(err, FitsTypeOf, &OutOfRangeError{})

	_, err = ZoneData.SlotAddr(SlotCertificate0F, 2)
	c.Check(err, IsNil)
}

func (s *addressSuite) TestSlotAddrWrongZone(c *C) {
	_, err := ZoneConfig.SlotAddr(SlotPrivateKey00, 0)
	c.Check(err, FitsTypeOf, &BadParameterError{})
}

func (s *addressSuite) TestLocateIndexInverse(c *C) {
	// LocateIndex must invert the word addressing over the index ranges
	// holding the SlotConfig and KeyConfig tables.
	for index := SlotConfigIndex; index < SlotConfigIndex+32; index++ {
		block, offset, zone, err := LocateIndex(index)
		c.Assert(err, IsNil)
		c.Check(zone, Equals, ZoneConfig)

		addr, err := zone.Addr(block, offset)
		c.Assert(err, IsNil)
		c.Check(int(addr)*4+index%4, Equals, index)
	}
	for index := KeyConfigIndex; index < KeyConfigIndex+32; index++ {
		block, offset, zone, err := LocateIndex(index)
		c.Assert(err, IsNil)
		c.Check(zone, Equals, ZoneConfig)

		addr, err := zone.Addr(block, offset)
		c.Assert(err, IsNil)
		c.Check(int(addr)*4+index%4, Equals, index)
	}
}

func (s *addressSuite) TestLocateIndexFixedPoints(c *C) {
	block, offset, _, err := LocateIndex(SlotConfigIndex)
	c.Assert(err, IsNil)
	c.Check(block, Equals, uint8(0))
	c.Check(offset, Equals, uint8(5))

	block, offset, _, err = LocateIndex(LockBytesIndex)
	c.Assert(err, IsNil)
	c.Check(block, Equals, uint8(2))
	c.Check(offset, Equals, uint8(5))

	block, offset, _, err = LocateIndex(ChipOptionsIndex)
	c.Assert(err, IsNil)
	c.Check(block, Equals, uint8(2))
	c.Check(offset, Equals, uint8(6))

	block, offset, _, err = LocateIndex(KeyConfigIndex)
	c.Assert(err, IsNil)
	c.Check(block, Equals, uint8(3))
	c.Check(offset, Equals, uint8(0))
}

func (s *addressSuite) TestLocateIndexOutOfRange(c *C) {
	_, _, _, err := LocateIndex(-1)
	c.Check(err, FitsTypeOf, &OutOfRangeError{})

	_, _, _, err = LocateIndex(ConfigZoneSize)
	c.Check(err, FitsTypeOf, &OutOfRangeError{})
}

func (s *addressSuite) TestEncode(c *C) {
	c.Check(ZoneConfig.Encode(SizeWord), Equals, uint8(0x00))
	c.Check(ZoneConfig.Encode(SizeBlock), Equals, uint8(0x80))
	c.Check(ZoneOTP.Encode(SizeWord), Equals, uint8(0x01))
	c.Check(ZoneData.Encode(SizeBlock), Equals, uint8(0x82))
}
