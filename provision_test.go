// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package atca_test

import (
	"time"

	. "gopkg.in/check.v1"

	. "github.com/canonical/go-atca"
	internal_testutil "github.com/canonical/go-atca/internal/testutil"
	"github.com/canonical/go-atca/testutil"
)

type provisionSuite struct{}

var _ = Suite(&provisionSuite{})

func (s *provisionSuite) newDevice(transport *testutil.Transport) *Device {
	return NewDevice(transport, WithWait(func(time.Duration) {}))
}

// queueUnlockedRun scripts the responses for a full provisioning pass
// against a factory fresh device: the config lock query, nine word
// writes, one block write, the config lock command and the data lock
// query.
func (s *provisionSuite) queueUnlockedRun(transport *testutil.Transport) {
	transport.QueueData(testutil.LockBytesWord(false, false))
	for i := 0; i < 10; i++ {
		transport.QueueStatus(StatusSuccess)
	}
	transport.QueueStatus(StatusSuccess)
	transport.QueueData(testutil.LockBytesWord(true, false))
}

func (s *provisionSuite) TestProvisionFreshDevice(c *C) {
	transport := testutil.NewTransport()
	s.queueUnlockedRun(transport)

	_, err := NewTrustAndGo(s.newDevice(transport))
	c.Assert(err, IsNil)

	c.Check(transport.CommandCount(OpCodeRead), Equals, 2)
	c.Check(transport.CommandCount(OpCodeWrite), Equals, 10)
	c.Check(transport.CommandCount(OpCodeLock), Equals, 1)
}

func (s *provisionSuite) TestProvisionWriteSequence(c *C) {
	transport := testutil.NewTransport()
	s.queueUnlockedRun(transport)

	_, err := NewTrustAndGo(s.newDevice(transport))
	c.Assert(err, IsNil)

	c.Assert(transport.Commands, internal_testutil.LenEquals, 13)

	// Eight word writes covering the SlotConfig table at word addresses
	// 0x05 through 0x0c, straddling the block 0/1 boundary.
	slotConfigs := TrustAndGoSlotConfigs()
	encoded := EncodeSlotConfigs(slotConfigs)
	for i := 0; i < 8; i++ {
		frame := transport.Commands[1+i]
		c.Check(frame[1], Equals, uint8(OpCodeWrite))
		c.Check(frame[2], Equals, uint8(0x00))
		c.Check(frame[3], Equals, uint8(0x05+i))
		c.Check(frame[5:9], DeepEquals, encoded[i*4:i*4+4])
	}

	// The chip options word at address 0x16.
	frame := transport.Commands[9]
	c.Check(frame[1], Equals, uint8(OpCodeWrite))
	c.Check(frame[3], Equals, uint8(0x16))
	c.Check(frame[5:9], DeepEquals, []byte{0xff, 0xff, 0x60, 0x0e})

	// The KeyConfig table as one block write at address 0x18.
	frame = transport.Commands[10]
	c.Check(frame[1], Equals, uint8(OpCodeWrite))
	c.Check(frame[2], Equals, uint8(0x80))
	c.Check(frame[3], Equals, uint8(0x18))
	c.Check(frame[5:37], DeepEquals, EncodeKeyConfigs(TrustAndGoKeyConfigs()))

	// The config zone lock, unchecked mode.
	frame = transport.Commands[11]
	c.Check(frame[1], Equals, uint8(OpCodeLock))
	c.Check(frame[2], Equals, uint8(0x80))
}

func (s *provisionSuite) TestProvisionLockedDeviceIsNoOp(c *C) {
	// Re-running provisioning against an already locked device must not
	// issue a single write.
	transport := testutil.NewTransport().
		QueueData(testutil.LockBytesWord(true, false)).
		QueueData(testutil.LockBytesWord(true, false))

	_, err := NewTrustAndGo(s.newDevice(transport))
	c.Assert(err, IsNil)

	c.Check(transport.CommandCount(OpCodeWrite), Equals, 0)
	c.Check(transport.CommandCount(OpCodeLock), Equals, 0)
	c.Check(transport.CommandCount(OpCodeRead), Equals, 2)
}

func (s *provisionSuite) TestProvisionWithDataZoneLock(c *C) {
	transport := testutil.NewTransport()
	s.queueUnlockedRun(transport)
	transport.QueueStatus(StatusSuccess) // data zone lock

	_, err := NewTrustAndGo(s.newDevice(transport), WithDataZoneLock())
	c.Assert(err, IsNil)

	c.Check(transport.CommandCount(OpCodeLock), Equals, 2)
	last := transport.Commands[len(transport.Commands)-1]
	c.Check(last[1], Equals, uint8(OpCodeLock))
	c.Check(last[2], Equals, uint8(0x81))
}

func (s *provisionSuite) TestProvisionDataZoneAlreadyLocked(c *C) {
	transport := testutil.NewTransport().
		QueueData(testutil.LockBytesWord(true, true)).
		QueueData(testutil.LockBytesWord(true, true))

	_, err := NewTrustAndGo(s.newDevice(transport), WithDataZoneLock())
	c.Assert(err, IsNil)
	c.Check(transport.CommandCount(OpCodeLock), Equals, 0)
}

func (s *provisionSuite) TestProvisionStopsOnWriteFailure(c *C) {
	// An interrupted run leaves the device unlocked; the caller can
	// retry from the top.
	transport := testutil.NewTransport().
		QueueData(testutil.LockBytesWord(false, false)).
		QueueStatus(StatusSuccess).
		QueueStatus(StatusExecutionError)

	_, err := NewTrustAndGo(s.newDevice(transport))
	c.Assert(err, FitsTypeOf, &StatusError{})
	c.Check(transport.CommandCount(OpCodeLock), Equals, 0)
}

func (s *provisionSuite) TestProfileSlotAssignments(c *C) {
	c.Check(AuthPrivateKey, Equals, SlotPrivateKey00)
	c.Check(IOProtectionKey, Equals, SlotPrivateKey06)
	c.Check(AESKey, Equals, SlotCertificate09)
	c.Check(SignerPublicKey, Equals, SlotCertificate0B)
}

func (s *provisionSuite) TestProfilePermissions(c *C) {
	slotConfigs := TrustAndGoSlotConfigs()
	keyConfigs := TrustAndGoKeyConfigs()

	// The three user keys are rederivable; the primary and sign keys
	// are fixed for the device lifetime.
	for _, slot := range []Slot{UserPrivateKey1, UserPrivateKey2, UserPrivateKey3} {
		c.Check(keyConfigs[slot].Private(), internal_testutil.IsTrue)
		c.Check(keyConfigs[slot].KeyType(), Equals, KeyTypeP256)
		c.Check(slotConfigs[slot].WriteConfig(), Equals, uint8(0x02))
	}
	c.Check(slotConfigs[AuthPrivateKey].WriteConfig(), Equals, uint8(0x00))
	c.Check(slotConfigs[SignPrivateKey].ExternalSignatures(), internal_testutil.IsFalse)
	c.Check(slotConfigs[AuthPrivateKey].ExternalSignatures(), internal_testutil.IsTrue)
}
