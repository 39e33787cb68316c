// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package atca

// Positions of the lock bytes within the word at LockBytesIndex.
const (
	lockValueOffset  = 2 // data/OTP zone lock byte (config index 86)
	lockConfigOffset = 3 // config zone lock byte (config index 87)
)

// zoneUnlocked is the value a lock byte holds while its zone is still
// writable. Any other value means the zone is permanently locked.
const zoneUnlocked = 0x55

// Memory provides zone level access to device non-volatile memory, and
// gates writes on the zone lock state: a write against a zone known to be
// locked fails locally with a ZoneLockedError instead of wasting a bus
// round trip on a doomed transmission.
type Memory struct {
	d *Device
}

// Memory returns the device's memory access interface.
func (d *Device) Memory() *Memory {
	return &Memory{d: d}
}

// ReadConfig reads a word or block from the configuration zone.
func (m *Memory) ReadConfig(size Size, block, offset uint8) ([]byte, error) {
	p, err := NewRead(m.d.b).Register(ZoneConfig, size, block, offset)
	if err != nil {
		return nil, err
	}
	rsp, err := m.d.Execute(p)
	if err != nil {
		return nil, err
	}
	if len(rsp) != size.Len() {
		return nil, parseError("read response has length %d, want %d", len(rsp), size.Len())
	}
	out := make([]byte, size.Len())
	copy(out, rsp)
	return out, nil
}

// WriteConfig writes a word or block to the configuration zone. It fails
// locally once the zone reports locked.
func (m *Memory) WriteConfig(size Size, block, offset uint8, data []byte) error {
	if err := m.checkUnlocked(ZoneConfig); err != nil {
		return err
	}
	p, err := NewWrite(m.d.b).Register(ZoneConfig, size, block, offset, data)
	if err != nil {
		return err
	}
	_, err = m.d.Execute(p)
	return err
}

// ReadSlot reads one 32 byte block from a data zone slot.
func (m *Memory) ReadSlot(slot Slot, block uint8) ([]byte, error) {
	p, err := NewRead(m.d.b).Slot(slot, block)
	if err != nil {
		return nil, err
	}
	rsp, err := m.d.Execute(p)
	if err != nil {
		return nil, err
	}
	if len(rsp) != BlockSize {
		return nil, parseError("read response has length %d, want %d", len(rsp), BlockSize)
	}
	out := make([]byte, BlockSize)
	copy(out, rsp)
	return out, nil
}

// WriteSlot writes one 32 byte block to a data zone slot. It fails
// locally once the data zone reports locked.
func (m *Memory) WriteSlot(slot Slot, block uint8, data []byte) error {
	if err := m.checkUnlocked(ZoneData); err != nil {
		return err
	}
	p, err := NewWrite(m.d.b).Slot(slot, block, data)
	if err != nil {
		return err
	}
	_, err = m.d.Execute(p)
	return err
}

// IsLocked queries the device for a zone's lock flag. The OTP zone shares
// the data zone's lock byte.
func (m *Memory) IsLocked(zone Zone) (bool, error) {
	word, err := m.ReadConfig(SizeWord, LockBytesIndex/BlockSize, LockBytesIndex%BlockSize/WordSize)
	if err != nil {
		return false, err
	}

	offset := lockValueOffset
	if zone == ZoneConfig {
		offset = lockConfigOffset
	}
	locked := word[offset] != zoneUnlocked

	if locked {
		m.d.setLockStatus(zone, lockSealed)
	} else {
		m.d.setLockStatus(zone, lockOpen)
	}
	return locked, nil
}

// LockZone permanently locks a zone, skipping the content summary check.
// This cannot be undone.
func (m *Memory) LockZone(zone Zone) error {
	return m.lockZone(zone, 0)
}

// LockZoneWithSummary permanently locks a zone after the device verifies
// its full contents against the supplied CRC. This cannot be undone.
func (m *Memory) LockZoneWithSummary(zone Zone, summary uint16) error {
	return m.lockZone(zone, summary)
}

func (m *Memory) lockZone(zone Zone, summary uint16) error {
	lock := NewLock(m.d.b)

	var p Packet
	var err error
	switch zone {
	case ZoneConfig:
		p, err = lock.Config(summary)
	case ZoneData, ZoneOTP:
		p, err = lock.Data(summary)
	default:
		return badParameterError("unknown zone 0x%02x", uint8(zone))
	}
	if err != nil {
		return err
	}

	if _, err := m.d.Execute(p); err != nil {
		return err
	}
	m.d.setLockStatus(zone, lockSealed)
	return nil
}

// LockSlot permanently locks an individual data zone slot. This cannot be
// undone.
func (m *Memory) LockSlot(slot Slot) error {
	p, err := NewLock(m.d.b).Slot(slot)
	if err != nil {
		return err
	}
	_, err = m.d.Execute(p)
	return err
}

// SerialNumber reads the device's unique nine byte serial number from the
// first configuration block.
func (m *Memory) SerialNumber() (Serial, error) {
	block, err := m.ReadConfig(SizeBlock, 0, 0)
	if err != nil {
		return Serial{}, err
	}
	return ParseSerial(block)
}

// ChipOptions reads the four byte chip options word.
func (m *Memory) ChipOptions() (Word, error) {
	block, offset, _, err := LocateIndex(ChipOptionsIndex)
	if err != nil {
		return Word{}, err
	}
	word, err := m.ReadConfig(SizeWord, block, offset)
	if err != nil {
		return Word{}, err
	}
	return ParseWord(word)
}

// checkUnlocked fails with a ZoneLockedError when the zone is known to be
// locked, querying the device once if the state has not been observed
// yet.
func (m *Memory) checkUnlocked(zone Zone) error {
	if m.d.lockStatus(zone) == lockUnknown {
		if _, err := m.IsLocked(zone); err != nil {
			return err
		}
	}
	if m.d.lockStatus(zone) == lockSealed {
		return &ZoneLockedError{Zone: zone}
	}
	return nil
}
