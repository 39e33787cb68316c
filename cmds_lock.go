// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package atca

// Lock constructs frames for the Lock command. Locking is irreversible on
// the physical device: once a zone is locked it can never be unlocked,
// and no operation in this package reverses the transition.
type Lock struct {
	b *PacketBuilder
}

// NewLock returns a Lock command bound to the supplied builder.
func NewLock(b *PacketBuilder) *Lock {
	return &Lock{b: b}
}

// zone builds a zone lock frame. A zero summary CRC sets the mode bit
// telling the device to skip verifying the zone contents against it.
func (l *Lock) zone(mode uint8, summary uint16) Packet {
	if summary == 0 {
		mode |= modeLockNoChecksum
	}
	return l.b.Reset().OpCode(OpCodeLock).Mode(mode).Param2(summary).Build()
}

// Config locks the configuration zone. If summary is non zero the device
// verifies it against a CRC of the whole zone before locking.
func (l *Lock) Config(summary uint16) (Packet, error) {
	return l.zone(modeLockConfig, summary), nil
}

// Data locks the data and OTP zones. If summary is non zero the device
// verifies it against a CRC of the zone contents before locking.
func (l *Lock) Data(summary uint16) (Packet, error) {
	return l.zone(modeLockData, summary), nil
}

// Slot locks an individual data zone slot. The slot must be marked
// Lockable in its KeyConfig word for the device to accept this.
func (l *Lock) Slot(slot Slot) (Packet, error) {
	if !slot.IsValid() {
		return Packet{}, badParameterError("no such slot 0x%02x", uint8(slot))
	}
	mode := modeLockSlot | uint8(slot)<<2 | modeLockNoChecksum
	return l.b.Reset().OpCode(OpCodeLock).Mode(mode).Build(), nil
}
