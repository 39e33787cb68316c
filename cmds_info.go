// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package atca

// Info constructs frames for the Info command, which reports device
// static and dynamic state without touching non-volatile memory.
type Info struct {
	b *PacketBuilder
}

// NewInfo returns an Info command bound to the supplied builder.
func NewInfo(b *PacketBuilder) *Info {
	return &Info{b: b}
}

// Revision requests the four byte device revision word.
func (i *Info) Revision() (Packet, error) {
	return i.b.Reset().OpCode(OpCodeInfo).Mode(modeInfoRevision).Build(), nil
}

// KeyValid asks whether the public or private key in the given slot is
// valid.
func (i *Info) KeyValid(slot Slot) (Packet, error) {
	if !slot.IsValid() {
		return Packet{}, badParameterError("no such slot 0x%02x", uint8(slot))
	}
	return i.b.Reset().OpCode(OpCodeInfo).Mode(modeInfoKeyValid).Param2(uint16(slot)).Build(), nil
}

// State requests the device's volatile state, including TempKey flags.
func (i *Info) State() (Packet, error) {
	return i.b.Reset().OpCode(OpCodeInfo).Mode(modeInfoState).Build(), nil
}
