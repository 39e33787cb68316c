// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package atca

// ShaUpdateMax bounds the payload of a single SHA update frame; the
// device rejects 64 bytes or more in one step.
const ShaUpdateMax = 64

// Sha constructs frames for the three phase incremental SHA-256 command.
// A sequence is Start, zero or more Updates, then End; no other command
// may interleave on the same device while a sequence is open, since the
// hash context lives in the device.
type Sha struct {
	b *PacketBuilder
}

// NewSha returns a Sha command bound to the supplied builder.
func NewSha(b *PacketBuilder) *Sha {
	return &Sha{b: b}
}

// Start initializes the device's SHA context. It takes no payload.
func (s *Sha) Start() (Packet, error) {
	return s.b.Reset().OpCode(OpCodeSha).Mode(modeShaStart).Build(), nil
}

// Update adds data to the SHA context. The payload must be shorter than
// ShaUpdateMax.
func (s *Sha) Update(data []byte) (Packet, error) {
	if len(data) >= ShaUpdateMax {
		return Packet{}, &InvalidSizeError{Len: len(data), Limit: ShaUpdateMax - 1}
	}
	s.b.Reset().OpCode(OpCodeSha).Mode(modeShaUpdate)
	if err := s.b.Data(data); err != nil {
		return Packet{}, err
	}
	return s.b.Build(), nil
}

// End completes the calculation. Command execution returns the 32 byte
// digest.
func (s *Sha) End() (Packet, error) {
	return s.b.Reset().OpCode(OpCodeSha).Mode(modeShaEnd).Build(), nil
}

// Public adds the 64 byte ECC public key stored in the given slot to the
// SHA context.
func (s *Sha) Public(slot Slot) (Packet, error) {
	if !slot.IsValid() {
		return Packet{}, badParameterError("no such slot 0x%02x", uint8(slot))
	}
	return s.b.Reset().OpCode(OpCodeSha).Mode(modeShaPublic).Param2(uint16(slot)).Build(), nil
}
