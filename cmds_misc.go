// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package atca

// CheckMacOtherSize is the length of the fixed input portion of a
// CheckMac challenge.
const CheckMacOtherSize = 13

// CheckMac constructs frames for the CheckMac command, which compares a
// MAC computed by the device against one supplied by the host.
type CheckMac struct {
	b *PacketBuilder
}

// NewCheckMac returns a CheckMac command bound to the supplied builder.
func NewCheckMac(b *PacketBuilder) *CheckMac {
	return &CheckMac{b: b}
}

// CheckMac compares response against a MAC over challenge computed with
// the key in the given slot. challenge and response are 32 bytes each and
// otherData carries the 13 fixed input bytes.
func (c *CheckMac) CheckMac(slot Slot, challenge, response, otherData []byte) (Packet, error) {
	if !slot.IsValid() {
		return Packet{}, badParameterError("no such slot 0x%02x", uint8(slot))
	}
	if len(challenge) != 32 {
		return Packet{}, &InvalidSizeError{Len: len(challenge), Limit: 32}
	}
	if len(response) != 32 {
		return Packet{}, &InvalidSizeError{Len: len(response), Limit: 32}
	}
	if len(otherData) != CheckMacOtherSize {
		return Packet{}, &InvalidSizeError{Len: len(otherData), Limit: CheckMacOtherSize}
	}

	c.b.Reset().OpCode(OpCodeCheckMac).Param2(uint16(slot))
	data := make([]byte, 0, 32+32+CheckMacOtherSize)
	data = append(data, challenge...)
	data = append(data, response...)
	data = append(data, otherData...)
	if err := c.b.Data(data); err != nil {
		return Packet{}, err
	}
	return c.b.Build(), nil
}

// Counter constructs frames for the Counter command, which drives the two
// monotonic counters.
type Counter struct {
	b *PacketBuilder
}

// NewCounter returns a Counter command bound to the supplied builder.
func NewCounter(b *PacketBuilder) *Counter {
	return &Counter{b: b}
}

func (c *Counter) counter(mode uint8, id uint8) (Packet, error) {
	if id > 1 {
		return Packet{}, badParameterError("no such counter %d", id)
	}
	return c.b.Reset().OpCode(OpCodeCounter).Mode(mode).Param2(uint16(id)).Build(), nil
}

// Read returns the current value of the given counter.
func (c *Counter) Read(id uint8) (Packet, error) {
	return c.counter(modeCounterRead, id)
}

// Increment advances the given counter. Counters only count up; there is
// no way to reset one.
func (c *Counter) Increment(id uint8) (Packet, error) {
	return c.counter(modeCounterIncrement, id)
}

// KdfMessageMax bounds the input message of a single KDF command.
const KdfMessageMax = 128

// Kdf constructs frames for the KDF command, which derives keys inside
// the device using HKDF, AES or PRF calculations.
type Kdf struct {
	b *PacketBuilder
}

// NewKdf returns a Kdf command bound to the supplied builder.
func NewKdf(b *PacketBuilder) *Kdf {
	return &Kdf{b: b}
}

// Kdf runs a derivation. mode selects the algorithm and the source and
// target locations, keyID addresses the source key, details carries the
// four byte algorithm parameter word and message the input data.
func (k *Kdf) Kdf(mode uint8, keyID uint16, details []byte, message []byte) (Packet, error) {
	if len(details) != WordSize {
		return Packet{}, &InvalidSizeError{Len: len(details), Limit: WordSize}
	}
	if len(message) > KdfMessageMax {
		return Packet{}, &InvalidSizeError{Len: len(message), Limit: KdfMessageMax}
	}

	k.b.Reset().OpCode(OpCodeKdf).Mode(mode).Param2(keyID)
	data := make([]byte, 0, WordSize+len(message))
	data = append(data, details...)
	data = append(data, message...)
	if err := k.b.Data(data); err != nil {
		return Packet{}, err
	}
	return k.b.Build(), nil
}

// SelfTest constructs frames for the SelfTest command.
type SelfTest struct {
	b *PacketBuilder
}

// NewSelfTest returns a SelfTest command bound to the supplied builder.
func NewSelfTest(b *PacketBuilder) *SelfTest {
	return &SelfTest{b: b}
}

// Test runs the selected engine self tests. mode is a combination of the
// SelfTest mode bits; SelfTestAll runs every testable engine.
func (s *SelfTest) Test(mode uint8) (Packet, error) {
	if mode&^SelfTestAll != 0 {
		return Packet{}, badParameterError("unknown self test bits 0x%02x", mode&^SelfTestAll)
	}
	return s.b.Reset().OpCode(OpCodeSelfTest).Mode(mode).Build(), nil
}

// SecureBoot constructs frames for the SecureBoot command, which checks a
// firmware digest and signature against the stored boot public key.
type SecureBoot struct {
	b *PacketBuilder
}

// NewSecureBoot returns a SecureBoot command bound to the supplied
// builder.
func NewSecureBoot(b *PacketBuilder) *SecureBoot {
	return &SecureBoot{b: b}
}

// Full verifies the firmware digest against the supplied signature.
func (s *SecureBoot) Full(digest Digest, sig Signature) (Packet, error) {
	s.b.Reset().OpCode(OpCodeSecureBoot).Mode(modeSecureBootFull)
	if err := s.b.Data(append(digest[:], sig[:]...)); err != nil {
		return Packet{}, err
	}
	return s.b.Build(), nil
}

// UpdateExtra constructs frames for the UpdateExtra command, which writes
// the two UserExtra configuration bytes after the configuration zone is
// locked.
type UpdateExtra struct {
	b *PacketBuilder
}

// NewUpdateExtra returns an UpdateExtra command bound to the supplied
// builder.
func NewUpdateExtra(b *PacketBuilder) *UpdateExtra {
	return &UpdateExtra{b: b}
}

// Update writes value to the UserExtra byte selected by mode (0 or 1).
func (u *UpdateExtra) Update(mode uint8, value uint8) (Packet, error) {
	if mode > 1 {
		return Packet{}, badParameterError("unknown UserExtra selector %d", mode)
	}
	return u.b.Reset().OpCode(OpCodeUpdateExtra).Mode(mode).Param2(uint16(value)).Build(), nil
}

// Pause constructs frames for the Pause command, used on shared buses to
// idle devices whose selector byte does not match.
type Pause struct {
	b *PacketBuilder
}

// NewPause returns a Pause command bound to the supplied builder.
func NewPause(b *PacketBuilder) *Pause {
	return &Pause{b: b}
}

// Pause idles every device on the bus whose selector differs from the
// given value.
func (p *Pause) Pause(selector uint8) (Packet, error) {
	return p.b.Reset().OpCode(OpCodePause).Mode(selector).Build(), nil
}
