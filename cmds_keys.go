// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package atca

// GenDig constructs frames for the GenDig command, which folds a stored
// slot value into the device's internal TempKey register with SHA-256.
type GenDig struct {
	b *PacketBuilder
}

// NewGenDig returns a GenDig command bound to the supplied builder.
func NewGenDig(b *PacketBuilder) *GenDig {
	return &GenDig{b: b}
}

// GenDig combines the value in keyID with TempKey. TempKey must already
// hold a valid nonce; that precondition is enforced by the device, not
// locally checkable.
func (g *GenDig) GenDig(keyID Slot) (Packet, error) {
	if !keyID.IsValid() {
		return Packet{}, badParameterError("no such slot 0x%02x", uint8(keyID))
	}
	return g.b.Reset().OpCode(OpCodeGenDig).Mode(uint8(ZoneData)).Param2(uint16(keyID)).Build(), nil
}

// GenKey constructs frames for the GenKey command.
type GenKey struct {
	b *PacketBuilder
}

// NewGenKey returns a GenKey command bound to the supplied builder.
func NewGenKey(b *PacketBuilder) *GenKey {
	return &GenKey{b: b}
}

// Private generates a new random private key in the given slot. Command
// execution returns the 64 byte public key.
func (g *GenKey) Private(slot Slot) (Packet, error) {
	if !slot.IsPrivateKey() {
		return Packet{}, badParameterError("%v cannot hold a private key", slot)
	}
	return g.b.Reset().OpCode(OpCodeGenKey).Mode(modeGenKeyPrivate).Param2(uint16(slot)).Build(), nil
}

// Public recomputes and returns the public key of the private key stored
// in the given slot.
func (g *GenKey) Public(slot Slot) (Packet, error) {
	if !slot.IsPrivateKey() {
		return Packet{}, badParameterError("%v cannot hold a private key", slot)
	}
	return g.b.Reset().OpCode(OpCodeGenKey).Mode(modeGenKeyPublic).Param2(uint16(slot)).Build(), nil
}

// Sign constructs frames for the Sign command.
type Sign struct {
	b *PacketBuilder
}

// NewSign returns a Sign command bound to the supplied builder.
func NewSign(b *PacketBuilder) *Sign {
	return &Sign{b: b}
}

// External signs the digest held in TempKey with the private key in the
// given slot. Command execution returns the 64 byte signature. TempKey
// must have been loaded with the Nonce command first.
func (s *Sign) External(slot Slot) (Packet, error) {
	if !slot.IsPrivateKey() {
		return Packet{}, badParameterError("%v cannot hold a private key", slot)
	}
	return s.b.Reset().OpCode(OpCodeSign).Mode(modeSignExternal).Param2(uint16(slot)).Build(), nil
}

// Verify constructs frames for the Verify command.
type Verify struct {
	b *PacketBuilder
}

// NewVerify returns a Verify command bound to the supplied builder.
func NewVerify(b *PacketBuilder) *Verify {
	return &Verify{b: b}
}

// External verifies the signature over the digest in TempKey against an
// externally supplied public key.
func (v *Verify) External(pub PublicKey, sig Signature) (Packet, error) {
	v.b.Reset().OpCode(OpCodeVerify).Mode(modeVerifyExternal).Param2(uint16(KeyTypeP256))
	if err := v.b.Data(append(sig[:], pub[:]...)); err != nil {
		return Packet{}, err
	}
	return v.b.Build(), nil
}

// Stored verifies the signature over the digest in TempKey against the
// public key stored in the given slot.
func (v *Verify) Stored(slot Slot, sig Signature) (Packet, error) {
	if !slot.IsValid() {
		return Packet{}, badParameterError("no such slot 0x%02x", uint8(slot))
	}
	v.b.Reset().OpCode(OpCodeVerify).Mode(modeVerifyStored).Param2(uint16(slot))
	if err := v.b.Data(sig[:]); err != nil {
		return Packet{}, err
	}
	return v.b.Build(), nil
}

// Ecdh constructs frames for the ECDH command.
type Ecdh struct {
	b *PacketBuilder
}

// NewEcdh returns an Ecdh command bound to the supplied builder.
func NewEcdh(b *PacketBuilder) *Ecdh {
	return &Ecdh{b: b}
}

// Ecdh combines the private key in the given slot with an external public
// key. Depending on the slot's configuration the premaster secret is
// returned in the clear or written to the adjacent slot.
func (e *Ecdh) Ecdh(slot Slot, pub PublicKey) (Packet, error) {
	if !slot.IsPrivateKey() {
		return Packet{}, badParameterError("%v cannot hold a private key", slot)
	}
	e.b.Reset().OpCode(OpCodeEcdh).Param2(uint16(slot))
	if err := e.b.Data(pub[:]); err != nil {
		return Packet{}, err
	}
	return e.b.Build(), nil
}

// DeriveKey constructs frames for the DeriveKey command.
type DeriveKey struct {
	b *PacketBuilder
}

// NewDeriveKey returns a DeriveKey command bound to the supplied builder.
func NewDeriveKey(b *PacketBuilder) *DeriveKey {
	return &DeriveKey{b: b}
}

// Roll derives a new key into the target slot from the slot's current
// contents combined with the random nonce in TempKey.
func (d *DeriveKey) Roll(target Slot) (Packet, error) {
	if !target.IsValid() {
		return Packet{}, badParameterError("no such slot 0x%02x", uint8(target))
	}
	return d.b.Reset().OpCode(OpCodeDeriveKey).Mode(modeDeriveKeyRandom).Param2(uint16(target)).Build(), nil
}
