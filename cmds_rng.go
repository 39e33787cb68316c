// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package atca

// RandomSize is the number of bytes the Random command returns.
const RandomSize = 32

// NonceNumInSize is the host entropy length for a random nonce.
const NonceNumInSize = 20

// Random constructs frames for the Random command.
type Random struct {
	b *PacketBuilder
}

// NewRandom returns a Random command bound to the supplied builder.
func NewRandom(b *PacketBuilder) *Random {
	return &Random{b: b}
}

// Random requests 32 bytes from the device RNG, updating its seed.
func (r *Random) Random() (Packet, error) {
	return r.b.Reset().OpCode(OpCodeRandom).Build(), nil
}

// Nonce constructs frames for the Nonce command, which loads the device's
// TempKey register. Several commands (AES with GenDig derived keys, Sign,
// GenDig) require TempKey to hold a valid value first.
type Nonce struct {
	b *PacketBuilder
}

// NewNonce returns a Nonce command bound to the supplied builder.
func NewNonce(b *PacketBuilder) *Nonce {
	return &Nonce{b: b}
}

// Random combines 20 bytes of host entropy with the device RNG into
// TempKey. Command execution returns the 32 byte device random number
// used in the combination.
func (n *Nonce) Random(numIn []byte) (Packet, error) {
	if len(numIn) != NonceNumInSize {
		return Packet{}, &InvalidSizeError{Len: len(numIn), Limit: NonceNumInSize}
	}
	n.b.Reset().OpCode(OpCodeNonce).Mode(modeNonceRandom)
	if err := n.b.Data(numIn); err != nil {
		return Packet{}, err
	}
	return n.b.Build(), nil
}

// Load writes a fixed 32 byte value straight into TempKey, bypassing the
// RNG. Keys loaded this way lose the replay protection a random nonce
// provides.
func (n *Nonce) Load(value []byte) (Packet, error) {
	if len(value) != 32 {
		return Packet{}, &InvalidSizeError{Len: len(value), Limit: 32}
	}
	n.b.Reset().OpCode(OpCodeNonce).Mode(modeNoncePassthrough)
	if err := n.b.Data(value); err != nil {
		return Packet{}, err
	}
	return n.b.Build(), nil
}
