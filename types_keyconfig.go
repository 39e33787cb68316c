// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package atca

import (
	"encoding/binary"
)

// KeyType is the three bit key type field of a KeyConfig word. Values
// outside the closed set below are reserved.
type KeyType uint8

const (
	KeyTypeP256 KeyType = 4
	KeyTypeAES  KeyType = 6
	KeyTypeSHA  KeyType = 7
)

func (t KeyType) String() string {
	switch t {
	case KeyTypeP256:
		return "P256 NIST ECC key"
	case KeyTypeAES:
		return "AES key"
	case KeyTypeSHA:
		return "SHA key or other data"
	default:
		return "Reserved"
	}
}

// IsValid tells whether the key type is one of the defined values.
func (t KeyType) IsValid() bool {
	switch t {
	case KeyTypeP256, KeyTypeAES, KeyTypeSHA:
		return true
	default:
		return false
	}
}

// KeyConfig is the 16 bit per-slot word describing the kind of key a slot
// holds and the conditions for using it. One word per slot lives in the
// configuration zone at indices 96..127.
//
// Field layout:
//
//	bit  0     Private
//	bit  1     PubInfo
//	bits 2-4   KeyType
//	bit  5     Lockable
//	bit  6     ReqRandom
//	bit  7     ReqAuth
//	bits 8-11  AuthKey
//	bit  12    PersistentDisable
//	bit  13    reserved
//	bits 14-15 X509ID
type KeyConfig uint16

// Private tells whether the slot contains an ECC private key, accessible
// only through the Sign, GenKey and PrivWrite commands.
func (c KeyConfig) Private() bool {
	return c&1 != 0
}

// PubInfo qualifies Private: for a private key it tells whether the
// public version can be generated, and for a public key whether the key
// must be validated before the Verify command will use it.
func (c KeyConfig) PubInfo() bool {
	return c>>1&1 != 0
}

// KeyType returns the slot's key type.
func (c KeyConfig) KeyType() KeyType {
	return KeyType(c >> 2 & 0x7)
}

// Lockable tells whether the slot can be individually locked with the
// Lock command.
func (c KeyConfig) Lockable() bool {
	return c>>5&1 != 0
}

// ReqRandom tells whether operations using this slot require a random
// nonce.
func (c KeyConfig) ReqRandom() bool {
	return c>>6&1 != 0
}

// ReqAuth tells whether a prior authorization against AuthKey is required
// before the key may be used.
func (c KeyConfig) ReqAuth() bool {
	return c>>7&1 != 0
}

// AuthKey returns the slot of the authorizing key. Meaningful only when
// ReqAuth is set.
func (c KeyConfig) AuthKey() Slot {
	return Slot(c >> 8 & 0xf)
}

// PersistentDisable tells whether use of the key is gated on the
// persistent latch.
func (c KeyConfig) PersistentDisable() bool {
	return c>>12&1 != 0
}

// X509ID returns the two bit index of the X.509 validation format for a
// public key slot.
func (c KeyConfig) X509ID() uint8 {
	return uint8(c >> 14)
}

// WithKeyType returns a copy of the word with the key type replaced,
// rejecting values outside the three bit field.
func (c KeyConfig) WithKeyType(t KeyType) (KeyConfig, error) {
	if t > 0x7 {
		return c, badParameterError("key type 0x%02x exceeds three bits", uint8(t))
	}
	return c&^(0x7<<2) | KeyConfig(t)<<2, nil
}

// WithAuthKey returns a copy of the word with the auth key slot replaced,
// rejecting invalid slot numbers.
func (c KeyConfig) WithAuthKey(s Slot) (KeyConfig, error) {
	if !s.IsValid() {
		return c, badParameterError("no such slot 0x%02x", uint8(s))
	}
	return c&^(0xf<<8) | KeyConfig(s)<<8, nil
}

// Validate checks the word for combinations the device specification
// prohibits. A slot marked Private must hold a P256 private key; the
// Sign, GenKey and PrivWrite commands fail on any other key type.
func (c KeyConfig) Validate() error {
	if c.Private() && c.KeyType() != KeyTypeP256 {
		return protocolViolationError("private key slot with key type %v", c.KeyType())
	}
	return nil
}

// DecodeKeyConfigs decodes the 32 byte KeyConfig table as stored in the
// configuration zone, one little-endian word per slot.
func DecodeKeyConfigs(table []byte) ([NumSlots]KeyConfig, error) {
	var out [NumSlots]KeyConfig
	if len(table) != NumSlots*2 {
		return out, parseError("KeyConfig table has length %d", len(table))
	}
	for i := range out {
		out[i] = KeyConfig(binary.LittleEndian.Uint16(table[i*2:]))
	}
	return out, nil
}

// EncodeKeyConfigs is the inverse of DecodeKeyConfigs.
func EncodeKeyConfigs(configs [NumSlots]KeyConfig) []byte {
	out := make([]byte, NumSlots*2)
	for i, c := range configs {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(c))
	}
	return out
}
