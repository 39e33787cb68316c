// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package atca

import (
	"encoding/binary"
)

// SlotConfig is the 16 bit per-slot permission word governing how a data
// zone slot may be read and written. One word per slot lives in the
// configuration zone at indices 20..51.
//
// Field layout:
//
//	bits 0-3   ReadKey
//	bit  4     NoMac
//	bit  5     LimitedUse
//	bit  6     EncryptRead
//	bit  7     IsSecret
//	bits 8-11  WriteKey
//	bits 12-15 WriteConfig
type SlotConfig uint16

// ReadKey returns the four bit read key field. For slots holding private
// keys the field is reinterpreted; see ExternalSignatures and friends.
func (c SlotConfig) ReadKey() uint8 {
	return uint8(c & 0xf)
}

// NoMac tells whether the slot's key is barred from the MAC command.
func (c SlotConfig) NoMac() bool {
	return c>>4&1 != 0
}

// LimitedUse tells whether use of the slot's key is metered by Counter0.
func (c SlotConfig) LimitedUse() bool {
	return c>>5&1 != 0
}

// EncryptRead tells whether reads from the slot are encrypted with the
// key selected by ReadKey. When set, IsSecret must also be set.
func (c SlotConfig) EncryptRead() bool {
	return c>>6&1 != 0
}

// IsSecret tells whether the slot contents are secret: clear text reads
// and all four byte accesses are prohibited.
func (c SlotConfig) IsSecret() bool {
	return c>>7&1 != 0
}

// WriteKey returns the four bit key id used to validate and encrypt data
// written to the slot.
func (c SlotConfig) WriteKey() uint8 {
	return uint8(c >> 8 & 0xf)
}

// WriteConfig returns the four bit field controlling how the slot may be
// modified.
func (c SlotConfig) WriteConfig() uint8 {
	return uint8(c >> 12)
}

// ReadKey bit meanings for slots that hold ECC private keys. Such slots
// can never be read and the field instead enables operations.

// ExternalSignatures tells whether external signatures of arbitrary
// messages are enabled for a private key slot.
func (c SlotConfig) ExternalSignatures() bool {
	return c&1 != 0
}

// InternalSignatures tells whether signatures of messages generated by
// GenDig or GenKey are enabled for a private key slot.
func (c SlotConfig) InternalSignatures() bool {
	return c>>1&1 != 0
}

// ECDHPermitted tells whether the ECDH operation may use a private key
// slot.
func (c SlotConfig) ECDHPermitted() bool {
	return c>>2&1 != 0
}

// ECDHSecretToAdjacentSlot tells whether an ECDH master secret is written
// to slot N|1 instead of being output in the clear. Meaningless unless
// ECDHPermitted is set.
func (c SlotConfig) ECDHSecretToAdjacentSlot() bool {
	return c>>3&1 != 0
}

// WithReadKey returns a copy of the word with the read key field
// replaced, rejecting values that do not fit the four bit field.
func (c SlotConfig) WithReadKey(v uint8) (SlotConfig, error) {
	if v > 0xf {
		return c, badParameterError("read key 0x%02x exceeds four bits", v)
	}
	return c&^0xf | SlotConfig(v), nil
}

// WithWriteKey returns a copy of the word with the write key field
// replaced, rejecting values that do not fit the four bit field.
func (c SlotConfig) WithWriteKey(v uint8) (SlotConfig, error) {
	if v > 0xf {
		return c, badParameterError("write key 0x%02x exceeds four bits", v)
	}
	return c&^(0xf<<8) | SlotConfig(v)<<8, nil
}

// WithWriteConfig returns a copy of the word with the write config field
// replaced, rejecting values that do not fit the four bit field.
func (c SlotConfig) WithWriteConfig(v uint8) (SlotConfig, error) {
	if v > 0xf {
		return c, badParameterError("write config 0x%02x exceeds four bits", v)
	}
	return c&^(0xf<<12) | SlotConfig(v)<<12, nil
}

// Validate checks the word for combinations the device specification
// prohibits.
func (c SlotConfig) Validate() error {
	if c.EncryptRead() && !c.IsSecret() {
		return protocolViolationError("EncryptRead is set without IsSecret")
	}
	return nil
}

// ReadPermission classifies how slot contents may leave the device.
type ReadPermission uint8

const (
	// ReadClear permits clear text reads.
	ReadClear ReadPermission = iota

	// ReadNever prohibits reads entirely.
	ReadNever

	// ReadEncrypted permits encrypted reads only.
	ReadEncrypted
)

func (p ReadPermission) String() string {
	switch p {
	case ReadClear:
		return "Clear text"
	case ReadNever:
		return "Never"
	case ReadEncrypted:
		return "Encrypted"
	default:
		return "Prohibited"
	}
}

// ReadAccess classifies how the Read command may target the slot, derived
// from the IsSecret and EncryptRead bits together. The combination of
// EncryptRead without IsSecret is prohibited by the device specification
// and yields a ProtocolViolationError.
func (c SlotConfig) ReadAccess() (ReadPermission, error) {
	switch {
	case !c.IsSecret() && !c.EncryptRead():
		return ReadClear, nil
	case c.IsSecret() && !c.EncryptRead():
		return ReadNever, nil
	case c.IsSecret() && c.EncryptRead():
		return ReadEncrypted, nil
	default:
		return 0, protocolViolationError("EncryptRead is set without IsSecret")
	}
}

// WritePermission classifies how slot contents may be modified.
type WritePermission uint8

const (
	// WriteClear permits clear text writes.
	WriteClear WritePermission = iota

	// WriteClearBlockOnly permits clear text writes of whole 32 byte
	// blocks only; four byte writes are prohibited because the slot is
	// secret.
	WriteClearBlockOnly

	// WritePubInvalid permits writes of public keys that must be
	// validated before use.
	WritePubInvalid

	// WriteNever prohibits writes entirely.
	WriteNever

	// WriteEncrypted permits encrypted writes only.
	WriteEncrypted
)

func (p WritePermission) String() string {
	switch p {
	case WriteClear:
		return "Clear text"
	case WriteClearBlockOnly:
		return "Clear text (32 byte blocks only)"
	case WritePubInvalid:
		return "PubInvalid"
	case WriteNever:
		return "Never"
	case WriteEncrypted:
		return "Encrypted"
	default:
		return "Prohibited"
	}
}

// WriteAccess classifies how the Write command may target the slot. The
// classification is derived from the full (IsSecret, EncryptRead,
// WriteConfig) triple: a WriteConfig of zero alone does not make a slot
// clear text writable, because secret slots reject four byte writes.
func (c SlotConfig) WriteAccess() (WritePermission, error) {
	var base WritePermission
	wc := c.WriteConfig()
	switch {
	case wc == 0x0:
		base = WriteClear
	case wc == 0x1:
		base = WritePubInvalid
	case wc>>1 == 0x1:
		base = WriteNever
	case wc>>2 == 0x2:
		base = WriteNever
	case wc>>2&0x1 == 0x1:
		base = WriteEncrypted
	default:
		return 0, protocolViolationError("write config 0x%x is not classifiable", wc)
	}

	if base == WriteClear && c.IsSecret() {
		base = WriteClearBlockOnly
	}
	return base, nil
}

// DecodeSlotConfigs decodes the 32 byte SlotConfig table as stored in the
// configuration zone, one little-endian word per slot.
func DecodeSlotConfigs(table []byte) ([NumSlots]SlotConfig, error) {
	var out [NumSlots]SlotConfig
	if len(table) != NumSlots*2 {
		return out, parseError("SlotConfig table has length %d", len(table))
	}
	for i := range out {
		out[i] = SlotConfig(binary.LittleEndian.Uint16(table[i*2:]))
	}
	return out, nil
}

// EncodeSlotConfigs is the inverse of DecodeSlotConfigs.
func EncodeSlotConfigs(configs [NumSlots]SlotConfig) []byte {
	out := make([]byte, NumSlots*2)
	for i, c := range configs {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(c))
	}
	return out
}
