// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package atca

// Zone identifies one of the device's named memory regions. Each zone has
// a fixed capacity and its own lock flag. The numeric values are the zone
// select bits used in the Read and Write command mode byte.
type Zone uint8

const (
	ZoneConfig Zone = 0x00
	ZoneOTP    Zone = 0x01
	ZoneData   Zone = 0x02
)

// Size classifies the two transfer lengths the Read and Write commands
// support.
type Size uint8

const (
	SizeWord  Size = 0x00 // 4 byte transfer
	SizeBlock Size = 0x80 // 32 byte transfer
)

// Len returns the number of bytes transferred for this size.
func (s Size) Len() int {
	if s == SizeBlock {
		return BlockSize
	}
	return WordSize
}

const (
	// WordSize is the length of a word transfer.
	WordSize = 4

	// BlockSize is the length of a block transfer.
	BlockSize = 32
)

// Slot identifies one of the 16 key or data containers inside the data
// zone. Slots 0x00 to 0x07 can hold ECC private keys; the device never
// reads these in the clear and their permission bits carry different
// semantics.
type Slot uint8

const (
	SlotPrivateKey00  Slot = 0x00
	SlotPrivateKey01  Slot = 0x01
	SlotPrivateKey02  Slot = 0x02
	SlotPrivateKey03  Slot = 0x03
	SlotPrivateKey04  Slot = 0x04
	SlotPrivateKey05  Slot = 0x05
	SlotPrivateKey06  Slot = 0x06
	SlotPrivateKey07  Slot = 0x07
	SlotData08        Slot = 0x08
	SlotCertificate09 Slot = 0x09
	SlotCertificate0A Slot = 0x0a
	SlotCertificate0B Slot = 0x0b
	SlotCertificate0C Slot = 0x0c
	SlotCertificate0D Slot = 0x0d
	SlotCertificate0E Slot = 0x0e
	SlotCertificate0F Slot = 0x0f
)

// NumSlots is the number of slots in the data zone.
const NumSlots = 16

// IsValid tells whether the slot number addresses one of the 16 slots.
func (s Slot) IsValid() bool {
	return s < NumSlots
}

// IsPrivateKey tells whether the slot can hold an ECC private key.
func (s Slot) IsPrivateKey() bool {
	return s <= SlotPrivateKey07
}

// ClockDivider selects the device's internal clock configuration, which
// determines which column of the execution time table applies.
type ClockDivider uint8

const (
	ClockDividerZero ClockDivider = 0
	ClockDividerOne  ClockDivider = 1
	ClockDividerTwo  ClockDivider = 2
)

// Word is a four byte value returned by commands such as Info.
type Word [WordSize]byte

// ParseWord parses a word from a response buffer.
func ParseWord(buf []byte) (Word, error) {
	var w Word
	if len(buf) != WordSize {
		return w, parseError("word response has length %d", len(buf))
	}
	copy(w[:], buf)
	return w, nil
}

// Serial is the device's unique nine byte serial number.
type Serial [9]byte

// ParseSerial extracts the serial number from the first configuration
// block. The nine bytes live at indices 0..3 and 8..12.
func ParseSerial(block []byte) (Serial, error) {
	var s Serial
	if len(block) < 13 {
		return s, parseError("configuration block has length %d", len(block))
	}
	copy(s[0:4], block[0:4])
	copy(s[4:9], block[8:13])
	return s, nil
}

// Digest is a 32 byte digest yielded by the SHA command.
type Digest [32]byte

// ParseDigest parses a digest from a response buffer.
func ParseDigest(buf []byte) (Digest, error) {
	var d Digest
	if len(buf) != len(d) {
		return d, parseError("digest response has length %d", len(buf))
	}
	copy(d[:], buf)
	return d, nil
}

// Signature is an ECDSA signature over the P256 curve: the R and S
// integers concatenated in big-endian form.
type Signature [64]byte

// ParseSignature parses a signature from a response buffer.
func ParseSignature(buf []byte) (Signature, error) {
	var s Signature
	if len(buf) != len(s) {
		return s, parseError("signature response has length %d", len(buf))
	}
	copy(s[:], buf)
	return s, nil
}

// PublicKey is a P256 public key: the X and Y coordinates concatenated in
// big-endian form.
type PublicKey [64]byte

// ParsePublicKey parses a public key from a response buffer.
func ParsePublicKey(buf []byte) (PublicKey, error) {
	var p PublicKey
	if len(buf) != len(p) {
		return p, parseError("public key response has length %d", len(buf))
	}
	copy(p[:], buf)
	return p, nil
}

// PremasterSecret is the 32 byte shared secret produced by the ECDH
// command when the result is returned in the clear.
type PremasterSecret [32]byte

// ParsePremasterSecret parses a premaster secret from a response buffer.
func ParsePremasterSecret(buf []byte) (PremasterSecret, error) {
	var p PremasterSecret
	if len(buf) != len(p) {
		return p, parseError("premaster secret response has length %d", len(buf))
	}
	copy(p[:], buf)
	return p, nil
}
