// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package atca

// AESDataSize is the AES-128 block length the AES command transfers.
const AESDataSize = 16

// AES constructs frames for the AES command, encrypting or decrypting a
// single 16 byte block with a key stored in the data zone.
type AES struct {
	b *PacketBuilder
}

// NewAES returns an AES command bound to the supplied builder.
func NewAES(b *PacketBuilder) *AES {
	return &AES{b: b}
}

func (a *AES) block(mode uint8, slot Slot, data []byte) (Packet, error) {
	if !slot.IsPrivateKey() {
		return Packet{}, badParameterError("%v cannot hold an AES key", slot)
	}

	// The device recognizes the command only when the input is exactly
	// one AES block.
	if len(data) != AESDataSize {
		return Packet{}, &InvalidSizeError{Len: len(data), Limit: AESDataSize}
	}

	a.b.Reset().OpCode(OpCodeAes).Mode(mode).Param2(uint16(slot))
	if err := a.b.Data(data); err != nil {
		return Packet{}, err
	}
	return a.b.Build(), nil
}

// Encrypt requests encryption of one 16 byte plaintext block with the key
// in the given slot.
func (a *AES) Encrypt(slot Slot, plaintext []byte) (Packet, error) {
	return a.block(modeAesEncrypt, slot, plaintext)
}

// Decrypt requests decryption of one 16 byte ciphertext block with the
// key in the given slot.
func (a *AES) Decrypt(slot Slot, ciphertext []byte) (Packet, error) {
	return a.block(modeAesDecrypt, slot, ciphertext)
}
