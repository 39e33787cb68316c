// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package atca

// Memory layout constants fixed by the device specification. Indices are
// linear byte offsets into the configuration zone.
const (
	// ConfigZoneSize is the capacity of the configuration zone.
	ConfigZoneSize = 128

	// OTPZoneSize is the capacity of the OTP zone.
	OTPZoneSize = 64

	// SlotConfigIndex is the start of the 16 SlotConfig words
	// (indices 20..51, block 0, word offset 5).
	SlotConfigIndex = 20

	// LockBytesIndex is the start of the word holding the UserExtra
	// bytes and the two zone lock bytes (indices 84..87, block 2,
	// word offset 5).
	LockBytesIndex = 84

	// ChipOptionsIndex is the start of the chip options word
	// (indices 88..91, block 2, word offset 6).
	ChipOptionsIndex = 88

	// KeyConfigIndex is the start of the 16 KeyConfig words
	// (indices 96..127, block 3, word offset 0).
	KeyConfigIndex = 96
)

const wordsPerBlock = BlockSize / WordSize

// blockCount returns the number of 32 byte blocks a zone spans. The data
// zone is addressed per slot and reports zero here.
func (z Zone) blockCount() uint8 {
	switch z {
	case ZoneConfig:
		return ConfigZoneSize / BlockSize
	case ZoneOTP:
		return OTPZoneSize / BlockSize
	default:
		return 0
	}
}

// slotBlockCount returns the number of blocks a data zone slot spans.
// Slots 0 to 7 hold 36 bytes, slot 8 holds 416 bytes and slots 9 to 15
// hold 72 bytes.
func slotBlockCount(s Slot) uint8 {
	switch {
	case s <= SlotPrivateKey07:
		return 2
	case s == SlotData08:
		return 13
	default:
		return 3
	}
}

// Addr maps a block number and a word offset within the configuration or
// OTP zone to the linear word index used by the Read and Write commands.
func (z Zone) Addr(block, offset uint8) (uint16, error) {
	switch z {
	case ZoneConfig, ZoneOTP:
		if block >= z.blockCount() {
			return 0, outOfRangeError("block %d exceeds %v zone capacity", block, z)
		}
		if offset >= wordsPerBlock {
			return 0, outOfRangeError("word offset %d exceeds block size", offset)
		}
		return uint16(block)<<3 | uint16(offset), nil
	case ZoneData:
		return 0, badParameterError("data zone is addressed by slot")
	default:
		return 0, badParameterError("unknown zone 0x%02x", uint8(z))
	}
}

// SlotAddr maps a slot and a block number within the data zone to the
// linear word index used by the Read and Write commands.
func (z Zone) SlotAddr(slot Slot, block uint8) (uint16, error) {
	if z != ZoneData {
		return 0, badParameterError("slot addressing requires the data zone, not %v", z)
	}
	if !slot.IsValid() {
		return 0, outOfRangeError("no such slot 0x%02x", uint8(slot))
	}
	if block >= slotBlockCount(slot) {
		return 0, outOfRangeError("block %d exceeds %v capacity", block, slot)
	}
	return uint16(block)<<8 | uint16(slot)<<3, nil
}

// LocateIndex is the inverse of Addr over the configuration zone: it maps
// a linear byte index to the block and word offset holding it.
func LocateIndex(index int) (block, offset uint8, zone Zone, err error) {
	if index < 0 || index >= ConfigZoneSize {
		return 0, 0, ZoneConfig, outOfRangeError("config index %d", index)
	}
	return uint8(index / BlockSize), uint8(index % BlockSize / WordSize), ZoneConfig, nil
}

// Encode folds a transfer size into the mode byte for a Read or Write
// command targeting this zone. Bit 7 selects a 32 byte transfer, bits 0
// and 1 select the zone.
func (z Zone) Encode(size Size) uint8 {
	return uint8(z) | uint8(size)
}
