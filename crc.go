// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package atca

// Frame checksum constants, from the device command protocol
// specification.
const (
	// crcPolynomial is the CRC-16 polynomial the device uses.
	crcPolynomial uint16 = 0x8005

	// crcHighBit is the mask for the shift register's top bit.
	crcHighBit uint16 = 0x8000
)

// ChecksumFunc computes the 16 bit checksum that trails a command or
// response frame. It covers every frame byte before the checksum itself.
// The device family computes this one way, but the primitive is injected
// so a variant part can swap it.
type ChecksumFunc func(data []byte) uint16

// CRC16 is the device's frame checksum: CRC-16 with polynomial 0x8005, a
// zero initial value, input bits processed least significant first and no
// final XOR. The result is transmitted little-endian.
func CRC16(data []byte) uint16 {
	var crc uint16
	for _, b := range data {
		for mask := uint8(0x01); mask > 0; mask <<= 1 {
			var bit uint16
			if b&mask != 0 {
				bit = 1
			}
			high := crc & crcHighBit >> 15
			crc <<= 1
			if bit != high {
				crc ^= crcPolynomial
			}
		}
	}
	return crc
}
