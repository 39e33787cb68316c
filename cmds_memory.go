// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package atca

// Read constructs frames for the Read command.
type Read struct {
	b *PacketBuilder
}

// NewRead returns a Read command bound to the supplied builder.
func NewRead(b *PacketBuilder) *Read {
	return &Read{b: b}
}

// Slot requests one 32 byte block from a data zone slot.
func (r *Read) Slot(slot Slot, block uint8) (Packet, error) {
	addr, err := ZoneData.SlotAddr(slot, block)
	if err != nil {
		return Packet{}, err
	}
	mode := ZoneData.Encode(SizeBlock)
	return r.b.Reset().OpCode(OpCodeRead).Mode(mode).Param2(addr).Build(), nil
}

// Register requests a word or block from any zone. Block sized reads must
// start at word offset zero; the device cannot transfer a block that
// straddles block boundaries.
func (r *Read) Register(zone Zone, size Size, block, offset uint8) (Packet, error) {
	if size == SizeBlock && offset != 0 {
		return Packet{}, badParameterError("block read at word offset %d", offset)
	}
	addr, err := zone.Addr(block, offset)
	if err != nil {
		return Packet{}, err
	}
	mode := zone.Encode(size)
	return r.b.Reset().OpCode(OpCodeRead).Mode(mode).Param2(addr).Build(), nil
}

// Write constructs frames for the Write command.
type Write struct {
	b *PacketBuilder
}

// NewWrite returns a Write command bound to the supplied builder.
func NewWrite(b *PacketBuilder) *Write {
	return &Write{b: b}
}

// Register writes a word or block to the configuration or OTP zone. The
// payload length must match the encoded size exactly.
func (w *Write) Register(zone Zone, size Size, block, offset uint8, data []byte) (Packet, error) {
	if size == SizeBlock && offset != 0 {
		return Packet{}, badParameterError("block write at word offset %d", offset)
	}
	if len(data) != size.Len() {
		return Packet{}, &InvalidSizeError{Len: len(data), Limit: size.Len()}
	}
	addr, err := zone.Addr(block, offset)
	if err != nil {
		return Packet{}, err
	}
	w.b.Reset().OpCode(OpCodeWrite).Mode(zone.Encode(size)).Param2(addr)
	if err := w.b.Data(data); err != nil {
		return Packet{}, err
	}
	return w.b.Build(), nil
}

// Slot writes one 32 byte block to a data zone slot.
func (w *Write) Slot(slot Slot, block uint8, data []byte) (Packet, error) {
	if len(data) != BlockSize {
		return Packet{}, &InvalidSizeError{Len: len(data), Limit: BlockSize}
	}
	addr, err := ZoneData.SlotAddr(slot, block)
	if err != nil {
		return Packet{}, err
	}
	w.b.Reset().OpCode(OpCodeWrite).Mode(ZoneData.Encode(SizeBlock)).Param2(addr)
	if err := w.b.Data(data); err != nil {
		return Packet{}, err
	}
	return w.b.Build(), nil
}
