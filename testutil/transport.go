// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

/*
Package testutil provides transport doubles for testing code built on
this driver without hardware. The scripted Transport captures every
transmitted frame and plays back queued responses, so tests can assert
on exact wire traffic.
*/
package testutil

import (
	"encoding/binary"
	"errors"

	"github.com/canonical/go-atca"
)

// Transport is a scripted atca.Transport: writes are captured in order
// and reads return previously queued response frames.
type Transport struct {
	// Commands are the command frames captured from Write, in order.
	Commands [][]byte

	responses [][]byte
	closed    bool
}

// NewTransport returns an empty scripted transport.
func NewTransport() *Transport {
	return &Transport{}
}

// Queue appends a raw response frame for a later Read.
func (t *Transport) Queue(rsp []byte) *Transport {
	t.responses = append(t.responses, rsp)
	return t
}

// QueueStatus appends a four byte status response frame.
func (t *Transport) QueueStatus(code atca.StatusCode) *Transport {
	return t.Queue(StatusFrame(code))
}

// QueueData appends a data response frame carrying the supplied payload.
func (t *Transport) QueueData(data []byte) *Transport {
	return t.Queue(DataFrame(data))
}

func (t *Transport) Write(p []byte) (int, error) {
	if t.closed {
		return 0, errors.New("write on closed transport")
	}
	frame := make([]byte, len(p))
	copy(frame, p)
	t.Commands = append(t.Commands, frame)
	return len(p), nil
}

func (t *Transport) Read(p []byte) (int, error) {
	if t.closed {
		return 0, errors.New("read on closed transport")
	}
	if len(t.responses) == 0 {
		return 0, errors.New("no scripted response left")
	}
	rsp := t.responses[0]
	t.responses = t.responses[1:]
	return copy(p, rsp), nil
}

func (t *Transport) Close() error {
	t.closed = true
	return nil
}

// CommandCount returns how many captured frames request the given
// opcode.
func (t *Transport) CommandCount(op atca.OpCode) int {
	count := 0
	for _, frame := range t.Commands {
		if len(frame) >= 2 && atca.OpCode(frame[1]) == op {
			count++
		}
	}
	return count
}

// StatusFrame builds a valid four byte status response frame.
func StatusFrame(code atca.StatusCode) []byte {
	return DataFrame([]byte{uint8(code)})
}

// DataFrame builds a valid response frame carrying the supplied payload.
func DataFrame(data []byte) []byte {
	frame := make([]byte, 0, len(data)+3)
	frame = append(frame, uint8(len(data)+3))
	frame = append(frame, data...)
	crc := atca.CRC16(frame)
	var trailer [2]byte
	binary.LittleEndian.PutUint16(trailer[:], crc)
	return append(frame, trailer[:]...)
}

// LockBytesWord builds the configuration word at atca.LockBytesIndex
// with the given zone lock states, for scripting IsLocked queries.
func LockBytesWord(configLocked, dataLocked bool) []byte {
	word := []byte{0x00, 0x00, 0x55, 0x55}
	if dataLocked {
		word[2] = 0x00
	}
	if configLocked {
		word[3] = 0x00
	}
	return word
}
