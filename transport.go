// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package atca

// Transport represents a communication channel to a device. The physical
// bus details (wake handling, word addressing, retry policy) belong to
// the implementation; this package only ever exchanges whole frames.
type Transport interface {
	// Read receives a complete response frame into p. It must return
	// the whole frame in a single call.
	Read(p []byte) (int, error)

	// Write transmits a serialized command frame.
	Write(p []byte) (int, error)

	// Close closes the transport.
	Close() error
}
