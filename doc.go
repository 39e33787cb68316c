// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

/*
Package atca implements the command protocol for the ATECC608 class of
crypto-authentication devices - discrete secure elements providing key
storage, ECC signing and verification, AES, SHA-256, key derivation and
random number generation over a narrow command/response bus.

The package turns typed operations into the bounded byte frames the device
expects, maps logical memory locations (zone, slot, block, offset) to the
device's flat addressing, and drives the one-shot provisioning lifecycle
that permanently locks the configuration zone.

Communication with a device requires a Transport implementation. The linux
subpackage provides a transport for I2C character devices. Command
execution is strictly sequential: the device has no queueing, and a frame
must not be issued while another is in flight. A Device is therefore not
safe for concurrent use; multi-threaded embeddings must serialize access
with their own mutex.

Provisioning with the Trust&Go profile is performed by NewTrustAndGo,
which writes the slot and key configuration tables and locks the
configuration zone if it is not locked already. Locking is irreversible on
the physical device and no operation in this package can undo it.
*/
package atca
