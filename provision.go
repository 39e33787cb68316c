// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package atca

// Key slot assignments of the Trust&Go provisioning profile: one
// permanent primary P256 private key, one internal sign key for
// attestation, three regenerable secondary keys, an I/O protection key,
// an AES key and compressed certificate storage.
const (
	AuthPrivateKey  = SlotPrivateKey00
	SignPrivateKey  = SlotPrivateKey01
	UserPrivateKey1 = SlotPrivateKey02
	UserPrivateKey2 = SlotPrivateKey03
	UserPrivateKey3 = SlotPrivateKey04
	IOProtectionKey = SlotPrivateKey06
	AESKey          = SlotCertificate09
	DeviceCert      = SlotCertificate0A
	SignerPublicKey = SlotCertificate0B
	SignerCert      = SlotCertificate0C
)

// The Trust&Go configuration tables, written into the configuration zone
// verbatim. These bytes are fixed by the provisioning profile; rewriting
// them to an unlocked device is idempotent.
var (
	trustAndGoSlotConfig = [NumSlots * 2]byte{
		// Indices 20..51, block 0, word offset 5
		0x85, 0x00, // slot 0x00, primary private key
		0x82, 0x00, // slot 0x01, internal sign private key
		0x85, 0x20, // slot 0x02, secondary private key 1
		0x85, 0x20, // slot 0x03, secondary private key 2
		0x85, 0x20, // slot 0x04, secondary private key 3
		0x8f, 0x8f, // slot 0x05, reserved
		0x8f, 0x0f, // slot 0x06, I/O protection key
		0xaf, 0x8f, // slot 0x07, reserved
		0x0f, 0x0f, // slot 0x08, general data
		0x8f, 0x0f, // slot 0x09, AES key
		0x0f, 0x8f, // slot 0x0a, device compressed certificate
		0x0f, 0x8f, // slot 0x0b, signer public key
		0x0f, 0x8f, // slot 0x0c, signer compressed certificate
		0x00, 0x00, // slot 0x0d, reserved
		0x00, 0x00, // slot 0x0e, reserved
		0xaf, 0x8f, // slot 0x0f, reserved
	}

	trustAndGoChipOptions = [WordSize]byte{
		// Indices 88..91, block 2, word offset 6
		0xff, 0xff, 0x60, 0x0e,
	}

	trustAndGoKeyConfig = [NumSlots * 2]byte{
		// Indices 96..127, block 3, word offset 0
		0x53, 0x00, // slot 0x00
		0x53, 0x00, // slot 0x01
		0x73, 0x00, // slot 0x02
		0x73, 0x00, // slot 0x03
		0x73, 0x00, // slot 0x04
		0x1c, 0x00, // slot 0x05, reserved
		0x7c, 0x00, // slot 0x06
		0x3c, 0x00, // slot 0x07, reserved
		0x3c, 0x00, // slot 0x08
		0x1a, 0x00, // slot 0x09
		0x1c, 0x00, // slot 0x0a
		0x10, 0x00, // slot 0x0b
		0x1c, 0x00, // slot 0x0c
		0x3c, 0x00, // slot 0x0d, reserved
		0x3c, 0x00, // slot 0x0e, reserved
		0x1c, 0x00, // slot 0x0f, reserved
	}
)

// TrustAndGoSlotConfigs returns the profile's decoded SlotConfig table.
func TrustAndGoSlotConfigs() [NumSlots]SlotConfig {
	configs, _ := DecodeSlotConfigs(trustAndGoSlotConfig[:])
	return configs
}

// TrustAndGoKeyConfigs returns the profile's decoded KeyConfig table.
func TrustAndGoKeyConfigs() [NumSlots]KeyConfig {
	configs, _ := DecodeKeyConfigs(trustAndGoKeyConfig[:])
	return configs
}

// TrustAndGo drives the one-shot provisioning lifecycle for the Trust&Go
// profile. On creation it checks whether the configuration zone is
// locked; if not, it writes the slot configuration table, the chip
// options word and the key configuration table, in that order, and then
// locks the zone. Locking the data zone afterwards is a deployment policy
// choice made through WithDataZoneLock; deferring it keeps slots
// writable for debugging.
//
// The sequence runs at most once per device lifetime on the success
// path. If it is interrupted part way the device remains unlocked and a
// restart safely re-issues the same writes from the top; re-running
// against an already locked device issues no writes at all.
type TrustAndGo struct {
	mem      *Memory
	lockData bool
}

// TrustAndGoOption configures the provisioning lifecycle.
type TrustAndGoOption func(*TrustAndGo)

// WithDataZoneLock locks the data zone once the configuration zone is
// locked. Without this option the data zone is left unlocked.
func WithDataZoneLock() TrustAndGoOption {
	return func(t *TrustAndGo) {
		t.lockData = true
	}
}

// NewTrustAndGo enforces the Trust&Go configuration on the device,
// provisioning and locking it if it has not been locked already, and
// returns a handle to the provisioned device.
func NewTrustAndGo(d *Device, options ...TrustAndGoOption) (*TrustAndGo, error) {
	t := &TrustAndGo{mem: d.Memory()}
	for _, opt := range options {
		opt(t)
	}

	locked, err := t.mem.IsLocked(ZoneConfig)
	if err != nil {
		return nil, err
	}
	if !locked {
		if err := t.ConfigurePermissions(); err != nil {
			return nil, err
		}
		if err := t.ConfigureChipOptions(); err != nil {
			return nil, err
		}
		if err := t.ConfigureKeyTypes(); err != nil {
			return nil, err
		}
		if err := t.mem.LockZone(ZoneConfig); err != nil {
			return nil, err
		}
	}

	locked, err = t.mem.IsLocked(ZoneData)
	if err != nil {
		return nil, err
	}
	if !locked && t.lockData {
		if err := t.mem.LockZone(ZoneData); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// ConfigurePermissions writes the SlotConfig table, one word at a time:
// the table straddles two configuration blocks, so it cannot go out as a
// single block write.
func (t *TrustAndGo) ConfigurePermissions() error {
	for i := 0; i < len(trustAndGoSlotConfig); i += WordSize {
		block, offset, _, err := LocateIndex(SlotConfigIndex + i)
		if err != nil {
			return err
		}
		if err := t.mem.WriteConfig(SizeWord, block, offset, trustAndGoSlotConfig[i:i+WordSize]); err != nil {
			return err
		}
	}
	return nil
}

// ConfigureChipOptions writes the chip options word.
func (t *TrustAndGo) ConfigureChipOptions() error {
	block, offset, _, err := LocateIndex(ChipOptionsIndex)
	if err != nil {
		return err
	}
	return t.mem.WriteConfig(SizeWord, block, offset, trustAndGoChipOptions[:])
}

// ConfigureKeyTypes writes the KeyConfig table. Key configuration goes
// last: its validation depends on the slot configuration already being in
// place. The table fills exactly one block.
func (t *TrustAndGo) ConfigureKeyTypes() error {
	block, offset, _, err := LocateIndex(KeyConfigIndex)
	if err != nil {
		return err
	}
	return t.mem.WriteConfig(SizeBlock, block, offset, trustAndGoKeyConfig[:])
}
