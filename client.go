// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package atca

// High level operations. Each executes one or more commands over the
// device's transport and parses the typed result.

// Revision reads the four byte device revision word.
func (d *Device) Revision() (Word, error) {
	p, err := NewInfo(d.b).Revision()
	if err != nil {
		return Word{}, err
	}
	rsp, err := d.Execute(p)
	if err != nil {
		return Word{}, err
	}
	return ParseWord(rsp)
}

// RandomBytes draws 32 bytes from the device RNG.
func (d *Device) RandomBytes() ([]byte, error) {
	p, err := NewRandom(d.b).Random()
	if err != nil {
		return nil, err
	}
	rsp, err := d.Execute(p)
	if err != nil {
		return nil, err
	}
	if len(rsp) != RandomSize {
		return nil, parseError("random response has length %d", len(rsp))
	}
	out := make([]byte, RandomSize)
	copy(out, rsp)
	return out, nil
}

// Hasher runs one incremental SHA-256 sequence on the device. The device
// holds the hash context, so the sequence borrows the Device exclusively
// from Start until Sum; no other command may interleave.
type Hasher struct {
	d   *Device
	sha *Sha
}

// NewHasher starts an incremental SHA-256 computation on the device.
func (d *Device) NewHasher() (*Hasher, error) {
	h := &Hasher{d: d, sha: NewSha(d.b)}
	p, err := h.sha.Start()
	if err != nil {
		return nil, err
	}
	if _, err := d.Execute(p); err != nil {
		return nil, err
	}
	return h, nil
}

// Write adds data to the hash, splitting it into frames the device's
// single step limit allows.
func (h *Hasher) Write(data []byte) (int, error) {
	total := len(data)
	for len(data) > 0 {
		chunk := data
		if len(chunk) >= ShaUpdateMax {
			chunk = chunk[:ShaUpdateMax-1]
		}
		p, err := h.sha.Update(chunk)
		if err != nil {
			return total - len(data), err
		}
		if _, err := h.d.Execute(p); err != nil {
			return total - len(data), err
		}
		data = data[len(chunk):]
	}
	return total, nil
}

// Sum completes the calculation and returns the digest. The sequence is
// finished afterwards; start a new Hasher for the next message.
func (h *Hasher) Sum() (Digest, error) {
	p, err := h.sha.End()
	if err != nil {
		return Digest{}, err
	}
	rsp, err := h.d.Execute(p)
	if err != nil {
		return Digest{}, err
	}
	return ParseDigest(rsp)
}

// ComputeDigest hashes a whole message on the device in one call.
func (d *Device) ComputeDigest(message []byte) (Digest, error) {
	h, err := d.NewHasher()
	if err != nil {
		return Digest{}, err
	}
	if _, err := h.Write(message); err != nil {
		return Digest{}, err
	}
	return h.Sum()
}

// EncryptBlock encrypts one 16 byte block with the AES key in the given
// slot.
func (d *Device) EncryptBlock(slot Slot, plaintext []byte) ([]byte, error) {
	return d.aesBlock(NewAES(d.b).Encrypt, slot, plaintext)
}

// DecryptBlock decrypts one 16 byte block with the AES key in the given
// slot.
func (d *Device) DecryptBlock(slot Slot, ciphertext []byte) ([]byte, error) {
	return d.aesBlock(NewAES(d.b).Decrypt, slot, ciphertext)
}

func (d *Device) aesBlock(build func(Slot, []byte) (Packet, error), slot Slot, in []byte) ([]byte, error) {
	p, err := build(slot, in)
	if err != nil {
		return nil, err
	}
	rsp, err := d.Execute(p)
	if err != nil {
		return nil, err
	}
	if len(rsp) != AESDataSize {
		return nil, parseError("AES response has length %d", len(rsp))
	}
	out := make([]byte, AESDataSize)
	copy(out, rsp)
	return out, nil
}

// loadTempKey loads a 32 byte value into TempKey via a passthrough
// nonce.
func (d *Device) loadTempKey(value []byte) error {
	p, err := NewNonce(d.b).Load(value)
	if err != nil {
		return err
	}
	_, err = d.Execute(p)
	return err
}

// SignDigest loads the digest into TempKey and signs it with the private
// key in the given slot.
func (d *Device) SignDigest(slot Slot, digest Digest) (Signature, error) {
	if err := d.loadTempKey(digest[:]); err != nil {
		return Signature{}, err
	}
	p, err := NewSign(d.b).External(slot)
	if err != nil {
		return Signature{}, err
	}
	rsp, err := d.Execute(p)
	if err != nil {
		return Signature{}, err
	}
	return ParseSignature(rsp)
}

// VerifyDigest checks sig over digest against an external public key on
// the device. A nil error means the signature verified.
func (d *Device) VerifyDigest(pub PublicKey, digest Digest, sig Signature) error {
	if err := d.loadTempKey(digest[:]); err != nil {
		return err
	}
	p, err := NewVerify(d.b).External(pub, sig)
	if err != nil {
		return err
	}
	_, err = d.Execute(p)
	return err
}

// CreateKey generates a new private key in the given slot and returns its
// public key.
func (d *Device) CreateKey(slot Slot) (PublicKey, error) {
	p, err := NewGenKey(d.b).Private(slot)
	if err != nil {
		return PublicKey{}, err
	}
	rsp, err := d.Execute(p)
	if err != nil {
		return PublicKey{}, err
	}
	return ParsePublicKey(rsp)
}

// ReadPublicKey recomputes the public key of the private key in the given
// slot.
func (d *Device) ReadPublicKey(slot Slot) (PublicKey, error) {
	p, err := NewGenKey(d.b).Public(slot)
	if err != nil {
		return PublicKey{}, err
	}
	rsp, err := d.Execute(p)
	if err != nil {
		return PublicKey{}, err
	}
	return ParsePublicKey(rsp)
}

// SharedSecret combines the private key in the given slot with an
// external public key and returns the premaster secret. The slot must be
// configured to output the secret in the clear.
func (d *Device) SharedSecret(slot Slot, pub PublicKey) (PremasterSecret, error) {
	p, err := NewEcdh(d.b).Ecdh(slot, pub)
	if err != nil {
		return PremasterSecret{}, err
	}
	rsp, err := d.Execute(p)
	if err != nil {
		return PremasterSecret{}, err
	}
	return ParsePremasterSecret(rsp)
}

// RunSelfTest runs the selected engine self tests and reports any
// failures as a StatusError.
func (d *Device) RunSelfTest(mode uint8) error {
	p, err := NewSelfTest(d.b).Test(mode)
	if err != nil {
		return err
	}
	_, err = d.Execute(p)
	return err
}
