// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

/*
Package cryptutil provides host side mirrors of device operations, for
verifying device output during bring-up and for working with device
produced keys and signatures in standard library form.
*/
package cryptutil

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/sha256"
	"io"
	"math/big"

	"golang.org/x/crypto/hkdf"
	"golang.org/x/xerrors"

	"github.com/canonical/go-atca"
)

// PublicKey converts a device public key (X and Y coordinates
// concatenated big-endian) to a standard library key, rejecting points
// not on the P256 curve.
func PublicKey(pub atca.PublicKey) (*ecdsa.PublicKey, error) {
	x := new(big.Int).SetBytes(pub[:32])
	y := new(big.Int).SetBytes(pub[32:])
	if !elliptic.P256().IsOnCurve(x, y) {
		return nil, xerrors.New("point is not on the P256 curve")
	}
	return &ecdsa.PublicKey{Curve: elliptic.P256(), X: x, Y: y}, nil
}

// VerifySignature checks a device signature over digest against a device
// public key, entirely on the host.
func VerifySignature(pub atca.PublicKey, digest atca.Digest, sig atca.Signature) (bool, error) {
	key, err := PublicKey(pub)
	if err != nil {
		return false, err
	}
	r := new(big.Int).SetBytes(sig[:32])
	s := new(big.Int).SetBytes(sig[32:])
	return ecdsa.Verify(key, digest[:], r, s), nil
}

// DeriveHKDF mirrors the device KDF command's HKDF mode: HKDF-SHA256
// expansion of the extracted key over the supplied salt and info,
// producing length bytes. Comparing this against device output validates
// a KDF slot during provisioning bring-up.
func DeriveHKDF(key, salt, info []byte, length int) ([]byte, error) {
	if length <= 0 || length > 255*sha256.Size {
		return nil, xerrors.Errorf("invalid output length %d", length)
	}
	out := make([]byte, length)
	if _, err := io.ReadFull(hkdf.New(sha256.New, key, salt, info), out); err != nil {
		return nil, xerrors.Errorf("cannot expand key: %w", err)
	}
	return out, nil
}
