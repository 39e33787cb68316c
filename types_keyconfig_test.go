// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package atca_test

import (
	. "gopkg.in/check.v1"

	. "github.com/canonical/go-atca"
	internal_testutil "github.com/canonical/go-atca/internal/testutil"
)

type keyConfigSuite struct{}

var _ = Suite(&keyConfigSuite{})

func (s *keyConfigSuite) TestPrimaryKeySlot(c *C) {
	// The provisioning profile's primary key slot, bytes 0x53, 0x00.
	config := TrustAndGoKeyConfigs()[AuthPrivateKey]
	c.Check(config, Equals, KeyConfig(0x0053))

	c.Check(config.Private(), internal_testutil.IsTrue)
	c.Check(config.PubInfo(), internal_testutil.IsTrue)
	c.Check(config.KeyType(), Equals, KeyTypeP256)
	c.Check(config.Lockable(), internal_testutil.IsFalse)
	c.Check(config.ReqRandom(), internal_testutil.IsTrue)
	c.Check(config.ReqAuth(), internal_testutil.IsFalse)
}

func (s *keyConfigSuite) TestAESKeySlot(c *C) {
	// Bytes 0x1a, 0x00.
	config := TrustAndGoKeyConfigs()[AESKey]
	c.Check(config, Equals, KeyConfig(0x001a))

	c.Check(config.Private(), internal_testutil.IsFalse)
	c.Check(config.PubInfo(), internal_testutil.IsTrue)
	c.Check(config.KeyType(), Equals, KeyTypeAES)
	c.Check(config.Lockable(), internal_testutil.IsFalse)
}

func (s *keyConfigSuite) TestSignerPublicKeySlot(c *C) {
	// Bytes 0x10, 0x00: a public P256 key.
	config := TrustAndGoKeyConfigs()[SignerPublicKey]
	c.Check(config, Equals, KeyConfig(0x0010))

	c.Check(config.Private(), internal_testutil.IsFalse)
	c.Check(config.KeyType(), Equals, KeyTypeP256)
}

func (s *keyConfigSuite) TestFieldExtraction(c *C) {
	config := KeyConfig(0xd3ff)
	c.Check(config.Private(), internal_testutil.IsTrue)
	c.Check(config.PubInfo(), internal_testutil.IsTrue)
	c.Check(config.KeyType(), Equals, KeyType(7))
	c.Check(config.Lockable(), internal_testutil.IsTrue)
	c.Check(config.ReqRandom(), internal_testutil.IsTrue)
	c.Check(config.ReqAuth(), internal_testutil.IsTrue)
	c.Check(config.AuthKey(), Equals, SlotPrivateKey03)
	c.Check(config.PersistentDisable(), internal_testutil.IsTrue)
	c.Check(config.X509ID(), Equals, uint8(0x03))
}

func (s *keyConfigSuite) TestKeyTypeIsValid(c *C) {
	c.Check(KeyTypeP256.IsValid(), internal_testutil.IsTrue)
	c.Check(KeyTypeAES.IsValid(), internal_testutil.IsTrue)
	c.Check(KeyTypeSHA.IsValid(), internal_testutil.IsTrue)
	c.Check(KeyType(0).IsValid(), internal_testutil.IsFalse)
	c.Check(KeyType(5).IsValid(), internal_testutil.IsFalse)
}

func (s *keyConfigSuite) TestWithKeyType(c *C) {
	config, err := KeyConfig(0x0000).WithKeyType(KeyTypeAES)
	c.Check(err, IsNil)
	c.Check(config, Equals, KeyConfig(0x0018))
	c.Check(config.KeyType(), Equals, KeyTypeAES)

	_, err = config.WithKeyType(KeyType(8))
	c.Check(err, FitsTypeOf, &BadParameterError{})
}

func (s *keyConfigSuite) TestWithAuthKey(c *C) {
	config, err := KeyConfig(0x0080).WithAuthKey(SlotPrivateKey05)
	c.Check(err, IsNil)
	c.Check(config, Equals, KeyConfig(0x0580))
	c.Check(config.AuthKey(), Equals, SlotPrivateKey05)

	_, err = config.WithAuthKey(Slot(0x10))
	c.Check(err, FitsTypeOf, &BadParameterError{})
}

func (s *keyConfigSuite) TestValidate(c *C) {
	c.Check(KeyConfig(0x0053).Validate(), IsNil)
	c.Check(KeyConfig(0x001a).Validate(), IsNil)

	// A private key slot must hold a P256 key.
	config, err := KeyConfig(0x0053).WithKeyType(KeyTypeAES)
	c.Assert(err, IsNil)
	c.Check(config.Validate(), FitsTypeOf, &ProtocolViolationError{})
}

func (s *keyConfigSuite) TestTableRoundTrip(c *C) {
	configs := TrustAndGoKeyConfigs()
	encoded := EncodeKeyConfigs(configs)

	decoded, err := DecodeKeyConfigs(encoded)
	c.Assert(err, IsNil)
	c.Check(decoded, DeepEquals, configs)
}

func (s *keyConfigSuite) TestTableValid(c *C) {
	for _, config := range TrustAndGoKeyConfigs() {
		c.Check(config.Validate(), IsNil)
		c.Check(config.KeyType().IsValid(), internal_testutil.IsTrue)
	}
}

func (s *keyConfigSuite) TestDecodeBadLength(c *C) {
	_, err := DecodeKeyConfigs(make([]byte, 33))
	c.Check(err, FitsTypeOf, &ParseError{})
}
