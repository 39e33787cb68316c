// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package atca

// OpCode identifies the device operation a command frame requests.
type OpCode uint8

const (
	OpCodePause       OpCode = 0x01
	OpCodeRead        OpCode = 0x02
	OpCodeMac         OpCode = 0x08
	OpCodeHMac        OpCode = 0x11
	OpCodeWrite       OpCode = 0x12
	OpCodeGenDig      OpCode = 0x15
	OpCodeNonce       OpCode = 0x16
	OpCodeLock        OpCode = 0x17
	OpCodeRandom      OpCode = 0x1b
	OpCodeDeriveKey   OpCode = 0x1c
	OpCodeUpdateExtra OpCode = 0x20
	OpCodeCounter     OpCode = 0x24
	OpCodeCheckMac    OpCode = 0x28
	OpCodeInfo        OpCode = 0x30
	OpCodeGenKey      OpCode = 0x40
	OpCodeSign        OpCode = 0x41
	OpCodeEcdh        OpCode = 0x43
	OpCodeVerify      OpCode = 0x45
	OpCodePrivWrite   OpCode = 0x46
	OpCodeSha         OpCode = 0x47
	OpCodeAes         OpCode = 0x51
	OpCodeKdf         OpCode = 0x56
	OpCodeSelfTest    OpCode = 0x77
	OpCodeSecureBoot  OpCode = 0x80
)

// AES command modes.
const (
	modeAesEncrypt uint8 = 0x00
	modeAesDecrypt uint8 = 0x01
)

// SHA command modes.
const (
	modeShaStart  uint8 = 0x00
	modeShaUpdate uint8 = 0x01
	modeShaEnd    uint8 = 0x02
	modeShaPublic uint8 = 0x03
)

// Info command modes.
const (
	modeInfoRevision uint8 = 0x00
	modeInfoKeyValid uint8 = 0x01
	modeInfoState    uint8 = 0x02
)

// Nonce command modes. The target bits select where the device stores the
// loaded value; only TempKey is used by this package.
const (
	modeNonceRandom      uint8 = 0x00
	modeNoncePassthrough uint8 = 0x03
)

// Lock command modes.
const (
	modeLockConfig     uint8 = 0x00
	modeLockData       uint8 = 0x01
	modeLockSlot       uint8 = 0x02
	modeLockNoChecksum uint8 = 0x80
)

// GenKey command modes.
const (
	modeGenKeyPublic  uint8 = 0x00
	modeGenKeyPrivate uint8 = 0x04
)

// Sign command modes.
const (
	modeSignExternal uint8 = 0x80
)

// Verify command modes.
const (
	modeVerifyStored   uint8 = 0x00
	modeVerifyExternal uint8 = 0x02
)

// Counter command modes.
const (
	modeCounterRead      uint8 = 0x00
	modeCounterIncrement uint8 = 0x01
)

// SelfTest mode bits, one per testable engine.
const (
	SelfTestRNG   uint8 = 0x01
	SelfTestECDSA uint8 = 0x02
	SelfTestECDH  uint8 = 0x08
	SelfTestAES   uint8 = 0x10
	SelfTestSHA   uint8 = 0x20
	SelfTestAll   uint8 = 0x3b
)

// DeriveKey command modes.
const (
	modeDeriveKeyRandom uint8 = 0x04
)

// SecureBoot command modes.
const (
	modeSecureBootFull uint8 = 0x05
)
