// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package atca

import (
	"fmt"
)

func (c OpCode) String() string {
	switch c {
	case OpCodePause:
		return "Pause"
	case OpCodeRead:
		return "Read"
	case OpCodeMac:
		return "MAC"
	case OpCodeHMac:
		return "HMAC"
	case OpCodeWrite:
		return "Write"
	case OpCodeGenDig:
		return "GenDig"
	case OpCodeNonce:
		return "Nonce"
	case OpCodeLock:
		return "Lock"
	case OpCodeRandom:
		return "Random"
	case OpCodeDeriveKey:
		return "DeriveKey"
	case OpCodeUpdateExtra:
		return "UpdateExtra"
	case OpCodeCounter:
		return "Counter"
	case OpCodeCheckMac:
		return "CheckMac"
	case OpCodeInfo:
		return "Info"
	case OpCodeGenKey:
		return "GenKey"
	case OpCodeSign:
		return "Sign"
	case OpCodeEcdh:
		return "ECDH"
	case OpCodeVerify:
		return "Verify"
	case OpCodePrivWrite:
		return "PrivWrite"
	case OpCodeSha:
		return "SHA"
	case OpCodeAes:
		return "AES"
	case OpCodeKdf:
		return "KDF"
	case OpCodeSelfTest:
		return "SelfTest"
	case OpCodeSecureBoot:
		return "SecureBoot"
	default:
		return fmt.Sprintf("0x%02x", uint8(c))
	}
}

func (z Zone) String() string {
	switch z {
	case ZoneConfig:
		return "Config"
	case ZoneOTP:
		return "OTP"
	case ZoneData:
		return "Data"
	default:
		return fmt.Sprintf("0x%02x", uint8(z))
	}
}

func (c StatusCode) String() string {
	switch c {
	case StatusSuccess:
		return "Success"
	case StatusCheckMacMiscompare:
		return "CheckMacMiscompare"
	case StatusParseError:
		return "ParseError"
	case StatusEccFault:
		return "EccFault"
	case StatusSelfTestError:
		return "SelfTestError"
	case StatusHealthTestError:
		return "HealthTestError"
	case StatusExecutionError:
		return "ExecutionError"
	case StatusAfterWake:
		return "AfterWake"
	case StatusWatchdogExpire:
		return "WatchdogAboutToExpire"
	case StatusCRCError:
		return "CommunicationError"
	default:
		return fmt.Sprintf("0x%02x", uint8(c))
	}
}

func (s Slot) String() string {
	return fmt.Sprintf("slot 0x%02x", uint8(s))
}
