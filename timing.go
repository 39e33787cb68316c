// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package atca

import (
	"time"
)

// Worst case execution times in milliseconds, indexed by the clock
// divider setting. These values come from the device datasheet and
// firmware polling loops depend on them; do not tune them.
var (
	execTimeAes         = [3]time.Duration{27, 27, 27}
	execTimeCheckMac    = [3]time.Duration{40, 40, 40}
	execTimeCounter     = [3]time.Duration{25, 25, 25}
	execTimeDeriveKey   = [3]time.Duration{50, 50, 50}
	execTimeEcdh        = [3]time.Duration{172, 75, 531}
	execTimeGenDig      = [3]time.Duration{35, 25, 35}
	execTimeGenKey      = [3]time.Duration{215, 115, 653}
	execTimeInfo        = [3]time.Duration{5, 5, 5}
	execTimeKdf         = [3]time.Duration{165, 165, 165}
	execTimeLock        = [3]time.Duration{35, 35, 35}
	execTimeMac         = [3]time.Duration{55, 55, 55}
	execTimeNonce       = [3]time.Duration{20, 20, 20}
	execTimePrivWrite   = [3]time.Duration{50, 50, 50}
	execTimeRandom      = [3]time.Duration{23, 23, 23}
	execTimeRead        = [3]time.Duration{5, 5, 5}
	execTimeSecureBoot  = [3]time.Duration{160, 80, 480}
	execTimeSelfTest    = [3]time.Duration{625, 250, 2324}
	execTimeSha         = [3]time.Duration{36, 42, 75}
	execTimeSign        = [3]time.Duration{115, 220, 665}
	execTimeUpdateExtra = [3]time.Duration{10, 10, 10}
	execTimeVerify      = [3]time.Duration{105, 295, 1085}
	execTimeWrite       = [3]time.Duration{45, 45, 45}
)

// ExecutionTime returns the worst case time the device needs to execute
// this command at the given clock divider setting. The caller must wait
// this long after transmitting before polling for a response. The second
// return value is false for opcodes with no published timing; callers
// should fall back to a conservative default for those.
func (c OpCode) ExecutionTime(div ClockDivider) (time.Duration, bool) {
	if div > ClockDividerTwo {
		return 0, false
	}

	var t [3]time.Duration
	switch c {
	case OpCodeAes:
		t = execTimeAes
	case OpCodeCheckMac:
		t = execTimeCheckMac
	case OpCodeCounter:
		t = execTimeCounter
	case OpCodeDeriveKey:
		t = execTimeDeriveKey
	case OpCodeEcdh:
		t = execTimeEcdh
	case OpCodeGenDig:
		t = execTimeGenDig
	case OpCodeGenKey:
		t = execTimeGenKey
	case OpCodeInfo:
		t = execTimeInfo
	case OpCodeKdf:
		t = execTimeKdf
	case OpCodeLock:
		t = execTimeLock
	case OpCodeMac:
		t = execTimeMac
	case OpCodeNonce:
		t = execTimeNonce
	case OpCodePrivWrite:
		t = execTimePrivWrite
	case OpCodeRandom:
		t = execTimeRandom
	case OpCodeRead:
		t = execTimeRead
	case OpCodeSecureBoot:
		t = execTimeSecureBoot
	case OpCodeSelfTest:
		t = execTimeSelfTest
	case OpCodeSha:
		t = execTimeSha
	case OpCodeSign:
		t = execTimeSign
	case OpCodeUpdateExtra:
		t = execTimeUpdateExtra
	case OpCodeVerify:
		t = execTimeVerify
	case OpCodeWrite:
		t = execTimeWrite
	default:
		return 0, false
	}
	return t[div] * time.Millisecond, true
}
