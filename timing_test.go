// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package atca_test

import (
	"time"

	. "gopkg.in/check.v1"

	. "github.com/canonical/go-atca"
	internal_testutil "github.com/canonical/go-atca/internal/testutil"
)

type timingSuite struct{}

var _ = Suite(&timingSuite{})

func (s *timingSuite) TestFlatProfiles(c *C) {
	// Commands whose execution time does not depend on the clock
	// divider.
	for _, div := range []ClockDivider{ClockDividerZero, ClockDividerOne, ClockDividerTwo} {
		t, ok := OpCodeAes.ExecutionTime(div)
		c.Check(ok, internal_testutil.IsTrue)
		c.Check(t, Equals, 27*time.Millisecond)

		t, ok = OpCodeRead.ExecutionTime(div)
		c.Check(ok, internal_testutil.IsTrue)
		c.Check(t, Equals, 5*time.Millisecond)

		t, ok = OpCodeWrite.ExecutionTime(div)
		c.Check(ok, internal_testutil.IsTrue)
		c.Check(t, Equals, 45*time.Millisecond)

		t, ok = OpCodeLock.ExecutionTime(div)
		c.Check(ok, internal_testutil.IsTrue)
		c.Check(t, Equals, 35*time.Millisecond)
	}
}

func (s *timingSuite) TestDividerDependentProfiles(c *C) {
	t, ok := OpCodeEcdh.ExecutionTime(ClockDividerZero)
	c.Check(ok, internal_testutil.IsTrue)
	c.Check(t, Equals, 172*time.Millisecond)

	t, ok = OpCodeEcdh.ExecutionTime(ClockDividerOne)
	c.Check(ok, internal_testutil.IsTrue)
	c.Check(t, Equals, 75*time.Millisecond)

	t, ok = OpCodeEcdh.ExecutionTime(ClockDividerTwo)
	c.Check(ok, internal_testutil.IsTrue)
	c.Check(t, Equals, 531*time.Millisecond)

	t, ok = OpCodeSelfTest.ExecutionTime(ClockDividerTwo)
	c.Check(ok, internal_testutil.IsTrue)
	c.Check(t, Equals, 2324*time.Millisecond)

	t, ok = OpCodeSign.ExecutionTime(ClockDividerOne)
	c.Check(ok, internal_testutil.IsTrue)
	c.Check(t, Equals, 220*time.Millisecond)

	t, ok = OpCodeVerify.ExecutionTime(ClockDividerTwo)
	c.Check(ok, internal_testutil.IsTrue)
	c.Check(t, Equals, 1085*time.Millisecond)
}

func (s *timingSuite) TestUnpublished(c *C) {
	// HMAC and Pause carry no published execution time.
	_, ok := OpCodeHMac.ExecutionTime(ClockDividerZero)
	c.Check(ok, internal_testutil.IsFalse)

	_, ok = OpCodePause.ExecutionTime(ClockDividerZero)
	c.Check(ok, internal_testutil.IsFalse)
}

func (s *timingSuite) TestBadDivider(c *C) {
	_, ok := OpCodeRead.ExecutionTime(ClockDivider(3))
	c.Check(ok, internal_testutil.IsFalse)
}
