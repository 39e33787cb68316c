// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package testutil

import (
	"reflect"

	. "gopkg.in/check.v1"
)

type isTrueChecker struct {
	*CheckerInfo
}

// IsTrue determines whether a boolean value is true.
var IsTrue Checker = &isTrueChecker{
	&CheckerInfo{Name: "IsTrue", Params: []string{"value"}}}

func (checker *isTrueChecker) Check(params []interface{}, names []string) (result bool, error string) {
	value, ok := params[0].(bool)
	if !ok {
		return false, names[0] + " is not a bool"
	}
	return value, ""
}

type isFalseChecker struct {
	*CheckerInfo
}

// IsFalse determines whether a boolean value is false.
var IsFalse Checker = &isFalseChecker{
	&CheckerInfo{Name: "IsFalse", Params: []string{"value"}}}

func (checker *isFalseChecker) Check(params []interface{}, names []string) (result bool, error string) {
	value, ok := params[0].(bool)
	if !ok {
		return false, names[0] + " is not a bool"
	}
	return !value, ""
}

type lenEqualsChecker struct {
	*CheckerInfo
}

// LenEquals determines whether a value has the specified length,
// using the builtin len() function.
//
// For example:
//
//	c.Check(value, LenEquals, 5)
var LenEquals Checker = &lenEqualsChecker{
	&CheckerInfo{Name: "LenEquals", Params: []string{"value", "expected len"}}}

func (checker *lenEqualsChecker) Check(params []interface{}, names []string) (result bool, err string) {
	expected, ok := params[1].(int)
	if !ok {
		return false, names[1] + " is not an int"
	}

	value := reflect.ValueOf(params[0])
	switch value.Kind() {
	case reflect.Array, reflect.Chan, reflect.Map, reflect.Slice, reflect.String:
		return value.Len() == expected, ""
	default:
		return false, names[0] + " has no length"
	}
}
