// Copyright 2024 Canonical Ltd.
// Licensed under the LGPLv3 with static-linking exception.
// See LICENCE file for details.

package atca

import (
	"fmt"
)

// BadParameterError is returned from command constructors when an argument
// is invalid for the requested operation, before anything is transmitted.
type BadParameterError struct {
	msg string
}

func (e *BadParameterError) Error() string {
	return "invalid parameter: " + e.msg
}

func badParameterError(format string, args ...interface{}) error {
	return &BadParameterError{msg: fmt.Sprintf(format, args...)}
}

// InvalidSizeError is returned when a payload length is outside the bounds
// the device protocol permits for an operation.
type InvalidSizeError struct {
	Len   int
	Limit int
}

func (e *InvalidSizeError) Error() string {
	return fmt.Sprintf("invalid payload length %d (limit %d)", e.Len, e.Limit)
}

// OutOfRangeError is returned when a zone, slot, block or offset falls
// outside the capacity of the addressed memory region.
type OutOfRangeError struct {
	msg string
}

func (e *OutOfRangeError) Error() string {
	return "address out of range: " + e.msg
}

func outOfRangeError(format string, args ...interface{}) error {
	return &OutOfRangeError{msg: fmt.Sprintf(format, args...)}
}

// ParseError is returned when a response buffer does not match the shape
// expected for a typed result, including a response with a bad checksum.
type ParseError struct {
	msg string
}

func (e *ParseError) Error() string {
	return "cannot parse response: " + e.msg
}

func parseError(format string, args ...interface{}) error {
	return &ParseError{msg: fmt.Sprintf(format, args...)}
}

// ProtocolViolationError is returned when a decoded bitfield contains a
// combination the device specification marks as prohibited. A
// mis-provisioned device is reported as an error, never a panic.
type ProtocolViolationError struct {
	msg string
}

func (e *ProtocolViolationError) Error() string {
	return "prohibited configuration: " + e.msg
}

func protocolViolationError(format string, args ...interface{}) error {
	return &ProtocolViolationError{msg: fmt.Sprintf(format, args...)}
}

// ZoneLockedError is returned when a write is attempted against a zone
// that has already been permanently locked. The write is rejected locally
// without touching the transport, since the device would reject it anyway.
// This indicates a programming error in the caller: a locked zone can
// never become writable again.
type ZoneLockedError struct {
	Zone Zone
}

func (e *ZoneLockedError) Error() string {
	return fmt.Sprintf("zone %v is permanently locked", e.Zone)
}

// TransportError is returned when the underlying transport fails.
type TransportError struct {
	Op  string // the operation that caused the error
	err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("cannot complete %s operation on transport: %v", e.Op, e.err)
}

func (e *TransportError) Unwrap() error {
	return e.err
}

// StatusCode corresponds to the status byte carried in a four byte
// response frame.
type StatusCode uint8

const (
	StatusSuccess            StatusCode = 0x00
	StatusCheckMacMiscompare StatusCode = 0x01
	StatusParseError         StatusCode = 0x03
	StatusEccFault           StatusCode = 0x05
	StatusSelfTestError      StatusCode = 0x07
	StatusHealthTestError    StatusCode = 0x08
	StatusExecutionError     StatusCode = 0x0f
	StatusAfterWake          StatusCode = 0x11
	StatusWatchdogExpire     StatusCode = 0xee
	StatusCRCError           StatusCode = 0xff
)

// StatusError is returned from Device.Execute when the device reports a
// status other than success.
type StatusError struct {
	OpCode OpCode
	Code   StatusCode
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("device returned status %v whilst executing command %v", e.Code, e.OpCode)
}

// DecodeStatus converts a device status byte into an error, returning nil
// for a success status.
func DecodeStatus(op OpCode, code StatusCode) error {
	if code == StatusSuccess {
		return nil
	}
	return &StatusError{OpCode: op, Code: code}
}
