// Copyright 2025 RowBridge Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rberr

import (
	"errors"
	"fmt"
)

// Error codes are a closed space.  Each code has exactly one message format
// below; adding a code without a format is caught by the init check.
const (
	Ok uint16 = 0

	// Group 1: internal errors
	ErrInternal     uint16 = 20101
	ErrNotSupported uint16 = 20105

	// Group 2: numeric
	ErrOutOfRange uint16 = 20201
	ErrInvalidArg uint16 = 20203

	// Group 3: invalid input
	ErrBadConfig    uint16 = 20300
	ErrInvalidInput uint16 = 20301
	ErrInvalidTz    uint16 = 20312

	// Group 4: column mapping and partition decoding
	ErrUnsupportedType         uint16 = 20330
	ErrMalformedPartitionValue uint16 = 20331
)

var errorMsgRefer = map[uint16]string{
	ErrInternal:                "internal error: %s",
	ErrNotSupported:            "%s is not supported",
	ErrOutOfRange:              "data out of range: data type %s, value '%s'",
	ErrInvalidArg:              "invalid argument %s, bad value %v",
	ErrBadConfig:               "invalid configuration: %s",
	ErrInvalidInput:            "invalid input: %s",
	ErrInvalidTz:               "invalid timezone %s",
	ErrUnsupportedType:         "unsupported column type %s for prefilled column: %s",
	ErrMalformedPartitionValue: "invalid partition value '%s' for %s column: %s",
}

// Error is the error type used across the repository.  It carries a code
// from the closed space above and a rendered message.
type Error struct {
	code    uint16
	message string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) ErrorCode() uint16 {
	return e.code
}

func newError(code uint16, args ...any) *Error {
	format, ok := errorMsgRefer[code]
	if !ok {
		panic(fmt.Sprintf("error code %d has no message format", code))
	}
	return &Error{
		code:    code,
		message: fmt.Sprintf(format, args...),
	}
}

// IsErrCode reports whether err is an *Error carrying the given code.
func IsErrCode(err error, code uint16) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.code == code
	}
	return false
}

func NewInternalError(msg string) *Error {
	return newError(ErrInternal, msg)
}

func NewInternalErrorf(format string, args ...any) *Error {
	return newError(ErrInternal, fmt.Sprintf(format, args...))
}

func NewNotSupported(what string) *Error {
	return newError(ErrNotSupported, what)
}

func NewNotSupportedf(format string, args ...any) *Error {
	return newError(ErrNotSupported, fmt.Sprintf(format, args...))
}

func NewOutOfRange(typ string, value string) *Error {
	return newError(ErrOutOfRange, typ, value)
}

func NewInvalidArg(arg string, val any) *Error {
	return newError(ErrInvalidArg, arg, val)
}

func NewBadConfig(msg string) *Error {
	return newError(ErrBadConfig, msg)
}

func NewBadConfigf(format string, args ...any) *Error {
	return newError(ErrBadConfig, fmt.Sprintf(format, args...))
}

func NewInvalidInput(msg string) *Error {
	return newError(ErrInvalidInput, msg)
}

func NewInvalidInputf(format string, args ...any) *Error {
	return newError(ErrInvalidInput, fmt.Sprintf(format, args...))
}

func NewInvalidTz(tz string) *Error {
	return newError(ErrInvalidTz, tz)
}

// NewUnsupportedType reports a prefilled column whose logical type has no
// decode rule.  Raised while the cursor is being built, never at row time.
func NewUnsupportedType(typ string, column string) *Error {
	return newError(ErrUnsupportedType, typ, column)
}

// NewMalformedPartitionValue reports a raw partition string that fails the
// parse rule of the target type.
func NewMalformedPartitionValue(value string, typ string, column string) *Error {
	return newError(ErrMalformedPartitionValue, value, typ, column)
}
