// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"errors"
	"fmt"
)

// ErrMalformedLength is returned when a fixed-size region's byte count does not
// match the size mandated by its descriptor.
var ErrMalformedLength = errors.New("ssz: malformed length")

// ErrInvalidOffset is returned when an offset table entry is smaller than a
// previously seen one, points outside of the enclosing region, or the first
// offset does not match the size of the fixed area.
var ErrInvalidOffset = errors.New("ssz: invalid offset")

// ErrCapacityExceeded is returned when the number of items (or bytes) decoded
// for a list type is larger than permitted by its descriptor.
var ErrCapacityExceeded = errors.New("ssz: capacity exceeded")

// ErrInvalidBitlistLength is returned when a bitlist's length sentinel bit is
// missing or implies a bit count beyond the type's limit.
var ErrInvalidBitlistLength = errors.New("ssz: invalid bitlist length")

// ErrInvalidUnionSelector is returned when a union selector byte references a
// variant that the union type does not declare.
var ErrInvalidUnionSelector = errors.New("ssz: invalid union selector")

// ErrInvalidBoolean is returned when a boolean byte is neither 0x00 nor 0x01.
var ErrInvalidBoolean = errors.New("ssz: invalid boolean")

// ErrJunkInBitvector is returned when the padding bits of a bitvector are not
// zero.
var ErrJunkInBitvector = errors.New("ssz: junk in bitvector padding")

// ErrNestingTooDeep is returned when a descriptor nests composite types deeper
// than MaxNestingDepth levels.
var ErrNestingTooDeep = errors.New("ssz: nesting too deep")

// ErrUnknownType is returned when a type identifier has no registered descriptor.
var ErrUnknownType = errors.New("ssz: unknown type")

// ErrBufferTooSmall is returned from encoding if the provided output byte buffer
// is too small to hold the encoding of the value.
var ErrBufferTooSmall = errors.New("ssz: output buffer too small")

// ErrInvalidValue is returned by Validate if an in-memory value does not conform
// to its type descriptor.
var ErrInvalidValue = errors.New("ssz: invalid value")

// Error is a decoding failure, tagged with one of the sentinel kinds above and
// the absolute position within the top level input where it was detected.
type Error struct {
	Kind   error  // One of the Err* sentinel errors
	Offset int    // Byte position in the input where the failure was detected
	Detail string // Optional human readable context
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v at offset %d", e.Kind, e.Offset)
	}
	return fmt.Sprintf("%v at offset %d: %s", e.Kind, e.Offset, e.Detail)
}

// Unwrap returns the error kind to make errors.Is work against the sentinels.
func (e *Error) Unwrap() error {
	return e.Kind
}

// newError creates a decoding failure with a formatted detail message.
func newError(kind error, offset int, format string, args ...any) *Error {
	return &Error{Kind: kind, Offset: offset, Detail: fmt.Sprintf(format, args...)}
}
