package mlevent

import (
	"errors"
	"fmt"
	"strings"
)

// Causes carried inside a DecodeError.
var (
	ErrTruncated       = errors.New("truncated payload")
	ErrVarintOverflow  = errors.New("varint overflows 64 bits")
	ErrInvalidField    = errors.New("invalid field number")
	ErrInvalidWireType = errors.New("invalid wire type")
	ErrGroupMismatch   = errors.New("unbalanced group markers")
)

// DecodeError reports a binary or JSON payload that could not be
// decoded. Malformed input never yields a silent partial message; the
// error always reaches the caller.
type DecodeError struct {
	// Offset is the byte offset where decoding failed, or -1 when the
	// input has no meaningful byte position (JSON).
	Offset int
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("mlevent: decode: %v", e.Err)
	}
	return fmt.Sprintf("mlevent: decode at offset %d: %v", e.Offset, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// UnknownEnum records one enumeration field holding an integer outside
// the declared set.
type UnknownEnum struct {
	Field string
	Value int32
}

// UnknownEnumError is the non-fatal result of validating a message that
// carries out-of-set enumeration values. The raw integers are preserved
// on the message itself; callers may log this and proceed.
type UnknownEnumError struct {
	Unknown []UnknownEnum
}

func (e *UnknownEnumError) Error() string {
	parts := make([]string, len(e.Unknown))
	for i, u := range e.Unknown {
		parts[i] = fmt.Sprintf("%s=%d", u.Field, u.Value)
	}
	return "mlevent: unknown enum value(s): " + strings.Join(parts, ", ")
}
