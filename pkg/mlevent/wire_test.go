package mlevent

import (
	"errors"
	"testing"
)

func TestVarintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 16383, 16384, 1<<32 - 1, 1 << 56, 1<<64 - 1}
	for _, v := range values {
		b := appendVarint(nil, v)
		got, next, err := readVarint(b, 0)
		if err != nil {
			t.Fatalf("readVarint(%d): %v", v, err)
		}
		if got != v {
			t.Errorf("readVarint round-trip: got %d, want %d", got, v)
		}
		if next != len(b) {
			t.Errorf("readVarint(%d) consumed %d bytes, encoded %d", v, next, len(b))
		}
	}
}

func TestReadVarintTruncated(t *testing.T) {
	_, _, err := readVarint([]byte{0x80, 0x80}, 0)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatal("expected a *DecodeError")
	}
}

func TestReadVarintOverflow(t *testing.T) {
	b := make([]byte, 11)
	for i := range b {
		b[i] = 0x80
	}
	_, _, err := readVarint(b, 0)
	if !errors.Is(err, ErrVarintOverflow) {
		t.Fatalf("expected ErrVarintOverflow, got %v", err)
	}
}

func TestReadTagRejectsFieldZero(t *testing.T) {
	_, _, _, err := readTag([]byte{0x00}, 0)
	if !errors.Is(err, ErrInvalidField) {
		t.Fatalf("expected ErrInvalidField, got %v", err)
	}
}

func TestReadBytesTruncated(t *testing.T) {
	// Declared length 5, only 2 bytes follow.
	_, _, err := readBytes([]byte{0x05, 'a', 'b'}, 0)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestSkipFieldGroup(t *testing.T) {
	// Group containing a varint field and a nested group.
	var b []byte
	b = appendTag(b, 1, wireVarint)
	b = appendVarint(b, 42)
	b = appendTag(b, 2, wireStartGroup)
	b = appendTag(b, 2, wireEndGroup)
	b = appendTag(b, 9, wireEndGroup)
	trailer := appendStringField(nil, 1, "after")
	b = append(b, trailer...)

	next, err := skipField(b, 0, wireStartGroup)
	if err != nil {
		t.Fatalf("skipField: %v", err)
	}
	if next != len(b)-len(trailer) {
		t.Errorf("group skip stopped at %d, want %d", next, len(b)-len(trailer))
	}
}

func TestSkipFieldStrayEndGroup(t *testing.T) {
	_, err := skipField([]byte{0x01}, 0, wireEndGroup)
	if !errors.Is(err, ErrGroupMismatch) {
		t.Fatalf("expected ErrGroupMismatch, got %v", err)
	}
}

func TestSkipFieldUnterminatedGroup(t *testing.T) {
	b := appendTag(nil, 1, wireVarint)
	b = appendVarint(b, 7)
	_, err := skipField(b, 0, wireStartGroup)
	if !errors.Is(err, ErrTruncated) {
		t.Fatalf("expected ErrTruncated, got %v", err)
	}
}

func TestSkipFieldFixedWidths(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	next, err := skipField(data, 0, wireFixed64)
	if err != nil || next != 8 {
		t.Errorf("fixed64 skip: next=%d err=%v", next, err)
	}
	next, err = skipField(data, 0, wireFixed32)
	if err != nil || next != 4 {
		t.Errorf("fixed32 skip: next=%d err=%v", next, err)
	}
	if _, err := skipField(data[:3], 0, wireFixed64); !errors.Is(err, ErrTruncated) {
		t.Errorf("short fixed64: expected ErrTruncated, got %v", err)
	}
}
