package mlevent

// Wire types per the proto3 encoding rules. Groups are long retired
// but still legal framing inside unknown fields, so the skipper
// understands them.
const (
	wireVarint     = 0
	wireFixed64    = 1
	wireBytes      = 2
	wireStartGroup = 3
	wireEndGroup   = 4
	wireFixed32    = 5
)

// appendVarint appends v in base-128 varint form.
func appendVarint(b []byte, v uint64) []byte {
	for v >= 0x80 {
		b = append(b, byte(v)|0x80)
		v >>= 7
	}
	return append(b, byte(v))
}

// appendTag appends the tag varint for a field number and wire type.
func appendTag(b []byte, field, wt int) []byte {
	return appendVarint(b, uint64(field)<<3|uint64(wt))
}

// appendStringField appends a length-delimited string field, omitting
// the empty default.
func appendStringField(b []byte, field int, s string) []byte {
	if s == "" {
		return b
	}
	b = appendTag(b, field, wireBytes)
	b = appendVarint(b, uint64(len(s)))
	return append(b, s...)
}

// appendVarintField appends a varint field, omitting the zero default.
func appendVarintField(b []byte, field int, v uint64) []byte {
	if v == 0 {
		return b
	}
	b = appendTag(b, field, wireVarint)
	return appendVarint(b, v)
}

// appendMessageField appends a length-delimited sub-message. A present
// but empty sub-message still gets its tag and zero length.
func appendMessageField(b []byte, field int, sub []byte) []byte {
	b = appendTag(b, field, wireBytes)
	b = appendVarint(b, uint64(len(sub)))
	return append(b, sub...)
}

// readVarint reads a varint at pos. At most 10 bytes are consumed.
func readVarint(data []byte, pos int) (uint64, int, error) {
	var v uint64
	for i := 0; ; i++ {
		if pos+i >= len(data) {
			return 0, 0, &DecodeError{Offset: len(data), Err: ErrTruncated}
		}
		if i == 10 {
			return 0, 0, &DecodeError{Offset: pos, Err: ErrVarintOverflow}
		}
		c := data[pos+i]
		v |= uint64(c&0x7f) << (7 * uint(i))
		if c < 0x80 {
			return v, pos + i + 1, nil
		}
	}
}

// readTag reads a field tag and splits it into field number and wire
// type. Field number zero is malformed.
func readTag(data []byte, pos int) (field, wt, next int, err error) {
	v, next, err := readVarint(data, pos)
	if err != nil {
		return 0, 0, 0, err
	}
	field = int(v >> 3)
	wt = int(v & 0x7)
	if field == 0 {
		return 0, 0, 0, &DecodeError{Offset: pos, Err: ErrInvalidField}
	}
	return field, wt, next, nil
}

// readBytes reads a length-delimited chunk at pos.
func readBytes(data []byte, pos int) ([]byte, int, error) {
	n, next, err := readVarint(data, pos)
	if err != nil {
		return nil, 0, err
	}
	if n > uint64(len(data)-next) {
		return nil, 0, &DecodeError{Offset: pos, Err: ErrTruncated}
	}
	end := next + int(n)
	return data[next:end], end, nil
}

// skipField advances past a field body of the given wire type. Unknown
// field numbers are dropped this way; a skip that runs off the buffer
// is a decode error, not a silent success.
func skipField(data []byte, pos, wt int) (int, error) {
	switch wt {
	case wireVarint:
		_, next, err := readVarint(data, pos)
		return next, err
	case wireFixed64:
		if pos+8 > len(data) {
			return 0, &DecodeError{Offset: pos, Err: ErrTruncated}
		}
		return pos + 8, nil
	case wireBytes:
		_, next, err := readBytes(data, pos)
		return next, err
	case wireStartGroup:
		for {
			_, w, next, err := readTag(data, pos)
			if err != nil {
				return 0, err
			}
			if w == wireEndGroup {
				return next, nil
			}
			pos, err = skipField(data, next, w)
			if err != nil {
				return 0, err
			}
		}
	case wireFixed32:
		if pos+4 > len(data) {
			return 0, &DecodeError{Offset: pos, Err: ErrTruncated}
		}
		return pos + 4, nil
	case wireEndGroup:
		return 0, &DecodeError{Offset: pos, Err: ErrGroupMismatch}
	default:
		return 0, &DecodeError{Offset: pos, Err: ErrInvalidWireType}
	}
}
