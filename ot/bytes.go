package ot

import (
	"fmt"
	"math"
	"time"
)

// Reading bytes from a font's binary representation

func u16(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler
	return uint16(b[0])<<8 | uint16(b[1])<<0
}

func u32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])<<0
}

// --- Byte segments ---------------------------------------------------------

// binarySegm is a segment of byte data. We use it throughout this package to
// navigate the font's binary data.
type binarySegm []byte

// view returns n bytes at the given offset.
// The byte segment returned is a sub-slice of b.
// An offset pointing outside of b is reported as ErrInvalidOffset.
func (b binarySegm) view(offset, n int) (binarySegm, error) {
	if offset < 0 || n < 0 || offset > len(b) || n > len(b)-offset {
		return nil, fmt.Errorf("%w: range [%d:%d+%d] exceeds segment of size %d",
			ErrInvalidOffset, offset, offset, n, len(b))
	}
	return b[offset : offset+n], nil
}

// u16 returns the uint16 in b at the relative offset i.
func (b binarySegm) u16(i int) (uint16, error) {
	buf, err := b.view(i, 2)
	if err != nil {
		return 0, err
	}
	return u16(buf), nil
}

// u32 returns the uint32 in b at the relative offset i.
func (b binarySegm) u32(i int) (uint32, error) {
	buf, err := b.view(i, 4)
	if err != nil {
		return 0, err
	}
	return u32(buf), nil
}

// --- Sequential reader -----------------------------------------------------

// Scalar types of the OpenType specification which carry their own semantics.
type (
	// Offset16 is a 16-bit offset, relative to some base given by context.
	Offset16 = uint16
	// Offset24 is a 24-bit offset, relative to some base given by context.
	Offset24 = uint32
	// Offset32 is a 32-bit offset, relative to some base given by context.
	Offset32 = uint32
)

// Version16Dot16 is a packed version number: major version in the upper,
// minor version in the lower 16 bits.
type Version16Dot16 uint32

// Major returns the major version.
func (v Version16Dot16) Major() uint16 { return uint16(v >> 16) }

// Minor returns the minor version.
func (v Version16Dot16) Minor() uint16 { return uint16(v) }

func (v Version16Dot16) String() string {
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}

// LongDateTime is a date and time, represented in number of seconds since
// 12:00 midnight, January 1, 1904, UTC. Negative values denote dates before 1904.
type LongDateTime int64

// macEpochToUnix is the number of seconds between 1904-01-01 and 1970-01-01.
const macEpochToUnix = 2082844800

// Time converts d to a calendar time in UTC.
// Values too far from the epoch to be represented are clamped.
func (d LongDateTime) Time() time.Time {
	s := int64(d)
	if s < math.MinInt64+macEpochToUnix {
		s = math.MinInt64 + macEpochToUnix
	}
	return time.Unix(s-macEpochToUnix, 0).UTC()
}

func (d LongDateTime) String() string {
	return d.Time().Format(time.RFC3339)
}

// reader is a sequential big-endian cursor over a byte segment. Every read
// consumes a fixed number of bytes and advances the cursor. Reading past the end
// of the segment fails with ErrMalformedInput and leaves the cursor untouched.
type reader struct {
	data binarySegm
	pos  int
}

func newReader(b binarySegm) *reader {
	return &reader{data: b}
}

// Pos returns the current position of the cursor, relative to the segment start.
func (r *reader) Pos() int {
	return r.pos
}

// Len returns the number of unread bytes.
func (r *reader) Len() int {
	return len(r.data) - r.pos
}

func (r *reader) next(n int) ([]byte, error) {
	if n > r.Len() {
		return nil, fmt.Errorf("%w: need %d bytes at position %d, have %d",
			ErrMalformedInput, n, r.pos, r.Len())
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *reader) u8() (uint8, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) i8() (int8, error) {
	n, err := r.u8()
	return int8(n), err
}

func (r *reader) u16() (uint16, error) {
	b, err := r.next(2)
	if err != nil {
		return 0, err
	}
	return u16(b), nil
}

func (r *reader) i16() (int16, error) {
	n, err := r.u16()
	return int16(n), err
}

func (r *reader) u24() (uint32, error) {
	b, err := r.next(3)
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
}

func (r *reader) u32() (uint32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return u32(b), nil
}

func (r *reader) i32() (int32, error) {
	n, err := r.u32()
	return int32(n), err
}

func (r *reader) tag() (Tag, error) {
	n, err := r.u32()
	return Tag(n), err
}

func (r *reader) offset16() (Offset16, error) { return r.u16() }
func (r *reader) offset24() (Offset24, error) { return r.u24() }
func (r *reader) offset32() (Offset32, error) { return r.u32() }

func (r *reader) version16Dot16() (Version16Dot16, error) {
	n, err := r.u32()
	return Version16Dot16(n), err
}

// fixed reads a signed 16.16 fixed-point number.
func (r *reader) fixed() (float64, error) {
	n, err := r.i32()
	if err != nil {
		return 0, err
	}
	return float64(n) / (1 << 16), nil
}

func (r *reader) longDateTime() (LongDateTime, error) {
	b, err := r.next(8)
	if err != nil {
		return 0, err
	}
	return LongDateTime(int64(u32(b))<<32 | int64(u32(b[4:]))), nil
}

// --- Checked arithmetic ----------------------------------------------------

// checkedAddUint32 checks for overflow in addition of two uint32 values
func checkedAddUint32(a, b uint32) (uint32, error) {
	if a > math.MaxUint32-b {
		return 0, fmt.Errorf("integer overflow: %d + %d", a, b)
	}
	return a + b, nil
}
