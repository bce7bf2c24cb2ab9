package bmf

import (
	"errors"
)

// Reading little-endian values from a descriptor's binary representation.
// BMFont stores all numeric fields little-endian; we never rely on the byte
// order of the host.

var errBufferBounds = errors.New("internal inconsistency: buffer bounds error")

func u16(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler
	return uint16(b[0]) | uint16(b[1])<<8
}

func u32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// binarySegm is a segment of byte data. Block payloads are sub-slices of the
// input buffer; nothing is copied until records are decoded.
type binarySegm []byte

func (b binarySegm) Size() int {
	return len(b)
}

// view returns n bytes at the given offset.
// The byte segment returned is a sub-slice of b.
func (b binarySegm) view(offset, n int) (binarySegm, error) {
	if offset < 0 || n < 0 || offset > len(b) || n > len(b)-offset {
		return nil, errBufferBounds
	}
	return b[offset : offset+n], nil
}

// cString copies out the bytes of b up to (not including) the first NUL byte.
// If b contains no NUL, all of b is copied and found is false.
func (b binarySegm) cString() (s string, found bool) {
	for i, c := range b {
		if c == 0 {
			return string(b[:i]), true
		}
	}
	return string(b), false
}
