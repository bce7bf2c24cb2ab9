package bmf

import (
	"bytes"
	"slices"
)

// HeaderSize is the number of bytes preceding the first block.
const HeaderSize = 4

// Magic is the signature every binary BMFont descriptor starts with.
var Magic = [3]byte{'B', 'M', 'F'}

// SupportedVersions lists the format versions this package is able to decode.
// Versions 1 and 2 use different block layouts and are not supported.
var SupportedVersions = []uint8{3}

// Header is the fixed-size preamble of a descriptor.
type Header struct {
	Version uint8
}

// readHeader validates the signature and the version of a descriptor.
// Input shorter than the header is reported as truncated, regardless of its content.
func readHeader(src binarySegm) (Header, error) {
	buf, err := src.view(0, HeaderSize)
	if err != nil {
		return Header{}, errDecode(ErrTruncatedInput, 0, len(src),
			"need %d header bytes, have %d", HeaderSize, len(src))
	}
	if !bytes.Equal(buf[:3], Magic[:]) {
		return Header{}, errDecode(ErrInvalidMagic, 0, 0,
			"expected signature %q, found %q", Magic[:], []byte(buf[:3]))
	}
	h := Header{Version: buf[3]}
	if !slices.Contains(SupportedVersions, h.Version) {
		return Header{}, errDecode(ErrUnsupportedVersion, 0, 3,
			"format version %d not supported", h.Version)
	}
	tracer().Debugf("header = %v", h)
	return h, nil
}
