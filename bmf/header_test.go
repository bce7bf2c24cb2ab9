package bmf

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestReadHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmfont.decode")
	defer teardown()
	//
	tests := []struct {
		name  string
		input []byte
		kind  ErrorKind
	}{
		{"Empty", []byte{}, ErrTruncatedInput},
		{"OneByte", []byte{'B'}, ErrTruncatedInput},
		{"ThreeBytes", []byte{'B', 'M', 'F'}, ErrTruncatedInput},
		{"ThreeBytesWrongMagic", []byte{'X', 'Y', 'Z'}, ErrTruncatedInput},
		{"WrongMagic", []byte{'B', 'M', 'G', 3}, ErrInvalidMagic},
		{"TextFormat", []byte("info face=\"Arial\""), ErrInvalidMagic},
		{"Version2", []byte{'B', 'M', 'F', 2}, ErrUnsupportedVersion},
		{"Version4", []byte{'B', 'M', 'F', 4}, ErrUnsupportedVersion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readHeader(binarySegm(tt.input))
			if !errors.Is(err, tt.kind) {
				t.Errorf("expected %s, have %v", tt.kind, err)
			}
		})
	}
	h, err := readHeader(binarySegm{'B', 'M', 'F', 3, 0xff})
	if err != nil {
		t.Fatalf("expected valid header, have %v", err)
	}
	if h.Version != 3 {
		t.Errorf("expected version 3, have %d", h.Version)
	}
}
