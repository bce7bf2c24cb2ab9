package fontload

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bmfont'
func tracer() tracing.Trace {
	return tracing.Select("bmfont")
}

// MaxFileSize limits the size of descriptor files we are willing to read.
// Real-world descriptors of even large CJK fonts stay well below 4 MB.
const MaxFileSize = 16 << 20

// FontFile is the unparsed content of a descriptor file.
type FontFile struct {
	Path   string
	Binary []byte
}

// LoadFontFile reads a BMFont descriptor file (*.fnt) into memory.
func LoadFontFile(path string) (*FontFile, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if fi.IsDir() {
		return nil, fmt.Errorf("font file %s is a directory", path)
	}
	if fi.Size() > MaxFileSize {
		return nil, fmt.Errorf("font file %s too large: %d bytes", path, fi.Size())
	}
	bytez, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tracer().Debugf("loaded %d bytes from %s", len(bytez), path)
	return &FontFile{Path: path, Binary: bytez}, nil
}
