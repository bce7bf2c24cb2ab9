/*
Package bmfont is for handling bitmap fonts described by BMFont descriptors.

BMFont descriptors (*.fnt) accompany one or more texture images, the "pages",
which contain pre-rasterized glyphs. A descriptor tells where each glyph is
located within a page, how to position it, and how to kern pairs of glyphs.
AngelCode's BMFont tool and many of its successors are able to write
descriptors in a compact binary format, which is what this module decodes.

▪︎ Package `bmf` is the decoder. It turns a descriptor into a `bmf.Font`.

▪︎ Package `bmfquery` answers questions about a decoded font, such as
glyph bounds or kerning distances, in units of golang.org/x/image/font.

Loading the texture pages, rasterizing or rendering glyphs and caching fonts
are the client's business.

# Status

Decodes format version 3 of the binary format. The text and XML variants of
the format are not supported.

# Links

BMFont file format:
https://www.angelcode.com/products/bmfont/doc/file_format.html

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package bmfont

import (
	"github.com/npillmayer/bmfont/bmf"
	"github.com/npillmayer/bmfont/internal/fontload"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bmfont'
func tracer() tracing.Trace {
	return tracing.Select("bmfont")
}

// LoadFont loads and decodes a binary BMFont descriptor from a file.
func LoadFont(fontfile string) (*bmf.Font, error) {
	f, err := fontload.LoadFontFile(fontfile)
	if err != nil {
		return nil, err
	}
	return FromBinary(f.Binary)
}

// FromBinary decodes a binary BMFont descriptor from memory.
//
// The returned font does not reference `data`.
func FromBinary(data []byte) (*bmf.Font, error) {
	font, err := bmf.Parse(data)
	if err != nil {
		tracer().Errorf("cannot decode BMFont descriptor: %v", err)
		return nil, err
	}
	tracer().Debugf("decoded BMFont %s", font.Info.FontName)
	return font, nil
}
