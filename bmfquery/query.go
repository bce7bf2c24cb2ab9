/*
Package bmfquery answers questions about decoded BMFont fonts.

Package `bmf` exposes the records of a descriptor as they are stored.
This package interprets them: it looks up glyphs for runes, resolves kerning
pairs, decodes font names in legacy charsets and converts pixel values into
the types of golang.org/x/image/font, so that BMFont metrics may be mixed with
metrics from other font sources.

All values are in pixels of the texture pages, with y growing downwards.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package bmfquery

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bmfont.query'
func tracer() tracing.Trace {
	return tracing.Select("bmfont.query")
}
