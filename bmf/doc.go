/*
Package bmf decodes binary BMFont font descriptors (*.fnt, format version 3).

BMFont descriptors are produced by AngelCode's bitmap font generator and
similar tools. A descriptor does not contain any glyph images, but describes
where glyphs are located within one or more texture pages, how to position
them relative to the pen, and how to kern pairs of characters.
Intended audience for this package are

▪︎ games and graphics applications rendering from pre-rasterized glyph atlases

▪︎ tools that need to inspect or validate descriptor files

Package `bmf` is a low-level package. It will decode a descriptor into plain
records, but will not interpret them: for example, it is not possible to ask
package `bmf` for a kerning distance between two characters. Functions of this
kind are homed in the sister package `bmfquery`.

# Binary Layout

A file starts with the three bytes 'B', 'M', 'F' and a version byte.
It is followed by a sequence of blocks, each one tagged with a type byte and
a little-endian uint32 length:

	1  info           fixed fields + font name
	2  common         fixed fields
	3  pages          equal-length, NUL-terminated texture file names
	4  chars          20 bytes per glyph
	5  kerningPairs   10 bytes per pair

Blocks of unknown type are skipped, not rejected. This is a policy to tolerate
future extensions of the format; a warning is recorded on the decoded font.

# Ownership

Parse copies everything it needs out of the input buffer. A decoded Font does
not reference the input and the caller is free to re-use the buffer.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package bmf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'bmfont.decode'
func tracer() tracing.Trace {
	return tracing.Select("bmfont.decode")
}
