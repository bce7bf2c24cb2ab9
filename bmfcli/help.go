package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	topic, _ := op.arg(0)
	help(topic)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "char", "chars", "glyph", "glyphs":
		pterm.Info.Println("Chars")
		pterm.Println(`
	The chars block holds one 20-byte record per glyph:
	+----+---+---+-------+--------+---------+---------+----------+------+------+
	| id | x | y | width | height | xoffset | yoffset | xadvance | page | chnl |
	+----+---+---+-------+--------+---------+---------+----------+------+------+
	x, y, width and height locate the glyph image within its texture page.
	xoffset/yoffset are added to the pen position when drawing,
	xadvance moves the pen after drawing.

	chars[:N]     list the first N glyphs (default 20)
	char:C        show the glyph for C, given as 'A', '65' or 'U+0041'
	`)
	case "kern", "kerning":
		pterm.Info.Println("Kerning Pairs")
		pterm.Println(`
	The kerningPairs block holds one 10-byte record per pair:
	+-------+--------+--------+
	| first | second | amount |
	+-------+--------+--------+
	Pairs may occur more than once; the last one wins.

	kern          list all kerning pairs
	kern:A        list kerning pairs starting with A
	kern:A:V      show the resolved kerning amount between A and V
	`)
	case "page", "pages":
		pterm.Info.Println("Pages")
		pterm.Println(`
	The pages block holds the file names of the texture pages.
	All names have the same length and are NUL-terminated.
	The index of a page is its position in the list.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	info          font generation info
	common        metrics common to all glyphs
	pages         texture pages
	chars[:N]     glyph records
	char:C        a single glyph
	kern[:A[:B]]  kerning pairs
	warnings      warnings issued while decoding
	help[:topic]  help on chars, kern or pages
	quit          leave
	`)
	}
}
