package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/npillmayer/bmfont/bmf"
	"github.com/npillmayer/bmfont/bmfquery"
	"github.com/pterm/pterm"
)

var errNoFont = errors.New("no font loaded")

func infoOp(intp *Intp, op *Op) (error, bool) {
	if intp.font == nil {
		return errNoFont, false
	}
	info := bmfquery.NameInfo(intp.font)
	data := [][]string{{"Key", "Value"}}
	for _, key := range []string{"face", "size", "bold", "italic", "unicode", "charset",
		"smooth", "stretchH", "aa", "padding", "spacing", "outline"} {
		data = append(data, []string{key, info[key]})
	}
	pterm.Printf("BMFont version %d, file %s\n", intp.font.Version, intp.fontfile)
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func commonOp(intp *Intp, op *Op) (error, bool) {
	if intp.font == nil {
		return errNoFont, false
	}
	c := intp.font.Common
	data := [][]string{
		{"Key", "Value"},
		{"lineHeight", strconv.Itoa(int(c.LineHeight))},
		{"base", strconv.Itoa(int(c.Base))},
		{"scaleW", strconv.Itoa(int(c.ScaleW))},
		{"scaleH", strconv.Itoa(int(c.ScaleH))},
		{"pages", strconv.Itoa(int(c.Pages))},
		{"packed", strconv.FormatBool(c.Packed())},
		{"alphaChnl", c.AlphaChnl.String()},
		{"redChnl", c.RedChnl.String()},
		{"greenChnl", c.GreenChnl.String()},
		{"blueChnl", c.BlueChnl.String()},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func pagesOp(intp *Intp, op *Op) (error, bool) {
	if intp.font == nil {
		return errNoFont, false
	}
	data := [][]string{{"Page", "File"}}
	for i, p := range intp.font.Pages {
		data = append(data, []string{strconv.Itoa(i), p})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

// charsOp lists glyph records, the first 20 unless a count is given.
func charsOp(intp *Intp, op *Op) (error, bool) {
	if intp.font == nil {
		return errNoFont, false
	}
	limit := 20
	if a, ok := op.arg(0); ok {
		n, err := strconv.Atoi(a)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid count %q", a), false
		}
		limit = n
	}
	data := [][]string{charHeader}
	for i, c := range intp.font.Chars.All() {
		if i >= limit {
			break
		}
		data = append(data, charRow(c))
	}
	pterm.Printf("%d of %d chars\n", len(data)-1, intp.font.Chars.Len())
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func charOp(intp *Intp, op *Op) (error, bool) {
	if intp.font == nil {
		return errNoFont, false
	}
	a, _ := op.arg(0)
	id, err := parseCharID(a)
	if err != nil {
		return err, false
	}
	all := intp.font.Chars.LookupAll(id)
	if len(all) == 0 {
		return fmt.Errorf("no glyph for character U+%04X", id), false
	}
	data := [][]string{charHeader}
	for _, c := range all {
		data = append(data, charRow(c))
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	if bounds, _, ok := bmfquery.GlyphBounds(intp.font, rune(id)); ok {
		pterm.Printf("bounds relative to baseline: %v\n", bounds)
	}
	if uv, ok := bmfquery.TexCoords(intp.font, rune(id)); ok {
		pterm.Printf("texture coordinates: %v\n", uv)
	}
	return nil, false
}

// kernOp lists kerning pairs, optionally filtered by first and second character.
func kernOp(intp *Intp, op *Op) (error, bool) {
	if intp.font == nil {
		return errNoFont, false
	}
	var first, second uint32
	a, hasFirst := op.arg(0)
	if hasFirst {
		var err error
		if first, err = parseCharID(a); err != nil {
			return err, false
		}
	}
	b, hasSecond := op.arg(1)
	if hasSecond {
		var err error
		if second, err = parseCharID(b); err != nil {
			return err, false
		}
		kt := bmfquery.NewKerningTable(intp.font)
		pterm.Printf("kern(%s, %s) = %v\n", charLabel(first), charLabel(second),
			kt.Kern(rune(first), rune(second)))
		return nil, false
	}
	data := [][]string{{"First", "Second", "Amount"}}
	for _, p := range intp.font.KerningPairs {
		if hasFirst && p.First != first {
			continue
		}
		data = append(data, []string{charLabel(p.First), charLabel(p.Second), strconv.Itoa(int(p.Amount))})
	}
	pterm.Printf("%d of %d kerning pairs\n", len(data)-1, len(intp.font.KerningPairs))
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func warningsOp(intp *Intp, op *Op) (error, bool) {
	if intp.font == nil {
		return errNoFont, false
	}
	ws := intp.font.Warnings()
	if len(ws) == 0 {
		pterm.Println("no warnings")
	}
	for _, w := range ws {
		pterm.Warning.Println(w.String())
	}
	return nil, false
}

var charHeader = []string{"Id", "Char", "X", "Y", "W", "H", "XOff", "YOff", "XAdv", "Page", "Chnl"}

func charRow(c bmf.Char) []string {
	return []string{
		strconv.Itoa(int(c.ID)),
		charLabel(c.ID),
		strconv.Itoa(int(c.X)),
		strconv.Itoa(int(c.Y)),
		strconv.Itoa(int(c.Width)),
		strconv.Itoa(int(c.Height)),
		strconv.Itoa(int(c.XOffset)),
		strconv.Itoa(int(c.YOffset)),
		strconv.Itoa(int(c.XAdvance)),
		strconv.Itoa(int(c.Page)),
		fmt.Sprintf("%04b", c.Chnl),
	}
}

// charLabel formats a character id for display, quoting printable characters.
func charLabel(id uint32) string {
	r := rune(id)
	if id > 0x10FFFF || !strconv.IsPrint(r) {
		return fmt.Sprintf("U+%04X", id)
	}
	return strconv.QuoteRune(r)
}
