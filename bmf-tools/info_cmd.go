package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/bmfont/bmf"
	"github.com/npillmayer/bmfont/bmfquery"
	"github.com/thatisuday/commando"
)

func printInfo(w io.Writer, path string, f *bmf.Font) {
	names := bmfquery.NameInfo(f)
	fmt.Fprintf(w, "Path: %s\n", path)
	fmt.Fprintf(w, "Version: %d\n", f.Version)
	fmt.Fprintf(w, "Face: %s\n", names["face"])
	fmt.Fprintf(w, "Size: %s\n", names["size"])
	var style []string
	for _, flag := range []string{"bold", "italic", "unicode", "smooth"} {
		if names[flag] == "1" {
			style = append(style, flag)
		}
	}
	if len(style) > 0 {
		fmt.Fprintf(w, "Style: %s\n", strings.Join(style, ","))
	}
	if cs := names["charset"]; cs != "" {
		fmt.Fprintf(w, "Charset: %s\n", cs)
	}
	c := f.Common
	fmt.Fprintf(w, "Line: height=%d base=%d\n", c.LineHeight, c.Base)
	fmt.Fprintf(w, "Texture: %dx%d packed=%v\n", c.ScaleW, c.ScaleH, c.Packed())
	fmt.Fprintf(w, "Pages (%d): %s\n", len(f.Pages), strings.Join(f.Pages, ","))
	fmt.Fprintf(w, "Chars: %d\n", f.Chars.Len())
	fmt.Fprintf(w, "Kerning pairs: %d\n", len(f.KerningPairs))
	fmt.Fprintf(w, "Warnings: %d\n", len(f.Warnings()))
}

// fontDump is the JSON representation of a decoded font.
type fontDump struct {
	Version      uint8             `json:"version"`
	Info         bmf.Info          `json:"info"`
	Common       bmf.Common        `json:"common"`
	Pages        []string          `json:"pages"`
	Chars        []bmf.Char        `json:"chars"`
	KerningPairs []bmf.KerningPair `json:"kerningPairs"`
	Warnings     []string          `json:"warnings,omitempty"`
}

func newFontDump(f *bmf.Font) fontDump {
	d := fontDump{
		Version:      f.Version,
		Info:         f.Info,
		Common:       f.Common,
		Pages:        f.Pages,
		Chars:        make([]bmf.Char, 0, f.Chars.Len()),
		KerningPairs: f.KerningPairs,
	}
	if d.Pages == nil {
		d.Pages = []string{}
	}
	if d.KerningPairs == nil {
		d.KerningPairs = []bmf.KerningPair{}
	}
	d.Info.FontName = bmfquery.FontName(f)
	for _, c := range f.Chars.All() {
		d.Chars = append(d.Chars, c)
	}
	for _, w := range f.Warnings() {
		d.Warnings = append(d.Warnings, w.String())
	}
	return d
}

func writeDump(w io.Writer, f *bmf.Font, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(newFontDump(f))
}

func runDumpCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	fontPath := strings.TrimSpace(args["font"].Value)
	if fontPath == "" {
		fatalf("font path is required")
	}
	f := mustLoadFont(fontPath)
	if err := writeDump(os.Stdout, f, mustFlagBool(flags["indent"], "indent")); err != nil {
		fatalf("cannot write JSON: %v", err)
	}
}
