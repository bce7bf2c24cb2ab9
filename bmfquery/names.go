package bmfquery

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/bmfont/bmf"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// Windows charset identifiers, as used in the charset field of the info block.
const (
	CharsetANSI        uint8 = 0
	CharsetDefault     uint8 = 1
	CharsetSymbol      uint8 = 2
	CharsetMac         uint8 = 77
	CharsetShiftJIS    uint8 = 128
	CharsetHangul      uint8 = 129
	CharsetJohab       uint8 = 130
	CharsetGB2312      uint8 = 134
	CharsetChineseBig5 uint8 = 136
	CharsetGreek       uint8 = 161
	CharsetTurkish     uint8 = 162
	CharsetVietnamese  uint8 = 163
	CharsetHebrew      uint8 = 177
	CharsetArabic      uint8 = 178
	CharsetBaltic      uint8 = 186
	CharsetRussian     uint8 = 204
	CharsetThai        uint8 = 222
	CharsetEastEurope  uint8 = 238
	CharsetOEM         uint8 = 255
)

type charset struct {
	name string
	enc  encoding.Encoding
}

var charsets = map[uint8]charset{
	CharsetANSI:        {"ANSI", charmap.Windows1252},
	CharsetDefault:     {"DEFAULT", nil},
	CharsetSymbol:      {"SYMBOL", nil},
	CharsetMac:         {"MAC", charmap.Macintosh},
	CharsetShiftJIS:    {"SHIFTJIS", japanese.ShiftJIS},
	CharsetHangul:      {"HANGUL", korean.EUCKR},
	CharsetJohab:       {"JOHAB", nil},
	CharsetGB2312:      {"GB2312", simplifiedchinese.GBK},
	CharsetChineseBig5: {"CHINESEBIG5", traditionalchinese.Big5},
	CharsetGreek:       {"GREEK", charmap.Windows1253},
	CharsetTurkish:     {"TURKISH", charmap.Windows1254},
	CharsetVietnamese:  {"VIETNAMESE", charmap.Windows1258},
	CharsetHebrew:      {"HEBREW", charmap.Windows1255},
	CharsetArabic:      {"ARABIC", charmap.Windows1256},
	CharsetBaltic:      {"BALTIC", charmap.Windows1257},
	CharsetRussian:     {"RUSSIAN", charmap.Windows1251},
	CharsetThai:        {"THAI", charmap.Windows874},
	CharsetEastEurope:  {"EASTEUROPE", charmap.Windows1250},
	CharsetOEM:         {"OEM", charmap.CodePage437},
}

// CharsetName returns the name BMFont uses for a charset identifier.
func CharsetName(cs uint8) string {
	if c, ok := charsets[cs]; ok {
		return c.name
	}
	return fmt.Sprintf("charset(%d)", cs)
}

// CharsetEncoding returns the text encoding for a charset identifier.
// It returns nil if no encoding is known for cs.
func CharsetEncoding(cs uint8) encoding.Encoding {
	return charsets[cs].enc
}

// FontName returns the font name of f as UTF-8.
//
// For non-unicode fonts the name is stored in the font's charset and is
// converted accordingly. If conversion fails, the name is returned as stored.
func FontName(f *bmf.Font) string {
	if f == nil {
		return ""
	}
	name := f.Info.FontName
	if f.Info.Unicode() {
		return name
	}
	enc := CharsetEncoding(f.Info.CharSet)
	if enc == nil {
		return name
	}
	decoded, err := enc.NewDecoder().String(name)
	if err != nil {
		tracer().Infof("cannot decode font name in charset %s: %v", CharsetName(f.Info.CharSet), err)
		return name
	}
	return decoded
}

// NameInfo returns selected descriptive information of a font as a map,
// using the attribute names of the BMFont text format as keys.
func NameInfo(f *bmf.Font) map[string]string {
	info := make(map[string]string)
	if f == nil {
		return info
	}
	info["face"] = FontName(f)
	info["size"] = strconv.Itoa(int(f.Info.FontSize))
	info["bold"] = boolFlag(f.Info.Bold())
	info["italic"] = boolFlag(f.Info.Italic())
	info["unicode"] = boolFlag(f.Info.Unicode())
	info["smooth"] = boolFlag(f.Info.Smooth())
	if f.Info.Unicode() {
		info["charset"] = ""
	} else {
		info["charset"] = CharsetName(f.Info.CharSet)
	}
	info["stretchH"] = strconv.Itoa(int(f.Info.StretchH))
	info["aa"] = strconv.Itoa(int(f.Info.AA))
	p := f.Info.Padding
	info["padding"] = fmt.Sprintf("%d,%d,%d,%d", p.Up, p.Right, p.Down, p.Left)
	info["spacing"] = fmt.Sprintf("%d,%d", f.Info.Spacing.Horizontal, f.Info.Spacing.Vertical)
	info["outline"] = strconv.Itoa(int(f.Info.Outline))
	return info
}

func boolFlag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
