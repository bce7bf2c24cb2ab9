package bmf

// infoFixedSize is the size of the info block's fields preceding the font name.
const infoFixedSize = 14

// Flags of Info.BitField. BMFont counts bits starting at the most significant one.
const (
	InfoSmooth      uint8 = 1 << 7
	InfoUnicode     uint8 = 1 << 6
	InfoItalic      uint8 = 1 << 5
	InfoBold        uint8 = 1 << 4
	InfoFixedHeight uint8 = 1 << 3
)

// Padding of each glyph within the texture, in pixels.
type Padding struct {
	Up, Right, Down, Left uint8
}

// Spacing between glyphs within the texture, in pixels.
type Spacing struct {
	Horizontal, Vertical uint8
}

// Info holds the information about how the font was generated.
type Info struct {
	FontSize int16   // size of the true type font; negative for character-height matching
	BitField uint8   // see InfoSmooth et al.
	CharSet  uint8   // OEM charset, if not unicode
	StretchH uint16  // font height stretch in percent; 100 means no stretch
	AA       uint8   // supersampling level; 1 means no supersampling
	Padding  Padding // padding of each character
	Spacing  Spacing // spacing of each character
	Outline  uint8   // outline thickness
	FontName string  // name of the true type font, as stored
}

// Smooth reports whether smoothing was turned on.
func (info Info) Smooth() bool { return info.BitField&InfoSmooth != 0 }

// Unicode reports whether the font uses the unicode charset.
func (info Info) Unicode() bool { return info.BitField&InfoUnicode != 0 }

// Italic reports whether the font is italic.
func (info Info) Italic() bool { return info.BitField&InfoItalic != 0 }

// Bold reports whether the font is bold.
func (info Info) Bold() bool { return info.BitField&InfoBold != 0 }

// FixedHeight reports whether the font was generated with a fixed height.
func (info Info) FixedHeight() bool { return info.BitField&InfoFixedHeight != 0 }

// decodeInfo reads the fixed fields in declared order, followed by the font name.
// The name ends at the first NUL or at the end of the block, whichever comes first.
func decodeInfo(blk Block) (Info, error) {
	b := blk.Payload
	if b.Size() < infoFixedSize {
		return Info{}, errDecode(ErrMalformedInfoBlock, BlockInfo, blk.Offset,
			"length %d is smaller than fixed fields size %d", b.Size(), infoFixedSize)
	}
	info := Info{
		FontSize: int16(u16(b[0:])),
		BitField: b[2],
		CharSet:  b[3],
		StretchH: u16(b[4:]),
		AA:       b[6],
		Padding: Padding{
			Up:    b[7],
			Right: b[8],
			Down:  b[9],
			Left:  b[10],
		},
		Spacing: Spacing{
			Horizontal: b[11],
			Vertical:   b[12],
		},
		Outline: b[13],
	}
	name, terminated := b[infoFixedSize:].cString()
	if !terminated {
		tracer().Debugf("font name of info block is not NUL-terminated")
	}
	info.FontName = name
	tracer().Debugf("info: font = %q, size = %d", info.FontName, info.FontSize)
	return info, nil
}
