package bmf

// commonSize is the exact size of a common block's payload.
const commonSize = 15

// CommonPacked is the flag of Common.BitField telling that monochrome
// characters have been packed into each of the texture channels.
const CommonPacked uint8 = 1 << 0

// ChannelContent tells what a texture channel holds.
type ChannelContent uint8

// Values for the content of a texture channel.
const (
	ChannelGlyph ChannelContent = iota
	ChannelOutline
	ChannelGlyphAndOutline
	ChannelZero
	ChannelOne
)

func (c ChannelContent) String() string {
	switch c {
	case ChannelGlyph:
		return "glyph"
	case ChannelOutline:
		return "outline"
	case ChannelGlyphAndOutline:
		return "glyph+outline"
	case ChannelZero:
		return "zero"
	case ChannelOne:
		return "one"
	}
	return "unknown"
}

// Common holds information common to all characters.
type Common struct {
	LineHeight uint16 // distance in pixels between each line of text
	Base       uint16 // pixels from the top of the line to the base of the characters
	ScaleW     uint16 // width of the texture pages
	ScaleH     uint16 // height of the texture pages
	Pages      uint16 // number of texture pages
	BitField   uint8  // see CommonPacked
	AlphaChnl  ChannelContent
	RedChnl    ChannelContent
	GreenChnl  ChannelContent
	BlueChnl   ChannelContent
}

// Packed reports whether monochrome characters have been packed into each
// of the texture channels.
func (c Common) Packed() bool { return c.BitField&CommonPacked != 0 }

func decodeCommon(blk Block) (Common, error) {
	b := blk.Payload
	if b.Size() != commonSize {
		return Common{}, errDecode(ErrMalformedCommonBlock, BlockCommon, blk.Offset,
			"length %d differs from expected size %d", b.Size(), commonSize)
	}
	c := Common{
		LineHeight: u16(b[0:]),
		Base:       u16(b[2:]),
		ScaleW:     u16(b[4:]),
		ScaleH:     u16(b[6:]),
		Pages:      u16(b[8:]),
		BitField:   b[10],
		AlphaChnl:  ChannelContent(b[11]),
		RedChnl:    ChannelContent(b[12]),
		GreenChnl:  ChannelContent(b[13]),
		BlueChnl:   ChannelContent(b[14]),
	}
	tracer().Debugf("common: line height = %d, base = %d, pages = %d", c.LineHeight, c.Base, c.Pages)
	return c, nil
}
