package bmf

// CharRecordSize is the stride of records in a chars block.
const CharRecordSize = 20

// Channels is a bit mask telling in which texture channels a glyph is found.
type Channels uint8

// Texture channel bits of Char.Chnl.
const (
	ChannelBlue  Channels = 1
	ChannelGreen Channels = 2
	ChannelRed   Channels = 4
	ChannelAlpha Channels = 8
	ChannelAll   Channels = 15
)

// Char describes a single glyph: where to find it in its texture page, and
// how to place it relative to the current pen position.
type Char struct {
	ID       uint32 // character id
	X, Y     uint16 // left/top position of the glyph image in the texture
	Width    uint16 // width of the glyph image in the texture
	Height   uint16 // height of the glyph image in the texture
	XOffset  int16  // offset to add to the pen position when copying the image
	YOffset  int16
	XAdvance int16    // how much to advance the pen after drawing the glyph
	Page     uint8    // texture page where the glyph image is found
	Chnl     Channels // texture channels where the glyph image is found
}

// decodeChars decodes every record of a chars block. The number of records
// is implied by the block length, which has to be a multiple of CharRecordSize.
func decodeChars(blk Block) ([]Char, error) {
	b := blk.Payload
	if b.Size()%CharRecordSize != 0 {
		return nil, errDecode(ErrMalformedCharsBlock, BlockChars, blk.Offset,
			"length %d is not a multiple of record size %d", b.Size(), CharRecordSize)
	}
	count := b.Size() / CharRecordSize
	chars := make([]Char, count)
	for i := range chars {
		r := b[i*CharRecordSize : (i+1)*CharRecordSize]
		chars[i] = Char{
			ID:       u32(r[0:]),
			X:        u16(r[4:]),
			Y:        u16(r[6:]),
			Width:    u16(r[8:]),
			Height:   u16(r[10:]),
			XOffset:  int16(u16(r[12:])),
			YOffset:  int16(u16(r[14:])),
			XAdvance: int16(u16(r[16:])),
			Page:     r[18],
			Chnl:     Channels(r[19]),
		}
	}
	tracer().Debugf("chars: %d records", count)
	return chars, nil
}
