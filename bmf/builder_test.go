package bmf

// Helpers to assemble synthetic descriptors for tests.

func putU16(b []byte, off int, v uint16) {
	b[off] = byte(v)
	b[off+1] = byte(v >> 8)
}

func putU32(b []byte, off int, v uint32) {
	b[off] = byte(v)
	b[off+1] = byte(v >> 8)
	b[off+2] = byte(v >> 16)
	b[off+3] = byte(v >> 24)
}

type fontBuilder struct {
	buf []byte
}

func newFontBuilder() *fontBuilder {
	return &fontBuilder{buf: []byte{'B', 'M', 'F', 3}}
}

// block appends a block with a correct length field.
func (fb *fontBuilder) block(typ BlockType, payload []byte) *fontBuilder {
	return fb.rawBlock(typ, uint32(len(payload)), payload)
}

// rawBlock appends a block with an arbitrary length field.
func (fb *fontBuilder) rawBlock(typ BlockType, length uint32, payload []byte) *fontBuilder {
	hdr := make([]byte, blockHeaderSize)
	hdr[0] = byte(typ)
	putU32(hdr, 1, length)
	fb.buf = append(fb.buf, hdr...)
	fb.buf = append(fb.buf, payload...)
	return fb
}

func (fb *fontBuilder) bytes() []byte {
	return fb.buf
}

func infoPayload(size int16, bits uint8, name string) []byte {
	b := make([]byte, infoFixedSize)
	putU16(b, 0, uint16(size))
	b[2] = bits
	b[3] = 0
	putU16(b, 4, 100)
	b[6] = 1
	b[7], b[8], b[9], b[10] = 1, 2, 3, 4
	b[11], b[12] = 1, 1
	b[13] = 0
	b = append(b, name...)
	return append(b, 0)
}

func commonPayload(lineHeight, base, pages uint16) []byte {
	b := make([]byte, commonSize)
	putU16(b, 0, lineHeight)
	putU16(b, 2, base)
	putU16(b, 4, 256)
	putU16(b, 6, 128)
	putU16(b, 8, pages)
	b[10] = CommonPacked
	b[11], b[12], b[13], b[14] = 1, 0, 0, 4
	return b
}

func pagesPayload(names ...string) []byte {
	var b []byte
	for _, n := range names {
		b = append(b, n...)
		b = append(b, 0)
	}
	return b
}

func charsPayload(chars ...Char) []byte {
	b := make([]byte, len(chars)*CharRecordSize)
	for i, c := range chars {
		r := b[i*CharRecordSize:]
		putU32(r, 0, c.ID)
		putU16(r, 4, c.X)
		putU16(r, 6, c.Y)
		putU16(r, 8, c.Width)
		putU16(r, 10, c.Height)
		putU16(r, 12, uint16(c.XOffset))
		putU16(r, 14, uint16(c.YOffset))
		putU16(r, 16, uint16(c.XAdvance))
		r[18] = c.Page
		r[19] = byte(c.Chnl)
	}
	return b
}

func kerningPayload(pairs ...KerningPair) []byte {
	b := make([]byte, len(pairs)*KerningRecordSize)
	for i, p := range pairs {
		r := b[i*KerningRecordSize:]
		putU32(r, 0, p.First)
		putU32(r, 4, p.Second)
		putU16(r, 8, uint16(p.Amount))
	}
	return b
}

// minimalFont is a valid descriptor with one page and no glyphs.
func minimalFont() *fontBuilder {
	return newFontBuilder().
		block(BlockInfo, infoPayload(12, InfoUnicode, "A")).
		block(BlockCommon, commonPayload(14, 11, 1)).
		block(BlockPages, pagesPayload("a_0.png")).
		block(BlockChars, nil).
		block(BlockKerningPairs, nil)
}
