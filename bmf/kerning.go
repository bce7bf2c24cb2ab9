package bmf

// KerningRecordSize is the stride of records in a kerningPairs block.
const KerningRecordSize = 10

// KerningPair adjusts the horizontal advance for a pair of characters.
// Amount is to be added to the advance of First, if Second immediately
// follows it.
type KerningPair struct {
	First  uint32
	Second uint32
	Amount int16
}

// decodeKerningPairs decodes every record of a kerningPairs block. Pairs may
// occur more than once; all of them are retained in encounter order.
func decodeKerningPairs(blk Block) ([]KerningPair, error) {
	b := blk.Payload
	if b.Size()%KerningRecordSize != 0 {
		return nil, errDecode(ErrMalformedKerningBlock, BlockKerningPairs, blk.Offset,
			"length %d is not a multiple of record size %d", b.Size(), KerningRecordSize)
	}
	pairs := make([]KerningPair, b.Size()/KerningRecordSize)
	for i := range pairs {
		r := b[i*KerningRecordSize : (i+1)*KerningRecordSize]
		pairs[i] = KerningPair{
			First:  u32(r[0:]),
			Second: u32(r[4:]),
			Amount: int16(u16(r[8:])),
		}
	}
	tracer().Debugf("kerning: %d pairs", len(pairs))
	return pairs, nil
}
