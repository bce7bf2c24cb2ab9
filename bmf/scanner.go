package bmf

import (
	"fmt"
	"iter"
)

// BlockType is the type tag of a block.
type BlockType uint8

// Block types defined by format version 3.
const (
	BlockInfo         BlockType = 1
	BlockCommon       BlockType = 2
	BlockPages        BlockType = 3
	BlockChars        BlockType = 4
	BlockKerningPairs BlockType = 5
)

// blockHeaderSize is the size of a block's type tag plus its length field.
const blockHeaderSize = 5

func (t BlockType) String() string {
	switch t {
	case BlockInfo:
		return "info"
	case BlockCommon:
		return "common"
	case BlockPages:
		return "pages"
	case BlockChars:
		return "chars"
	case BlockKerningPairs:
		return "kerningPairs"
	}
	return fmt.Sprintf("unknown(%d)", uint8(t))
}

// IsKnown reports whether t is one of the block types of format version 3.
func (t BlockType) IsKnown() bool {
	return t >= BlockInfo && t <= BlockKerningPairs
}

// Block is a type-tagged, length-framed span of the input buffer.
// The payload is a sub-slice of the input and is not copied.
type Block struct {
	Type    BlockType
	Offset  int        // absolute offset of the block's type tag
	Payload binarySegm // exactly the declared number of bytes
}

// PayloadOffset is the absolute offset of the first payload byte.
func (b Block) PayloadOffset() int {
	return b.Offset + blockHeaderSize
}

// Len is the declared length of the block's payload.
func (b Block) Len() int {
	return b.Payload.Size()
}

// blockScanner walks the block sequence with a single forward cursor.
// It is not restartable.
type blockScanner struct {
	src binarySegm
	pos int
}

func newBlockScanner(src binarySegm, start int) *blockScanner {
	return &blockScanner{src: src, pos: start}
}

// next slices out the block at the cursor and advances the cursor past it.
// ok is false once the input is exhausted.
func (s *blockScanner) next() (blk Block, ok bool, err error) {
	remaining := len(s.src) - s.pos
	if remaining <= 0 {
		return Block{}, false, nil
	}
	if remaining < blockHeaderSize {
		return Block{}, false, errDecode(ErrTruncatedBlock, 0, s.pos,
			"need %d bytes for block header, have %d", blockHeaderSize, remaining)
	}
	typ := BlockType(s.src[s.pos])
	length := u32(s.src[s.pos+1:])
	remaining -= blockHeaderSize
	if uint64(length) > uint64(remaining) {
		return Block{}, false, errDecode(ErrTruncatedBlock, typ, s.pos,
			"declared length %d exceeds remaining %d bytes", length, remaining)
	}
	start := s.pos + blockHeaderSize
	blk = Block{
		Type:    typ,
		Offset:  s.pos,
		Payload: s.src[start : start+int(length) : start+int(length)],
	}
	s.pos = start + int(length)
	tracer().Debugf("block %s at offset %d, length %d", typ, blk.Offset, length)
	return blk, true, nil
}

// Blocks returns a lazy sequence of the remaining blocks. An error terminates
// the sequence; it is yielded together with a zero Block.
func (s *blockScanner) Blocks() iter.Seq2[Block, error] {
	return func(yield func(Block, error) bool) {
		for {
			blk, ok, err := s.next()
			if err != nil {
				yield(Block{}, err)
				return
			}
			if !ok || !yield(blk, nil) {
				return
			}
		}
	}
}
