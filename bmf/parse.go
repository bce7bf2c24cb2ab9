package bmf

import (
	"fmt"
)

// Parse decodes a binary BMFont descriptor from a byte slice.
//
// Parse either returns a completely decoded and validated font, or an error
// of type *DecodeError. There is no partial result. The input is not
// modified and is not referenced by the returned font.
//
// Parse does not touch any shared state and may be called concurrently.
func Parse(data []byte) (*Font, error) {
	src := binarySegm(data)
	h, err := readHeader(src)
	if err != nil {
		return nil, err
	}
	asm := newAssembler(h)
	scanner := newBlockScanner(src, HeaderSize)
	for blk, err := range scanner.Blocks() {
		if err != nil {
			return nil, err
		}
		if err = asm.add(blk); err != nil {
			return nil, err
		}
	}
	return asm.finish(len(src))
}

// assembler collects decoded blocks in the order the scanner yields them and
// checks invariants spanning more than one block.
type assembler struct {
	header       Header
	info         Option[Info]
	common       Option[Common]
	commonOffset int
	pages        []string
	chars        CharMap
	kerning      []KerningPair
	lastType     BlockType // last known block type seen
	wc           warningCollector
}

func newAssembler(h Header) *assembler {
	return &assembler{
		header: h,
		info:   None[Info](),
		common: None[Common](),
	}
}

func (asm *assembler) add(blk Block) error {
	if !blk.Type.IsKnown() {
		asm.wc.addWarning(blk.Type, fmt.Sprintf("skipped %d bytes of unknown block", blk.Len()),
			uint32(blk.Offset))
		return nil
	}
	if blk.Type < asm.lastType {
		asm.wc.addWarning(blk.Type, fmt.Sprintf("block follows %s block", asm.lastType),
			uint32(blk.Offset))
	}
	asm.lastType = blk.Type
	switch blk.Type {
	case BlockInfo:
		if asm.info.IsSome() {
			return errDecode(ErrDuplicateBlock, BlockInfo, blk.Offset, "second info block")
		}
		info, err := decodeInfo(blk)
		if err != nil {
			return err
		}
		asm.info = Some(info)
	case BlockCommon:
		if asm.common.IsSome() {
			return errDecode(ErrDuplicateBlock, BlockCommon, blk.Offset, "second common block")
		}
		common, err := decodeCommon(blk)
		if err != nil {
			return err
		}
		asm.common = Some(common)
		asm.commonOffset = blk.Offset
	case BlockPages:
		pages, err := decodePages(blk)
		if err != nil {
			return err
		}
		asm.pages = append(asm.pages, pages...)
	case BlockChars:
		chars, err := decodeChars(blk)
		if err != nil {
			return err
		}
		asm.chars.add(chars)
	case BlockKerningPairs:
		pairs, err := decodeKerningPairs(blk)
		if err != nil {
			return err
		}
		asm.kerning = append(asm.kerning, pairs...)
	}
	return nil
}

// finish checks for required blocks and for consistency between common and
// pages block. end is the offset where scanning stopped.
func (asm *assembler) finish(end int) (*Font, error) {
	info, ok := asm.info.Get()
	if !ok {
		return nil, errDecode(ErrMissingRequiredBlock, BlockInfo, end, "no info block found")
	}
	common, ok := asm.common.Get()
	if !ok {
		return nil, errDecode(ErrMissingRequiredBlock, BlockCommon, end, "no common block found")
	}
	if int(common.Pages) != len(asm.pages) {
		return nil, errDecode(ErrPageCountMismatch, BlockCommon, asm.commonOffset,
			"common block declares %d pages, found %d page names", common.Pages, len(asm.pages))
	}
	f := &Font{
		Version:      asm.header.Version,
		Info:         info,
		Common:       common,
		Pages:        asm.pages,
		Chars:        asm.chars,
		KerningPairs: asm.kerning,
	}
	if asm.wc.hasWarnings() {
		f.warnings = asm.wc.warnings
	}
	tracer().Debugf("decoded font %q: %d pages, %d chars, %d kerning pairs",
		info.FontName, len(f.Pages), f.Chars.Len(), len(f.KerningPairs))
	return f, nil
}
