package bmf

import "bytes"

// decodePages splits the payload into page names. All names in a block have
// the same length, so the position of the first NUL determines the stride
// for all of them.
//
// An empty payload yields no pages.
func decodePages(blk Block) ([]string, error) {
	b := blk.Payload
	if b.Size() == 0 {
		return nil, nil
	}
	nul := bytes.IndexByte(b, 0)
	if nul < 0 {
		return nil, errDecode(ErrMalformedPagesBlock, BlockPages, blk.Offset,
			"page name is missing its terminator")
	}
	stride := nul + 1
	if b.Size()%stride != 0 {
		return nil, errDecode(ErrMalformedPagesBlock, BlockPages, blk.Offset,
			"length %d is not a multiple of page name stride %d", b.Size(), stride)
	}
	pages := make([]string, 0, b.Size()/stride)
	for i := 0; i < b.Size(); i += stride {
		entry, _ := b.view(i, stride)
		name, _ := entry.cString()
		if len(name) != nul {
			return nil, errDecode(ErrMalformedPagesBlock, BlockPages, blk.PayloadOffset()+i,
				"page name %d has length %d, expected %d", len(pages), len(name), nul)
		}
		pages = append(pages, name)
	}
	tracer().Debugf("pages: %v", pages)
	return pages, nil
}
