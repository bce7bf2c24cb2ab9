package bmfquery

import (
	"github.com/npillmayer/bmfont/bmf"
	"golang.org/x/image/math/fixed"
)

// Kern returns the horizontal adjustment to apply between r0 and r1.
//
// Descriptors may contain the same pair more than once. The pair seen last
// wins, as it would when the descriptor's pairs are loaded into a map.
// Kern scans all pairs; clients kerning longer texts should use a KerningTable.
func Kern(f *bmf.Font, r0, r1 rune) fixed.Int26_6 {
	if f == nil || r0 < 0 || r1 < 0 {
		return 0
	}
	first, second := uint32(r0), uint32(r1)
	for i := len(f.KerningPairs) - 1; i >= 0; i-- {
		if p := f.KerningPairs[i]; p.First == first && p.Second == second {
			return fixed.I(int(p.Amount))
		}
	}
	return 0
}

type kerningKey struct {
	first, second uint32
}

// KerningTable resolves kerning pairs of a font in constant time.
type KerningTable struct {
	amounts map[kerningKey]int16
}

// NewKerningTable resolves all kerning pairs of a font, the last one
// seen winning for duplicate pairs.
func NewKerningTable(f *bmf.Font) *KerningTable {
	kt := &KerningTable{amounts: make(map[kerningKey]int16)}
	if f == nil {
		return kt
	}
	for _, p := range f.KerningPairs {
		kt.amounts[kerningKey{p.First, p.Second}] = p.Amount
	}
	if n := len(f.KerningPairs) - len(kt.amounts); n > 0 {
		tracer().Debugf("%d duplicate kerning pairs overridden", n)
	}
	return kt
}

// Len returns the number of distinct kerning pairs.
func (kt *KerningTable) Len() int {
	return len(kt.amounts)
}

// Kern returns the horizontal adjustment to apply between r0 and r1.
func (kt *KerningTable) Kern(r0, r1 rune) fixed.Int26_6 {
	if r0 < 0 || r1 < 0 {
		return 0
	}
	return fixed.I(int(kt.amounts[kerningKey{uint32(r0), uint32(r1)}]))
}
