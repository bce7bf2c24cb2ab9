package bmf

import "iter"

// Font is the decoded form of a BMFont descriptor.
//
// A Font is only ever handed out completely decoded and validated.
// It owns all of its data and does not reference the input buffer.
type Font struct {
	Version      uint8         // format version from the header
	Info         Info          // how the font was generated
	Common       Common        // metrics common to all characters
	Pages        []string      // texture file names; the page index is the position in this list
	Chars        CharMap       // glyphs in order of appearance
	KerningPairs []KerningPair // all kerning pairs in order of appearance
	warnings     []Warning
}

// Warnings returns all warnings encountered during decoding.
// Returns an empty slice if no warnings were recorded.
func (f *Font) Warnings() []Warning {
	if f.warnings == nil {
		return []Warning{}
	}
	return f.warnings
}

// --- Character Map ---------------------------------------------------------

// CharMap holds glyph records keyed by character id, preserving the order
// in which they appeared in the descriptor.
//
// The format does not guarantee character ids to be unique. CharMap retains
// every record; Lookup returns the one seen last.
type CharMap struct {
	records []Char
	index   map[uint32]int // id -> position of last record with this id
}

// NewCharMap creates a character map from records in order of appearance.
func NewCharMap(chars []Char) CharMap {
	m := CharMap{}
	m.add(chars)
	return m
}

func (m *CharMap) add(chars []Char) {
	if len(chars) == 0 {
		return
	}
	if m.index == nil {
		m.index = make(map[uint32]int, len(chars))
	}
	for _, c := range chars {
		m.index[c.ID] = len(m.records)
		m.records = append(m.records, c)
	}
}

// Len returns the number of glyph records, including records with duplicate ids.
func (m CharMap) Len() int {
	return len(m.records)
}

// At returns the i-th glyph record in order of appearance.
func (m CharMap) At(i int) Char {
	return m.records[i]
}

// Lookup returns the glyph record for a character id.
func (m CharMap) Lookup(id uint32) (Char, bool) {
	i, ok := m.index[id]
	if !ok {
		return Char{}, false
	}
	return m.records[i], true
}

// LookupAll returns every record with a given character id, in order of appearance.
func (m CharMap) LookupAll(id uint32) []Char {
	var chars []Char
	for _, c := range m.records {
		if c.ID == id {
			chars = append(chars, c)
		}
	}
	return chars
}

// All iterates over all glyph records in order of appearance.
func (m CharMap) All() iter.Seq2[int, Char] {
	return func(yield func(int, Char) bool) {
		for i, c := range m.records {
			if !yield(i, c) {
				return
			}
		}
	}
}
