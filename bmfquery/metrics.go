package bmfquery

import (
	"image"

	"github.com/golang/geo/r2"
	"github.com/npillmayer/bmfont/bmf"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// --- Font Information -------------------------------------------------

// Metrics returns the metrics of a font, in the form golang.org/x/image/font
// uses for faces. Ascent is the distance from the top of a line to the
// baseline, descent the remainder of the line height.
//
// XHeight and CapHeight are taken from the glyphs for 'x' and 'H', if present.
func Metrics(f *bmf.Font) font.Metrics {
	m := font.Metrics{CaretSlope: image.Point{X: 0, Y: 1}}
	if f == nil {
		return m
	}
	c := f.Common
	m.Height = fixed.I(int(c.LineHeight))
	m.Ascent = fixed.I(int(c.Base))
	m.Descent = fixed.I(int(c.LineHeight) - int(c.Base))
	if x, ok := f.Chars.Lookup('x'); ok {
		m.XHeight = fixed.I(int(x.Height))
	}
	if h, ok := f.Chars.Lookup('H'); ok {
		m.CapHeight = fixed.I(int(h.Height))
	}
	return m
}

// --- Glyph Routines --------------------------------------------------------

// Glyph returns the glyph record for a rune.
func Glyph(f *bmf.Font, r rune) (bmf.Char, bool) {
	if f == nil || r < 0 {
		return bmf.Char{}, false
	}
	return f.Chars.Lookup(uint32(r))
}

// GlyphAdvance returns the advance width of the glyph for r.
// ok is false if the font has no glyph for r.
func GlyphAdvance(f *bmf.Font, r rune) (advance fixed.Int26_6, ok bool) {
	c, ok := Glyph(f, r)
	if !ok {
		return 0, false
	}
	return fixed.I(int(c.XAdvance)), true
}

// GlyphBounds returns the bounding box of the glyph for r, relative to the
// dot on the baseline, and its advance width. This mirrors font.Face.GlyphBounds:
// the box's Min.Y is negative for glyph parts above the baseline.
func GlyphBounds(f *bmf.Font, r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	c, ok := Glyph(f, r)
	if !ok {
		return fixed.Rectangle26_6{}, 0, false
	}
	top := int(c.YOffset) - int(f.Common.Base)
	bounds = fixed.Rectangle26_6{
		Min: fixed.P(int(c.XOffset), top),
		Max: fixed.P(int(c.XOffset)+int(c.Width), top+int(c.Height)),
	}
	return bounds, fixed.I(int(c.XAdvance)), true
}

// SourceRect returns the rectangle of the glyph image for r within its
// texture page, together with the page index.
func SourceRect(f *bmf.Font, r rune) (rect image.Rectangle, page int, ok bool) {
	c, ok := Glyph(f, r)
	if !ok {
		return image.Rectangle{}, 0, false
	}
	rect = image.Rect(int(c.X), int(c.Y), int(c.X)+int(c.Width), int(c.Y)+int(c.Height))
	return rect, int(c.Page), true
}

// TexCoords returns the texture coordinates of the glyph image for r,
// normalized to [0…1] by the page dimensions of the common block.
// ok is false if the font has no glyph for r or declares an empty texture size.
func TexCoords(f *bmf.Font, r rune) (r2.Rect, bool) {
	rect, _, ok := SourceRect(f, r)
	if !ok {
		return r2.EmptyRect(), false
	}
	w, h := float64(f.Common.ScaleW), float64(f.Common.ScaleH)
	if w == 0 || h == 0 {
		tracer().Infof("font declares texture size %vx%v", w, h)
		return r2.EmptyRect(), false
	}
	return r2.RectFromPoints(
		r2.Point{X: float64(rect.Min.X) / w, Y: float64(rect.Min.Y) / h},
		r2.Point{X: float64(rect.Max.X) / w, Y: float64(rect.Max.Y) / h},
	), true
}
