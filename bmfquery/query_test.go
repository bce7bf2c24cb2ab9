package bmfquery

import (
	"image"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/npillmayer/bmfont/bmf"
	"github.com/npillmayer/bmfont/internal/fontload"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/image/math/fixed"
)

// --- Test Suite Preparation ------------------------------------------------

type QueryTestEnviron struct {
	suite.Suite
	font *bmf.Font
}

// listen for 'go test' command --> run test methods
func TestQueryFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmfont.query")
	defer teardown()
	suite.Run(t, new(QueryTestEnviron))
}

// run once, before test suite methods
func (env *QueryTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("bmfont.decode").SetTraceLevel(tracing.LevelError)
	env.font = loadLocalFont(env.T(), "sample.fnt")
}

// run once, after test suite methods
func (env *QueryTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

// --- Tests -----------------------------------------------------------------

func (env *QueryTestEnviron) TestNameInfo() {
	info := NameInfo(env.font)
	env.T().Logf("info = %v", info)
	env.Equal("Arial", info["face"])
	env.Equal("32", info["size"])
	env.Equal("1", info["unicode"])
	env.Equal("0", info["bold"])
	env.Equal("0,0,0,0", info["padding"])
	env.Equal("1,1", info["spacing"])
}

func (env *QueryTestEnviron) TestMetrics() {
	m := Metrics(env.font)
	env.Equal(fixed.I(32), m.Height)
	env.Equal(fixed.I(26), m.Ascent)
	env.Equal(fixed.I(6), m.Descent)
	env.Equal(fixed.Int26_6(0), m.XHeight, "sample font has no 'x'")
	env.Equal(image.Point{X: 0, Y: 1}, m.CaretSlope)
}

func (env *QueryTestEnviron) TestGlyphBounds() {
	bounds, adv, ok := GlyphBounds(env.font, 'A')
	env.Require().True(ok, "expected glyph for 'A'")
	env.Equal(fixed.I(18), adv)
	env.Equal(fixed.P(0, -20), bounds.Min)
	env.Equal(fixed.P(18, 0), bounds.Max)
	_, _, ok = GlyphBounds(env.font, 'Z')
	env.False(ok, "sample font has no 'Z'")
	adv, ok = GlyphAdvance(env.font, ' ')
	env.True(ok)
	env.Equal(fixed.I(8), adv)
}

func (env *QueryTestEnviron) TestSourceRect() {
	rect, page, ok := SourceRect(env.font, 'V')
	env.Require().True(ok)
	env.Equal(image.Rect(20, 0, 37, 20), rect)
	env.Equal(0, page)
	_, page, _ = SourceRect(env.font, ' ')
	env.Equal(1, page)
}

func (env *QueryTestEnviron) TestTexCoords() {
	uv, ok := TexCoords(env.font, 'V')
	env.Require().True(ok)
	expected := r2.RectFromPoints(r2.Point{X: 20.0 / 256, Y: 0}, r2.Point{X: 37.0 / 256, Y: 20.0 / 256})
	env.True(uv.ApproxEqual(expected), "expected %v, have %v", expected, uv)
	_, ok = TexCoords(&bmf.Font{Chars: bmf.NewCharMap([]bmf.Char{{ID: 'V'}})}, 'V')
	env.False(ok, "zero texture size should not yield texture coordinates")
}

func (env *QueryTestEnviron) TestKerning() {
	env.Equal(fixed.I(-2), Kern(env.font, 'A', 'V'))
	env.Equal(fixed.I(-1), Kern(env.font, 'V', 'A'))
	env.Equal(fixed.Int26_6(0), Kern(env.font, 'A', 'A'))
	kt := NewKerningTable(env.font)
	env.Equal(2, kt.Len())
	env.Equal(fixed.I(-2), kt.Kern('A', 'V'))
	env.Equal(fixed.Int26_6(0), kt.Kern('V', 'V'))
}

// ---------------------------------------------------------------------------

func TestDuplicateKerningPairs(t *testing.T) {
	f := &bmf.Font{KerningPairs: []bmf.KerningPair{
		{First: 'T', Second: 'o', Amount: -1},
		{First: 'T', Second: 'o', Amount: -3},
	}}
	if k := Kern(f, 'T', 'o'); k != fixed.I(-3) {
		t.Errorf("expected last-seen kerning amount -3, have %v", k)
	}
	kt := NewKerningTable(f)
	if kt.Len() != 1 || kt.Kern('T', 'o') != fixed.I(-3) {
		t.Errorf("expected 1 pair with amount -3, have %d pairs and %v", kt.Len(), kt.Kern('T', 'o'))
	}
}

func TestFontNameCharset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmfont.query")
	defer teardown()
	//
	f := &bmf.Font{Info: bmf.Info{CharSet: CharsetRussian, FontName: "\xcf\xf0\xe8"}}
	if name := FontName(f); name != "При" {
		t.Errorf("expected font name decoded from Windows-1251, have %q", name)
	}
	f.Info.BitField = bmf.InfoUnicode
	f.Info.FontName = "Übung"
	if name := FontName(f); name != "Übung" {
		t.Errorf("expected unicode font name unchanged, have %q", name)
	}
	if CharsetName(CharsetShiftJIS) != "SHIFTJIS" || CharsetName(42) != "charset(42)" {
		t.Errorf("unexpected charset names")
	}
	if CharsetEncoding(CharsetSymbol) != nil {
		t.Errorf("expected no encoding for SYMBOL charset")
	}
}

func loadLocalFont(t *testing.T, name string) *bmf.Font {
	ff, err := fontload.LoadFontFile("../testdata/fonts/" + name)
	if err != nil {
		t.Fatalf("cannot load font: %s", name)
	}
	f, err := bmf.Parse(ff.Binary)
	if err != nil {
		t.Fatalf("cannot parse font: %s", name)
	}
	t.Logf("loaded font = %s", f.Info.FontName)
	return f
}
