package bmfont

import (
	"errors"
	"testing"

	"github.com/npillmayer/bmfont/bmf"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmfont")
	defer teardown()
	//
	f, err := LoadFont("testdata/fonts/sample.fnt")
	require.NoError(t, err)
	assert.Equal(t, "Arial", f.Info.FontName)
	assert.True(t, f.Info.Unicode())
	assert.True(t, f.Info.Smooth())
	assert.Equal(t, uint16(32), f.Common.LineHeight)
	assert.Equal(t, uint16(26), f.Common.Base)
	assert.Equal(t, []string{"sample_0.png", "sample_1.png"}, f.Pages)
	assert.Equal(t, 3, f.Chars.Len())
	space, ok := f.Chars.Lookup(' ')
	require.True(t, ok)
	assert.Equal(t, int16(8), space.XAdvance)
	assert.Equal(t, uint8(1), space.Page)
	assert.Equal(t, []bmf.KerningPair{
		{First: 'A', Second: 'V', Amount: -2},
		{First: 'V', Second: 'A', Amount: -1},
	}, f.KerningPairs)
}

func TestFromBinaryRejectsGarbage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmfont")
	defer teardown()
	//
	_, err := FromBinary([]byte("info face=\"Arial\" size=32"))
	assert.True(t, errors.Is(err, bmf.ErrInvalidMagic), "expected InvalidMagic, have %v", err)
	_, err = LoadFont("testdata/fonts/does-not-exist.fnt")
	assert.Error(t, err)
}
