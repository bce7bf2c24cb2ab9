package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/bmfont"
	"github.com/npillmayer/bmfont/bmf"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFont = "../testdata/fonts/sample.fnt"

func TestCheckFiles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmfont.tools")
	defer teardown()
	//
	dir := t.TempDir()
	broken := filepath.Join(dir, "broken.fnt")
	require.NoError(t, os.WriteFile(broken, []byte("BMF\x03\x04\x29\x00\x00\x00"), 0o600))
	paths := []string{sampleFont, broken, filepath.Join(dir, "missing.fnt"), sampleFont}
	results := checkFiles(paths, 2)
	require.Len(t, results, len(paths))
	for i, r := range results {
		assert.Equal(t, paths[i], r.Path)
	}
	assert.NoError(t, results[0].Err)
	assert.Equal(t, 3, results[0].Chars)
	assert.True(t, errors.Is(results[1].Err, bmf.ErrTruncatedBlock), "have %v", results[1].Err)
	assert.Error(t, results[2].Err)
	assert.NoError(t, results[3].Err)
}

func TestSplitPaths(t *testing.T) {
	assert.Equal(t, []string{"a.fnt", "b.fnt"}, splitPaths("a.fnt, b.fnt,"))
	assert.Empty(t, splitPaths(""))
}

func TestPrintInfo(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmfont.tools")
	defer teardown()
	//
	f, err := bmfont.LoadFont(sampleFont)
	require.NoError(t, err)
	var buf bytes.Buffer
	printInfo(&buf, sampleFont, f)
	out := buf.String()
	assert.True(t, strings.Contains(out, "Face: Arial\n"), out)
	assert.True(t, strings.Contains(out, "Style: unicode,smooth\n"), out)
	assert.True(t, strings.Contains(out, "Pages (2): sample_0.png,sample_1.png\n"), out)
	assert.True(t, strings.Contains(out, "Kerning pairs: 2\n"), out)
}

func TestWriteDump(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "bmfont.tools")
	defer teardown()
	//
	f, err := bmfont.LoadFont(sampleFont)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, writeDump(&buf, f, true))
	var d struct {
		Version uint8 `json:"version"`
		Info    struct {
			FontName string
		} `json:"info"`
		Pages        []string          `json:"pages"`
		Chars        []json.RawMessage `json:"chars"`
		KerningPairs []json.RawMessage `json:"kerningPairs"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &d))
	assert.Equal(t, uint8(3), d.Version)
	assert.Equal(t, "Arial", d.Info.FontName)
	assert.Len(t, d.Pages, 2)
	assert.Len(t, d.Chars, 3)
	assert.Len(t, d.KerningPairs, 2)
}
