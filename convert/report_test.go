package convert

import (
	"testing"

	"github.com/npillmayer/lipi/scheme/krutidev"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestSuspiciousFiltersExpectedRepertoire(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.convert")
	defer teardown()
	//
	// whitespace, printable ASCII, Devanagari and Gurmukhi are expected
	// leftovers; only the × points at a table gap
	missing := []Missing{
		{Glyph: ' ', Pos: 0},
		{Glyph: '@', Pos: 1},
		{Glyph: 'य', Pos: 2},
		{Glyph: '×', Pos: 3},
		{Glyph: 'ਕ', Pos: 4},
	}
	sus := Suspicious(missing)
	if assert.Len(t, sus, 1) {
		assert.Equal(t, '×', sus[0].Glyph)
	}
}

func TestUniqueSortsByCodePoint(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.convert")
	defer teardown()
	//
	missing := []Missing{
		{Glyph: 'ÿ', Pos: 5},
		{Glyph: '×', Pos: 3},
		{Glyph: 'ÿ', Pos: 9},
		{Glyph: '×', Pos: 7},
	}
	uniq := Unique(missing)
	if assert.Len(t, uniq, 2) {
		assert.Equal(t, '×', uniq[0].Glyph)
		assert.Equal(t, 3, uniq[0].Pos) // first occurrence wins
		assert.Equal(t, 'ÿ', uniq[1].Glyph)
		assert.Equal(t, 5, uniq[1].Pos)
	}
}

func TestSuspiciousAfterConversion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.convert")
	defer teardown()
	//
	_, missing := String("Hkkjr × ljdkj", Params{Scheme: krutidev.Table(), Debug: true})
	assert.NotEmpty(t, missing) // spaces got collected too
	sus := Suspicious(missing)
	if assert.Len(t, sus, 1) {
		assert.Equal(t, '×', sus[0].Glyph)
	}
}

func TestClusters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.convert")
	defer teardown()
	//
	clusters := Clusters("किताब")
	assert.Equal(t, []string{"कि", "ता", "ब"}, clusters)
	// a correctly reordered conversion yields cluster-initial consonants
	out, _ := String("fdrkc", kd())
	assert.Equal(t, 3, len(Clusters(out)))
}
