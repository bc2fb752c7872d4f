package convert

import (
	"sort"
	"strings"
	"unicode"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"golang.org/x/text/unicode/rangetable"
)

// Missing-glyph reporting. The conversion core records every unmapped
// glyph; for corpus-expansion work most of those are noise (spaces,
// ASCII punctuation, text that already is Unicode). The functions here
// boil the raw list down to the glyphs worth a contributor's attention.

var devanagari = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0900, Hi: 0x097F, Stride: 1}},
}

var gurmukhi = &unicode.RangeTable{
	R16: []unicode.Range16{{Lo: 0x0A00, Hi: 0x0A7F, Stride: 1}},
}

var printableASCII = &unicode.RangeTable{
	R16:         []unicode.Range16{{Lo: 0x0020, Hi: 0x007E, Stride: 1}},
	LatinOffset: 1,
}

// expected is the repertoire a converted document legitimately
// contains. Glyphs outside of it point at gaps in the mapping table.
var expected = rangetable.Merge(devanagari, gurmukhi, printableASCII,
	unicode.White_Space)

// Suspicious filters a missing-glyph list down to the glyphs outside
// the expected repertoire of converted documents. These are the
// candidates for extending a mapping table.
func Suspicious(missing []Missing) []Missing {
	var sus []Missing
	for _, m := range missing {
		if !unicode.In(m.Glyph, expected) {
			sus = append(sus, m)
		}
	}
	return sus
}

// Unique reduces a missing-glyph list to one record per glyph (the
// first occurrence), ordered by code point.
func Unique(missing []Missing) []Missing {
	seen := make(map[rune]Missing)
	for _, m := range missing {
		if _, ok := seen[m.Glyph]; !ok {
			seen[m.Glyph] = m
		}
	}
	uniq := make([]Missing, 0, len(seen))
	for _, m := range seen {
		uniq = append(uniq, m)
	}
	sort.Slice(uniq, func(i, j int) bool { return uniq[i].Glyph < uniq[j].Glyph })
	return uniq
}

// Clusters segments converted text into grapheme clusters, i.e. the
// user-perceived characters. For Devanagari these are aksharas:
// consonant (cluster) plus dependent signs. Reordering correctness
// shows up here, as a misplaced matra forms a cluster of its own.
func Clusters(text string) []string {
	onGraphemes := grapheme.NewBreaker(1)
	splitter := segment.NewSegmenter(onGraphemes)
	grapheme.SetupGraphemeClasses()
	splitter.Init(strings.NewReader(text))
	var clusters []string
	for splitter.Next() {
		clusters = append(clusters, string(splitter.Bytes()))
	}
	return clusters
}
