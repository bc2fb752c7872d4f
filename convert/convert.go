package convert

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/lipi/scheme"
	"golang.org/x/text/unicode/norm"
)

// Params configure a conversion.
//
// The zero value converts with the default scheme of the global
// registry, does not collect missing glyphs, and leaves the output
// un-normalized.
type Params struct {
	Scheme    *scheme.Table // mapping table; nil selects the registry default
	Debug     bool          // collect unmapped glyphs
	Normalize bool          // NFC-normalize the output
}

// Missing records an input glyph no table entry covered. Conversion
// treats such glyphs as expected input, not as errors: they pass
// through to the output verbatim and are collected only when
// Params.Debug is set.
type Missing struct {
	Glyph rune
	Pos   int // rune position in the input
}

func (m Missing) String() string {
	return fmt.Sprintf("'%c' (U+%04X)", m.Glyph, m.Glyph)
}

// Result is the outcome of a conversion.
type Result struct {
	Text    string
	Missing []Missing
}

// String converts legacy-font encoded text to Unicode. It returns the
// converted text together with the unmapped glyphs encountered, the
// latter only if p.Debug is set.
func String(input string, p Params) (string, []Missing) {
	t := p.Scheme
	if t == nil {
		t = scheme.GlobalRegistry().Default()
		if t == nil {
			tracer().Errorf("no mapping table registered, input passed through")
			return input, nil
		}
	}
	cnv := converter{table: t, debug: p.Debug}
	cnv.out.Grow(len(input) * 2)
	rs := []rune(input)
	pos := 0
	for pos < len(rs) {
		e, n := t.Match(rs[pos:])
		if n == 0 {
			cnv.passThrough(rs[pos], pos)
			pos++
			continue
		}
		cnv.mapped(e)
		pos += n
	}
	cnv.flush()
	text := cnv.out.String()
	if p.Normalize {
		text = norm.NFC.String(text)
	}
	return text, cnv.missing
}

// Text is String in struct form.
func Text(input string, p Params) Result {
	text, missing := String(input, p)
	return Result{Text: text, Missing: missing}
}

// converter holds the transient state of one conversion run: the
// output being built and the pre-matras currently pending. It lives on
// the stack of String and is gone when String returns.
type converter struct {
	table   *scheme.Table
	out     strings.Builder
	pending []string // held pre-matra targets, in encountered order
	missing []Missing
	debug   bool
}

func (cnv *converter) mapped(e scheme.Entry) {
	if e.Class == scheme.PreMatra {
		cnv.pending = append(cnv.pending, e.Out)
		return
	}
	cnv.emit(e.Out)
}

func (cnv *converter) passThrough(r rune, pos int) {
	if cnv.debug {
		cnv.missing = append(cnv.missing, Missing{Glyph: r, Pos: pos})
	}
	cnv.emit(string(r))
}

// emit writes a target sequence. A unit ending in a full consonant
// closes the currently open cluster, which is the point where held
// pre-matras belong; units ending in a halant leave the cluster open.
func (cnv *converter) emit(s string) {
	cnv.out.WriteString(s)
	if len(cnv.pending) == 0 {
		return
	}
	if r, size := utf8.DecodeLastRuneInString(s); size > 0 && isConsonant(r) {
		cnv.splice()
	}
}

func (cnv *converter) splice() {
	for _, m := range cnv.pending {
		cnv.out.WriteString(m)
	}
	cnv.pending = cnv.pending[:0]
}

// flush appends pre-matras still pending at end of input. They are
// never dropped; a matra with no consonant to attach to ends up as a
// dangling sign, which mirrors what the legacy document showed.
func (cnv *converter) flush() {
	if len(cnv.pending) > 0 {
		tracer().Debugf("input ends with %d pending vowel signs", len(cnv.pending))
		cnv.splice()
	}
}

// consonants covers the full (live) Devanagari consonants, including
// the nukta forms. Dead forms carry a trailing halant and are
// deliberately not ranges of their own; what matters is the final rune
// of an emitted unit.
var consonants = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0915, Hi: 0x0939, Stride: 1}, // क..ह
		{Lo: 0x0958, Hi: 0x095F, Stride: 1}, // क़..य़
	},
}

func isConsonant(r rune) bool {
	return unicode.Is(consonants, r)
}
