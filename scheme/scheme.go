package scheme

import (
	"strings"
	"sync"

	"github.com/derekparker/trie"
	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/lipi/core"
	"golang.org/x/text/language"
)

// GlyphClass categorizes how the conversion engine has to treat the
// target sequence of an entry.
type GlyphClass int8

// Glyph classes of mapping entries. Almost all entries are Plain.
// PreMatra marks dependent vowel signs which legacy fonts place
// visually before a consonant, while Unicode stores them after it
// (the short-i matra being the classic case).
const (
	Plain GlyphClass = iota
	PreMatra
)

func (c GlyphClass) String() string {
	switch c {
	case Plain:
		return "plain"
	case PreMatra:
		return "prematra"
	}
	return "glyphclass-?"
}

func classForName(name string) (GlyphClass, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "plain":
		return Plain, true
	case "prematra":
		return PreMatra, true
	}
	return Plain, false
}

// Entry is a single mapping of a table: a source glyph sequence of the
// legacy encoding, the Unicode target sequence it stands for, and a
// glyph class.
type Entry struct {
	Src   string
	Out   string
	Class GlyphClass
}

// IsNull returns true for the zero entry, which lookup operations
// return on a miss.
func (e Entry) IsNull() bool {
	return e.Src == ""
}

// Table is an ordered collection of mapping entries for one legacy
// encoding scheme. Entries keep the order in which they were added,
// which is the order contributors curated them in; lookup precedence,
// however, is by source-sequence length, not by position (see Match).
//
// A table starts out editable. Compile validates and freezes it; frozen
// tables are immutable and safe for concurrent use.
type Table struct {
	name    string
	fonts   []string
	lang    language.Tag
	script  language.Script
	entries *linkedhashmap.Map // source sequence -> Entry
	dict    *trie.Trie         // built by Compile
	maxlen  int                // longest source sequence, in runes
	built   sync.Once
	err     error
}

// NewTable creates an empty, editable mapping table.
func NewTable(name string) *Table {
	deva, _ := language.ParseScript("Deva")
	return &Table{
		name:    name,
		lang:    language.Hindi,
		script:  deva,
		entries: linkedhashmap.New(),
	}
}

// Name returns the scheme name of the table.
func (t *Table) Name() string {
	return t.name
}

// Fonts returns the names of the legacy fonts this table covers.
func (t *Table) Fonts() []string {
	return t.fonts
}

// Language returns the language the covered fonts are used for.
func (t *Table) Language() language.Tag {
	return t.lang
}

// Script returns the target script of the table.
func (t *Table) Script() language.Script {
	return t.script
}

// SetFonts declares the legacy font names the table covers.
func (t *Table) SetFonts(names ...string) {
	if t.isFrozen() {
		tracer().Errorf("table %s is frozen, cannot set fonts", t.name)
		return
	}
	t.fonts = names
}

// SetLanguage sets language and target script of the table.
func (t *Table) SetLanguage(lang language.Tag, script language.Script) {
	if t.isFrozen() {
		tracer().Errorf("table %s is frozen, cannot set language", t.name)
		return
	}
	t.lang, t.script = lang, script
}

// Add appends a plain mapping entry. If src has been added before, the
// new target replaces the old one, keeping the original position.
// Validation is deferred until Compile.
func (t *Table) Add(src, out string) {
	t.AddEntry(Entry{Src: src, Out: out, Class: Plain})
}

// AddClass appends a mapping entry with an explicit glyph class.
func (t *Table) AddClass(src, out string, class GlyphClass) {
	t.AddEntry(Entry{Src: src, Out: out, Class: class})
}

// AddEntry appends a mapping entry.
func (t *Table) AddEntry(e Entry) {
	if t.isFrozen() {
		tracer().Errorf("table %s is frozen, dropping entry %q", t.name, e.Src)
		return
	}
	t.entries.Put(e.Src, e)
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return t.entries.Size()
}

// MaxSrcLen returns the length, in runes, of the longest source
// sequence of a compiled table.
func (t *Table) MaxSrcLen() int {
	return t.maxlen
}

// Lookup finds the entry for an exact source sequence.
func (t *Table) Lookup(src string) (Entry, bool) {
	if v, ok := t.entries.Get(src); ok {
		return v.(Entry), true
	}
	return Entry{}, false
}

// Each calls f for every entry, in insertion order.
func (t *Table) Each(f func(Entry)) {
	t.entries.Each(func(key, value interface{}) {
		f(value.(Entry))
	})
}

func (t *Table) isFrozen() bool {
	return t.dict != nil || t.err != nil
}

// Compile validates the table and freezes it for lookup. Compiling is
// idempotent; repeated calls return the first result. Validation fails
// on empty source sequences and on non-plain entries with an empty
// target. Errors carry code core.ECONFIG.
func (t *Table) Compile() error {
	t.built.Do(func() {
		t.err = t.build()
		if t.err == nil {
			tracer().Infof("compiled scheme %s with %d entries", t.name, t.Len())
		}
	})
	return t.err
}

func (t *Table) build() error {
	if t.entries.Size() == 0 {
		return core.Error(core.ECONFIG, "scheme %s: table has no entries", t.name)
	}
	dict := trie.New()
	maxlen := 0
	var err error
	t.entries.Each(func(key, value interface{}) {
		if err != nil {
			return
		}
		e := value.(Entry)
		if e.Src == "" {
			err = core.Error(core.ECONFIG, "scheme %s: entry with empty source sequence", t.name)
			return
		}
		if e.Out == "" && e.Class != Plain {
			err = core.Error(core.ECONFIG, "scheme %s: %s entry %q has empty target",
				t.name, e.Class, e.Src)
			return
		}
		dict.Add(e.Src, e)
		if n := len([]rune(e.Src)); n > maxlen {
			maxlen = n
		}
	})
	if err != nil {
		return err
	}
	t.dict, t.maxlen = dict, maxlen
	return nil
}
