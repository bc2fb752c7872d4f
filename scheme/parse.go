package scheme

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/npillmayer/lipi/core"
	"golang.org/x/text/language"
)

// Scheme files are the format contributors curate mapping tables in.
// The format is line based:
//
//	@scheme krutidev
//	@font Kruti Dev 010
//	@font Kruti Dev 011
//	@lang hi
//	# conjuncts first is a convention, not a requirement
//	{k	क्ष
//	f	ि	prematra
//	d	क
//
// A mapping line holds source sequence and target sequence separated by
// a tab, optionally followed by a glyph class ("plain" is implied).
// Lines starting with '#' and blank lines are ignored. Source sequences
// may contain any glyph except tab.

// ParseTable reads a scheme file and returns the compiled table.
// Malformed input fails fast with an error of code core.ECONFIG,
// carrying the offending line number; no partial table is returned.
func ParseTable(r io.Reader) (*Table, error) {
	t := NewTable("")
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "@") {
			if err := t.directive(line); err != nil {
				return nil, wrapLine(err, lineno)
			}
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) < 2 {
			return nil, wrapLine(core.Error(core.ECONFIG,
				"mapping line needs tab-separated source and target"), lineno)
		}
		src, out := fields[0], fields[1]
		class := Plain
		if len(fields) > 2 {
			var ok bool
			if class, ok = classForName(fields[2]); !ok {
				return nil, wrapLine(core.Error(core.ECONFIG,
					"unknown glyph class %q", fields[2]), lineno)
			}
		}
		if src == "" {
			return nil, wrapLine(core.Error(core.ECONFIG, "empty source sequence"), lineno)
		}
		t.AddClass(src, out, class)
	}
	if err := scanner.Err(); err != nil {
		return nil, core.WrapError(err, core.ECONFIG, "problem reading scheme file")
	}
	if t.name == "" {
		return nil, core.Error(core.ECONFIG, "scheme file carries no @scheme directive")
	}
	if err := t.Compile(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Table) directive(line string) error {
	key, arg := line, ""
	if i := strings.IndexAny(line, " \t"); i > 0 {
		key, arg = line[:i], strings.TrimSpace(line[i+1:])
	}
	switch key {
	case "@scheme":
		if arg == "" {
			return core.Error(core.ECONFIG, "@scheme directive needs a name")
		}
		t.name = arg
	case "@font":
		if arg == "" {
			return core.Error(core.ECONFIG, "@font directive needs a font name")
		}
		t.fonts = append(t.fonts, arg)
	case "@lang":
		tag, err := language.Parse(arg)
		if err != nil {
			return core.WrapError(err, core.ECONFIG, "cannot parse language %q", arg)
		}
		t.lang = tag
	default:
		return core.Error(core.ECONFIG, "unknown directive %s", key)
	}
	return nil
}

func wrapLine(err error, lineno int) error {
	return core.WrapError(err, core.ECONFIG, "scheme file, line %d: %s",
		lineno, core.UserMessage(err))
}

// LoadTable reads and compiles the scheme file at a given path.
func LoadTable(fpath string) (*Table, error) {
	f, err := os.Open(fpath)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot open scheme file %s", fpath)
	}
	defer f.Close()
	t, err := ParseTable(f)
	if err != nil {
		return nil, core.WrapError(err, core.Code(err), "in scheme file %s: %s",
			path.Base(fpath), core.UserMessage(err))
	}
	return t, nil
}

// Dump writes the table in scheme file format, entries in insertion
// order. Dump and ParseTable round-trip.
func (t *Table) Dump(w io.Writer) error {
	var err error
	put := func(format string, v ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, v...)
		}
	}
	put("@scheme %s\n", t.name)
	for _, f := range t.fonts {
		put("@font %s\n", f)
	}
	put("@lang %s\n", t.lang)
	t.Each(func(e Entry) {
		if e.Class == Plain {
			put("%s\t%s\n", e.Src, e.Out)
		} else {
			put("%s\t%s\t%s\n", e.Src, e.Out, e.Class)
		}
	})
	return err
}
