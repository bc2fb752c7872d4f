package html

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/lipi/convert"
	"github.com/npillmayer/lipi/core"
	"github.com/npillmayer/lipi/scheme"
	"golang.org/x/net/html"
)

// Options control how an HTML document is converted.
//
// The zero value selects <font face=…> elements, resolves face names
// through the global scheme registry, strips the legacy font markup
// from converted elements and does not record missing glyphs.
type Options struct {
	Selector   string        // CSS selector for elements to convert; "" selects DefaultSelector
	Scheme     *scheme.Table // fixed mapping table; nil resolves tables by font name
	Debug      bool          // collect unmapped glyphs in Stats.Missing
	KeepMarkup bool          // leave legacy font attributes in place
}

// Stats summarize one document conversion.
type Stats struct {
	Elements  int               // elements a mapping table was assigned to
	TextNodes int               // text nodes rewritten
	Runes     int               // source runes fed through conversion
	Missing   []convert.Missing // unmapped glyphs; positions are node-local
}

// Convert reads an HTML document from r, converts the text of all
// legacy-font scoped elements to Unicode and renders the document to
// w. Element selection and table resolution are controlled by opts,
// see ConvertTree.
func Convert(r io.Reader, w io.Writer, opts Options) (*Stats, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse HTML input")
	}
	stats, err := ConvertTree(doc, opts)
	if err != nil {
		return nil, err
	}
	if err := html.Render(w, doc); err != nil {
		return nil, core.WrapError(err, core.EINTERNAL, "cannot render converted document")
	}
	return stats, nil
}

// ConvertTree converts a parsed HTML document in place.
//
// Elements matching opts.Selector are assigned a mapping table: from
// opts.Scheme if set, otherwise by looking up the element's font in
// the global scheme registry, the face attribute first, then a
// font-family style declaration, then the registry default. Inline
// style spans naming a covered font are picked up even when they do
// not match the selector.
//
// Every text node below an assigned element is converted with that
// element's table. Elements declaring a font no registered scheme
// covers shield their subtree: archived documents switch to Latin
// fonts for English passages, and those must not be fed through a
// glyph mapping. Text in script and style elements is never touched.
func ConvertTree(doc *html.Node, opts Options) (*Stats, error) {
	if doc == nil {
		return nil, core.Error(core.EINVALID, "cannot convert null document")
	}
	targets, err := findTargets(doc, opts)
	if err != nil {
		return nil, err
	}
	stats := &Stats{}
	convertBelow(doc, nil, targets, opts, stats)
	tracer().Infof("converted %d text nodes below %d elements", stats.TextNodes, stats.Elements)
	return stats, nil
}

// convertBelow walks the tree below n, carrying the mapping table
// currently in scope. A nil table in targets acts as a barrier.
func convertBelow(n *html.Node, table *scheme.Table, targets map[*html.Node]*scheme.Table,
	opts Options, stats *Stats) {
	//
	switch n.Type {
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return
		}
		if t, ok := targets[n]; ok {
			table = t
			if t != nil {
				stats.Elements++
				if !opts.KeepMarkup {
					stripLegacyMarkup(n)
				}
			}
		}
	case html.TextNode:
		if table != nil && strings.TrimSpace(n.Data) != "" {
			r := convert.Text(n.Data, convert.Params{Scheme: table, Debug: opts.Debug})
			stats.TextNodes++
			stats.Runes += utf8.RuneCountInString(n.Data)
			stats.Missing = append(stats.Missing, r.Missing...)
			n.Data = r.Text
		}
		return
	case html.CommentNode:
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		convertBelow(c, table, targets, opts, stats)
	}
}
