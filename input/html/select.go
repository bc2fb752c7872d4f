package html

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/lipi/core"
	"github.com/npillmayer/lipi/scheme"
	"golang.org/x/net/html"
)

// DefaultSelector matches the font markup legacy documents usually
// wrap Devanagari passages in.
const DefaultSelector = "font[face]"

// findTargets returns the elements to convert, each mapped to the
// table governing its subtree. An element mapped to nil is a barrier:
// it was selected, but names a font outside the registry, and its
// subtree must stay untouched.
func findTargets(doc *html.Node, opts Options) (map[*html.Node]*scheme.Table, error) {
	selector := opts.Selector
	if selector == "" {
		selector = DefaultSelector
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, core.WrapError(err, core.ECONFIG, "cannot compile CSS selector %q", selector)
	}
	targets := make(map[*html.Node]*scheme.Table)
	for _, n := range sel.MatchAll(doc) {
		t, ok := schemeFor(n, opts)
		if !ok {
			targets[n] = nil
			continue
		}
		if t != nil {
			targets[n] = t
		}
	}
	collectStyledSpans(doc, opts, targets)
	return targets, nil
}

// schemeFor resolves the mapping table for an element matched by the
// selector. ok is false when the element names a font the registry
// does not cover.
func schemeFor(n *html.Node, opts Options) (t *scheme.Table, ok bool) {
	if opts.Scheme != nil {
		return opts.Scheme, true
	}
	if face := attrValue(n, "face"); face != "" {
		t, err := scheme.GlobalRegistry().SchemeForFont(face)
		if err != nil {
			tracer().Infof("no scheme covers font %q, subtree left alone", face)
			return nil, false
		}
		return t, true
	}
	if t, declared := styleFont(n); t != nil {
		return t, true
	} else if declared {
		return nil, false
	}
	return scheme.GlobalRegistry().Default(), true
}

// collectStyledSpans walks the whole tree for inline style spans that
// switch fonts. Spans switching to a covered legacy font become
// conversion targets, spans switching to anything else become
// barriers.
func collectStyledSpans(n *html.Node, opts Options, targets map[*html.Node]*scheme.Table) {
	if n.Type == html.ElementNode {
		if _, ok := targets[n]; !ok {
			if t, declared := styleFont(n); t != nil {
				if opts.Scheme != nil {
					t = opts.Scheme
				}
				targets[n] = t
			} else if declared {
				targets[n] = nil
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectStyledSpans(c, opts, targets)
	}
}

// styleFont inspects an element's style attribute for font-family
// declarations. It returns the table registered for the first covered
// font named, plus a flag telling whether the attribute declared a
// concrete font family at all.
func styleFont(n *html.Node) (*scheme.Table, bool) {
	style := attrValue(n, "style")
	if style == "" || !strings.Contains(strings.ToLower(style), "font-family") {
		return nil, false
	}
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		tracer().Debugf("broken style attribute ignored: %v", err)
		return nil, false
	}
	declared := false
	for _, d := range decls {
		if !strings.EqualFold(d.Property, "font-family") {
			continue
		}
		for _, f := range strings.Split(d.Value, ",") {
			name := fontName(f)
			if isCSSKeyword(name) {
				continue
			}
			declared = true
			if t, err := scheme.GlobalRegistry().SchemeForFont(name); err == nil {
				return t, true
			}
		}
	}
	return nil, declared
}

// stripLegacyMarkup removes the font markup of a converted element. A
// face attribute goes away completely, a style attribute keeps its
// other declarations.
func stripLegacyMarkup(n *html.Node) {
	attrs := n.Attr[:0]
	for _, a := range n.Attr {
		if a.Key == "face" {
			continue
		}
		if a.Key == "style" {
			a.Val = stripFontFamily(a.Val)
			if strings.TrimSpace(a.Val) == "" {
				continue
			}
		}
		attrs = append(attrs, a)
	}
	n.Attr = attrs
}

// stripFontFamily drops font-family declarations naming a covered
// legacy font, keeping every other declaration intact.
func stripFontFamily(style string) string {
	decls, err := parser.ParseDeclarations(style)
	if err != nil {
		return style
	}
	var keep []string
	changed := false
	for _, d := range decls {
		if strings.EqualFold(d.Property, "font-family") && namesLegacyFont(d.Value) {
			changed = true
			continue
		}
		keep = append(keep, d.String())
	}
	if !changed {
		return style
	}
	return strings.Join(keep, " ")
}

func namesLegacyFont(value string) bool {
	for _, f := range strings.Split(value, ",") {
		if _, err := scheme.GlobalRegistry().SchemeForFont(fontName(f)); err == nil {
			return true
		}
	}
	return false
}

// fontName strips the whitespace and quoting a font-family entry may
// carry.
func fontName(f string) string {
	return strings.Trim(strings.TrimSpace(f), `"'`)
}

func isCSSKeyword(name string) bool {
	switch strings.ToLower(name) {
	case "inherit", "initial", "unset", "revert":
		return true
	}
	return false
}

func attrValue(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
