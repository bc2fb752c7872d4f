package html

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/cords"
	"github.com/npillmayer/lipi/core"
	"github.com/npillmayer/lipi/scheme/krutidev"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/net/html"
)

func parseDoc(t *testing.T, input string) *html.Node {
	doc, err := html.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("cannot parse test document: %v", err)
	}
	return doc
}

func TestConvertFontFace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.html")
	defer teardown()
	//
	input := `<html><head></head><body><font face="Kruti Dev 010">Hkkjr ljdkj</font></body></html>`
	var out bytes.Buffer
	stats, err := Convert(strings.NewReader(input), &out, Options{})
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "भारत सरकार")
	assert.NotContains(t, out.String(), "face=")
	assert.Equal(t, 1, stats.Elements)
	assert.Equal(t, 1, stats.TextNodes)
	assert.Equal(t, 11, stats.Runes)
}

func TestConvertKeepsEnglishIslands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.html")
	defer teardown()
	//
	input := `<html><head></head><body><font face="Kruti Dev 010">Hkkjr ` +
		`<font face="Arial">Section 12</font> ljdkj</font></body></html>`
	var out bytes.Buffer
	stats, err := Convert(strings.NewReader(input), &out, Options{})
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "भारत")
	assert.Contains(t, out.String(), "Section 12")
	assert.Contains(t, out.String(), "सरकार")
	assert.Equal(t, 1, stats.Elements)
}

func TestConvertStyleAttribute(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.html")
	defer teardown()
	//
	input := `<html><head></head><body><p style="font-family: 'Kruti Dev 010'; color: red">fdrkc</p></body></html>`
	var out bytes.Buffer
	stats, err := Convert(strings.NewReader(input), &out, Options{})
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "किताब")
	assert.Contains(t, out.String(), "color: red;")
	assert.NotContains(t, out.String(), "font-family")
	assert.Equal(t, 1, stats.Elements)
}

func TestConvertKeepMarkup(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.html")
	defer teardown()
	//
	input := `<html><head></head><body><font face="Kruti Dev 010">vkt</font></body></html>`
	var out bytes.Buffer
	_, err := Convert(strings.NewReader(input), &out, Options{KeepMarkup: true})
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "आज")
	assert.Contains(t, out.String(), `face="Kruti Dev 010"`)
}

func TestConvertForcedScheme(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.html")
	defer teardown()
	//
	input := `<html><head></head><body><p class="legacy">vkt</p><p>vkt</p></body></html>`
	var out bytes.Buffer
	stats, err := Convert(strings.NewReader(input), &out, Options{
		Selector: "p.legacy",
		Scheme:   krutidev.Table(),
	})
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "आज")
	assert.Contains(t, out.String(), "vkt")
	assert.Equal(t, 1, stats.Elements)
}

func TestConvertUnknownFontUntouched(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.html")
	defer teardown()
	//
	input := `<html><head></head><body><font face="Mangal">vkt</font></body></html>`
	var out bytes.Buffer
	stats, err := Convert(strings.NewReader(input), &out, Options{})
	assert.NoError(t, err)
	assert.Contains(t, out.String(), "vkt")
	assert.Contains(t, out.String(), `face="Mangal"`)
	assert.Equal(t, 0, stats.Elements)
}

func TestConvertDebugMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.html")
	defer teardown()
	//
	input := `<html><head></head><body><font face="Kruti Dev 010">d×d</font></body></html>`
	var out bytes.Buffer
	stats, err := Convert(strings.NewReader(input), &out, Options{Debug: true})
	assert.NoError(t, err)
	if assert.Len(t, stats.Missing, 1) {
		assert.Equal(t, '×', stats.Missing[0].Glyph)
	}
}

func TestConvertBadSelector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.html")
	defer teardown()
	//
	doc := parseDoc(t, `<html><head></head><body></body></html>`)
	_, err := ConvertTree(doc, Options{Selector: "p..["})
	assert.Error(t, err)
	assert.Equal(t, core.ECONFIG, core.Code(err))
}

func TestInnerTextAfterConvert(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.html")
	defer teardown()
	//
	input := `<html><head></head><body><font face="Kruti Dev 010">Hkkjr</font><p>annex</p></body></html>`
	doc := parseDoc(t, input)
	_, err := ConvertTree(doc, Options{})
	assert.NoError(t, err)
	text, err := InnerText(doc)
	assert.NoError(t, err)
	assert.False(t, text.IsVoid())
	assert.Equal(t, uint64(len("भारतannex")), text.Len())
	var sb strings.Builder
	text.EachLeaf(func(l cords.Leaf, pos uint64) error {
		sb.WriteString(l.String())
		return nil
	})
	assert.Equal(t, "भारतannex", sb.String())
}

func TestInnerTextLeafElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.html")
	defer teardown()
	//
	input := `<html><head></head><body><font face="Kruti Dev 010">Hkkjr</font><p>annex</p></body></html>`
	doc := parseDoc(t, input)
	_, err := ConvertTree(doc, Options{})
	assert.NoError(t, err)
	text, err := InnerText(doc)
	assert.NoError(t, err)
	found := false
	text.EachLeaf(func(l cords.Leaf, pos uint64) error {
		leaf := l.(*Leaf)
		if leaf.String() == "भारत" {
			found = true
			if assert.NotNil(t, leaf.Element()) {
				assert.Equal(t, "font", leaf.Element().Data)
			}
		}
		return nil
	})
	assert.True(t, found, "no leaf traces back to the font element")
}
