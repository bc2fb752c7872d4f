package convert

import (
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/lipi/scheme"
	"github.com/npillmayer/lipi/scheme/krutidev"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/unicode/norm"
)

func kd() Params {
	return Params{Scheme: krutidev.Table()}
}

func TestConvertWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.convert")
	defer teardown()
	//
	samples := []struct {
		in, out string
	}{
		{"Hkkjr", "भारत"},
		{"Hkkjr ljdkj", "भारत सरकार"},
		{"vkt", "आज"},
		{"i=k", "पत्र"},
		{"fnYys", "दिल्ली"},
	}
	for _, s := range samples {
		out, missing := String(s.in, kd())
		assert.Equal(t, s.out, out, "input %q", s.in)
		assert.Empty(t, missing)
	}
}

func TestConvertUsesRegistryDefault(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.convert")
	defer teardown()
	//
	out, _ := String("Hkkjr", Params{})
	assert.Equal(t, "भारत", out)
}

func TestLongestMatchWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.convert")
	defer teardown()
	//
	tbl := scheme.NewTable("toy")
	tbl.Add("A", "x")
	tbl.Add("AB", "y")
	assert.NoError(t, tbl.Compile())
	out, _ := String("AB", Params{Scheme: tbl})
	assert.Equal(t, "y", out)
	out, _ = String("AAB", Params{Scheme: tbl})
	assert.Equal(t, "xy", out)
}

func TestMatraReorder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.convert")
	defer teardown()
	//
	out, _ := String("fdrkc", kd())
	assert.Equal(t, "किताब", out)
	// the matra has to land behind the consonant
	out, _ = String("fd", kd())
	assert.Equal(t, "कि", out)
}

func TestMatraHeldThroughHalfForms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.convert")
	defer teardown()
	//
	// स् is a dead form, the matra belongs behind the थ closing the cluster
	out, _ := String("fLFkr", kd())
	assert.Equal(t, "स्थित", out)
	out, _ = String("fLFk", kd())
	assert.Equal(t, "स्थि", out)
}

func TestMatraFlushedAtEndOfInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.convert")
	defer teardown()
	//
	out, _ := String("f", kd())
	assert.Equal(t, "ि", out)
	// अ is no consonant, the matra stays pending and is appended
	out, _ = String("vf", kd())
	assert.Equal(t, "अि", out)
}

func TestTwoMatrasQueueInEncounteredOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.convert")
	defer teardown()
	//
	out, _ := String("ffd", kd())
	assert.Equal(t, "किि", out)
}

func TestPassThroughUnmapped(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.convert")
	defer teardown()
	//
	out, missing := String("d@d", kd())
	assert.Equal(t, "क@क", out)
	assert.Empty(t, missing) // debug off
}

func TestUnicodeInputUntouched(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.convert")
	defer teardown()
	//
	in := "भारत सरकार। २०२३"
	out, _ := String(in, kd())
	assert.Equal(t, in, out)
	// converting twice equals converting once
	once, _ := String("Hkkjr", kd())
	twice, _ := String(once, kd())
	assert.Equal(t, once, twice)
}

func TestDeterminism(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.convert")
	defer teardown()
	//
	in := "fdrkc f=k Hkkjr 123"
	out1, miss1 := String(in, Params{Scheme: krutidev.Table(), Debug: true})
	out2, miss2 := String(in, Params{Scheme: krutidev.Table(), Debug: true})
	assert.Equal(t, out1, out2)
	assert.Equal(t, miss1, miss2)
}

func TestDebugCollectsMissing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.convert")
	defer teardown()
	//
	out, missing := String("d×d", Params{Scheme: krutidev.Table(), Debug: true})
	assert.Equal(t, "क×क", out)
	if assert.Len(t, missing, 1) {
		assert.Equal(t, '×', missing[0].Glyph)
		assert.Equal(t, 1, missing[0].Pos)
		assert.Equal(t, "'×' (U+00D7)", missing[0].String())
	}
}

func TestConjunctsAndNukta(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.convert")
	defer teardown()
	//
	samples := []struct {
		in, out string
	}{
		{"{k", "क्ष"},
		{"[+k", "ख़"},
		{"d+", "क़"},
		{"Ø", "क्र"},
		{"f=k", "त्रि"},
		{"=kk", "त्रा"},
	}
	for _, s := range samples {
		out, _ := String(s.in, kd())
		assert.Equal(t, s.out, out, "input %q", s.in)
	}
}

func TestNormalizeOption(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.convert")
	defer teardown()
	//
	in := "M+ku fdrkc"
	plain, _ := String(in, kd())
	normalized, _ := String(in, Params{Scheme: krutidev.Table(), Normalize: true})
	assert.Equal(t, norm.NFC.String(plain), normalized)
}

func TestTextForm(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.convert")
	defer teardown()
	//
	res := Text("Hkkjr", kd())
	assert.Equal(t, "भारत", res.Text)
	assert.Empty(t, res.Missing)
}

func TestReaderMatchesString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.convert")
	defer teardown()
	//
	in := "Hkkjr\nfdrkc\n"
	r := NewReader(strings.NewReader(in), kd())
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "भारत\nकिताब\n", string(out))
}

func TestReaderFlushesPerLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.convert")
	defer teardown()
	//
	// pending matra must be flushed before the line break
	r := NewReader(strings.NewReader("vf\nd"), kd())
	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, "अि\nक", string(out))
}

func TestReaderMissingPositions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.convert")
	defer teardown()
	//
	r := NewReader(strings.NewReader("d×\nd×"), Params{Scheme: krutidev.Table(), Debug: true})
	_, err := io.ReadAll(r)
	if err != nil {
		t.Fatal(err)
	}
	missing := r.Missing()
	if assert.Len(t, missing, 2) {
		assert.Equal(t, 1, missing[0].Pos)
		assert.Equal(t, 4, missing[1].Pos)
	}
}
