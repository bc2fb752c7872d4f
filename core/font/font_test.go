package font

import (
	"testing"

	"github.com/npillmayer/lipi/core"
	"github.com/npillmayer/lipi/scheme"
	"github.com/npillmayer/lipi/scheme/krutidev"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestFallbackFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.fonts")
	defer teardown()
	//
	f := FallbackFont()
	assert.NotNil(t, f)
	assert.NotNil(t, f.SFNT)
	assert.Equal(t, "Go Sans", f.Fontname)
	assert.True(t, f.Carries('d'))
}

func TestParseBrokenFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.fonts")
	defer teardown()
	//
	_, err := ParseOpenTypeFont([]byte("this is not a font"))
	assert.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestLoadMissingFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.fonts")
	defer teardown()
	//
	_, err := LoadOpenTypeFont("no/such/font.ttf")
	assert.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
}

func TestProbeNeedsArguments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.fonts")
	defer teardown()
	//
	_, err := Probe(nil, nil)
	assert.Error(t, err)
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestProbeAgainstKrutiDev(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lipi.fonts")
	defer teardown()
	//
	f := FallbackFont()
	table := krutidev.Table()
	cov, err := Probe(f, table)
	assert.NoError(t, err)
	//
	// every slot the table maps must turn up either as mapped or stale
	mapped := make(map[rune]bool)
	table.Each(func(e scheme.Entry) {
		for _, r := range e.Src {
			mapped[r] = true
		}
	})
	assert.Equal(t, len(mapped), len(cov.Mapped)+len(cov.Stale))
	assert.Contains(t, cov.Mapped, 'd')
	assert.Contains(t, cov.Gaps, ' ')
	assert.NotContains(t, cov.Gaps, 'd')
}
