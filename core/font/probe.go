package font

import (
	"fmt"
	"sort"

	"github.com/npillmayer/lipi/core"
	"github.com/npillmayer/lipi/scheme"
	"golang.org/x/image/font/sfnt"
)

// Coverage relates the glyph slots of a legacy font to the source
// sequences of a mapping table. Slots are the code points legacy
// encodings live on: printable ASCII, Latin-1, plus whatever else the
// table's sources touch.
type Coverage struct {
	Font   string
	Scheme string
	Mapped []rune // slots the font carries and the table covers
	Stale  []rune // slots the table covers but the font leaves empty
	Gaps   []rune // slots the font carries but no table entry touches
}

// Probe compares the glyph slots of a legacy font against a mapping
// table. Probing aids table authoring: stale slots hint at entries
// copied over from a sibling font, gap slots are glyphs a document may
// legally contain but conversion would pass through.
func Probe(f *ScalableFont, t *scheme.Table) (*Coverage, error) {
	if f == nil || f.SFNT == nil {
		return nil, core.Error(core.EINVALID, "cannot probe without a font")
	}
	if t == nil {
		return nil, core.Error(core.EINVALID, "cannot probe without a mapping table")
	}
	mapped := make(map[rune]bool)
	t.Each(func(e scheme.Entry) {
		for _, r := range e.Src {
			mapped[r] = true
		}
	})
	cov := &Coverage{Font: f.Fontname, Scheme: t.Name()}
	var buf sfnt.Buffer
	seen := make(map[rune]bool)
	slot := func(r rune) {
		if seen[r] {
			return
		}
		seen[r] = true
		gid, err := f.SFNT.GlyphIndex(&buf, r)
		present := err == nil && gid != 0
		switch {
		case present && mapped[r]:
			cov.Mapped = append(cov.Mapped, r)
		case mapped[r]:
			cov.Stale = append(cov.Stale, r)
		case present:
			cov.Gaps = append(cov.Gaps, r)
		}
	}
	for r := rune(0x0020); r <= 0x007e; r++ {
		slot(r)
	}
	for r := rune(0x00a0); r <= 0x00ff; r++ {
		slot(r)
	}
	for r := range mapped {
		slot(r)
	}
	sort.Slice(cov.Mapped, func(i, j int) bool { return cov.Mapped[i] < cov.Mapped[j] })
	sort.Slice(cov.Stale, func(i, j int) bool { return cov.Stale[i] < cov.Stale[j] })
	sort.Slice(cov.Gaps, func(i, j int) bool { return cov.Gaps[i] < cov.Gaps[j] })
	tracer().Debugf("%s", cov)
	return cov, nil
}

func (cov *Coverage) String() string {
	return fmt.Sprintf("font %s vs %s: %d slots mapped, %d stale, %d gaps",
		cov.Font, cov.Scheme, len(cov.Mapped), len(cov.Stale), len(cov.Gaps))
}
