package shape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestInitialReorderPositionsNonDecreasing covers Invariant 1: after
// initial reordering, every syllable's IndicPosition sequence is
// non-decreasing.
func TestInitialReorderPositionsNonDecreasing(t *testing.T) {
	cases := []struct {
		name   string
		runes  []rune
		script Script
	}{
		{"reph", []rune{0x0930, 0x094D, 0x0915}, ScriptDevanagari},
		{"prebase matra", []rune{0x0915, 0x093F}, ScriptDevanagari},
		{"conjunct with matra", []rune{0x0915, 0x094D, 0x0937, 0x093F}, ScriptDevanagari},
		{"khmer coeng", []rune{0x1780, 0x17D2, 0x1781}, ScriptKhmer},
		{"vedic tail", []rune{0x092E, 0x0947, 0x0952}, ScriptDevanagari},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			buf := buildBuffer(c.runes...)
			syllables := shapeThroughInitial(buf, c.script)
			for _, syl := range syllables {
				for i := syl.Start + 1; i < syl.End; i++ {
					require.LessOrEqualf(t, buf.Info[i-1].Pos, buf.Info[i].Pos,
						"positions decrease at %d->%d (%s -> %s)", i-1, i, buf.Info[i-1].Pos, buf.Info[i].Pos)
				}
			}
		})
	}
}

// TestInitialReorderExactlyOneBase covers Invariant 2: every consonant
// or standalone syllable has exactly one BASE_C-tagged glyph.
func TestInitialReorderExactlyOneBase(t *testing.T) {
	buf := buildBuffer(0x0915, 0x094D, 0x0937, 0x093F)
	syllables := shapeThroughInitial(buf, ScriptDevanagari)
	for _, syl := range syllables {
		if syl.Kind != KindConsonant && syl.Kind != KindStandalone {
			continue
		}
		count := 0
		for i := syl.Start; i < syl.End; i++ {
			if buf.Info[i].Pos == PosBaseC {
				count++
			}
		}
		require.Equalf(t, 1, count, "syllable [%d,%d) BASE_C count", syl.Start, syl.End)
	}
}

// TestInitialReorderGlyphCountPreserved covers Invariant 3: reordering
// never adds or drops glyphs.
func TestInitialReorderGlyphCountPreserved(t *testing.T) {
	buf := buildBuffer(0x0930, 0x094D, 0x0915, 0x093F, 0x0902)
	before := buf.Len()
	shapeThroughInitial(buf, ScriptDevanagari)
	require.Equal(t, before, buf.Len(), "glyph count changed")
}

// TestInitialReorderRphfIffHasReph covers Invariant 5: RPHF is present
// if and only if a Reph candidate was detected and survived.
func TestInitialReorderRphfIffHasReph(t *testing.T) {
	withReph := buildBuffer(0x0930, 0x094D, 0x0915)
	shapeThroughInitial(withReph, ScriptDevanagari)
	require.NotZero(t, withReph.Info[0].Mask&MaskRphf, "expected RPHF on Reph candidate")

	noReph := buildBuffer(0x0915, 0x093F)
	shapeThroughInitial(noReph, ScriptDevanagari)
	for i, g := range noReph.Info {
		require.Zerof(t, g.Mask&MaskRphf, "glyph %d unexpectedly carries RPHF with no Reph candidate present", i)
	}
}

// TestJoinerClearsCjctAndHalf covers Invariant 6: a ZWNJ clears CJCT and
// HALF from the preceding consonant run up to the prior consonant.
func TestJoinerClearsCjctAndHalf(t *testing.T) {
	// KA + HALANT + ZWNJ + KA: the half-form ligation of the first KA is
	// explicitly blocked by the ZWNJ.
	buf := buildBuffer(0x0915, 0x094D, 0x200C, 0x0915)
	shapeThroughInitial(buf, ScriptDevanagari)

	require.Zero(t, buf.Info[0].Mask&MaskCjct, "glyph 0 should have CJCT cleared by the following ZWNJ")
	require.Zero(t, buf.Info[0].Mask&MaskHalf, "glyph 0 should have HALF cleared by the following ZWNJ")
}

func TestSyllableSegmentationNonIndicFallsThrough(t *testing.T) {
	buf := buildBuffer('a', 'b', 'c')
	syllables := FindSyllables(buf)
	require.Len(t, syllables, 1)
	require.Equal(t, KindNonIndic, syllables[0].Kind)
	require.Equal(t, 0, syllables[0].Start)
	require.Equal(t, 3, syllables[0].End)
}

func TestSyllableSegmentationStandaloneCluster(t *testing.T) {
	buf := buildBuffer(0x00A0, 0x0947) // NBSP + above-matra
	Categorize(buf, ScriptDevanagari)
	syllables := FindSyllables(buf)
	require.Len(t, syllables, 1)
	require.Equal(t, KindStandalone, syllables[0].Kind)
}
