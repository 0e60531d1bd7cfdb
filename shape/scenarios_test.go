package shape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildBuffer makes a Buffer from a list of code points, one glyph each,
// cluster ids matching input order.
func buildBuffer(runes ...rune) *Buffer {
	glyphs := make([]Glyph, len(runes))
	for i, r := range runes {
		glyphs[i] = Glyph{Codepoint: r, Cluster: i}
	}
	return NewBuffer(glyphs)
}

// shapeThroughInitial runs categorize+segment+initial-reorder only,
// mirroring Scenarios S1-S5 in §8 which are all described "after initial
// reordering".
func shapeThroughInitial(buf *Buffer, script Script) []Syllable {
	Categorize(buf, script)
	syllables := FindSyllables(buf)
	planner := NewDemoPlanner(buf, ScriptTag(script))
	InitialReordering(buf, syllables, script, planner, DefaultOptions())
	return syllables
}

func wantTriple(t *testing.T, g Glyph, cp rune, cat IndicCategory, pos IndicPosition) {
	t.Helper()
	require.Equalf(t, cp, g.Codepoint, "codepoint")
	require.Equalf(t, cat, g.Cat, "category of U+%04X", cp)
	require.Equalf(t, pos, g.Pos, "position of U+%04X", cp)
}

// S1: Devanagari RA+HALANT+KA forms a Reph candidate.
func TestScenarioS1(t *testing.T) {
	buf := buildBuffer(0x0930, 0x094D, 0x0915)
	shapeThroughInitial(buf, ScriptDevanagari)

	wantTriple(t, buf.Info[0], 0x0930, CatRa, PosRaToBecomeReph)
	wantTriple(t, buf.Info[1], 0x094D, CatH, PosRaToBecomeReph)
	wantTriple(t, buf.Info[2], 0x0915, CatC, PosBaseC)

	require.NotZero(t, buf.Info[0].Mask&MaskRphf, "expected RPHF on both Reph glyphs")
	require.NotZero(t, buf.Info[1].Mask&MaskRphf, "expected RPHF on both Reph glyphs")
	require.Zero(t, buf.Info[2].Mask&MaskRphf, "base glyph should not carry RPHF")
}

// S2: Devanagari KA+I-MATRA; the matra ends up physically before the base.
func TestScenarioS2(t *testing.T) {
	buf := buildBuffer(0x0915, 0x093F)
	shapeThroughInitial(buf, ScriptDevanagari)

	require.Equal(t, rune(0x093F), buf.Info[0].Codepoint, "expected matra before base")
	require.Equal(t, rune(0x0915), buf.Info[1].Codepoint, "expected matra before base")
	require.Equal(t, PosBaseC, buf.Info[1].Pos, "base glyph position")
	require.Equal(t, PosPreM, buf.Info[0].Pos, "matra position (sorts before BASE_C; see DESIGN.md Open Question 3)")
}

// S3: Devanagari KA+HALANT+SSA+I — a pre-base matra in front of a
// two-consonant conjunct.
func TestScenarioS3(t *testing.T) {
	buf := buildBuffer(0x0915, 0x094D, 0x0937, 0x093F)
	shapeThroughInitial(buf, ScriptDevanagari)

	order := []rune{buf.Info[0].Codepoint, buf.Info[1].Codepoint, buf.Info[2].Codepoint, buf.Info[3].Codepoint}
	want := []rune{0x093F, 0x0915, 0x094D, 0x0937}
	require.Equal(t, want, order, "glyph order")
	wantTriple(t, buf.Info[3], 0x0937, CatC, PosBaseC)
}

// S4: Khmer KA+COENG+KHA — no reordering, all three land BELOW_C/BASE_C.
func TestScenarioS4(t *testing.T) {
	buf := buildBuffer(0x1780, 0x17D2, 0x1781)
	shapeThroughInitial(buf, ScriptKhmer)

	wantTriple(t, buf.Info[0], 0x1780, CatC, PosBaseC)
	wantTriple(t, buf.Info[1], 0x17D2, CatCoeng, PosBelowC)
	wantTriple(t, buf.Info[2], 0x1781, CatC, PosBelowC)
}

// S5: Devanagari consonant + above-matra + a Vedic sign.
func TestScenarioS5(t *testing.T) {
	buf := buildBuffer(0x092E, 0x0947, 0x0952)
	shapeThroughInitial(buf, ScriptDevanagari)

	wantTriple(t, buf.Info[0], 0x092E, CatC, PosBaseC)
	wantTriple(t, buf.Info[1], 0x0947, CatM, PosAboveM)
	wantTriple(t, buf.Info[2], 0x0952, CatVD, PosSMVD)
}

// S6: final reordering moves a surviving Reph candidate to sit strictly
// between the base and a post-base glyph (Devanagari's BEFORE_POSTSCRIPT
// class). Builds the assumed post-GSUB buffer state directly rather than
// deriving it from a real ligature substitution — see DESIGN.md Open
// Question 6.
func TestScenarioS6(t *testing.T) {
	buf := buildBuffer(0x0930, 0x094D, 0x092E, 0x092F)
	buf.Info[0].Cat, buf.Info[0].Pos = CatRa, PosRaToBecomeReph
	buf.Info[1].Cat, buf.Info[1].Pos = CatH, PosRaToBecomeReph
	buf.Info[2].Cat, buf.Info[2].Pos = CatC, PosBaseC
	buf.Info[3].Cat, buf.Info[3].Pos = CatC, PosPostC
	syl := []Syllable{{Start: 0, End: 4, Kind: KindConsonant}}

	FinalReordering(buf, syl, ScriptDevanagari, DefaultOptions())

	baseIdx, rephLo, rephHi, postIdx := -1, -1, -1, -1
	for i, g := range buf.Info {
		switch {
		case g.Pos == PosBaseC:
			baseIdx = i
		case g.Pos == PosPostC:
			postIdx = i
		case g.Cat == CatRa:
			rephLo = i
		case g.Cat == CatH:
			rephHi = i
		}
	}
	require.GreaterOrEqual(t, baseIdx, 0, "missing base glyph")
	require.GreaterOrEqual(t, postIdx, 0, "missing post-base glyph")
	require.GreaterOrEqual(t, rephLo, 0, "missing Reph Ra glyph")
	require.GreaterOrEqual(t, rephHi, 0, "missing Reph H glyph")

	require.Less(t, baseIdx, rephLo, "Reph run not strictly after base")
	require.Less(t, rephHi, postIdx, "Reph run not strictly before post-base glyph")
}
