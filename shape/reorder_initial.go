package shape

// Initial Reorderer (§4.4): per syllable, finds the base consonant,
// classifies every other glyph's position relative to it, moves a
// halant for old-spec script tags, canonicalizes the attachment of
// halants/nukta/joiners to their consonant, assigns the basic-feature
// masks GSUB will consult, and finally sorts the syllable by position
// with a bounded bubble sort.
//
// This is the GSUB pause callback PlanFeatures registers to run before
// the first basic feature is applied.
func InitialReordering(buf *Buffer, syllables []Syllable, script Script, planner FeaturePlanner, opts Options) {
	for _, syl := range syllables {
		switch syl.Kind {
		case KindConsonant:
			initialReorderConsonantSyllable(buf, syl.Start, syl.End, script, planner, opts)
			if script == ScriptKhmer {
				khmerReorder(buf, syl.Start, syl.End)
			}
		case KindVowel:
			initialReorderVowelSyllable(buf, syl.Start, syl.End, script, planner, opts)
		case KindStandalone:
			initialReorderStandaloneCluster(buf, syl.Start, syl.End, script, planner, opts)
			if script == ScriptKhmer {
				khmerReorder(buf, syl.Start, syl.End)
			}
		case KindNonIndic:
			// left untouched: no base, no masks, no reordering (§4.4).
		}
	}
}

// findBaseConsonant is the fallback base search final reordering uses
// when a BASE_C tag was lost to GSUB ligation (§4.5): Khmer picks the
// first consonant in range, every other script the last.
func findBaseConsonant(buf *Buffer, start, end int, cfg ScriptConfig) int {
	if cfg.BasePos == BaseFirst {
		for i := start; i < end; i++ {
			if IsConsonant(buf.Info[i].Cat) {
				return i
			}
		}
		return start
	}
	for i := end - 1; i >= start; i-- {
		if IsConsonant(buf.Info[i].Cat) {
			return i
		}
	}
	return start
}

// rephPrefixLength reports whether [start, end) begins with a Ra+Halant
// Reph candidate (§4.4.1): the syllable must have at least one further
// consonant after the pair, and that third glyph must not be a joiner.
// Khmer has no Reph concept at all — its Ra/Robat handling is the
// separate pre-base-reordering step khmerReorder runs instead — so it
// always reports no candidate.
func rephPrefixLength(buf *Buffer, start, end int, script Script) int {
	if script == ScriptKhmer {
		return 0
	}
	if start+2 < end &&
		buf.Info[start].Cat == CatRa && buf.Info[start+1].Cat == CatH &&
		!IsJoiner(buf.Info[start+2].Cat) {
		for i := start + 2; i < end; i++ {
			if IsConsonant(buf.Info[i].Cat) {
				return 2
			}
		}
	}
	return 0
}

// selectBase implements §4.4.1 in full: the Reph-candidate detection,
// the base_pos == FIRST/LAST split, and the LAST-mode backward scan that
// prefers the most recent non-BELOW_C/POST_C consonant candidate, or
// falls back to whatever candidate it last saw, or to limit if it saw
// none at all. It returns the chosen base index together with whether
// the Reph candidate survived (it is unset if the scan left base sitting
// right back at start — "the Ra becomes the base").
func selectBase(buf *Buffer, start, end int, cfg ScriptConfig, script Script) (base int, hasReph bool) {
	rephLen := rephPrefixLength(buf, start, end, script)
	limit := start
	hasReph = rephLen > 0
	if hasReph {
		base = start
		limit = start + rephLen
	}

	if cfg.BasePos == BaseFirst {
		if !hasReph {
			base = limit
		}
	} else {
		found := false
		candidate := -1
		for i := end - 1; i >= limit; i-- {
			if IsJoiner(buf.Info[i].Cat) {
				if candidate >= 0 {
					base, found = candidate, true
				}
				break
			}
			if !IsConsonant(buf.Info[i].Cat) {
				continue
			}
			if buf.Info[i].Pos != PosBelowC && buf.Info[i].Pos != PosPostC {
				base, found = i, true
				break
			}
			candidate = i
		}
		if !found {
			if candidate >= 0 {
				base = candidate
			} else {
				base = limit
			}
		}
	}

	if base < start {
		base = start
	}
	if hasReph && base == start {
		hasReph = false
	}
	return base, hasReph
}

func initialReorderConsonantSyllable(buf *Buffer, start, end int, script Script, planner FeaturePlanner, opts Options) {
	cfg := configFor(script)
	base, hasReph := selectBase(buf, start, end, cfg, script)

	assignPositions(buf, start, end, base, hasReph)
	if planner != nil && isOldSpecTag(planner.GetChosenScript()) {
		oldSpecHalantMove(buf, start, end, base)
	}
	attachMiscMarks(buf, start, end, opts)
	attachPostBaseHalants(buf, start, end, base)
	assignConsonantMasks(buf, start, end, base, hasReph, planner)
	clearJoinerEffects(buf, start, end)
	stableSortSyllable(buf, start, end)
}

// clearJoinerEffects implements the ZWJ/ZWNJ carve-out from §4.4.5: a
// joiner glyph blocks conjunct ligation of whatever precedes it, so CJCT
// is cleared on every glyph walking backward from the joiner to the
// nearest preceding consonant (inclusive) or the syllable start. A
// ZWNJ additionally blocks half-form formation, so it clears HALF over
// that same span too (Invariant 6).
func clearJoinerEffects(buf *Buffer, start, end int) {
	for i := start; i < end; i++ {
		cat := buf.Info[i].Cat
		if cat != CatZWJ && cat != CatZWNJ {
			continue
		}
		for j := i - 1; j >= start; j-- {
			buf.Info[j].Mask &^= MaskCjct
			if cat == CatZWNJ {
				buf.Info[j].Mask &^= MaskHalf
			}
			if IsConsonant(buf.Info[j].Cat) {
				break
			}
		}
	}
}

// assignPositions implements §4.4.2. Every glyph strictly before base
// becomes PRE_C regardless of what the categorizer gave it; a pre-base
// matra encoded after the base is not in that range and keeps its
// table-assigned PRE_M (see DESIGN.md Open Question 3). The Khmer
// final-consonant detection looks past the
// base for an M then tags the next consonant FINAL_C. A surviving Reph
// candidate tags the whole two-glyph Ra+Halant prefix — not just the Ra
// — RA_TO_BECOME_REPH: §4.4.2's prose names only "glyph at start", but
// §4.4.5's mask rule and S1 both talk about the plural reph glyphs, so
// the halant is carried along with it (§9 Open Questions).
func assignPositions(buf *Buffer, start, end, base int, hasReph bool) {
	for i := start; i < base; i++ {
		buf.Info[i].Pos = PosPreC
	}
	if base < end {
		buf.Info[base].Pos = PosBaseC
	}
	for i := base + 1; i < end; i++ {
		if buf.Info[i].Cat == CatM {
			for j := i + 1; j < end; j++ {
				if IsConsonant(buf.Info[j].Cat) {
					buf.Info[j].Pos = PosFinalC
					break
				}
			}
			break
		}
	}
	if hasReph {
		rephEnd := start + 1
		for rephEnd < end && rephEnd < start+2 {
			rephEnd++
		}
		for i := start; i < rephEnd; i++ {
			buf.Info[i].Pos = PosRaToBecomeReph
		}
	}
}

// oldSpecHalantMove implements §4.4.3: for an old-spec script tag, the
// first halant after the base is rotated to sit just after the
// syllable's last consonant, reversing the new-spec halant order.
func oldSpecHalantMove(buf *Buffer, start, end, base int) {
	halant := -1
	for i := base + 1; i < end; i++ {
		if buf.Info[i].Cat == CatH {
			halant = i
			break
		}
	}
	if halant < 0 {
		return
	}
	lastConsonant := -1
	for i := end - 1; i > base; i-- {
		if IsConsonant(buf.Info[i].Cat) {
			lastConsonant = i
			break
		}
	}
	if lastConsonant < 0 || lastConsonant <= halant {
		return
	}
	buf.Move(lastConsonant, halant)
}

// attachMiscMarks canonicalizes the attachment of halant, nukta, RS and
// joiner glyphs to the consonant they belong to (§4.4.4 default mode):
// each such glyph inherits the position of the glyph immediately before
// it. In Uniscribe-compatibility mode a halant that ended up at PRE_M
// instead walks backward past every PRE_M predecessor to copy the first
// non-PRE_M position instead, modeling Uniscribe's quirk that halant
// does not travel with a left matra.
func attachMiscMarks(buf *Buffer, start, end int, opts Options) {
	lastPos := buf.Info[start].Pos
	for i := start; i < end; i++ {
		switch buf.Info[i].Cat {
		case CatZWNJ, CatZWJ, CatN, CatRS, CatH:
			if opts.UniscribeBugCompatible && buf.Info[i].Cat == CatH && buf.Info[i].Pos == PosPreM {
				j := i - 1
				for j > start && buf.Info[j].Pos == PosPreM {
					j--
				}
				buf.Info[i].Pos = buf.Info[j].Pos
			} else {
				buf.Info[i].Pos = lastPos
			}
		default:
			lastPos = buf.Info[i].Pos
		}
	}
}

// attachPostBaseHalants implements §4.4.4's second pass: walking forward
// from base+1 tracking the most recent halant, and once a consonant is
// reached, propagating that consonant's position backward over every
// glyph from the halant up to (but not including) the consonant. This
// keeps a post-base halant attached to the subjoined consonant that
// follows it rather than the one it follows.
func attachPostBaseHalants(buf *Buffer, start, end, base int) {
	lastHalant := -1
	for i := base + 1; i < end; i++ {
		switch {
		case buf.Info[i].Cat == CatH:
			if lastHalant < 0 {
				lastHalant = i
			}
		case IsConsonant(buf.Info[i].Cat):
			if lastHalant >= 0 {
				for j := lastHalant; j < i; j++ {
					buf.Info[j].Pos = buf.Info[i].Pos
				}
				lastHalant = -1
			}
		}
	}
	_ = start
}

// assignConsonantMasks sets the per-glyph feature masks basic features
// will be applied under (§4.4.5). nukt/rkrf/vatu are declared global by
// the feature planner (§4.3) and are never masked here.
func assignConsonantMasks(buf *Buffer, start, end, base int, hasReph bool, planner FeaturePlanner) {
	for i := start; i < end; i++ {
		buf.Info[i].Mask |= MaskGlobal
	}
	if hasReph {
		for i := start; i < start+2 && i < end; i++ {
			buf.Info[i].Mask |= MaskRphf
		}
	}
	for i := start; i < base; i++ {
		buf.Info[i].Mask |= MaskHalf | MaskAkhn | MaskCjct
	}
	if base < end {
		buf.Info[base].Mask |= MaskAkhn | MaskCjct
	}
	for i := base + 1; i < end; i++ {
		buf.Info[i].Mask |= MaskBlwf | MaskAbvf | MaskPstf | MaskCjct
	}
	assignPrefCfar(buf, start, end, base, planner)
}

// assignPrefCfar implements §4.4.5's PREF/CFAR block: only runs if the
// planner actually allocated a non-zero mask bit to the pref feature (a
// font/script that does not support it never triggers this). It finds
// the first Halant,Ra adjacent pair strictly after the base, tags both
// PREF, and tags every later glyph in the syllable CFAR — the
// Khmer-specific distinction between two shapes of that (H, Ra)
// sequence.
func assignPrefCfar(buf *Buffer, start, end, base int, planner FeaturePlanner) {
	if planner == nil || planner.Get1Mask(tagPref) == 0 {
		return
	}
	if base+3 > end {
		return
	}
	for i := base + 1; i < end-1; i++ {
		if buf.Info[i].Cat == CatH && buf.Info[i+1].Cat == CatRa {
			buf.Info[i].Mask |= MaskPref
			buf.Info[i+1].Mask |= MaskPref
			for j := i + 2; j < end; j++ {
				buf.Info[j].Mask |= MaskCfar
			}
			return
		}
	}
}

// initialReorderVowelSyllable handles a vowel syllable (§4.4.6): despite
// having no base consonant to reorder around, it is run through the
// consonant routine unchanged, exactly as the standalone-cluster path
// does — the independent vowel at its head still needs a base tag, the
// position-assignment and mask-setting passes, and the stable sort that
// puts a trailing matra/SM/VD tail in its final order.
func initialReorderVowelSyllable(buf *Buffer, start, end int, script Script, planner FeaturePlanner, opts Options) {
	initialReorderConsonantSyllable(buf, start, end, script, planner, opts)
}

func initialReorderStandaloneCluster(buf *Buffer, start, end int, script Script, planner FeaturePlanner, opts Options) {
	if opts.UniscribeBugCompatible && end > start && buf.Info[end-1].Cat == CatDottedCircle {
		// Uniscribe-compatible mode leaves a trailing dotted circle
		// exactly where it is rather than folding it into the
		// surrounding reorder (§4.4.6's standalone-cluster carve-out).
		for i := start; i < end; i++ {
			buf.Info[i].Mask |= MaskGlobal
		}
		return
	}
	initialReorderConsonantSyllable(buf, start, end, script, planner, opts)
}

// stableSortSyllable sorts [start, end) by IndicPosition using a stable
// bubble sort, intentionally: the reference source uses a bubble sort
// and deliberately skips sorting any syllable with more than 64 glyphs,
// treating that as a malicious/degenerate cluster rather than paying
// O(n^2) on it (§4.4.5, §8 DoS guard).
func stableSortSyllable(buf *Buffer, start, end int) {
	const maxSortable = 64
	if end-start > maxSortable {
		return
	}
	for i := end - 1; i > start; i-- {
		swapped := false
		for j := start; j < i; j++ {
			if buf.Info[j].Pos > buf.Info[j+1].Pos {
				buf.Info[j], buf.Info[j+1] = buf.Info[j+1], buf.Info[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}
}
