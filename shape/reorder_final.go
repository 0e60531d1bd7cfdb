package shape

// Final Reorderer (§4.5): runs once per syllable after the basic GSUB
// features (half, blwf, pref, ...) have been applied by the caller.
// Re-finds the base (half-form ligation can have changed which glyph
// is the base), moves any pre-base matra in front of the base, resolves
// Reph placement, moves a pre-base-reordering Ra/Pref glyph in front of
// the base, sets the `init` mask, and finalizes cluster boundaries.
//
// This is the GSUB pause callback PlanFeatures registers to run after
// the last basic feature and before the "other" features.
func FinalReordering(buf *Buffer, syllables []Syllable, script Script, opts Options) {
	for _, syl := range syllables {
		if syl.Kind == KindNonIndic {
			continue
		}
		finalReorderSyllable(buf, syl.Start, syl.End, script, opts)
	}
}

func finalReorderSyllable(buf *Buffer, start, end int, script Script, opts Options) {
	cfg := configFor(script)
	base := reFindBase(buf, start, end, cfg)

	startOfLastCluster := movePreBaseMatra(buf, start, end, base)
	base, startOfLastCluster = moveReph(buf, start, end, base, startOfLastCluster, cfg, opts)
	startOfLastCluster = movePreBaseReorderingRa(buf, start, end, base, startOfLastCluster)
	setInitMask(buf, start, end, base)
	finalizeClusters(buf, start, startOfLastCluster, end, opts)
}

// reFindBase re-runs base selection after GSUB has had a chance to
// ligate half-forms: the base is simply the glyph currently tagged
// BASE_C, falling back to the original search if that tag was somehow
// lost (e.g. a ligature merged it into a neighboring glyph's record).
func reFindBase(buf *Buffer, start, end int, cfg ScriptConfig) int {
	for i := start; i < end; i++ {
		if buf.Info[i].Pos == PosBaseC {
			return i
		}
	}
	return findBaseConsonant(buf, start, end, cfg)
}

// isMatraHalantOrCoeng reports whether cat is one of the anchor
// categories §4.5.1's backward scan for a pre-base matra looks for.
func isMatraHalantOrCoeng(cat IndicCategory) bool {
	return cat == CatM || cat == CatH || cat == CatCoeng
}

// movePreBaseMatra implements §4.5.1: scanning backward from base-1 for
// the nearest M/H/Coeng glyph (the "anchor"). If that anchor is a
// halant/coeng not already sitting at PRE_M, every PRE_M matra between
// start and the anchor is rotated to land just after it (advancing past
// a trailing joiner first), preserving their relative order. Returns the
// resulting start_of_last_cluster cursor (the minimum index touched, or
// base unchanged if no matra needed moving).
func movePreBaseMatra(buf *Buffer, start, end, base int) int {
	if start >= base {
		return base
	}
	anchor := -1
	for i := base - 1; i >= start; i-- {
		if isMatraHalantOrCoeng(buf.Info[i].Cat) {
			anchor = i
			break
		}
	}
	if anchor < 0 || !IsHalantOrCoeng(buf.Info[anchor].Cat) || buf.Info[anchor].Pos == PosPreM {
		return base
	}
	target := anchor
	if target+1 < end && IsJoiner(buf.Info[target+1].Cat) {
		target++
	}

	startOfLastCluster := base
	// Walk backward so the last matra moves first: each moved matra
	// takes the slot at target, and the next one found lands just before
	// it, keeping the matras in their original order.
	for i := target; i > start; i-- {
		if buf.Info[i-1].Pos != PosPreM {
			continue
		}
		buf.Move(target, i-1)
		if i-1 < startOfLastCluster {
			startOfLastCluster = i - 1
		}
		target--
	}
	return startOfLastCluster
}

// moveReph repositions a Reph candidate still tagged
// RA_TO_BECOME_REPH, per the script's configured RephPosition (§4.5.2).
// It returns the (possibly unchanged) base index — the move can shift it
// — and the start_of_last_cluster cursor updated to start when a move
// happens.
//
// The move only happens if the candidate glyph still carries
// RA_TO_BECOME_REPH by this point: if GSUB's rphf feature ligated it
// into the base (or it was never marked), there is nothing left to move.
func moveReph(buf *Buffer, start, end, base, startOfLastCluster int, cfg ScriptConfig, opts Options) (int, int) {
	if start+1 >= end || buf.Info[start].Pos != PosRaToBecomeReph {
		return base, startOfLastCluster
	}
	// rphf's ligature can have folded the Reph candidate into the base
	// glyph's record rather than leaving it as a separate glyph; when
	// that happened there is nothing left at start to move.
	if buf.Info[start].Ligated {
		return base, startOfLastCluster
	}
	// Logical Repha (Malayalam) is never moved visually: the glyph stays
	// exactly where the syllable grammar put it.
	if cfg.RephMode == RephModeLogRepha {
		return base, startOfLastCluster
	}
	rephEnd := start + 1
	for rephEnd < end && buf.Info[rephEnd].Pos == PosRaToBecomeReph {
		rephEnd++
	}

	newRephPos := rephTarget(buf, start, end, base, cfg, opts.UniscribeBugCompatible)
	target := newRephPos + 1
	if target <= rephEnd {
		return base, startOfLastCluster
	}
	runLen := rephEnd - start
	moveRun(buf, start, runLen, target)
	// The moved run keeps its RA_TO_BECOME_REPH position tag rather than
	// taking on the class of wherever it landed: nothing downstream
	// re-sorts by position after this point, and relabeling it to, say,
	// POST_C would make it indistinguishable from a real post-base
	// consonant to any later positional lookup.
	if base >= start && base < target {
		base -= runLen
	}
	return base, start
}

// moveRun relocates the contiguous run of length glyphs starting at
// start so that it ends immediately before target (occupying indices
// target-length .. target-1), preserving the run's internal order.
// A forward move processes the run back-to-front and a backward move
// front-to-back, so each single-glyph Move only shifts glyphs outside
// the part of the run that hasn't moved yet.
func moveRun(buf *Buffer, start, length, target int) {
	if target-length < start {
		for k := 0; k < length; k++ {
			buf.Move(target-length+k, start+k)
		}
		return
	}
	for k := 0; k < length; k++ {
		src := start + length - 1 - k
		dst := target - 1 - k
		buf.Move(dst, src)
	}
}

// rephTarget resolves new_reph_pos — the glyph index the Reph run should
// land at, occupying that slot — per §4.5.2's ordered fallback chain.
// AFTER_POSTSCRIPT skips straight to the step-6 fallback; every other
// class first looks for a halant between start and base (step 2) before
// trying its own class-specific rule (step 3/4) or falling through to
// the same step-6 fallback.
func rephTarget(buf *Buffer, start, end, base int, cfg ScriptConfig, uniscribeCompat bool) int {
	if cfg.RephPos == RephAfterPostscript {
		return rephFallback(buf, start, end, base, uniscribeCompat)
	}
	for i := start + 1; i < base; i++ {
		if buf.Info[i].Cat == CatH {
			pos := i + 1
			if pos < end && IsJoiner(buf.Info[pos].Cat) {
				pos++
			}
			return pos
		}
	}
	switch cfg.RephPos {
	case RephAfterMain:
		pos := base + 1
		for pos < end && !isOneOfPos(buf.Info[pos].Pos, PosBelowC, PosPostC, PosPostM, PosSMVD) {
			pos++
		}
		return pos
	case RephAfterSubscript:
		pos := base + 1
		for pos < end && !isOneOfPos(buf.Info[pos].Pos, PosBelowC, PosPostM, PosSMVD) {
			pos++
		}
		return pos
	default: // BEFORE_SUBSCRIPT, BEFORE_POSTSCRIPT: no class-specific step, fall through.
		return rephFallback(buf, start, end, base, uniscribeCompat)
	}
}

func isOneOfPos(p IndicPosition, set ...IndicPosition) bool {
	for _, s := range set {
		if p == s {
			return true
		}
	}
	return false
}

// rephFallback is §4.5.2 step 6: the universal fallback when no earlier
// step committed. It starts at the last glyph, walks backward past any
// trailing SMVD run, and — outside Uniscribe-compatibility mode — if it
// lands on a halant, walks back once more per matra found between base
// and that halant, so Reph ends up before the (M, H) pair
// rather than wedged between them. This intentionally does not
// replicate the reference source's step-3 unchecked bounds read past
// new_reph_pos (§9 Open Questions; see DESIGN.md).
func rephFallback(buf *Buffer, start, end, base int, uniscribeCompat bool) int {
	pos := end - 1
	for pos > base && buf.Info[pos].Pos == PosSMVD {
		pos--
	}
	if !uniscribeCompat && pos >= start && pos < end && buf.Info[pos].Cat == CatH {
		matras := 0
		for i := base + 1; i < pos; i++ {
			if buf.Info[i].Cat == CatM {
				matras++
			}
		}
		pos -= matras
	}
	return pos
}

// movePreBaseReorderingRa implements §4.5.3: only runs if some glyph
// strictly after base still carries the PREF mask with a single-glyph
// substitution result (its successor does not also carry PREF — a
// multi-glyph pref result is left alone). Finds the target by scanning
// left from base until the preceding glyph's category is M, H or Coeng
// — advancing past a trailing joiner if that stop glyph is a halant —
// then rotates the PREF glyph there.
func movePreBaseReorderingRa(buf *Buffer, start, end, base, startOfLastCluster int) int {
	prefIdx := -1
	for i := base + 1; i < end; i++ {
		if buf.Info[i].Mask&MaskPref == 0 {
			continue
		}
		if i+1 < end && buf.Info[i+1].Mask&MaskPref != 0 {
			continue
		}
		prefIdx = i
		break
	}
	if prefIdx < 0 {
		return startOfLastCluster
	}

	target := base
	for target > start && !isMatraHalantOrCoeng(buf.Info[target-1].Cat) {
		target--
	}
	if target > start && IsHalantOrCoeng(buf.Info[target-1].Cat) &&
		target < prefIdx && IsJoiner(buf.Info[target].Cat) {
		target++
	}
	if target == prefIdx {
		return startOfLastCluster
	}

	buf.Move(target, prefIdx)
	if target < startOfLastCluster {
		return target
	}
	return startOfLastCluster
}

// setInitMask applies the `init` feature mask to a syllable-initial
// glyph at PRE_M's position class (a pre-base matra), matching the reference source's
// condition: either the syllable starts at buffer position 0, or the
// preceding glyph's Unicode general category is not a letter or mark
// (§4.5.4).
func setInitMask(buf *Buffer, start, end, base int) {
	if start >= end || buf.Info[start].Pos != PosPreM {
		return
	}
	if start == 0 {
		buf.Info[start].Mask |= MaskInit
		return
	}
	prevGC := buf.Info[start-1].GC
	if prevGC != GCLetter && prevGC != GCMark {
		buf.Info[start].Mask |= MaskInit
	}
	_ = base
}

// finalizeClusters implements §4.5.5's cluster-boundary finalization.
// Outside Uniscribe-compatibility mode, the pre-base half-form region
// (start+1, startOfLastCluster) is first split at every Halant/Coeng-
// then-ZWNJ boundary (so a dead consonant explicitly marked non-joining
// does not get merged into the following half-form's cluster), each
// split immediately merging everything up to and including the ZWNJ
// into the cluster that precedes it. Only then is the remaining range
// from the updated startOfLastCluster to end merged into the base's
// single trailing cluster. In compatibility mode the boundary-splitting
// step is skipped entirely and only the final merge runs, matching the
// reference source's simpler compat-mode path.
func finalizeClusters(buf *Buffer, start, startOfLastCluster, end int, opts Options) {
	if startOfLastCluster >= end {
		return
	}
	if !opts.UniscribeBugCompatible {
		clusterStart := start
		for i := start + 1; i < startOfLastCluster; i++ {
			if IsHalantOrCoeng(buf.Info[i-1].Cat) && buf.Info[i].Cat == CatZWNJ {
				buf.MergeClusters(clusterStart, i+1)
				clusterStart = i + 1
			}
		}
		startOfLastCluster = clusterStart
	}
	buf.MergeClusters(startOfLastCluster, end)
}
