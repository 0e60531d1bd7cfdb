package shape

// Category Table — static data mapping a code point to (IndicCategory,
// IndicPosition). The nine Brahmic scripts in scope were laid out by
// Unicode column-for-column relative to a per-script block base, so the
// table below is expressed once as a generic offset table and applied
// at each script's base, with a small number of per-script exceptions
// layered on top (pre-base matras, and Ra detection). Khmer's block has
// an unrelated layout and gets its own function.
//
// The code-generated table HarfBuzz ships (hb-ot-shaper-indic-table.cc)
// was not available to build from; this table is authored directly
// against the Unicode block structure instead. See DESIGN.md for the
// approximations this implies.

// blockBase is the first code point of a script's Unicode block.
var blockBase = map[Script]rune{
	ScriptDevanagari: 0x0900,
	ScriptBengali:    0x0980,
	ScriptGurmukhi:   0x0A00,
	ScriptGujarati:   0x0A80,
	ScriptOriya:      0x0B00,
	ScriptTamil:      0x0B80,
	ScriptTelugu:     0x0C00,
	ScriptKannada:    0x0C80,
	ScriptMalayalam:  0x0D00,
}

// ScriptOfCodepoint identifies which script's block r falls in. Returns
// ok=false for code points outside every known Indic/Khmer block (the
// categorizer treats those as CatX, script-agnostic).
func ScriptOfCodepoint(r rune) (Script, bool) {
	if r >= 0x1780 && r <= 0x17FF || r >= 0x19E0 && r <= 0x19FF {
		return ScriptKhmer, true
	}
	for s, base := range blockBase {
		if r >= base && r < base+0x80 {
			return s, true
		}
	}
	return 0, false
}

// genericOffsetCategory classifies a code point by its offset within a
// Brahmic block, following the common layout shared by all nine non-Khmer
// scripts in scope.
func genericOffsetCategory(offset rune) IndicCategory {
	switch {
	case offset >= 0x01 && offset <= 0x03:
		return CatSM // candrabindu, anusvara, visarga
	case offset >= 0x05 && offset <= 0x14:
		return CatV // independent vowels
	case offset >= 0x15 && offset <= 0x39:
		return CatC // consonants (0x30/0x31 are "Ra" consonants, see isRaOffset)
	case offset == 0x3A || offset == 0x3B:
		return CatV // additional independent vowels (vocalic RR/LL forms)
	case offset == 0x3C:
		return CatN // nukta
	case offset == 0x3D:
		return CatX // avagraha
	case offset >= 0x3E && offset <= 0x4C:
		return CatM // dependent vowel signs (matras)
	case offset == 0x4D:
		return CatH // virama/halant
	case offset == 0x4E:
		return CatM // additional post-base matra (e.g. Devanagari prishthamatra E)
	case offset >= 0x51 && offset <= 0x57:
		return CatA // vedic tone/stress marks
	case offset >= 0x58 && offset <= 0x5F:
		return CatC // nukta-combined consonants
	case offset == 0x60 || offset == 0x61:
		return CatV // additional vocalic independent vowels
	case offset == 0x62 || offset == 0x63:
		return CatM // additional vocalic matras
	default:
		return CatX // punctuation, digits, and everything else
	}
}

// isRaOffset reports whether offset is the script's "Ra" consonant slot.
// Ra is "assigned by rule, not by table" per §3.1: every script in scope
// places its main Ra consonant at the same relative offset, with
// Devanagari additionally having an eyelash-Ra variant one slot later.
func isRaOffset(offset rune) bool {
	return offset == 0x30 || offset == 0x31
}

// matraPositionOverrides lists, per script, the matra offsets whose
// visual placement differs from genericMatraPosition's default — chiefly
// the split vowel signs that render partly or wholly before the base
// consonant despite being logically encoded after it. This is the one
// piece of per-script visual-position exception data this table carries
// beyond the shared generic layout.
var matraPositionOverrides = map[Script]map[rune]IndicPosition{
	ScriptTamil:     {0x46: PosPreM, 0x47: PosPreM, 0x48: PosPreM},
	ScriptMalayalam: {0x46: PosPreM, 0x47: PosPreM, 0x48: PosPreM},
}

// genericMatraPosition gives the baseline visual position for a matra at
// offset, following the common Devanagari-pattern layout (§4.1's raw
// table position for the M category — only consonant/RS/SM/VD categories
// get their position recomputed by the categorizer's position-assignment
// chain; matras keep whatever the table says here).
func genericMatraPosition(offset rune) IndicPosition {
	switch offset {
	case 0x3F:
		return PosPreM
	case 0x41, 0x42, 0x43, 0x44:
		return PosBelowM
	case 0x45, 0x46, 0x47, 0x48, 0x49, 0x4A:
		return PosAboveM
	default:
		return PosPostM
	}
}

// matraPosition resolves a Brahmic matra's table position for script s,
// applying the per-script override table before falling back to the
// generic layout.
func matraPosition(s Script, offset rune) IndicPosition {
	if over, ok := matraPositionOverrides[s][offset]; ok {
		return over
	}
	return genericMatraPosition(offset)
}

// lookupBrahmic classifies r assuming it belongs to script s's block.
func lookupBrahmic(s Script, r rune) (IndicCategory, bool) {
	base, ok := blockBase[s]
	if !ok {
		return CatX, false
	}
	offset := r - base
	if offset < 0 || offset >= 0x80 {
		return CatX, false
	}
	if isRaOffset(offset) {
		return CatRa, true
	}
	return genericOffsetCategory(offset), true
}

// khmerConsonantEnd is the last code point in the contiguous Khmer
// consonant run starting at U+1780.
const khmerConsonantEnd = 0x17A2

// lookupKhmer classifies a code point known to lie in a Khmer block.
func lookupKhmer(r rune) IndicCategory {
	switch {
	case r == 0x179A:
		return CatRa // ro: the Khmer Ra that Coeng+Ra is built from
	case r >= 0x1780 && r <= khmerConsonantEnd:
		return CatC
	case r >= 0x17A3 && r <= 0x17B3:
		return CatV // independent vowels (including the two deprecated slots)
	case r == 0x17B4 || r == 0x17B5:
		return CatX // invisible inherent-vowel signs
	case r >= 0x17B6 && r <= 0x17C5:
		return CatM // dependent vowel signs
	case r == 0x17C6 || r == 0x17C7:
		return CatSM // nikahit, reahmuk
	case r == 0x17C8:
		return CatX // yuukaleapintu
	case r == 0x17C9 || r == 0x17CA:
		return CatRS // register shifters
	case r == 0x17CC:
		return CatRa // robat: reordered like Coeng+Ra
	case r == 0x17D2:
		return CatCoeng // virama-equivalent forming a subjoined consonant
	case r == 0x17CB || r == 0x17CD || r == 0x17CE || r == 0x17CF ||
		r == 0x17D0 || r == 0x17D1 || r == 0x17D3 || r == 0x17DD:
		return CatA // tone/stress marks
	default:
		return CatX // punctuation, digits, Khmer symbols block, etc.
	}
}

// isKhmerVPre reports whether r is one of the Khmer dependent vowel
// signs that must be moved to the front of the syllable during
// reordering (the pre-base matra analogue for Khmer, §4 Khmer notes).
func isKhmerVPre(r rune) bool {
	switch r {
	case 0x17C1, 0x17C2, 0x17C3, 0x17C4, 0x17C5: // E, AI-family signs before O/AU compositions
		return true
	}
	return false
}

// khmerMatraPosition gives the table position for a Khmer dependent
// vowel sign, mirroring genericMatraPosition's role for the Brahmic
// scripts: the signs khmerReorder physically relocates to the front
// (isKhmerVPre) carry PRE_M, the rest split between ABOVE_M, BELOW_M and
// POST_M by their conventional rendering position.
func khmerMatraPosition(r rune) IndicPosition {
	if isKhmerVPre(r) {
		return PosPreM
	}
	switch {
	case r == 0x17B6 || r == 0x17BE:
		return PosPostM
	case r >= 0x17B7 && r <= 0x17B9:
		return PosAboveM
	case r >= 0x17BA && r <= 0x17BD:
		return PosBelowM
	case r == 0x17BF || r == 0x17C0:
		return PosAboveM
	default:
		return PosPostM
	}
}
