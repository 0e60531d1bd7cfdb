package shape

import "unicode"

// generalCategoryOf classifies a code point into the coarse buckets this
// package actually needs to make decisions with (letter vs. mark vs.
// other), mirroring the narrower slice of Unicode General_Category that
// the teacher's unicode_category.go exposes as GeneralCategory, trimmed
// to what §4.5.4's `init` decision and the setup_masks override chain
// (§4.6) consult.
func generalCategoryOf(r rune) GeneralCategory {
	switch {
	case unicode.IsLetter(r):
		return GCLetter
	case unicode.In(r, unicode.Mn, unicode.Mc, unicode.Me):
		return GCMark
	case unicode.IsNumber(r):
		return GCNumber
	default:
		return GCOther
	}
}

// isUnicodeMark reports whether r's General_Category is Mn, Mc or Me.
// HarfBuzz equivalent: _hb_glyph_info_is_unicode_mark.
func isUnicodeMark(r rune) bool {
	return unicode.In(r, unicode.Mn, unicode.Mc, unicode.Me)
}
