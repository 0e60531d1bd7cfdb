package shape

// Script identifies which Indic-family script a syllable run belongs to.
type Script uint8

const (
	ScriptDevanagari Script = iota
	ScriptBengali
	ScriptGujarati
	ScriptGurmukhi
	ScriptKannada
	ScriptMalayalam
	ScriptOriya
	ScriptTamil
	ScriptTelugu
	ScriptKhmer
)

func (s Script) String() string {
	names := [...]string{
		"Devanagari", "Bengali", "Gujarati", "Gurmukhi", "Kannada",
		"Malayalam", "Oriya", "Tamil", "Telugu", "Khmer",
	}
	if int(s) < len(names) {
		return names[s]
	}
	return "?"
}

// ScriptConfig is the per-script behavior table the reference source
// keeps as a flat array of structs (indic_config_t); it drives Reph
// placement/formation mode and base-consonant selection side.
type ScriptConfig struct {
	Virama   rune
	RephPos  RephPosition
	RephMode RephMode
	BasePos  BasePos
}

// scriptConfigs mirrors the reference source's indic_config[] table.
// Khmer's virama-equivalent is Coeng (U+17D2); Khmer has no Reph concept
// at all, so its RephMode/RephPos entries are unused (rephPrefixLength
// special-cases Khmer directly) but filled in with harmless defaults
// rather than left as Go zero values that could be mistaken for a real
// Devanagari-shaped configuration.
var scriptConfigs = map[Script]ScriptConfig{
	ScriptDevanagari: {Virama: 0x094D, RephPos: RephBeforePostscript, RephMode: RephModeImplicit, BasePos: BaseLast},
	ScriptBengali:    {Virama: 0x09CD, RephPos: RephAfterSubscript, RephMode: RephModeImplicit, BasePos: BaseLast},
	ScriptGurmukhi:   {Virama: 0x0A4D, RephPos: RephBeforeSubscript, RephMode: RephModeImplicit, BasePos: BaseLast},
	ScriptGujarati:   {Virama: 0x0ACD, RephPos: RephBeforePostscript, RephMode: RephModeImplicit, BasePos: BaseLast},
	ScriptOriya:      {Virama: 0x0B4D, RephPos: RephAfterMain, RephMode: RephModeImplicit, BasePos: BaseLast},
	ScriptTamil:      {Virama: 0x0BCD, RephPos: RephAfterPostscript, RephMode: RephModeImplicit, BasePos: BaseLast},
	ScriptTelugu:     {Virama: 0x0C4D, RephPos: RephAfterPostscript, RephMode: RephModeExplicit, BasePos: BaseLast},
	ScriptKannada:    {Virama: 0x0CCD, RephPos: RephAfterPostscript, RephMode: RephModeImplicit, BasePos: BaseLast},
	ScriptMalayalam:  {Virama: 0x0D4D, RephPos: RephAfterMain, RephMode: RephModeLogRepha, BasePos: BaseLast},
	ScriptKhmer:      {Virama: 0x17D2, RephPos: RephAfterMain, RephMode: RephModeImplicit, BasePos: BaseFirst},
}

func configFor(s Script) ScriptConfig { return scriptConfigs[s] }

// scriptTags mirrors the closed set of OpenType script tags §6 names.
var scriptTags = map[Script]Tag{
	ScriptDevanagari: MakeTag('d', 'e', 'v', '2'),
	ScriptBengali:    MakeTag('b', 'n', 'g', '2'),
	ScriptGujarati:   MakeTag('g', 'j', 'r', '2'),
	ScriptGurmukhi:   MakeTag('g', 'u', 'r', '2'),
	ScriptKannada:    MakeTag('k', 'n', 'd', '2'),
	ScriptMalayalam:  MakeTag('m', 'l', 'm', '2'),
	ScriptOriya:      MakeTag('o', 'r', 'y', '2'),
	ScriptTamil:      MakeTag('t', 'm', 'l', '2'),
	ScriptTelugu:     MakeTag('t', 'e', 'l', '2'),
	ScriptKhmer:      MakeTag('k', 'h', 'm', 'r'),
}

// ScriptTag returns the OpenType script tag a FeaturePlanner should
// report as chosen for s (§6's "get_chosen_script(idx)" collaborator).
func ScriptTag(s Script) Tag { return scriptTags[s] }

// oldIndicTagBit mirrors the reference source's OLD_INDIC_TAG trick of
// OR-ing a high bit onto a four-letter Unicode script code ('Deva') to
// get the old-spec OpenType tag ('deva') that selects the old-spec
// halant-ordering behavior (§4.4.3). Only the nine Brahmic scripts have
// such an old-tag form; the new-spec tags ScriptTag returns ('dev2', ...)
// and Khmer's 'khmr' are not old-spec tags.
const oldIndicTagBit = 0x20000000

// isOldSpecTag reports whether tag selects the old-spec shaping variant.
func isOldSpecTag(tag Tag) bool {
	for _, code := range []string{"Deva", "Beng", "Gujr", "Guru", "Knda", "Mlym", "Orya", "Taml", "Telu"} {
		if tag == MakeTag(code[0], code[1], code[2], code[3])|oldIndicTagBit {
			return true
		}
	}
	return false
}
