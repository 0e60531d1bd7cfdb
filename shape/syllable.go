package shape

// Syllable Segmenter (§4.2): scans a categorized buffer and partitions
// it into syllables of the four kinds in §3.4, writing the packed
// syllable byte (rolling 4-bit serial, 4-bit kind) onto every glyph.
//
// The reference source generates this scanner from a Ragel state
// machine; that generated table was not retrieved, so the grammar is
// expressed directly as a hand-written greedy matcher over the category
// stream below. Ambiguity between a consonant-syllable match and a
// vowel/standalone match at the same start position resolves in favor
// of the consonant syllable, per §4.2's longest-match policy. Malformed
// runs that match none of the three structured grammars are never
// dropped — they are absorbed into a NonIndic syllable instead.

// Syllable is a half-open glyph range sharing one syllable value.
type Syllable struct {
	Start, End int
	Kind       SyllableKind
}

// FindSyllables scans buf and assigns every glyph its Syllable byte,
// returning the syllables found in order.
func FindSyllables(buf *Buffer) []Syllable {
	var out []Syllable
	var serial uint8
	n := buf.Len()
	pos := 0
	for pos < n {
		end, kind := matchSyllable(buf, pos)
		if end <= pos {
			// Shouldn't happen (matchSyllable always advances at least
			// one glyph), but guard against infinite loops on
			// unexpected input.
			end = pos + 1
			kind = KindNonIndic
		}
		tag := packSyllable(serial, kind)
		for i := pos; i < end; i++ {
			buf.Info[i].Syllable = tag
		}
		out = append(out, Syllable{Start: pos, End: end, Kind: kind})
		serial++
		pos = end
	}
	return out
}

func cat(buf *Buffer, i int) IndicCategory {
	if i < 0 || i >= buf.Len() {
		return CatX
	}
	return buf.Info[i].Cat
}

func isBaseConsonantCat(c IndicCategory) bool { return c == CatC || c == CatRa }

// matchSyllable finds the longest structured match starting at pos,
// trying consonant, then vowel, then standalone-cluster grammars in
// that order (consonant wins ties), falling back to a NonIndic run.
func matchSyllable(buf *Buffer, pos int) (end int, kind SyllableKind) {
	if e := matchConsonantSyllable(buf, pos); e > pos {
		return e, KindConsonant
	}
	if e := matchVowelSyllable(buf, pos); e > pos {
		return e, KindVowel
	}
	if e := matchStandaloneCluster(buf, pos); e > pos {
		return e, KindStandalone
	}
	return matchNonIndic(buf, pos), KindNonIndic
}

// consumeTail advances past the shared optional tail every structured
// syllable grammar ends with: an optional post-base matra cluster
// (M N? H?), an optional syllable modifier, and zero or more vedic/accent
// signs.
func consumeTail(buf *Buffer, idx int) int {
	n := buf.Len()
	if idx < n && cat(buf, idx) == CatM {
		idx++
		if idx < n && cat(buf, idx) == CatN {
			idx++
		}
		if idx < n && cat(buf, idx) == CatH {
			idx++
		}
	}
	if idx < n && (cat(buf, idx) == CatSM || cat(buf, idx) == CatRS) {
		idx++
	}
	for idx < n && (cat(buf, idx) == CatA || cat(buf, idx) == CatVD) {
		idx++
	}
	return idx
}

func matchConsonantSyllable(buf *Buffer, pos int) int {
	n := buf.Len()
	idx := pos
	if idx < n && cat(buf, idx) == CatRepha {
		idx++
	}
	if idx >= n || !isBaseConsonantCat(cat(buf, idx)) {
		return pos
	}
	idx++
	if idx < n && cat(buf, idx) == CatN {
		idx++
	}
	for {
		start := idx
		if idx < n && IsHalantOrCoeng(cat(buf, idx)) {
			j := idx + 1
			if j < n && IsJoiner(cat(buf, j)) {
				j++
			}
			if j < n && isBaseConsonantCat(cat(buf, j)) {
				idx = j + 1
				if idx < n && cat(buf, idx) == CatN {
					idx++
				}
				continue
			}
		}
		idx = start
		break
	}
	// Trailing halant with no following consonant: a dead consonant.
	if idx < n && IsHalantOrCoeng(cat(buf, idx)) {
		idx++
	} else if idx < n && IsJoiner(cat(buf, idx)) {
		idx++
	}
	return consumeTail(buf, idx)
}

func matchVowelSyllable(buf *Buffer, pos int) int {
	n := buf.Len()
	idx := pos
	if idx >= n || cat(buf, idx) != CatV {
		return pos
	}
	idx++
	if idx < n && cat(buf, idx) == CatN {
		idx++
	}
	if idx < n && (IsHalantOrCoeng(cat(buf, idx)) || IsJoiner(cat(buf, idx))) {
		idx++
	}
	return consumeTail(buf, idx)
}

func matchStandaloneCluster(buf *Buffer, pos int) int {
	n := buf.Len()
	idx := pos
	switch {
	case idx+2 < n && cat(buf, idx) == CatRa && cat(buf, idx+1) == CatH &&
		(cat(buf, idx+2) == CatNBSP || cat(buf, idx+2) == CatDottedCircle):
		idx += 3
	case idx < n && (cat(buf, idx) == CatNBSP || cat(buf, idx) == CatDottedCircle):
		idx++
	default:
		return pos
	}
	if idx < n && cat(buf, idx) == CatN {
		idx++
	}
	if idx < n && (IsHalantOrCoeng(cat(buf, idx)) || IsJoiner(cat(buf, idx))) {
		idx++
	}
	return consumeTail(buf, idx)
}

// matchNonIndic absorbs one or more glyphs that none of the structured
// grammars accepted, stopping as soon as a new structured match could
// start — this is what guarantees malformed input still makes forward
// progress without ever dropping a glyph.
func matchNonIndic(buf *Buffer, pos int) int {
	n := buf.Len()
	idx := pos
	for idx < n {
		if matchConsonantSyllable(buf, idx) > idx ||
			matchVowelSyllable(buf, idx) > idx ||
			matchStandaloneCluster(buf, idx) > idx {
			if idx == pos {
				// The very first glyph already starts a structured
				// match; matchSyllable would have taken it, so this
				// path only triggers on glyphs after the first.
				break
			}
			break
		}
		idx++
	}
	if idx == pos {
		idx = pos + 1
	}
	return idx
}
