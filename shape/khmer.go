package shape

// Khmer has no Reph concept and its pre-base-reordering step moves a
// Coeng+Ra (or a standalone Robat, categorized as CatRa in the table)
// run to the front of the syllable rather than resolving a Reph
// position class — this file layers that onto the otherwise shared
// reorderer via small script-conditioned hooks, matching the way
// khmer.go sits alongside indic.go in the teacher lineage rather than
// duplicating the whole reorder pipeline for one script.

// khmerReorder runs Khmer's own initial-reordering pass: move a leading
// Coeng+Ra/Robat run to syllable start, then move a pre-base vowel sign
// (VPre) to syllable start as well, matching reorderKhmerSyllable in the
// teacher lineage.
func khmerReorder(buf *Buffer, start, end int) {
	for i := start + 1; i < end; i++ {
		if buf.Info[i].Cat != CatRa {
			continue
		}
		// A Robat character is Ra on its own; a Coeng+Ra pair is two
		// glyphs. Either way, everything from start of the run to i
		// (inclusive) moves to the front.
		runStart := i
		if i > start && buf.Info[i-1].Cat == CatCoeng {
			runStart = i - 1
		}
		if runStart == start {
			break
		}
		runLength := i - runStart + 1
		moveRun(buf, runStart, runLength, start+runLength)
		break
	}
	for i := start; i < end; i++ {
		if isKhmerVPre(buf.Info[i].Codepoint) && i != start {
			moveRun(buf, i, 1, start+1)
			break
		}
	}
}
