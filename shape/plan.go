package shape

import "github.com/go-text/typesetting/font"

// Shape drives the full external-interface contract from §6 against one
// script run: it registers the feature plan (with its GSUB pauses) on
// planner, then lets the caller's own GSUB stage actually execute that
// plan — this function only builds the plan and exposes the pause
// callbacks; it never applies a GSUB lookup itself.
//
// face is accepted but never consulted, matching §6's "face/font
// handles are received but not consulted in the core" — it is typed as
// *font.Face (github.com/go-text/typesetting) purely to give callers a
// realistic handle to pass through, not because this package reads it.
func Shape(buf *Buffer, script Script, planner FeaturePlanner, face *font.Face) {
	opts := DefaultOptions()
	_ = face

	var syllables []Syllable

	initial := func(b *Buffer) {
		Categorize(b, script)
		syllables = FindSyllables(b)
		InitialReordering(b, syllables, script, planner, opts)
	}
	final := func(b *Buffer) {
		FinalReordering(b, syllables, script, opts)
	}

	OverrideFeatures(planner, opts)
	PlanFeatures(planner, initial, final)
}

// RunPipeline runs the whole categorize → segment → initial-reorder →
// final-reorder sequence directly, with no intervening GSUB application
// (i.e. as if the font substituted nothing). It exists for callers — and
// this package's own tests — that want to exercise the reordering logic
// itself without standing up a FeaturePlanner and a real GSUB stage; it
// is what §6's two pause callbacks would run back-to-back if GSUB were
// a no-op.
func RunPipeline(buf *Buffer, script Script) []Syllable {
	opts := DefaultOptions()
	planner := NewDemoPlanner(buf, ScriptTag(script))
	Categorize(buf, script)
	syllables := FindSyllables(buf)
	InitialReordering(buf, syllables, script, planner, opts)
	FinalReordering(buf, syllables, script, opts)
	return syllables
}

// DetectScript returns the script with the most glyphs in buf's
// code points, defaulting to Devanagari for an empty or script-less
// buffer — a simplified stand-in for detectIndicScript's font/script-tag
// based selection in the teacher lineage, since script selection itself
// is out of this core's scope (§1) and callers are expected to already
// know which script they are shaping.
func DetectScript(buf *Buffer) Script {
	counts := map[Script]int{}
	for _, g := range buf.Info {
		if s, ok := ScriptOfCodepoint(g.Codepoint); ok {
			counts[s]++
		}
	}
	best := ScriptDevanagari
	bestCount := -1
	for s, c := range counts {
		if c > bestCount {
			best, bestCount = s, c
		}
	}
	return best
}
