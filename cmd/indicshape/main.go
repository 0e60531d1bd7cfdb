// Command indicshape is a diagnostic tool for the shape package: it runs
// a line of text through categorization, segmentation, initial reordering
// and final reordering, printing per-glyph state after each phase. It
// never loads a font or applies GSUB — the two reordering phases run
// back-to-back with no-op pauses, which is enough to exercise the core's
// own logic in isolation.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/inditext/shaper/shape"
)

func main() {
	script := flag.String("script", "devanagari", "script name: devanagari, bengali, gujarati, gurmukhi, kannada, malayalam, oriya, tamil, telugu, khmer")
	text := flag.String("text", "", "UTF-8 text to shape; reads stdin if empty")
	flag.Parse()

	s, ok := parseScript(*script)
	if !ok {
		log.Fatalf("unknown script %q", *script)
	}

	input := *text
	if input == "" {
		data, err := io.ReadAll(bufio.NewReader(os.Stdin))
		if err != nil {
			log.Fatalf("reading stdin: %v", err)
		}
		input = string(data)
	}

	buf := shape.NewBuffer(glyphsFromString(input))

	shape.Categorize(buf, s)
	syllables := shape.FindSyllables(buf)
	fmt.Println("-- after categorize + segment --")
	dump(buf, syllables)

	planner := shape.NewDemoPlanner(buf, shape.ScriptTag(s))
	shape.InitialReordering(buf, syllables, s, planner, shape.DefaultOptions())
	fmt.Println("-- after initial reorder --")
	dump(buf, syllables)

	shape.FinalReordering(buf, syllables, s, shape.DefaultOptions())
	fmt.Println("-- after final reorder --")
	dump(buf, syllables)
}

func parseScript(name string) (shape.Script, bool) {
	switch name {
	case "devanagari":
		return shape.ScriptDevanagari, true
	case "bengali":
		return shape.ScriptBengali, true
	case "gujarati":
		return shape.ScriptGujarati, true
	case "gurmukhi":
		return shape.ScriptGurmukhi, true
	case "kannada":
		return shape.ScriptKannada, true
	case "malayalam":
		return shape.ScriptMalayalam, true
	case "oriya":
		return shape.ScriptOriya, true
	case "tamil":
		return shape.ScriptTamil, true
	case "telugu":
		return shape.ScriptTelugu, true
	case "khmer":
		return shape.ScriptKhmer, true
	}
	return 0, false
}

func glyphsFromString(s string) []shape.Glyph {
	runes := []rune(s)
	glyphs := make([]shape.Glyph, len(runes))
	for i, r := range runes {
		glyphs[i] = shape.Glyph{Codepoint: r, Cluster: i}
	}
	return glyphs
}

func dump(buf *shape.Buffer, syllables []shape.Syllable) {
	for _, syl := range syllables {
		fmt.Printf("syllable [%d,%d) kind=%s\n", syl.Start, syl.End, syl.Kind)
		for i := syl.Start; i < syl.End; i++ {
			g := buf.Info[i]
			fmt.Printf("  %d: U+%04X cat=%s pos=%s mask=%#x cluster=%d\n",
				i, g.Codepoint, g.Cat, g.Pos, g.Mask, g.Cluster)
		}
	}
}
