package shape

import (
	"os"
	"strings"
	"sync"
)

// Options holds the one piece of runtime configuration the reference
// implementation exposes: a Uniscribe-compatibility switch, read once
// from an environment variable (§5, §9). HarfBuzz stores this behind a
// lazily-initialized union/bitfield singleton guarded against concurrent
// first-use (indic_options_t / indic_options() in the reference source);
// Go's equivalent is a sync.Once-guarded cache.
type Options struct {
	UniscribeBugCompatible bool
}

var (
	optionsOnce  sync.Once
	optionsCache Options
)

// DefaultOptions returns the process-wide default Options, computed once
// from the HB_OT_INDIC_OPTIONS environment variable (a case-sensitive
// substring match on "uniscribe-bug-compatible", matching the reference
// source's indic_options_init). Subsequent calls return the cached
// value; the variable is never re-read.
func DefaultOptions() Options {
	optionsOnce.Do(func() {
		v := os.Getenv("HB_OT_INDIC_OPTIONS")
		optionsCache = Options{
			UniscribeBugCompatible: strings.Contains(v, "uniscribe-bug-compatible"),
		}
	})
	return optionsCache
}
