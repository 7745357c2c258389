// Package libname strips a file-name pattern (".bam" by default) from library
// identifiers before they are written out.
package libname

import (
	"slices"
	"strings"

	"ichorkit/internal/params"
	"ichorkit/internal/seg"
)

// DefaultPattern is removed when no pattern is configured.
const DefaultPattern = ".bam"

// Strip removes every literal occurrence of pattern from name.
func Strip(name, pattern string) string {
	if pattern == "" {
		return name
	}
	return strings.ReplaceAll(name, pattern, "")
}

// Params returns a copy of recs with normalized libraries.
func Params(recs []params.Record, pattern string) []params.Record {
	out := slices.Clone(recs)
	for i := range out {
		out[i].Library = Strip(out[i].Library, pattern)
	}
	return out
}

// Segments returns a copy of recs with normalized libraries.
func Segments(recs []seg.Record, pattern string) []seg.Record {
	out := slices.Clone(recs)
	for i := range out {
		out[i].Library = Strip(out[i].Library, pattern)
	}
	return out
}
