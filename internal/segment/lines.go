package segment

import (
	"iter"
	"strings"
)

// Lines yields the lines of text split on '\n'. A string with k line breaks
// yields k+1 lines, so joining the lines with "\n" reproduces text. The
// sequence is computed lazily and can be ranged over any number of times.
func Lines(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := text
		for {
			i := strings.IndexByte(rest, '\n')
			if i < 0 {
				yield(rest)
				return
			}
			if !yield(rest[:i]) {
				return
			}
			rest = rest[i+1:]
		}
	}
}

// LineCount returns the number of lines Lines would yield for text.
func LineCount(text string) int {
	return strings.Count(text, "\n") + 1
}
