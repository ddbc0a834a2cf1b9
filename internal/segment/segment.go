// Package segment splits chat message text into prose and fenced-code
// segments for display.
//
// A fenced block opens with three backticks, an optional language tag made of
// word characters, and a newline. It closes at the first following run of three
// backticks. There is no nesting or escaping: a fence that appears inside a
// code sample ends the block early. An opening fence with no closing fence is
// left as prose.
//
// Split is a lossless partition. Every byte of the input belongs to exactly
// one segment span, so concatenating input[s.Start:s.End] over the result
// reproduces the input.
package segment

import (
	"iter"
	"regexp"
	"strings"
	"unicode"
)

// DefaultLanguage is the language reported for a fence without a tag.
const DefaultLanguage = "text"

// fencePattern captures the optional language tag and the lazily matched body.
var fencePattern = regexp.MustCompile("```(\\w+)?\\n([\\s\\S]*?)```")

// Kind tags a Segment as prose or code.
type Kind int

const (
	Text Kind = iota
	Code
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Code:
		return "code"
	default:
		return "unknown"
	}
}

// Segment is one contiguous unit of classified message content.
type Segment struct {
	Kind Kind
	// Language is set for code segments only.
	Language string
	// Content is the verbatim slice for text and the trimmed body for code.
	Content string
	// Start and End are the byte offsets of the original span in the input.
	Start int
	End   int
}

// IsCode reports whether the segment came from a fenced block.
func (s Segment) IsCode() bool {
	return s.Kind == Code
}

// Lines returns the line sequence of the segment content.
func (s Segment) Lines() iter.Seq[string] {
	return Lines(s.Content)
}

// Split partitions content into text and code segments in input order.
// Empty input yields no segments.
func Split(content string) []Segment {
	if content == "" {
		return nil
	}

	var segments []Segment
	last := 0
	for _, loc := range fencePattern.FindAllStringSubmatchIndex(content, -1) {
		start, end := loc[0], loc[1]
		if start > last {
			segments = append(segments, textSegment(content, last, start))
		}

		language := DefaultLanguage
		if loc[2] >= 0 {
			language = content[loc[2]:loc[3]]
		}
		segments = append(segments, Segment{
			Kind:     Code,
			Language: language,
			Content:  trimBody(content[loc[4]:loc[5]]),
			Start:    start,
			End:      end,
		})
		last = end
	}

	if last < len(content) {
		segments = append(segments, textSegment(content, last, len(content)))
	}
	return segments
}

// CodeBlocks returns only the code segments of content, in order.
func CodeBlocks(content string) []Segment {
	var blocks []Segment
	for _, s := range Split(content) {
		if s.IsCode() {
			blocks = append(blocks, s)
		}
	}
	return blocks
}

func textSegment(content string, start, end int) Segment {
	return Segment{
		Kind:    Text,
		Content: content[start:end],
		Start:   start,
		End:     end,
	}
}

// trimBody strips edge whitespace from a code body using the set of
// JavaScript's String.prototype.trim: unicode.IsSpace plus the byte order
// mark, minus NEL (U+0085).
func trimBody(body string) string {
	return strings.TrimFunc(body, isBodySpace)
}

func isBodySpace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}
