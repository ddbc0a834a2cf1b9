package segment

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func join(input string, segments []Segment) string {
	var b strings.Builder
	for _, s := range segments {
		b.WriteString(input[s.Start:s.End])
	}
	return b.String()
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Segment
	}{
		{
			name:  "empty",
			input: "",
			want:  nil,
		},
		{
			name:  "plain text",
			input: "hello world",
			want:  []Segment{{Kind: Text, Content: "hello world", Start: 0, End: 11}},
		},
		{
			name:  "tagged fence",
			input: "```python\nprint(1)\n```",
			want:  []Segment{{Kind: Code, Language: "python", Content: "print(1)", Start: 0, End: 22}},
		},
		{
			name:  "untagged fence",
			input: "```\nraw\n```",
			want:  []Segment{{Kind: Code, Language: "text", Content: "raw", Start: 0, End: 11}},
		},
		{
			name:  "text around fence",
			input: "before ```js\ncode()\n``` after",
			want: []Segment{
				{Kind: Text, Content: "before ", Start: 0, End: 7},
				{Kind: Code, Language: "js", Content: "code()", Start: 7, End: 23},
				{Kind: Text, Content: " after", Start: 23, End: 29},
			},
		},
		{
			name:  "unterminated fence",
			input: "unterminated ```js\ncode()",
			want:  []Segment{{Kind: Text, Content: "unterminated ```js\ncode()", Start: 0, End: 25}},
		},
		{
			name:  "tag followed by space is not a fence",
			input: "```js x\ncode()\n```",
			want:  []Segment{{Kind: Text, Content: "```js x\ncode()\n```", Start: 0, End: 18}},
		},
		{
			name:  "empty body",
			input: "```go\n```",
			want:  []Segment{{Kind: Code, Language: "go", Content: "", Start: 0, End: 9}},
		},
		{
			name:  "first closing fence wins",
			input: "```md\na ``` b\n```",
			want: []Segment{
				{Kind: Code, Language: "md", Content: "a", Start: 0, End: 11},
				{Kind: Text, Content: " b\n```", Start: 11, End: 17},
			},
		},
		{
			name:  "adjacent fences",
			input: "```a\n1\n``````b\n2\n```",
			want: []Segment{
				{Kind: Code, Language: "a", Content: "1", Start: 0, End: 10},
				{Kind: Code, Language: "b", Content: "2", Start: 10, End: 20},
			},
		},
		{
			name:  "body whitespace trimmed",
			input: "x\n```sh\n\n  ls -la  \n\n```\n",
			want: []Segment{
				{Kind: Text, Content: "x\n", Start: 0, End: 2},
				{Kind: Code, Language: "sh", Content: "ls -la", Start: 2, End: 24},
				{Kind: Text, Content: "\n", Start: 24, End: 25},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.input, join(tt.input, got))
		})
	}
}

func TestSplitTextSegmentIsStable(t *testing.T) {
	input := "intro\n```go\nfmt.Println()\n```\noutro line\nsecond"
	for _, s := range Split(input) {
		if s.IsCode() {
			continue
		}
		again := Split(s.Content)
		require.Len(t, again, 1)
		assert.Equal(t, Text, again[0].Kind)
		assert.Equal(t, s.Content, again[0].Content)
	}
}

func TestSplitMultilineBody(t *testing.T) {
	input := "Here:\n```python\ndef f():\n    return 1\n\nprint(f())\n```\nDone."
	got := Split(input)

	require.Len(t, got, 3)
	assert.Equal(t, "Here:\n", got[0].Content)
	assert.Equal(t, "python", got[1].Language)
	assert.Equal(t, "def f():\n    return 1\n\nprint(f())", got[1].Content)
	assert.Equal(t, "\nDone.", got[2].Content)
}

func TestSplitTrimsBodyEdges(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "ascii space", body: "  x := 1 \n", want: "x := 1"},
		{name: "byte order mark", body: "\uFEFFx := 1\uFEFF\n", want: "x := 1"},
		{name: "nbsp and ideographic space", body: "\u00A0x\u3000\n", want: "x"},
		{name: "line separator", body: "\u2028x\u2029", want: "x"},
		{name: "nel is kept", body: "\u0085x\u0085", want: "\u0085x\u0085"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks := CodeBlocks("```go\n" + tt.body + "```")
			require.Len(t, blocks, 1)
			assert.Equal(t, tt.want, blocks[0].Content)
		})
	}
}

func TestCodeBlocks(t *testing.T) {
	input := "a\n```go\nx := 1\n```\nb\n```\ny\n```"
	blocks := CodeBlocks(input)

	require.Len(t, blocks, 2)
	assert.Equal(t, "go", blocks[0].Language)
	assert.Equal(t, "x := 1", blocks[0].Content)
	assert.Equal(t, DefaultLanguage, blocks[1].Language)
	assert.Empty(t, CodeBlocks("no code here"))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "text", Text.String())
	assert.Equal(t, "code", Code.String())
	assert.Equal(t, "unknown", Kind(9).String())
}

func FuzzSplitReconstructsInput(f *testing.F) {
	seeds := []string{
		"",
		"hello",
		"```go\nx\n```",
		"a ```\nb``` c ```d\n",
		"```\n```\n```\n```",
		"```js\r\nwindows\r\n```",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		got := Split(input)
		if input == "" && len(got) != 0 {
			t.Fatalf("expected no segments for empty input, got %d", len(got))
		}
		if joined := join(input, got); joined != input {
			t.Fatalf("segments do not reconstruct input: %q != %q", joined, input)
		}
		prevEnd := 0
		for i, s := range got {
			if s.Start != prevEnd {
				t.Fatalf("segment %d starts at %d, want %d", i, s.Start, prevEnd)
			}
			if s.End <= s.Start {
				t.Fatalf("segment %d is empty: [%d,%d)", i, s.Start, s.End)
			}
			if i > 0 && s.Kind == Text && got[i-1].Kind == Text {
				t.Fatalf("segments %d and %d are both text", i-1, i)
			}
			prevEnd = s.End
		}
	})
}

func TestLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: []string{""}},
		{name: "single", input: "one", want: []string{"one"}},
		{name: "two", input: "one\ntwo", want: []string{"one", "two"}},
		{name: "trailing break", input: "one\n", want: []string{"one", ""}},
		{name: "blank lines", input: "\n\n", want: []string{"", "", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(Lines(tt.input))
			assert.Equal(t, tt.want, got)
			assert.Len(t, got, strings.Count(tt.input, "\n")+1)
			assert.Equal(t, LineCount(tt.input), len(got))
			assert.Equal(t, tt.input, strings.Join(got, "\n"))
		})
	}
}

func TestLinesIsRestartable(t *testing.T) {
	seq := Lines("a\nb\nc")
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
}

func TestLinesStopsEarly(t *testing.T) {
	var seen []string
	for line := range Lines("a\nb\nc") {
		seen = append(seen, line)
		if line == "b" {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestSegmentLines(t *testing.T) {
	s := Split("first\nsecond")[0]
	assert.Equal(t, []string{"first", "second"}, slices.Collect(s.Lines()))
}
