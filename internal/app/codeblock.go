package app

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/lipgloss"

	"github.com/treykane/cli-assistant/internal/segment"
)

// renderCodeBlock draws a code segment as a labelled, highlighted block. The
// label carries the block number used by the alt+N copy shortcut.
func (m *Model) renderCodeBlock(block segment.Segment, number, width int) string {
	inner := max(1, width-m.styles.codeBlock.GetHorizontalFrameSize())

	label := fmt.Sprintf(" #%d %s ", number, block.Language)
	hint := ""
	if number <= 9 {
		hint = fmt.Sprintf(" alt+%d copy ", number)
	}
	gap := max(1, inner-lipgloss.Width(label)-lipgloss.Width(hint))
	header := m.styles.codeHeader.Render(truncate(label+strings.Repeat(" ", gap)+hint, inner))

	highlighted := highlightCode(block.Content, block.Language, m.dark)
	lines := make([]string, 0, segment.LineCount(highlighted))
	for line := range segment.Lines(highlighted) {
		lines = append(lines, truncate(line, inner))
	}
	body := m.styles.codeBlock.Width(width).Render(strings.Join(lines, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, m.styles.codeBlock.Width(width).Render(header), body)
}

// highlightCode colors code for a 256-color terminal. Unknown languages are
// detected from the content; on any failure the code is returned unchanged.
func highlightCode(code, language string, dark bool) string {
	var lexer chroma.Lexer
	if language != segment.DefaultLanguage {
		lexer = lexers.Get(language)
	}
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	styleName := "monokai"
	if !dark {
		styleName = "github"
	}
	style := chromastyles.Get(styleName)
	if style == nil {
		style = chromastyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}
	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	out := buf.String()
	// Lexers append a final newline; fold it away but keep trailing escapes.
	if want := segment.LineCount(code); segment.LineCount(out) > want {
		lines := strings.Split(out, "\n")
		out = strings.Join(lines[:want], "\n") + strings.Join(lines[want:], "")
	}
	return out
}
