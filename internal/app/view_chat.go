package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/treykane/cli-assistant/internal/chat"
	"github.com/treykane/cli-assistant/internal/segment"
)

// renderTranscript draws every message of the active conversation, followed
// by the welcome prompts on a fresh conversation or the typing indicator
// while a reply is pending.
func (m *Model) renderTranscript(width int) string {
	if width <= 0 {
		return ""
	}
	blocks := make([]string, 0, len(m.conversation.Messages)+1)
	codeNumber := 0
	last := len(m.conversation.Messages) - 1
	for i, msg := range m.conversation.Messages {
		streaming := i == last && m.stream != nil
		blocks = append(blocks, m.renderMessage(msg, width, &codeNumber, streaming))
	}
	if m.conversation.IsFresh() && !m.busy() {
		blocks = append(blocks, m.renderWelcome(width))
	}
	if m.waiting {
		blocks = append(blocks, m.styles.muted.Render(m.spinner.View()+" Assistant is typing..."))
	}
	return strings.Join(blocks, "\n\n")
}

// renderWelcome lists the example prompts offered on a fresh conversation.
func (m *Model) renderWelcome(width int) string {
	lines := []string{
		m.styles.heading.Render("How can I help you today?"),
		m.styles.muted.Render("Pick a prompt with ctrl+p or type your own."),
		"",
	}
	next := m.promptIndex % max(1, len(chat.ExamplePrompts))
	for i, p := range chat.ExamplePrompts {
		line := fmt.Sprintf("%s  %s", p.Icon, p.Text)
		if i == next {
			line = m.styles.accent.Render("› " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, truncate(line, width))
	}
	card := m.styles.card.Render(strings.Join(lines, "\n"))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

// renderMessage draws one message bubble. User messages are right-aligned,
// assistant messages left-aligned. codeNumber is advanced for every code
// block so the labels match the copy shortcuts.
func (m *Model) renderMessage(msg chat.Message, width int, codeNumber *int, streaming bool) string {
	bubbleWidth := min(width, m.bubbleWidth())
	bubble := m.styles.assistantBubble
	align := lipgloss.Left
	if msg.Role == chat.RoleUser {
		bubble = m.styles.userBubble
		align = lipgloss.Right
	}

	parts := []string{m.renderMessageHeader(msg, streaming)}
	if msg.Attachment != nil {
		parts = append(parts, m.renderAttachmentChip(msg.Attachment))
	}

	textWidth := max(1, bubbleWidth-bubble.GetHorizontalFrameSize())
	for _, seg := range msg.Segments() {
		if seg.IsCode() {
			*codeNumber++
			parts = append(parts, m.renderCodeBlock(seg, *codeNumber, bubbleWidth))
			continue
		}
		text := strings.Trim(seg.Content, "\n")
		if strings.TrimSpace(text) == "" {
			continue
		}
		lineWidth := clamp(widestLine(text), 1, textWidth)
		parts = append(parts, bubble.Width(lineWidth+bubble.GetHorizontalFrameSize()).Render(wrapLines(text, lineWidth)))
	}
	if streaming {
		parts = append(parts, m.styles.muted.Render("▍"))
	}

	block := lipgloss.JoinVertical(align, parts...)
	return lipgloss.PlaceHorizontal(width, align, block)
}

// wrapLines lays out text line by line with an explicit break after every
// line except the last, wrapping long lines to width.
func wrapLines(text string, width int) string {
	var b strings.Builder
	first := true
	for line := range segment.Lines(text) {
		if !first {
			b.WriteByte('\n')
		}
		first = false
		b.WriteString(lipgloss.NewStyle().Width(width).Render(line))
	}
	return b.String()
}

func widestLine(text string) int {
	widest := 0
	for line := range segment.Lines(text) {
		widest = max(widest, lipgloss.Width(line))
	}
	return widest
}

func (m *Model) renderMessageHeader(msg chat.Message, streaming bool) string {
	header := m.styles.roleLabel.Render(msg.Role.DisplayName()) +
		m.styles.muted.Render(" · "+msg.Timestamp.Format("15:04"))
	if msg.Liked {
		header += " " + m.styles.success.Render("👍")
	}
	if streaming {
		header += m.styles.muted.Render(" · streaming")
	}
	return header
}

func (m *Model) renderAttachmentChip(att *chat.Attachment) string {
	icon := "📎"
	if att.IsImage() {
		icon = "🖼"
	}
	return m.styles.attachment.Render(icon + " " + att.Label())
}

// renderComposer draws the indicator row, a rule and the message input.
func (m *Model) renderComposer(width int) string {
	var indicator string
	switch {
	case m.mode == modeAttach:
		indicator = m.pathInput.View()
	default:
		var bits []string
		if m.recording {
			bits = append(bits, m.styles.recording.Render("● REC"))
		}
		if m.attachment != nil {
			bits = append(bits, m.renderAttachmentChip(m.attachment)+m.styles.muted.Render("  ctrl+x remove"))
		}
		if m.copied {
			bits = append(bits, m.styles.success.Render("✓ Copied"))
		}
		if len(bits) == 0 {
			bits = append(bits, m.styles.muted.Render("enter send · alt+enter newline · ctrl+o attach · ctrl+r voice"))
		}
		indicator = strings.Join(bits, "  ")
	}
	indicator = truncate(indicator, width)
	input := m.styles.inputBox.Width(width).Render(m.input.View())
	return lipgloss.JoinVertical(lipgloss.Left, indicator, input)
}
