package app

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cli-assistant/internal/chat"
	"github.com/treykane/cli-assistant/internal/segment"
)

// writeClipboard is the system clipboard writer. Tests replace it.
var writeClipboard = clipboard.WriteAll

// copyLastReply copies the full text of the latest assistant message.
func (m *Model) copyLastReply() tea.Cmd {
	last := m.conversation.LastAssistant()
	if last == nil || last.Content == "" {
		m.status = "No reply to copy"
		return nil
	}
	if err := writeClipboard(last.Content); err != nil {
		m.setStatusError("Clipboard copy failed", err)
		return nil
	}
	m.copied = true
	m.status = fmt.Sprintf("Copied reply (%d chars)", len([]rune(last.Content)))
	m.refreshChat()
	return m.scheduleCopiedReset()
}

// copyCodeBlock copies the n-th code block (1-based) of the conversation. The
// numbering matches the labels drawn above each block.
func (m *Model) copyCodeBlock(n int) tea.Cmd {
	blocks := conversationCodeBlocks(m.conversation.Messages)
	if n < 1 || n > len(blocks) {
		if len(blocks) == 0 {
			m.status = "No code blocks to copy"
		} else {
			m.status = fmt.Sprintf("No code block #%d (have %d)", n, len(blocks))
		}
		return nil
	}
	block := blocks[n-1]
	if err := writeClipboard(block.Content); err != nil {
		m.setStatusError("Clipboard copy failed", err, "block", n)
		return nil
	}
	m.copied = true
	m.status = fmt.Sprintf("Copied code block #%d (%s)", n, block.Language)
	m.refreshChat()
	return m.scheduleCopiedReset()
}

// copyLastCodeBlock copies the most recent code block.
func (m *Model) copyLastCodeBlock() tea.Cmd {
	blocks := conversationCodeBlocks(m.conversation.Messages)
	if len(blocks) == 0 {
		m.status = "No code blocks to copy"
		return nil
	}
	return m.copyCodeBlock(len(blocks))
}

// conversationCodeBlocks lists every code segment of messages in display order.
func conversationCodeBlocks(messages []chat.Message) []segment.Segment {
	var blocks []segment.Segment
	for _, msg := range messages {
		blocks = append(blocks, msg.CodeBlocks()...)
	}
	return blocks
}
