package app

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cli-assistant/internal/chat"
)

// replyStartMsg fires when the typing delay for reply seq has elapsed.
type replyStartMsg struct {
	seq int
}

// streamTickMsg reveals the next chunk of reply seq.
type streamTickMsg struct {
	seq int
}

// copiedResetMsg clears the copy indicator set by copy seq.
type copiedResetMsg struct {
	seq int
}

// handleSpinnerTick advances the typing indicator. The spinner stops ticking
// once no reply is pending.
func (m *Model) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if !m.waiting {
		return m, nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	m.refreshChat()
	return m, cmd
}

// handleWindowResize records the terminal size and re-lays out the panes.
func (m *Model) handleWindowResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.updateLayout()
	return m, nil
}

// handleReplyStart turns the pending reply into a streaming assistant message.
func (m *Model) handleReplyStart(msg replyStartMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.replySeq || !m.waiting {
		return m, nil
	}
	m.waiting = false
	m.stream = chat.NewStream(m.pendingReply)
	m.pendingReply = ""
	m.conversation.Append(chat.NewMessage(chat.RoleAssistant, "", m.now()))
	m.refreshChat()
	return m, m.scheduleStreamTick(m.replySeq, 0)
}

// handleStreamTick reveals the next chunk and schedules another tick until
// the reply is complete.
func (m *Model) handleStreamTick(msg streamTickMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.replySeq || m.stream == nil {
		return m, nil
	}
	visible, done := m.stream.Advance(m.cfg.Chat.StreamChunk)
	m.setStreamingContent(visible)
	if done {
		m.stream = nil
		m.status = "Reply complete"
		m.refreshChat()
		return m, nil
	}
	m.refreshChat()
	return m, m.scheduleStreamTick(m.replySeq, m.streamInterval())
}

// handleCopiedReset drops the copy indicator unless a newer copy replaced it.
func (m *Model) handleCopiedReset(msg copiedResetMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.copiedSeq {
		return m, nil
	}
	m.copied = false
	m.refreshChat()
	return m, nil
}

func (m *Model) scheduleStreamTick(seq int, after time.Duration) tea.Cmd {
	if after <= 0 {
		return func() tea.Msg { return streamTickMsg{seq: seq} }
	}
	return tea.Tick(after, func(time.Time) tea.Msg {
		return streamTickMsg{seq: seq}
	})
}

func (m *Model) scheduleCopiedReset() tea.Cmd {
	m.copiedSeq++
	seq := m.copiedSeq
	return tea.Tick(CopiedIndicatorDuration, func(time.Time) tea.Msg {
		return copiedResetMsg{seq: seq}
	})
}

// setStreamingContent replaces the text of the message being streamed, which
// is always the last one in the conversation.
func (m *Model) setStreamingContent(content string) {
	n := len(m.conversation.Messages)
	if n == 0 {
		return
	}
	last := &m.conversation.Messages[n-1]
	if last.Role != chat.RoleAssistant {
		return
	}
	last.Content = content
}
