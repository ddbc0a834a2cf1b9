package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treykane/cli-assistant/internal/chat"
	"github.com/treykane/cli-assistant/internal/config"
)

// sendMessage posts the composer text as a user message and schedules the
// canned reply after the typing delay. Blank input is ignored.
func (m *Model) sendMessage() tea.Cmd {
	prompt := m.input.Value()
	if strings.TrimSpace(prompt) == "" {
		return nil
	}
	if m.busy() {
		m.status = "Wait for the current reply to finish"
		return nil
	}

	msg := chat.NewMessage(chat.RoleUser, prompt, m.now())
	msg.Attachment = m.attachment
	m.attachment = nil
	m.conversation.Append(msg)
	m.input.Reset()

	m.replySeq++
	seq := m.replySeq
	m.waiting = true
	m.pendingReply = m.responder.Reply(prompt)
	m.status = "Assistant is typing..."
	m.refreshChat()
	appLog.Debug("message sent", "conversation", m.conversation.ID, "runes", len([]rune(prompt)))

	start := func() tea.Msg { return replyStartMsg{seq: seq} }
	if delay := m.typingDelay(); delay > 0 {
		return tea.Batch(m.spinner.Tick, tea.Tick(delay, func(time.Time) tea.Msg { return start() }))
	}
	return tea.Batch(m.spinner.Tick, start)
}

// flushReply completes any in-flight reply at once and invalidates its timers.
func (m *Model) flushReply() {
	m.replySeq++
	if m.waiting {
		m.conversation.Append(chat.NewMessage(chat.RoleAssistant, m.pendingReply, m.now()))
		m.waiting = false
		m.pendingReply = ""
	}
	if m.stream != nil {
		m.setStreamingContent(m.stream.Full())
		m.stream = nil
	}
}

// archiveConversation moves the active conversation into history when the
// user has said something in it.
func (m *Model) archiveConversation() {
	if m.conversation.HasUserMessages() {
		m.history.Add(m.conversation)
	}
}

// newChat archives the current conversation and starts a fresh one.
func (m *Model) newChat() tea.Cmd {
	m.flushReply()
	m.archiveConversation()
	m.conversation = chat.NewConversation(m.now())
	m.attachment = nil
	m.promptIndex = 0
	m.input.Reset()
	m.status = "New chat"
	return m.openChat()
}

// loadConversation makes a history entry the active conversation.
func (m *Model) loadConversation(id string) tea.Cmd {
	if id == m.conversation.ID {
		return m.openChat()
	}
	m.flushReply()
	loaded := m.history.Remove(id)
	if loaded == nil {
		m.status = "Conversation not found"
		return nil
	}
	m.archiveConversation()
	m.conversation = loaded
	m.attachment = nil
	m.status = "Opened: " + loaded.Title
	return m.openChat()
}

// openChat switches to the chat page with the composer focused.
func (m *Model) openChat() tea.Cmd {
	m.page = pageChat
	m.focus = focusMain
	m.mode = modeNormal
	m.refreshChat()
	m.viewport.GotoBottom()
	return m.input.Focus()
}

// toggleLike flips the like mark on the last assistant message.
func (m *Model) toggleLike() {
	if m.stream != nil {
		m.status = "Wait for the reply to finish"
		return
	}
	last := m.conversation.LastAssistant()
	if last == nil {
		m.status = "No reply to like"
		return
	}
	last.Liked = !last.Liked
	if last.Liked {
		m.status = "Marked reply as helpful"
	} else {
		m.status = "Like removed"
	}
	m.refreshChat()
}

// toggleRecording flips the voice-input placeholder flag.
func (m *Model) toggleRecording() {
	m.recording = !m.recording
	if m.recording {
		m.status = "Recording... press ctrl+r to stop"
	} else {
		m.status = "Voice input is a demo, nothing was recorded"
	}
}

// startAttach opens the attachment path prompt.
func (m *Model) startAttach() tea.Cmd {
	m.mode = modeAttach
	m.input.Blur()
	m.pathInput.Reset()
	m.pathInput.Focus()
	m.status = "Enter a file path, esc to cancel"
	return textinput.Blink
}

// confirmAttach stats the entered path and stages it for the next message.
func (m *Model) confirmAttach() tea.Cmd {
	path := m.pathInput.Value()
	m.mode = modeNormal
	m.pathInput.Blur()
	cmd := m.input.Focus()

	if strings.TrimSpace(path) == "" {
		m.status = "Attach cancelled"
		return cmd
	}
	att, err := chat.NewAttachment(path)
	if err != nil {
		m.setStatusError("Attach failed", err, "path", path)
		return cmd
	}
	m.attachment = att
	m.status = "Attached " + att.Label()
	m.refreshChat()
	return cmd
}

// cancelAttach closes the path prompt without attaching anything.
func (m *Model) cancelAttach() tea.Cmd {
	m.mode = modeNormal
	m.pathInput.Blur()
	m.status = "Attach cancelled"
	return m.input.Focus()
}

// clearAttachment drops the staged attachment.
func (m *Model) clearAttachment() {
	if m.attachment == nil {
		return
	}
	m.attachment = nil
	m.status = "Attachment removed"
	m.refreshChat()
}

// cyclePrompt fills the composer with the next example prompt. It only
// applies while the welcome screen is shown.
func (m *Model) cyclePrompt() {
	if !m.conversation.IsFresh() || len(chat.ExamplePrompts) == 0 {
		return
	}
	prompt := chat.ExamplePrompts[m.promptIndex%len(chat.ExamplePrompts)]
	m.promptIndex++
	m.input.SetValue(prompt.Text)
	m.status = "Press enter to send"
	m.refreshChat()
}

// toggleTheme switches between dark and light and persists the choice.
func (m *Model) toggleTheme() {
	next := config.ThemeDark
	if m.dark {
		next = config.ThemeLight
	}
	m.setTheme(next)
}

func (m *Model) setTheme(theme string) {
	cfg := m.cfg
	cfg.Theme = theme
	if !m.updateConfig(cfg) {
		return
	}
	m.status = "Theme: " + theme
}

// cycleProfileSetting moves the selected profile setting by delta.
func (m *Model) cycleProfileSetting(delta int) {
	cfg := m.cfg
	switch m.profileCursor {
	case profileRowLanguage:
		cfg.Language = cycleValue(config.Languages, cfg.Language, delta)
		if m.updateConfig(cfg) {
			m.status = "Language: " + config.LanguageName(cfg.Language)
		}
	case profileRowTheme:
		cfg.Theme = cycleValue(config.Themes, cfg.Theme, delta)
		if m.updateConfig(cfg) {
			m.status = "Theme: " + cfg.Theme
		}
	}
}

// updateConfig saves cfg and applies it. It reports false when saving failed;
// the running settings are left unchanged in that case.
func (m *Model) updateConfig(cfg config.Config) bool {
	if m.saveConfig != nil {
		if err := m.saveConfig(m.cfg, cfg); err != nil {
			m.setStatusError("Save settings failed", err)
			return false
		}
	}
	m.applyConfig(cfg)
	return true
}

// applyConfig swaps in cfg and rebuilds whatever depends on the theme.
func (m *Model) applyConfig(cfg config.Config) {
	themeChanged := cfg.Theme != m.cfg.Theme
	m.cfg = cfg
	if themeChanged {
		m.applyTheme(cfg.Theme)
		clear(m.pageCache)
	}
	m.refreshPage()
}

func cycleValue(values []string, current string, delta int) string {
	if len(values) == 0 {
		return current
	}
	idx := 0
	for i, v := range values {
		if v == current {
			idx = i
			break
		}
	}
	idx = (idx + delta) % len(values)
	if idx < 0 {
		idx += len(values)
	}
	return values[idx]
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, one)
	}
	return fmt.Sprintf("%d %s", n, many)
}
