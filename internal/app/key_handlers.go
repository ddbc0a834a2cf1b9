package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// handleKey routes key presses: the attach prompt first, then global
// shortcuts, then the focused pane.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.mode == modeAttach {
		return m.handleAttachKey(msg)
	}
	if handled, cmd := m.handleGlobalKey(msg); handled {
		return m, cmd
	}
	if m.focus == focusSidebar {
		return m.handleSidebarKey(msg)
	}
	switch m.page {
	case pageChat:
		return m.handleChatKey(msg)
	case pageProfile:
		return m.handleProfileKey(msg)
	default:
		return m.handlePageKey(msg)
	}
}

// handleGlobalKey handles shortcuts that work from either pane.
func (m *Model) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()
	if n, ok := codeBlockShortcut(key); ok {
		return true, m.copyCodeBlock(n)
	}
	switch key {
	case "ctrl+c":
		return true, tea.Quit
	case "tab":
		return true, m.toggleFocus()
	case "f1":
		m.showHelp = !m.showHelp
		return true, nil
	case "ctrl+n":
		return true, m.newChat()
	case "ctrl+t":
		m.toggleTheme()
		return true, nil
	case "ctrl+y":
		return true, m.copyLastReply()
	case "ctrl+g":
		return true, m.copyLastCodeBlock()
	case "ctrl+l":
		m.toggleLike()
		return true, nil
	case "ctrl+o":
		if m.page != pageChat {
			cmd := m.openChat()
			return true, tea.Batch(cmd, m.startAttach())
		}
		return true, m.startAttach()
	case "ctrl+x":
		m.clearAttachment()
		return true, nil
	case "ctrl+r":
		m.toggleRecording()
		return true, nil
	}
	return false, nil
}

// codeBlockShortcut maps alt+1..alt+9 to a code block number.
func codeBlockShortcut(key string) (int, bool) {
	digit, ok := strings.CutPrefix(key, "alt+")
	if !ok || len(digit) != 1 || digit[0] < '1' || digit[0] > '9' {
		return 0, false
	}
	return int(digit[0] - '0'), true
}

// toggleFocus moves key focus between the sidebar and the main pane.
func (m *Model) toggleFocus() tea.Cmd {
	if m.focus == focusSidebar {
		return m.focusMainPane()
	}
	m.focus = focusSidebar
	m.input.Blur()
	return nil
}

func (m *Model) focusMainPane() tea.Cmd {
	m.focus = focusMain
	if m.page == pageChat {
		return m.input.Focus()
	}
	return nil
}

// handleSidebarKey navigates the sidebar entries.
func (m *Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q":
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	case "esc":
		return m, m.focusMainPane()
	case "up", "k":
		m.moveSidebarCursor(-1)
		return m, nil
	case "down", "j":
		m.moveSidebarCursor(1)
		return m, nil
	case "home", "g":
		m.sidebarCursor = 0
		return m, nil
	case "end", "G":
		m.sidebarCursor = max(0, len(m.sidebarItems())-1)
		return m, nil
	case "enter", "right", "l":
		return m, m.activateSidebarItem()
	case "1", "2", "3", "4":
		return m, m.showPage(page(key[0] - '1'))
	case "n":
		return m, m.newChat()
	case "t":
		m.toggleTheme()
		return m, nil
	}
	return m, nil
}

// handleChatKey edits and sends messages in the composer.
func (m *Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m, m.sendMessage()
	case "alt+enter", "ctrl+j":
		m.input.InsertString("\n")
		return m, nil
	case "ctrl+p":
		m.cyclePrompt()
		return m, nil
	case "esc":
		return m, m.toggleFocus()
	case "pgup", "pgdown", "ctrl+up", "ctrl+down":
		m.scrollViewport(msg)
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleProfileKey selects and cycles profile settings.
func (m *Model) handleProfileKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, m.toggleFocus()
	case "up", "k":
		m.profileCursor = profileRow(clamp(int(m.profileCursor)-1, 0, int(profileRowCount)-1))
		m.refreshPage()
	case "down", "j":
		m.profileCursor = profileRow(clamp(int(m.profileCursor)+1, 0, int(profileRowCount)-1))
		m.refreshPage()
	case "left", "h":
		m.cycleProfileSetting(-1)
	case "right", "l", "enter", " ":
		m.cycleProfileSetting(1)
	}
	return m, nil
}

// handlePageKey scrolls the static features and FAQ pages.
func (m *Model) handlePageKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, m.toggleFocus()
	case "q":
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// handleAttachKey edits the attachment path prompt.
func (m *Model) handleAttachKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "enter":
		return m, m.confirmAttach()
	case "esc":
		return m, m.cancelAttach()
	}
	var cmd tea.Cmd
	m.pathInput, cmd = m.pathInput.Update(msg)
	return m, cmd
}

func (m *Model) scrollViewport(msg tea.KeyMsg) {
	switch msg.String() {
	case "pgup":
		m.viewport.HalfViewUp()
	case "pgdown":
		m.viewport.HalfViewDown()
	case "ctrl+up":
		m.viewport.LineUp(1)
	case "ctrl+down":
		m.viewport.LineDown(1)
	}
}
