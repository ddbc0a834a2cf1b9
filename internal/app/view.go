package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/treykane/cli-assistant/internal/chat"
)

// View draws the full UI (sidebar + main pane + status line).
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	layout := m.calculateLayout()
	sidebar := m.renderSidebar(layout.SidebarWidth, layout.ContentHeight)
	main := m.renderMain(layout)
	if m.showHelp {
		main = m.renderHelp(layout)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, main)
	row = padBlock(row, m.width, layout.ContentHeight)

	view := row + "\n" + m.renderStatus(m.width)
	return padBlock(view, m.width, m.height)
}

// renderSidebar draws navigation, the new-chat action and dialog history.
func (m *Model) renderSidebar(width, height int) string {
	style := m.styles.pane
	if m.focus == focusSidebar {
		style = m.styles.focusedPane
	}
	innerWidth := max(0, width-style.GetHorizontalFrameSize())
	innerHeight := max(0, height-style.GetVerticalFrameSize())

	lines := []string{
		truncate(m.styles.title.Render("✦ AI Assistant"), innerWidth),
		"",
	}
	now := m.now()
	entries := m.history.Entries()
	items := m.sidebarItems()
	for i, item := range items {
		if item.kind == sidebarNewChat {
			lines = append(lines, "")
		}
		if item.kind == sidebarHistory && (i == 0 || items[i-1].kind != sidebarHistory) {
			lines = append(lines, "", m.styles.muted.Render("Dialog history"))
		}

		label := item.label
		if item.kind == sidebarPage && item.page == m.page {
			label = "● " + label
		} else if item.kind == sidebarPage {
			label = "  " + label
		}
		line := truncateWithEllipsis(label, innerWidth)
		switch {
		case m.focus == focusSidebar && i == m.sidebarCursor:
			line = m.styles.selected.Width(innerWidth).Render(line)
		case item.kind == sidebarPage && item.page == m.page:
			line = m.styles.activeNav.Width(innerWidth).Render(line)
		case item.kind == sidebarNewChat:
			line = m.styles.accent.Render(line)
		}
		lines = append(lines, line)

		if item.kind == sidebarHistory {
			if c := findConversation(entries, item.id); c != nil {
				lines = append(lines, truncate(m.styles.muted.Render("  "+chat.RelativeTime(c.UpdatedAt, now)), innerWidth))
			}
		}
	}

	content := padBlock(strings.Join(lines, "\n"), innerWidth, innerHeight)
	return style.Width(width - style.GetHorizontalBorderSize()).Height(innerHeight).Render(content)
}

func findConversation(entries []*chat.Conversation, id string) *chat.Conversation {
	for _, c := range entries {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// renderMain draws the active page: header, viewport and, on the chat page,
// the composer.
func (m *Model) renderMain(layout LayoutDimensions) string {
	style := m.styles.mainPane
	if m.focus == focusMain {
		style = m.styles.focusedPane
	}

	header := m.styles.heading.Render(m.page.String())
	if m.page == pageChat {
		header = m.styles.heading.Render(m.conversation.Title)
	}
	parts := []string{truncate(header, layout.InnerWidth), m.viewport.View()}
	if m.page == pageChat {
		parts = append(parts, m.renderComposer(layout.InnerWidth))
	}

	content := padBlock(strings.Join(parts, "\n"), layout.InnerWidth, layout.InnerHeight)
	return style.Width(layout.MainWidth - style.GetHorizontalBorderSize()).Height(layout.InnerHeight).Render(content)
}

// renderStatus draws the footer: focus hint on the left, status on the right.
func (m *Model) renderStatus(width int) string {
	hint := "tab sidebar · f1 help · ctrl+c quit"
	if m.focus == focusSidebar {
		hint = "j/k move · enter open · 1-4 pages · n new · t theme · ? help · q quit"
	}
	status := m.status
	statusStyle := m.styles.status
	if strings.HasSuffix(status, "failed") {
		statusStyle = m.styles.errorText
	}
	left := m.styles.muted.Render(hint)
	right := statusStyle.Render(status)
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return truncate(right+"  "+left, width)
	}
	return left + strings.Repeat(" ", gap) + right
}

// helpLines lists the key bindings shown in the help panel.
var helpLines = [][2]string{
	{"enter", "send message"},
	{"alt+enter", "new line"},
	{"ctrl+p", "fill an example prompt"},
	{"ctrl+y", "copy last reply"},
	{"alt+1..9", "copy code block #N"},
	{"ctrl+g", "copy last code block"},
	{"ctrl+l", "like last reply"},
	{"ctrl+o / ctrl+x", "attach / remove file"},
	{"ctrl+r", "start or stop voice input"},
	{"ctrl+t", "toggle dark mode"},
	{"ctrl+n", "new chat"},
	{"tab / esc", "switch pane"},
	{"pgup / pgdown", "scroll"},
	{"f1 / ?", "toggle help"},
	{"ctrl+c", "quit"},
}

func (m *Model) renderHelp(layout LayoutDimensions) string {
	style := m.styles.focusedPane
	lines := []string{m.styles.heading.Render("Keys"), ""}
	for _, kv := range helpLines {
		lines = append(lines, m.styles.accent.Render(padRight(kv[0], 18))+kv[1])
	}
	content := padBlock(strings.Join(lines, "\n"), layout.InnerWidth, layout.InnerHeight)
	return style.Width(layout.MainWidth - style.GetHorizontalBorderSize()).Height(layout.InnerHeight).Render(content)
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
