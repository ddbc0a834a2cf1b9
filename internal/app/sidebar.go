package app

import (
	tea "github.com/charmbracelet/bubbletea"
)

// sidebarKind identifies what a sidebar row does when activated.
type sidebarKind int

const (
	sidebarPage sidebarKind = iota
	sidebarNewChat
	sidebarHistory
)

// sidebarItem is one selectable row of the sidebar.
type sidebarItem struct {
	kind  sidebarKind
	label string
	page  page
	id    string // conversation ID for history rows
}

// sidebarItems lists the navigation rows, the new-chat action and the
// dialog history, in display order.
func (m *Model) sidebarItems() []sidebarItem {
	items := make([]sidebarItem, 0, len(pageTitles)+1+m.history.Len())
	for i, title := range pageTitles {
		items = append(items, sidebarItem{kind: sidebarPage, label: title, page: page(i)})
	}
	items = append(items, sidebarItem{kind: sidebarNewChat, label: "+ New chat"})
	for _, c := range m.history.Entries() {
		items = append(items, sidebarItem{kind: sidebarHistory, label: c.Title, id: c.ID})
	}
	return items
}

func (m *Model) moveSidebarCursor(delta int) {
	items := m.sidebarItems()
	if len(items) == 0 {
		m.sidebarCursor = 0
		return
	}
	m.sidebarCursor = clamp(m.sidebarCursor+delta, 0, len(items)-1)
}

// activateSidebarItem runs the row under the cursor.
func (m *Model) activateSidebarItem() tea.Cmd {
	items := m.sidebarItems()
	if m.sidebarCursor < 0 || m.sidebarCursor >= len(items) {
		return nil
	}
	item := items[m.sidebarCursor]
	switch item.kind {
	case sidebarNewChat:
		return m.newChat()
	case sidebarHistory:
		cmd := m.loadConversation(item.id)
		m.sidebarCursor = clamp(m.sidebarCursor, 0, max(0, len(m.sidebarItems())-1))
		return cmd
	default:
		return m.showPage(item.page)
	}
}

// showPage switches the main pane to p and focuses it.
func (m *Model) showPage(p page) tea.Cmd {
	if p < pageChat || p > pageFAQ {
		return nil
	}
	if p == pageChat {
		return m.openChat()
	}
	m.page = p
	m.focus = focusMain
	m.input.Blur()
	m.status = p.String()
	m.refreshPage()
	m.viewport.GotoTop()
	return nil
}
