package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/treykane/cli-assistant/internal/chat"
	"github.com/treykane/cli-assistant/internal/config"
)

// renderProfile draws the user card, the editable settings and usage stats.
func (m *Model) renderProfile(width int) string {
	if width <= 0 {
		return ""
	}
	cardWidth := min(width, 60)

	name := m.cfg.Profile.Name
	initial := "?"
	if r := []rune(strings.TrimSpace(name)); len(r) > 0 {
		initial = strings.ToUpper(string(r[0]))
	}
	userLines := []string{
		m.styles.title.Render("("+initial+")") + "  " + m.styles.heading.Render(name),
	}
	if m.cfg.Profile.Email != "" {
		userLines = append(userLines, m.styles.muted.Render(m.cfg.Profile.Email))
	}
	user := m.styles.card.Width(cardWidth).Render(strings.Join(userLines, "\n"))

	settings := []string{m.styles.heading.Render("Settings"), ""}
	rows := []struct {
		row   profileRow
		label string
		value string
	}{
		{profileRowLanguage, "Interface language", config.LanguageName(m.cfg.Language)},
		{profileRowTheme, "Theme", m.cfg.Theme},
	}
	labelWidth := 20
	for _, r := range rows {
		line := padRight(r.label, labelWidth) + "‹ " + r.value + " ›"
		if m.focus == focusMain && m.profileCursor == r.row {
			line = m.styles.selected.Render(line)
		}
		settings = append(settings, truncate(line, cardWidth))
	}
	settings = append(settings, "", m.styles.muted.Render("j/k select · h/l change · saved to "+configPathLabel()))
	settingsCard := m.styles.card.Width(cardWidth).Render(strings.Join(settings, "\n"))

	stats := chat.CollectStats(m.conversation, m.history)
	statsLines := []string{
		m.styles.heading.Render("Statistics"),
		"",
		fmt.Sprintf("%s  %s", m.styles.accent.Render(padRight(chat.CompactCount(stats.Dialogs), 6)), "dialogs"),
		fmt.Sprintf("%s  %s", m.styles.accent.Render(padRight(chat.CompactCount(stats.Messages), 6)), "messages"),
		m.styles.muted.Render(pluralize(m.history.Len(), "conversation", "conversations") + " in history"),
	}
	statsCard := m.styles.card.Width(cardWidth).Render(strings.Join(statsLines, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, user, "", settingsCard, "", statsCard)
}

func configPathLabel() string {
	path, err := config.ConfigPath()
	if err != nil {
		return "config"
	}
	return path
}
