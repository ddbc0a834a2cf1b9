package app

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/lipgloss"
)

// styles holds every lipgloss style for one theme.
type styles struct {
	dark bool

	pane        lipgloss.Style
	mainPane    lipgloss.Style
	focusedPane lipgloss.Style
	title       lipgloss.Style
	heading     lipgloss.Style
	muted       lipgloss.Style
	selected    lipgloss.Style
	activeNav   lipgloss.Style
	status      lipgloss.Style
	errorText   lipgloss.Style
	accent      lipgloss.Style
	success     lipgloss.Style

	userBubble      lipgloss.Style
	assistantBubble lipgloss.Style
	roleLabel       lipgloss.Style
	attachment      lipgloss.Style
	codeBlock       lipgloss.Style
	codeHeader      lipgloss.Style
	card            lipgloss.Style
	recording       lipgloss.Style
	inputBox        lipgloss.Style
}

func newStyles(dark bool) styles {
	fg := lipgloss.Color("235")
	muted := lipgloss.Color("244")
	border := lipgloss.Color("250")
	assistantBg := lipgloss.Color("254")
	cardBorder := lipgloss.Color("183")
	if dark {
		fg = lipgloss.Color("252")
		muted = lipgloss.Color("243")
		border = lipgloss.Color("238")
		assistantBg = lipgloss.Color("236")
		cardBorder = lipgloss.Color("97")
	}
	accent := lipgloss.Color("205")
	secondary := lipgloss.Color("63")

	pane := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1)
	return styles{
		dark:        dark,
		pane:        pane,
		mainPane:    pane.Copy(),
		focusedPane: pane.Copy().BorderForeground(secondary),
		title:       lipgloss.NewStyle().Bold(true).Foreground(accent),
		heading:     lipgloss.NewStyle().Bold(true).Foreground(fg),
		muted:       lipgloss.NewStyle().Foreground(muted),
		selected:    lipgloss.NewStyle().Reverse(true),
		activeNav:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")).Background(secondary),
		status:      lipgloss.NewStyle().Foreground(muted),
		errorText:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		accent:      lipgloss.NewStyle().Foreground(accent),
		success:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")),

		userBubble: lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Background(secondary).
			Padding(0, 1),
		assistantBubble: lipgloss.NewStyle().
			Foreground(fg).
			Background(assistantBg).
			Padding(0, 1),
		roleLabel:  lipgloss.NewStyle().Bold(true).Foreground(muted),
		attachment: lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Underline(true),
		codeBlock: lipgloss.NewStyle().
			Background(lipgloss.Color("234")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1),
		codeHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Background(lipgloss.Color("234")).
			Bold(true),
		card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(cardBorder).Padding(0, 1),
		recording: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		inputBox:  lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true, false, false, false).BorderForeground(border),
	}
}

// applyInputTheme styles the message composer for the active theme.
func applyInputTheme(input *textarea.Model, st styles) {
	focused, blurred := textarea.DefaultStyles()

	text := lipgloss.NewStyle().Foreground(st.heading.GetForeground())
	focused.Base = lipgloss.NewStyle()
	focused.Text = text
	focused.CursorLine = text
	focused.Prompt = st.accent
	focused.Placeholder = st.muted

	blurred.Base = lipgloss.NewStyle()
	blurred.Text = st.muted
	blurred.CursorLine = st.muted
	blurred.Prompt = st.muted
	blurred.Placeholder = st.muted

	input.FocusedStyle = focused
	input.BlurredStyle = blurred
	input.Prompt = "│ "
	input.ShowLineNumbers = false
	input.EndOfBufferCharacter = ' '
}
