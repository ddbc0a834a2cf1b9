package app

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"

	"github.com/treykane/cli-assistant/internal/chat"
	"github.com/treykane/cli-assistant/internal/config"
)

// page is the section shown in the main pane.
type page int

const (
	pageChat page = iota
	pageFeatures
	pageProfile
	pageFAQ
)

var pageTitles = []string{"Chat", "Features", "Profile", "FAQ"}

func (p page) String() string {
	if int(p) < 0 || int(p) >= len(pageTitles) {
		return "Unknown"
	}
	return pageTitles[p]
}

// focus is the pane that receives key presses.
type focus int

const (
	focusMain focus = iota
	focusSidebar
)

// mode controls which input widget is active.
type mode int

const (
	modeNormal mode = iota
	modeAttach
)

// profileRow is a selectable setting on the profile page.
type profileRow int

const (
	profileRowLanguage profileRow = iota
	profileRowTheme
	profileRowCount
)

// detectDarkBackground resolves the "auto" theme. Tests replace it.
var detectDarkBackground = termenv.HasDarkBackground

// Model holds the Bubble Tea state for the entire UI.
type Model struct {
	// Settings and collaborators
	cfg        config.Config
	saveConfig func(prev, next config.Config) error
	now        func() time.Time
	responder  *chat.Responder

	// Conversation state
	conversation *chat.Conversation
	history      *chat.History
	attachment   *chat.Attachment
	promptIndex  int

	// Navigation
	page          page
	focus         focus
	mode          mode
	sidebarCursor int
	profileCursor profileRow
	showHelp      bool

	// UI widgets
	input     textarea.Model
	pathInput textinput.Model
	viewport  viewport.Model
	spinner   spinner.Model
	status    string

	// Layout sizing
	width  int
	height int

	// Simulated reply bookkeeping. replySeq tags every timer so ticks from a
	// superseded reply are dropped.
	replySeq     int
	waiting      bool
	pendingReply string
	stream       *chat.Stream

	// Copy indicator
	copied    bool
	copiedSeq int

	recording bool

	// Theme
	dark   bool
	styles styles

	// Rendered static pages keyed by page, width bucket and theme.
	pageCache map[pageCacheKey]string

	watcher *configWatcher
}

// New prepares the initial UI model from the loaded configuration.
func New(cfg config.Config) *Model {
	now := time.Now
	m := &Model{
		cfg:          cfg,
		saveConfig:   config.SaveChanges,
		now:          now,
		responder:    chat.NewResponder(),
		conversation: chat.NewConversation(now()),
		history:      chat.DemoHistory(now()),
		page:         pageChat,
		focus:        focusMain,
		mode:         modeNormal,
		status:       "Ready",
		pageCache:    map[pageCacheKey]string{},
	}

	input := textarea.New()
	input.Placeholder = "Write a message..."
	input.CharLimit = 0
	input.SetHeight(InputRows)
	input.KeyMap.InsertNewline.SetEnabled(false)
	input.Focus()
	m.input = input

	pathInput := textinput.New()
	pathInput.Placeholder = "Path to file"
	pathInput.CharLimit = PathCharLimit
	pathInput.Prompt = "Attach: "
	m.pathInput = pathInput

	m.viewport = viewport.New(0, 0)

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	m.spinner = spin

	m.applyTheme(cfg.Theme)
	return m
}

// Init starts the cursor blink and, when watching, the config listener.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink}
	if m.watcher != nil {
		cmds = append(cmds, m.watcher.next())
	}
	return tea.Batch(cmds...)
}

// Update is the Bubble Tea update loop: handle events and emit commands.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)
	case tea.WindowSizeMsg:
		return m.handleWindowResize(msg)
	case replyStartMsg:
		return m.handleReplyStart(msg)
	case streamTickMsg:
		return m.handleStreamTick(msg)
	case copiedResetMsg:
		return m.handleCopiedReset(msg)
	case configChangedMsg:
		return m.handleConfigChanged(msg)
	case configWatchErrMsg:
		return m.handleConfigWatchErr(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// Close releases the config watcher.
func (m *Model) Close() error {
	if m.watcher == nil {
		return nil
	}
	err := m.watcher.Close()
	m.watcher = nil
	return err
}

// applyTheme resolves theme to dark or light and rebuilds the styles.
func (m *Model) applyTheme(theme string) {
	switch theme {
	case config.ThemeLight:
		m.dark = false
	case config.ThemeAuto:
		m.dark = detectDarkBackground()
	default:
		m.dark = true
	}
	m.styles = newStyles(m.dark)
	applyInputTheme(&m.input, m.styles)
}

func (m *Model) typingDelay() time.Duration {
	return time.Duration(m.cfg.Chat.TypingDelayMS) * time.Millisecond
}

func (m *Model) streamInterval() time.Duration {
	return time.Duration(m.cfg.Chat.StreamIntervalMS) * time.Millisecond
}

// busy reports whether a reply is pending or still streaming.
func (m *Model) busy() bool {
	return m.waiting || m.stream != nil
}
