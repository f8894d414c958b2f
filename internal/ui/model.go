package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quillhq/quill/internal/notes"
	"github.com/quillhq/quill/internal/prefs"
	"github.com/quillhq/quill/internal/session"
)

// mode is the editor pane state. Exactly one of the welcome view and the
// editor is visible at any time.
type mode int

const (
	modeClosed mode = iota
	modeCreating
	modeEditing
)

// focusArea tracks which component receives keystrokes.
type focusArea int

const (
	focusList focusArea = iota
	focusSearch
	focusTitle
	focusContent
	focusVersions
)

// restorePhase sequences the post-restore refresh chain. Each phase waits for
// the previous call to settle before issuing the next, so the list, history,
// and editor refresh strictly in that order.
type restorePhase int

const (
	restoreIdle restorePhase = iota
	restoreList
	restoreVersions
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Service   notes.Service
	Session   *session.State
	ThemeName string
	PrefsPath string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	svc       notes.Service
	sess      *session.State
	keys      keyMap
	theme     Theme
	prefsPath string

	// UI state
	width  int
	height int
	ready  bool
	mode   mode
	focus  focusArea

	// Components
	searchInput  textinput.Model
	titleInput   textinput.Model
	contentInput textarea.Model
	spin         spinner.Model

	// List state
	selectedRow     int
	selectedVersion int

	// Debounce state: only the tick carrying the latest sequence number
	// issues a refresh.
	searchSeq int

	// Busy indicator reference count. Incremented per dispatched service
	// call, decremented once per settled result, so overlapping calls share
	// one spinner that clears when the last call settles.
	inflight int

	// Transient notice
	notice    *notice
	noticeSeq int

	// Pending destructive-action confirmation
	confirm *pendingConfirm

	// Deferred editor close: save keeps the editor open until the follow-up
	// list refresh settles, then transitions to the welcome view.
	closeAfterRefresh bool

	// Restore refresh chain
	restorePhase  restorePhase
	restoreNoteID string
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	sess := opts.Session
	if sess == nil {
		sess = session.New()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Ink"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	search := textinput.New()
	search.Placeholder = "Search notes..."
	search.Prompt = "/ "
	search.CharLimit = 200

	title := textinput.New()
	title.Placeholder = "Title"
	title.CharLimit = 200

	content := textarea.New()
	content.Placeholder = "Write your note here..."
	content.CharLimit = 0

	spin := spinner.New(spinner.WithSpinner(spinner.Dot))

	return Model{
		ctx:          ctx,
		svc:          opts.Service,
		sess:         sess,
		keys:         DefaultKeyMap(),
		theme:        GetTheme(themeName),
		prefsPath:    prefsPath,
		mode:         modeClosed,
		focus:        focusList,
		searchInput:  search,
		titleInput:   title,
		contentInput: content,
		spin:         spin,

		// The initial list load is dispatched from Init.
		inflight: 1,
	}
}

// Init implements tea.Model. It kicks off the initial unfiltered list load.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spin.Tick,
		m.listCmd(""),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeComponents()
		return m, nil

	case spinner.TickMsg:
		if m.inflight == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case searchDebounceMsg:
		cmd := m.handleSearchDebounce(msg)
		return m, cmd

	case noticeExpiredMsg:
		m.expireNotice(msg.seq)
		return m, nil
	}

	if res, ok := msg.(apiResult); ok {
		return m.handleAPIResult(msg, res)
	}
	return m, nil
}

// handleAPIResult settles one service call: the busy count drops exactly
// once, a failure is reported exactly once, and the per-operation handler
// runs for both outcomes so degrade rules and refresh chains still apply.
func (m Model) handleAPIResult(msg tea.Msg, res apiResult) (tea.Model, tea.Cmd) {
	if m.inflight > 0 {
		m.inflight--
	}

	var cmds []tea.Cmd
	if err := res.failure(); err != nil {
		cmds = append(cmds, m.showNotice(noticeError, "Error: "+err.Error()))
	}

	switch msg := msg.(type) {
	case notesLoadedMsg:
		cmds = append(cmds, m.handleNotesLoaded(msg))
	case noteOpenedMsg:
		cmds = append(cmds, m.handleNoteOpened(msg))
	case noteSavedMsg:
		cmds = append(cmds, m.handleNoteSaved(msg))
	case noteDeletedMsg:
		cmds = append(cmds, m.handleNoteDeleted(msg))
	case versionsLoadedMsg:
		cmds = append(cmds, m.handleVersionsLoaded(msg))
	case versionRestoredMsg:
		cmds = append(cmds, m.handleVersionRestored(msg))
	}
	return m, tea.Batch(cmds...)
}

// call dispatches a service command and bumps the busy count. The matching
// decrement happens in handleAPIResult for every exit path.
func (m *Model) call(cmd tea.Cmd) tea.Cmd {
	m.inflight++
	if m.inflight == 1 {
		return tea.Batch(cmd, m.spin.Tick)
	}
	return cmd
}

// handleKey routes keyboard input by confirmation state and focus.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.confirm != nil {
		return m.handleConfirmKey(msg)
	}

	switch m.focus {
	case focusSearch:
		return m.handleSearchKey(msg)
	case focusTitle, focusContent:
		return m.handleEditorKey(msg)
	case focusVersions:
		return m.handleVersionsKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

// cycleTheme switches to the next theme and persists the choice.
func (m *Model) cycleTheme() {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	if m.prefsPath != "" {
		_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
	}
}

func (m *Model) resizeComponents() {
	listWidth := m.listPaneWidth()
	m.searchInput.Width = listWidth - 6
	editorWidth := m.width - listWidth - 6
	if editorWidth < 20 {
		editorWidth = 20
	}
	m.titleInput.Width = editorWidth
	m.contentInput.SetWidth(editorWidth)
	contentHeight := m.height - 16
	if contentHeight < 3 {
		contentHeight = 3
	}
	m.contentInput.SetHeight(contentHeight)
}

func (m Model) listPaneWidth() int {
	w := m.width * 2 / 5
	if w < 30 {
		w = 30
	}
	if w > 60 {
		w = 60
	}
	return w
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderListPane(), m.renderRightPane())
	if m.confirm != nil {
		body = m.renderConfirmOverlay(body)
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(body)
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderHeader renders the top bar: logo, busy spinner, active theme.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	parts := []string{styles.Logo.Render("quill")}
	if m.inflight > 0 {
		parts = append(parts, m.spin.View()+styles.WarningText.Render("working..."))
	}
	left := strings.Join(parts, "  ")

	right := styles.MutedText.Render(m.theme.Name)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return styles.Header.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

// renderFooter renders key hints and the transient notice.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	hints := m.footerHints()
	if n := m.renderNotice(); n != "" {
		gap := m.width - lipgloss.Width(hints) - lipgloss.Width(n) - 2
		if gap < 1 {
			gap = 1
		}
		return styles.Footer.Width(m.width).Render(hints + strings.Repeat(" ", gap) + n)
	}
	return styles.Footer.Width(m.width).Render(hints)
}

func (m Model) footerHints() string {
	styles := m.theme.Styles()
	hint := func(k key.Binding) string {
		h := k.Help()
		return styles.AccentText.Render("<"+h.Key+">") + " " + styles.MutedText.Render(h.Desc)
	}

	var parts []string
	switch {
	case m.confirm != nil:
		parts = []string{hint(m.keys.Confirm), hint(m.keys.Deny)}
	case m.focus == focusSearch:
		parts = []string{hint(m.keys.Escape), hint(m.keys.Open)}
	case m.mode != modeClosed:
		parts = []string{hint(m.keys.Save), hint(m.keys.Escape), hint(m.keys.Tab)}
		if m.mode == modeEditing {
			parts = append(parts, hint(m.keys.DeleteActive), hint(m.keys.Restore))
		}
	default:
		parts = []string{
			hint(m.keys.Open), hint(m.keys.New), hint(m.keys.Delete),
			hint(m.keys.History), hint(m.keys.Search), hint(m.keys.Quit),
		}
	}
	return strings.Join(parts, "  ")
}
