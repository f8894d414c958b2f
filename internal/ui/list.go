package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quillhq/quill/internal/notes"
)

// handleListKey processes keyboard input while the note list has focus.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.focus = focusSearch
		cmd := m.searchInput.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.New):
		m.startCreate()
		cmd := m.titleInput.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Open), key.Matches(msg, m.keys.History):
		// The history shortcut opens the note too; its version panel loads
		// as part of note selection.
		if note := m.selectedNote(); note != nil {
			cmd := m.call(m.openCmd(note.ID))
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if note := m.selectedNote(); note != nil {
			m.confirm = &pendingConfirm{
				prompt: "Are you sure you want to delete this note?",
				action: confirmDelete,
				noteID: note.ID,
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selectedRow > 0 {
			m.selectedRow--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selectedRow < len(m.sess.Notes)-1 {
			m.selectedRow++
		}
		return m, nil

	case key.Matches(msg, m.keys.Top):
		m.selectedRow = 0
		return m, nil

	case key.Matches(msg, m.keys.Bottom):
		if n := len(m.sess.Notes); n > 0 {
			m.selectedRow = n - 1
		}
		return m, nil
	}
	return m, nil
}

// handleSearchKey processes keyboard input while the search box has focus.
// Every edit restarts the debounce window; only the last keystroke in a
// burst triggers a refresh.
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Open):
		m.focus = focusList
		m.searchInput.Blur()
		return m, nil
	}

	before := m.searchInput.Value()
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)

	if m.searchInput.Value() != before {
		m.searchSeq++
		return m, tea.Batch(cmd, debounceCmd(m.searchSeq))
	}
	return m, cmd
}

// handleSearchDebounce fires when a quiet window elapses. Superseded timers
// carry stale sequence numbers and are dropped.
func (m *Model) handleSearchDebounce(msg searchDebounceMsg) tea.Cmd {
	if msg.seq != m.searchSeq {
		return nil
	}
	m.sess.SearchTerm = m.searchInput.Value()
	return m.call(m.listCmd(m.sess.SearchTerm))
}

// handleNotesLoaded applies a settled list fetch. Success replaces the
// collection wholesale; failure degrades it to empty rather than leaving
// stale rows on screen. Either way any deferred editor close and any restore
// chain step still runs.
func (m *Model) handleNotesLoaded(msg notesLoadedMsg) tea.Cmd {
	// A response for a superseded search term must not overwrite fresher
	// results; deferred transitions below still apply.
	stale := msg.term != m.sess.SearchTerm
	if !stale {
		if msg.err != nil {
			m.sess.ClearNotes()
		} else {
			m.sess.SetNotes(msg.items)
		}
		m.clampListSelection()
	}

	if m.closeAfterRefresh {
		m.closeAfterRefresh = false
		m.closeEditor()
	}

	if m.restorePhase == restoreList {
		m.restorePhase = restoreVersions
		return m.call(m.versionsCmd(m.restoreNoteID))
	}
	return nil
}

// clampListSelection keeps the cursor on a valid row after a reload.
func (m *Model) clampListSelection() {
	count := len(m.sess.Notes)
	if count == 0 {
		m.selectedRow = 0
		return
	}
	if m.selectedRow >= count {
		m.selectedRow = count - 1
	}
	if m.selectedRow < 0 {
		m.selectedRow = 0
	}
}

// selectedNote returns the note under the list cursor, or nil when the list
// is empty.
func (m Model) selectedNote() *notes.Note {
	if m.selectedRow < 0 || m.selectedRow >= len(m.sess.Notes) {
		return nil
	}
	return &m.sess.Notes[m.selectedRow]
}

// renderListPane renders the search box and the note list.
func (m Model) renderListPane() string {
	styles := m.theme.Styles()
	width := m.listPaneWidth()
	innerWidth := width - 4

	var b strings.Builder
	b.WriteString(styles.PaneTitle.Render("Notes"))
	b.WriteString("\n")
	b.WriteString(m.searchInput.View())
	b.WriteString("\n\n")

	if len(m.sess.Notes) == 0 {
		b.WriteString(styles.MutedText.Render("No notes found."))
	} else {
		for i := range m.sess.Notes {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(m.renderListRow(i, innerWidth))
		}
	}

	pane := styles.Pane
	if m.focus == focusList || m.focus == focusSearch {
		pane = styles.PaneFocus
	}
	return pane.Width(width).Height(m.bodyHeight()).Render(b.String())
}

// renderListRow renders one note summary: title, content preview, updated
// timestamp and version. All user-supplied text is sanitized before styling.
func (m Model) renderListRow(i, width int) string {
	styles := m.theme.Styles()
	note := m.sess.Notes[i]

	title := truncate(sanitize(note.Title), width)
	preview := previewLine(sanitize(note.Content), width)
	meta := fmt.Sprintf("Updated: %s • v%d", formatTimestamp(note.ParsedUpdatedAt(), note.UpdatedAt), note.Version)

	titleStyle := styles.Text.Bold(true)
	if i == m.selectedRow && (m.focus == focusList || m.focus == focusSearch) {
		titleStyle = styles.Selected.Bold(true)
		title = truncate("> "+sanitize(note.Title), width)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		styles.FaintText.Render(preview),
		styles.MutedText.Render(truncate(meta, width)),
	)
}

func (m Model) bodyHeight() int {
	h := m.height - 4
	if h < 5 {
		h = 5
	}
	return h
}
