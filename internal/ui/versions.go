package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillhq/quill/internal/notes"
)

// handleVersionsKey processes keyboard input while the version panel has
// focus.
func (m Model) handleVersionsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeEditor()
		return m, nil

	case key.Matches(msg, m.keys.Save):
		cmd := m.saveNote()
		return m, cmd

	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
		m.focus = focusTitle
		cmd := m.titleInput.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.Up):
		if m.selectedVersion > 0 {
			m.selectedVersion--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selectedVersion < len(m.sess.Versions)-1 {
			m.selectedVersion++
		}
		return m, nil

	case key.Matches(msg, m.keys.Restore):
		if v := m.selectedVersionRecord(); v != nil && m.sess.Active() {
			m.confirm = &pendingConfirm{
				prompt:    "Restore this version? This will create a new version.",
				action:    confirmRestore,
				noteID:    m.sess.ActiveNoteID,
				versionID: v.ID,
			}
		}
		return m, nil
	}
	return m, nil
}

// handleVersionsLoaded applies a settled history fetch. Results for a note
// that is no longer active are dropped; a failed load degrades to an empty
// panel. A pending restore chain advances to the editor re-select either way.
func (m *Model) handleVersionsLoaded(msg versionsLoadedMsg) tea.Cmd {
	if msg.noteID == m.sess.ActiveNoteID && m.sess.Active() {
		if msg.err != nil {
			m.sess.ClearVersions()
		} else {
			m.sess.SetVersions(msg.items)
		}
		if m.selectedVersion >= len(m.sess.Versions) {
			m.selectedVersion = 0
		}
	}

	if m.restorePhase == restoreVersions && msg.noteID == m.restoreNoteID {
		m.restorePhase = restoreIdle
		return m.call(m.openCmd(m.restoreNoteID))
	}
	return nil
}

// handleVersionRestored starts the post-restore refresh chain: list, then
// history, then editor re-select, each step waiting for the previous one to
// settle. The re-select triggers one more history load; that redundancy is
// accepted to keep the order of effects simple.
func (m *Model) handleVersionRestored(msg versionRestoredMsg) tea.Cmd {
	if msg.err != nil {
		return nil
	}

	m.restorePhase = restoreList
	m.restoreNoteID = msg.noteID
	return tea.Batch(
		m.showNotice(noticeSuccess, "Version restored!"),
		m.call(m.listCmd(m.sess.SearchTerm)),
	)
}

// selectedVersionRecord returns the version under the panel cursor, or nil.
func (m Model) selectedVersionRecord() *notes.NoteVersion {
	if m.selectedVersion < 0 || m.selectedVersion >= len(m.sess.Versions) {
		return nil
	}
	return &m.sess.Versions[m.selectedVersion]
}

// renderVersionPanel renders the history list for the active note.
func (m Model) renderVersionPanel(width int) string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.PaneTitle.Render("Version History"))
	b.WriteString("\n")

	if len(m.sess.Versions) == 0 {
		b.WriteString(styles.MutedText.Render("No version history"))
		return b.String()
	}

	for i, v := range m.sess.Versions {
		line := fmt.Sprintf("Version %d  %s  %s",
			v.Version,
			truncate(sanitize(v.Title), 30),
			formatTimestamp(v.ParsedCreatedAt(), v.CreatedAt),
		)
		line = truncate(line, width)

		style := styles.Text
		if i == m.selectedVersion && m.focus == focusVersions {
			style = styles.Selected
			line = "> " + line
		}
		b.WriteString(style.Render(line))
		if preview := previewLine(sanitize(v.Content), width-4); preview != "" {
			b.WriteString("\n  " + styles.FaintText.Render(preview))
		}
		if i < len(m.sess.Versions)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
