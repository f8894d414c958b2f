package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/quillhq/quill/internal/notes"
)

// draft is the editor's pending note text, trimmed of surrounding whitespace.
type draft struct {
	Title   string
	Content string
}

// Validate rejects drafts with an empty title or content. A failed save
// validation never reaches the network.
func (d draft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Title, validation.Required),
		validation.Field(&d.Content, validation.Required),
	)
}

// startCreate opens a blank editor. No note is active and the version panel
// stays hidden until a note is.
func (m *Model) startCreate() {
	m.mode = modeCreating
	m.sess.Deactivate()
	m.titleInput.SetValue("")
	m.contentInput.SetValue("")
	m.contentInput.Blur()
	m.focus = focusTitle
}

// closeEditor returns to the welcome view and resets the editor slice of the
// session to its initial form.
func (m *Model) closeEditor() {
	m.mode = modeClosed
	m.sess.Deactivate()
	m.titleInput.SetValue("")
	m.titleInput.Blur()
	m.contentInput.SetValue("")
	m.contentInput.Blur()
	m.selectedVersion = 0
	m.focus = focusList
}

// handleEditorKey processes keyboard input while the title or content field
// has focus.
func (m Model) handleEditorKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.closeEditor()
		return m, nil

	case key.Matches(msg, m.keys.Save):
		cmd := m.saveNote()
		return m, cmd

	case key.Matches(msg, m.keys.DeleteActive):
		if m.mode == modeEditing && m.sess.Active() {
			m.confirm = &pendingConfirm{
				prompt: "Are you sure you want to delete this note?",
				action: confirmDelete,
				noteID: m.sess.ActiveNoteID,
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Tab), key.Matches(msg, m.keys.ShiftTab):
		return m.cycleEditorFocus(msg)
	}

	var cmd tea.Cmd
	if m.focus == focusTitle {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.contentInput, cmd = m.contentInput.Update(msg)
	}
	return m, cmd
}

// cycleEditorFocus moves between title, content, and (when a note is active)
// the version panel.
func (m Model) cycleEditorFocus(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	forward := key.Matches(msg, m.keys.Tab)

	switch m.focus {
	case focusTitle:
		if forward {
			m.focus = focusContent
			m.titleInput.Blur()
			cmd := m.contentInput.Focus()
			return m, cmd
		}
		if m.mode == modeEditing && m.sess.Active() {
			m.focus = focusVersions
			m.titleInput.Blur()
			return m, nil
		}
		return m, nil
	case focusContent:
		if forward {
			if m.mode == modeEditing && m.sess.Active() {
				m.focus = focusVersions
				m.contentInput.Blur()
				return m, nil
			}
			m.focus = focusTitle
			m.contentInput.Blur()
			cmd := m.titleInput.Focus()
			return m, cmd
		}
		m.focus = focusTitle
		m.contentInput.Blur()
		cmd := m.titleInput.Focus()
		return m, cmd
	}
	return m, nil
}

// saveNote validates the draft and issues a create or update call. Which one
// depends solely on whether a note is active.
func (m *Model) saveNote() tea.Cmd {
	d := draft{
		Title:   strings.TrimSpace(m.titleInput.Value()),
		Content: strings.TrimSpace(m.contentInput.Value()),
	}
	if err := d.Validate(); err != nil {
		return m.showNotice(noticeError, "Please fill in both title and content")
	}

	input := notes.NoteInput{Title: d.Title, Content: d.Content}
	if m.sess.Active() {
		return m.call(m.updateCmd(m.sess.ActiveNoteID, input))
	}
	return m.call(m.createCmd(input))
}

// handleNoteOpened applies a settled single-note fetch. On failure the view
// state is left untouched; the gateway already reported the error.
func (m *Model) handleNoteOpened(msg noteOpenedMsg) tea.Cmd {
	if msg.err != nil || msg.note == nil {
		return nil
	}

	m.mode = modeEditing
	m.sess.Activate(msg.note.ID)
	m.sess.ClearVersions()
	m.selectedVersion = 0
	m.titleInput.SetValue(msg.note.Title)
	m.contentInput.SetValue(msg.note.Content)
	m.contentInput.Blur()
	m.focus = focusTitle

	// Opening a note cascades into its version history.
	return tea.Batch(m.titleInput.Focus(), m.call(m.versionsCmd(msg.note.ID)))
}

// handleNoteSaved applies a settled create or update. A create adopts the
// server-assigned id before anything else; the editor closes only after the
// follow-up list refresh settles, matching the visible order of effects.
func (m *Model) handleNoteSaved(msg noteSavedMsg) tea.Cmd {
	if msg.err != nil || msg.note == nil {
		return nil
	}

	text := "Note updated successfully!"
	if msg.created {
		m.sess.Activate(msg.note.ID)
		text = "Note created successfully!"
	}

	m.closeAfterRefresh = true
	return tea.Batch(
		m.showNotice(noticeSuccess, text),
		m.call(m.listCmd(m.sess.SearchTerm)),
	)
}

// handleNoteDeleted applies a settled delete. Deleting the active note closes
// the editor; either way the list refreshes.
func (m *Model) handleNoteDeleted(msg noteDeletedMsg) tea.Cmd {
	if msg.err != nil {
		return nil
	}

	if msg.id == m.sess.ActiveNoteID && m.sess.Active() {
		m.closeEditor()
	}
	return tea.Batch(
		m.showNotice(noticeSuccess, "Note deleted!"),
		m.call(m.listCmd(m.sess.SearchTerm)),
	)
}

// renderRightPane renders either the welcome view or the editor with its
// version panel. The two are mutually exclusive.
func (m Model) renderRightPane() string {
	if m.mode == modeClosed {
		return m.renderWelcome()
	}
	return m.renderEditor()
}

func (m Model) renderWelcome() string {
	styles := m.theme.Styles()
	width := m.rightPaneWidth()

	body := strings.Join([]string{
		styles.PaneTitle.Render("Welcome to quill"),
		"",
		styles.Text.Render("Select a note on the left to start editing,"),
		styles.Text.Render("or press 'n' to create a new one."),
	}, "\n")

	return styles.Pane.Width(width).Height(m.bodyHeight()).Render(body)
}

func (m Model) renderEditor() string {
	styles := m.theme.Styles()
	width := m.rightPaneWidth()

	heading := "Create New Note"
	if m.mode == modeEditing {
		heading = "Edit Note"
	}

	sections := []string{
		styles.PaneTitle.Render(heading),
		"",
		m.titleInput.View(),
		"",
		m.contentInput.View(),
	}

	if m.mode == modeEditing && m.sess.Active() {
		sections = append(sections, "", m.renderVersionPanel(width-4))
	}

	pane := styles.Pane
	if m.focus == focusTitle || m.focus == focusContent || m.focus == focusVersions {
		pane = styles.PaneFocus
	}
	return pane.Width(width).Height(m.bodyHeight()).Render(strings.Join(sections, "\n"))
}

func (m Model) rightPaneWidth() int {
	w := m.width - m.listPaneWidth() - 2
	if w < 24 {
		w = 24
	}
	return w
}
