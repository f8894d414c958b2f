package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/quillhq/quill/internal/notes"
)

// apiResult is implemented by every message produced by a service call. The
// root Update handles all of them in one place: the in-flight counter is
// decremented exactly once per settled call and failures are reported exactly
// once, so no per-operation handler ever double-reports.
type apiResult interface {
	failure() error
}

type notesLoadedMsg struct {
	term  string
	items []notes.Note
	err   error
}

type noteOpenedMsg struct {
	note *notes.Note
	err  error
}

type noteSavedMsg struct {
	note    *notes.Note
	created bool
	err     error
}

type noteDeletedMsg struct {
	id  string
	err error
}

type versionsLoadedMsg struct {
	noteID string
	items  []notes.NoteVersion
	err    error
}

type versionRestoredMsg struct {
	noteID string
	err    error
}

func (m notesLoadedMsg) failure() error     { return m.err }
func (m noteOpenedMsg) failure() error      { return m.err }
func (m noteSavedMsg) failure() error       { return m.err }
func (m noteDeletedMsg) failure() error     { return m.err }
func (m versionsLoadedMsg) failure() error  { return m.err }
func (m versionRestoredMsg) failure() error { return m.err }

// searchDebounceMsg fires when the search quiet window elapses. Stale
// sequence numbers are ignored, so only the final keystroke in a burst
// triggers a refresh.
type searchDebounceMsg struct {
	seq int
}

// noticeExpiredMsg clears the transient notice it was scheduled for.
type noticeExpiredMsg struct {
	seq int
}

const (
	searchDebounceDelay = 300 * time.Millisecond
	noticeLifetime      = 3 * time.Second
)

func (m *Model) listCmd(term string) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		items, err := svc.List(ctx, term)
		return notesLoadedMsg{term: term, items: items, err: err}
	}
}

func (m *Model) openCmd(id string) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		note, err := svc.Get(ctx, id)
		return noteOpenedMsg{note: note, err: err}
	}
}

func (m *Model) createCmd(input notes.NoteInput) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		note, err := svc.Create(ctx, input)
		return noteSavedMsg{note: note, created: true, err: err}
	}
}

func (m *Model) updateCmd(id string, input notes.NoteInput) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		note, err := svc.Update(ctx, id, input)
		return noteSavedMsg{note: note, err: err}
	}
}

func (m *Model) deleteCmd(id string) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		err := svc.Delete(ctx, id)
		return noteDeletedMsg{id: id, err: err}
	}
}

func (m *Model) versionsCmd(noteID string) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		items, err := svc.Versions(ctx, noteID)
		return versionsLoadedMsg{noteID: noteID, items: items, err: err}
	}
}

func (m *Model) restoreCmd(noteID, versionID string) tea.Cmd {
	svc, ctx := m.svc, m.ctx
	return func() tea.Msg {
		err := svc.Restore(ctx, noteID, versionID)
		return versionRestoredMsg{noteID: noteID, err: err}
	}
}

func debounceCmd(seq int) tea.Cmd {
	return tea.Tick(searchDebounceDelay, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

func noticeExpiryCmd(seq int) tea.Cmd {
	return tea.Tick(noticeLifetime, func(time.Time) tea.Msg {
		return noticeExpiredMsg{seq: seq}
	})
}
