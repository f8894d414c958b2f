package ui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/quillhq/quill/internal/notes"
)

var errHistory = errors.New("history unavailable")

func TestOpeningNoteCascadesIntoHistory(t *testing.T) {
	svc := &fakeService{
		getFn: func(id string) (*notes.Note, error) {
			return &notes.Note{ID: id, Title: "planning", Content: "agenda", Version: 2}, nil
		},
		versionsFn: func(noteID string) ([]notes.NoteVersion, error) {
			return []notes.NoteVersion{{ID: "v1", NoteID: noteID, Title: "planning", Version: 1}}, nil
		},
	}
	m := newTestModel(t, svc, notes.Note{ID: "a", Title: "planning"})

	m, cmd := applyCmd(t, m, keyType(tea.KeyEnter))
	opened := msgOfType[noteOpenedMsg](t, collectMsgs(cmd))

	m, cmd = applyCmd(t, m, opened)
	require.Equal(t, modeEditing, m.mode)
	require.Equal(t, "a", m.sess.ActiveNoteID)
	require.Equal(t, "planning", m.titleInput.Value())

	loaded := msgOfType[versionsLoadedMsg](t, collectMsgs(cmd))
	m = apply(t, m, loaded)
	require.Len(t, m.sess.Versions, 1)
	require.Equal(t, []string{"get a", "versions a"}, svc.callLog())
}

func TestHistoryForInactiveNoteIsDropped(t *testing.T) {
	svc := &fakeService{}
	m := editingModel(t, svc, notes.Note{ID: "a"},
		notes.NoteVersion{ID: "v1", NoteID: "a", Version: 1})

	m = apply(t, m, versionsLoadedMsg{noteID: "b", items: []notes.NoteVersion{
		{ID: "x1", NoteID: "b", Version: 1},
		{ID: "x2", NoteID: "b", Version: 2},
	}})

	require.Len(t, m.sess.Versions, 1)
	require.Equal(t, "v1", m.sess.Versions[0].ID)
}

func TestHistoryLoadFailureShowsEmptyPanel(t *testing.T) {
	svc := &fakeService{}
	m := editingModel(t, svc, notes.Note{ID: "a"},
		notes.NoteVersion{ID: "v1", NoteID: "a", Version: 1})

	m = apply(t, m, versionsLoadedMsg{noteID: "a", err: errHistory})
	require.Empty(t, m.sess.Versions)
	require.Contains(t, m.View(), "No version history")
}

func TestRestoreRefreshesListThenHistoryThenEditor(t *testing.T) {
	svc := &fakeService{
		getFn: func(id string) (*notes.Note, error) {
			return &notes.Note{ID: id, Title: "restored title", Content: "restored body", Version: 4}, nil
		},
		versionsFn: func(noteID string) ([]notes.NoteVersion, error) {
			return []notes.NoteVersion{{ID: "v1", NoteID: noteID, Title: "old", Version: 1}}, nil
		},
	}
	m := editingModel(t, svc, notes.Note{ID: "a", Title: "current", Version: 3},
		notes.NoteVersion{ID: "v1", NoteID: "a", Title: "old", Version: 1})

	m.focus = focusVersions
	m = apply(t, m, keyRune('r'))
	require.NotNil(t, m.confirm)
	require.Equal(t, "Restore this version? This will create a new version.", m.confirm.prompt)
	require.Empty(t, svc.callLog())

	m, cmd := applyCmd(t, m, keyRune('y'))
	restored := msgOfType[versionRestoredMsg](t, collectMsgs(cmd))

	m, cmd = applyCmd(t, m, restored)
	require.Equal(t, "Version restored!", m.notice.text)

	loaded := msgOfType[notesLoadedMsg](t, collectMsgs(cmd))
	m, cmd = applyCmd(t, m, loaded)

	vmsg := msgOfType[versionsLoadedMsg](t, collectMsgs(cmd))
	m, cmd = applyCmd(t, m, vmsg)

	opened := msgOfType[noteOpenedMsg](t, collectMsgs(cmd))
	m, cmd = applyCmd(t, m, opened)
	require.Equal(t, "restored title", m.titleInput.Value())
	require.Equal(t, "restored body", m.contentInput.Value())

	// Re-selecting the note reloads its history once more.
	msgOfType[versionsLoadedMsg](t, collectMsgs(cmd))

	require.Equal(t, []string{
		"restore a/v1",
		`list ""`,
		"versions a",
		"get a",
		"versions a",
	}, svc.callLog())
}

func TestRestoreFailureLeavesEditorAlone(t *testing.T) {
	svc := &fakeService{}
	m := editingModel(t, svc, notes.Note{ID: "a", Title: "current"},
		notes.NoteVersion{ID: "v1", NoteID: "a", Version: 1})

	m, cmd := applyCmd(t, m, versionRestoredMsg{noteID: "a", err: errHistory})
	require.Equal(t, modeEditing, m.mode)
	require.Equal(t, restoreIdle, m.restorePhase)
	require.Contains(t, m.notice.text, "Error: ")
	require.Empty(t, collectMsgs(cmd))
}
