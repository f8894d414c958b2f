// Package session holds the in-memory view state shared by the UI controllers.
// State lives for one program run; the service holds the authoritative copies.
package session

import "github.com/quillhq/quill/internal/notes"

// State is the single session-wide view state. Each slice of it has exactly one
// writer: the list controller owns Notes and SearchTerm, the editor controller
// owns ActiveNoteID, and the versions controller owns Versions. Other
// controllers may read ActiveNoteID but never write it.
type State struct {
	ActiveNoteID string
	Notes        []notes.Note
	Versions     []notes.NoteVersion
	SearchTerm   string
}

// New returns the initial session state: no active note, empty collections.
func New() *State {
	return &State{}
}

// SetNotes replaces the note list wholesale. Fetched collections are never
// patched in place.
func (s *State) SetNotes(items []notes.Note) {
	s.Notes = cloneNotes(items)
}

// ClearNotes empties the list, used when a list fetch fails so the UI degrades
// to "no notes" instead of showing stale rows.
func (s *State) ClearNotes() {
	s.Notes = nil
}

// SetVersions replaces the version history wholesale.
func (s *State) SetVersions(items []notes.NoteVersion) {
	s.Versions = cloneVersions(items)
}

// ClearVersions empties the history. Versions are only meaningful while a note
// is active.
func (s *State) ClearVersions() {
	s.Versions = nil
}

// Activate marks a note as the one open in the editor.
func (s *State) Activate(id string) {
	s.ActiveNoteID = id
}

// Deactivate returns the editor-related state to its initial form.
func (s *State) Deactivate() {
	s.ActiveNoteID = ""
	s.Versions = nil
}

// Active reports whether a note is open in the editor.
func (s *State) Active() bool {
	return s.ActiveNoteID != ""
}

func cloneNotes(items []notes.Note) []notes.Note {
	if len(items) == 0 {
		return nil
	}
	dup := make([]notes.Note, len(items))
	copy(dup, items)
	return dup
}

func cloneVersions(items []notes.NoteVersion) []notes.NoteVersion {
	if len(items) == 0 {
		return nil
	}
	dup := make([]notes.NoteVersion, len(items))
	copy(dup, items)
	return dup
}
