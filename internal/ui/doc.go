// Package ui provides the terminal user interface for quill.
//
// # Architecture Overview
//
// The UI is a Bubble Tea application. One root Model owns the whole view
// state and a shared session.State; the package is split into controller
// files that each own one slice of that state:
//
//   - model.go: root Model, Init/Update/View, focus routing, busy counter
//   - list.go: note list and search box, debounced refresh
//   - editor.go: welcome/create/edit state machine, draft validation, save/delete
//   - versions.go: version history panel and the restore refresh chain
//   - confirm.go: destructive-action confirmation dialog
//   - notify.go: transient footer notices
//   - commands.go: service call commands and their result messages
//   - theme.go, keys.go, helpers.go, sanitize.go: presentation support
//
// # State Ownership
//
// The session.State slices have exactly one writer each: the list controller
// writes Notes and SearchTerm, the editor controller writes ActiveNoteID,
// and the versions controller writes Versions. Everything runs on the Bubble
// Tea message loop, so there is no locking; the only hazard is re-entrancy
// across awaited service calls, which the result messages sequence
// explicitly.
//
// # Service Calls
//
// Every network operation is a tea.Cmd built in commands.go. Dispatching a
// command bumps an in-flight reference count (the busy spinner shows while
// it is non-zero); every result message decrements it exactly once in the
// root Update, which is also the single place failures are turned into error
// notices. Controllers therefore never report a service failure themselves.
//
// # Ordered Refreshes
//
// Two flows need a strict order of effects and model it as explicit phases
// rather than fire-and-forget commands:
//
//   - Saving keeps the editor open until the follow-up list refresh settles,
//     then closes it.
//   - Restoring a version walks restoreList -> restoreVersions -> re-select,
//     each step dispatched from the previous step's result message.
//
// # Rendering Safety
//
// Note titles and bodies come from an external service. Everything
// user-supplied is passed through sanitize() before it reaches the renderer,
// stripping escape sequences and control characters so remote content can
// never inject styling or cursor movement into the terminal.
//
// # Key Bindings
//
//   - enter: edit the selected note (v does the same via version history)
//   - n: new note, d: delete selected note
//   - /: focus search, typing refreshes the list after a 300ms quiet window
//   - ctrl+s: save, esc: cancel, tab: cycle editor fields
//   - r: restore the selected version (with confirmation)
//   - T: cycle theme, q or ctrl+c: quit
package ui
