package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	CycleTheme key.Binding
	Escape     key.Binding
	Tab        key.Binding
	ShiftTab   key.Binding

	// List
	Up      key.Binding
	Down    key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Open    key.Binding
	New     key.Binding
	Delete  key.Binding
	History key.Binding
	Search  key.Binding

	// Editor
	Save         key.Binding
	DeleteActive key.Binding

	// Versions
	Restore key.Binding

	// Confirmation dialog
	Confirm key.Binding
	Deny    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Next field"),
		),
		ShiftTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Previous field"),
		),

		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "Up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "Down"),
		),
		Top: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "Top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "Bottom"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Edit note"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "New note"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "Delete note"),
		),
		History: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "Version history"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "Search"),
		),

		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "Save"),
		),
		DeleteActive: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("ctrl+d", "Delete note"),
		),

		Restore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "Restore version"),
		),

		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "Confirm"),
		),
		Deny: key.NewBinding(
			key.WithKeys("n", "esc"),
			key.WithHelp("n/esc", "Cancel"),
		),
	}
}
