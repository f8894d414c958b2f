package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// confirmAction identifies which destructive operation a confirmation gates.
type confirmAction int

const (
	confirmDelete confirmAction = iota
	confirmRestore
)

// pendingConfirm blocks a destructive call until the user answers. The
// dialog holds plain data rather than a callback so tests can drive it with
// key messages deterministically.
type pendingConfirm struct {
	prompt    string
	action    confirmAction
	noteID    string
	versionID string
}

// handleConfirmKey answers the active confirmation dialog. The guarded call
// is issued only on an explicit yes.
func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pending := m.confirm

	switch {
	case key.Matches(msg, m.keys.Confirm):
		m.confirm = nil
		switch pending.action {
		case confirmDelete:
			cmd := m.call(m.deleteCmd(pending.noteID))
			return m, cmd
		case confirmRestore:
			cmd := m.call(m.restoreCmd(pending.noteID, pending.versionID))
			return m, cmd
		}
		return m, nil

	case key.Matches(msg, m.keys.Deny):
		m.confirm = nil
		return m, nil
	}
	return m, nil
}

// renderConfirmOverlay centers the confirmation dialog over the body.
func (m Model) renderConfirmOverlay(_ string) string {
	styles := m.theme.Styles()

	dialog := styles.Dialog.Render(m.confirm.prompt)
	help := styles.FaintText.
		Width(lipgloss.Width(dialog)).
		Align(lipgloss.Center).
		Render("(y/n)")
	box := lipgloss.JoinVertical(lipgloss.Left, dialog, help)

	return lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, box)
}
