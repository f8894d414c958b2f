package ui

import tea "github.com/charmbracelet/bubbletea"

// noticeKind classifies a transient footer notice.
type noticeKind int

const (
	noticeInfo noticeKind = iota
	noticeSuccess
	noticeError
)

// notice is a toast-style message that clears itself after a short lifetime.
type notice struct {
	kind noticeKind
	text string
}

// showNotice replaces any visible notice and schedules its expiry. The
// sequence number keeps an old expiry tick from clearing a newer notice.
func (m *Model) showNotice(kind noticeKind, text string) tea.Cmd {
	m.noticeSeq++
	m.notice = &notice{kind: kind, text: text}
	return noticeExpiryCmd(m.noticeSeq)
}

// expireNotice clears the notice the given tick was scheduled for.
func (m *Model) expireNotice(seq int) {
	if seq == m.noticeSeq {
		m.notice = nil
	}
}

// renderNotice renders the active notice, or an empty string.
func (m Model) renderNotice() string {
	if m.notice == nil {
		return ""
	}
	styles := m.theme.Styles()
	text := truncate(sanitize(m.notice.text), m.width/2)

	switch m.notice.kind {
	case noticeSuccess:
		return styles.SuccessText.Render("✓ " + text)
	case noticeError:
		return styles.DangerText.Render("✗ " + text)
	default:
		return styles.AccentText.Render(text)
	}
}
