package ui

import (
	"regexp"
	"strings"
)

// ansiSequence matches CSI and OSC escape sequences plus bare escapes.
var ansiSequence = regexp.MustCompile(`\x1b(\[[0-9;?]*[@-~]|\][^\x07\x1b]*(\x07|\x1b\\)?|[@-_])?`)

// sanitize strips terminal escape sequences and control characters from
// user-supplied text before it reaches the renderer. Note titles and bodies
// come from an external service and must never be able to inject cursor
// movement, styling, or title-setting sequences into the terminal.
func sanitize(s string) string {
	if s == "" {
		return ""
	}
	s = ansiSequence.ReplaceAllString(s, "")
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\n' || r == '\t':
			b.WriteRune(' ')
		case r < 0x20 || r == 0x7f:
			// drop
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
