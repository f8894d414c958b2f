package ui

import (
	"strings"
	"time"
)

// truncate shortens a string to max display runes, appending an ellipsis when
// anything was cut.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max == 1 {
		return "…"
	}
	return string(runes[:max-1]) + "…"
}

// formatTimestamp renders a service timestamp the way the list and version
// panes display it. Unparseable values fall back to the raw string.
func formatTimestamp(t time.Time, raw string) string {
	if t.IsZero() {
		return strings.TrimSpace(raw)
	}
	return t.Local().Format("Jan 2, 2006 3:04 PM")
}

// previewLine flattens note content to a single display line.
func previewLine(content string, max int) string {
	flat := strings.Join(strings.Fields(content), " ")
	return truncate(flat, max)
}
