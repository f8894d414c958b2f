package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors for the UI.
type Theme struct {
	Name string

	Background string
	Surface    string

	SelectionBg   string
	SelectionText string

	Border      string
	BorderFocus string

	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)),

		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		PaneFocus: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.BorderFocus)).
			Padding(0, 1),

		PaneTitle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Warning)).
			Padding(1, 2),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Logo      lipgloss.Style
	Header    lipgloss.Style
	Footer    lipgloss.Style
	Selected  lipgloss.Style
	Pane      lipgloss.Style
	PaneFocus lipgloss.Style
	PaneTitle lipgloss.Style
	Dialog    lipgloss.Style
}

// Theme definitions

var themes = map[string]Theme{
	"Ink":   inkTheme(),
	"Paper": paperTheme(),
}

var themeOrder = []string{"Ink", "Paper"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return inkTheme()
}

// NextTheme returns the next theme name in the cycle.
func NextTheme(current string) string {
	for i, name := range themeOrder {
		if name == current {
			return themeOrder[(i+1)%len(themeOrder)]
		}
	}
	return themeOrder[0]
}

// ThemeNames returns available theme names.
func ThemeNames() []string {
	return themeOrder
}

func inkTheme() Theme {
	return Theme{
		Name: "Ink",

		Background: "#14161f",
		Surface:    "#1d2029",

		SelectionBg:   "#2c3043",
		SelectionText: "#d5d8e4",

		Border:      "#3a3f55",
		BorderFocus: "#7aa2f7",

		Text:    "#d5d8e4",
		Muted:   "#767c98",
		Faint:   "#565c76",
		Accent:  "#7aa2f7",
		Success: "#9ece6a",
		Warning: "#e0af68",
		Danger:  "#f7768e",
	}
}

func paperTheme() Theme {
	return Theme{
		Name: "Paper",

		Background: "#f4f0e8",
		Surface:    "#e9e4d8",

		SelectionBg:   "#d6cfbe",
		SelectionText: "#2d2a24",

		Border:      "#b9b09c",
		BorderFocus: "#3b6ea5",

		Text:    "#2d2a24",
		Muted:   "#6e6858",
		Faint:   "#8f8a7c",
		Accent:  "#3b6ea5",
		Success: "#3f7d44",
		Warning: "#9a6b00",
		Danger:  "#a33c3c",
	}
}
