package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box borders.
// All components pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Done, Selected, Help                          lipgloss.Style

	AccentColor, ErrorColor, MutedColor, BorderColor lipgloss.TerminalColor

	Border                   lipgloss.Border
	BoxUnchecked, BoxChecked string
	SymDone, SymPending      string
}

var current = classic()

var asciiBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
}

// SetTheme switches the active theme. Unknown names fall back to classic.
func SetTheme(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		current = neon()
	case "mono":
		current = mono()
	default:
		current = classic()
	}
	return current
}

// Current returns the active theme.
func Current() Theme { return current }

// ThemeNames lists the themes SetTheme understands.
func ThemeNames() []string { return []string{"classic", "neon", "mono"} }

func classic() Theme {
	accent, errc, muted := lipgloss.Color("12"), lipgloss.Color("9"), lipgloss.Color("8")
	return Theme{
		Name:     "classic",
		Title:    lipgloss.NewStyle().Bold(true),
		Muted:    lipgloss.NewStyle().Faint(true),
		Accent:   lipgloss.NewStyle().Foreground(accent),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:    lipgloss.NewStyle().Foreground(errc).Bold(true),
		Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		Selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		Help:     lipgloss.NewStyle().Faint(true),

		AccentColor: accent, ErrorColor: errc, MutedColor: muted, BorderColor: muted,

		Border:       lipgloss.RoundedBorder(),
		BoxUnchecked: "☐", BoxChecked: "☑",
		SymDone: "✔", SymPending: "•",
	}
}

func neon() Theme {
	accent, errc, muted := lipgloss.Color("14"), lipgloss.Color("9"), lipgloss.Color("8")
	return Theme{
		Name:     "neon",
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Accent:   lipgloss.NewStyle().Foreground(accent),
		Success:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Error:    lipgloss.NewStyle().Foreground(errc).Bold(true),
		Pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Done:     lipgloss.NewStyle().Foreground(muted).Strikethrough(true),
		Selected: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		Help:     lipgloss.NewStyle().Foreground(muted),

		AccentColor: accent, ErrorColor: errc, MutedColor: muted, BorderColor: lipgloss.Color("13"),

		Border:       lipgloss.RoundedBorder(),
		BoxUnchecked: "◻", BoxChecked: "◼",
		SymDone: "✔", SymPending: "•",
	}
}

func mono() Theme {
	plain := lipgloss.NewStyle()
	none := lipgloss.NoColor{}
	return Theme{
		Name:     "mono",
		Title:    plain.Bold(true),
		Muted:    plain,
		Accent:   plain,
		Success:  plain,
		Error:    plain.Bold(true),
		Pending:  plain,
		Done:     plain.Strikethrough(true),
		Selected: plain.Reverse(true),
		Help:     plain,

		AccentColor: none, ErrorColor: none, MutedColor: none, BorderColor: none,

		Border:       asciiBorder,
		BoxUnchecked: "[ ]", BoxChecked: "[x]",
		SymDone: "x", SymPending: "-",
	}
}
