package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ApplyTokens layers extra style tokens on top of s. Tokens are applied in
// order, so a later token wins over an earlier one. Unknown tokens are ignored.
func ApplyTokens(s lipgloss.Style, tokens []string) lipgloss.Style {
	t := current
	for _, tok := range tokens {
		switch strings.ToLower(strings.TrimSpace(tok)) {
		case "bold":
			s = s.Bold(true)
		case "italic":
			s = s.Italic(true)
		case "underline":
			s = s.Underline(true)
		case "faint":
			s = s.Faint(true)
		case "strike":
			s = s.Strikethrough(true)
		case "reverse":
			s = s.Reverse(true)
		case "muted":
			s = s.Foreground(t.MutedColor)
		case "accent":
			s = s.Foreground(t.AccentColor)
		case "success":
			s = s.Foreground(t.Success.GetForeground())
		case "danger":
			s = s.Foreground(t.ErrorColor)
		case "border":
			s = s.Border(lipgloss.NormalBorder())
		case "rounded":
			s = s.Border(lipgloss.RoundedBorder())
		case "uppercase":
			s = s.Transform(strings.ToUpper)
		}
	}
	return s
}
