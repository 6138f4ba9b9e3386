package ui

import "github.com/charmbracelet/lipgloss"

// CardOptions configures Card. Zero values take the theme defaults.
type CardOptions struct {
	Title  string
	Width  int      // outer width including the frame; 0 sizes to content
	Tokens []string // extra style tokens, see ApplyTokens
}

// Card draws body inside a framed box using the current theme.
func Card(opt CardOptions, body string) string {
	t := current
	style := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	if opt.Width > 0 {
		// lipgloss widths exclude the border
		style = style.Width(max(opt.Width-2, 1))
	}
	style = ApplyTokens(style, opt.Tokens)

	if opt.Title != "" {
		body = t.Title.Render(opt.Title) + "\n\n" + body
	}
	return style.Render(body)
}
