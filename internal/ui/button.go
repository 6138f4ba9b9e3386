package ui

import "github.com/charmbracelet/lipgloss"

// Variant selects a button's colors.
type Variant int

const (
	VariantPrimary Variant = iota
	VariantSecondary
	VariantDanger
	VariantGhost
)

// Size selects a button's padding. The zero value is medium.
type Size int

const (
	SizeMedium Size = iota
	SizeSmall
	SizeLarge
)

// ButtonOptions configures Button.
type ButtonOptions struct {
	Label     string
	Variant   Variant
	Size      Size
	FullWidth bool // stretch to Width, label centered
	Width     int
	Focused   bool
	Hint      string   // key the owner binds to this button, e.g. "enter"
	Tokens    []string // extra style tokens, see ApplyTokens
}

// Button renders a clickable-looking control. It holds no state; the owner
// maps its key bindings to whatever the button stands for.
func Button(opt ButtonOptions) string {
	style := variantStyle(opt.Variant).Inherit(sizeStyle(opt.Size))
	switch opt.Size {
	case SizeSmall:
		style = style.Padding(0, 0)
	case SizeLarge:
		style = style.Padding(0, 2)
	default:
		style = style.Padding(0, 1)
	}
	if opt.Focused {
		style = style.Bold(true).Underline(true)
	}
	if opt.FullWidth && opt.Width > 0 {
		style = style.Width(opt.Width).Align(lipgloss.Center)
	}
	style = ApplyTokens(style, opt.Tokens)

	label := opt.Label
	if opt.Hint != "" {
		label += " " + opt.Hint
	}
	return style.Render(label)
}

func variantStyle(v Variant) lipgloss.Style {
	t := current
	base := lipgloss.NewStyle()
	if t.Name == "mono" {
		if v == VariantPrimary || v == VariantDanger {
			return base.Reverse(true)
		}
		return base
	}
	switch v {
	case VariantSecondary:
		return base.Foreground(t.AccentColor).Background(lipgloss.Color("236"))
	case VariantDanger:
		return base.Foreground(lipgloss.Color("15")).Background(t.ErrorColor)
	case VariantGhost:
		return base.Foreground(t.MutedColor)
	default:
		return base.Foreground(lipgloss.Color("15")).Background(t.AccentColor)
	}
}

func sizeStyle(s Size) lipgloss.Style {
	if s == SizeLarge {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle()
}
