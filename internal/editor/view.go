package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/ui"
)

// frame + padding taken by ui.Card on each line
const cardChrome = 4

// View renders the card: header, input with its button, rows and help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	width := m.cardWidth()
	inner := width - cardChrome

	sections := []string{
		m.headerView(inner),
		m.inputView(inner),
		"",
		m.rowsView(inner),
		"",
		m.help.ShortHelpView(m.helpKeys()),
	}
	return ui.Card(ui.CardOptions{Title: m.opts.Title, Width: width}, strings.Join(sections, "\n"))
}

func (m Model) cardWidth() int {
	w := m.opts.Width
	if m.width > 0 && m.width < w {
		w = m.width
	}
	return max(w, cardChrome+20)
}

// header with live counts
func (m Model) headerView(inner int) string {
	t := ui.Current()
	done, pending := m.list.Stats()
	counts := fmt.Sprintf("%s %d  %s %d  %s %d",
		t.Success.Render(t.SymDone), done,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), m.list.Len(),
	)
	bar := t.Muted.Render(ui.ProgressBar(done, done+pending, min(28, inner-5)))
	return counts + "\n" + bar
}

// submitButton is "Add", or "Save" while editing. The enter hint shows
// only while the input has focus.
func (m Model) submitButton(focused bool) string {
	label := "Add"
	if m.editing {
		label = "Save"
	}
	opt := ui.ButtonOptions{Label: label, Variant: ui.VariantPrimary, Focused: focused}
	if focused {
		opt.Hint = m.keys.Submit.Help().Key
	}
	return ui.Button(opt)
}

// fitInput sizes the text field so field and button share one line:
// prompt, text, cursor cell, gap, button at its widest.
func (m *Model) fitInput() {
	inner := m.cardWidth() - cardChrome
	hint := m.keys.Submit.Help().Key
	widest := max(
		lipgloss.Width(ui.Button(ui.ButtonOptions{Label: "Add", Hint: hint})),
		lipgloss.Width(ui.Button(ui.ButtonOptions{Label: "Save", Hint: hint})),
	)
	m.input.Width = max(inner-widest-lipgloss.Width(m.input.Prompt)-2, 1)
}

func (m Model) inputView(inner int) string {
	add := m.submitButton(m.focus == focusInput)
	field := m.input.View()
	gap := max(inner-lipgloss.Width(field)-lipgloss.Width(add), 1)
	return field + strings.Repeat(" ", gap) + add
}

func (m Model) rowsView(inner int) string {
	if m.list.Len() == 0 {
		return ui.Current().Muted.Render(m.opts.EmptyMessage)
	}
	rows := make([]string, 0, m.list.Len())
	for i, it := range m.list.Items() {
		rows = append(rows, m.rowView(it, m.focus == focusRows && i == m.cursor, inner))
	}
	return strings.Join(rows, "\n")
}

// rowView renders one item: cursor, checkbox, title and a Delete button.
// Done titles are struck through.
func (m Model) rowView(it model.Item, selected bool, inner int) string {
	t := ui.Current()

	prefix := "  "
	if selected {
		prefix = t.Selected.Render(">") + " "
	}
	box := t.Muted.Render(t.BoxUnchecked)
	if it.Done {
		box = t.Success.Render(t.BoxChecked)
	}
	delOpt := ui.ButtonOptions{
		Label:   "Delete",
		Variant: ui.VariantDanger,
		Size:    ui.SizeSmall,
		Focused: selected,
	}
	if selected {
		delOpt.Hint = m.keys.Delete.Help().Key
	}
	del := ui.Button(delOpt)

	room := inner - lipgloss.Width(prefix) - lipgloss.Width(box) - 1 - lipgloss.Width(del) - 1
	title := ansi.Truncate(it.Title, max(room, 1), "…")
	if it.Done {
		title = t.Done.Render(title)
	}

	left := prefix + box + " " + title
	gap := max(inner-lipgloss.Width(left)-lipgloss.Width(del), 1)
	return left + strings.Repeat(" ", gap) + del
}

func (m Model) helpKeys() []key.Binding {
	if m.editing {
		return m.keys.editHelp()
	}
	if m.focus == focusInput {
		return m.keys.inputHelp()
	}
	k := m.keys
	k.Undo.SetEnabled(m.undo != nil)
	return k.rowHelp()
}
