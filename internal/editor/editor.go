// Package editor implements the list editor: a Bubble Tea model that owns one
// model.List and mutates it in response to key presses.
package editor

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/idilsaglam/todo/internal/model"
	"github.com/idilsaglam/todo/internal/ui"
)

// Options configure a Model. Zero values take defaults.
type Options struct {
	Title        string
	EmptyMessage string
	Placeholder  string
	CharLimit    int
	Width        int // card width; narrowed to the terminal when smaller
	Logger       *slog.Logger
	IDFunc       model.IDFunc
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "Todo List"
	}
	if o.EmptyMessage == "" {
		o.EmptyMessage = "No todos yet. Add one above!"
	}
	if o.Placeholder == "" {
		o.Placeholder = "Add a new todo..."
	}
	if o.CharLimit <= 0 {
		o.CharLimit = 200
	}
	if o.Width <= 0 {
		o.Width = 60
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o
}

type focus int

const (
	focusInput focus = iota
	focusRows
)

// removal remembers the last deleted item for a single-level undo.
type removal struct {
	item  model.Item
	index int
}

// Model is the list editor. The list starts empty and lives as long as the
// Model; nothing is persisted.
type Model struct {
	list   *model.List
	input  textinput.Model
	keys   keyMap
	help   help.Model
	focus  focus
	cursor int
	width  int // terminal width, 0 until the first WindowSizeMsg
	opts   Options
	log    *slog.Logger

	undo     *removal
	quitting bool

	// inline edit; the input holds the new title while editing is set
	editing bool
	editID  uuid.UUID
}

// New returns an editor with an empty list and the input focused.
func New(opts Options) Model {
	opts = opts.withDefaults()

	var listOpts []model.Option
	if opts.IDFunc != nil {
		listOpts = append(listOpts, model.WithIDFunc(opts.IDFunc))
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = opts.Placeholder
	ti.CharLimit = opts.CharLimit
	ti.Focus()

	h := help.New()
	hs := ui.Current().Help
	h.Styles.ShortKey = hs
	h.Styles.ShortDesc = hs
	h.Styles.ShortSeparator = hs
	h.Styles.Ellipsis = hs

	m := Model{
		list:  model.NewList(listOpts...),
		input: ti,
		keys:  defaultKeyMap(),
		help:  h,
		focus: focusInput,
		opts:  opts,
		log:   opts.Logger,
	}
	m.fitInput()
	return m
}

// AddItem appends a new item titled with the trimmed raw text and clears the
// pending input. Blank text is ignored.
func (m *Model) AddItem(raw string) bool {
	it, ok := m.list.Add(raw)
	if !ok {
		m.log.Debug("blank item ignored")
		return false
	}
	m.input.Reset()
	m.log.Debug("item added", "id", it.ID, "title", it.Title)
	return true
}

// ToggleItem flips the done flag of the item with id, if present.
func (m *Model) ToggleItem(id uuid.UUID) bool {
	if !m.list.Toggle(id) {
		return false
	}
	it, _ := m.list.Get(id)
	m.log.Debug("item toggled", "id", id, "done", it.Done)
	return true
}

// RemoveItem deletes the item with id, if present. The removal can be undone
// until the next one.
func (m *Model) RemoveItem(id uuid.UUID) bool {
	it, idx, ok := m.list.Remove(id)
	if !ok {
		return false
	}
	m.undo = &removal{item: it, index: idx}
	m.clampCursor()
	m.log.Debug("item removed", "id", id, "index", idx)
	return true
}

// RenameItem replaces the title of the item with id, if present. A blank
// title leaves the item unchanged.
func (m *Model) RenameItem(id uuid.UUID, raw string) bool {
	if !m.list.Rename(id, raw) {
		m.log.Debug("rename ignored", "id", id)
		return false
	}
	it, _ := m.list.Get(id)
	m.log.Debug("item renamed", "id", id, "title", it.Title)
	return true
}

// Undo restores the most recently removed item at its old position.
func (m *Model) Undo() bool {
	if m.undo == nil {
		return false
	}
	r := m.undo
	m.undo = nil
	if !m.list.Insert(r.index, r.item) {
		return false
	}
	m.cursor = min(r.index, m.list.Len()-1)
	m.log.Debug("removal undone", "id", r.item.ID, "index", r.index)
	return true
}

// Items returns a copy of the list in order.
func (m Model) Items() []model.Item { return m.list.Items() }

// Input returns the pending, not yet added text.
func (m Model) Input() string { return m.input.Value() }

// SetInput replaces the pending text.
func (m *Model) SetInput(s string) { m.input.SetValue(s) }

// Stats counts done and pending items.
func (m Model) Stats() (done, pending int) { return m.list.Stats() }

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd { return textinput.Blink }

// Update handles resizes and key presses; every list mutation happens here.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.fitInput()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.focus == focusInput {
			return m.updateInput(msg)
		}
		return m.updateRows(msg)
	}

	// cursor blink and friends
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editing {
		return m.updateEdit(msg)
	}
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.AddItem(m.input.Value())
		return m, nil
	case key.Matches(msg, m.keys.Leave), key.Matches(msg, m.keys.SwitchFocus):
		m.focusRows()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		if m.RenameItem(m.editID, m.input.Value()) {
			m.stopEditing()
		}
		return m, nil
	case key.Matches(msg, m.keys.Leave), key.Matches(msg, m.keys.SwitchFocus):
		m.stopEditing()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateRows(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < m.list.Len()-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Toggle):
		if it, ok := m.list.At(m.cursor); ok {
			m.ToggleItem(it.ID)
		}
	case key.Matches(msg, m.keys.Delete):
		if it, ok := m.list.At(m.cursor); ok {
			m.RemoveItem(it.ID)
		}
	case key.Matches(msg, m.keys.Undo):
		m.Undo()
	case key.Matches(msg, m.keys.Edit):
		if it, ok := m.list.At(m.cursor); ok {
			return m, m.startEditing(it)
		}
	case key.Matches(msg, m.keys.Input), key.Matches(msg, m.keys.SwitchFocus):
		return m, m.focusInput()
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) focusInput() tea.Cmd {
	m.focus = focusInput
	return m.input.Focus()
}

func (m *Model) startEditing(it model.Item) tea.Cmd {
	m.editing = true
	m.editID = it.ID
	m.input.SetValue(it.Title)
	m.input.CursorEnd()
	m.input.Placeholder = "Edit item title..."
	return m.focusInput()
}

// stopEditing leaves edit mode, drops the pending title and returns to the rows.
func (m *Model) stopEditing() {
	m.editing = false
	m.editID = uuid.Nil
	m.input.Reset()
	m.input.Placeholder = m.opts.Placeholder
	m.focusRows()
}

func (m *Model) focusRows() {
	m.focus = focusRows
	m.input.Blur()
	m.clampCursor()
}

func (m *Model) clampCursor() {
	m.cursor = max(0, min(m.cursor, m.list.Len()-1))
}
