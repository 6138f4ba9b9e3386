package editor

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	// input focus
	Submit key.Binding
	Leave  key.Binding

	// row focus
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Delete key.Binding
	Undo   key.Binding
	Edit   key.Binding
	Input  key.Binding
	Quit   key.Binding

	// anywhere
	SwitchFocus key.Binding
	ForceQuit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Leave:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "to list")),

		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space", "toggle")),
		Delete: key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete")),
		Undo:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Edit:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Input:  key.NewBinding(key.WithKeys("a", "i"), key.WithHelp("a", "add")),
		Quit:   key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),

		SwitchFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

func (k keyMap) inputHelp() []key.Binding {
	return []key.Binding{k.Submit, k.SwitchFocus, k.Leave}
}

func (k keyMap) editHelp() []key.Binding {
	k.Submit.SetHelp("enter", "save")
	k.Leave.SetHelp("esc", "cancel")
	return []key.Binding{k.Submit, k.Leave}
}

func (k keyMap) rowHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Edit, k.Delete, k.Undo, k.Input, k.Quit}
}
