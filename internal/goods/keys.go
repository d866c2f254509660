package goods

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the row-level and list-level gestures.
type KeyMap struct {
	Add    key.Binding
	Edit   key.Binding
	Remove key.Binding
	Copy   key.Binding

	ForceQuit key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add:    key.NewBinding(key.WithKeys("a", "+"), key.WithHelp("a", "add")),
		Edit:   key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit")),
		Remove: key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "remove")),
		Copy:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),

		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k *KeyMap) bindings() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Remove, k.Copy}
}
