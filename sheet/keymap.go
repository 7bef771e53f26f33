package sheet

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the grid key bindings.
//
// Terminals do not report shift+enter, so the reverse of Enter is bound to
// alt+enter.
type KeyMap struct {
	Up, Down, Left, Right                     key.Binding
	ShiftUp, ShiftDown, ShiftLeft, ShiftRight key.Binding

	Tab, ShiftTab       key.Binding
	Enter, ReverseEnter key.Binding
	Escape              key.Binding
	Delete              key.Binding

	Copy, Cut, Paste key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),

		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "extend up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "extend down")),
		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "extend left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "extend right")),

		Tab:          key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next cell")),
		ShiftTab:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous cell")),
		Enter:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit / commit")),
		ReverseEnter: key.NewBinding(key.WithKeys("alt+enter"), key.WithHelp("alt+enter", "commit up")),
		Escape:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel edit")),
		Delete:       key.NewBinding(key.WithKeys("delete", "backspace"), key.WithHelp("del", "clear")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),
	}
}
