package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuItem int

const (
	menuNone menuItem = iota
	menuCopy
	menuCut
	menuPaste
	menuClear
)

var menuItems = []struct {
	item  menuItem
	label string
}{
	{menuCopy, "Copy"},
	{menuCut, "Cut"},
	{menuPaste, "Paste"},
	{menuClear, "Clear"},
}

var (
	menuStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	menuCursor    = lipgloss.NewStyle().Reverse(true)
	menuItemWidth = 8
)

// contextMenu floats over the sheet at the pointer. Row and col name the
// cell it was opened on.
type contextMenu struct {
	x, y     int
	row, col int
	selected int
}

func newContextMenu(x, y, row, col int) *contextMenu {
	return &contextMenu{x: x, y: y, row: row, col: col}
}

// handleKey moves the cursor. done is set when the menu closes; item is
// menuNone when it was dismissed.
func (c *contextMenu) handleKey(msg tea.KeyMsg) (item menuItem, done bool) {
	switch msg.String() {
	case "up":
		if c.selected > 0 {
			c.selected--
		}
	case "down":
		if c.selected < len(menuItems)-1 {
			c.selected++
		}
	case "enter":
		return menuItems[c.selected].item, true
	case "esc":
		return menuNone, true
	}
	return menuNone, false
}

// itemAt maps screen coordinates to an entry. The frame is one cell of
// border plus one of padding on each side.
func (c *contextMenu) itemAt(x, y int) (menuItem, bool) {
	i := y - c.y - 1
	if x < c.x || x >= c.x+menuItemWidth+4 || i < 0 || i >= len(menuItems) {
		return menuNone, false
	}
	return menuItems[i].item, true
}

func (c *contextMenu) hover(x, y int) {
	i := y - c.y - 1
	if x >= c.x && x < c.x+menuItemWidth+4 && i >= 0 && i < len(menuItems) {
		c.selected = i
	}
}

func (c *contextMenu) View() string {
	lines := make([]string, len(menuItems))
	for i, it := range menuItems {
		label := it.label + strings.Repeat(" ", menuItemWidth-len(it.label))
		if i == c.selected {
			label = menuCursor.Render(label)
		}
		lines[i] = label
	}
	return menuStyle.Render(strings.Join(lines, "\n"))
}
