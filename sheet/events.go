package sheet

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/datasheet/grid"
)

// SelectEvent reports a selection change. With a controlled selection it is
// a request: the host echoes it back through SetSelected to apply it.
type SelectEvent struct {
	Start, End grid.Loc
}

// Selection returns the event as a grid.Selection.
func (e SelectEvent) Selection() grid.Selection {
	return grid.Selection{Start: e.Start, End: e.End}
}

type ContextMenuEvent struct {
	// Mouse is the originating mouse event, zero for ContextMenuMsg without
	// one.
	Mouse tea.MouseMsg
	Cell  grid.Cell
	Row   int
	Col   int
}

// CellState is the read-only view state of one cell.
type CellState struct {
	Selected bool
	// Handle marks the single selected cell that shows the copydown handle.
	Handle      bool
	BottomRight bool
	Editing     bool
	Clearing    bool
	Targeted    bool

	// Sheet-wide flags, repeated for renderers.
	ForceEdit        bool
	Selecting        bool
	CopydownDragging bool
}

// CellContext is passed to Config.CellRenderer.
type CellContext struct {
	Cell  grid.Cell
	Row   int
	Col   int
	Width int
	State CellState
	// Text is the display text from Config.ValueRenderer.
	Text string
}
