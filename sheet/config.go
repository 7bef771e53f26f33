package sheet

import (
	"time"

	"github.com/iw2rmb/datasheet/grid"
)

const (
	defaultColumnWidth       = 10
	defaultDoubleClickWindow = 400 * time.Millisecond
)

// Config configures the sheet Model.
type Config struct {
	// Data is the initial grid. The host replaces it with SetData after
	// applying mutations.
	Data grid.Data

	// IsCellNavigable decides which cells arrow and tab navigation may land
	// on. Nil means every cell.
	IsCellNavigable grid.NavigableFunc

	// ValueRenderer produces the display text of a cell. Defaults to
	// grid.DisplayText.
	ValueRenderer grid.TextFunc
	// DataRenderer produces the raw text used for copying and as the initial
	// editor text. When it returns "" ValueRenderer is used.
	DataRenderer grid.TextFunc
	// ParsePaste turns clipboard text into rows of values. Defaults to
	// grid.ParsePaste.
	ParsePaste grid.ParseFunc

	// OnMutation receives every mutation as one intent. When set, Channels
	// is not used.
	OnMutation func(grid.Mutation)
	// Channels adapts mutations to per-shape callbacks.
	Channels grid.Channels

	OnSelect      func(SelectEvent)
	OnContextMenu func(ContextMenuEvent)

	// ControlledSelection hands selection ownership to the host. Selected is
	// the initial host value (nil for none); later values arrive through
	// Model.SetSelected.
	ControlledSelection bool
	Selected            *grid.Selection

	// Editor builds the editor for regular cells. Defaults to a single-line
	// text input.
	Editor EditorFunc
	// ComponentEditor builds the editor for cells with Component set. Falls
	// back to Editor.
	ComponentEditor EditorFunc

	// CellRenderer replaces the default rendering of a non-editing cell.
	CellRenderer func(ctx CellContext) string

	Clipboard Clipboard

	// KeyMap defaults to DefaultKeyMap. The zero Style renders plain text;
	// use DefaultStyle for the stock look.
	KeyMap KeyMap
	Style  Style

	// ColumnWidths holds per-column content widths in terminal cells; zero
	// or missing entries use DefaultColumnWidth.
	ColumnWidths       []int
	DefaultColumnWidth int

	// ShowHeaders renders column letters and row numbers.
	ShowHeaders bool

	// DoubleClickInterval is the longest gap between two presses on the same
	// cell that counts as a double click.
	DoubleClickInterval time.Duration
}

func (c Config) withDefaults() Config {
	if c.ValueRenderer == nil {
		c.ValueRenderer = grid.DisplayText
	}
	if c.ParsePaste == nil {
		c.ParsePaste = grid.ParsePaste
	}
	if c.Editor == nil {
		c.Editor = TextEditor
	}
	if c.ComponentEditor == nil {
		c.ComponentEditor = c.Editor
	}
	if c.DefaultColumnWidth <= 0 {
		c.DefaultColumnWidth = defaultColumnWidth
	}
	if c.DoubleClickInterval <= 0 {
		c.DoubleClickInterval = defaultDoubleClickWindow
	}
	if len(c.KeyMap.Up.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}

func (c Config) renderers() grid.Renderers {
	return grid.Renderers{Data: c.DataRenderer, Value: c.ValueRenderer}
}
