package sheet

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/datasheet/grid"
)

// CellEditor is the in-place editor of one cell.
//
// The sheet forwards keys and other messages to the editor while the cell is
// being edited. Value is read when the edit is committed.
//
// On a component cell the sheet reacts to Enter, Tab and Escape only after
// the command the editor returned for that key has produced its message, so
// a CommitMsg from that command lands before the sheet moves on. Editors
// should return quick commands for those keys; a timer there delays
// navigation by its duration.
type CellEditor interface {
	Update(msg tea.Msg) (CellEditor, tea.Cmd)
	View() string
	Value() string
}

// EditorContext describes the cell an editor is built for.
type EditorContext struct {
	Cell grid.Cell
	Row  int
	Col  int
	// Initial is "" when the edit was started by typing over the cell.
	Initial string
	Width   int
	// ForceEdit is set when the edit was started explicitly (Enter, double
	// click) rather than by typing.
	ForceEdit bool
}

type EditorFunc func(ctx EditorContext) (CellEditor, tea.Cmd)

type textEditor struct {
	input textinput.Model
}

// TextEditor is the default editor: a single-line bubbles text input.
func TextEditor(ctx EditorContext) (CellEditor, tea.Cmd) {
	in := textinput.New()
	in.Prompt = ""
	in.Width = ctx.Width - 1
	if in.Width < 1 {
		in.Width = 1
	}
	in.SetValue(ctx.Initial)
	in.CursorEnd()
	cmd := in.Focus()
	return textEditor{input: in}, cmd
}

func (e textEditor) Update(msg tea.Msg) (CellEditor, tea.Cmd) {
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return e, cmd
}

func (e textEditor) View() string { return e.input.View() }

func (e textEditor) Value() string { return e.input.Value() }

// editSession is the open editor of the editing cell.
type editSession struct {
	active    bool
	at        grid.Loc
	editor    CellEditor
	initial   string
	component bool
	// forced components handle Enter, Tab and Escape themselves.
	forced bool
}
