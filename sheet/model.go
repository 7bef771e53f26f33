package sheet

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/datasheet/grid"
)

// Model is a Bubble Tea component that renders and interacts with a grid.
type Model struct {
	cfg   Config
	data  grid.Data
	state *grid.State
	life  *lifecycle

	focused bool
	edit    editSession

	width, height int
	viewport      viewport.Model
	colOffset     int

	lastEnd   grid.Loc
	lastEndOK bool

	lastPress press
	now       func() time.Time

	// renderedVersion is the state version of the current viewport content.
	renderedVersion uint64
	rendered        bool
}

// press records the last primary button press for double-click detection.
type press struct {
	at   grid.Loc
	when time.Time
	ok   bool
}

// New creates a sheet from cfg, filling in defaults for unset fields.
//
// The returned model is focused and already holds its input subscriptions
// (clipboard shortcuts, paste, pointer-up and outside click), so a host can
// paste into an initial selection before any pointer interaction. Blur and
// outside clicks release them; Focus and pointer presses acquire them again.
func New(cfg Config) Model {
	cfg = cfg.withDefaults()
	m := Model{
		cfg:      cfg,
		data:     cfg.Data,
		state:    grid.NewState(),
		life:     &lifecycle{},
		focused:  true,
		viewport: viewport.New(0, 0),
		now:      time.Now,
	}
	if cfg.OnSelect != nil {
		onSelect := cfg.OnSelect
		m.state.SetOnSelect(func(sel grid.Selection) {
			onSelect(SelectEvent{Start: sel.Start, End: sel.End})
		})
	}
	if cfg.ControlledSelection {
		if cfg.Selected != nil {
			m.state.Control(*cfg.Selected, true)
		} else {
			m.state.Control(grid.Selection{}, false)
		}
	}
	m.life.subs.acquire()
	m.rebuildContent()
	return m
}

// State exposes the interaction state. Hosts should treat it as read-only.
func (m Model) State() *grid.State { return m.state }

func (m Model) Data() grid.Data { return m.data }

// SetData replaces the grid, typically after the host applied a mutation.
// An edit in progress on a cell that no longer exists is dropped.
func (m Model) SetData(d grid.Data) Model {
	m.data = d
	if m.edit.active && !d.Has(m.edit.at) {
		m.closeEditor(false)
	}
	m.rebuildContent()
	return m
}

func (m Model) Selection() (grid.Selection, bool) { return m.state.Selection() }

// SetSelected supplies the host-owned selection and keeps the selection
// controlled from now on. ok false means no selection.
func (m Model) SetSelected(sel grid.Selection, ok bool) Model {
	m.state.Control(sel, ok)
	m.sync()
	return m
}

// ReleaseSelection returns selection ownership to the component, starting
// from the last host value.
func (m Model) ReleaseSelection() Model {
	m.state.Uncontrol()
	m.sync()
	return m
}

// Editing returns the cell being edited.
func (m Model) Editing() (grid.Loc, bool) { return m.state.Editing() }

// CellState returns the view state of the cell at (row, col).
func (m Model) CellState(row, col int) CellState {
	l := grid.Loc{Row: row, Col: col}
	s := m.state
	editing := s.IsEditing(l)
	return CellState{
		Selected:         s.IsSelected(l),
		Handle:           s.IsSingleSelected(l) && !editing,
		BottomRight:      s.IsBottomRight(l),
		Editing:          editing,
		Clearing:         s.IsClearing(l),
		Targeted:         s.IsCopydownTargeted(l),
		ForceEdit:        s.ForceEdit(),
		Selecting:        s.Selecting(),
		CopydownDragging: s.CopydownDragging(),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	m.width, m.height = width, height
	m.viewport.Width = width
	m.viewport.Height = height - m.headerHeight()
	if m.viewport.Height < 0 {
		m.viewport.Height = 0
	}

	m.rebuildContent()
	m.followSelection(true)
	return m
}

// Focus gives the sheet keyboard input and resumes its clipboard and
// outside-click subscriptions.
func (m Model) Focus() Model {
	if m.life.closed {
		return m
	}
	m.life.subs.acquire()
	if !m.focused {
		m.focused = true
		m.rebuildContent()
	}
	return m
}

// Blur stops keyboard handling and releases every subscription. A drag in
// progress ends here since its pointer-up will no longer be seen.
func (m Model) Blur() Model {
	m.state.EndDrag()
	m.life.subs.releaseAll()
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// Close tears the component down: subscriptions are released, the open
// editor is discarded and pending deferred work becomes inert. A closed
// model ignores all input.
func (m Model) Close() Model {
	m.life.subs.releaseAll()
	m.life.closed = true
	m.closeEditor(false)
	return m
}

func (m Model) Closed() bool { return m.life.closed }

func (m Model) View() string {
	if !m.hasHeaders() {
		return m.viewport.View()
	}
	return m.renderHeader() + "\n" + m.viewport.View()
}

// sync re-renders after a state change and scrolls to a moved selection end.
// An open editor is always re-rendered; its view changes without the state.
func (m *Model) sync() {
	if m.edit.active || !m.rendered || m.state.Version() != m.renderedVersion {
		m.rebuildContent()
	}
	m.followSelection(false)
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
	m.renderedVersion, m.rendered = m.state.Version(), true
}
