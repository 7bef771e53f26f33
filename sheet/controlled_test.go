package sheet

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/datasheet/grid"
)

func TestControlled_ReportsWithoutStoring(t *testing.T) {
	var events []SelectEvent
	start := grid.Single(grid.Loc{})
	m := newSheet(Config{
		Data:                textData([]string{"a", "b"}, []string{"c", "d"}),
		ControlledSelection: true,
		Selected:            &start,
		OnSelect:            func(ev SelectEvent) { events = append(events, ev) },
	})

	m = send(m, keyMsg(tea.KeyRight))
	if len(events) != 1 || events[0].Selection() != grid.Single(grid.Loc{Col: 1}) {
		t.Fatalf("select events: got %+v", events)
	}
	if got := mustSelection(t, m); got != start {
		t.Fatalf("controlled selection changed locally: got %v", got)
	}

	m = m.SetSelected(events[0].Selection(), true)
	if got := mustSelection(t, m); got != grid.Single(grid.Loc{Col: 1}) {
		t.Fatalf("echoed selection: got %v", got)
	}
	if !m.CellState(0, 1).Selected || m.CellState(0, 0).Selected {
		t.Fatalf("cell state does not follow the host selection")
	}
}

func TestControlled_NoInitialSelection(t *testing.T) {
	var events []SelectEvent
	m := newSheet(Config{
		Data:                textData([]string{"a", "b"}),
		ControlledSelection: true,
		OnSelect:            func(ev SelectEvent) { events = append(events, ev) },
	})
	m = send(m, PointerDownMsg{Row: 0, Col: 1})
	if _, ok := m.Selection(); ok {
		t.Fatalf("controlled sheet stored a selection")
	}
	if len(events) != 1 || events[0].End != (grid.Loc{Col: 1}) {
		t.Fatalf("select events: got %+v", events)
	}
}

func TestControlled_OutsideClickKeepsHostSelection(t *testing.T) {
	sel := grid.Single(grid.Loc{Row: 1})
	m := newSheet(Config{
		Data:                textData([]string{"a"}, []string{"b"}),
		ControlledSelection: true,
		Selected:            &sel,
	})
	m = send(m, OutsideClickMsg{})
	if got := mustSelection(t, m); got != sel {
		t.Fatalf("outside click dropped the host selection: got %v", got)
	}

	m = m.ReleaseSelection()
	m = send(m, keyMsg(tea.KeyUp))
	if got := mustSelection(t, m); got != grid.Single(grid.Loc{}) {
		t.Fatalf("released selection did not move: got %v", got)
	}
}

func TestUncontrolled_OnSelectFiresOnEndChange(t *testing.T) {
	var events []SelectEvent
	m := newSheet(Config{
		Data:     textData([]string{"a", "b"}, []string{"c", "d"}),
		OnSelect: func(ev SelectEvent) { events = append(events, ev) },
	})
	m = selectCell(m, 0, 0)
	m = send(m, keyMsg(tea.KeyShiftRight), keyMsg(tea.KeyShiftRight))

	if len(events) != 2 {
		t.Fatalf("select events: got %d, want 2", len(events))
	}
	if events[1].End != (grid.Loc{Col: 1}) {
		t.Fatalf("last event: got %+v", events[1])
	}
}
