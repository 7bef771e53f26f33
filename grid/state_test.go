package grid

import "testing"

func TestState_IsSelectedAllCornerOrders(t *testing.T) {
	corners := [][2]Loc{
		{{Row: 0, Col: 0}, {Row: 1, Col: 1}},
		{{Row: 1, Col: 1}, {Row: 0, Col: 0}},
		{{Row: 0, Col: 1}, {Row: 1, Col: 0}},
		{{Row: 1, Col: 0}, {Row: 0, Col: 1}},
	}
	for _, c := range corners {
		s := NewState()
		s.SetSelection(Selection{Start: c[0], End: c[1]})
		for row := 0; row < 3; row++ {
			for col := 0; col < 3; col++ {
				want := row <= 1 && col <= 1
				if got := s.IsSelected(Loc{Row: row, Col: col}); got != want {
					t.Fatalf("corners %v: IsSelected(%d,%d) got %v, want %v", c, row, col, got, want)
				}
			}
		}
	}
}

func TestState_EmptySelectionIsNotOrigin(t *testing.T) {
	s := NewState()
	if _, ok := s.Selection(); ok {
		t.Fatalf("new state: expected no selection")
	}
	if s.IsSelected(Loc{}) {
		t.Fatalf("new state: origin must not be selected")
	}
	if s.IsEditing(Loc{}) || s.IsClearing(Loc{}) {
		t.Fatalf("new state: origin must not be editing/clearing")
	}
}

func TestState_UncontrolledNotifiesOnEndChange(t *testing.T) {
	var got []Selection
	s := NewState()
	s.SetOnSelect(func(sel Selection) { got = append(got, sel) })

	s.SetSelection(Single(Loc{Row: 1, Col: 1}))
	s.SetSelection(Selection{Start: Loc{}, End: Loc{Row: 1, Col: 1}})
	s.SetSelection(Selection{Start: Loc{}, End: Loc{Row: 2, Col: 1}})

	if len(got) != 2 {
		t.Fatalf("notifications: got %d, want 2", len(got))
	}
	if got[1].End != (Loc{Row: 2, Col: 1}) {
		t.Fatalf("last notification: got %v", got[1])
	}
}

func TestState_ControlledNeverStoresWithoutNotifying(t *testing.T) {
	var host Selection
	notified := 0
	s := NewState()
	s.SetOnSelect(func(sel Selection) {
		notified++
		host = sel
	})
	s.Control(Single(Loc{}), true)

	before := s.Version()
	s.SetSelection(Selection{Start: Loc{}, End: Loc{Row: 2, Col: 2}})
	if notified != 1 {
		t.Fatalf("notifications: got %d, want 1", notified)
	}
	if s.Version() != before {
		t.Fatalf("controlled SetSelection changed local state")
	}
	if sel, _ := s.Selection(); sel != Single(Loc{}) {
		t.Fatalf("controlled selection diverged: got %v", sel)
	}

	// Host echoes the notified value back.
	s.Control(host, true)
	if sel, ok := s.Selection(); !ok || sel != host {
		t.Fatalf("echoed selection: got (%v,%v), want (%v,true)", sel, ok, host)
	}
	if !s.IsSelected(Loc{Row: 2, Col: 2}) {
		t.Fatalf("echoed selection not rendered as selected")
	}
}

func TestState_ResetKeepsControlledSelection(t *testing.T) {
	s := NewState()
	s.Control(Single(Loc{Row: 1}), true)
	s.BeginEdit(Loc{Row: 1}, false)
	s.Reset()

	if _, ok := s.Editing(); ok {
		t.Fatalf("reset: expected editing cleared")
	}
	if sel, ok := s.Selection(); !ok || sel != Single(Loc{Row: 1}) {
		t.Fatalf("reset: controlled selection lost, got (%v,%v)", sel, ok)
	}

	s.Uncontrol()
	if sel, ok := s.Selection(); !ok || sel != Single(Loc{Row: 1}) {
		t.Fatalf("uncontrol: expected host value adopted, got (%v,%v)", sel, ok)
	}
}

func TestState_BeginEditExclusiveAndCollapsesSelecting(t *testing.T) {
	s := NewState()
	s.SetSelecting(true)

	if _, replaced := s.BeginEdit(Loc{Row: 0, Col: 0}, false); replaced {
		t.Fatalf("first edit: nothing to replace")
	}
	if s.Selecting() {
		t.Fatalf("BeginEdit must collapse selecting")
	}
	if !s.ForceEdit() {
		t.Fatalf("BeginEdit without clear: expected forceEdit")
	}

	prev, replaced := s.BeginEdit(Loc{Row: 1, Col: 0}, true)
	if !replaced || prev != (Loc{Row: 0, Col: 0}) {
		t.Fatalf("second edit: got (%v,%v), want ((0,0),true)", prev, replaced)
	}
	if s.IsEditing(Loc{Row: 0, Col: 0}) || !s.IsEditing(Loc{Row: 1, Col: 0}) {
		t.Fatalf("editing not exclusive")
	}
	if !s.IsClearing(Loc{Row: 1, Col: 0}) || s.ForceEdit() {
		t.Fatalf("typing edit: expected clearing without forceEdit")
	}

	s.SetSelecting(true)
	if s.Selecting() {
		t.Fatalf("selecting must be refused while editing")
	}

	s.SetEditValue("abc")
	if s.EditValue() != "abc" {
		t.Fatalf("edit value: got %q", s.EditValue())
	}
	s.StopEdit()
	if _, ok := s.Editing(); ok || s.EditValue() != "" {
		t.Fatalf("StopEdit: expected editing and buffer cleared")
	}
	if _, ok := s.Clearing(); ok {
		t.Fatalf("StopEdit: expected clearing cleared")
	}
}

func TestState_CopydownLifecycle(t *testing.T) {
	s := NewState()
	s.SetSelection(Single(Loc{}))

	s.SetCopydownTarget(Target{Axis: AxisRow, Delta: 1}, true)
	if _, ok := s.CopydownTarget(); ok {
		t.Fatalf("target set without drag")
	}

	s.StartCopydown()
	s.SetCopydownTarget(Target{Axis: AxisRow, Delta: 2}, true)
	if !s.IsCopydownTargeted(Loc{Row: 2}) || s.IsCopydownTargeted(Loc{Row: 3}) {
		t.Fatalf("targeted cells wrong")
	}

	s.EndDrag()
	if s.CopydownDragging() || s.IsCopydownTargeted(Loc{Row: 1}) {
		t.Fatalf("EndDrag: expected drag cleared")
	}
}

func TestState_VersionBumpsOnlyOnEffectiveChange(t *testing.T) {
	s := NewState()
	s.SetSelection(Single(Loc{}))
	v := s.Version()

	s.SetSelection(Single(Loc{}))
	s.StopEdit()
	s.EndDrag()
	if s.Version() != v {
		t.Fatalf("no-op transitions bumped version: got %d, want %d", s.Version(), v)
	}

	s.SetSelecting(true)
	if s.Version() != v+1 {
		t.Fatalf("version after selecting: got %d, want %d", s.Version(), v+1)
	}
}
