package grid

type locState struct {
	active bool
	loc    Loc
}

func (l locState) get() (Loc, bool) { return l.loc, l.active }

func (l locState) is(at Loc) bool { return l.active && l.loc == at }

type selectionState struct {
	active bool
	start  Loc
	end    Loc
}

func (s selectionState) get() (Selection, bool) {
	if !s.active {
		return Selection{}, false
	}
	return Selection{Start: s.start, End: s.end}, true
}

// fields is the comparable part of State; any effective change bumps the
// version.
type fields struct {
	sel        selectionState
	controlled bool
	held       selectionState

	selecting bool
	editing   locState
	clearing  locState
	forceEdit bool

	copydownDragging bool
	target           Target
	targetOK         bool

	editValue string
}

// State is the mutable selection and interaction state of one grid.
//
// The selection may be controlled by the host (see Control). In that mode
// SetSelection never stores: it notifies the host, and Selection returns
// whatever the host last supplied.
type State struct {
	f        fields
	version  uint64
	onSelect func(Selection)
}

// NewState returns an empty state: no selection, nothing edited or dragged.
func NewState() *State { return &State{} }

func (s *State) Version() uint64 { return s.version }

// SetOnSelect installs the selection-change notification.
func (s *State) SetOnSelect(fn func(Selection)) { s.onSelect = fn }

func (s *State) update(fn func(f *fields)) {
	prev := s.f
	fn(&s.f)
	if s.f != prev {
		s.version++
	}
}

// Controlled reports whether the host owns the selection.
func (s *State) Controlled() bool { return s.f.controlled }

// Control switches to controlled mode with the host-supplied selection.
// ok is false for a host value with no selection.
func (s *State) Control(sel Selection, ok bool) {
	s.update(func(f *fields) {
		f.controlled = true
		f.held = selectionState{}
		if ok {
			f.held = selectionState{active: true, start: sel.Start, end: sel.End}
		}
	})
}

// Uncontrol returns selection ownership to the state. The last host value
// becomes the local selection.
func (s *State) Uncontrol() {
	if !s.f.controlled {
		return
	}
	s.update(func(f *fields) {
		f.controlled = false
		f.sel = f.held
		f.held = selectionState{}
	})
}

// Selection returns the effective selection.
func (s *State) Selection() (Selection, bool) {
	if s.f.controlled {
		return s.f.held.get()
	}
	return s.f.sel.get()
}

// SetSelection requests a new selection.
//
// Uncontrolled, the selection is stored and the notification fires when End
// changed. Controlled, nothing is stored and the notification always fires.
func (s *State) SetSelection(sel Selection) {
	if s.f.controlled {
		s.notify(sel)
		return
	}
	prev, prevOK := s.f.sel.get()
	s.update(func(f *fields) {
		f.sel = selectionState{active: true, start: sel.Start, end: sel.End}
	})
	if !prevOK || prev.End != sel.End {
		s.notify(sel)
	}
}

func (s *State) notify(sel Selection) {
	if s.onSelect != nil {
		s.onSelect(sel)
	}
}

// IsSelected reports whether l lies within the effective selection,
// whatever the corner order.
func (s *State) IsSelected(l Loc) bool {
	sel, ok := s.Selection()
	return ok && Normalize(sel).Contains(l)
}

// IsSingleSelected reports whether l is the only selected cell.
func (s *State) IsSingleSelected(l Loc) bool {
	sel, ok := s.Selection()
	return ok && sel.Start == l && sel.End == l
}

// IsBottomRight reports whether l is the bottom-right cell of the selection.
func (s *State) IsBottomRight(l Loc) bool {
	sel, ok := s.Selection()
	return ok && Normalize(sel).Max == l
}

func (s *State) Editing() (Loc, bool) { return s.f.editing.get() }

func (s *State) IsEditing(l Loc) bool { return s.f.editing.is(l) }

func (s *State) Clearing() (Loc, bool) { return s.f.clearing.get() }

func (s *State) IsClearing(l Loc) bool { return s.f.clearing.is(l) }

func (s *State) ForceEdit() bool { return s.f.forceEdit }

func (s *State) SetForceEdit(v bool) {
	s.update(func(f *fields) { f.forceEdit = v })
}

// BeginEdit puts l in edit mode and ends any drag selection.
//
// With clear set the cell is shown blank while typing (the edit started by
// typing over it) and forceEdit is off; otherwise forceEdit is on.
// prev/replaced report a different cell that was being edited; the caller is
// expected to have settled that edit already.
func (s *State) BeginEdit(l Loc, clear bool) (prev Loc, replaced bool) {
	if cur, ok := s.f.editing.get(); ok && cur != l {
		prev, replaced = cur, true
	}
	s.update(func(f *fields) {
		f.editing = locState{active: true, loc: l}
		f.clearing = locState{}
		if clear {
			f.clearing = locState{active: true, loc: l}
		}
		f.forceEdit = !clear
		f.selecting = false
		f.editValue = ""
	})
	return prev, replaced
}

// StopEdit leaves edit mode.
func (s *State) StopEdit() {
	s.update(func(f *fields) {
		f.editing = locState{}
		f.clearing = locState{}
		f.editValue = ""
	})
}

func (s *State) EditValue() string { return s.f.editValue }

// SetEditValue records the in-progress editor value. It is ignored when no
// cell is being edited.
func (s *State) SetEditValue(v string) {
	if !s.f.editing.active {
		return
	}
	s.update(func(f *fields) { f.editValue = v })
}

func (s *State) Selecting() bool { return s.f.selecting }

// SetSelecting marks a drag selection in progress. It is refused while a
// cell is being edited.
func (s *State) SetSelecting(v bool) {
	if v && s.f.editing.active {
		return
	}
	s.update(func(f *fields) { f.selecting = v })
}

func (s *State) CopydownDragging() bool { return s.f.copydownDragging }

// StartCopydown begins a copydown drag with no target.
func (s *State) StartCopydown() {
	s.update(func(f *fields) {
		f.copydownDragging = true
		f.selecting = false
		f.target, f.targetOK = Target{}, false
	})
}

// SetCopydownTarget records the current fill target; ok false clears it.
func (s *State) SetCopydownTarget(t Target, ok bool) {
	if !s.f.copydownDragging {
		return
	}
	if !ok {
		t = Target{}
	}
	s.update(func(f *fields) { f.target, f.targetOK = t, ok })
}

func (s *State) CopydownTarget() (Target, bool) {
	return s.f.target, s.f.targetOK
}

// IsCopydownTargeted reports whether l would be written by the pending fill.
func (s *State) IsCopydownTargeted(l Loc) bool {
	if !s.f.targetOK {
		return false
	}
	sel, ok := s.Selection()
	return ok && s.f.target.Covers(sel, l)
}

// EndDrag finishes drag selection and copydown drags.
func (s *State) EndDrag() {
	s.update(func(f *fields) {
		f.selecting = false
		f.copydownDragging = false
		f.target, f.targetOK = Target{}, false
	})
}

// Reset returns to the initial state. A host-controlled selection is kept:
// it remains the host's to change.
func (s *State) Reset() {
	s.update(func(f *fields) {
		controlled, held := f.controlled, f.held
		*f = fields{controlled: controlled, held: held}
	})
}
