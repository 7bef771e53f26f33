package grid

import "testing"

func textData(rows ...[]string) Data {
	d := make(Data, 0, len(rows))
	for _, r := range rows {
		row := make([]Cell, 0, len(r))
		for _, v := range r {
			row = append(row, Cell{Value: v})
		}
		d = append(d, row)
	}
	return d
}

func skipCol(col int) NavigableFunc {
	return func(_ Cell, _, c int) bool { return c != col }
}

func TestFindSelectable_SkipsNonNavigable(t *testing.T) {
	d := textData([]string{"a", "b", "c"}, []string{"d", "e", "f"})

	got, ok := FindSelectable(d, Loc{Row: 0, Col: 0}, Offset{Cols: 1}, false, skipCol(1))
	if !ok || got != (Loc{Row: 0, Col: 2}) {
		t.Fatalf("move right: got (%v,%v), want ((0,2),true)", got, ok)
	}
}

func TestFindSelectable_WrapsToNextRow(t *testing.T) {
	d := textData([]string{"a", "b", "c"}, []string{"d", "e", "f"})
	onlyFirstCol := func(_ Cell, _, c int) bool { return c == 0 }

	if _, ok := FindSelectable(d, Loc{Row: 0, Col: 0}, Offset{Cols: 1}, false, onlyFirstCol); ok {
		t.Fatalf("no wrap: expected no movement")
	}

	got, ok := FindSelectable(d, Loc{Row: 0, Col: 0}, Offset{Cols: 1}, true, onlyFirstCol)
	if !ok || got != (Loc{Row: 1, Col: 0}) {
		t.Fatalf("wrap: got (%v,%v), want ((1,0),true)", got, ok)
	}
}

func TestFindSelectable_WrapsBackwardToPreviousRowEnd(t *testing.T) {
	d := textData([]string{"a", "b", "c"}, []string{"d", "e", "f"})

	got, ok := FindSelectable(d, Loc{Row: 1, Col: 0}, Offset{Cols: -1}, true, nil)
	if !ok || got != (Loc{Row: 0, Col: 2}) {
		t.Fatalf("shift+tab wrap: got (%v,%v), want ((0,2),true)", got, ok)
	}

	got, ok = FindSelectable(d, Loc{Row: 1, Col: 0}, Offset{Cols: -1}, true, skipCol(2))
	if !ok || got != (Loc{Row: 0, Col: 1}) {
		t.Fatalf("shift+tab wrap onto skipped col: got (%v,%v), want ((0,1),true)", got, ok)
	}
}

func TestFindSelectable_StopsAtGridEnds(t *testing.T) {
	d := textData([]string{"a", "b"}, []string{"c", "d"})

	if _, ok := FindSelectable(d, Loc{Row: 1, Col: 1}, Offset{Cols: 1}, true, nil); ok {
		t.Fatalf("tab at last cell: expected no movement")
	}
	if _, ok := FindSelectable(d, Loc{Row: 0, Col: 0}, Offset{Cols: -1}, true, nil); ok {
		t.Fatalf("shift+tab at first cell: expected no movement")
	}
	if _, ok := FindSelectable(d, Loc{Row: 0, Col: 0}, Offset{Rows: -1}, true, nil); ok {
		t.Fatalf("up at top with wrap: expected no movement")
	}
	if _, ok := FindSelectable(d, Loc{Row: 1, Col: 0}, Offset{Rows: 1}, false, nil); ok {
		t.Fatalf("down at bottom: expected no movement")
	}
}

func TestFindSelectable_NoNavigableCellTerminates(t *testing.T) {
	d := textData([]string{"a", "b", "c"}, []string{"d", "e", "f"}, []string{"g", "h", "i"})
	never := func(Cell, int, int) bool { return false }

	for _, off := range []Offset{{Cols: 1}, {Cols: -1}, {Rows: 1}, {Rows: -1}} {
		if got, ok := FindSelectable(d, Loc{Row: 1, Col: 1}, off, true, never); ok {
			t.Fatalf("offset %v: got %v, want no movement", off, got)
		}
	}
}

func TestFindSelectable_ZeroOffsetIsNoop(t *testing.T) {
	d := textData([]string{"a"})
	if _, ok := FindSelectable(d, Loc{}, Offset{}, true, nil); ok {
		t.Fatalf("zero offset: expected no movement")
	}
}

func TestFindSelectable_VerticalSkip(t *testing.T) {
	d := textData([]string{"a"}, []string{"b"}, []string{"c"})
	skipMiddleRow := func(_ Cell, r, _ int) bool { return r != 1 }

	got, ok := FindSelectable(d, Loc{Row: 0, Col: 0}, Offset{Rows: 1}, false, skipMiddleRow)
	if !ok || got != (Loc{Row: 2, Col: 0}) {
		t.Fatalf("down: got (%v,%v), want ((2,0),true)", got, ok)
	}
}
