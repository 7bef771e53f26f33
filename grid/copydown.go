package grid

// Axis selects the direction a copydown fill extends in.
type Axis uint8

const (
	AxisRow Axis = iota + 1 // extend across rows (vertical fill)
	AxisCol                 // extend across columns (horizontal fill)
)

// Target is the signed extent of a copydown drag past the selection edge.
// A positive Delta extends past the bottom/right edge, a negative one past
// the top/left edge. Fill is single-axis by construction.
type Target struct {
	Axis  Axis
	Delta int
}

// CopydownTarget computes the fill target while the pointer hovers at.
//
// ok is false when at lies inside the selection. When at is outside on both
// axes, the axis with the larger distance wins; ties go to the column axis.
func CopydownTarget(sel Selection, at Loc) (Target, bool) {
	b := Normalize(sel)
	inRows := b.ContainsRow(at.Row)
	inCols := b.ContainsCol(at.Col)
	if inRows && inCols {
		return Target{}, false
	}

	dRow := at.Row - b.Max.Row
	if at.Row < b.Min.Row {
		dRow = at.Row - b.Min.Row
	}
	dCol := at.Col - b.Max.Col
	if at.Col < b.Min.Col {
		dCol = at.Col - b.Min.Col
	}

	switch {
	case inRows:
		return Target{Axis: AxisCol, Delta: dCol}, true
	case inCols:
		return Target{Axis: AxisRow, Delta: dRow}, true
	case absInt(dRow) > absInt(dCol):
		return Target{Axis: AxisRow, Delta: dRow}, true
	default:
		return Target{Axis: AxisCol, Delta: dCol}, true
	}
}

// Covers reports whether l is inside the area a fill to t would write,
// projected across the whole selection width (or height).
func (t Target) Covers(sel Selection, l Loc) bool {
	b := Normalize(sel)
	switch t.Axis {
	case AxisRow:
		return b.ContainsCol(l.Col) && withinExtension(l.Row, b.Min.Row, b.Max.Row, t.Delta)
	case AxisCol:
		return b.ContainsRow(l.Row) && withinExtension(l.Col, b.Min.Col, b.Max.Col, t.Delta)
	default:
		return false
	}
}

func withinExtension(v, min, max, delta int) bool {
	if delta > 0 {
		return v > max && v <= max+delta
	}
	if delta < 0 {
		return v < min && v >= min+delta
	}
	return false
}

// span returns the first and last coordinate written by a fill of delta
// beyond [min, max].
func span(min, max, delta int) (first, last int) {
	if delta > 0 {
		return max + 1, max + delta
	}
	return min + delta, min - 1
}

// PlanCopydown fans the anchor cell's value (sel.Start) along the anchor's
// column (AxisRow) or row (AxisCol). The value is read once; read-only and
// missing targets are skipped.
//
// Only single-source fill is supported: every target receives the same value.
func PlanCopydown(d Data, sel Selection, t Target) Mutation {
	m := Mutation{Kind: MutationCopydown}
	if t.Delta == 0 {
		return m
	}
	anchor := sel.Start
	src, ok := d.At(anchor)
	if !ok {
		return m
	}

	b := Normalize(sel)
	var first, last int
	switch t.Axis {
	case AxisRow:
		first, last = span(b.Min.Row, b.Max.Row, t.Delta)
	case AxisCol:
		first, last = span(b.Min.Col, b.Max.Col, t.Delta)
	default:
		return m
	}

	for x := first; x <= last; x++ {
		at := Loc{Row: x, Col: anchor.Col}
		if t.Axis == AxisCol {
			at = Loc{Row: anchor.Row, Col: x}
		}
		c, ok := d.At(at)
		if !ok || c.ReadOnly {
			continue
		}
		m.Updates = append(m.Updates, CellUpdate{Cell: c, Row: at.Row, Col: at.Col, Value: src.Value})
		m.End = at
	}
	return m
}
