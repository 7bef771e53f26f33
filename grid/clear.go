package grid

// SelectedCell is one existing cell inside a selection.
type SelectedCell struct {
	Cell Cell
	Row  int
	Col  int
}

// SelectedCells lists the existing cells of the normalized selection in row
// order. Corners outside the grid are tolerated; missing cells are skipped.
func SelectedCells(d Data, sel Selection) []SelectedCell {
	b := Normalize(sel)
	var out []SelectedCell
	for _, row := range Seq(b.Min.Row, b.Max.Row) {
		for _, col := range Seq(b.Min.Col, b.Max.Col) {
			c, ok := d.At(Loc{Row: row, Col: col})
			if !ok {
				continue
			}
			out = append(out, SelectedCell{Cell: c, Row: row, Col: col})
		}
	}
	return out
}

// PlanClear blanks every writable cell of the selection.
func PlanClear(d Data, sel Selection) Mutation {
	m := Mutation{Kind: MutationClear, Updates: []CellUpdate{}}
	for _, sc := range SelectedCells(d, sel) {
		if sc.Cell.ReadOnly {
			continue
		}
		m.Updates = append(m.Updates, CellUpdate{Cell: sc.Cell, Row: sc.Row, Col: sc.Col, Value: ""})
	}
	return m
}

// PlanEdit commits value into the cell at l. ok is false when l does not
// exist or is read-only.
func PlanEdit(d Data, l Loc, value any) (Mutation, bool) {
	c, ok := d.At(l)
	if !ok || c.ReadOnly {
		return Mutation{}, false
	}
	return Mutation{
		Kind:    MutationEdit,
		Updates: []CellUpdate{{Cell: c, Row: l.Row, Col: l.Col, Value: value}},
		End:     l,
	}, true
}
