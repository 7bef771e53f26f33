package grid

// FindSelectable returns the next navigable cell reached from `from` by
// repeatedly applying off.
//
// Non-navigable cells are skipped. When the walk leaves the grid and wrapRows
// is set, a horizontal walk continues at the end of the previous row
// (off.Cols < 0) or at the start of the next row (off.Cols > 0). ok is false
// when no cell can be reached; the caller should not move.
//
// A zero offset never moves.
func FindSelectable(d Data, from Loc, off Offset, wrapRows bool, navigable NavigableFunc) (Loc, bool) {
	if off.IsZero() {
		return Loc{}, false
	}

	// Every step either visits a distinct cell or wraps to a distinct row, so
	// this bound is never reached by a terminating walk.
	limit := d.Rows() + 1
	for _, row := range d {
		limit += len(row)
	}

	loc := from.Add(off)
	for steps := 0; steps <= limit; steps++ {
		if d.Has(loc) {
			if d.navigable(navigable, loc) {
				return loc, true
			}
			loc = loc.Add(off)
			continue
		}

		if !wrapRows || off.Cols == 0 {
			return Loc{}, false
		}
		if off.Cols < 0 {
			loc = Loc{Row: loc.Row - 1, Col: d.Cols() - 1}
		} else {
			loc = Loc{Row: loc.Row + 1, Col: 0}
		}
		if !d.Has(loc) {
			return Loc{}, false
		}
		if d.navigable(navigable, loc) {
			return loc, true
		}
		loc = loc.Add(off)
	}
	return Loc{}, false
}
