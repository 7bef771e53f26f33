package sheet

import "github.com/iw2rmb/datasheet/grid"

type hit struct {
	loc    grid.Loc
	handle bool
}

// hitTest maps component-local mouse coordinates to a cell.
//
// The separator right of a cell belongs to that cell. The last content
// column of the single selected cell is its copydown handle. Header, gutter
// and cells missing from ragged rows do not hit.
func (m Model) hitTest(x, y int) (hit, bool) {
	hy := m.headerHeight()
	if y < hy || x < 0 {
		return hit{}, false
	}
	row := y - hy + m.viewport.YOffset
	if row < 0 || row >= m.data.Rows() {
		return hit{}, false
	}

	cx := m.gutterWidth()
	if x < cx {
		return hit{}, false
	}
	for col := m.colOffset; col < m.maxCols(); col++ {
		w := m.columnWidth(col)
		if x < cx+w+1 {
			l := grid.Loc{Row: row, Col: col}
			if !m.data.Has(l) {
				return hit{}, false
			}
			return hit{loc: l, handle: x == cx+w-1 && m.showsHandle(l, w)}, true
		}
		cx += w + 1
	}
	return hit{}, false
}

func (m Model) showsHandle(l grid.Loc, width int) bool {
	return width >= 2 && m.state.IsSingleSelected(l) && !m.state.IsEditing(l)
}
