package sheet

import "strconv"

func (m Model) hasHeaders() bool { return m.cfg.ShowHeaders }

func (m Model) headerHeight() int {
	if m.cfg.ShowHeaders {
		return 1
	}
	return 0
}

// gutterWidth is the row-number column plus its separator.
func (m Model) gutterWidth() int {
	if !m.cfg.ShowHeaders {
		return 0
	}
	return len(strconv.Itoa(maxInt(m.data.Rows(), 1))) + 1
}

func (m Model) columnWidth(col int) int {
	if col >= 0 && col < len(m.cfg.ColumnWidths) && m.cfg.ColumnWidths[col] > 0 {
		return m.cfg.ColumnWidths[col]
	}
	return m.cfg.DefaultColumnWidth
}

// maxCols is the length of the longest row.
func (m Model) maxCols() int {
	n := 0
	for _, row := range m.data {
		n = maxInt(n, len(row))
	}
	return n
}

// spanWidth is the screen width of columns [from, to] with separators.
func (m Model) spanWidth(from, to int) int {
	w := 0
	for col := from; col <= to; col++ {
		w += m.columnWidth(col) + 1
	}
	return w
}

// followSelection scrolls so the selection end is visible. Without force it
// only reacts when the end moved, leaving manual wheel scrolling alone.
func (m *Model) followSelection(force bool) {
	sel, ok := m.state.Selection()
	if !ok {
		m.lastEndOK = false
		return
	}
	if !force && m.lastEndOK && sel.End == m.lastEnd {
		return
	}
	m.lastEnd, m.lastEndOK = sel.End, true

	m.followRow(sel.End.Row)
	if m.followCol(sel.End.Col) {
		m.rebuildContent()
	}
}

func (m *Model) followRow(row int) {
	h := m.viewport.Height
	if h <= 0 || m.data.Rows() == 0 {
		return
	}
	row = clampInt(row, 0, m.data.Rows()-1)

	y := m.viewport.YOffset
	if row < y {
		m.viewport.SetYOffset(row)
		return
	}
	if row >= y+h {
		m.viewport.SetYOffset(row - h + 1)
	}
}

// followCol adjusts the first visible column and reports whether it moved.
func (m *Model) followCol(col int) bool {
	avail := m.width - m.gutterWidth()
	cols := m.maxCols()
	if avail <= 0 || cols == 0 {
		return false
	}
	col = clampInt(col, 0, cols-1)

	prev := m.colOffset
	if col < m.colOffset {
		m.colOffset = col
	}
	for m.colOffset < col && m.spanWidth(m.colOffset, col) > avail {
		m.colOffset++
	}
	return m.colOffset != prev
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
