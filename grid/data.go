package grid

// Cell is one record of the caller-owned matrix.
//
// Value is opaque to the grid; only the capability flags drive behavior.
type Cell struct {
	Value any

	// ReadOnly suppresses editing, clearing, paste and copydown.
	ReadOnly bool
	// Component marks a cell edited by an embedded widget instead of the
	// default text editor.
	Component bool
	// ForceComponent lets the embedded widget handle Enter, Tab and Escape
	// itself instead of the grid committing on them.
	ForceComponent bool

	// Key is an optional stable identity for renderers.
	Key string
}

// Data is a read-only view over the caller's cell matrix. Rows may be ragged;
// Cols reports the width of the first row.
type Data [][]Cell

// NavigableFunc reports whether keyboard navigation may stop on a cell.
type NavigableFunc func(c Cell, row, col int) bool

func (d Data) Rows() int { return len(d) }

func (d Data) Cols() int {
	if len(d) == 0 {
		return 0
	}
	return len(d[0])
}

// At returns the cell at l. ok is false for coordinates outside the matrix.
func (d Data) At(l Loc) (Cell, bool) {
	if l.Row < 0 || l.Row >= len(d) {
		return Cell{}, false
	}
	row := d[l.Row]
	if l.Col < 0 || l.Col >= len(row) {
		return Cell{}, false
	}
	return row[l.Col], true
}

func (d Data) Has(l Loc) bool {
	_, ok := d.At(l)
	return ok
}

// Writable reports whether l exists and is not read-only.
func (d Data) Writable(l Loc) bool {
	c, ok := d.At(l)
	return ok && !c.ReadOnly
}

func (d Data) navigable(fn NavigableFunc, l Loc) bool {
	c, ok := d.At(l)
	if !ok {
		return false
	}
	if fn == nil {
		return true
	}
	return fn(c, l.Row, l.Col)
}
