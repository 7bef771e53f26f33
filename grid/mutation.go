package grid

// MutationKind identifies the user action that produced a Mutation.
type MutationKind uint8

const (
	// MutationEdit commits the value of a single edited cell.
	MutationEdit MutationKind = iota
	// MutationClear blanks the writable cells of a selection.
	MutationClear
	// MutationPaste writes parsed clipboard values.
	MutationPaste
	// MutationCopydown fans one cell's value along a row or column.
	MutationCopydown
)

func (k MutationKind) String() string {
	switch k {
	case MutationEdit:
		return "edit"
	case MutationClear:
		return "clear"
	case MutationPaste:
		return "paste"
	case MutationCopydown:
		return "copydown"
	default:
		return "unknown"
	}
}

// CellUpdate requests that the cell at (Row, Col) take Value. Cell is the
// record at that position when the update was planned; it is the zero Cell
// for additions.
type CellUpdate struct {
	Cell  Cell
	Row   int
	Col   int
	Value any
}

// PastedCell pairs one pasted value with the cell it lands on. Exists is
// false when the value lands outside the current grid.
type PastedCell struct {
	Cell   Cell
	Exists bool
	Data   string
}

// Mutation is one logical change requested by the grid. The host decides
// how to apply it; Channels adapts it to per-shape callbacks.
type Mutation struct {
	Kind MutationKind

	// Updates targets existing, writable cells.
	Updates []CellUpdate
	// Additions holds paste values that land beyond the grid (paste only).
	Additions []CellUpdate
	// Pasted is the unfiltered paste pairing, one slice per pasted row
	// (paste only). Read-only and missing cells are included.
	Pasted [][]PastedCell

	// End is the last location touched by a paste.
	End Loc
}

// IsEmpty reports whether the mutation carries no updates or additions.
func (m Mutation) IsEmpty() bool {
	return len(m.Updates) == 0 && len(m.Additions) == 0
}

// Channels adapts a Mutation to the callback shapes hosts commonly provide.
// Channels are tried in order: OnCellsChanged, OnPaste (paste only),
// OnChange. Exactly one is invoked per mutation.
type Channels struct {
	// OnCellsChanged receives a whole batch. additions is nil unless the
	// paste produced values beyond the grid.
	OnCellsChanged func(updates, additions []CellUpdate)
	// OnPaste receives the raw paste pairing. Read-only filtering is the
	// callee's responsibility.
	OnPaste func(rows [][]PastedCell)
	// OnChange receives one writable, in-bounds cell at a time.
	OnChange func(c Cell, row, col int, value any)
}

// Configured reports whether any channel is set.
func (c Channels) Configured() bool {
	return c.OnCellsChanged != nil || c.OnPaste != nil || c.OnChange != nil
}

// Batched reports whether mutations reach the host as one call.
func (c Channels) Batched() bool { return c.OnCellsChanged != nil }

// Dispatch delivers m to the first applicable channel. It reports whether a
// channel was invoked.
func (c Channels) Dispatch(m Mutation) bool {
	if m.Kind == MutationCopydown && len(m.Updates) == 0 {
		return false
	}

	switch {
	case c.OnCellsChanged != nil:
		var additions []CellUpdate
		if len(m.Additions) > 0 {
			additions = append(additions, m.Additions...)
		}
		c.OnCellsChanged(cloneUpdates(m.Updates), additions)
		return true
	case m.Kind == MutationPaste && c.OnPaste != nil:
		c.OnPaste(clonePasted(m.Pasted))
		return true
	case c.OnChange != nil:
		for _, u := range m.Updates {
			c.OnChange(u.Cell, u.Row, u.Col, u.Value)
		}
		return true
	default:
		return false
	}
}

func cloneUpdates(in []CellUpdate) []CellUpdate {
	out := make([]CellUpdate, len(in))
	copy(out, in)
	return out
}

func clonePasted(in [][]PastedCell) [][]PastedCell {
	out := make([][]PastedCell, len(in))
	for i, row := range in {
		out[i] = append([]PastedCell(nil), row...)
	}
	return out
}
