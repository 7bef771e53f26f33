package grid

// Loc points at a cell by (row, col). Row and Col are 0-based.
type Loc struct {
	Row int
	Col int
}

// Offset is a signed movement in rows and columns.
type Offset struct {
	Rows int
	Cols int
}

func (l Loc) Add(o Offset) Loc {
	return Loc{Row: l.Row + o.Rows, Col: l.Col + o.Cols}
}

func (o Offset) IsZero() bool { return o.Rows == 0 && o.Cols == 0 }

// Selection is a rectangle given by two corners in drag order: Start is where
// the gesture began, End is where it currently is.
type Selection struct {
	Start Loc
	End   Loc
}

// Single returns a one-cell selection at l.
func Single(l Loc) Selection {
	return Selection{Start: l, End: l}
}

// Bounds is a normalized rectangle: Min <= Max on both axes (inclusive).
type Bounds struct {
	Min Loc
	Max Loc
}

// Normalize converts a drag-ordered selection into inclusive bounds.
func Normalize(s Selection) Bounds {
	return Bounds{
		Min: Loc{Row: minInt(s.Start.Row, s.End.Row), Col: minInt(s.Start.Col, s.End.Col)},
		Max: Loc{Row: maxInt(s.Start.Row, s.End.Row), Col: maxInt(s.Start.Col, s.End.Col)},
	}
}

// Selection returns b as a top-left to bottom-right selection.
func (b Bounds) Selection() Selection {
	return Selection{Start: b.Min, End: b.Max}
}

func (b Bounds) ContainsRow(row int) bool { return row >= b.Min.Row && row <= b.Max.Row }

func (b Bounds) ContainsCol(col int) bool { return col >= b.Min.Col && col <= b.Max.Col }

func (b Bounds) Contains(l Loc) bool { return b.ContainsRow(l.Row) && b.ContainsCol(l.Col) }

// Seq returns the inclusive integers between a and b in ascending order,
// whichever of the two is larger.
func Seq(a, b int) []int {
	lo, hi := minInt(a, b), maxInt(a, b)
	out := make([]int, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		out = append(out, i)
	}
	return out
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
