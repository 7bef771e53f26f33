package sheetfile

import "github.com/iw2rmb/datasheet/grid"

// Apply writes a mutation into the document. Additions grow the matrix,
// padding new positions with empty cells. Updates aimed at cells that no
// longer exist are dropped.
func (s *Sheet) Apply(mu grid.Mutation) {
	for _, u := range mu.Updates {
		if u.Row < 0 || u.Row >= len(s.Data) || u.Col < 0 || u.Col >= len(s.Data[u.Row]) {
			continue
		}
		s.Data[u.Row][u.Col].Value = u.Value
	}
	for _, u := range mu.Additions {
		if u.Row < 0 || u.Col < 0 {
			continue
		}
		s.grow(u.Row, u.Col)
		s.Data[u.Row][u.Col].Value = u.Value
	}
}

func (s *Sheet) grow(row, col int) {
	for len(s.Data) <= row {
		s.Data = append(s.Data, nil)
	}
	for len(s.Data[row]) <= col {
		s.Data[row] = append(s.Data[row], grid.Cell{})
	}
}
