package sheetfile

import (
	"errors"

	"github.com/pelletier/go-toml/v2"

	"github.com/iw2rmb/datasheet/grid"
)

// file is the TOML layout:
//
//	[view]
//	column_widths = [8, 12]
//	show_headers = true
//
//	[[row]]
//	cells = [{ value = "a" }, { value = 3, read_only = true }]
type file struct {
	View view  `toml:"view"`
	Rows []row `toml:"row"`
}

type view struct {
	ColumnWidths []int `toml:"column_widths,omitempty"`
	ShowHeaders  bool  `toml:"show_headers"`
}

type row struct {
	Cells []cellSpec `toml:"cells,inline"`
}

type cellSpec struct {
	Value          any    `toml:"value,omitempty"`
	ReadOnly       bool   `toml:"read_only,omitempty"`
	Component      bool   `toml:"component,omitempty"`
	ForceComponent bool   `toml:"force_component,omitempty"`
	Key            string `toml:"key,omitempty"`
}

// DecodeTOML parses a TOML sheet. path names the source in errors.
func DecodeTOML(path string, data []byte) (*Sheet, error) {
	var f file
	if err := toml.Unmarshal(data, &f); err != nil {
		pe := &ParseError{Path: path, Message: err.Error(), Err: err}
		var de *toml.DecodeError
		if errors.As(err, &de) {
			pe.Line, pe.Column = de.Position()
		}
		return nil, pe
	}

	s := &Sheet{
		Data:         make(grid.Data, len(f.Rows)),
		ColumnWidths: f.View.ColumnWidths,
		ShowHeaders:  f.View.ShowHeaders,
	}
	for i, r := range f.Rows {
		cells := make([]grid.Cell, len(r.Cells))
		for j, c := range r.Cells {
			cells[j] = grid.Cell{
				Value:          c.Value,
				ReadOnly:       c.ReadOnly,
				Component:      c.Component,
				ForceComponent: c.ForceComponent,
				Key:            c.Key,
			}
		}
		s.Data[i] = cells
	}
	return s, nil
}

// EncodeTOML renders s as TOML.
func EncodeTOML(s *Sheet) ([]byte, error) {
	f := file{
		View: view{ColumnWidths: s.ColumnWidths, ShowHeaders: s.ShowHeaders},
		Rows: make([]row, len(s.Data)),
	}
	for i, cells := range s.Data {
		specs := make([]cellSpec, len(cells))
		for j, c := range cells {
			v := c.Value
			if v == nil {
				v = ""
			}
			specs[j] = cellSpec{
				Value:          v,
				ReadOnly:       c.ReadOnly,
				Component:      c.Component,
				ForceComponent: c.ForceComponent,
				Key:            c.Key,
			}
		}
		f.Rows[i] = row{Cells: specs}
	}
	return toml.Marshal(f)
}
