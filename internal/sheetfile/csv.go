package sheetfile

import (
	"bytes"
	"encoding/csv"
	"errors"

	"github.com/iw2rmb/datasheet/grid"
)

// DecodeCSV parses a CSV sheet. Every value is a string; rows may be ragged.
func DecodeCSV(path string, data []byte) (*Sheet, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		pe := &ParseError{Path: path, Message: err.Error(), Err: err}
		var ce *csv.ParseError
		if errors.As(err, &ce) {
			pe.Line, pe.Column = ce.Line, ce.Column
			pe.Message = ce.Err.Error()
		}
		return nil, pe
	}

	s := &Sheet{Data: make(grid.Data, len(records))}
	for i, rec := range records {
		cells := make([]grid.Cell, len(rec))
		for j, v := range rec {
			cells[j] = grid.Cell{Value: v}
		}
		s.Data[i] = cells
	}
	return s, nil
}

// EncodeCSV renders the values of s. Cell flags and view settings are lost.
func EncodeCSV(s *Sheet) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for i, cells := range s.Data {
		rec := make([]string, len(cells))
		for j, c := range cells {
			rec[j] = grid.DisplayText(c, i, j)
		}
		if err := w.Write(rec); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
