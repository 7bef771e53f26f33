package grid

import (
	"fmt"
	"regexp"
	"strings"
)

// TextFunc renders a cell as text.
type TextFunc func(c Cell, row, col int) string

// ParseFunc splits clipboard text into rows of values.
type ParseFunc func(raw string) [][]string

// Renderers derives clipboard text from cells.
//
// Data yields a cell's raw text (for example the formula behind a computed
// value). Value yields its display text and is used whenever Data is nil or
// returns "".
type Renderers struct {
	Data  TextFunc
	Value TextFunc
}

// DisplayText is the fallback Value renderer: fmt's default format of
// Cell.Value, or "" for nil.
func DisplayText(c Cell, _, _ int) string {
	if c.Value == nil {
		return ""
	}
	if s, ok := c.Value.(string); ok {
		return s
	}
	return fmt.Sprint(c.Value)
}

// EffectiveText returns the text copied for a cell.
func (r Renderers) EffectiveText(c Cell, row, col int) string {
	if r.Data != nil {
		if s := r.Data(c, row, col); s != "" {
			return s
		}
	}
	if r.Value != nil {
		return r.Value(c, row, col)
	}
	return DisplayText(c, row, col)
}

// CopyText serializes the normalized selection: cells are tab-joined, rows
// are newline-joined, top to bottom. Missing cells contribute "".
func CopyText(d Data, sel Selection, r Renderers) string {
	b := Normalize(sel)

	var sb strings.Builder
	for i, row := range Seq(b.Min.Row, b.Max.Row) {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j, col := range Seq(b.Min.Col, b.Max.Col) {
			if j > 0 {
				sb.WriteByte('\t')
			}
			c, ok := d.At(Loc{Row: row, Col: col})
			if !ok {
				continue
			}
			sb.WriteString(r.EffectiveText(c, row, col))
		}
	}
	return sb.String()
}

var lineBreakRE = regexp.MustCompile(`\r\n|\n|\r`)

// ParsePaste is the default ParseFunc: lines split on CRLF, LF or CR, values
// split on tabs. It is the inverse of CopyText.
func ParsePaste(raw string) [][]string {
	lines := lineBreakRE.Split(raw, -1)
	out := make([][]string, 0, len(lines))
	for _, line := range lines {
		out = append(out, strings.Split(line, "\t"))
	}
	return out
}

// PlanPaste lays values out from the top-left corner of the normalized
// selection.
//
// Writable existing targets become Updates; targets beyond the grid become
// Additions; Pasted keeps every pairing. End is the last location written,
// or the selection's bottom-right corner when values is empty.
func PlanPaste(d Data, sel Selection, values [][]string) Mutation {
	b := Normalize(sel)
	m := Mutation{
		Kind:    MutationPaste,
		Updates: []CellUpdate{},
		End:     b.Max,
	}

	for i, row := range values {
		pastedRow := make([]PastedCell, 0, len(row))
		for j, v := range row {
			at := Loc{Row: b.Min.Row + i, Col: b.Min.Col + j}
			m.End = at

			c, ok := d.At(at)
			pastedRow = append(pastedRow, PastedCell{Cell: c, Exists: ok, Data: v})
			switch {
			case !ok:
				m.Additions = append(m.Additions, CellUpdate{Row: at.Row, Col: at.Col, Value: v})
			case !c.ReadOnly:
				m.Updates = append(m.Updates, CellUpdate{Cell: c, Row: at.Row, Col: at.Col, Value: v})
			}
		}
		m.Pasted = append(m.Pasted, pastedRow)
	}
	return m
}
