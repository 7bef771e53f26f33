package sheet

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/datasheet/grid"
	"github.com/iw2rmb/datasheet/internal/grapheme"
)

const (
	separatorGlyph = "│"
	handleGlyph    = "▪"
	ellipsis       = "…"
)

func (m *Model) renderContent() string {
	if m.width <= 0 {
		return ""
	}
	lines := make([]string, 0, m.data.Rows())
	for row := 0; row < m.data.Rows(); row++ {
		lines = append(lines, m.renderRow(row))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(row int) string {
	sep := m.cfg.Style.Separator.Render(separatorGlyph)

	var sb strings.Builder
	if m.hasHeaders() {
		num := fmt.Sprintf("%*d", m.gutterWidth()-1, row+1)
		sb.WriteString(m.cfg.Style.Header.Render(num))
		sb.WriteString(sep)
	}

	x := m.gutterWidth()
	for col := m.colOffset; col < m.maxCols() && x < m.width; col++ {
		w := m.columnWidth(col)
		sb.WriteString(m.renderCell(row, col, w))
		sb.WriteString(sep)
		x += w + 1
	}
	return ansi.Truncate(sb.String(), m.width, "")
}

func (m Model) renderHeader() string {
	sep := m.cfg.Style.Separator.Render(separatorGlyph)

	var sb strings.Builder
	if gw := m.gutterWidth(); gw > 0 {
		sb.WriteString(strings.Repeat(" ", gw-1))
		sb.WriteString(sep)
	}
	x := m.gutterWidth()
	for col := m.colOffset; col < m.maxCols() && x < m.width; col++ {
		w := m.columnWidth(col)
		sb.WriteString(m.cfg.Style.Header.Render(grapheme.Pad(columnName(col), w, "")))
		sb.WriteString(sep)
		x += w + 1
	}
	return ansi.Truncate(sb.String(), m.width, "")
}

func (m *Model) renderCell(row, col, w int) string {
	l := grid.Loc{Row: row, Col: col}
	cell, ok := m.data.At(l)
	if !ok {
		return strings.Repeat(" ", w)
	}

	st := m.CellState(row, col)
	if st.Editing && m.edit.active && m.edit.at == l {
		return m.cfg.Style.Editing.Render(fitANSI(m.edit.editor.View(), w))
	}

	text := m.cfg.ValueRenderer(cell, row, col)
	if m.cfg.CellRenderer != nil {
		return fitANSI(m.cfg.CellRenderer(CellContext{
			Cell:  cell,
			Row:   row,
			Col:   col,
			Width: w,
			State: st,
			Text:  text,
		}), w)
	}

	style := m.cellStyle(cell, st)
	text = grapheme.Flatten(text)
	if m.showsHandle(l, w) {
		return style.Render(grapheme.Pad(text, w-1, ellipsis)) + m.cfg.Style.Handle.Render(handleGlyph)
	}
	return style.Render(grapheme.Pad(text, w, ellipsis))
}

func (m Model) cellStyle(cell grid.Cell, st CellState) lipgloss.Style {
	switch {
	case st.Targeted:
		return m.cfg.Style.Targeted
	case st.Selected:
		return m.cfg.Style.Selected
	case cell.ReadOnly:
		return m.cfg.Style.ReadOnly
	default:
		return m.cfg.Style.Cell
	}
}

// fitANSI truncates or pads a possibly styled string to exactly w cells.
func fitANSI(s string, w int) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	s = ansi.Truncate(s, w, "")
	if pad := w - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

// columnName returns spreadsheet-style column letters: A..Z, AA, AB, ...
func columnName(col int) string {
	var b []byte
	for n := col + 1; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('A' + (n-1)%26)}, b...)
	}
	return string(b)
}
