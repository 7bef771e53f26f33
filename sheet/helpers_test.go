package sheet

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/datasheet/grid"
)

type memClipboard struct {
	s string
}

func (c *memClipboard) ReadText() (string, error) { return c.s, nil }
func (c *memClipboard) WriteText(s string) error  { c.s = s; return nil }

func textData(rows ...[]string) grid.Data {
	d := make(grid.Data, len(rows))
	for i, row := range rows {
		d[i] = make([]grid.Cell, len(row))
		for j, v := range row {
			d[i][j] = grid.Cell{Value: v}
		}
	}
	return d
}

type mutationLog struct {
	got []grid.Mutation
}

func (l *mutationLog) record(m grid.Mutation) { l.got = append(l.got, m) }

func (l *mutationLog) last(t *testing.T) grid.Mutation {
	t.Helper()
	if len(l.got) == 0 {
		t.Fatalf("expected a mutation, got none")
	}
	return l.got[len(l.got)-1]
}

func plainStyle() Style {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	return Style{
		Cell:      r.NewStyle(),
		ReadOnly:  r.NewStyle(),
		Selected:  r.NewStyle(),
		Editing:   r.NewStyle(),
		Targeted:  r.NewStyle(),
		Handle:    r.NewStyle(),
		Header:    r.NewStyle(),
		Separator: r.NewStyle(),
	}
}

func newSheet(cfg Config) Model {
	cfg.Style = plainStyle()
	return New(cfg).SetSize(60, 10)
}

func send(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		m, _ = m.Update(msg)
	}
	return m
}

func selectCell(m Model, row, col int) Model {
	return send(m, PointerDownMsg{Row: row, Col: col}, PointerUpMsg{})
}

func keyMsg(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func altEnter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter, Alt: true} }

func mustSelection(t *testing.T, m Model) grid.Selection {
	t.Helper()
	sel, ok := m.Selection()
	if !ok {
		t.Fatalf("expected a selection")
	}
	return sel
}
