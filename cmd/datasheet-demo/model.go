package main

import (
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/iw2rmb/datasheet/grid"
	"github.com/iw2rmb/datasheet/internal/sheetfile"
	"github.com/iw2rmb/datasheet/internal/watch"
	"github.com/iw2rmb/datasheet/sheet"
)

// hostState is written from sheet callbacks during Update.
type hostState struct {
	doc     *sheetfile.Sheet
	dirty   bool
	changed bool
	menuAt  *sheet.ContextMenuEvent
	edits   int
}

func (h *hostState) apply(mu grid.Mutation) {
	h.doc.Apply(mu)
	h.dirty, h.changed = true, true
	h.edits++
	log.Printf("mutation kind=%v updates=%d additions=%d", mu.Kind, len(mu.Updates), len(mu.Additions))
}

type model struct {
	sheet   sheet.Model
	host    *hostState
	path    string
	menu    *contextMenu
	status  string
	watcher *watch.Watcher
}

type reloadMsg struct{}

type watchErrMsg struct{ err error }

func newModel(doc *sheetfile.Sheet, path string, clip sheet.Clipboard) model {
	host := &hostState{doc: doc}
	cfg := sheet.Config{
		Data:         doc.Data,
		OnMutation:   host.apply,
		Clipboard:    clip,
		Style:        sheet.DefaultStyle(),
		ColumnWidths: doc.ColumnWidths,
		ShowHeaders:  doc.ShowHeaders,
		OnContextMenu: func(ev sheet.ContextMenuEvent) {
			host.menuAt = &ev
		},
	}
	return model{
		sheet:  sheet.New(cfg),
		host:   host,
		path:   path,
		status: "ctrl+s save | right click for menu | ctrl+q quit",
	}
}

func (m model) Init() tea.Cmd { return m.waitForChange() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.sheet = m.sheet.SetSize(msg.Width, sheetHeight(msg.Height))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+q":
			m.sheet = m.sheet.Close()
			return m, tea.Quit
		case "ctrl+s":
			m.save()
			return m, nil
		}
		if m.menu != nil {
			return m.updateMenuKey(msg)
		}
	case tea.MouseMsg:
		if m.menu != nil {
			return m.updateMenuMouse(msg)
		}
	case reloadMsg:
		m.reload()
		return m, m.waitForChange()
	case watchErrMsg:
		m.status = "watch: " + msg.err.Error()
		return m, m.waitForChange()
	}

	var cmd tea.Cmd
	m.sheet, cmd = m.sheet.Update(msg)
	m.afterSheet()
	return m, cmd
}

// afterSheet pushes applied mutations back into the sheet and opens a
// pending context menu.
func (m *model) afterSheet() {
	if m.host.changed {
		m.host.changed = false
		m.sheet = m.sheet.SetData(m.host.doc.Data)
	}
	if ev := m.host.menuAt; ev != nil {
		m.host.menuAt = nil
		m.menu = newContextMenu(ev.Mouse.X, ev.Mouse.Y, ev.Row, ev.Col)
	}
}

func (m model) updateMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item, done := m.menu.handleKey(msg)
	if !done {
		return m, nil
	}
	m.menu = nil
	return m.runMenuItem(item)
}

func (m model) updateMenuMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		if msg.Action == tea.MouseActionMotion {
			m.menu.hover(msg.X, msg.Y)
		}
		return m, nil
	}
	item, inside := m.menu.itemAt(msg.X, msg.Y)
	m.menu = nil
	if !inside {
		return m, nil
	}
	return m.runMenuItem(item)
}

// runMenuItem replays the menu choice as the sheet's own shortcut so the
// same subscriptions and selection rules apply.
func (m model) runMenuItem(item menuItem) (tea.Model, tea.Cmd) {
	var k tea.KeyMsg
	switch item {
	case menuCopy:
		k = tea.KeyMsg{Type: tea.KeyCtrlC}
	case menuCut:
		k = tea.KeyMsg{Type: tea.KeyCtrlX}
	case menuPaste:
		k = tea.KeyMsg{Type: tea.KeyCtrlV}
	case menuClear:
		k = tea.KeyMsg{Type: tea.KeyDelete}
	default:
		return m, nil
	}
	var cmd tea.Cmd
	m.sheet, cmd = m.sheet.Update(k)
	m.afterSheet()
	return m, cmd
}

func (m *model) save() {
	if m.path == "" {
		m.status = "no file to save to (start with -file)"
		return
	}
	if err := sheetfile.Save(m.path, m.host.doc); err != nil {
		m.status = err.Error()
		log.Printf("save: %v", err)
		return
	}
	m.host.dirty = false
	m.status = "saved " + m.path
}

func (m *model) reload() {
	s, err := sheetfile.Load(m.path)
	if err != nil {
		m.status = err.Error()
		log.Printf("reload: %v", err)
		return
	}
	if len(s.ColumnWidths) == 0 {
		s.ColumnWidths = m.host.doc.ColumnWidths
	}
	m.host.doc = s
	m.host.dirty = false
	m.sheet = m.sheet.SetData(s.Data)
	m.status = "reloaded " + m.path
}

func (m model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w := m.watcher
	return func() tea.Msg {
		select {
		case _, ok := <-w.Changes():
			if !ok {
				return nil
			}
			return reloadMsg{}
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			return watchErrMsg{err: err}
		}
	}
}

func (m model) View() string {
	status := m.status
	if m.host.dirty {
		status = "[modified] " + status
	}
	if sel, ok := m.sheet.Selection(); ok {
		status = fmt.Sprintf("%s%d %s", columnLabel(sel.End.Col), sel.End.Row+1, status)
	}
	base := strings.Join([]string{m.sheet.View(), status}, "\n")
	if m.menu == nil {
		return base
	}
	return overlay.Composite(m.menu.View(), base, overlay.Left, overlay.Top, m.menu.x, m.menu.y)
}

func sheetHeight(total int) int {
	h := total - 1
	if h < 0 {
		return 0
	}
	return h
}

func columnLabel(col int) string {
	var b []byte
	for n := col + 1; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('A' + (n-1)%26)}, b...)
	}
	return string(b)
}

func sampleSheet() *sheetfile.Sheet {
	return &sheetfile.Sheet{
		Data: grid.Data{
			{{Value: "item", ReadOnly: true}, {Value: "qty", ReadOnly: true}, {Value: "price", ReadOnly: true}},
			{{Value: "apples"}, {Value: "4"}, {Value: "0.50"}},
			{{Value: "pears"}, {Value: "2"}, {Value: "0.75"}},
			{{Value: "plums"}, {Value: "12"}, {Value: "0.20"}},
			{{Value: ""}, {Value: ""}, {Value: ""}},
		},
		ColumnWidths: []int{12, 6, 8},
		ShowHeaders:  true,
	}
}
