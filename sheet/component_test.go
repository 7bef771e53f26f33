package sheet

import (
	"reflect"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/datasheet/grid"
)

// toggleEditor records the keys it sees. With commitOn set it answers that
// key with a CommitMsg.
type toggleEditor struct {
	keys     *[]string
	value    string
	commitOn string
}

func (e toggleEditor) Update(msg tea.Msg) (CellEditor, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return e, nil
	}
	*e.keys = append(*e.keys, k.String())
	if e.commitOn != "" && k.String() == e.commitOn {
		v := e.value
		return e, func() tea.Msg { return CommitMsg{Value: v} }
	}
	return e, nil
}

func (e toggleEditor) View() string  { return "[" + e.value + "]" }
func (e toggleEditor) Value() string { return e.value }

func componentSheet(cell grid.Cell, keys *[]string, commitOn string, log *mutationLog) Model {
	d := grid.Data{
		{cell, {Value: "b"}},
		{{Value: "c"}, {Value: "d"}},
	}
	m := newSheet(Config{
		Data:       d,
		OnMutation: log.record,
		ComponentEditor: func(ctx EditorContext) (CellEditor, tea.Cmd) {
			return toggleEditor{keys: keys, value: "on", commitOn: commitOn}, nil
		},
	})
	m = selectCell(m, 0, 0)
	return send(m, keyMsg(tea.KeyEnter))
}

func TestComponent_KeyHandOffRunsAfterComponent(t *testing.T) {
	var keys []string
	var log mutationLog
	m := componentSheet(grid.Cell{Value: "on", Component: true}, &keys, "", &log)
	if _, ok := m.Editing(); !ok {
		t.Fatalf("enter must edit a component cell")
	}

	m, cmd := m.Update(keyMsg(tea.KeyTab))
	if len(keys) != 1 || keys[0] != "tab" {
		t.Fatalf("component keys: got %v, want [tab]", keys)
	}
	if _, ok := m.Editing(); !ok {
		t.Fatalf("sheet reacted before the deferred hand-off")
	}
	if got := mustSelection(t, m); got != grid.Single(grid.Loc{}) {
		t.Fatalf("selection moved synchronously: got %v", got)
	}
	if cmd == nil {
		t.Fatalf("expected a deferred hand-off")
	}

	m, _ = m.Update(cmd())
	if _, ok := m.Editing(); ok {
		t.Fatalf("hand-off must close the component")
	}
	if got := mustSelection(t, m); got != grid.Single(grid.Loc{Col: 1}) {
		t.Fatalf("selection after hand-off: got %v", got)
	}
	if len(log.got) != 0 {
		t.Fatalf("component navigation must not commit: got %d mutations", len(log.got))
	}
}

func TestComponent_EscapeReverts(t *testing.T) {
	var keys []string
	var log mutationLog
	m := componentSheet(grid.Cell{Value: "on", Component: true}, &keys, "", &log)

	m, cmd := m.Update(keyMsg(tea.KeyEscape))
	m, _ = m.Update(cmd())
	if _, ok := m.Editing(); ok {
		t.Fatalf("escape hand-off must revert")
	}
	if got := mustSelection(t, m); got != grid.Single(grid.Loc{}) {
		t.Fatalf("revert must not move: got %v", got)
	}
}

func TestComponent_OtherKeysStayWithComponent(t *testing.T) {
	var keys []string
	var log mutationLog
	m := componentSheet(grid.Cell{Value: "on", Component: true}, &keys, "", &log)

	m, cmd := m.Update(keyMsg(tea.KeyDown))
	if cmd != nil {
		t.Fatalf("arrow must not schedule a hand-off")
	}
	if _, ok := m.Editing(); !ok {
		t.Fatalf("component edit ended on arrow")
	}
	if len(keys) != 1 || keys[0] != "down" {
		t.Fatalf("component keys: got %v", keys)
	}
}

func TestComponent_ForcedComponentCommitsItself(t *testing.T) {
	var keys []string
	var log mutationLog
	m := componentSheet(grid.Cell{Value: "off", Component: true, ForceComponent: true}, &keys, "enter", &log)

	m, cmd := m.Update(keyMsg(tea.KeyEnter))
	if len(keys) != 1 {
		t.Fatalf("forced component keys: got %v", keys)
	}
	if cmd == nil {
		t.Fatalf("expected the component's commit command")
	}
	msg := cmd()
	if _, ok := msg.(CommitMsg); !ok {
		t.Fatalf("command result: got %T, want CommitMsg", msg)
	}
	m, _ = m.Update(msg)

	mu := log.last(t)
	if mu.Kind != grid.MutationEdit || mu.Updates[0].Value != "on" {
		t.Fatalf("component commit: got %+v", mu)
	}
	if _, ok := m.Editing(); ok {
		t.Fatalf("commit must end editing")
	}
	if got := mustSelection(t, m); got != grid.Single(grid.Loc{}) {
		t.Fatalf("forced commit must not navigate: got %v", got)
	}
}

func TestComponent_ClosingWithoutCommitEmitsNothing(t *testing.T) {
	var keys []string
	var log mutationLog
	m := componentSheet(grid.Cell{Value: "on", Component: true}, &keys, "", &log)
	m = send(m, PointerDownMsg{Row: 1, Col: 1})
	if len(log.got) != 0 {
		t.Fatalf("component closed by press elsewhere emitted %d mutations", len(log.got))
	}
}

// runCmd executes cmd and, for a sequence, each of its commands in order,
// returning the produced messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	v := reflect.ValueOf(msg)
	if v.Kind() != reflect.Slice {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for i := 0; i < v.Len(); i++ {
		if c, ok := v.Index(i).Interface().(tea.Cmd); ok {
			out = append(out, runCmd(c)...)
		}
	}
	return out
}

func TestComponent_CommitLandsBeforeHandOff(t *testing.T) {
	var keys []string
	var log mutationLog
	m := componentSheet(grid.Cell{Value: "off", Component: true}, &keys, "tab", &log)

	m, cmd := m.Update(keyMsg(tea.KeyTab))
	msgs := runCmd(cmd)
	if len(msgs) != 2 {
		t.Fatalf("hand-off messages: got %d, want 2", len(msgs))
	}
	if _, ok := msgs[0].(CommitMsg); !ok {
		t.Fatalf("first message: got %T, want CommitMsg", msgs[0])
	}
	m = send(m, msgs...)

	mu := log.last(t)
	if mu.Kind != grid.MutationEdit || mu.Updates[0].Value != "on" {
		t.Fatalf("component commit: got %+v", mu)
	}
	if got := mustSelection(t, m); got != grid.Single(grid.Loc{Col: 1}) {
		t.Fatalf("selection after commit and hand-off: got %v", got)
	}
}
