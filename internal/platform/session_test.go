package platform

import (
	"strings"
	"testing"

	"github.com/mj1618/a11ytree/internal/config"
	"github.com/mj1618/a11ytree/internal/describe"
	"github.com/mj1618/a11ytree/internal/input"
	"github.com/mj1618/a11ytree/internal/model"
	"github.com/mj1618/a11ytree/internal/uitree"
)

func newTodoSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(config.Default(), describe.NewTodo("Buy milk"), true)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestNewSession_Describes(t *testing.T) {
	s := newTodoSession(t)
	if s.Tree.Snapshot().Len() == 0 {
		t.Fatal("expected a described tree")
	}
	els := s.Elements()
	if len(els) != 1 || els[0].Title != "Todo" {
		t.Errorf("unexpected elements %+v", els)
	}
}

func TestNewSession_BadBindings(t *testing.T) {
	cfg := config.Default()
	cfg.Keys.Next = []string{"ctrl+nope"}
	if _, err := NewSession(cfg, describe.NewTodo(), false); err == nil {
		t.Error("expected error for bad key binding")
	}
}

func TestSession_InvokeByRefSettles(t *testing.T) {
	s := newTodoSession(t)
	add, err := s.Target("@add-task")
	if err != nil {
		t.Fatal(err)
	}
	gen := s.Tree.Snapshot().Generation()
	s.Provider.Events.Drain()
	if err := s.Invoke(add); err != nil {
		t.Fatal(err)
	}
	if s.Tree.Snapshot().Generation() == gen {
		t.Error("expected a rebuild after the scene changed")
	}
	var titles []string
	for _, el := range model.FlattenElements(s.Elements()) {
		titles = append(titles, el.Title)
	}
	if !strings.Contains(strings.Join(titles, "|"), "[ ] Task 1") {
		t.Errorf("new task missing from %v", titles)
	}
	events := s.Provider.Events.Drain()
	if len(events) != 2 || events[0].Kind != uitree.EventInvoked || events[1].Kind != uitree.EventStructureChanged {
		t.Errorf("expected invoke then structure-changed, got %+v", events)
	}
}

func TestSession_TapMovesFocus(t *testing.T) {
	s := newTodoSession(t)
	cmd, err := s.Tap(input.Chord{Key: input.KeyDown})
	if err != nil {
		t.Fatal(err)
	}
	if cmd != input.CommandFocusNext {
		t.Errorf("command = %v", cmd)
	}
	if s.Tree.Focused() != s.Tree.Snapshot().At(0).ID {
		t.Error("expected focus on the first node")
	}
}

func TestSession_Target(t *testing.T) {
	s := newTodoSession(t)
	root, err := s.Target("root")
	if err != nil || !root.IsRoot() {
		t.Errorf("root target = %v, %v", root, err)
	}
	if _, err := s.Target("@missing"); err == nil {
		t.Error("expected error for unknown ref")
	}
}

func TestOpenScene(t *testing.T) {
	cfg := config.Default()
	cfg.Scene = "todo"
	sc, err := OpenScene(cfg)
	if err != nil || sc.Name() != "todo" {
		t.Fatalf("OpenScene = %v, %v", sc, err)
	}
	cfg.File = "does-not-exist.yaml"
	if _, err := OpenScene(cfg); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSession_Scope(t *testing.T) {
	s := newTodoSession(t)
	all, err := s.Scope("root")
	if err != nil || len(all) != 1 {
		t.Fatalf("Scope(root) = %v, %v", all, err)
	}
	tasks, err := s.Scope("@todo/tasks")
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != 1 || tasks[0].Title != "Tasks" || len(tasks[0].Children) != 1 {
		t.Errorf("unexpected tasks scope %+v", tasks)
	}
	if _, err := s.Scope("00000000000000ff"); err == nil {
		t.Error("expected a stale element error")
	}
}
