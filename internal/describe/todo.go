package describe

import (
	"fmt"

	"github.com/mj1618/a11ytree/internal/logger"
	"github.com/mj1618/a11ytree/internal/uitree"
)

// Todo is a task list whose buttons change the list. Item ids follow their
// label, so toggling an item gives its text a new id while its button keeps
// the same one.
type Todo struct {
	items []todoItem
	added int
	dirty bool
}

type todoItem struct {
	Title string
	Done  bool
}

func NewTodo(titles ...string) *Todo {
	t := &Todo{}
	for _, title := range titles {
		t.items = append(t.items, todoItem{Title: title})
	}
	return t
}

func (t *Todo) Name() string { return "todo" }

// Dirty reports whether an action changed the list since the last describe.
func (t *Todo) Dirty() bool { return t.dirty }

// Labels returns the item labels as shown in the tree.
func (t *Todo) Labels() []string {
	out := make([]string, len(t.items))
	for i, it := range t.items {
		out[i] = it.label()
	}
	return out
}

func (it todoItem) label() string {
	if it.Done {
		return "[x] " + it.Title
	}
	return "[ ] " + it.Title
}

func (t *Todo) Describe(b *uitree.Builder) {
	t.dirty = false
	b.Pane("Todo", func() {
		b.Document("Tasks", func() {
			for _, it := range t.items {
				b.Text(it.label())
			}
		})
		for _, it := range t.items {
			title := it.Title
			b.Button("Toggle "+title, func() { t.toggle(title) })
		}
		b.Button("Add task", t.add)
		b.Button("Clear completed", t.clearDone)
	})
}

func (t *Todo) toggle(title string) {
	for i := range t.items {
		if t.items[i].Title == title {
			t.items[i].Done = !t.items[i].Done
			t.dirty = true
			logger.Debug("todo toggled", "title", title, "done", t.items[i].Done)
			return
		}
	}
}

func (t *Todo) add() {
	t.added++
	t.items = append(t.items, todoItem{Title: fmt.Sprintf("Task %d", t.added)})
	t.dirty = true
}

func (t *Todo) clearDone() {
	kept := t.items[:0]
	for _, it := range t.items {
		if !it.Done {
			kept = append(kept, it)
		}
	}
	if len(kept) != len(t.items) {
		t.dirty = true
	}
	t.items = kept
}
