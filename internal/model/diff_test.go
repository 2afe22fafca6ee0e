package model

import (
	"testing"

	"github.com/mj1618/a11ytree/internal/describe"
	"github.com/mj1618/a11ytree/internal/uitree"
)

func TestDiffElements_NoChanges(t *testing.T) {
	elements := []FlatElement{
		{ID: "1", Role: "btn", Title: "OK", Bounds: [4]int{10, 20, 100, 30}, Path: "pane"},
	}
	if changes := DiffElements(elements, elements); len(changes) != 0 {
		t.Errorf("expected no changes, got %d", len(changes))
	}
}

func TestDiffElements_AddedRemovedChanged(t *testing.T) {
	prev := []FlatElement{
		{ID: "1", Role: "btn", Title: "OK", Path: "pane"},
		{ID: "2", Role: "txt", Title: "Loading", Path: "pane"},
	}
	curr := []FlatElement{
		{ID: "1", Role: "btn", Title: "OK", Focused: true, Path: "pane"},
		{ID: "3", Role: "btn", Title: "Cancel", Path: "pane"},
	}
	changes := DiffElements(prev, curr)
	if len(changes) != 3 {
		t.Fatalf("expected 3 changes, got %d: %+v", len(changes), changes)
	}
	if changes[0].Type != ChangeChanged || changes[0].ID != "1" {
		t.Errorf("expected focus change first, got %+v", changes[0])
	}
	if got := changes[0].Changes["f"]; got != [2]string{"false", "true"} {
		t.Errorf("focus diff = %v", got)
	}
	if changes[1].Type != ChangeAdded || changes[1].Element.Title != "Cancel" {
		t.Errorf("expected Cancel added, got %+v", changes[1])
	}
	if changes[2].Type != ChangeRemoved || changes[2].ID != "2" || changes[2].Title != "Loading" {
		t.Errorf("expected Loading removed, got %+v", changes[2])
	}
}

func TestDiffElements_TodoToggle(t *testing.T) {
	tree := uitree.New()
	todo := describe.NewTodo("Buy milk")
	if err := describe.Rebuild(tree, todo); err != nil {
		t.Fatal(err)
	}
	flat := func() []FlatElement {
		return FlattenElements(FromSnapshot(tree.Snapshot(), tree.Focused(), uitree.Viewport{}))
	}
	before := flat()

	var toggle uitree.ID
	for _, el := range before {
		if el.Title == "Toggle Buy milk" {
			if err := toggle.UnmarshalText([]byte(el.ID)); err != nil {
				t.Fatal(err)
			}
		}
	}
	if err := tree.Activate(toggle); err != nil {
		t.Fatal(err)
	}
	if err := describe.Rebuild(tree, todo); err != nil {
		t.Fatal(err)
	}

	var added, removed int
	for _, c := range DiffElements(before, flat()) {
		switch c.Type {
		case ChangeAdded:
			added++
			if c.Element.Title != "[x] Buy milk" {
				t.Errorf("unexpected added element %+v", c.Element)
			}
		case ChangeRemoved:
			removed++
			if c.Title != "[ ] Buy milk" {
				t.Errorf("unexpected removed element %+v", c)
			}
		}
	}
	if added != 1 || removed != 1 {
		t.Errorf("added=%d removed=%d, want 1 and 1", added, removed)
	}
}
