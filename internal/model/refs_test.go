package model

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Search", "search"},
		{"Full Name", "full-name"},
		{"[ ] Buy milk", "buy-milk"},
		{"Inbox (23288 unread)", "inbox-23288-unread"},
		{"  spaces  ", "spaces"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := slugify(tt.input); got != tt.want {
			t.Errorf("slugify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSlugify_Truncates(t *testing.T) {
	got := slugify(strings.Repeat("word ", 20))
	if len(got) > maxSlugLen || strings.HasSuffix(got, "-") {
		t.Errorf("slugify produced %q", got)
	}
}

func TestGenerateRefs(t *testing.T) {
	els := sampleTree()
	GenerateRefs(els)
	flat := FlattenElements(els)
	want := map[string]string{
		"1": "todo",
		"2": "todo/tasks",
		"3": "todo/tasks/buy-milk",
		"4": "todo/tasks/x-write-report",
		"5": "todo/toggle-buy-milk",
		"6": "todo/add-task",
	}
	for _, el := range flat {
		if el.Ref != want[el.ID] {
			t.Errorf("element %s ref = %q, want %q", el.ID, el.Ref, want[el.ID])
		}
	}
}

func TestGenerateRefs_Dedup(t *testing.T) {
	els := []Element{
		{ID: "1", Role: "pane", Title: "Main", Children: []Element{
			{ID: "2", Role: "btn", Title: "OK", Actions: []string{"invoke"}},
			{ID: "3", Role: "doc", Children: []Element{
				{ID: "4", Role: "btn", Title: "OK", Actions: []string{"invoke"}},
			}},
		}},
	}
	GenerateRefs(els)
	a, b := els[0].Children[0].Ref, els[0].Children[1].Children[0].Ref
	if a != "main/ok.1" || b != "main/ok.2" {
		t.Errorf("refs = %q, %q", a, b)
	}
	if els[0].Ref != "main" || els[0].Children[1].Ref != "" {
		t.Errorf("container refs = %q, %q", els[0].Ref, els[0].Children[1].Ref)
	}
}

func TestFindElementByRef(t *testing.T) {
	els := sampleTree()
	GenerateRefs(els)

	el, err := FindElementByRef(els, "todo/add-task")
	if err != nil || el.ID != "6" {
		t.Fatalf("exact match: %v, %v", el, err)
	}
	el, err = FindElementByRef(els, "buy-milk")
	if err != nil || el.ID != "3" {
		t.Fatalf("suffix match: %v, %v", el, err)
	}
	if _, err := FindElementByRef(els, "missing"); err == nil {
		t.Error("expected error for unknown ref")
	}
}

func TestFindElementByRef_Ambiguous(t *testing.T) {
	els := []Element{
		{ID: "1", Role: "pane", Title: "A", Children: []Element{{ID: "2", Role: "btn", Title: "Go"}}},
		{ID: "3", Role: "pane", Title: "B", Children: []Element{{ID: "4", Role: "btn", Title: "Go"}}},
	}
	GenerateRefs(els)
	_, err := FindElementByRef(els, "go")
	if err == nil || !strings.Contains(err.Error(), "multiple elements") {
		t.Errorf("expected ambiguity error, got %v", err)
	}
}
