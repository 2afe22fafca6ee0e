package model

import "testing"

func TestFlattenElements_Basic(t *testing.T) {
	elements := []Element{
		{ID: "1", Role: "btn", Title: "OK", Bounds: [4]int{0, 0, 100, 30}},
		{ID: "2", Role: "txt", Title: "Hello", Bounds: [4]int{0, 30, 100, 20}},
	}
	result := FlattenElements(elements)
	if len(result) != 2 {
		t.Fatalf("expected 2 flat elements, got %d", len(result))
	}
	if result[0].Path != "btn" {
		t.Errorf("expected path 'btn', got %q", result[0].Path)
	}
	if result[1].Path != "txt" {
		t.Errorf("expected path 'txt', got %q", result[1].Path)
	}
}

func TestFlattenElements_NestedPathInBuildOrder(t *testing.T) {
	f := newFixture(t)
	result := FlattenElements(f.elements())
	wantPaths := []string{"pane", "pane > doc", "pane > doc > txt", "pane > btn"}
	if len(result) != len(wantPaths) {
		t.Fatalf("expected %d flat elements, got %d", len(wantPaths), len(result))
	}
	for i, want := range wantPaths {
		if result[i].Path != want {
			t.Errorf("result[%d].Path = %q, want %q", i, result[i].Path, want)
		}
	}
	if result[2].ID != f.text.String() || !result[3].Focused {
		t.Errorf("unexpected flat order %+v", result)
	}
}

func TestFlattenElements_Empty(t *testing.T) {
	if result := FlattenElements(nil); len(result) != 0 {
		t.Errorf("expected empty result, got %d", len(result))
	}
}
