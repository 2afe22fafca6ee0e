package model

import "testing"

func sampleTree() []Element {
	return []Element{
		{
			ID: "1", Role: "pane", Title: "Todo", Bounds: [4]int{0, 0, 1200, 140},
			Children: []Element{
				{
					ID: "2", Role: "doc", Title: "Tasks", Bounds: [4]int{10, 20, 1190, 60},
					Children: []Element{
						{ID: "3", Role: "txt", Title: "[ ] Buy milk", Bounds: [4]int{20, 40, 1180, 20}},
						{ID: "4", Role: "txt", Title: "[x] Write report", Bounds: [4]int{20, 60, 1180, 20}},
					},
				},
				{ID: "5", Role: "btn", Title: "Toggle Buy milk", Bounds: [4]int{10, 80, 1190, 20}, Focused: true, Actions: []string{"invoke"}},
				{ID: "6", Role: "btn", Title: "Add task", Bounds: [4]int{10, 100, 1190, 20}, Actions: []string{"invoke"}},
			},
		},
	}
}

func ids(els []Element) []string {
	var out []string
	for _, el := range FlattenElements(els) {
		out = append(out, el.ID)
	}
	return out
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterElements(t *testing.T) {
	tests := []struct {
		name  string
		roles []string
		bbox  *[4]int
		want  []string
	}{
		{"no filters", nil, nil, []string{"1", "2", "3", "4", "5", "6"}},
		{"buttons", []string{"btn"}, nil, []string{"5", "6"}},
		{"text promoted past doc", []string{"txt"}, nil, []string{"3", "4"}},
		{"bbox", nil, &[4]int{0, 62, 50, 10}, []string{"1", "2", "4"}},
		{"role and bbox", []string{"txt"}, &[4]int{0, 62, 50, 10}, []string{"4"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(FilterElements(sampleTree(), tt.roles, tt.bbox))
			if !equalIDs(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterByText(t *testing.T) {
	got := FilterByText(sampleTree(), "buy MILK")
	if want := []string{"1", "2", "3", "5"}; !equalIDs(ids(got), want) {
		t.Errorf("got %v, want %v", ids(got), want)
	}
	if all := FilterByText(sampleTree(), ""); len(ids(all)) != 6 {
		t.Error("empty text should keep everything")
	}
	if none := FilterByText(sampleTree(), "nothing"); len(none) != 0 {
		t.Errorf("expected no matches, got %v", ids(none))
	}
}

func TestFilterByFocused(t *testing.T) {
	got := FilterByFocused(sampleTree())
	if want := []string{"1", "5"}; !equalIDs(ids(got), want) {
		t.Errorf("got %v, want %v", ids(got), want)
	}
}

func TestPruneEmptyContainers(t *testing.T) {
	els := []Element{
		{ID: "1", Role: "pane", Children: []Element{
			{ID: "2", Role: "doc", Title: "Body", Children: []Element{{ID: "3", Role: "txt", Title: "x"}}},
			{ID: "4", Role: "doc", Children: []Element{{ID: "5", Role: "txt", Title: "y"}}},
		}},
	}
	got := PruneEmptyContainers(els)
	if len(got) != 2 {
		t.Fatalf("expected the unnamed pane's children promoted, got %d roots", len(got))
	}
	if want := []string{"2", "3", "5"}; !equalIDs(ids(got), want) {
		t.Errorf("got %v, want %v", ids(got), want)
	}
}

func TestBoundsIntersect(t *testing.T) {
	if !boundsIntersect([4]int{0, 0, 10, 10}, [4]int{5, 5, 10, 10}) {
		t.Error("overlapping boxes should intersect")
	}
	if boundsIntersect([4]int{0, 0, 10, 10}, [4]int{10, 0, 10, 10}) {
		t.Error("touching boxes should not intersect")
	}
}
