package model

import "testing"

func sampleFlat() []FlatElement {
	return []FlatElement{
		{ID: 1, Role: "window", Name: "Captvty", Bounds: [4]int{0, 0, 1280, 800}},
		{ID: 2, Role: "window", Bounds: [4]int{0, 120, 263, 680}, Path: "2"},
		{ID: 3, Role: "row", Name: "France 2", Bounds: [4]int{0, 200, 263, 40}, Path: "2/1/1"},
		{ID: 4, Role: "btn", Name: "France 2", Bounds: [4]int{10, 205, 240, 30}, Path: "2/1/1/3/1"},
		{ID: 5, Role: "btn", Name: "DIRECT", Bounds: [4]int{180, 45, 80, 24}, Path: "4/3/0/0"},
	}
}

func TestFilterFlat_Empty(t *testing.T) {
	els := sampleFlat()
	if got := FilterFlat(els, FlatFilter{}); len(got) != len(els) {
		t.Errorf("empty filter dropped elements: %d", len(got))
	}
}

func TestFilterFlat_Criteria(t *testing.T) {
	tests := []struct {
		name string
		f    FlatFilter
		want []int
	}{
		{"roles", FlatFilter{Roles: []string{"btn"}}, []int{4, 5}},
		{"text", FlatFilter{Text: "france"}, []int{3, 4}},
		{"width", FlatFilter{Width: 263}, []int{2, 3}},
		{"bbox", FlatFilter{BBox: &[4]int{150, 40, 50, 10}}, []int{1, 5}},
		{"combined", FlatFilter{Roles: []string{"btn"}, Text: "france"}, []int{4}},
	}
	for _, tt := range tests {
		got := FilterFlat(sampleFlat(), tt.f)
		if len(got) != len(tt.want) {
			t.Errorf("%s: got %d elements, want %d", tt.name, len(got), len(tt.want))
			continue
		}
		for i, el := range got {
			if el.ID != tt.want[i] {
				t.Errorf("%s: element %d has ID %d, want %d", tt.name, i, el.ID, tt.want[i])
			}
		}
	}
}

func TestBoundsIntersect(t *testing.T) {
	if !boundsIntersect([4]int{0, 0, 10, 10}, [4]int{5, 5, 10, 10}) {
		t.Error("overlapping rectangles should intersect")
	}
	if boundsIntersect([4]int{0, 0, 10, 10}, [4]int{10, 0, 10, 10}) {
		t.Error("touching rectangles should not intersect")
	}
}
