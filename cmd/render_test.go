package cmd

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mj1618/captvty-nav/internal/model"
)

func TestParseLabelMode(t *testing.T) {
	tests := []struct {
		in      string
		want    LabelMode
		wantErr bool
	}{
		{"", LabelNames, false},
		{"names", LabelNames, false},
		{"ids", LabelIDs, false},
		{"coords", LabelCoords, false},
		{"boxes", LabelNames, true},
	}
	for _, tt := range tests {
		got, err := ParseLabelMode(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseLabelMode(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestRenderWindow_DrawsHighlights(t *testing.T) {
	window := &model.Element{
		ID: 1, Role: "window", Bounds: [4]int{100, 50, 200, 100},
		Children: []model.Element{
			{ID: 2, Role: "btn", Name: "OK", Bounds: [4]int{110, 60, 50, 20}},
		},
	}
	img := RenderWindow(window, []highlight{{el: &window.Children[0], color: activeColor}}, LabelNames)

	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Fatalf("image size = %v, want 200x100", b)
	}
	// Top-left corner of the button, window-relative.
	if got := img.RGBAAt(10, 10); got != activeColor {
		t.Errorf("button corner = %v, want %v", got, activeColor)
	}
	if got := img.RGBAAt(0, 0); got != outlineColor {
		t.Errorf("window corner = %v, want %v", got, outlineColor)
	}
	if got := img.RGBAAt(150, 90); got != backgroundColor {
		t.Errorf("empty area = %v, want background", got)
	}
}

func TestElementLabel(t *testing.T) {
	el := &model.Element{ID: 7, Name: "Arte", Bounds: [4]int{0, 0, 10, 20}}
	if got := elementLabel(el, LabelNames); got != "Arte" {
		t.Errorf("names: %q", got)
	}
	if got := elementLabel(el, LabelIDs); got != "[7]" {
		t.Errorf("ids: %q", got)
	}
	if got := elementLabel(el, LabelCoords); got != "(5,10)" {
		t.Errorf("coords: %q", got)
	}
}

func TestRenderCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.png")
	out, err := runCLI(t, "render", "--out", path, "--labels", "ids")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "channels: 24") || !strings.Contains(out, "buttons: 3") {
		t.Errorf("unexpected output:\n%s", out)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 1280 || b.Dy() != 800 {
		t.Errorf("image size = %v, want 1280x800", b)
	}
}
