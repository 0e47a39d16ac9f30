package model

import "testing"

func TestModeFromButtonName(t *testing.T) {
	tests := []struct {
		name string
		want AppMode
	}{
		{"DIRECT", ModeDirect},
		{"RATTRAPAGE", ModeCatchup},
		{"TÉLÉCHARGEMENT MANUEL", ModeOther},
		{"direct", ModeOther},
		{"", ModeOther},
	}
	for _, tt := range tests {
		if got := ModeFromButtonName(tt.name); got != tt.want {
			t.Errorf("ModeFromButtonName(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestParseAppMode(t *testing.T) {
	if m, ok := ParseAppMode("direct"); !ok || m != ModeDirect {
		t.Errorf("ParseAppMode(direct) = %v, %v", m, ok)
	}
	if m, ok := ParseAppMode("rattrapage"); !ok || m != ModeCatchup {
		t.Errorf("ParseAppMode(rattrapage) = %v, %v", m, ok)
	}
	if _, ok := ParseAppMode("manual"); ok {
		t.Error("ParseAppMode(manual) should fail")
	}
}

func TestAppMode_ButtonNameRoundTrip(t *testing.T) {
	for _, m := range []AppMode{ModeDirect, ModeCatchup} {
		if got := ModeFromButtonName(m.ButtonName()); got != m {
			t.Errorf("ModeFromButtonName(%q) = %v, want %v", m.ButtonName(), got, m)
		}
	}
	if ModeOther.ButtonName() != "" {
		t.Error("ModeOther has no button")
	}
	if ModeCatchup.String() != "catchup" {
		t.Errorf("String() = %q", ModeCatchup.String())
	}
}
