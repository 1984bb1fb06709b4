package theme

import (
	"testing"
)

func TestColors_CyclesPastPaletteLength(t *testing.T) {
	colors := Colors("Warm", 15, nil)
	if len(colors) != 15 {
		t.Fatalf("expected 15 colors, got %d", len(colors))
	}
	// A 10-entry palette wraps at index 10.
	if colors[10] != Colors("Warm", 1, nil)[0] {
		t.Errorf("colors[10] must equal colors[0]: %s vs %s", colors[10], colors[0])
	}
	for i, c := range colors {
		if c != colors[i%10] {
			t.Errorf("index %d must cycle to %d", i, i%10)
		}
	}
}

func TestColors_UnknownThemeFallsBack(t *testing.T) {
	got := Colors("NoSuchTheme", 3, nil)
	want := Colors(DefaultTheme, 3, nil)
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("unknown theme must silently use the default palette")
		}
	}
}

func TestColors_CustomColorsReplaceTheme(t *testing.T) {
	custom := []string{"#111111", "#222222"}
	got := Colors("Warm", 5, custom)
	want := []string{"#111111", "#222222", "#111111", "#222222", "#111111"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("custom colors must cycle in place of the theme: got %v", got)
		}
	}
}

func TestColors_NonPositiveCount(t *testing.T) {
	if got := Colors("Warm", 0, nil); len(got) != 0 {
		t.Errorf("count 0 must yield empty, got %v", got)
	}
	if got := Colors("Warm", -3, nil); len(got) != 0 {
		t.Errorf("negative count must yield empty, got %v", got)
	}
}

func TestColorAt_MatchesCyclingRule(t *testing.T) {
	palette := Palette("Cool")
	if got := ColorAt("Cool", 13, nil); got != palette[3] {
		t.Errorf("ColorAt(13) must equal palette[3]: %s vs %s", got, palette[3])
	}
	if got := ColorAt("Cool", -1, nil); got != palette[0] {
		t.Errorf("negative index clamps to 0, got %s", got)
	}
}

func TestScale_LabelKeyed(t *testing.T) {
	scale := Scale("Default", []string{"a", "b", "c"}, nil)
	palette := Palette("Default")
	if scale("b") != palette[1] {
		t.Errorf("expected second color for b")
	}
	if scale("unknown") != palette[0] {
		t.Errorf("out-of-domain labels fall back to the first color")
	}
}

func TestPalettes_AllTenEntries(t *testing.T) {
	for _, name := range Names() {
		if got := len(Palette(name)); got != 10 {
			t.Errorf("palette %s must carry 10 entries, has %d", name, got)
		}
	}
}
