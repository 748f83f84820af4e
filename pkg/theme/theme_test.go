package theme

import (
	"image/color"
	"testing"
)

func TestResolveNamedColor(t *testing.T) {
	c, err := ResolveColor("DodgerBlue")
	if err != nil {
		t.Fatalf("ResolveColor: %v", err)
	}
	want := color.RGBA{R: 0x1e, G: 0x90, B: 0xff, A: 0xff}
	if c != want {
		t.Errorf("c = %v, want %v", c, want)
	}
}

func TestResolveHexColors(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#1e90ff", color.RGBA{R: 0x1e, G: 0x90, B: 0xff, A: 0xff}},
		{"#fff", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}},
		{"#a0b", color.RGBA{R: 0xaa, G: 0x00, B: 0xbb, A: 0xff}},
	}
	for _, tt := range tests {
		c, err := ResolveColor(tt.in)
		if err != nil {
			t.Errorf("ResolveColor(%q): %v", tt.in, err)
			continue
		}
		if c != tt.want {
			t.Errorf("ResolveColor(%q) = %v, want %v", tt.in, c, tt.want)
		}
	}
}

func TestResolveColorErrors(t *testing.T) {
	for _, in := range []string{"", "notacolor", "#12", "#12345", "#xyzxyz"} {
		if _, err := ResolveColor(in); err == nil {
			t.Errorf("ResolveColor(%q) should fail", in)
		}
	}
}

func TestParsePalette(t *testing.T) {
	p, err := ParsePalette(map[string]string{
		"control": "gainsboro",
		"accent":  "#1e90ff",
	})
	if err != nil {
		t.Fatalf("ParsePalette: %v", err)
	}
	if _, ok := p.Lookup("control"); !ok {
		t.Error("control slot missing")
	}
	if got := p.CSS("accent"); got != "rgb(30, 144, 255)" {
		t.Errorf("CSS = %q", got)
	}
	if got := p.CSS("missing"); got != "" {
		t.Errorf("CSS(missing) = %q", got)
	}
}

func TestParsePaletteFailsLoudly(t *testing.T) {
	if _, err := ParsePalette(map[string]string{"control": "gainsborough"}); err == nil {
		t.Error("expected a typo to fail the palette")
	}
}
