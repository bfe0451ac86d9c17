package render

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestMustHex(t *testing.T) {
	c := mustHex("#ff8000")
	r, g, b := c.RGB255()
	if r != 255 || g != 128 || b != 0 {
		t.Errorf("mustHex(#ff8000) = %d,%d,%d", r, g, b)
	}

	defer func() {
		if recover() == nil {
			t.Error("mustHex accepted a malformed literal")
		}
	}()
	mustHex("not-a-colour")
}

func TestDefaultPaletteParsed(t *testing.T) {
	p := DefaultPalette()
	if !p.DieFace.AlmostEqualRgb(colorful.Color{R: 1, G: 1, B: 1}) {
		t.Errorf("DieFace = %v, want white", p.DieFace)
	}
	if !p.DiePip.AlmostEqualRgb(colorful.Color{}) {
		t.Errorf("DiePip = %v, want black", p.DiePip)
	}
	if p.Table.Hex() != "#0e4d0e" {
		t.Errorf("Table = %s", p.Table.Hex())
	}

	l := DefaultLights()
	if l.Accents[0].Color.Hex() != "#ff0066" || l.Accents[1].Color.Hex() != "#00ffff" {
		t.Errorf("accent colours = %s %s", l.Accents[0].Color.Hex(), l.Accents[1].Color.Hex())
	}
}
