package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/dice-roller/parameter"
)

// Palette holds parsed scene and HUD colours
type Palette struct {
	Background colorful.Color
	Panel      colorful.Color
	Text       colorful.Color
	DimText    colorful.Color
	Result     colorful.Color
	ResultGlow colorful.Color
	Highlight  colorful.Color
	Border     colorful.Color
	Rolling    colorful.Color
	Debug      colorful.Color
	Paused     colorful.Color

	DieFace   colorful.Color
	DiePip    colorful.Color
	Table     colorful.Color
	FeltLine  colorful.Color
	Rail      colorful.Color
	Cup       colorful.Color
	CupInside colorful.Color
	Shadow    colorful.Color
}

// mustHex parses a "#rrggbb" constant, panicking on a malformed literal
func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultPalette parses the parameter colour constants
func DefaultPalette() Palette {
	return Palette{
		Background: mustHex(parameter.BackgroundHex),
		Panel:      mustHex(parameter.PanelHex),
		Text:       mustHex(parameter.TextHex),
		DimText:    mustHex(parameter.DimTextHex),
		Result:     mustHex(parameter.ResultHex),
		ResultGlow: mustHex(parameter.ResultGlowHex),
		Highlight:  mustHex(parameter.HighlightHex),
		Border:     mustHex(parameter.BorderHex),
		Rolling:    mustHex(parameter.RollingHex),
		Debug:      mustHex(parameter.DebugHex),
		Paused:     mustHex(parameter.PausedHex),

		DieFace:   mustHex(parameter.DieFaceHex),
		DiePip:    mustHex(parameter.DiePipHex),
		Table:     mustHex(parameter.TableHex),
		FeltLine:  mustHex(parameter.FeltLineHex),
		Rail:      mustHex(parameter.RailHex),
		Cup:       mustHex(parameter.CupHex),
		CupInside: mustHex(parameter.CupInsideHex),
		Shadow:    mustHex(parameter.ShadowHex),
	}
}

// ToTcell converts a colour to a 24-bit tcell colour, clamping out-of-gamut values
func ToTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Style builds a tcell style from foreground and background colours
func Style(fg, bg colorful.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(ToTcell(fg)).Background(ToTcell(bg))
}

// Modulate multiplies c channel-wise by light, without clamping
func Modulate(c, light colorful.Color) colorful.Color {
	return colorful.Color{R: c.R * light.R, G: c.G * light.G, B: c.B * light.B}
}

// Scale multiplies every channel by k, without clamping
func Scale(c colorful.Color, k float64) colorful.Color {
	return colorful.Color{R: c.R * k, G: c.G * k, B: c.B * k}
}

// Add sums two colours channel-wise, without clamping
func Add(a, b colorful.Color) colorful.Color {
	return colorful.Color{R: a.R + b.R, G: a.G + b.G, B: a.B + b.B}
}
